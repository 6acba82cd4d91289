package collections

import (
	"fmt"
	"sort"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"elecquote/equipment"
)

// SeedMaterialPrices inserts a material_prices record for every entry of
// prices that has no stored price yet. Stored prices are never overwritten, so
// it is safe to call on every startup. It returns the number of records added.
func SeedMaterialPrices(app core.App, prices equipment.PriceTable, logger *zap.Logger) (int, error) {
	pricesCol, err := app.FindCollectionByNameOrId("material_prices")
	if err != nil {
		return 0, fmt.Errorf("seed: could not find material_prices collection: %w", err)
	}

	existing, err := app.FindAllRecords(pricesCol)
	if err != nil {
		return 0, fmt.Errorf("seed: could not query material_prices: %w", err)
	}
	stored := make(map[string]bool, len(existing))
	for _, r := range existing {
		stored[r.GetString("name")] = true
	}

	names := make([]string, 0, len(prices))
	for name := range prices {
		if !stored[name] {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for _, name := range names {
		record := core.NewRecord(pricesCol)
		record.Set("name", name)
		record.Set("unit_price", prices[name])
		if err := app.Save(record); err != nil {
			return 0, fmt.Errorf("seed: could not save price of %q: %w", name, err)
		}
	}

	if len(names) > 0 {
		logger.Info("seeded material prices", zap.Int("count", len(names)))
	}
	return len(names), nil
}
