package services

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"

	"elecquote/equipment"
)

// PriceSource counts where the entries of a loaded price table came from.
type PriceSource struct {
	Stored    int
	Overrides int
}

// LoadPriceTable builds the price table used for quoting: the built-in
// prices, replaced by the rows of the material_prices collection, replaced in
// turn by the configured overrides.
func LoadPriceTable(app core.App, overrides map[string]float64) (equipment.PriceTable, PriceSource, error) {
	records, err := app.FindAllRecords("material_prices")
	if err != nil {
		return nil, PriceSource{}, fmt.Errorf("load material prices: %w", err)
	}

	stored := make(map[string]float64, len(records))
	for _, r := range records {
		name := r.GetString("name")
		if name == "" {
			continue
		}
		stored[name] = r.GetFloat("unit_price")
	}

	table := equipment.DefaultPriceTable().WithOverrides(stored).WithOverrides(overrides)
	return table, PriceSource{Stored: len(stored), Overrides: len(overrides)}, nil
}
