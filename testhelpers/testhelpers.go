// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"elecquote/collections"
	"elecquote/equipment"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}
	t.Cleanup(func() { _ = app.ResetBootstrapState() })

	if err := collections.Setup(app, zap.NewNop()); err != nil {
		t.Fatalf("failed to set up collections: %v", err)
	}

	return app
}

// CreateTestForm stores a construction_forms record for the given client with
// the default rooms and returns it.
func CreateTestForm(t *testing.T, app *pocketbase.PocketBase, reference, lastName, password string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("construction_forms")
	if err != nil {
		t.Fatalf("failed to find construction_forms collection: %v", err)
	}

	rooms := equipment.NewCatalog(equipment.NewSequenceGenerator("fixture-")).DefaultRooms()
	quote := equipment.CalculateQuote(rooms, equipment.DefaultPriceTable())

	record := core.NewRecord(col)
	record.Set("reference", reference)
	record.Set("type_of_work", "Construction")
	record.Set("lodging_type", "Appartement")
	record.Set("department", "75")
	record.Set("surface_area", "62")
	record.Set("breaker_location", "inside")
	record.Set("high_tension_line", "unknown")
	record.Set("panel_type", "saillie")
	record.Set("aluminum_joinery", "oui")
	record.Set("vmc_needed", "non")
	record.Set("rooms", rooms)
	record.Set("heating_types", map[string]bool{"radiators": true})
	record.Set("first_name", "Camille")
	record.Set("last_name", lastName)
	record.Set("email", "camille@example.fr")
	record.Set("phone", "0601365735")
	record.Set("quote", quote)
	record.Set("total_price", quote.TotalPrice)
	record.Set("form_password", password)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test form: %v", err)
	}

	return record
}

// SetTestPrice stores or replaces the material_prices entry of name.
func SetTestPrice(t *testing.T, app *pocketbase.PocketBase, name string, price float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("material_prices")
	if err != nil {
		t.Fatalf("failed to find material_prices collection: %v", err)
	}

	record, err := app.FindFirstRecordByData(col, "name", name)
	if err != nil {
		record = core.NewRecord(col)
		record.Set("name", name)
	}
	record.Set("unit_price", price)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test price: %v", err)
	}

	return record
}

// AssertHTMLContains checks that body contains all specified fragments.
func AssertHTMLContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected HTML to contain %q, body:\n%s", frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
