package collections_test

import (
	"testing"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"elecquote/collections"
	"elecquote/testhelpers"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"construction_forms",
	"material_prices",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	if err := collections.Setup(app, zap.NewNop()); err != nil {
		t.Fatalf("second Setup() failed: %v", err)
	}

	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Fatalf("collection %q disappeared: %v", name, err)
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q was recreated (id %s -> %s)", name, ids[name], col.Id)
		}
	}
}

func TestSetup_FormPasswordHidden(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, err := app.FindCollectionByNameOrId("construction_forms")
	if err != nil {
		t.Fatalf("construction_forms not found: %v", err)
	}

	field, ok := col.Fields.GetByName("form_password").(*core.TextField)
	if !ok {
		t.Fatal("form_password is not a text field")
	}
	if !field.Hidden {
		t.Error("form_password should be hidden from API responses")
	}
}

func TestSetup_UniquePriceNames(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	col, _ := app.FindCollectionByNameOrId("material_prices")

	first := core.NewRecord(col)
	first.Set("name", "Prise de courant")
	first.Set("unit_price", 3.5)
	if err := app.Save(first); err != nil {
		t.Fatalf("failed to save first price: %v", err)
	}

	dup := core.NewRecord(col)
	dup.Set("name", "Prise de courant")
	dup.Set("unit_price", 4)
	if err := app.Save(dup); err == nil {
		t.Error("expected duplicate material name to be rejected")
	}
}
