package collections

import (
	"fmt"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"
)

// Setup programmatically creates/ensures the construction_forms and
// material_prices collections exist.
func Setup(app core.App, logger *zap.Logger) error {
	_, err := ensureCollection(app, logger, "construction_forms", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "reference", Required: true})

		// project
		c.Fields.Add(&core.SelectField{Name: "type_of_work", Required: true, Values: []string{"Construction", "Rénovation"}, MaxSelect: 1})
		c.Fields.Add(&core.SelectField{Name: "lodging_type", Required: true, Values: []string{"Maison", "Appartement"}, MaxSelect: 1})
		c.Fields.Add(&core.TextField{Name: "department", Required: true, Max: 3})
		c.Fields.Add(&core.TextField{Name: "surface_area", Required: true})
		c.Fields.Add(&core.TextField{Name: "breaker_location", Required: true})
		c.Fields.Add(&core.TextField{Name: "high_tension_line", Required: true})
		c.Fields.Add(&core.TextField{Name: "panel_type", Required: true})
		c.Fields.Add(&core.TextField{Name: "aluminum_joinery", Required: true})
		c.Fields.Add(&core.TextField{Name: "vmc_needed", Required: true})

		// equipment and heating
		c.Fields.Add(&core.JSONField{Name: "equipment", MaxSize: 1 << 16})
		c.Fields.Add(&core.JSONField{Name: "rooms", MaxSize: 1 << 21})
		c.Fields.Add(&core.JSONField{Name: "heating_types", MaxSize: 1 << 12})
		c.Fields.Add(&core.TextField{Name: "radiator_count"})
		c.Fields.Add(&core.TextField{Name: "heat_pump_reference"})
		c.Fields.Add(&core.TextField{Name: "other_heating"})

		// contact
		c.Fields.Add(&core.TextField{Name: "first_name", Required: true})
		c.Fields.Add(&core.TextField{Name: "last_name", Required: true})
		c.Fields.Add(&core.EmailField{Name: "email", Required: true})
		c.Fields.Add(&core.TextField{Name: "phone", Required: true})

		// outcome
		c.Fields.Add(&core.JSONField{Name: "quote", MaxSize: 1 << 18})
		c.Fields.Add(&core.NumberField{Name: "total_price"})
		c.Fields.Add(&core.TextField{Name: "form_password", Required: true, Hidden: true})
		c.Fields.Add(&core.TextField{Name: "pdf_url"})

		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		c.AddIndex("idx_construction_forms_reference", true, "reference", "")
	})
	if err != nil {
		return err
	}

	_, err = ensureCollection(app, logger, "material_prices", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.NumberField{Name: "unit_price", Min: floatPtr(0)})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		c.AddIndex("idx_material_prices_name", true, "name", "")
	})
	return err
}

func floatPtr(v float64) *float64 { return &v }

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app core.App, logger *zap.Logger, name string, addFields func(*core.Collection)) (*core.Collection, error) {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		logger.Debug("collection already exists, skipping creation", zap.String("collection", name))
		return existing, nil
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		return nil, fmt.Errorf("create collection %q: %w", name, err)
	}

	logger.Info("created collection", zap.String("collection", name), zap.String("id", collection.Id))
	return collection, nil
}
