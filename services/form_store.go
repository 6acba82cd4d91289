package services

import (
	"fmt"
	"time"

	"github.com/pocketbase/pocketbase/core"

	"elecquote/equipment"
)

// StoredForm is a construction_forms record decoded back into the intake form.
type StoredForm struct {
	ID        string
	Reference string
	Password  string
	PDFURL    string
	Form      IntakeForm
	Quote     equipment.QuoteResult
	Created   time.Time
}

// SaveForm persists a validated form with its computed quote and access
// password.
func SaveForm(app core.App, form IntakeForm, quote equipment.QuoteResult, reference, password string) (*core.Record, error) {
	col, err := app.FindCollectionByNameOrId("construction_forms")
	if err != nil {
		return nil, fmt.Errorf("construction_forms collection not found: %w", err)
	}

	record := core.NewRecord(col)
	record.Set("reference", reference)
	record.Set("type_of_work", form.TypeOfWork)
	record.Set("lodging_type", form.LodgingType)
	record.Set("department", form.Department)
	record.Set("surface_area", form.SurfaceArea)
	record.Set("breaker_location", form.BreakerLocation)
	record.Set("high_tension_line", form.HighTensionLine)
	record.Set("panel_type", form.PanelType)
	record.Set("aluminum_joinery", form.AluminumJoinery)
	record.Set("vmc_needed", form.VMCNeeded)
	record.Set("equipment", form.Equipment)
	record.Set("rooms", form.Rooms)
	record.Set("heating_types", form.Heating)
	record.Set("radiator_count", form.RadiatorCount)
	record.Set("heat_pump_reference", form.HeatPumpReference)
	record.Set("other_heating", form.OtherHeating)
	record.Set("first_name", form.FirstName)
	record.Set("last_name", form.LastName)
	record.Set("email", form.Email)
	record.Set("phone", form.Phone)
	record.Set("quote", quote)
	record.Set("total_price", quote.TotalPrice)
	record.Set("form_password", password)

	if err := app.Save(record); err != nil {
		return nil, fmt.Errorf("save form: %w", err)
	}
	return record, nil
}

// SetFormPDFURL records the document URL returned by the webhook.
func SetFormPDFURL(app core.App, record *core.Record, pdfURL string) error {
	record.Set("pdf_url", pdfURL)
	if err := app.Save(record); err != nil {
		return fmt.Errorf("save pdf url: %w", err)
	}
	return nil
}

// LoadForm reads a stored form back.
func LoadForm(app core.App, id string) (StoredForm, error) {
	record, err := app.FindRecordById("construction_forms", id)
	if err != nil {
		return StoredForm{}, fmt.Errorf("form %q not found: %w", id, err)
	}

	stored := StoredForm{
		ID:        record.Id,
		Reference: record.GetString("reference"),
		Password:  record.GetString("form_password"),
		PDFURL:    record.GetString("pdf_url"),
		Created:   record.GetDateTime("created").Time(),
		Form: IntakeForm{
			TypeOfWork:        record.GetString("type_of_work"),
			LodgingType:       record.GetString("lodging_type"),
			Department:        record.GetString("department"),
			SurfaceArea:       record.GetString("surface_area"),
			BreakerLocation:   record.GetString("breaker_location"),
			HighTensionLine:   record.GetString("high_tension_line"),
			PanelType:         record.GetString("panel_type"),
			AluminumJoinery:   record.GetString("aluminum_joinery"),
			VMCNeeded:         record.GetString("vmc_needed"),
			RadiatorCount:     record.GetString("radiator_count"),
			HeatPumpReference: record.GetString("heat_pump_reference"),
			OtherHeating:      record.GetString("other_heating"),
			FirstName:         record.GetString("first_name"),
			LastName:          record.GetString("last_name"),
			Email:             record.GetString("email"),
			Phone:             record.GetString("phone"),
		},
	}

	for field, dst := range map[string]any{
		"equipment":     &stored.Form.Equipment,
		"rooms":         &stored.Form.Rooms,
		"heating_types": &stored.Form.Heating,
		"quote":         &stored.Quote,
	} {
		if err := decodeJSONField(record, field, dst); err != nil {
			return StoredForm{}, err
		}
	}
	return stored, nil
}

func decodeJSONField(record *core.Record, field string, dst any) error {
	raw := record.GetString(field)
	if raw == "" || raw == "null" {
		return nil
	}
	if err := record.UnmarshalJSONField(field, dst); err != nil {
		return fmt.Errorf("decode %s of form %s: %w", field, record.Id, err)
	}
	return nil
}
