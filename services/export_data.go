package services

import (
	"fmt"
	"strings"
	"time"

	"elecquote/config"
	"elecquote/equipment"
)

// ExportField is a label/value line of an information section.
type ExportField struct {
	Label string
	Value string
}

// ExportRoom is the printable summary of one room's equipment.
type ExportRoom struct {
	Name               string
	Lighting           []string
	OutletBlocks       []string
	SpecializedOutlets []string
}

// ExportData holds all data needed to render a quote document.
type ExportData struct {
	Title           string
	ReferenceNumber string
	CreatedDate     string
	Company         config.CompanyConfig
	General         []ExportField
	Client          []ExportField
	Rooms           []ExportRoom
	Materials       []equipment.MaterialLineItem
	Total           float64
	Totals          QuoteTotals
	VATExempt       bool
	AmountInWords   string
	ValidityNote    string
}

// BuildExportData assembles the document model of a priced intake form.
func BuildExportData(form IntakeForm, quote equipment.QuoteResult, company config.CompanyConfig, reference string, now time.Time) ExportData {
	data := ExportData{
		Title:           strings.TrimSpace("Devis Électrique – " + form.FullName()),
		ReferenceNumber: reference,
		CreatedDate:     now.Format("02/01/2006"),
		Company:         company,
		General: []ExportField{
			{Label: "Type de travaux", Value: form.TypeOfWork},
			{Label: "Type de logement", Value: form.LodgingType},
			{Label: "Département", Value: form.Department},
			{Label: "Surface", Value: surfaceLabel(form.SurfaceArea)},
			{Label: "VMC", Value: form.VMCNeeded},
			{Label: "Chauffage", Value: heatingLabel(form.Heating)},
		},
		Client: []ExportField{
			{Label: "Nom complet", Value: form.FullName()},
			{Label: "Email", Value: form.Email},
			{Label: "Téléphone", Value: form.Phone},
		},
		Materials:     quote.Materials,
		Total:         quote.TotalPrice,
		VATExempt:     company.VATExempt,
		AmountInWords: AmountToWords(quote.TotalPrice),
		ValidityNote: fmt.Sprintf(
			"Ce devis est valable %d jours à compter de la date d'émission.", company.ValidityDays),
	}

	vat := company.VATPercent
	if company.VATExempt {
		vat = 0
	}
	data.Totals = CalcQuoteTotals(quote.TotalPrice, vat)

	for _, room := range form.Rooms {
		data.Rooms = append(data.Rooms, summarizeRoom(room))
	}
	return data
}

func summarizeRoom(room equipment.Room) ExportRoom {
	out := ExportRoom{Name: room.Name}
	for _, f := range room.Equipment.Lighting.All() {
		line := fmt.Sprintf("%s - %d point(s), %d interrupteur(s)", f.Type, f.Quantity, f.Switches)
		if f.Detectors > 0 {
			line += fmt.Sprintf(", %d détecteur(s)", f.Detectors)
		}
		if f.CustomName != "" {
			line = f.CustomName + " : " + line
		}
		out.Lighting = append(out.Lighting, line)
	}
	for _, b := range room.Equipment.OutletBlocks.All() {
		out.OutletBlocks = append(out.OutletBlocks,
			fmt.Sprintf("%s - %d prise(s), %d RJ45, %d TV", b.Type, b.Outlets, b.RJ45, b.TV))
	}
	for _, o := range room.Equipment.SpecializedOutlets {
		out.SpecializedOutlets = append(out.SpecializedOutlets, string(o))
	}
	return out
}

func surfaceLabel(surface string) string {
	surface = strings.TrimSpace(surface)
	if surface == "" {
		return ""
	}
	return surface + " m²"
}

func heatingLabel(h HeatingTypes) string {
	selected := map[string]bool{
		"radiators":    h.Radiators,
		"heat_pump":    h.HeatPump,
		"other":        h.Other,
		"pellet_stove": h.PelletStove,
		"unknown":      h.Unknown,
	}
	var labels []string
	for _, opt := range HeatingOptions {
		if selected[opt.Value] {
			labels = append(labels, opt.Label)
		}
	}
	return strings.Join(labels, ", ")
}
