package services

import (
	"strings"
	"testing"
	"time"

	"elecquote/config"
	"elecquote/equipment"
)

var testCompany = config.CompanyConfig{
	Name:         "TUTOLEC",
	Contact:      "contact@tutolec.fr",
	Legal:        "Tutolec – SIRET 123 456 789 00010",
	ValidityDays: 30,
	VATPercent:   20,
}

func sampleExportData() ExportData {
	form := sampleForm()
	quote := equipment.CalculateQuote(form.Rooms, equipment.DefaultPriceTable())
	return BuildExportData(form, quote, testCompany, "DEV-0001", time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC))
}

func TestBuildExportData(t *testing.T) {
	data := sampleExportData()

	if data.Title != "Devis Électrique – Hélène Dupont" {
		t.Errorf("unexpected title %q", data.Title)
	}
	if data.CreatedDate != "15/01/2025" {
		t.Errorf("unexpected date %q", data.CreatedDate)
	}
	if len(data.Rooms) != 5 {
		t.Fatalf("expected 5 rooms, got %d", len(data.Rooms))
	}
	if data.Rooms[0].Name != "Cuisine" {
		t.Errorf("expected first room Cuisine, got %q", data.Rooms[0].Name)
	}
	if len(data.Rooms[0].SpecializedOutlets) == 0 {
		t.Error("expected kitchen specialized outlets in summary")
	}
	if !strings.Contains(data.ValidityNote, "30 jours") {
		t.Errorf("unexpected validity note %q", data.ValidityNote)
	}

	var sum float64
	for _, m := range data.Materials {
		sum += m.TotalPrice
	}
	if diff := sum - data.Total; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("total %v does not match line sum %v", data.Total, sum)
	}
}

func TestBuildExportData_Fields(t *testing.T) {
	data := sampleExportData()

	want := map[string]string{
		"Surface":   "85,5 m²",
		"Chauffage": "Radiateurs électriques, Pompe à chaleur",
	}
	for _, f := range data.General {
		if v, ok := want[f.Label]; ok && f.Value != v {
			t.Errorf("%s = %q, want %q", f.Label, f.Value, v)
		}
	}
}

func TestSummarizeRoom(t *testing.T) {
	room := equipment.Room{
		Name: "Terrasse",
		Equipment: equipment.Equipment{
			Lighting: equipment.NewCollection(equipment.LightingFixture{
				ID: "l1", Type: equipment.LightingFloodlightMotion, Quantity: 2, Switches: 1, Detectors: 1, CustomName: "Projecteur-Terrasse 1",
			}),
			OutletBlocks: equipment.NewCollection(equipment.OutletBlock{ID: "b1", Type: equipment.BlockDouble, Outlets: 2}),
		},
	}

	got := summarizeRoom(room)

	wantLight := "Projecteur-Terrasse 1 : Projecteur avec détecteur - 2 point(s), 1 interrupteur(s), 1 détecteur(s)"
	if len(got.Lighting) != 1 || got.Lighting[0] != wantLight {
		t.Errorf("lighting = %v, want [%q]", got.Lighting, wantLight)
	}
	if len(got.OutletBlocks) != 1 || got.OutletBlocks[0] != "double - 2 prise(s), 0 RJ45, 0 TV" {
		t.Errorf("unexpected outlet blocks %v", got.OutletBlocks)
	}
	if len(got.SpecializedOutlets) != 0 {
		t.Errorf("expected no specialized outlets, got %v", got.SpecializedOutlets)
	}
}

func TestBuildExportData_VAT(t *testing.T) {
	data := sampleExportData()

	if !floatClose(data.Totals.TotalTTC, data.Total) {
		t.Errorf("TTC %v does not match the quote total %v", data.Totals.TotalTTC, data.Total)
	}
	if !floatClose(data.Totals.TotalHT+data.Totals.VATAmount, data.Total) {
		t.Errorf("HT + VAT = %v, want %v", data.Totals.TotalHT+data.Totals.VATAmount, data.Total)
	}
	if data.Totals.VATPercent != 20 {
		t.Errorf("expected 20%% VAT, got %v", data.Totals.VATPercent)
	}
	if data.AmountInWords != AmountToWords(data.Total) {
		t.Errorf("unexpected amount in words %q", data.AmountInWords)
	}

	exempt := testCompany
	exempt.VATExempt = true
	form := sampleForm()
	quote := equipment.CalculateQuote(form.Rooms, equipment.DefaultPriceTable())
	data = BuildExportData(form, quote, exempt, "DEV-0002", time.Now())
	if !data.VATExempt || data.Totals.VATAmount != 0 || data.Totals.TotalHT != data.Total {
		t.Errorf("exempt company should print HT = TTC, got %+v", data.Totals)
	}
}
