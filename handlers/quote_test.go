package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"elecquote/equipment"
	"elecquote/testhelpers"
)

func findLine(quote equipment.QuoteResult, name string) (equipment.MaterialLineItem, bool) {
	for _, item := range quote.Materials {
		if item.Name == name {
			return item, true
		}
	}
	return equipment.MaterialLineItem{}, false
}

func TestHandleQuote_UsesStoredAndConfiguredPrices(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.SetTestPrice(t, app, equipment.MaterialOutlet, 10)

	d := newTestDeps(app, nil)
	d.PriceOverrides = map[string]float64{equipment.MaterialSwitch: 7.5}
	rooms := d.Editor.Catalog().DefaultRooms()

	req := newJSONRequest(t, http.MethodPost, "/api/quote", roomsBody{Rooms: rooms})
	rec := httptest.NewRecorder()

	if err := HandleQuote(d)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var quote equipment.QuoteResult
	decodeBody(t, rec, &quote)

	outlets, ok := findLine(quote, equipment.MaterialOutlet)
	if !ok {
		t.Fatalf("expected a %q line, got %+v", equipment.MaterialOutlet, quote.Materials)
	}
	if outlets.UnitPrice != 10 {
		t.Errorf("expected stored outlet price 10, got %v", outlets.UnitPrice)
	}
	switches, ok := findLine(quote, equipment.MaterialSwitch)
	if !ok {
		t.Fatalf("expected a %q line", equipment.MaterialSwitch)
	}
	if switches.UnitPrice != 7.5 {
		t.Errorf("expected configured switch price 7.5, got %v", switches.UnitPrice)
	}

	want := equipment.CalculateQuote(rooms, equipment.DefaultPriceTable().
		WithOverrides(map[string]float64{equipment.MaterialOutlet: 10, equipment.MaterialSwitch: 7.5}))
	if quote.TotalPrice != want.TotalPrice {
		t.Errorf("expected total %v, got %v", want.TotalPrice, quote.TotalPrice)
	}
}

func TestHandleQuote_NoRooms(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := newJSONRequest(t, http.MethodPost, "/api/quote", roomsBody{})
	rec := httptest.NewRecorder()

	if err := HandleQuote(newTestDeps(app, nil))(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !strings.Contains(rec.Body.String(), `"materials":[]`) {
		t.Errorf("expected an empty materials list, got %s", rec.Body.String())
	}
	if !strings.Contains(rec.Body.String(), `"total_price":0`) {
		t.Errorf("expected a zero total, got %s", rec.Body.String())
	}
}

func TestHandleQuotePDF(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	d := newTestDeps(app, nil)

	req := newJSONRequest(t, http.MethodPost, "/api/quote/pdf", validForm(d.Editor.Catalog().DefaultRooms()))
	rec := httptest.NewRecorder()

	if err := HandleQuotePDF(d)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != pdfContentType {
		t.Errorf("expected content type %q, got %q", pdfContentType, ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); cd != `attachment; filename="devis-Martin-Zoe.pdf"` {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}
	if !bytes.HasPrefix(rec.Body.Bytes(), []byte("%PDF-")) {
		t.Error("expected a PDF body")
	}
}

func TestHandleQuoteXLSX(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	d := newTestDeps(app, nil)

	req := newJSONRequest(t, http.MethodPost, "/api/quote/xlsx", validForm(d.Editor.Catalog().DefaultRooms()))
	rec := httptest.NewRecorder()

	if err := HandleQuoteXLSX(d)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Errorf("expected content type %q, got %q", xlsxContentType, ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "devis-Martin-Zoe.xlsx") {
		t.Errorf("unexpected Content-Disposition %q", cd)
	}

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	if err != nil {
		t.Fatalf("failed to open workbook: %v", err)
	}
	defer f.Close()

	ref, err := f.GetCellValue("Devis", "A3")
	if err != nil {
		t.Fatalf("failed to read reference cell: %v", err)
	}
	if !strings.Contains(ref, draftReference) {
		t.Errorf("expected draft reference in %q", ref)
	}
}

func TestHandleQuotePDF_InvalidBody(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/quote/pdf", strings.NewReader("[1,2"))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	if err := HandleQuotePDF(newTestDeps(app, nil))(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleQuote_RepairsPostedSnapshot(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	d := newTestDeps(app, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(`{"rooms":`+oversizedKitchen+`}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	if err := HandleQuote(d)(newTestRequestEvent(app, req, rec)); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var quote equipment.QuoteResult
	decodeBody(t, rec, &quote)
	if got := quote.Quantity(equipment.MaterialOutlet); got != 5 {
		t.Errorf("expected 5 outlets (4 in the block, 1 oven), got %d", got)
	}
	if _, ok := findLine(quote, equipment.MountingBoxMaterial(9)); ok {
		t.Error("a 9-gang mounting box was quoted")
	}
}
