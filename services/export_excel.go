package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	quoteSheet = "Devis"
	roomsSheet = "Pièces"
)

// eurFormat displays numeric cells as French euro amounts.
var eurFormat = `#,##0.00\ "€"`

// GenerateQuoteExcel writes the quote to a workbook with a "Devis" sheet
// (priced materials) and a "Pièces" sheet (equipment per room) and returns
// the file contents.
func GenerateQuoteExcel(data ExportData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), quoteSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if _, err := f.NewSheet(roomsSheet); err != nil {
		return nil, fmt.Errorf("create rooms sheet: %w", err)
	}

	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}
	if err := writeQuoteSheet(f, styles, data); err != nil {
		return nil, err
	}
	if err := writeRoomsSheet(f, styles, data.Rooms); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}

	return buf.Bytes(), nil
}

type sheetStyles struct {
	title, subtitle, header, cell, money, totalLabel, totalValue int
}

func newSheetStyles(f *excelize.File) (sheetStyles, error) {
	var s sheetStyles
	specs := []struct {
		name  string
		dst   *int
		style *excelize.Style
	}{
		{"title", &s.title, &excelize.Style{
			Font: &excelize.Font{Bold: true, Size: 16, Color: "#1E3A8A"},
		}},
		{"subtitle", &s.subtitle, &excelize.Style{
			Font: &excelize.Font{Size: 11, Color: "#666666"},
		}},
		{"header", &s.header, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
			Fill:      excelize.Fill{Type: "pattern", Color: []string{"#1E3A8A"}, Pattern: 1},
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
			Border:    thinBorders(),
		}},
		{"cell", &s.cell, &excelize.Style{
			Font:   &excelize.Font{Size: 10},
			Border: thinBorders(),
		}},
		{"money", &s.money, &excelize.Style{
			Font:         &excelize.Font{Size: 10},
			Border:       thinBorders(),
			CustomNumFmt: &eurFormat,
		}},
		{"total label", &s.totalLabel, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 11},
			Alignment: &excelize.Alignment{Horizontal: "right"},
		}},
		{"total value", &s.totalValue, &excelize.Style{
			Font:         &excelize.Font{Bold: true, Size: 11},
			CustomNumFmt: &eurFormat,
		}},
	}
	for _, spec := range specs {
		id, err := f.NewStyle(spec.style)
		if err != nil {
			return s, fmt.Errorf("create %s style: %w", spec.name, err)
		}
		*spec.dst = id
	}
	return s, nil
}

func writeQuoteSheet(f *excelize.File, st sheetStyles, data ExportData) error {
	for col, width := range map[string]float64{"A": 48, "B": 12, "C": 16, "D": 16} {
		if err := f.SetColWidth(quoteSheet, col, col, width); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	if err := f.MergeCell(quoteSheet, "A1", "D1"); err != nil {
		return fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(quoteSheet, "A1", sanitizeExcelCell(data.Title))
	f.SetCellStyle(quoteSheet, "A1", "D1", st.title)

	f.SetCellValue(quoteSheet, "A2", sanitizeExcelCell(data.Company.Name+" – "+data.Company.Contact))
	f.SetCellValue(quoteSheet, "A3", fmt.Sprintf("Réf. %s – %s", data.ReferenceNumber, data.CreatedDate))
	f.SetCellStyle(quoteSheet, "A2", "A3", st.subtitle)

	headers := []string{"Désignation", "Quantité", "Prix unitaire", "Total"}
	if err := f.SetSheetRow(quoteSheet, "A5", &headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	f.SetCellStyle(quoteSheet, "A5", "D5", st.header)

	row := 6
	for _, item := range data.Materials {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(quoteSheet, "A"+r, sanitizeExcelCell(item.Name))
		f.SetCellValue(quoteSheet, "B"+r, item.Quantity)
		f.SetCellValue(quoteSheet, "C"+r, item.UnitPrice)
		f.SetCellValue(quoteSheet, "D"+r, item.TotalPrice)
		f.SetCellStyle(quoteSheet, "A"+r, "B"+r, st.cell)
		f.SetCellStyle(quoteSheet, "C"+r, "D"+r, st.money)
		row++
	}

	row++
	totals := []struct {
		label string
		value float64
		bold  bool
	}{
		{"Total HT", data.Totals.TotalHT, false},
		{fmt.Sprintf("TVA %s %%", formatQty(data.Totals.VATPercent)), data.Totals.VATAmount, false},
		{"Total TTC", data.Totals.TotalTTC, true},
	}
	if data.VATExempt {
		totals = totals[2:]
	}
	for _, t := range totals {
		r := fmt.Sprintf("%d", row)
		f.SetCellValue(quoteSheet, "C"+r, t.label)
		f.SetCellValue(quoteSheet, "D"+r, t.value)
		f.SetCellStyle(quoteSheet, "C"+r, "C"+r, st.totalLabel)
		if t.bold {
			f.SetCellStyle(quoteSheet, "D"+r, "D"+r, st.totalValue)
		} else {
			f.SetCellStyle(quoteSheet, "D"+r, "D"+r, st.money)
		}
		row++
	}
	f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", row), "Arrêté à la somme de "+data.AmountInWords)
	f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), st.subtitle)

	row += 2
	f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", row), sanitizeExcelCell(data.ValidityNote))
	f.SetCellValue(quoteSheet, fmt.Sprintf("A%d", row+1), sanitizeExcelCell(data.Company.Legal))
	f.SetCellStyle(quoteSheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row+1), st.subtitle)

	return nil
}

func writeRoomsSheet(f *excelize.File, st sheetStyles, rooms []ExportRoom) error {
	for col, width := range map[string]float64{"A": 24, "B": 22, "C": 60} {
		if err := f.SetColWidth(roomsSheet, col, col, width); err != nil {
			return fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	headers := []string{"Pièce", "Catégorie", "Détail"}
	if err := f.SetSheetRow(roomsSheet, "A1", &headers); err != nil {
		return fmt.Errorf("write rooms header: %w", err)
	}
	f.SetCellStyle(roomsSheet, "A1", "C1", st.header)

	row := 2
	write := func(room, category string, items []string) {
		for _, item := range items {
			r := fmt.Sprintf("%d", row)
			f.SetCellValue(roomsSheet, "A"+r, sanitizeExcelCell(room))
			f.SetCellValue(roomsSheet, "B"+r, category)
			f.SetCellValue(roomsSheet, "C"+r, sanitizeExcelCell(item))
			f.SetCellStyle(roomsSheet, "A"+r, "C"+r, st.cell)
			row++
		}
	}
	for _, room := range rooms {
		write(room.Name, "Éclairage", room.Lighting)
		write(room.Name, "Bloc de prises", room.OutletBlocks)
		write(room.Name, "Prise spécialisée", room.SpecializedOutlets)
	}

	return nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns thin black borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1,
		}
	}
	return borders
}
