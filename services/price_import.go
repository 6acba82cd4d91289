package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"slices"
	"sort"
	"strings"

	"github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"elecquote/equipment"
)

// ImportError is a field-level error on one row of an uploaded price list.
type ImportError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PriceRow is one validated line of a price list.
type PriceRow struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

// PriceImportResult is returned after parsing and validating an uploaded file.
type PriceImportResult struct {
	FileName  string        `json:"file_name"`
	TotalRows int           `json:"total_rows"`
	ValidRows int           `json:"valid_rows"`
	ErrorRows int           `json:"error_rows"`
	Errors    []ImportError `json:"errors"`
	Rows      []PriceRow    `json:"rows"`
}

const (
	priceNameHeader  = "Désignation"
	priceValueHeader = "Prix unitaire TTC"
)

// Accepted spellings of the two columns, compared after normalizeHeader.
var (
	nameHeaders  = []string{"désignation", "designation", "matériel", "materiel", "nom", "name"}
	priceHeaders = []string{"prix unitaire ttc", "prix unitaire", "prix", "unit_price", "price"}
)

// parseCSV reads a CSV file and returns headers + data rows. French
// spreadsheets export with ';', so the delimiter is sniffed from the header.
func parseCSV(file io.Reader) ([]string, [][]string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.TrimLeadingSpace = true
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	firstLine, _, _ := bytes.Cut(data, []byte("\n"))
	if bytes.Count(firstLine, []byte(";")) > bytes.Count(firstLine, []byte(",")) {
		reader.Comma = ';'
	}

	allRows, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(allRows) < 2 {
		return nil, nil, fmt.Errorf("le fichier doit contenir une ligne d'en-tête et au moins une ligne de données")
	}

	return allRows[0], allRows[1:], nil
}

// parseExcel reads an xlsx file and returns headers + data rows from the first sheet.
func parseExcel(file io.Reader) ([]string, [][]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0), excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("le fichier doit contenir une ligne d'en-tête et au moins une ligne de données")
	}

	return rows[0], rows[1:], nil
}

func normalizeHeader(h string) string {
	h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
	h = strings.TrimSuffix(h, "*")
	h = strings.TrimSuffix(h, "(€)")
	return strings.TrimSpace(h)
}

// mapPriceHeaders returns the column index of the name and price columns,
// -1 when a column is missing.
func mapPriceHeaders(headers []string) (nameCol, priceCol int) {
	nameCol, priceCol = -1, -1
	for i, h := range headers {
		n := normalizeHeader(h)
		switch {
		case nameCol < 0 && slices.Contains(nameHeaders, n):
			nameCol = i
		case priceCol < 0 && slices.Contains(priceHeaders, n):
			priceCol = i
		}
	}
	return nameCol, priceCol
}

// ParsePrice reads a euro amount written the French or the English way:
// "4,20", "4.20", "1 234,50 €".
func ParsePrice(s string) (float64, error) {
	cleaned := strings.NewReplacer("€", "", " ", "", thousandsSep, "", "\u202f", "").Replace(strings.TrimSpace(s))
	// The separator appearing last is the decimal one.
	comma, dot := strings.LastIndex(cleaned, ","), strings.LastIndex(cleaned, ".")
	switch {
	case comma > dot:
		cleaned = strings.ReplaceAll(strings.ReplaceAll(cleaned, ".", ""), ",", ".")
	case dot > comma:
		cleaned = strings.ReplaceAll(cleaned, ",", "")
	}
	return cast.ToFloat64E(cleaned)
}

// ValidatePriceFile parses and validates an uploaded price list (.csv or .xlsx).
func ValidatePriceFile(file io.Reader, fileName string) (*PriceImportResult, error) {
	var headers []string
	var dataRows [][]string
	var err error

	lowerName := strings.ToLower(fileName)
	switch {
	case strings.HasSuffix(lowerName, ".csv"):
		headers, dataRows, err = parseCSV(file)
	case strings.HasSuffix(lowerName, ".xlsx"):
		headers, dataRows, err = parseExcel(file)
	default:
		return nil, fmt.Errorf("format non pris en charge : le fichier doit être .csv ou .xlsx")
	}
	if err != nil {
		return nil, err
	}

	nameCol, priceCol := mapPriceHeaders(headers)
	if nameCol < 0 || priceCol < 0 {
		return nil, fmt.Errorf("colonnes %q et %q requises", priceNameHeader, priceValueHeader)
	}

	result := &PriceImportResult{
		FileName: fileName,
		Rows:     make([]PriceRow, 0, len(dataRows)),
	}
	firstSeen := make(map[string]int)

	cell := func(row []string, col int) string {
		if col < len(row) {
			return strings.TrimSpace(row[col])
		}
		return ""
	}

	for rowIdx, row := range dataRows {
		rowNum := rowIdx + 2 // 1-indexed, +1 for header row
		name, rawPrice := cell(row, nameCol), cell(row, priceCol)
		if name == "" && rawPrice == "" {
			continue
		}
		result.TotalRows++

		var rowErrors []ImportError
		if name == "" {
			rowErrors = append(rowErrors, ImportError{Row: rowNum, Field: priceNameHeader, Message: "Ce champ est obligatoire"})
		} else if prev, dup := firstSeen[strings.ToLower(name)]; dup {
			rowErrors = append(rowErrors, ImportError{
				Row:     rowNum,
				Field:   priceNameHeader,
				Message: fmt.Sprintf("%q figure déjà ligne %d", name, prev),
			})
		} else {
			firstSeen[strings.ToLower(name)] = rowNum
		}

		price, err := ParsePrice(rawPrice)
		switch {
		case rawPrice == "":
			rowErrors = append(rowErrors, ImportError{Row: rowNum, Field: priceValueHeader, Message: "Ce champ est obligatoire"})
		case err != nil:
			rowErrors = append(rowErrors, ImportError{Row: rowNum, Field: priceValueHeader, Message: fmt.Sprintf("%q n'est pas un montant", rawPrice)})
		case price < 0:
			rowErrors = append(rowErrors, ImportError{Row: rowNum, Field: priceValueHeader, Message: "Le prix ne peut pas être négatif"})
		}

		if len(rowErrors) > 0 {
			result.Errors = append(result.Errors, rowErrors...)
			result.ErrorRows++
			continue
		}
		result.Rows = append(result.Rows, PriceRow{Name: name, UnitPrice: roundCents(price)})
	}
	result.ValidRows = len(result.Rows)

	return result, nil
}

// ApplyPriceImport upserts rows into material_prices in one transaction and
// reports how many entries were created and updated.
func ApplyPriceImport(app core.App, rows []PriceRow) (created, updated int, err error) {
	err = app.RunInTransaction(func(txApp core.App) error {
		col, err := txApp.FindCollectionByNameOrId("material_prices")
		if err != nil {
			return fmt.Errorf("material_prices collection not found: %w", err)
		}

		created, updated = 0, 0
		for _, row := range rows {
			record, err := txApp.FindFirstRecordByData(col, "name", row.Name)
			if err != nil {
				record = core.NewRecord(col)
				record.Set("name", row.Name)
				created++
			} else {
				updated++
			}
			record.Set("unit_price", row.UnitPrice)
			if err := txApp.Save(record); err != nil {
				return fmt.Errorf("save price %q: %w", row.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return created, updated, nil
}

// GenerateErrorReport creates a downloadable .xlsx file from validation errors.
func GenerateErrorReport(errors []ImportError) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Erreurs"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DC2626"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Border:    thinBorders(),
	})

	f.SetCellValue(sheet, "A1", "Ligne")
	f.SetCellValue(sheet, "B1", "Colonne")
	f.SetCellValue(sheet, "C1", "Erreur")
	f.SetCellStyle(sheet, "A1", "C1", headerStyle)
	f.SetColWidth(sheet, "A", "A", 8)
	f.SetColWidth(sheet, "B", "B", 22)
	f.SetColWidth(sheet, "C", "C", 55)

	for i, e := range errors {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, e.Row)
		f.SetCellValue(sheet, "B"+row, sanitizeExcelCell(e.Field))
		f.SetCellValue(sheet, "C"+row, sanitizeExcelCell(e.Message))
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write error report: %w", err)
	}
	return buf.Bytes(), nil
}

// GeneratePriceListExcel writes table as an importable workbook, sorted by
// material name. It doubles as the import template.
func GeneratePriceListExcel(table equipment.PriceTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Prix"
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	styles, err := newSheetStyles(f)
	if err != nil {
		return nil, err
	}

	headers := []string{priceNameHeader, priceValueHeader}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	f.SetCellStyle(sheet, "A1", "B1", styles.header)
	f.SetColWidth(sheet, "A", "A", 40)
	f.SetColWidth(sheet, "B", "B", 18)

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for i, name := range names {
		row := fmt.Sprintf("%d", i+2)
		f.SetCellValue(sheet, "A"+row, sanitizeExcelCell(name))
		f.SetCellValue(sheet, "B"+row, table[name])
		f.SetCellStyle(sheet, "A"+row, "A"+row, styles.cell)
		f.SetCellStyle(sheet, "B"+row, "B"+row, styles.money)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write price list: %w", err)
	}
	return buf.Bytes(), nil
}
