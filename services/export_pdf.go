package services

import (
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"elecquote/equipment"
)

var (
	primaryBlue = &props.Color{Red: 30, Green: 58, Blue: 138}
	bodyGray    = &props.Color{Red: 44, Green: 62, Blue: 80}
	mutedGray   = &props.Color{Red: 102, Green: 102, Blue: 102}
)

// GenerateQuotePDF renders a quote document with maroto/v2 and returns the
// raw PDF bytes.
func GenerateQuotePDF(data ExportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithOrientation(orientation.Vertical).
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		WithPageNumber(props.PageNumber{
			Pattern: "Page {current} sur {total}",
			Place:   props.RightBottom,
			Size:    8,
			Color:   mutedGray,
		}).
		Build()

	m := maroto.New(cfg)

	addCompanyHeader(m, data)
	addSection(m, "Informations générales", data.General)
	addSection(m, "Informations client", data.Client)
	addRooms(m, data.Rooms)
	addMaterialsHeader(m)
	for i, item := range data.Materials {
		addMaterialRow(m, item, i%2 == 1)
	}
	addTotals(m, data)
	addLegalFooter(m, data)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}

	return doc.GetBytes(), nil
}

func addCompanyHeader(m core.Maroto, data ExportData) {
	m.AddRows(
		row.New(10).Add(
			col.New(8).Add(
				text.New(data.Company.Name, props.Text{
					Size:  18,
					Style: fontstyle.Bold,
					Color: primaryBlue,
				}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Date : %s", data.CreatedDate), props.Text{
					Size:  9,
					Align: align.Right,
					Color: mutedGray,
				}),
			),
		),
		row.New(6).Add(
			col.New(8).Add(
				text.New(data.Company.Contact, props.Text{Size: 10, Color: mutedGray}),
			),
			col.New(4).Add(
				text.New(fmt.Sprintf("Réf. : %s", data.ReferenceNumber), props.Text{
					Size:  9,
					Align: align.Right,
					Color: mutedGray,
				}),
			),
		),
	)

	m.AddRows(row.New(6))
	m.AddRows(
		row.New(12).Add(
			col.New(12).Add(
				text.New(data.Title, props.Text{
					Size:  16,
					Style: fontstyle.Bold,
					Color: primaryBlue,
				}),
			),
		),
	)
	addDivider(m)
}

func addDivider(m core.Maroto) {
	m.AddRows(
		row.New(4).Add(
			col.New(12).Add(line.New(props.Line{Color: primaryBlue, Thickness: 0.5})),
		),
	)
}

func addSectionTitle(m core.Maroto, title string) {
	m.AddRows(
		row.New(9).Add(
			col.New(12).Add(
				text.New(title, props.Text{
					Size:  13,
					Style: fontstyle.Bold,
					Color: primaryBlue,
				}),
			),
		),
	)
}

// addSection prints label/value lines; empty values are skipped.
func addSection(m core.Maroto, title string, fields []ExportField) {
	addSectionTitle(m, title)
	for _, f := range fields {
		if f.Value == "" {
			continue
		}
		m.AddRows(
			row.New(6).Add(
				col.New(4).Add(text.New(f.Label+" :", props.Text{Size: 10, Style: fontstyle.Bold, Color: bodyGray})),
				col.New(8).Add(text.New(f.Value, props.Text{Size: 10, Color: bodyGray})),
			),
		)
	}
	m.AddRows(row.New(3))
	addDivider(m)
}

func addRooms(m core.Maroto, rooms []ExportRoom) {
	addSectionTitle(m, "Pièces & équipements")
	for _, r := range rooms {
		m.AddRows(
			row.New(8).Add(
				col.New(12).Add(text.New(r.Name, props.Text{Size: 11, Style: fontstyle.Bold, Color: primaryBlue})),
			),
		)
		addBulletList(m, "Éclairages", r.Lighting)
		addBulletList(m, "Blocs de prises", r.OutletBlocks)
		addBulletList(m, "Prises spécialisées", r.SpecializedOutlets)
		m.AddRows(row.New(2))
	}
	addDivider(m)
}

func addBulletList(m core.Maroto, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	m.AddRows(
		row.New(6).Add(
			col.New(12).Add(text.New(heading+" :", props.Text{Size: 10, Style: fontstyle.Bold, Color: bodyGray})),
		),
	)
	for _, item := range items {
		m.AddRows(
			row.New(5).Add(
				col.New(12).Add(text.New("• "+item, props.Text{Size: 9, Left: 4, Color: bodyGray})),
			),
		)
	}
}

// addMaterialsHeader adds the column header row of the materials table.
func addMaterialsHeader(m core.Maroto) {
	addSectionTitle(m, "Matériel")

	headerText := props.Text{
		Size:  9,
		Style: fontstyle.Bold,
		Align: align.Right,
		Color: &props.Color{Red: 255, Green: 255, Blue: 255},
	}
	headerTextLeft := headerText
	headerTextLeft.Align = align.Left
	headerCell := &props.Cell{BackgroundColor: primaryBlue}

	m.AddRows(
		row.New(8).Add(
			col.New(6).Add(text.New("Désignation", headerTextLeft)).WithStyle(headerCell),
			col.New(2).Add(text.New("Qté", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Prix unitaire", headerText)).WithStyle(headerCell),
			col.New(2).Add(text.New("Total", headerText)).WithStyle(headerCell),
		),
	)
}

// addMaterialRow adds one line item; shaded rows alternate for readability.
func addMaterialRow(m core.Maroto, item equipment.MaterialLineItem, shaded bool) {
	rightText := props.Text{Size: 9, Align: align.Right, Color: bodyGray}
	leftText := rightText
	leftText.Align = align.Left

	cols := []core.Col{
		col.New(6).Add(text.New(item.Name, leftText)),
		col.New(2).Add(text.New(formatQty(float64(item.Quantity)), rightText)),
		col.New(2).Add(text.New(FormatEUR(item.UnitPrice), rightText)),
		col.New(2).Add(text.New(FormatEUR(item.TotalPrice), rightText)),
	}
	if shaded {
		cell := &props.Cell{BackgroundColor: &props.Color{Red: 243, Green: 244, Blue: 246}}
		for i := range cols {
			cols[i] = cols[i].WithStyle(cell)
		}
	}

	m.AddRows(row.New(7).Add(cols...))
}

// addTotals prints the HT/VAT/TTC breakdown and the total spelled out.
func addTotals(m core.Maroto, data ExportData) {
	m.AddRows(row.New(4))

	label := props.Text{Size: 10, Align: align.Right, Color: bodyGray}
	value := label
	if !data.VATExempt {
		m.AddRows(
			row.New(6).Add(
				col.New(8).Add(text.New("Total HT", label)),
				col.New(4).Add(text.New(FormatEUR(data.Totals.TotalHT), value)),
			),
			row.New(6).Add(
				col.New(8).Add(text.New(fmt.Sprintf("TVA %s %%", formatQty(data.Totals.VATPercent)), label)),
				col.New(4).Add(text.New(FormatEUR(data.Totals.VATAmount), value)),
			),
		)
	}

	style := props.Text{Size: 11, Style: fontstyle.Bold, Align: align.Right, Color: primaryBlue}
	cell := &props.Cell{BackgroundColor: &props.Color{Red: 240, Green: 240, Blue: 240}}
	m.AddRows(
		row.New(9).Add(
			col.New(8).Add(text.New("Total matériel TTC", style)).WithStyle(cell),
			col.New(4).Add(text.New(FormatEUR(data.Totals.TotalTTC), style)).WithStyle(cell),
		),
	)
	if data.VATExempt {
		m.AddRows(row.New(5).Add(
			col.New(12).Add(text.New("TVA non applicable, article 293 B du CGI", props.Text{Size: 8, Align: align.Right, Color: mutedGray})),
		))
	}

	m.AddRows(
		row.New(7).Add(
			col.New(12).Add(text.New("Arrêté le présent devis à la somme de "+data.AmountInWords+".", props.Text{
				Size:  9,
				Style: fontstyle.Italic,
				Top:   2,
				Color: bodyGray,
			})),
		),
	)
}

// addLegalFooter adds the company legal line and the validity notice.
func addLegalFooter(m core.Maroto, data ExportData) {
	footer := props.Text{Size: 8, Color: mutedGray}
	m.AddRows(row.New(8))
	m.AddRows(
		row.New(5).Add(col.New(12).Add(text.New(data.Company.Legal, footer))),
		row.New(5).Add(col.New(12).Add(text.New(data.ValidityNote, footer))),
	)
}
