package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"elecquote/equipment"
	"elecquote/services"
)

// draftReference stands in for the reference of a quote that was not submitted.
const draftReference = "PROVISOIRE"

const (
	pdfContentType  = "application/pdf"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// priceRooms prices rooms with the stored table plus the configured overrides.
func (d *Deps) priceRooms(e *core.RequestEvent, rooms []equipment.Room) (equipment.QuoteResult, error) {
	prices, source, err := services.LoadPriceTable(d.App, d.PriceOverrides)
	if err != nil {
		return equipment.QuoteResult{}, err
	}
	quote := equipment.CalculateQuote(rooms, prices)
	d.logger(e).Debug("quote computed",
		zap.Int("rooms", len(rooms)),
		zap.Int("stored_prices", source.Stored),
		zap.Int("price_overrides", source.Overrides),
		zap.Float64("total", quote.TotalPrice),
	)
	return quote, nil
}

// HandleQuote prices the posted room list.
func HandleQuote(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var req roomsBody
		if err := e.BindBody(&req); err != nil {
			return respondError(e, http.StatusBadRequest, "invalid request body")
		}

		quote, err := d.priceRooms(e, req.Rooms)
		if err != nil {
			d.logger(e).Error("failed to load prices", zap.Error(err))
			return respondError(e, http.StatusInternalServerError, "Impossible de charger les prix")
		}
		if quote.Materials == nil {
			quote.Materials = []equipment.MaterialLineItem{}
		}
		return e.JSON(http.StatusOK, quote)
	}
}

// HandleQuotePDF renders the posted intake form as a PDF quote without
// storing it.
func HandleQuotePDF(d *Deps) func(*core.RequestEvent) error {
	return handleQuoteExport(d, "pdf", pdfContentType, services.GenerateQuotePDF)
}

// HandleQuoteXLSX renders the posted intake form as an Excel workbook.
func HandleQuoteXLSX(d *Deps) func(*core.RequestEvent) error {
	return handleQuoteExport(d, "xlsx", xlsxContentType, services.GenerateQuoteExcel)
}

func handleQuoteExport(d *Deps, ext, contentType string, generate func(services.ExportData) ([]byte, error)) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var form services.IntakeForm
		if err := e.BindBody(&form); err != nil {
			return respondError(e, http.StatusBadRequest, "invalid request body")
		}

		quote, err := d.priceRooms(e, form.Rooms)
		if err != nil {
			d.logger(e).Error("failed to load prices", zap.Error(err))
			return respondError(e, http.StatusInternalServerError, "Impossible de charger les prix")
		}

		data := services.BuildExportData(form, quote, d.Company, draftReference, d.now())
		file, err := generate(data)
		if err != nil {
			d.logger(e).Error("failed to generate quote export", zap.String("format", ext), zap.Error(err))
			return respondError(e, http.StatusInternalServerError, "Impossible de générer le document")
		}

		return sendDownload(e, contentType, services.QuoteFilename(form, ext), file)
	}
}
