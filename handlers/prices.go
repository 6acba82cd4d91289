package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"elecquote/services"
)

type priceEntry struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
}

type priceListResponse struct {
	Prices    []priceEntry `json:"prices"`
	Stored    int          `json:"stored"`
	Overrides int          `json:"overrides"`
}

// HandlePriceList returns the effective price table, sorted by material name.
func HandlePriceList(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		table, source, err := services.LoadPriceTable(d.App, d.PriceOverrides)
		if err != nil {
			d.logger(e).Error("failed to load prices", zap.Error(err))
			return respondError(e, http.StatusInternalServerError, "Impossible de charger les prix")
		}

		resp := priceListResponse{
			Prices:    make([]priceEntry, 0, len(table)),
			Stored:    source.Stored,
			Overrides: source.Overrides,
		}
		for name, price := range table {
			resp.Prices = append(resp.Prices, priceEntry{Name: name, UnitPrice: price})
		}
		sort.Slice(resp.Prices, func(i, j int) bool { return resp.Prices[i].Name < resp.Prices[j].Name })

		return e.JSON(http.StatusOK, resp)
	}
}

// HandlePriceExport downloads the effective price table as an importable
// workbook.
func HandlePriceExport(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		table, _, err := services.LoadPriceTable(d.App, d.PriceOverrides)
		if err != nil {
			d.logger(e).Error("failed to load prices", zap.Error(err))
			return respondError(e, http.StatusInternalServerError, "Impossible de charger les prix")
		}

		xlsx, err := services.GeneratePriceListExcel(table)
		if err != nil {
			d.logger(e).Error("failed to generate price list", zap.Error(err))
			return respondError(e, http.StatusInternalServerError, "Impossible de générer le fichier")
		}

		filename := fmt.Sprintf("prix-materiel-%s.xlsx", d.now().Format("2006-01-02"))
		return sendDownload(e, xlsxContentType, filename, xlsx)
	}
}

type priceImportResponse struct {
	*services.PriceImportResult
	Committed bool `json:"committed"`
	Created   int  `json:"created"`
	Updated   int  `json:"updated"`
}

// HandlePriceImport validates an uploaded .csv/.xlsx price list. With
// ?commit=true and no row errors the prices are written to material_prices.
// A file with row errors answers 422 and is never partially imported.
func HandlePriceImport(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		log := d.logger(e)

		if err := e.Request.ParseMultipartForm(10 << 20); err != nil {
			return respondError(e, http.StatusBadRequest, "Fichier trop volumineux ou formulaire invalide")
		}

		file, header, err := e.Request.FormFile("file")
		if err != nil {
			return respondError(e, http.StatusBadRequest, "Veuillez sélectionner un fichier")
		}
		defer file.Close()

		result, err := services.ValidatePriceFile(file, header.Filename)
		if err != nil {
			log.Info("price file rejected", zap.String("file", header.Filename), zap.Error(err))
			return respondError(e, http.StatusBadRequest, err.Error())
		}

		resp := priceImportResponse{PriceImportResult: result}
		if result.ErrorRows > 0 {
			return e.JSON(http.StatusUnprocessableEntity, resp)
		}

		if e.Request.URL.Query().Get("commit") == "true" {
			resp.Created, resp.Updated, err = services.ApplyPriceImport(d.App, result.Rows)
			if err != nil {
				log.Error("failed to import prices", zap.Error(err))
				return respondError(e, http.StatusInternalServerError, "Impossible d'enregistrer les prix")
			}
			resp.Committed = true
			log.Info("prices imported",
				zap.String("file", header.Filename),
				zap.Int("created", resp.Created),
				zap.Int("updated", resp.Updated),
			)
		}

		return e.JSON(http.StatusOK, resp)
	}
}

// HandlePriceErrorReport turns the errors of a rejected import, posted back
// as JSON, into a downloadable workbook.
func HandlePriceErrorReport(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var errors []services.ImportError
		if err := json.NewDecoder(e.Request.Body).Decode(&errors); err != nil {
			return respondError(e, http.StatusBadRequest, "Liste d'erreurs invalide")
		}

		xlsx, err := services.GenerateErrorReport(errors)
		if err != nil {
			d.logger(e).Error("failed to generate error report", zap.Error(err))
			return respondError(e, http.StatusInternalServerError, "Impossible de générer le rapport")
		}

		filename := fmt.Sprintf("erreurs-import-prix-%s.xlsx", d.now().Format("2006-01-02"))
		return sendDownload(e, xlsxContentType, filename, xlsx)
	}
}
