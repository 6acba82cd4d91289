package handlers

import (
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
	"github.com/pocketbase/pocketbase/tools/security"
	"go.uber.org/zap"

	"elecquote/equipment"
	"elecquote/services"
	"elecquote/views"
)

type submitFormResponse struct {
	ID           string                `json:"id"`
	Reference    string                `json:"reference"`
	FormPassword string                `json:"form_password"`
	PDFURL       string                `json:"pdf_url"`
	Quote        equipment.QuoteResult `json:"quote"`
}

// HandleSubmitForm validates and stores an intake form, prices its rooms and
// notifies the webhook. A webhook failure does not fail the submission.
func HandleSubmitForm(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		log := d.logger(e)

		var form services.IntakeForm
		if err := e.BindBody(&form); err != nil {
			return respondError(e, http.StatusBadRequest, "invalid request body")
		}

		if errs := services.ValidateForm(form); len(errs) > 0 {
			log.Info("form rejected", zap.Int("errors", len(errs)))
			return respondFieldErrors(e, errs)
		}

		quote, err := d.priceRooms(e, form.Rooms)
		if err != nil {
			log.Error("failed to load prices", zap.Error(err))
			return respondError(e, http.StatusInternalServerError, "Impossible de charger les prix")
		}

		reference, err := services.GenerateQuoteReference(d.App, d.now())
		if err != nil {
			log.Error("failed to generate quote reference", zap.Error(err))
			return respondError(e, http.StatusInternalServerError, "Impossible d'enregistrer le formulaire")
		}

		password := services.NewFormPassword()
		record, err := services.SaveForm(d.App, form, quote, reference, password)
		if err != nil {
			log.Error("failed to save form", zap.Error(err))
			return respondError(e, http.StatusInternalServerError, "Impossible d'enregistrer le formulaire")
		}

		var pdfURL string
		if d.Webhook != nil {
			pdfURL = d.Webhook.Notify(e.Request.Context(), services.WebhookPayload{
				FormID:     record.Id,
				IntakeForm: form,
				Quote:      quote,
			})
		}
		if pdfURL != "" {
			if err := services.SetFormPDFURL(d.App, record, pdfURL); err != nil {
				log.Warn("failed to store pdf url", zap.String("form_id", record.Id), zap.Error(err))
			}
		}

		log.Info("form submitted",
			zap.String("form_id", record.Id),
			zap.String("reference", reference),
			zap.Float64("total", quote.TotalPrice),
		)

		return e.JSON(http.StatusCreated, submitFormResponse{
			ID:           record.Id,
			Reference:    reference,
			FormPassword: password,
			PDFURL:       pdfURL,
			Quote:        quote,
		})
	}
}

// loadProtectedForm returns the stored form of the {id} path value when the
// ?password= query matches. Otherwise it writes the error response and
// returns ok == false.
func (d *Deps) loadProtectedForm(e *core.RequestEvent) (services.StoredForm, bool, error) {
	id := e.Request.PathValue("id")
	stored, err := services.LoadForm(d.App, id)
	if err != nil {
		d.logger(e).Info("form not found", zap.String("form_id", id), zap.Error(err))
		return stored, false, e.String(http.StatusNotFound, "Formulaire introuvable")
	}

	password := e.Request.URL.Query().Get("password")
	if password == "" || !security.Equal(password, stored.Password) {
		d.logger(e).Warn("form access denied", zap.String("form_id", id))
		return stored, false, e.String(http.StatusForbidden, "Mot de passe invalide")
	}
	return stored, true, nil
}

// HandleFormSuccess renders the confirmation page of a submitted form.
func HandleFormSuccess(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		stored, ok, err := d.loadProtectedForm(e)
		if !ok {
			return err
		}

		component := views.SuccessPage(views.SuccessData{
			Reference:   stored.Reference,
			FullName:    stored.Form.FullName(),
			Password:    stored.Password,
			PDFURL:      stored.PDFURL,
			DownloadURL: "/forms/" + url.PathEscape(stored.ID) + "/pdf?password=" + url.QueryEscape(stored.Password),
			Total:       services.FormatEUR(stored.Quote.TotalPrice),
		})
		e.Response.Header().Set("Content-Type", "text/html; charset=utf-8")
		return component.Render(e.Request.Context(), e.Response)
	}
}

// HandleFormPDF rebuilds the quote PDF of a stored form.
func HandleFormPDF(d *Deps) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		stored, ok, err := d.loadProtectedForm(e)
		if !ok {
			return err
		}

		created := stored.Created
		if created.IsZero() {
			created = d.now()
		}

		data := services.BuildExportData(stored.Form, stored.Quote, d.Company, stored.Reference, created)
		pdf, err := services.GenerateQuotePDF(data)
		if err != nil {
			d.logger(e).Error("failed to generate form pdf", zap.String("form_id", stored.ID), zap.Error(err))
			return e.String(http.StatusInternalServerError, "Impossible de générer le PDF")
		}

		return sendDownload(e, pdfContentType, services.QuoteFilename(stored.Form, "pdf"), pdf)
	}
}
