package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"elecquote/config"
	"elecquote/equipment"
	"elecquote/services"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app core.App, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

var testNow = time.Date(2025, time.March, 4, 10, 0, 0, 0, time.UTC)

// newTestDeps wires handlers to app with sequential ids and a fixed clock.
func newTestDeps(app core.App, webhook *services.WebhookClient) *Deps {
	return &Deps{
		App:     app,
		Editor:  equipment.NewEditor(equipment.NewSequenceGenerator("id-")),
		Webhook: webhook,
		Company: config.CompanyConfig{
			Name:         "Elec Gers",
			Contact:      "contact@elec-gers.fr",
			Legal:        "SIRET 000 000 000 00000",
			ValidityDays: 30,
			VATPercent:   20,
		},
		Logger: zap.NewNop(),
		Now:    func() time.Time { return testNow },
	}
}

// newJSONRequest builds a request whose body is v encoded as JSON.
func newJSONRequest(t *testing.T, method, target string, v any) *http.Request {
	t.Helper()

	var body io.Reader = http.NoBody
	if v != nil {
		data, err := json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		body = strings.NewReader(string(data))
	}
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", rec.Body.String(), err)
	}
}

// validForm returns an intake form that passes validation.
func validForm(rooms []equipment.Room) services.IntakeForm {
	return services.IntakeForm{
		TypeOfWork:      "Construction",
		LodgingType:     "Maison",
		Department:      "2A",
		SurfaceArea:     "120",
		BreakerLocation: "inside",
		HighTensionLine: "aerienne",
		PanelType:       "encastre",
		AluminumJoinery: "oui",
		VMCNeeded:       "non",
		Rooms:           rooms,
		Heating:         services.HeatingTypes{HeatPump: true},
		FirstName:       "Zoé",
		LastName:        "Martin",
		Email:           "zoe.martin@example.fr",
		Phone:           "+33601020304",
	}
}
