package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase/core"
)

// errorBody is the JSON shape of every API error.
type errorBody struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"errors,omitempty"`
}

func respondError(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, errorBody{Error: message})
}

// respondFieldErrors answers 400 with the per-field validation messages.
func respondFieldErrors(e *core.RequestEvent, fields map[string]string) error {
	return e.JSON(http.StatusBadRequest, errorBody{
		Error:  "Le formulaire contient des erreurs",
		Fields: fields,
	})
}

// sendDownload writes data as a file attachment.
func sendDownload(e *core.RequestEvent, contentType, filename string, data []byte) error {
	e.Response.Header().Set("Content-Type", contentType)
	e.Response.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	e.Response.WriteHeader(http.StatusOK)
	_, err := e.Response.Write(data)
	return err
}
