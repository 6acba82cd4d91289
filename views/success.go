// Package views holds the server-rendered pages of the intake flow.
package views

// SuccessData is what the confirmation page shows after a submission.
type SuccessData struct {
	Reference string
	FullName  string
	Password  string
	PDFURL    string
	// DownloadURL serves the quote PDF rebuilt by this server.
	DownloadURL string
	Total       string
	HomeURL     string
}

func (d SuccessData) homeURL() string {
	if d.HomeURL == "" {
		return "/"
	}
	return d.HomeURL
}
