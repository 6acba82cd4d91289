package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/cast"
	"go.uber.org/zap"

	"elecquote/equipment"
)

// WebhookPayload is the JSON body posted after a form is stored.
type WebhookPayload struct {
	FormID string `json:"form_id"`
	IntakeForm
	Quote equipment.QuoteResult `json:"quote"`
}

// WebhookClient notifies the document automation endpoint of new submissions.
// The endpoint may answer with the URL of the PDF it produced.
type WebhookClient struct {
	url        string
	httpClient *resty.Client
	logger     *zap.Logger
}

// NewWebhookClient creates a client posting to url. An empty url disables
// the notification.
func NewWebhookClient(url string, timeout time.Duration, retryCount int, logger *zap.Logger) *WebhookClient {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(retryCount).
		SetRetryWaitTime(500*time.Millisecond).
		SetRetryMaxWaitTime(3*time.Second).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			return err != nil || r.StatusCode() >= 500
		}).
		SetLogger(logger.Sugar()).
		SetHeader("Content-Type", "application/json")

	return &WebhookClient{
		url:        url,
		httpClient: client,
		logger:     logger,
	}
}

// Notify posts payload and returns the "pdfUrl" of a JSON answer. Transport
// failures, error statuses and non-JSON answers are logged and yield "".
func (c *WebhookClient) Notify(ctx context.Context, payload WebhookPayload) string {
	if c.url == "" {
		return ""
	}

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(c.url)
	if err != nil {
		c.logger.Error("webhook call failed",
			zap.String("form_id", payload.FormID),
			zap.Error(err),
		)
		return ""
	}

	if resp.IsError() {
		c.logger.Error("webhook returned error status",
			zap.String("form_id", payload.FormID),
			zap.Int("status_code", resp.StatusCode()),
		)
		return ""
	}

	if !strings.Contains(resp.Header().Get("Content-Type"), "application/json") {
		c.logger.Warn("webhook response is not JSON",
			zap.String("form_id", payload.FormID),
			zap.String("body", truncate(resp.String(), 200)),
		)
		return ""
	}

	var body map[string]any
	if err := json.Unmarshal(resp.Body(), &body); err != nil {
		c.logger.Warn("failed to parse webhook response",
			zap.String("form_id", payload.FormID),
			zap.Error(err),
		)
		return ""
	}

	pdfURL := cast.ToString(body["pdfUrl"])
	c.logger.Info("webhook notified",
		zap.String("form_id", payload.FormID),
		zap.Bool("pdf_url", pdfURL != ""),
	)
	return pdfURL
}

// truncate shortens s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n] + "…"
}
