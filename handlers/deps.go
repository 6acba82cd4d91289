package handlers

import (
	"time"

	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"elecquote/config"
	"elecquote/equipment"
	"elecquote/services"
)

// Deps is what every handler closes over.
type Deps struct {
	App            core.App
	Editor         *equipment.Editor
	Webhook        *services.WebhookClient
	Company        config.CompanyConfig
	PriceOverrides map[string]float64
	Logger         *zap.Logger
	Now            func() time.Time
}

func (d *Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}

// logger returns the request-scoped logger installed by RequestLogger, or the
// application logger.
func (d *Deps) logger(e *core.RequestEvent) *zap.Logger {
	fallback := d.Logger
	if fallback == nil {
		fallback = zap.NewNop()
	}
	return LoggerFrom(e.Request, fallback)
}
