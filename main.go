package main

import (
	"log"
	"os"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
	"go.uber.org/zap"

	"elecquote/collections"
	"elecquote/commands"
	"elecquote/config"
	"elecquote/equipment"
	"elecquote/handlers"
	"elecquote/logging"
	"elecquote/services"
)

func main() {
	app := pocketbase.New()

	var configPath string
	app.RootCmd.PersistentFlags().StringVar(&configPath, "config", "elecquote.yaml", "path of the YAML configuration file")
	// Full flag parsing happens in Start; the config is needed before that.
	_ = app.RootCmd.ParseFlags(os.Args[1:])

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	ids, err := equipment.NewIDGenerator(cfg.IDs.Strategy, cfg.IDs.Node)
	if err != nil {
		logger.Fatal("invalid id configuration", zap.Error(err))
	}

	deps := &handlers.Deps{
		App:            app,
		Editor:         equipment.NewEditor(ids),
		Company:        cfg.Company,
		PriceOverrides: cfg.Prices,
		Logger:         logger,
		Webhook: services.NewWebhookClient(
			cfg.Webhook.URL,
			cfg.Webhook.TimeoutDuration(),
			cfg.Webhook.RetryCount,
			logger.Named("webhook"),
		),
	}
	if cfg.Webhook.URL == "" {
		logger.Warn("no webhook url configured, submissions will not be forwarded")
	}

	app.RootCmd.AddCommand(commands.NewQuoteCommand(cfg.Prices))

	// Create collections and seed prices on startup
	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		if err := collections.Setup(app, logger); err != nil {
			return err
		}
		if _, err := collections.SeedMaterialPrices(app, equipment.DefaultPriceTable(), logger); err != nil {
			logger.Warn("seeding material prices failed", zap.Error(err))
		}
		return se.Next()
	})

	app.OnServe().BindFunc(func(se *core.ServeEvent) error {
		se.Router.BindFunc(handlers.RequestLogger(logger))

		// ── Rooms editor ─────────────────────────────────────────
		se.Router.GET("/api/rooms/defaults", handlers.HandleDefaultRooms(deps))
		se.Router.POST("/api/rooms/commands", handlers.HandleRoomCommand(deps))
		se.Router.GET("/api/rooms/lighting-options", handlers.HandleLightingOptions(deps))
		se.Router.GET("/api/options", handlers.HandleOptions(deps))

		// ── Quote ────────────────────────────────────────────────
		se.Router.POST("/api/quote", handlers.HandleQuote(deps))
		se.Router.POST("/api/quote/pdf", handlers.HandleQuotePDF(deps))
		se.Router.POST("/api/quote/xlsx", handlers.HandleQuoteXLSX(deps))

		// ── Intake forms ─────────────────────────────────────────
		se.Router.POST("/api/forms", handlers.HandleSubmitForm(deps))
		se.Router.GET("/forms/{id}/success", handlers.HandleFormSuccess(deps))
		se.Router.GET("/forms/{id}/pdf", handlers.HandleFormPDF(deps))

		// ── Price list (superusers) ──────────────────────────────
		prices := se.Router.Group("/api/prices")
		prices.Bind(apis.RequireSuperuserAuth())
		prices.GET("", handlers.HandlePriceList(deps))
		prices.GET("/export", handlers.HandlePriceExport(deps))
		prices.POST("/import", handlers.HandlePriceImport(deps))
		prices.POST("/errors", handlers.HandlePriceErrorReport(deps))

		return se.Next()
	})

	if err := app.Start(); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
