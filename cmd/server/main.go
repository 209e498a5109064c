package main

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/lensmatch/backend/config"
	httpDelivery "github.com/lensmatch/backend/internal/delivery/http"
	"github.com/lensmatch/backend/internal/domain"
	"github.com/lensmatch/backend/internal/infrastructure/audit"
	"github.com/lensmatch/backend/internal/infrastructure/catalog"
	"github.com/lensmatch/backend/internal/infrastructure/openai"
	"github.com/lensmatch/backend/internal/infrastructure/skuconfig"
	"github.com/lensmatch/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	setupLogging(cfg)

	logrus.Infof("Starting LensMatch Backend v1.0.0")
	logrus.Infof("Environment: %s", cfg.Server.Environment)
	logrus.Infof("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	catalogRepo := catalog.NewStaticRepository()
	colorTable := catalog.NewColorTable()
	skuConfig := skuconfig.NewStaticRepository()
	logrus.Infof("Catalog loaded: %d lens products", len(catalogRepo.Products()))

	var auditSink domain.AuditSink
	switch cfg.Audit.Backend {
	case "postgres":
		sink, err := audit.NewPostgresSink(cfg.Audit.PostgresDSN)
		if err != nil {
			logrus.Fatalf("Failed to connect audit store: %v", err)
		}
		auditSink = sink
		logrus.Infof("Audit sink: postgres")
	default:
		auditSink = audit.NewMemorySink()
		logrus.Warnf("Audit sink: in-memory (records are lost on restart)")
	}

	var classifier domain.LensClassifier
	if cfg.AI.Enabled {
		classifier = openai.NewClient(cfg.AI.APIKey, cfg.AI.BaseURL, cfg.AI.Model)
		logrus.Infof("AI fallback enabled: %s (%s)", cfg.AI.BaseURL, cfg.AI.Model)
	} else {
		logrus.Infof("AI fallback disabled; low-confidence resolutions go to manual selection")
	}

	// Initialize usecase layer
	resolver := usecase.NewResolver(catalogRepo, classifier, auditSink, usecase.ResolverConfig{
		Scorer: usecase.ScorerConfig{
			HighScore:          cfg.Matcher.HighScore,
			HighMargin:         cfg.Matcher.HighMargin,
			MediumScore:        cfg.Matcher.MediumScore,
			MediumMargin:       cfg.Matcher.MediumMargin,
			EnableDebugLogging: cfg.Matcher.EnableDebugLogging,
		},
		MaxAICandidates: cfg.Matcher.MaxAICandidates,
	})

	orderService := usecase.NewOrderService(skuConfig)

	logrus.Infof("Matcher: high=%.0f/%.0f medium=%.0f/%.0f maxAI=%d",
		cfg.Matcher.HighScore, cfg.Matcher.HighMargin,
		cfg.Matcher.MediumScore, cfg.Matcher.MediumMargin,
		cfg.Matcher.MaxAICandidates)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(resolver, orderService, catalogRepo, colorTable)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logrus.Infof("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		logrus.Fatalf("Failed to start server: %v", err)
	}
}

func setupLogging(cfg *config.Config) {
	if cfg.Server.Environment == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
		return
	}
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.Matcher.EnableDebugLogging {
		logrus.SetLevel(logrus.DebugLevel)
	}
}
