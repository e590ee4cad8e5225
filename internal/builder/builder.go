package builder

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/temenos/rfp-assistant/internal/api"
	analysisapi "github.com/temenos/rfp-assistant/internal/api/analysis"
	reportsapi "github.com/temenos/rfp-assistant/internal/api/reports"
	"github.com/temenos/rfp-assistant/internal/config"
	"github.com/temenos/rfp-assistant/internal/docgen"
	"github.com/temenos/rfp-assistant/internal/integration/rag"
	"github.com/temenos/rfp-assistant/internal/pkg/formatter"
	"github.com/temenos/rfp-assistant/internal/pkg/validator"
	"github.com/temenos/rfp-assistant/internal/storage"
	"github.com/temenos/rfp-assistant/internal/usecase/analysis"
)

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
		zap.Bool("demo_mode", cfg.DemoMode),
	)

	// Initialize storage and output directories
	store := storage.NewStore(cfg.ReportsDir, cfg.WordDocsDir, logger)
	if err := store.EnsureDirs(); err != nil {
		return nil, fmt.Errorf("prepare output directories: %w", err)
	}
	logger.Info("Output directories ready",
		zap.String("reports_dir", cfg.ReportsDir),
		zap.String("word_docs_dir", cfg.WordDocsDir),
	)

	// Initialize remote connector (with demo support)
	var ragConnector analysis.RagConnector
	if cfg.DemoMode {
		logger.Info("Using demo connector for the RAG service")
		ragConnector = rag.NewDemoConnector(logger)
	} else {
		logger.Info("Using live connector for the RAG service",
			zap.String("base_url", cfg.RAGConnectorCfg.Url),
		)
		ragConnector = rag.NewConnector(cfg.RAGConnectorCfg, logger)
	}

	// Initialize use case and document generation
	analysisUC := analysis.NewUsecase(ragConnector, logger)
	generator := docgen.NewGenerator(cfg.WordDocsDir, cfg.RAGConnectorCfg.Token, logger)
	requestValidator := validator.NewValidator()
	formatterFactory := formatter.NewFactory()
	logger.Info("Use cases initialized")

	// Setup API handlers
	analysisHandler := analysisapi.NewHandler(analysisUC, store, generator, requestValidator)
	reportsHandler := reportsapi.NewHandler(store, formatterFactory)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(analysisHandler, reportsHandler, config.Version, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. Write timeout stays generous because batch
	// analyses block on sequential remote calls.
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		logger: logger,
	}, nil
}
