package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/rfp-backend/internal/api"
	knowledgeapi "github.com/futig/rfp-backend/internal/api/knowledge"
	proposalapi "github.com/futig/rfp-backend/internal/api/proposal"
	rfpapi "github.com/futig/rfp-backend/internal/api/rfp"
	"github.com/futig/rfp-backend/internal/cache"
	"github.com/futig/rfp-backend/internal/config"
	"github.com/futig/rfp-backend/internal/ingest"
	"github.com/futig/rfp-backend/internal/integration/callback"
	"github.com/futig/rfp-backend/internal/integration/extractor"
	"github.com/futig/rfp-backend/internal/pkg/validator"
	"github.com/futig/rfp-backend/internal/repository"
	"github.com/futig/rfp-backend/internal/telegram"
	"github.com/futig/rfp-backend/internal/usecase/knowledge"
	"github.com/futig/rfp-backend/internal/usecase/proposal"
	"github.com/futig/rfp-backend/internal/usecase/rfp"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// services holds everything the HTTP app and the bot share
type services struct {
	db          *pgxpool.Pool
	validator   *validator.Validator
	knowledgeUC *knowledge.KnowledgeUsecase
	rfpUC       *rfp.RFPUsecase
	proposalUC  *proposal.ProposalUsecase
}

func Build() (*App, error) {
	ctx := context.Background()

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
	)

	svc, err := buildServices(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	callbackConnector := callback.NewConnector(cfg.CallbackConnectorCfg, logger)

	// Setup API handlers
	handlers := api.Handlers{
		Knowledge: knowledgeapi.NewHandler(svc.knowledgeUC, svc.validator),
		RFP:       rfpapi.NewHandler(svc.rfpUC, cfg.FileUploadCfg, callbackConnector, svc.validator),
		Proposal:  proposalapi.NewHandler(svc.proposalUC, cfg.FileUploadCfg, svc.validator),
	}
	logger.Info("API handlers initialized")

	router := api.SetupRouter(handlers, api.RouterConfig{
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.RequestTimeout,
	}, logger)
	logger.Info("HTTP router configured")

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.RequestTimeout,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     svc.db,
		logger: logger,
	}, nil
}

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot() (telegram.Bot, *zap.Logger, func(), error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateTelegram(); err != nil {
		return nil, nil, nil, err
	}

	logger, err := setupLogger(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building Telegram bot",
		zap.String("environment", cfg.Environment),
	)

	svc, err := buildServices(ctx, cfg, logger)
	if err != nil {
		return nil, nil, nil, err
	}

	bot, err := telegram.NewBot(
		&cfg.TelegramCfg,
		cfg.FileUploadCfg.MaxFileSize,
		svc.rfpUC,
		svc.proposalUC,
		svc.knowledgeUC,
		svc.validator,
		logger,
	)
	if err != nil {
		svc.db.Close()
		return nil, nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	logger.Info("Telegram bot built successfully",
		zap.String("environment", cfg.Environment),
	)

	return bot, logger, svc.db.Close, nil
}

// buildServices connects storage, runs migrations, seeds the knowledge base and creates the use cases
func buildServices(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*services, error) {
	db, err := setupDatabase(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("setup database: %w", err)
	}

	logger.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize repositories
	knowledgeRepo := repository.NewKnowledgePostgres(db)
	rfpRepo := repository.NewRFPPostgres(db)
	proposalRepo := repository.NewProposalPostgres(db)
	logger.Info("Repositories initialized")

	// Initialize external service connectors (with mock support)
	var extractorConnector ingest.Extractor
	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		extractorConnector = extractor.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services")
		extractorConnector = extractor.NewConnector(cfg.ExtractorConnectorCfg, logger)
	}

	analysisCache := cache.NewAnalysisCache(cfg.AnalysisCacheCfg.TTL, cfg.AnalysisCacheCfg.CleanupInterval)

	// Initialize use cases
	knowledgeUC := knowledge.NewUsecase(knowledgeRepo, logger)
	rfpUC := rfp.NewUsecase(rfpRepo, ingest.New(extractorConnector), analysisCache, logger)
	proposalUC := proposal.NewUsecase(proposalRepo, rfpRepo, knowledgeRepo, logger)
	logger.Info("Use cases initialized")

	if err := seedKnowledge(ctx, cfg.KnowledgeSeedFile, knowledgeUC, logger); err != nil {
		db.Close()
		return nil, err
	}

	return &services{
		db:          db,
		validator:   validator.New(cfg.FileUploadCfg),
		knowledgeUC: knowledgeUC,
		rfpUC:       rfpUC,
		proposalUC:  proposalUC,
	}, nil
}

func seedKnowledge(ctx context.Context, path string, uc *knowledge.KnowledgeUsecase, logger *zap.Logger) error {
	items, err := config.LoadKnowledgeSeed(path)
	if err != nil {
		return fmt.Errorf("load knowledge seed: %w", err)
	}
	if len(items) == 0 {
		return nil
	}

	ctx = ctxzap.ToContext(ctx, logger.With(zap.String("action", "seed_knowledge")))
	if _, err := uc.Seed(ctx, items); err != nil {
		return fmt.Errorf("seed knowledge base: %w", err)
	}
	return nil
}
