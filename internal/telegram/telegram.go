package telegram

import (
	"context"
	"fmt"

	"github.com/futig/rfp-backend/internal/config"
	"github.com/futig/rfp-backend/internal/pkg/validator"
	"github.com/futig/rfp-backend/internal/telegram/bot"
	"github.com/futig/rfp-backend/internal/telegram/handlers"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot is the main telegram bot interface
type Bot interface {
	Start(ctx context.Context) error
	Stop() error
}

// NewBot authorizes with Telegram and wires the command handler
func NewBot(
	cfg *config.TelegramConfig,
	maxFileSize int64,
	rfpUC handlers.RFPUsecase,
	proposalUC handlers.ProposalUsecase,
	knowledgeUC handlers.KnowledgeUsecase,
	validator *validator.Validator,
	logger *zap.Logger,
) (Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}

	logger.Info("telegram bot authorized",
		zap.String("username", api.Self.UserName),
		zap.Int64("id", api.Self.ID),
	)

	handler := handlers.NewHandler(
		api,
		handlers.NewDownloader(api, maxFileSize),
		rfpUC,
		proposalUC,
		knowledgeUC,
		validator,
		logger,
	)

	logger.Info("telegram bot initialized successfully")

	return bot.New(cfg, api, handler, logger), nil
}
