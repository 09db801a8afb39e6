package handlers

import (
	"context"

	"github.com/futig/rfp-backend/internal/entity"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// BotAPI is the part of tgbotapi.BotAPI the handlers use
type BotAPI interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

// FileDownloader fetches the content of a file sent to the bot
type FileDownloader interface {
	Download(ctx context.Context, fileID string) ([]byte, error)
}

type RFPUsecase interface {
	CreateFromText(ctx context.Context, req *entity.CreateRFPRequest) (*entity.RFPDocument, error)
	CreateFromFile(ctx context.Context, title, filename string, content []byte) (*entity.RFPDocument, error)
}

type ProposalUsecase interface {
	Create(ctx context.Context, req *entity.CreateProposalRequest) (*entity.Proposal, error)
}

type KnowledgeUsecase interface {
	CountActiveByType(ctx context.Context) (map[entity.KnowledgeType]int, error)
}
