package handlers

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/pkg/logger"
	"github.com/futig/rfp-backend/internal/pkg/validator"
	"github.com/futig/rfp-backend/internal/telegram/render"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Command names
const (
	CommandStart   = "start"
	CommandHelp    = "help"
	CommandAnalyze = "analyze"
	CommandPropose = "propose"
	CommandKB      = "kb"
)

const (
	maxTitleLength  = 80
	proposeArgCount = 3
)

// Message represents a normalized Telegram message
type Message struct {
	ChatID    int64
	UserID    int64
	MessageID int
	Command   string
	Args      string
	Text      string
	Document  *tgbotapi.Document
}

// Handler answers bot commands and document uploads. It keeps no per-user state.
type Handler struct {
	sender      *MessageSender
	files       FileDownloader
	rfpUC       RFPUsecase
	proposalUC  ProposalUsecase
	knowledgeUC KnowledgeUsecase
	validator   *validator.Validator
}

func NewHandler(
	api BotAPI,
	files FileDownloader,
	rfpUC RFPUsecase,
	proposalUC ProposalUsecase,
	knowledgeUC KnowledgeUsecase,
	validator *validator.Validator,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		sender:      NewMessageSender(api, logger),
		files:       files,
		rfpUC:       rfpUC,
		proposalUC:  proposalUC,
		knowledgeUC: knowledgeUC,
		validator:   validator,
	}
}

// Handle routes a message to the command or document handler
func (h *Handler) Handle(ctx context.Context, msg *Message) {
	ctx = logger.AddFields(ctx,
		zap.Int64("user_id", msg.UserID),
		zap.Int64("chat_id", msg.ChatID),
	)

	if msg.Document != nil {
		h.handleDocument(ctx, msg)
		return
	}

	switch msg.Command {
	case "":
		h.sender.Send(msg.ChatID, render.MsgSendCommand)
	case CommandStart:
		h.sender.Send(msg.ChatID, render.MsgWelcome+"\n\n"+render.MsgHelp)
	case CommandHelp:
		h.sender.Send(msg.ChatID, render.MsgHelp)
	case CommandAnalyze:
		h.handleAnalyze(ctx, msg)
	case CommandPropose:
		h.handlePropose(ctx, msg)
	case CommandKB:
		h.handleKnowledge(ctx, msg)
	default:
		h.sender.Send(msg.ChatID, render.ErrUnknownCommand)
	}
}

func (h *Handler) handleAnalyze(ctx context.Context, msg *Message) {
	ctx = logger.WithAction(ctx, "telegram_analyze")

	text := strings.TrimSpace(msg.Args)
	if text == "" {
		h.sender.Send(msg.ChatID, render.MsgAnalyzeUsage)
		return
	}

	req := &entity.CreateRFPRequest{
		Title: titleFromText(text),
		Text:  text,
	}
	if err := h.validator.ValidateCreateRFP(req); err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return
	}

	h.sender.Typing(msg.ChatID)

	doc, err := h.rfpUC.CreateFromText(ctx, req)
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return
	}

	h.sender.Send(msg.ChatID, render.RenderAnalysis(doc))
}

func (h *Handler) handleDocument(ctx context.Context, msg *Message) {
	ctx = logger.WithAction(ctx, "telegram_document")
	file := msg.Document

	if err := h.validator.ValidateDocument(file.FileName, int64(file.FileSize)); err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return
	}

	ctxzap.Info(ctx, "document received",
		zap.String("filename", file.FileName),
		zap.Int("size", file.FileSize),
	)

	h.sender.Send(msg.ChatID, fmt.Sprintf(render.MsgProcessingDocument, file.FileName))
	h.sender.Typing(msg.ChatID)

	content, err := h.files.Download(ctx, file.FileID)
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return
	}

	// A caption on the document becomes the RFP title.
	doc, err := h.rfpUC.CreateFromFile(ctx, strings.TrimSpace(msg.Text), file.FileName, content)
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return
	}

	h.sender.Send(msg.ChatID, render.RenderAnalysis(doc))
}

func (h *Handler) handlePropose(ctx context.Context, msg *Message) {
	ctx = logger.WithAction(ctx, "telegram_propose")

	req, ok := parseProposeArgs(msg.Args)
	if !ok {
		h.sender.Send(msg.ChatID, render.MsgProposeUsage)
		return
	}
	if err := h.validator.ValidateCreateProposal(req); err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return
	}

	h.sender.Typing(msg.ChatID)

	proposal, err := h.proposalUC.Create(ctx, req)
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return
	}

	h.sender.Send(msg.ChatID, render.RenderProposal(proposal))
}

func (h *Handler) handleKnowledge(ctx context.Context, msg *Message) {
	ctx = logger.WithAction(ctx, "telegram_knowledge")

	counts, err := h.knowledgeUC.CountActiveByType(ctx)
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return
	}

	h.sender.Send(msg.ChatID, render.RenderKnowledgeCounts(counts))
}

// parseProposeArgs splits "<rfp id> | <project title> | <client>"
func parseProposeArgs(args string) (*entity.CreateProposalRequest, bool) {
	parts := strings.Split(args, "|")
	if len(parts) != proposeArgCount {
		return nil, false
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return &entity.CreateProposalRequest{
		RFPID:        parts[0],
		ProjectTitle: parts[1],
		ClientName:   parts[2],
	}, true
}

// titleFromText uses the first non-empty line, shortened
func titleFromText(text string) string {
	line := text
	for _, l := range strings.Split(text, "\n") {
		if l = strings.TrimSpace(l); l != "" {
			line = l
			break
		}
	}
	if utf8.RuneCountInString(line) <= maxTitleLength {
		return line
	}
	return string([]rune(line)[:maxTitleLength]) + "…"
}
