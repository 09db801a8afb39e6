package handlers

import (
	"context"
	"errors"
	"net"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/telegram/render"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ErrorSeverity represents the severity level of an error
type ErrorSeverity int

const (
	SeverityWarning ErrorSeverity = iota
	SeverityError
)

func (s ErrorSeverity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// HandlerError pairs an error with the reply the user sees
type HandlerError struct {
	Err         error
	UserMessage string
	LogMessage  string
	Severity    ErrorSeverity
}

func classifyHandlerError(err error) *HandlerError {
	warn := func(userMessage, logMessage string) *HandlerError {
		return &HandlerError{Err: err, UserMessage: userMessage, LogMessage: logMessage, Severity: SeverityWarning}
	}
	fail := func(userMessage, logMessage string) *HandlerError {
		return &HandlerError{Err: err, UserMessage: userMessage, LogMessage: logMessage, Severity: SeverityError}
	}

	switch {
	case err == nil:
		return warn(render.ErrGeneric, "unknown error")
	case errors.Is(err, entity.ErrRFPNotFound):
		return warn(render.ErrRFPNotFound, "rfp not found")
	case errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidFormat):
		return warn(render.MsgProposeUsage, "invalid command arguments")
	case errors.Is(err, entity.ErrUnsupportedFormat), errors.Is(err, entity.ErrInvalidFile):
		return warn(render.ErrInvalidFile, "unsupported document")
	case errors.Is(err, entity.ErrFileTooLarge):
		return warn(render.ErrFileTooLarge, "document too large")
	case errors.Is(err, entity.ErrEmptyDocument):
		return warn(render.ErrEmptyDocument, "document has no text")
	case errors.Is(err, entity.ErrExtractionFailed):
		return fail(render.ErrExtractionFailed, "text extraction failed")
	case errors.Is(err, entity.ErrServiceUnavailable):
		return fail(render.ErrServiceUnavailable, "upstream service unavailable")
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return fail(render.ErrTimeout, "operation timed out")
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return fail(render.ErrTimeout, "network timeout")
		}
		return fail(render.ErrNetworkIssue, "network error")
	}

	return fail(render.ErrGeneric, "handler error")
}

// HandleError logs err with its severity and replies with a user-friendly message
func (h *Handler) HandleError(ctx context.Context, chatID int64, err error) {
	if err == nil {
		return
	}

	handlerErr := classifyHandlerError(err)

	switch handlerErr.Severity {
	case SeverityError:
		ctxzap.Error(ctx, handlerErr.LogMessage,
			zap.Error(handlerErr.Err),
			zap.Int64("chat_id", chatID),
		)
	default:
		ctxzap.Warn(ctx, handlerErr.LogMessage,
			zap.Error(handlerErr.Err),
			zap.Int64("chat_id", chatID),
		)
	}

	h.sender.Send(chatID, handlerErr.UserMessage)
}
