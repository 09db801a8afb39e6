package response

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		// The status line is already sent, an encode failure can only be dropped
		_ = json.NewEncoder(w).Encode(data)
	}
}

// Error logs err and writes {"error": <status text>, "message": message}
func Error(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	switch {
	case err == nil:
		ctxzap.Error(ctx, message)
	case status >= http.StatusInternalServerError:
		ctxzap.Error(ctx, message, zap.Error(err))
	default:
		ctxzap.Warn(ctx, message, zap.Error(err))
	}

	JSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// UsecaseError maps domain errors to HTTP statuses
func UsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrKnowledgeItemNotFound),
		errors.Is(err, entity.ErrRFPNotFound),
		errors.Is(err, entity.ErrProposalNotFound):
		Error(ctx, w, http.StatusNotFound, err.Error(), err)
	case errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidFormat),
		errors.Is(err, entity.ErrInvalidKnowledgeType),
		errors.Is(err, entity.ErrInvalidAnalysis):
		Error(ctx, w, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, entity.ErrFileTooLarge):
		Error(ctx, w, http.StatusRequestEntityTooLarge, err.Error(), err)
	case errors.Is(err, entity.ErrInvalidFile),
		errors.Is(err, entity.ErrUnsupportedFormat),
		errors.Is(err, entity.ErrEmptyDocument):
		Error(ctx, w, http.StatusUnprocessableEntity, err.Error(), err)
	case errors.Is(err, entity.ErrExtractionFailed),
		errors.Is(err, entity.ErrServiceUnavailable):
		Error(ctx, w, http.StatusBadGateway, "document extraction failed", err)
	default:
		Error(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
