package logger

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// AddFields adds fields to the logger in context and returns new context
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	logger := ctxzap.Extract(ctx)
	return ctxzap.ToContext(ctx, logger.With(fields...))
}

// WithAction adds "action" field to context logger to describe the flow
func WithAction(ctx context.Context, action string) context.Context {
	return AddFields(ctx, zap.String("action", action))
}

// WithResource tags the flow with an action and the id of the resource it works on, e.g. "rfp_id"
func WithResource(ctx context.Context, action, idKey, id string) context.Context {
	return AddFields(ctx,
		zap.String(idKey, id),
		zap.String("action", action),
	)
}

// Detach returns a background context carrying the request logger.
// Work started from a handler that outlives the request must use it.
func Detach(ctx context.Context) context.Context {
	return ctxzap.ToContext(context.Background(), ctxzap.Extract(ctx))
}
