package callback

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/futig/rfp-backend/internal/config"
	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/integration/common"
	pkghttp "github.com/futig/rfp-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.CallbackConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.CallbackConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector("callback", cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// SendAnalysisCompleted reports a stored and analyzed RFP document
func (c *Connector) SendAnalysisCompleted(ctx context.Context, callbackURL string, requestID string, data *entity.RFPSummary) {
	err := c.Send(ctx, callbackURL, requestID, entity.NewAnalysisCompletedEvent(data, time.Now()))
	if err != nil {
		ctxzap.Error(ctx, "failed to send analysis completed callback", zap.Error(err))
	}
}

// SendError sends an error event to the specified callback URL
func (c *Connector) SendError(ctx context.Context, callbackURL string, requestID string, message string, details map[string]any) {
	err := c.Send(ctx, callbackURL, requestID, entity.NewErrorEvent(message, details, time.Now()))
	if err != nil {
		ctxzap.Error(ctx, "failed to send error callback", zap.Error(err))
	}
}

func (c *Connector) Send(ctx context.Context, callbackURL string, requestID string, event *entity.CallbackEvent) error {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}

	ctxzap.Debug(ctx, "sending callback event",
		zap.String("event_type", string(event.Event)),
		zap.String("callback_url", callbackURL),
		zap.String("request_id", requestID),
		zap.String("timestamp", event.Timestamp),
	)

	opts := []pkghttp.RequestOpt{
		pkghttp.WithHeader("X-Request-ID", requestID),
		pkghttp.WithURL(callbackURL),
	}

	retryCtx, cancel := c.config.Retry.WithTimeout(ctx)
	defer cancel()

	err := retry.Do(func() error {
		return c.connector.DoRequest(retryCtx, http.MethodPost, "", event, nil, opts...)
	}, c.retryOptions(retryCtx)...)
	if err != nil {
		return fmt.Errorf("failed to send callback, event_type: %s, url: %s, error: %w", string(event.Event), callbackURL, err)
	}

	ctxzap.Info(ctx, "callback sent successfully",
		zap.String("event_type", string(event.Event)),
		zap.String("callback_url", callbackURL),
		zap.String("request_id", requestID),
	)
	return nil
}

func (c *Connector) retryOptions(ctx context.Context) []retry.Option {
	if c.config.Retry.Attempts == 0 {
		return []retry.Option{retry.Context(ctx), retry.Attempts(1)}
	}
	return c.config.Retry.ToRetryOptions(ctx, pkghttp.IsRetryable)
}
