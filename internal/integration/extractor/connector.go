package extractor

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/avast/retry-go/v4"
	"github.com/futig/rfp-backend/internal/config"
	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/integration/common"
	pkghttp "github.com/futig/rfp-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Connector talks to the document-to-text extraction service
type Connector struct {
	config    config.ExtractorConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.ExtractorConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector("extractor", cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Extract uploads the file and returns its plain text
func (c *Connector) Extract(ctx context.Context, filename string, content []byte) (*entity.ExtractionResult, error) {
	ctxzap.Debug(ctx, "requesting text extraction",
		zap.String("filename", filename),
		zap.Int("size", len(content)),
	)

	retryCtx, cancel := c.config.Retry.WithTimeout(ctx)
	defer cancel()

	var result entity.ExtractionResult
	err := retry.Do(func() error {
		return c.connector.DoMultipartRequest(retryCtx, http.MethodPost, c.config.ExtractEndpoint,
			func(w *multipart.Writer) error {
				part, err := w.CreateFormFile("file", filename)
				if err != nil {
					return err
				}
				_, err = io.Copy(part, bytes.NewReader(content))
				return err
			},
			&result,
		)
	}, c.config.Retry.ToRetryOptions(retryCtx, pkghttp.IsRetryable)...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", entity.ErrExtractionFailed, filename, err)
	}

	ctxzap.Info(ctx, "text extracted",
		zap.String("filename", filename),
		zap.Int("text_length", len(result.Text)),
		zap.Int("page_count", result.PageCount),
	)

	return &result, nil
}
