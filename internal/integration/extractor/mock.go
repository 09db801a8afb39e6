package extractor

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns the upload itself as text so PDF/DOCX flows work offline
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Extract(ctx context.Context, filename string, content []byte) (*entity.ExtractionResult, error) {
	ctxzap.Info(ctx, "[MOCK] extracting text",
		zap.String("filename", filename),
		zap.Int("size", len(content)),
	)

	text := string(content)
	if !utf8.ValidString(text) {
		text = fmt.Sprintf("Mock extraction of %s\n\nPlease describe your approach to the project?", filename)
	}

	return &entity.ExtractionResult{
		Text:     text,
		Metadata: map[string]string{"extractor": "mock", "filename": filename},
	}, nil
}
