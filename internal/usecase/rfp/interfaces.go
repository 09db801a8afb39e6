package rfp

import (
	"context"

	"github.com/futig/rfp-backend/internal/entity"
)

type RFPRepository interface {
	Create(ctx context.Context, doc entity.RFPDocument) (*entity.RFPDocument, error)
	Get(ctx context.Context, id string) (*entity.RFPDocument, error)
	List(ctx context.Context, skip, limit int) ([]*entity.RFPDocument, error)
	Delete(ctx context.Context, id string) error
}

// Ingester turns uploaded bytes into text
type Ingester interface {
	Ingest(ctx context.Context, filename string, content []byte) (*entity.ExtractionResult, error)
}

type AnalysisCache interface {
	Get(key string) (*entity.RFPAnalysis, bool)
	Set(key string, analysis *entity.RFPAnalysis)
}
