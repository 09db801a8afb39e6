package rfp

import (
	"context"

	"github.com/futig/rfp-backend/internal/entity"
)

type RFPUsecase interface {
	Analyze(ctx context.Context, req *entity.AnalyzeRequest) *entity.RFPAnalysis
	CreateFromText(ctx context.Context, req *entity.CreateRFPRequest) (*entity.RFPDocument, error)
	CreateFromFile(ctx context.Context, title, filename string, content []byte) (*entity.RFPDocument, error)
	Get(ctx context.Context, id string) (*entity.RFPDocument, error)
	List(ctx context.Context, req *entity.ListRequest) ([]*entity.RFPDocument, error)
	Delete(ctx context.Context, id string) error
}

type CallbackConnector interface {
	SendError(ctx context.Context, callbackURL string, requestID string, message string, details map[string]any)
	SendAnalysisCompleted(ctx context.Context, callbackURL string, requestID string, data *entity.RFPSummary)
}
