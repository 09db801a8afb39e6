package rfp

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/futig/rfp-backend/internal/analyzer"
	"github.com/futig/rfp-backend/internal/cache"
	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// RFPUsecase implements RFP document business logic
type RFPUsecase struct {
	repo     RFPRepository
	ingester Ingester
	cache    AnalysisCache
	logger   *zap.Logger
}

func NewUsecase(
	repo RFPRepository,
	ingester Ingester,
	cache AnalysisCache,
	logger *zap.Logger,
) *RFPUsecase {
	return &RFPUsecase{
		repo:     repo,
		ingester: ingester,
		cache:    cache,
		logger:   logger,
	}
}

// Analyze runs the analyzer, reusing a cached result for identical input
func (uc *RFPUsecase) Analyze(ctx context.Context, req *entity.AnalyzeRequest) *entity.RFPAnalysis {
	key := cache.Key(req.Text, req.PageCount)
	if analysis, ok := uc.cache.Get(key); ok {
		ctxzap.Debug(ctx, "analysis cache hit")
		return analysis
	}

	analysis := analyzer.AnalyzeRFP(req.Text, analyzer.Metadata{PageCount: req.PageCount})
	uc.cache.Set(key, analysis)

	ctxzap.Info(ctx, "rfp analyzed",
		zap.Int("sections", len(analysis.Sections)),
		zap.Int("questions", analysis.TotalQuestions()),
		zap.Int("pages", analysis.TotalPages),
	)

	return analysis
}

// CreateFromText analyzes and stores an RFP given as text
func (uc *RFPUsecase) CreateFromText(ctx context.Context, req *entity.CreateRFPRequest) (*entity.RFPDocument, error) {
	analysis := uc.Analyze(ctx, &entity.AnalyzeRequest{Text: req.Text, PageCount: req.PageCount})

	doc, err := uc.repo.Create(ctx, entity.RFPDocument{
		ID:         uuid.New().String(),
		Title:      strings.TrimSpace(req.Title),
		Filename:   req.Filename,
		PageCount:  analysis.TotalPages,
		SourceText: req.Text,
		Analysis:   analysis,
	})
	if err != nil {
		return nil, fmt.Errorf("create rfp document: %w", err)
	}

	ctxzap.Info(ctx, "rfp document created",
		zap.String("rfp_id", doc.ID),
		zap.Int("questions", analysis.TotalQuestions()),
	)

	return doc, nil
}

// CreateFromFile ingests file content and stores the analyzed document
func (uc *RFPUsecase) CreateFromFile(ctx context.Context, title, filename string, content []byte) (*entity.RFPDocument, error) {
	filename = validator.SanitizeFilename(filename)

	extracted, err := uc.ingester.Ingest(ctx, filename, content)
	if err != nil {
		return nil, fmt.Errorf("ingest %s: %w", filename, err)
	}

	ctxzap.Debug(ctx, "file ingested",
		zap.String("filename", filename),
		zap.Int("text_length", len(extracted.Text)),
	)

	if strings.TrimSpace(title) == "" {
		title = titleFromMetadata(extracted, filename)
	}

	return uc.CreateFromText(ctx, &entity.CreateRFPRequest{
		Title:     title,
		Text:      extracted.Text,
		Filename:  filename,
		PageCount: extracted.PageCount,
	})
}

func (uc *RFPUsecase) Get(ctx context.Context, id string) (*entity.RFPDocument, error) {
	if err := validator.ValidateID("rfp_id", id); err != nil {
		return nil, err
	}
	return uc.repo.Get(ctx, id)
}

func (uc *RFPUsecase) List(ctx context.Context, req *entity.ListRequest) ([]*entity.RFPDocument, error) {
	req.Normalize()
	return uc.repo.List(ctx, req.Skip, req.Limit)
}

func (uc *RFPUsecase) Delete(ctx context.Context, id string) error {
	if err := validator.ValidateID("rfp_id", id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	ctxzap.Info(ctx, "rfp document deleted", zap.String("rfp_id", id))
	return nil
}

func titleFromMetadata(extracted *entity.ExtractionResult, filename string) string {
	if title := strings.TrimSpace(extracted.Metadata["title"]); title != "" {
		return title
	}
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
