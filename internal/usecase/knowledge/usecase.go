package knowledge

import (
	"context"
	"fmt"
	"strings"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/pkg/validator"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// KnowledgeUsecase implements knowledge base business logic
type KnowledgeUsecase struct {
	repo   KnowledgeRepository
	logger *zap.Logger
}

func NewUsecase(repo KnowledgeRepository, logger *zap.Logger) *KnowledgeUsecase {
	return &KnowledgeUsecase{
		repo:   repo,
		logger: logger,
	}
}

// CreateItem stores a new item; items are active unless is_active is false
func (uc *KnowledgeUsecase) CreateItem(ctx context.Context, req *entity.CreateKnowledgeItemRequest) (*entity.KnowledgeBaseItem, error) {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	item, err := uc.repo.Create(ctx, entity.KnowledgeBaseItem{
		ID:       uuid.New().String(),
		Title:    strings.TrimSpace(req.Title),
		Category: strings.TrimSpace(req.Category),
		Type:     req.Type,
		Content:  req.Content,
		Tags:     cleanTags(req.Tags),
		IsActive: isActive,
	})
	if err != nil {
		return nil, fmt.Errorf("create knowledge item: %w", err)
	}

	ctxzap.Info(ctx, "knowledge item created",
		zap.String("item_id", item.ID),
		zap.String("type", string(item.Type)),
	)

	return item, nil
}

func (uc *KnowledgeUsecase) GetItem(ctx context.Context, id string) (*entity.KnowledgeBaseItem, error) {
	if err := validator.ValidateID("item_id", id); err != nil {
		return nil, err
	}
	return uc.repo.Get(ctx, id)
}

func (uc *KnowledgeUsecase) ListItems(ctx context.Context, req *entity.ListKnowledgeItemsRequest) ([]*entity.KnowledgeBaseItem, error) {
	req.Normalize()
	return uc.repo.List(ctx, req.Skip, req.Limit, req.ActiveOnly)
}

// ListActive returns the snapshot proposals are generated from
func (uc *KnowledgeUsecase) ListActive(ctx context.Context) ([]*entity.KnowledgeBaseItem, error) {
	return uc.repo.ListActive(ctx)
}

// UpdateItem applies the fields set in req on top of the stored item
func (uc *KnowledgeUsecase) UpdateItem(ctx context.Context, req *entity.UpdateKnowledgeItemRequest) (*entity.KnowledgeBaseItem, error) {
	item, err := uc.repo.Get(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		item.Title = strings.TrimSpace(*req.Title)
	}
	if req.Category != nil {
		item.Category = strings.TrimSpace(*req.Category)
	}
	if req.Type != nil {
		item.Type = *req.Type
	}
	if req.Content != nil {
		item.Content = *req.Content
	}
	if req.Tags != nil {
		item.Tags = cleanTags(req.Tags)
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	updated, err := uc.repo.Update(ctx, *item)
	if err != nil {
		return nil, fmt.Errorf("update knowledge item: %w", err)
	}

	ctxzap.Info(ctx, "knowledge item updated", zap.String("item_id", updated.ID))

	return updated, nil
}

func (uc *KnowledgeUsecase) DeleteItem(ctx context.Context, id string) error {
	if err := validator.ValidateID("item_id", id); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	ctxzap.Info(ctx, "knowledge item deleted", zap.String("item_id", id))
	return nil
}

// CountActiveByType groups the active items by type
func (uc *KnowledgeUsecase) CountActiveByType(ctx context.Context) (map[entity.KnowledgeType]int, error) {
	items, err := uc.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	counts := make(map[entity.KnowledgeType]int)
	for _, item := range items {
		counts[item.Type]++
	}
	return counts, nil
}

// Seed imports items only into an empty knowledge base and returns how many were stored
func (uc *KnowledgeUsecase) Seed(ctx context.Context, items []entity.KnowledgeBaseItem) (int, error) {
	count, err := uc.repo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if count > 0 {
		ctxzap.Debug(ctx, "knowledge base already populated, skipping seed", zap.Int("count", count))
		return 0, nil
	}

	seeded := 0
	for _, item := range items {
		if err := item.Type.Validate(); err != nil {
			ctxzap.Warn(ctx, "skipping seed item", zap.String("title", item.Title), zap.Error(err))
			continue
		}
		item.ID = uuid.New().String()
		item.Tags = cleanTags(item.Tags)
		if _, err := uc.repo.Create(ctx, item); err != nil {
			return seeded, fmt.Errorf("seed knowledge item %q: %w", item.Title, err)
		}
		seeded++
	}

	ctxzap.Info(ctx, "knowledge base seeded", zap.Int("count", seeded))
	return seeded, nil
}

func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
