package knowledge

import (
	"context"
	"errors"
	"testing"

	"github.com/futig/rfp-backend/internal/entity"
	"go.uber.org/zap"
)

type fakeRepo struct {
	items map[string]*entity.KnowledgeBaseItem
	order []string
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{items: make(map[string]*entity.KnowledgeBaseItem)}
}

func (f *fakeRepo) Create(ctx context.Context, item entity.KnowledgeBaseItem) (*entity.KnowledgeBaseItem, error) {
	f.items[item.ID] = &item
	f.order = append(f.order, item.ID)
	copied := item
	return &copied, nil
}

func (f *fakeRepo) Get(ctx context.Context, id string) (*entity.KnowledgeBaseItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, entity.ErrKnowledgeItemNotFound
	}
	copied := *item
	return &copied, nil
}

func (f *fakeRepo) List(ctx context.Context, skip, limit int, activeOnly bool) ([]*entity.KnowledgeBaseItem, error) {
	var out []*entity.KnowledgeBaseItem
	for _, id := range f.order {
		if item, ok := f.items[id]; ok && (!activeOnly || item.IsActive) {
			out = append(out, item)
		}
	}
	if skip >= len(out) {
		return nil, nil
	}
	out = out[skip:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeRepo) ListActive(ctx context.Context) ([]*entity.KnowledgeBaseItem, error) {
	return f.List(ctx, 0, len(f.order), true)
}

func (f *fakeRepo) Update(ctx context.Context, item entity.KnowledgeBaseItem) (*entity.KnowledgeBaseItem, error) {
	if _, ok := f.items[item.ID]; !ok {
		return nil, entity.ErrKnowledgeItemNotFound
	}
	f.items[item.ID] = &item
	return &item, nil
}

func (f *fakeRepo) Delete(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return entity.ErrKnowledgeItemNotFound
	}
	delete(f.items, id)
	return nil
}

func (f *fakeRepo) Count(ctx context.Context) (int, error) {
	return len(f.items), nil
}

func TestCreateItem_DefaultsActiveAndCleansTags(t *testing.T) {
	uc := NewUsecase(newFakeRepo(), zap.NewNop())
	item, err := uc.CreateItem(context.Background(), &entity.CreateKnowledgeItemRequest{
		Title:   "  Cloud practice ",
		Type:    entity.KnowledgeTypeTechnicalSpec,
		Content: "AWS",
		Tags:    []string{"Cloud", " cloud", "", "AWS"},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !item.IsActive {
		t.Error("Expected item to be active by default")
	}
	if item.Title != "Cloud practice" {
		t.Errorf("Expected trimmed title, got %q", item.Title)
	}
	if len(item.Tags) != 2 || item.Tags[0] != "cloud" || item.Tags[1] != "aws" {
		t.Errorf("Expected [cloud aws], got %v", item.Tags)
	}
}

func TestCreateItem_ExplicitInactive(t *testing.T) {
	uc := NewUsecase(newFakeRepo(), zap.NewNop())
	inactive := false
	item, err := uc.CreateItem(context.Background(), &entity.CreateKnowledgeItemRequest{
		Title: "Old pricing", Type: entity.KnowledgeTypePricing, Content: "x", IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if item.IsActive {
		t.Error("Expected item to be inactive")
	}
}

func TestUpdateItem_PartialFields(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUsecase(repo, zap.NewNop())
	created, _ := uc.CreateItem(context.Background(), &entity.CreateKnowledgeItemRequest{
		Title: "Team", Type: entity.KnowledgeTypeTeamProfile, Content: "Engineers", Tags: []string{"team"},
	})

	inactive := false
	content := "Senior engineers"
	updated, err := uc.UpdateItem(context.Background(), &entity.UpdateKnowledgeItemRequest{
		ID: created.ID, Content: &content, IsActive: &inactive,
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if updated.Title != "Team" || updated.Content != "Senior engineers" || updated.IsActive {
		t.Errorf("Expected partial update, got %+v", updated)
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "team" {
		t.Errorf("Expected tags to be kept, got %v", updated.Tags)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	uc := NewUsecase(newFakeRepo(), zap.NewNop())
	_, err := uc.UpdateItem(context.Background(), &entity.UpdateKnowledgeItemRequest{ID: "00000000-0000-0000-0000-000000000001"})
	if !errors.Is(err, entity.ErrKnowledgeItemNotFound) {
		t.Errorf("Expected ErrKnowledgeItemNotFound, got %v", err)
	}
}

func TestGetItem_InvalidID(t *testing.T) {
	uc := NewUsecase(newFakeRepo(), zap.NewNop())
	if _, err := uc.GetItem(context.Background(), "nope"); !errors.Is(err, entity.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
	if err := uc.DeleteItem(context.Background(), "nope"); !errors.Is(err, entity.ErrInvalidParameter) {
		t.Errorf("Expected ErrInvalidParameter, got %v", err)
	}
}

func TestListItems_NormalizesPagination(t *testing.T) {
	uc := NewUsecase(newFakeRepo(), zap.NewNop())
	for i := 0; i < 12; i++ {
		uc.CreateItem(context.Background(), &entity.CreateKnowledgeItemRequest{
			Title: "FAQ", Type: entity.KnowledgeTypeFAQ, Content: "answer",
		})
	}

	req := &entity.ListKnowledgeItemsRequest{ListRequest: entity.ListRequest{Skip: -3, Limit: 0}}
	items, err := uc.ListItems(context.Background(), req)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(items) != entity.DefaultListLimit {
		t.Errorf("Expected %d items, got %d", entity.DefaultListLimit, len(items))
	}
	if req.Skip != 0 {
		t.Errorf("Expected skip normalized to 0, got %d", req.Skip)
	}
}

func TestCountActiveByType(t *testing.T) {
	uc := NewUsecase(newFakeRepo(), zap.NewNop())
	inactive := false
	reqs := []entity.CreateKnowledgeItemRequest{
		{Title: "a", Type: entity.KnowledgeTypeCaseStudy, Content: "x"},
		{Title: "b", Type: entity.KnowledgeTypeCaseStudy, Content: "x"},
		{Title: "c", Type: entity.KnowledgeTypePricing, Content: "x"},
		{Title: "d", Type: entity.KnowledgeTypePricing, Content: "x", IsActive: &inactive},
	}
	for i := range reqs {
		uc.CreateItem(context.Background(), &reqs[i])
	}

	counts, err := uc.CountActiveByType(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if counts[entity.KnowledgeTypeCaseStudy] != 2 || counts[entity.KnowledgeTypePricing] != 1 {
		t.Errorf("Unexpected counts %v", counts)
	}
}

func TestSeed(t *testing.T) {
	repo := newFakeRepo()
	uc := NewUsecase(repo, zap.NewNop())
	items := []entity.KnowledgeBaseItem{
		{Title: "Company", Type: entity.KnowledgeTypeCompanyInfo, Content: "About us", IsActive: true},
		{Title: "Broken", Type: "brochure", Content: "x", IsActive: true},
	}

	n, err := uc.Seed(context.Background(), items)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 seeded item, got %d", n)
	}

	n, err = uc.Seed(context.Background(), items)
	if err != nil || n != 0 {
		t.Errorf("Expected second seed to be skipped, got %d %v", n, err)
	}
}
