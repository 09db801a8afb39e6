package knowledge

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/futig/rfp-backend/internal/config"
	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type fakeUsecase struct {
	items   map[string]*entity.KnowledgeBaseItem
	listReq *entity.ListKnowledgeItemsRequest
}

func (f *fakeUsecase) CreateItem(ctx context.Context, req *entity.CreateKnowledgeItemRequest) (*entity.KnowledgeBaseItem, error) {
	item := &entity.KnowledgeBaseItem{ID: uuid.NewString(), Title: req.Title, Type: req.Type, Content: req.Content, IsActive: true}
	f.items[item.ID] = item
	return item, nil
}

func (f *fakeUsecase) GetItem(ctx context.Context, id string) (*entity.KnowledgeBaseItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, entity.ErrKnowledgeItemNotFound
	}
	return item, nil
}

func (f *fakeUsecase) ListItems(ctx context.Context, req *entity.ListKnowledgeItemsRequest) ([]*entity.KnowledgeBaseItem, error) {
	f.listReq = req
	return nil, nil
}

func (f *fakeUsecase) UpdateItem(ctx context.Context, req *entity.UpdateKnowledgeItemRequest) (*entity.KnowledgeBaseItem, error) {
	item, ok := f.items[req.ID]
	if !ok {
		return nil, entity.ErrKnowledgeItemNotFound
	}
	if req.Title != nil {
		item.Title = *req.Title
	}
	return item, nil
}

func (f *fakeUsecase) DeleteItem(ctx context.Context, id string) error {
	if _, ok := f.items[id]; !ok {
		return entity.ErrKnowledgeItemNotFound
	}
	delete(f.items, id)
	return nil
}

func newRouter() (http.Handler, *fakeUsecase) {
	uc := &fakeUsecase{items: make(map[string]*entity.KnowledgeBaseItem)}
	h := NewHandler(uc, validator.New(config.FileUploadConfig{MaxFileSize: 1 << 20, MaxUploadSize: 2 << 20}))
	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return r, uc
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateItem(t *testing.T) {
	h, uc := newRouter()

	rec := do(t, h, http.MethodPost, "/knowledge", `{"title":"Cloud","type":"technical-spec","content":"AWS"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var item entity.KnowledgeBaseItem
	if err := json.NewDecoder(rec.Body).Decode(&item); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if _, ok := uc.items[item.ID]; !ok {
		t.Error("Expected item to be created")
	}
}

func TestCreateItem_ValidationErrors(t *testing.T) {
	h, _ := newRouter()

	tests := map[string]string{
		"bad json":     `{`,
		"missing type": `{"title":"Cloud","content":"AWS"}`,
		"bad type":     `{"title":"Cloud","type":"brochure","content":"AWS"}`,
	}
	for name, body := range tests {
		rec := do(t, h, http.MethodPost, "/knowledge", body)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

func TestListItems_QueryParams(t *testing.T) {
	h, uc := newRouter()

	rec := do(t, h, http.MethodGet, "/knowledge?skip=5&limit=20&active_only=true", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", rec.Code)
	}
	if uc.listReq.Skip != 5 || uc.listReq.Limit != 20 || !uc.listReq.ActiveOnly {
		t.Errorf("Unexpected list request %+v", uc.listReq)
	}
	if !strings.Contains(rec.Body.String(), `"items":[]`) {
		t.Errorf("Expected empty items array, got %s", rec.Body.String())
	}
}

func TestGetUpdateDelete(t *testing.T) {
	h, uc := newRouter()
	id := uuid.NewString()
	uc.items[id] = &entity.KnowledgeBaseItem{ID: id, Title: "Old", Type: entity.KnowledgeTypeFAQ}

	if rec := do(t, h, http.MethodGet, "/knowledge/"+id, ""); rec.Code != http.StatusOK {
		t.Errorf("Expected 200 on get, got %d", rec.Code)
	}

	rec := do(t, h, http.MethodPut, "/knowledge/"+id, `{"title":"New"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200 on update, got %d", rec.Code)
	}
	if uc.items[id].Title != "New" {
		t.Errorf("Expected title updated, got %s", uc.items[id].Title)
	}

	if rec := do(t, h, http.MethodPut, "/knowledge/not-a-uuid", `{"title":"New"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid id, got %d", rec.Code)
	}

	if rec := do(t, h, http.MethodDelete, "/knowledge/"+id, ""); rec.Code != http.StatusOK {
		t.Errorf("Expected 200 on delete, got %d", rec.Code)
	}
	if rec := do(t, h, http.MethodGet, "/knowledge/"+id, ""); rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404 after delete, got %d", rec.Code)
	}
}
