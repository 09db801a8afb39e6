package rfp

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/futig/rfp-backend/internal/analyzer"
	"github.com/futig/rfp-backend/internal/config"
	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type fakeUsecase struct {
	mu       sync.Mutex
	docs     map[string]*entity.RFPDocument
	uploaded []byte
	fileErr  error
}

func (f *fakeUsecase) Analyze(ctx context.Context, req *entity.AnalyzeRequest) *entity.RFPAnalysis {
	return analyzer.AnalyzeRFP(req.Text, analyzer.Metadata{PageCount: req.PageCount})
}

func (f *fakeUsecase) CreateFromText(ctx context.Context, req *entity.CreateRFPRequest) (*entity.RFPDocument, error) {
	doc := &entity.RFPDocument{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Analysis: f.Analyze(ctx, &entity.AnalyzeRequest{Text: req.Text}),
	}
	f.mu.Lock()
	f.docs[doc.ID] = doc
	f.mu.Unlock()
	return doc, nil
}

func (f *fakeUsecase) CreateFromFile(ctx context.Context, title, filename string, content []byte) (*entity.RFPDocument, error) {
	f.mu.Lock()
	f.uploaded = content
	f.mu.Unlock()
	if f.fileErr != nil {
		return nil, f.fileErr
	}
	return f.CreateFromText(ctx, &entity.CreateRFPRequest{Title: title, Text: string(content)})
}

func (f *fakeUsecase) Get(ctx context.Context, id string) (*entity.RFPDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	doc, ok := f.docs[id]
	if !ok {
		return nil, entity.ErrRFPNotFound
	}
	return doc, nil
}

func (f *fakeUsecase) List(ctx context.Context, req *entity.ListRequest) ([]*entity.RFPDocument, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.RFPDocument, 0, len(f.docs))
	for _, doc := range f.docs {
		out = append(out, doc)
	}
	return out, nil
}

func (f *fakeUsecase) Delete(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.docs[id]; !ok {
		return entity.ErrRFPNotFound
	}
	delete(f.docs, id)
	return nil
}

type callbackRecorder struct {
	completed chan *entity.RFPSummary
	failed    chan string
}

func (c *callbackRecorder) SendError(ctx context.Context, callbackURL, requestID, message string, details map[string]any) {
	c.failed <- message
}

func (c *callbackRecorder) SendAnalysisCompleted(ctx context.Context, callbackURL, requestID string, data *entity.RFPSummary) {
	c.completed <- data
}

const sampleText = "Scope of Work\nWhat is your approach to data migration?"

func newRouter() (http.Handler, *fakeUsecase, *callbackRecorder) {
	uc := &fakeUsecase{docs: make(map[string]*entity.RFPDocument)}
	cb := &callbackRecorder{completed: make(chan *entity.RFPSummary, 1), failed: make(chan string, 1)}
	cfg := config.FileUploadConfig{MaxFileSize: 1 << 10, MaxUploadSize: 1 << 20}
	h := NewHandler(uc, cfg, cb, validator.New(cfg))
	r := chi.NewRouter()
	RegisterRoutes(r, h)
	return r, uc, cb
}

func postJSON(h http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func uploadRequest(t *testing.T, filename, content, callbackURL string) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	w.WriteField("title", "Uploaded RFP")
	w.WriteField("callback_url", callbackURL)
	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("Failed to create form file: %v", err)
	}
	part.Write([]byte(content))
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/rfp/upload", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestAnalyze(t *testing.T) {
	h, _, _ := newRouter()

	rec := postJSON(h, "/analyze", `{"text":"`+strings.ReplaceAll(sampleText, "\n", `\n`)+`"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body map[string]any
	json.NewDecoder(rec.Body).Decode(&body)
	if body["total_questions"] != float64(1) {
		t.Errorf("Expected total_questions 1, got %v", body["total_questions"])
	}
}

func TestAnalyze_EmptyText(t *testing.T) {
	h, _, _ := newRouter()
	if rec := postJSON(h, "/analyze", `{"text":"   "}`); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestAnalyze_TextTooLarge(t *testing.T) {
	h, _, _ := newRouter()
	rec := postJSON(h, "/analyze", `{"text":"`+strings.Repeat("a", 2048)+`"}`)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("Expected 413, got %d", rec.Code)
	}
}

func TestCreateRFP_AndGet(t *testing.T) {
	h, _, _ := newRouter()

	rec := postJSON(h, "/rfp", `{"title":"Migration","text":"`+strings.ReplaceAll(sampleText, "\n", `\n`)+`"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var doc entity.RFPDocument
	json.NewDecoder(rec.Body).Decode(&doc)

	get := httptest.NewRecorder()
	h.ServeHTTP(get, httptest.NewRequest(http.MethodGet, "/rfp/"+doc.ID+"/analysis", nil))
	if get.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", get.Code)
	}
	if !strings.Contains(get.Body.String(), `"total_questions":1`) {
		t.Errorf("Expected analysis body, got %s", get.Body.String())
	}

	list := httptest.NewRecorder()
	h.ServeHTTP(list, httptest.NewRequest(http.MethodGet, "/rfp?limit=5", nil))
	var listed entity.ListRFPsResponse
	json.NewDecoder(list.Body).Decode(&listed)
	if len(listed.Documents) != 1 || listed.Documents[0].TotalQuestions != 1 {
		t.Errorf("Expected one summary with 1 question, got %+v", listed.Documents)
	}
}

func TestCreateRFP_MissingTitle(t *testing.T) {
	h, _, _ := newRouter()
	if rec := postJSON(h, "/rfp", `{"text":"x"}`); rec.Code != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", rec.Code)
	}
}

func TestGetRFP_NotFound(t *testing.T) {
	h, _, _ := newRouter()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/rfp/"+uuid.NewString(), nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected 404, got %d", rec.Code)
	}
}

func TestUploadRFP_AcceptedThenCallback(t *testing.T) {
	h, uc, cb := newRouter()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, uploadRequest(t, "rfp.txt", sampleText, "https://client.example.com/hook"))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d: %s", rec.Code, rec.Body.String())
	}

	select {
	case summary := <-cb.completed:
		if summary.TotalQuestions != 1 || summary.Title != "Uploaded RFP" {
			t.Errorf("Unexpected summary %+v", summary)
		}
	case msg := <-cb.failed:
		t.Fatalf("Expected success callback, got error %q", msg)
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for callback")
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()
	if string(uc.uploaded) != sampleText {
		t.Errorf("Expected uploaded content to reach the use case, got %q", uc.uploaded)
	}
}

func TestUploadRFP_ErrorCallback(t *testing.T) {
	h, uc, cb := newRouter()
	uc.fileErr = entity.ErrEmptyDocument

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, uploadRequest(t, "rfp.txt", "x", "https://client.example.com/hook"))
	if rec.Code != http.StatusAccepted {
		t.Fatalf("Expected 202, got %d", rec.Code)
	}

	select {
	case <-cb.failed:
	case <-cb.completed:
		t.Fatal("Expected error callback")
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for callback")
	}
}

func TestUploadRFP_Rejected(t *testing.T) {
	h, _, _ := newRouter()

	tests := []struct {
		name     string
		filename string
		content  string
		callback string
		want     int
	}{
		{"missing callback", "rfp.txt", sampleText, "", http.StatusBadRequest},
		{"unsupported format", "rfp.exe", sampleText, "https://x.example.com", http.StatusUnprocessableEntity},
		{"file too large", "rfp.txt", strings.Repeat("a", 4096), "https://x.example.com", http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, uploadRequest(t, tt.filename, tt.content, tt.callback))
		if rec.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.name, tt.want, rec.Code)
		}
	}
}
