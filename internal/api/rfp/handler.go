package rfp

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"

	"github.com/futig/rfp-backend/internal/config"
	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/pkg/logger"
	"github.com/futig/rfp-backend/internal/pkg/response"
	"github.com/futig/rfp-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase      RFPUsecase
	cfg          config.FileUploadConfig
	callbackConn CallbackConnector
	validator    *validator.Validator
}

func NewHandler(
	usecase RFPUsecase,
	cfg config.FileUploadConfig,
	callbackConn CallbackConnector,
	validator *validator.Validator,
) *Handler {
	return &Handler{
		usecase:      usecase,
		cfg:          cfg,
		callbackConn: callbackConn,
		validator:    validator,
	}
}

// Analyze handles POST /analyze
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Analyze")

	var req entity.AnalyzeRequest
	if err := h.decode(w, r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateAnalyze(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, h.usecase.Analyze(ctx, &req))
}

// CreateRFP handles POST /rfp
func (h *Handler) CreateRFP(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateRFP")

	var req entity.CreateRFPRequest
	if err := h.decode(w, r, &req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateCreateRFP(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	doc, err := h.usecase.CreateFromText(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusCreated, doc)
}

// UploadRFP handles POST /rfp/upload
func (h *Handler) UploadRFP(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "UploadRFP")

	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = middleware.GetReqID(r.Context())
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			response.Error(ctx, w, http.StatusRequestEntityTooLarge, "upload is too large", err)
			return
		}
		response.Error(ctx, w, http.StatusBadRequest, "invalid form data", err)
		return
	}

	req := entity.UploadRFPRequest{
		Title:       r.FormValue("title"),
		CallbackURL: r.FormValue("callback_url"),
	}
	if files := r.MultipartForm.File["file"]; len(files) > 0 {
		req.File = files[0]
	}

	if err := h.validator.ValidateUploadRFP(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	// Multipart temp files are removed when the handler returns, read before going async
	content, err := readFile(req.File)
	if err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "failed to read uploaded file", err)
		return
	}
	filename := req.File.Filename

	ctxzap.Info(ctx, "rfp upload accepted",
		zap.String("filename", req.File.Filename),
		zap.Int64("size", req.File.Size),
	)

	response.JSON(w, http.StatusAccepted, &entity.StatusResponse{
		Status:  "accepted",
		Message: "rfp document is being processed",
	})

	// Ingest and analyze asynchronously
	go func() {
		bgCtx := logger.AddFields(logger.Detach(ctx),
			zap.String("request_id", requestID),
			zap.String("action", "UploadRFP-async"),
		)

		doc, err := h.usecase.CreateFromFile(bgCtx, req.Title, filename, content)
		if err != nil {
			ctxzap.Error(bgCtx, "failed to process rfp upload", zap.Error(err))
			h.callbackConn.SendError(bgCtx, req.CallbackURL, requestID, "failed to process rfp document", map[string]any{
				"filename": filename,
				"error":    err.Error(),
			})
			return
		}

		ctxzap.Info(bgCtx, "rfp upload processed", zap.String("rfp_id", doc.ID))

		h.callbackConn.SendAnalysisCompleted(bgCtx, req.CallbackURL, requestID, toRFPSummary(doc))
	}()
}

// ListRFPs handles GET /rfp
func (h *Handler) ListRFPs(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListRFPs")

	skip, _ := strconv.Atoi(r.URL.Query().Get("skip"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	docs, err := h.usecase.List(ctx, &entity.ListRequest{Skip: skip, Limit: limit})
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	summaries := make([]*entity.RFPSummary, 0, len(docs))
	for _, doc := range docs {
		summaries = append(summaries, toRFPSummary(doc))
	}

	ctxzap.Debug(ctx, "rfp documents listed", zap.Int("count", len(summaries)))

	response.JSON(w, http.StatusOK, &entity.ListRFPsResponse{Documents: summaries})
}

// GetRFP handles GET /rfp/{rfp_id}
func (h *Handler) GetRFP(w http.ResponseWriter, r *http.Request) {
	rfpID := chi.URLParam(r, "rfp_id")
	ctx := logger.WithResource(r.Context(), "GetRFP", "rfp_id", rfpID)

	doc, err := h.usecase.Get(ctx, rfpID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, doc)
}

// GetAnalysis handles GET /rfp/{rfp_id}/analysis
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	rfpID := chi.URLParam(r, "rfp_id")
	ctx := logger.WithResource(r.Context(), "GetAnalysis", "rfp_id", rfpID)

	doc, err := h.usecase.Get(ctx, rfpID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, doc.Analysis)
}

// DeleteRFP handles DELETE /rfp/{rfp_id}
func (h *Handler) DeleteRFP(w http.ResponseWriter, r *http.Request) {
	rfpID := chi.URLParam(r, "rfp_id")
	ctx := logger.WithResource(r.Context(), "DeleteRFP", "rfp_id", rfpID)

	if err := h.usecase.Delete(ctx, rfpID); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, &entity.StatusResponse{Status: "deleted"})
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return io.ReadAll(src)
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) error {
	// JSON escaping can grow text, allow the whole upload budget for the envelope
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	return json.NewDecoder(r.Body).Decode(v)
}
