package knowledge

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/pkg/logger"
	"github.com/futig/rfp-backend/internal/pkg/response"
	"github.com/futig/rfp-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   KnowledgeUsecase
	validator *validator.Validator
}

func NewHandler(usecase KnowledgeUsecase, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
	}
}

// CreateItem handles POST /knowledge
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CreateKnowledgeItem")

	var req entity.CreateKnowledgeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateCreateKnowledgeItem(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	item, err := h.usecase.CreateItem(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusCreated, item)
}

// ListItems handles GET /knowledge
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListKnowledgeItems")

	query := r.URL.Query()
	skip, _ := strconv.Atoi(query.Get("skip"))
	limit, _ := strconv.Atoi(query.Get("limit"))
	activeOnly, _ := strconv.ParseBool(query.Get("active_only"))

	req := entity.ListKnowledgeItemsRequest{
		ListRequest: entity.ListRequest{Skip: skip, Limit: limit},
		ActiveOnly:  activeOnly,
	}

	items, err := h.usecase.ListItems(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}
	if items == nil {
		items = []*entity.KnowledgeBaseItem{}
	}

	ctxzap.Debug(ctx, "knowledge items listed", zap.Int("count", len(items)))

	response.JSON(w, http.StatusOK, &entity.ListKnowledgeItemsResponse{Items: items})
}

// GetItem handles GET /knowledge/{item_id}
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	ctx := logger.WithResource(r.Context(), "GetKnowledgeItem", "item_id", itemID)

	item, err := h.usecase.GetItem(ctx, itemID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// UpdateItem handles PUT /knowledge/{item_id}
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	ctx := logger.WithResource(r.Context(), "UpdateKnowledgeItem", "item_id", itemID)

	var req entity.UpdateKnowledgeItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	req.ID = itemID

	if err := h.validator.ValidateUpdateKnowledgeItem(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	item, err := h.usecase.UpdateItem(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, item)
}

// DeleteItem handles DELETE /knowledge/{item_id}
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	ctx := logger.WithResource(r.Context(), "DeleteKnowledgeItem", "item_id", itemID)

	if err := h.usecase.DeleteItem(ctx, itemID); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, &entity.StatusResponse{Status: "deleted"})
}
