package proposal

import (
	"encoding/json"
	"net/http"

	"github.com/futig/rfp-backend/internal/config"
	"github.com/futig/rfp-backend/internal/entity"
	"github.com/futig/rfp-backend/internal/pkg/logger"
	"github.com/futig/rfp-backend/internal/pkg/response"
	"github.com/futig/rfp-backend/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase   ProposalUsecase
	cfg       config.FileUploadConfig
	validator *validator.Validator
}

func NewHandler(usecase ProposalUsecase, cfg config.FileUploadConfig, validator *validator.Validator) *Handler {
	return &Handler{
		usecase:   usecase,
		cfg:       cfg,
		validator: validator,
	}
}

// Generate handles POST /generate
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Generate")

	var req entity.GenerateRequest
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadSize)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	if err := h.validator.ValidateGenerate(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	ctxzap.Debug(ctx, "generating stateless proposal",
		zap.Int("sections", len(req.Analysis.Sections)),
		zap.Int("knowledge_items", len(req.KnowledgeItems)),
	)

	response.JSON(w, http.StatusOK, h.usecase.Generate(ctx, &req))
}

// CreateProposal handles POST /rfp/{rfp_id}/proposals
func (h *Handler) CreateProposal(w http.ResponseWriter, r *http.Request) {
	rfpID := chi.URLParam(r, "rfp_id")
	ctx := logger.WithResource(r.Context(), "CreateProposal", "rfp_id", rfpID)

	var req entity.CreateProposalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	req.RFPID = rfpID

	if err := h.validator.ValidateCreateProposal(&req); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	proposal, err := h.usecase.Create(ctx, &req)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusCreated, proposal)
}

// ListProposals handles GET /rfp/{rfp_id}/proposals
func (h *Handler) ListProposals(w http.ResponseWriter, r *http.Request) {
	rfpID := chi.URLParam(r, "rfp_id")
	ctx := logger.WithResource(r.Context(), "ListProposals", "rfp_id", rfpID)

	proposals, err := h.usecase.ListByRFP(ctx, rfpID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	summaries := make([]*entity.ProposalSummary, 0, len(proposals))
	for _, p := range proposals {
		summaries = append(summaries, toProposalSummary(p))
	}

	response.JSON(w, http.StatusOK, &entity.ListProposalsResponse{Proposals: summaries})
}

// GetProposal handles GET /proposals/{proposal_id}
func (h *Handler) GetProposal(w http.ResponseWriter, r *http.Request) {
	proposalID := chi.URLParam(r, "proposal_id")
	ctx := logger.WithResource(r.Context(), "GetProposal", "proposal_id", proposalID)

	proposal, err := h.usecase.Get(ctx, proposalID)
	if err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, proposal)
}

// DeleteProposal handles DELETE /proposals/{proposal_id}
func (h *Handler) DeleteProposal(w http.ResponseWriter, r *http.Request) {
	proposalID := chi.URLParam(r, "proposal_id")
	ctx := logger.WithResource(r.Context(), "DeleteProposal", "proposal_id", proposalID)

	if err := h.usecase.Delete(ctx, proposalID); err != nil {
		response.UsecaseError(ctx, w, err)
		return
	}

	response.JSON(w, http.StatusOK, &entity.StatusResponse{Status: "deleted"})
}
