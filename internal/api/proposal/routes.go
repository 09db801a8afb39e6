package proposal

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers proposal routes and the stateless generation endpoint
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/generate", h.Generate)

	r.Route("/rfp/{rfp_id}/proposals", func(r chi.Router) {
		r.Post("/", h.CreateProposal)
		r.Get("/", h.ListProposals)
	})

	r.Route("/proposals/{proposal_id}", func(r chi.Router) {
		r.Get("/", h.GetProposal)
		r.Delete("/", h.DeleteProposal)
	})
}
