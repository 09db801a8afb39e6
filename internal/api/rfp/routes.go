package rfp

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers RFP document routes and the stateless analysis endpoint
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/analyze", h.Analyze)

	r.Route("/rfp", func(r chi.Router) {
		r.Post("/", h.CreateRFP)
		r.Post("/upload", h.UploadRFP)
		r.Get("/", h.ListRFPs)

		r.Route("/{rfp_id}", func(r chi.Router) {
			r.Get("/", h.GetRFP)
			r.Get("/analysis", h.GetAnalysis)
			r.Delete("/", h.DeleteRFP)
		})
	})
}
