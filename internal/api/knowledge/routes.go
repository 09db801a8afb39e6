package knowledge

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers knowledge base routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/knowledge", func(r chi.Router) {
		r.Post("/", h.CreateItem)
		r.Get("/", h.ListItems)

		r.Route("/{item_id}", func(r chi.Router) {
			r.Get("/", h.GetItem)
			r.Put("/", h.UpdateItem)
			r.Delete("/", h.DeleteItem)
		})
	})
}
