package game

import (
	"github.com/go-chi/chi/v5"
)

// Mount registers the session routes. Starting a game lives under /games,
// next to the catalog routes.
func Mount(r chi.Router, h *Handler) {
	r.Post("/games/{slug}/sessions", h.Start)
	r.Post("/practice/sessions", h.StartPractice)

	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Delete("/", h.End)
		r.Post("/start", h.Begin)
		r.Post("/select", h.Select)
		r.Post("/submit", h.Submit)
		r.Post("/advance", h.Advance)
		r.Post("/restart", h.Restart)
		r.Get("/summary", h.Summary)
		r.Get("/hint", h.Hint)
	})
}
