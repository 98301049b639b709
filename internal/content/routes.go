package content

import (
	"github.com/go-chi/chi/v5"
)

// Mount registers the read-only catalog routes on r. Game session routes
// share the /games prefix, so these are mounted flat instead of as a sub-router.
func Mount(r chi.Router, h *Handler) {
	r.Get("/chapters", h.ListChapters)
	r.Get("/chapters/{number}", h.GetChapter)
	r.Get("/navigation", h.GetNavigation)
	r.Get("/games", h.ListGames)
	r.Get("/games/{slug}", h.GetGame)
}
