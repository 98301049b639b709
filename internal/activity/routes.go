package activity

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/track", h.Track)
	return r
}

// AdminRoutes must be mounted behind authentication.
func AdminRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/activity", h.Activity)
	r.Get("/stats", h.Stats)
	return r
}
