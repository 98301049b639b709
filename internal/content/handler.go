package content

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/saulo-duarte/statbook-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListChapters(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, h.service.Chapters())
}

func (h *Handler) GetChapter(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		http.Error(w, "invalid chapter number", http.StatusBadRequest)
		return
	}

	ch, err := h.service.Chapter(number)
	if err != nil {
		http.Error(w, "chapter not found", http.StatusNotFound)
		return
	}

	config.JSON(w, http.StatusOK, ch)
}

func (h *Handler) GetNavigation(w http.ResponseWriter, r *http.Request) {
	p := r.URL.Query().Get("path")
	if p == "" {
		http.Error(w, "path required", http.StatusBadRequest)
		return
	}
	config.JSON(w, http.StatusOK, h.service.Navigation(p))
}

func (h *Handler) ListGames(w http.ResponseWriter, r *http.Request) {
	chapter := 0
	if v := r.URL.Query().Get("chapter"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid chapter", http.StatusBadRequest)
			return
		}
		chapter = n
	}

	responses := []GameResponse{}
	for _, g := range h.service.Games() {
		if chapter != 0 && g.Chapter != chapter {
			continue
		}
		responses = append(responses, ToGameResponse(g))
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) GetGame(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	g, err := h.service.Game(chi.URLParam(r, "slug"))
	if err != nil {
		if errors.Is(err, ErrGameNotFound) {
			http.Error(w, "game not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("Failed to load game")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, ToGameResponse(g))
}
