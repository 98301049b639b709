package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/statbook-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())
	var req QuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	questions, err := h.service.GenerateQuestions(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTopicRequired), errors.Is(err, ErrInvalidDifficulty):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrProviderUnavailable):
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
		default:
			log.WithError(err).Error("Failed to generate questions")
			http.Error(w, "failed to generate questions", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, questions)
}
