package game

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/saulo-duarte/statbook-lambda/internal/activity"
	"github.com/saulo-duarte/statbook-lambda/internal/aiquiz"
	"github.com/saulo-duarte/statbook-lambda/internal/config"
	"github.com/saulo-duarte/statbook-lambda/internal/content"
	"github.com/saulo-duarte/statbook-lambda/internal/quiz"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	var dto StartDTO
	if err := decodeOptional(r, &dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.Start(r.Context(), chi.URLParam(r, "slug"), dto, r.Header.Get(activity.NetIDHeader))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, view)
}

func (h *Handler) StartPractice(w http.ResponseWriter, r *http.Request) {
	var dto PracticeDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	view, err := h.service.StartPractice(r.Context(), dto, r.Header.Get(activity.NetIDHeader))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	config.JSON(w, http.StatusCreated, view)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) Begin(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Begin)
}

func (h *Handler) Select(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	var dto SelectDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	resp, err := h.service.Select(r.Context(), id, dto)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Submit)
}

func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Advance)
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.service.Restart)
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summary(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}

func (h *Handler) Hint(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	hint, err := h.service.Hint(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, HintResponse{Hint: hint})
}

func (h *Handler) End(w http.ResponseWriter, r *http.Request) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	if err := h.service.End(r.Context(), id); err != nil {
		h.fail(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type transitionFunc func(ctx context.Context, id uuid.UUID) (*ActionResponse, error)

func (h *Handler) transition(w http.ResponseWriter, r *http.Request, fn transitionFunc) {
	id, ok := sessionID(w, r)
	if !ok {
		return
	}

	resp, err := fn(r.Context(), id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) fail(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrSessionNotFound), errors.Is(err, content.ErrGameNotFound), errors.Is(err, ErrNoHint):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, content.ErrInvalidMode),
		errors.Is(err, aiquiz.ErrTopicRequired),
		errors.Is(err, aiquiz.ErrInvalidDifficulty):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrSummaryUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrTooManySessions):
		http.Error(w, err.Error(), http.StatusTooManyRequests)
	case errors.Is(err, ErrPracticeDisabled), errors.Is(err, aiquiz.ErrProviderUnavailable):
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	case errors.Is(err, aiquiz.ErrNoValidQuestions), errors.Is(err, quiz.ErrEmptyBank):
		http.Error(w, err.Error(), http.StatusBadGateway)
	default:
		config.WithContext(r.Context()).WithError(err).Error("Quiz session request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func sessionID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid session id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

// decodeOptional accepts an empty body as the zero value.
func decodeOptional(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
