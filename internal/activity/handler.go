package activity

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/saulo-duarte/statbook-lambda/internal/config"
)

// NetIDHeader carries the optional campus NetID of the student.
const NetIDHeader = "X-Net-ID"

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Track(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto TrackDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	visit, err := h.service.Track(r.Context(), r.Header.Get(NetIDHeader), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAction), errors.Is(err, ErrPathRequired), errors.Is(err, ErrInvalidMetadata):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrReservedAction):
			http.Error(w, err.Error(), http.StatusForbidden)
		default:
			http.Error(w, "failed to track activity", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, TrackResponse{Success: true, ID: visit.ID})
}

func (h *Handler) Activity(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	limit := queryInt(r, "limit", DefaultLimit)
	offset := queryInt(r, "offset", 0)

	report, err := h.service.Report(r.Context(), limit, offset)
	if err != nil {
		log.WithError(err).Error("Failed to get activity data")
		http.Error(w, "failed to get activity data", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, report)
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	report, err := h.service.StudentStats(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to get student stats")
		http.Error(w, "failed to get student stats", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, report)
}

func queryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return def
	}
	return v
}
