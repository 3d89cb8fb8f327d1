package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/frontandrew/cda/internal/delivery/http/middleware"
	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/pkg/logger"
)

// AvailabilityService - контракт доступности техников со стороны HTTP слоя
type AvailabilityService interface {
	SetAvailability(ctx context.Context, technicianID string, date time.Time, slots []string) (*domain.TechnicianAvailability, error)
	GetAvailability(ctx context.Context, technicianID string, date time.Time) ([]string, error)
	AvailableSlots(ctx context.Context, technicianID string, date time.Time) ([]string, error)
}

// AvailabilityHandler обрабатывает запросы доступности техников
type AvailabilityHandler struct {
	availabilityService AvailabilityService
	logger              logger.Logger
}

// NewAvailabilityHandler создает новый handler
func NewAvailabilityHandler(availabilityService AvailabilityService, log logger.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{
		availabilityService: availabilityService,
		logger:              log,
	}
}

// setAvailabilityRequest - тело запроса на сохранение доступности
type setAvailabilityRequest struct {
	Date      time.Time `json:"date"`
	TimeSlots []string  `json:"timeSlots"`
}

// Set сохраняет доступность техника текущей сессии на день
// PUT .../availability
func (h *AvailabilityHandler) Set(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req setAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	availability, err := h.availabilityService.SetAvailability(r.Context(), claims.UserID, req.Date, req.TimeSlots)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidTimeSlot),
			errors.Is(err, domain.ErrInvalidAvailabilityData):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to save availability", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to save availability")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    availability,
	})
}

// Get возвращает предложенные слоты техника на день
// GET .../availability/{technicianId}?date=2006-01-02
func (h *AvailabilityHandler) Get(w http.ResponseWriter, r *http.Request) {
	technicianID := chi.URLParam(r, "technicianId")
	date, ok := parseDateParam(r, "date")
	if !ok {
		respondError(w, http.StatusBadRequest, "Query parameter 'date' (YYYY-MM-DD) is required")
		return
	}

	slots, err := h.availabilityService.GetAvailability(r.Context(), technicianID, date)
	if err != nil {
		h.logger.Error("Failed to get availability", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get availability")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    slots,
	})
}

// Free возвращает слоты техника, свободные для записи
// GET .../availability/{technicianId}/free?date=2006-01-02
func (h *AvailabilityHandler) Free(w http.ResponseWriter, r *http.Request) {
	technicianID := chi.URLParam(r, "technicianId")
	date, ok := parseDateParam(r, "date")
	if !ok {
		respondError(w, http.StatusBadRequest, "Query parameter 'date' (YYYY-MM-DD) is required")
		return
	}

	slots, err := h.availabilityService.AvailableSlots(r.Context(), technicianID, date)
	if err != nil {
		h.logger.Error("Failed to get available slots", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get available slots")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    slots,
	})
}
