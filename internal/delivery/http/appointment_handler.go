package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/frontandrew/cda/internal/delivery/http/middleware"
	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/notify"
	"github.com/frontandrew/cda/internal/pkg/logger"
	"github.com/frontandrew/cda/internal/usecase/schedule"
)

// ScheduleService - контракт сценария планирования со стороны HTTP слоя
type ScheduleService interface {
	AddAppointment(ctx context.Context, req *schedule.CreateAppointmentRequest) (*domain.Appointment, error)
	UpdateAppointment(ctx context.Context, id string, req *schedule.UpdateAppointmentRequest) (*domain.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
	ListAppointments(ctx context.Context) ([]*domain.Appointment, error)
	ListAppointmentsByOwner(ctx context.Context, ownerID string) ([]*domain.Appointment, error)
}

// AppointmentHandler обрабатывает запросы записей на осмотр
type AppointmentHandler struct {
	scheduleService ScheduleService
	toasts          *notify.Queue
	logger          logger.Logger
}

// NewAppointmentHandler создает новый handler
func NewAppointmentHandler(scheduleService ScheduleService, toasts *notify.Queue, log logger.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		scheduleService: scheduleService,
		toasts:          toasts,
		logger:          log,
	}
}

// Create создает запись на осмотр
// POST .../appointments
func (h *AppointmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Владелец записывает собственный автомобиль: ownerId берется из сессии
	if req.OwnerID == "" {
		if claims, ok := middleware.GetUserClaims(r.Context()); ok {
			req.OwnerID = claims.UserID
		}
	}

	appointment, err := h.scheduleService.AddAppointment(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrSlotUnavailable):
			h.toasts.Push("El horario seleccionado ya no está disponible", notify.SeverityError)
			respondError(w, http.StatusConflict, "Time slot is not available")
		case errors.Is(err, domain.ErrInvalidPlate),
			errors.Is(err, domain.ErrInvalidTimeSlot),
			errors.Is(err, domain.ErrInvalidAppointmentData),
			errors.Is(err, domain.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to create appointment", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to create appointment")
		}
		return
	}

	h.toasts.Push("Cita agendada correctamente", notify.SeveritySuccess)
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    appointment,
	})
}

// Update частично обновляет запись
// PATCH .../appointments/{id}
func (h *AppointmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req schedule.UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	appointment, err := h.scheduleService.UpdateAppointment(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAppointmentNotFound):
			respondError(w, http.StatusNotFound, "Appointment not found")
		case errors.Is(err, domain.ErrInvalidPlate),
			errors.Is(err, domain.ErrInvalidTimeSlot),
			errors.Is(err, domain.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to update appointment", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to update appointment")
		}
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    appointment,
	})
}

// Delete удаляет запись
// DELETE .../appointments/{id}
func (h *AppointmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.scheduleService.DeleteAppointment(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			respondError(w, http.StatusNotFound, "Appointment not found")
			return
		}
		h.logger.Error("Failed to delete appointment", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to delete appointment")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Appointment deleted",
	})
}

// List возвращает все записи
// GET .../appointments
func (h *AppointmentHandler) List(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.scheduleService.ListAppointments(r.Context())
	if err != nil {
		h.logger.Error("Failed to list appointments", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list appointments")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    appointments,
	})
}

// ListMine возвращает записи владельца текущей сессии
// GET .../appointments/me
func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	appointments, err := h.scheduleService.ListAppointmentsByOwner(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("Failed to list appointments", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list appointments")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    appointments,
	})
}
