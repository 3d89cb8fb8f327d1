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
	"github.com/frontandrew/cda/internal/notify"
	"github.com/frontandrew/cda/internal/pkg/logger"
	"github.com/frontandrew/cda/internal/usecase/inspection"
)

// InspectionService - контракт сценария осмотров со стороны HTTP слоя
type InspectionService interface {
	AddInspection(ctx context.Context, req *inspection.CreateInspectionRequest) (*domain.Inspection, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Inspection, error)
	ListByPlate(ctx context.Context, plate string) ([]*domain.Inspection, error)
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Inspection, error)
}

// InspectionHandler обрабатывает запросы осмотров
type InspectionHandler struct {
	inspectionService InspectionService
	toasts            *notify.Queue
	logger            logger.Logger
}

// NewInspectionHandler создает новый handler
func NewInspectionHandler(inspectionService InspectionService, toasts *notify.Queue, log logger.Logger) *InspectionHandler {
	return &InspectionHandler{
		inspectionService: inspectionService,
		toasts:            toasts,
		logger:            log,
	}
}

// Create регистрирует проведенный осмотр
// POST .../inspections
func (h *InspectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req inspection.CreateInspectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	// Осмотр регистрирует техник текущей сессии
	if req.TechnicianID == "" {
		if claims, ok := middleware.GetUserClaims(r.Context()); ok {
			req.TechnicianID = claims.UserID
		}
	}

	created, err := h.inspectionService.AddInspection(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPlate),
			errors.Is(err, domain.ErrInvalidInspectionData):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to create inspection", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to create inspection")
		}
		return
	}

	h.toasts.Push("Inspección registrada y certificado generado", notify.SeveritySuccess)
	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    created,
	})
}

// GetByPlate возвращает самый свежий осмотр автомобиля
// GET .../inspections/plate/{plate}
func (h *InspectionHandler) GetByPlate(w http.ResponseWriter, r *http.Request) {
	plate := chi.URLParam(r, "plate")

	found, err := h.inspectionService.GetByPlate(r.Context(), plate)
	if err != nil {
		if errors.Is(err, domain.ErrInspectionNotFound) {
			respondError(w, http.StatusNotFound, "No inspections found for plate")
			return
		}
		h.logger.Error("Failed to get inspection", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get inspection")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    found,
	})
}

// History возвращает все осмотры автомобиля, новые первыми
// GET .../inspections/plate/{plate}/history
func (h *InspectionHandler) History(w http.ResponseWriter, r *http.Request) {
	plate := chi.URLParam(r, "plate")

	all, err := h.inspectionService.ListByPlate(r.Context(), plate)
	if err != nil {
		h.logger.Error("Failed to list inspections", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list inspections")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    all,
	})
}

// ByDateRange возвращает осмотры за период, границы дней включаются
// GET .../inspections?start=2006-01-02&end=2006-01-02
func (h *InspectionHandler) ByDateRange(w http.ResponseWriter, r *http.Request) {
	start, okStart := parseDateParam(r, "start")
	end, okEnd := parseDateParam(r, "end")
	if !okStart || !okEnd {
		respondError(w, http.StatusBadRequest, "Query parameters 'start' and 'end' (YYYY-MM-DD) are required")
		return
	}

	all, err := h.inspectionService.GetByDateRange(r.Context(), start, endOfDay(end))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInspectionRange) {
			respondError(w, http.StatusBadRequest, "Invalid date range")
			return
		}
		h.logger.Error("Failed to list inspections", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list inspections")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    all,
	})
}
