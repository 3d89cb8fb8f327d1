package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/frontandrew/cda/internal/delivery/http/middleware"
	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/pkg/logger"
	"github.com/frontandrew/cda/internal/usecase/vehicle"
)

// VehicleService - контракт сценария автомобилей со стороны HTTP слоя
type VehicleService interface {
	AddVehicle(ctx context.Context, req *vehicle.CreateVehicleRequest) (*domain.Vehicle, error)
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Vehicle, error)
	List(ctx context.Context) ([]*domain.Vehicle, error)
}

// VehicleHandler обрабатывает запросы автомобилей
type VehicleHandler struct {
	vehicleService VehicleService
	logger         logger.Logger
}

// NewVehicleHandler создает новый handler
func NewVehicleHandler(vehicleService VehicleService, log logger.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
		logger:         log,
	}
}

// Create регистрирует новый автомобиль
// POST .../vehicles
func (h *VehicleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req vehicle.CreateVehicleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.OwnerID == "" {
		if claims, ok := middleware.GetUserClaims(r.Context()); ok {
			req.OwnerID = claims.UserID
		}
	}

	created, err := h.vehicleService.AddVehicle(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidPlate),
			errors.Is(err, domain.ErrInvalidVehicleData):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("Failed to register vehicle", map[string]interface{}{
				"error": err.Error(),
			})
			respondError(w, http.StatusInternalServerError, "Failed to register vehicle")
		}
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"data":    created,
	})
}

// GetByPlate возвращает автомобиль по номеру
// GET .../vehicles/plate/{plate}
func (h *VehicleHandler) GetByPlate(w http.ResponseWriter, r *http.Request) {
	plate := chi.URLParam(r, "plate")

	found, err := h.vehicleService.GetByPlate(r.Context(), plate)
	if err != nil {
		if errors.Is(err, domain.ErrVehicleNotFound) {
			respondError(w, http.StatusNotFound, "Vehicle not found")
			return
		}
		h.logger.Error("Failed to get vehicle", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to get vehicle")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    found,
	})
}

// List возвращает все автомобили
// GET .../vehicles
func (h *VehicleHandler) List(w http.ResponseWriter, r *http.Request) {
	vehicles, err := h.vehicleService.List(r.Context())
	if err != nil {
		h.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list vehicles")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    vehicles,
	})
}

// ListMine возвращает автомобили владельца текущей сессии
// GET .../vehicles/me
func (h *VehicleHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetUserClaims(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	vehicles, err := h.vehicleService.ListByOwner(r.Context(), claims.UserID)
	if err != nil {
		h.logger.Error("Failed to list vehicles", map[string]interface{}{
			"error": err.Error(),
		})
		respondError(w, http.StatusInternalServerError, "Failed to list vehicles")
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    vehicles,
	})
}
