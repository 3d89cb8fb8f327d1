package vehicle

import (
	"context"
	"fmt"

	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/pkg/logger"
	"github.com/frontandrew/cda/internal/repository"
)

// CreateVehicleRequest - запрос на регистрацию автомобиля
type CreateVehicleRequest struct {
	Plate       string `json:"plate"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Color       string `json:"color,omitempty"`
	ServiceType string `json:"serviceType,omitempty"`
	OwnerID     string `json:"ownerId"`
}

// Service содержит бизнес-логику работы с автомобилями
// Автомобили регистрируются при первой записи на осмотр или вручную
// и никогда не удаляются
type Service struct {
	vehicleRepo repository.VehicleRepository
	logger      logger.Logger
}

// NewService создает новый экземпляр VehicleService
func NewService(vehicleRepo repository.VehicleRepository, log logger.Logger) *Service {
	return &Service{
		vehicleRepo: vehicleRepo,
		logger:      log,
	}
}

// AddVehicle регистрирует новый автомобиль
// Номер - бизнес-ключ, но повторная регистрация того же номера
// не запрещается: так работала исходная система
func (s *Service) AddVehicle(ctx context.Context, req *CreateVehicleRequest) (*domain.Vehicle, error) {
	vehicle := &domain.Vehicle{
		Plate:       domain.NormalizePlate(req.Plate),
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		Color:       req.Color,
		ServiceType: req.ServiceType,
		OwnerID:     req.OwnerID,
	}
	if err := vehicle.Validate(); err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.logger.Info("Vehicle registered", map[string]interface{}{
		"vehicle_id": vehicle.ID,
		"plate":      vehicle.Plate,
	})

	return vehicle, nil
}

// GetByPlate возвращает первый автомобиль с указанным номером
func (s *Service) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	return s.vehicleRepo.GetByPlate(ctx, domain.NormalizePlate(plate))
}

// ListByOwner возвращает автомобили владельца
func (s *Service) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.GetByOwnerID(ctx, ownerID)
}

// List возвращает все автомобили
func (s *Service) List(ctx context.Context) ([]*domain.Vehicle, error) {
	return s.vehicleRepo.List(ctx)
}
