package inspection

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/pkg/logger"
	"github.com/frontandrew/cda/internal/repository"
)

// CreateInspectionRequest - запрос на регистрацию осмотра
type CreateInspectionRequest struct {
	VehiclePlate    string                  `json:"vehiclePlate"`
	CustomerName    string                  `json:"customerName"`
	Brand           string                  `json:"brand"`
	Model           string                  `json:"model"`
	ServiceType     string                  `json:"serviceType"`
	Color           string                  `json:"color"`
	Date            time.Time               `json:"date"`
	Result          domain.InspectionResult `json:"result"`
	Observations    string                  `json:"observations"`
	TechnicianID    string                  `json:"technicianId"`
	Photos          []domain.Photo          `json:"photos"`
	AccidentHistory string                  `json:"accidentHistory"`
}

// Service содержит бизнес-логику осмотров
type Service struct {
	inspectionRepo repository.InspectionRepository
	logger         logger.Logger
}

// NewService создает новый экземпляр InspectionService
func NewService(inspectionRepo repository.InspectionRepository, log logger.Logger) *Service {
	return &Service{
		inspectionRepo: inspectionRepo,
		logger:         log,
	}
}

// AddInspection регистрирует проведенный осмотр
// Номер сертификата присваивается здесь и никогда не перевыпускается;
// на коллизии он не проверяется
func (s *Service) AddInspection(ctx context.Context, req *CreateInspectionRequest) (*domain.Inspection, error) {
	inspection := &domain.Inspection{
		VehiclePlate:      domain.NormalizePlate(req.VehiclePlate),
		CustomerName:      req.CustomerName,
		Brand:             req.Brand,
		Model:             req.Model,
		ServiceType:       req.ServiceType,
		Color:             req.Color,
		Date:              req.Date,
		Result:            req.Result,
		Observations:      req.Observations,
		TechnicianID:      req.TechnicianID,
		CertificateNumber: domain.NewCertificateNumber(),
		CreatedAt:         time.Now(),
		Photos:            append([]domain.Photo(nil), req.Photos...),
		AccidentHistory:   req.AccidentHistory,
	}
	if err := inspection.Validate(); err != nil {
		return nil, err
	}

	if err := s.inspectionRepo.Create(ctx, inspection); err != nil {
		return nil, fmt.Errorf("create inspection: %w", err)
	}

	s.logger.Info("Inspection registered", map[string]interface{}{
		"inspection_id": inspection.ID,
		"plate":         inspection.VehiclePlate,
		"certificate":   inspection.CertificateNumber,
		"result":        inspection.Result,
	})

	return inspection, nil
}

// GetByPlate возвращает самый свежий осмотр автомобиля
// Исходная система возвращала первую попавшуюся запись, делая прошлые
// осмотры недостижимыми; здесь выбирается последний по времени создания
func (s *Service) GetByPlate(ctx context.Context, plate string) (*domain.Inspection, error) {
	all, err := s.ListByPlate(ctx, plate)
	if err != nil {
		return nil, err
	}
	if len(all) == 0 {
		return nil, domain.ErrInspectionNotFound
	}
	return all[0], nil
}

// ListByPlate возвращает все осмотры автомобиля, новые первыми
func (s *Service) ListByPlate(ctx context.Context, plate string) ([]*domain.Inspection, error) {
	all, err := s.inspectionRepo.GetByPlate(ctx, domain.NormalizePlate(plate))
	if err != nil {
		return nil, fmt.Errorf("load inspections: %w", err)
	}
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})
	return all, nil
}

// GetByDateRange возвращает осмотры внутри диапазона, границы включаются
func (s *Service) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Inspection, error) {
	if end.Before(start) {
		return nil, domain.ErrInvalidInspectionRange
	}
	return s.inspectionRepo.GetByDateRange(ctx, start, end)
}
