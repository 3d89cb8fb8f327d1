package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/pkg/logger"
	"github.com/frontandrew/cda/internal/repository"
)

// CreateAppointmentRequest - запрос на запись на осмотр
type CreateAppointmentRequest struct {
	VehiclePlate string    `json:"vehiclePlate"`
	Date         time.Time `json:"date"`
	Time         string    `json:"time"`
	TechnicianID string    `json:"technicianId"`
	OwnerID      string    `json:"ownerId"`
}

// UpdateAppointmentRequest - частичное обновление записи
// nil поля не трогаются
type UpdateAppointmentRequest struct {
	VehiclePlate *string                   `json:"vehiclePlate,omitempty"`
	Date         *time.Time                `json:"date,omitempty"`
	Time         *string                   `json:"time,omitempty"`
	Status       *domain.AppointmentStatus `json:"status,omitempty"`
	TechnicianID *string                   `json:"technicianId,omitempty"`
}

// Service содержит бизнес-логику планирования осмотров
//
// Бронирование атомарно: проверка доступности слота и добавление записи
// идут под одной блокировкой, поэтому два конкурентных вызова не могут
// оба занять один слот - проигравший получает ErrSlotUnavailable
type Service struct {
	bookMu          sync.Mutex
	appointmentRepo repository.AppointmentRepository
	availRepo       repository.AvailabilityRepository
	delay           time.Duration
	logger          logger.Logger
}

// NewService создает новый экземпляр ScheduleService
func NewService(
	appointmentRepo repository.AppointmentRepository,
	availRepo repository.AvailabilityRepository,
	delay time.Duration,
	log logger.Logger,
) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		availRepo:       availRepo,
		delay:           delay,
		logger:          log,
	}
}

// AddAppointment создает запись на осмотр
// Слот резервируется только если он предложен техником и свободен
func (s *Service) AddAppointment(ctx context.Context, req *CreateAppointmentRequest) (*domain.Appointment, error) {
	appointment := &domain.Appointment{
		VehiclePlate: domain.NormalizePlate(req.VehiclePlate),
		Date:         req.Date,
		Time:         req.Time,
		Status:       domain.StatusScheduled,
		TechnicianID: req.TechnicianID,
		OwnerID:      req.OwnerID,
		CreatedAt:    time.Now(),
	}
	if err := appointment.Validate(); err != nil {
		return nil, err
	}

	// Имитация сетевой задержки
	if err := sleep(ctx, s.delay); err != nil {
		return nil, err
	}

	// Атомарный reserve-if-free: проверка и вставка под одной блокировкой
	s.bookMu.Lock()
	defer s.bookMu.Unlock()

	availabilities, err := s.availRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load availabilities: %w", err)
	}
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	if !IsSlotBookable(req.Date, req.Time, req.TechnicianID, availabilities, appointments) {
		s.logger.Warn("Slot is not bookable", map[string]interface{}{
			"technician_id": req.TechnicianID,
			"day":           domain.DayKey(req.Date),
			"slot":          req.Time,
		})
		return nil, domain.ErrSlotUnavailable
	}

	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	s.logger.Info("Appointment created", map[string]interface{}{
		"appointment_id": appointment.ID,
		"technician_id":  appointment.TechnicianID,
		"day":            domain.DayKey(appointment.Date),
		"slot":           appointment.Time,
	})

	return appointment, nil
}

// UpdateAppointment объединяет переданные поля с существующей записью
// Статусная машина не навязывается: любой статус сменяем на любой,
// включая повторную активацию отмененной записи
func (s *Service) UpdateAppointment(ctx context.Context, id string, req *UpdateAppointmentRequest) (*domain.Appointment, error) {
	appointment, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.VehiclePlate != nil {
		plate := domain.NormalizePlate(*req.VehiclePlate)
		if !domain.ValidPlate(plate) {
			return nil, domain.ErrInvalidPlate
		}
		appointment.VehiclePlate = plate
	}
	if req.Date != nil {
		appointment.Date = *req.Date
	}
	if req.Time != nil {
		if !domain.ValidTimeSlot(*req.Time) {
			return nil, domain.ErrInvalidTimeSlot
		}
		appointment.Time = *req.Time
	}
	if req.Status != nil {
		if !req.Status.IsValid() {
			return nil, domain.ErrInvalidStatus
		}
		appointment.Status = *req.Status
	}
	if req.TechnicianID != nil {
		appointment.TechnicianID = *req.TechnicianID
	}

	if err := s.appointmentRepo.Update(ctx, appointment); err != nil {
		return nil, fmt.Errorf("update appointment: %w", err)
	}

	s.logger.Info("Appointment updated", map[string]interface{}{
		"appointment_id": id,
		"status":         appointment.Status,
	})

	return appointment, nil
}

// DeleteAppointment удаляет запись
func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Appointment deleted", map[string]interface{}{
		"appointment_id": id,
	})
	return nil
}

// ListAppointments возвращает все записи
func (s *Service) ListAppointments(ctx context.Context) ([]*domain.Appointment, error) {
	return s.appointmentRepo.List(ctx)
}

// ListAppointmentsByOwner возвращает записи владельца
func (s *Service) ListAppointmentsByOwner(ctx context.Context, ownerID string) ([]*domain.Appointment, error) {
	return s.appointmentRepo.GetByOwnerID(ctx, ownerID)
}

// SetAvailability сохраняет набор слотов техника на календарный день
// Сохранение работает как upsert по паре (техник, день)
func (s *Service) SetAvailability(ctx context.Context, technicianID string, date time.Time, slots []string) (*domain.TechnicianAvailability, error) {
	if technicianID == "" || date.IsZero() {
		return nil, domain.ErrInvalidAvailabilityData
	}
	for _, slot := range slots {
		if !domain.ValidTimeSlot(slot) {
			return nil, domain.ErrInvalidTimeSlot
		}
	}

	availability, err := s.availRepo.Upsert(ctx, technicianID, date, slots)
	if err != nil {
		return nil, fmt.Errorf("save availability: %w", err)
	}

	s.logger.Info("Availability saved", map[string]interface{}{
		"technician_id": technicianID,
		"day":           domain.DayKey(date),
		"slots":         len(slots),
	})

	return availability, nil
}

// GetAvailability возвращает предложенные слоты техника на день
// Отсутствие записи - не ошибка: возвращается пустой набор
func (s *Service) GetAvailability(ctx context.Context, technicianID string, date time.Time) ([]string, error) {
	availability, err := s.availRepo.GetByTechnicianAndDay(ctx, technicianID, date)
	if err != nil {
		if err == domain.ErrAvailabilityNotFound {
			return []string{}, nil
		}
		return nil, err
	}
	return availability.TimeSlots, nil
}

// AvailableSlots возвращает слоты техника на день, свободные для записи
func (s *Service) AvailableSlots(ctx context.Context, technicianID string, date time.Time) ([]string, error) {
	availabilities, err := s.availRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load availabilities: %w", err)
	}
	appointments, err := s.appointmentRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	offered, err := s.GetAvailability(ctx, technicianID, date)
	if err != nil {
		return nil, err
	}

	free := make([]string, 0, len(offered))
	for _, slot := range offered {
		if IsSlotBookable(date, slot, technicianID, availabilities, appointments) {
			free = append(free, slot)
		}
	}
	return free, nil
}

// sleep ждет delay или отмены контекста
func sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
