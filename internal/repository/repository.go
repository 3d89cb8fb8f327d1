package repository

import (
	"context"
	"time"

	"github.com/frontandrew/cda/internal/domain"
)

// VehicleRepository определяет методы для работы с автомобилями
type VehicleRepository interface {
	// Create добавляет новый автомобиль, присваивая идентификатор
	Create(ctx context.Context, vehicle *domain.Vehicle) error

	// GetByPlate возвращает первый автомобиль с указанным номером
	GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error)

	// GetByOwnerID возвращает все автомобили владельца
	GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Vehicle, error)

	// List возвращает все автомобили в порядке добавления
	List(ctx context.Context) ([]*domain.Vehicle, error)
}

// AppointmentRepository определяет методы для работы с записями на осмотр
type AppointmentRepository interface {
	// Create добавляет новую запись, присваивая идентификатор
	Create(ctx context.Context, appointment *domain.Appointment) error

	// GetByID возвращает запись по идентификатору
	GetByID(ctx context.Context, id string) (*domain.Appointment, error)

	// Update заменяет запись с тем же идентификатором
	Update(ctx context.Context, appointment *domain.Appointment) error

	// Delete удаляет запись
	Delete(ctx context.Context, id string) error

	// GetByOwnerID возвращает все записи владельца
	GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Appointment, error)

	// List возвращает все записи в порядке добавления
	List(ctx context.Context) ([]*domain.Appointment, error)
}

// InspectionRepository определяет методы для работы с осмотрами
// Осмотры только добавляются: ни обновления, ни удаления нет
type InspectionRepository interface {
	// Create добавляет новый осмотр, присваивая идентификатор
	Create(ctx context.Context, inspection *domain.Inspection) error

	// GetByPlate возвращает все осмотры автомобиля в порядке добавления
	GetByPlate(ctx context.Context, plate string) ([]*domain.Inspection, error)

	// GetByDateRange возвращает осмотры с датой внутри диапазона,
	// границы включаются
	GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Inspection, error)

	// List возвращает все осмотры в порядке добавления
	List(ctx context.Context) ([]*domain.Inspection, error)
}

// AvailabilityRepository определяет методы для работы с доступностью техников
type AvailabilityRepository interface {
	// Upsert сохраняет набор слотов техника на календарный день.
	// Запись на пару (техник, день) одна: повторное сохранение заменяет слоты
	Upsert(ctx context.Context, technicianID string, date time.Time, slots []string) (*domain.TechnicianAvailability, error)

	// GetByTechnicianAndDay возвращает запись доступности техника на день
	GetByTechnicianAndDay(ctx context.Context, technicianID string, date time.Time) (*domain.TechnicianAvailability, error)

	// List возвращает все записи доступности
	List(ctx context.Context) ([]*domain.TechnicianAvailability, error)
}
