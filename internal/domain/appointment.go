package domain

import (
	"regexp"
	"time"
)

// AppointmentStatus представляет статус записи на осмотр
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// IsValid проверяет, что статус входит в допустимый набор
// Машины состояний нет: любой статус может смениться на любой другой
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusScheduled, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Временной слот в формате "HH:MM", 24-часовая шкала
var timeSlotRegexp = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

// ValidTimeSlot проверяет строку слота по формату "HH:MM"
func ValidTimeSlot(slot string) bool {
	return timeSlotRegexp.MatchString(slot)
}

// Appointment - запись на технический осмотр
// Ссылка на автомобиль идет по номерному знаку (строка), а не по строгому внешнему ключу
type Appointment struct {
	ID           string            `json:"id"`
	VehiclePlate string            `json:"vehiclePlate"`
	Date         time.Time         `json:"date"`
	Time         string            `json:"time"` // слот "HH:MM"
	Status       AppointmentStatus `json:"status"`
	TechnicianID string            `json:"technicianId"`
	OwnerID      string            `json:"ownerId"`
	CreatedAt    time.Time         `json:"createdAt"`
}

// IsCancelled сообщает, отменена ли запись
// Отмененные записи не занимают слот техника
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// Validate проверяет корректность данных записи
func (a *Appointment) Validate() error {
	if !ValidPlate(a.VehiclePlate) {
		return ErrInvalidPlate
	}
	if a.Date.IsZero() {
		return ErrInvalidAppointmentData
	}
	if !ValidTimeSlot(a.Time) {
		return ErrInvalidTimeSlot
	}
	if !a.Status.IsValid() {
		return ErrInvalidStatus
	}
	if a.TechnicianID == "" || a.OwnerID == "" {
		return ErrInvalidAppointmentData
	}
	return nil
}

// DayKey возвращает календарный день в виде строки "2006-01-02" (UTC)
// Сравнение дат доступности и записей идет по этому ключу,
// а не по полному timestamp
func DayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// SameDay проверяет, что два момента времени приходятся на один календарный день
func SameDay(a, b time.Time) bool {
	return DayKey(a) == DayKey(b)
}
