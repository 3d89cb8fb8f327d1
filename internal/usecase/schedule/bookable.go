package schedule

import (
	"time"

	"github.com/frontandrew/cda/internal/domain"
)

// IsSlotBookable определяет, можно ли занять слот техника
// Чистая функция над срезами доступности и записей:
//  1. У техника должна быть запись доступности на этот календарный день,
//     и слот должен входить в предложенный набор
//  2. Слот не должен быть занят другой записью того же техника на тот же
//     день; отмененные записи слот не занимают
func IsSlotBookable(date time.Time, slot, technicianID string, availabilities []*domain.TechnicianAvailability, appointments []*domain.Appointment) bool {
	day := domain.DayKey(date)

	var offered *domain.TechnicianAvailability
	for _, a := range availabilities {
		if a.TechnicianID == technicianID && domain.DayKey(a.Date) == day {
			offered = a
			break
		}
	}
	if offered == nil || !offered.HasSlot(slot) {
		return false
	}

	for _, appt := range appointments {
		if appt.TechnicianID == technicianID &&
			domain.DayKey(appt.Date) == day &&
			appt.Time == slot &&
			!appt.IsCancelled() {
			return false
		}
	}

	return true
}
