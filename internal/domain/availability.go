package domain

import "time"

// TechnicianAvailability - набор слотов, предложенных техником на конкретный день
// Одна запись на пару (техник, календарный день); сохранение работает как upsert
type TechnicianAvailability struct {
	ID           string    `json:"id"`
	TechnicianID string    `json:"technicianId"`
	Date         time.Time `json:"date"`
	TimeSlots    []string  `json:"timeSlots"` // упорядоченный список слотов "HH:MM"
}

// HasSlot проверяет, предложен ли слот в этот день
func (a *TechnicianAvailability) HasSlot(slot string) bool {
	for _, s := range a.TimeSlots {
		if s == slot {
			return true
		}
	}
	return false
}

// Validate проверяет корректность данных доступности
func (a *TechnicianAvailability) Validate() error {
	if a.TechnicianID == "" || a.Date.IsZero() {
		return ErrInvalidAvailabilityData
	}
	for _, s := range a.TimeSlots {
		if !ValidTimeSlot(s) {
			return ErrInvalidTimeSlot
		}
	}
	return nil
}
