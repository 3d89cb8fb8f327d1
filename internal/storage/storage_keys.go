package storage

// Ключи durable хранилища
// Повторяют раскладку localStorage исходной системы: по одному ключу
// на коллекцию плюс отдельный ключ сессионного пользователя
const (
	KeySessionUser    = "cda_user"
	KeyVehicles       = "cda_vehicles"
	KeyAppointments   = "cda_appointments"
	KeyInspections    = "cda_inspections"
	KeyAvailabilities = "cda_availabilities"
)
