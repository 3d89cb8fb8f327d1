package localstore

import (
	"time"

	"github.com/frontandrew/cda/internal/domain"
)

// Стартовые данные демонстрационного центра осмотра
// Используются только когда durable хранилище пустое; даты записей
// считаются относительно момента запуска

// SeedVehicles возвращает стартовый набор автомобилей
func SeedVehicles() []*domain.Vehicle {
	return []*domain.Vehicle{
		{ID: "1", Plate: "ABC123", Brand: "Toyota", Model: "Corolla", Year: 2020, OwnerID: "5"},
		{ID: "2", Plate: "XYZ789", Brand: "Honda", Model: "Civic", Year: 2019, OwnerID: "5"},
		{ID: "3", Plate: "DEF456", Brand: "Mazda", Model: "CX-5", Year: 2021, OwnerID: "6"},
	}
}

// SeedAppointments возвращает стартовые записи на осмотр
func SeedAppointments(now time.Time) []*domain.Appointment {
	tomorrow := now.AddDate(0, 0, 1)
	nextWeek := now.AddDate(0, 0, 7)

	return []*domain.Appointment{
		{
			ID:           "1",
			VehiclePlate: "ABC123",
			Date:         tomorrow,
			Time:         "09:00",
			Status:       domain.StatusScheduled,
			TechnicianID: "1",
			OwnerID:      "5",
			CreatedAt:    now,
		},
		{
			ID:           "2",
			VehiclePlate: "XYZ789",
			Date:         nextWeek,
			Time:         "14:30",
			Status:       domain.StatusScheduled,
			TechnicianID: "1",
			OwnerID:      "5",
			CreatedAt:    now,
		},
	}
}

// SeedInspections возвращает стартовые осмотры с фотографиями
func SeedInspections(now time.Time) []*domain.Inspection {
	return []*domain.Inspection{
		{
			ID:                "1",
			VehiclePlate:      "DEF456",
			Date:              now.AddDate(0, 0, -15),
			Result:            domain.ResultApproved,
			Observations:      "Vehículo en buenas condiciones",
			TechnicianID:      "1",
			CertificateNumber: "CDA-20230701-12345",
			CreatedAt:         now.AddDate(0, 0, -15),
			Photos: []domain.Photo{
				{ID: "1", URL: "https://images.pexels.com/photos/3807329/pexels-photo-3807329.jpeg", Description: "Vista frontal"},
				{ID: "2", URL: "https://images.pexels.com/photos/3807330/pexels-photo-3807330.jpeg", Description: "Vista lateral"},
			},
			AccidentHistory: "Sin historial de accidentes reportados",
		},
		{
			ID:                "2",
			VehiclePlate:      "ABC123",
			Date:              now.AddDate(0, 0, -30),
			Result:            domain.ResultRejected,
			Observations:      "Sistema de frenos requiere mantenimiento",
			TechnicianID:      "1",
			CertificateNumber: "CDA-20230601-54321",
			CreatedAt:         now.AddDate(0, 0, -30),
			Photos: []domain.Photo{
				{ID: "3", URL: "https://images.pexels.com/photos/3807331/pexels-photo-3807331.jpeg", Description: "Sistema de frenos"},
			},
			AccidentHistory: "Colisión menor reportada en 2022, reparada",
		},
	}
}

// SeedAvailabilities возвращает стартовую доступность техников
func SeedAvailabilities(now time.Time) []*domain.TechnicianAvailability {
	slots := []string{"08:00", "09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

	return []*domain.TechnicianAvailability{
		{ID: "1", TechnicianID: "1", Date: now.AddDate(0, 0, 1), TimeSlots: append([]string(nil), slots...)},
		{ID: "2", TechnicianID: "1", Date: now.AddDate(0, 0, 7), TimeSlots: append([]string(nil), slots...)},
	}
}
