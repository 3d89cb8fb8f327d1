package domain

import (
	"regexp"
	"strings"
	"time"
)

// Колумбийский формат номерного знака: 3 заглавные буквы + 3 цифры (AAA123)
var plateRegexp = regexp.MustCompile(`^[A-Z]{3}[0-9]{3}$`)

// Vehicle - автомобиль, проходящий технический осмотр
// Номерной знак служит бизнес-ключом, но уникальность не навязывается:
// поиск по номеру возвращает первую зарегистрированную запись
type Vehicle struct {
	ID          string `json:"id"`
	Plate       string `json:"plate"`
	Brand       string `json:"brand"`
	Model       string `json:"model"`
	Year        int    `json:"year"`
	Color       string `json:"color,omitempty"`
	ServiceType string `json:"serviceType,omitempty"`
	OwnerID     string `json:"ownerId"`
}

// NormalizePlate нормализует номер автомобиля (убирает пробелы, приводит к верхнему регистру)
func NormalizePlate(plate string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(plate), " ", ""))
}

// ValidPlate проверяет номер по колумбийскому формату AAA123.
// Номер должен быть уже нормализован: строчные буквы не принимаются.
func ValidPlate(plate string) bool {
	return plateRegexp.MatchString(plate)
}

// Validate проверяет корректность данных автомобиля
func (v *Vehicle) Validate() error {
	if v.OwnerID == "" {
		return ErrInvalidVehicleData
	}
	if !ValidPlate(v.Plate) {
		return ErrInvalidPlate
	}
	if v.Brand == "" || v.Model == "" {
		return ErrInvalidVehicleData
	}
	if v.Year < 1900 || v.Year > time.Now().Year()+1 {
		return ErrInvalidVehicleData
	}
	return nil
}
