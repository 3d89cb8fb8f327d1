package domain

import "time"

// InspectionResult представляет результат технического осмотра
type InspectionResult string

const (
	ResultApproved InspectionResult = "approved"
	ResultRejected InspectionResult = "rejected"
	ResultPending  InspectionResult = "pending"
)

// IsValid проверяет, что результат входит в допустимый набор
func (r InspectionResult) IsValid() bool {
	switch r {
	case ResultApproved, ResultRejected, ResultPending:
		return true
	}
	return false
}

// Photo - фотография, приложенная к осмотру
type Photo struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
}

// Inspection - проведенный технический осмотр
// Создается техником один раз; номер сертификата присваивается при создании
// и никогда не перевыпускается. Запись не обновляется и не удаляется
type Inspection struct {
	ID                string           `json:"id"`
	VehiclePlate      string           `json:"vehiclePlate"`
	CustomerName      string           `json:"customerName"`
	Brand             string           `json:"brand"`
	Model             string           `json:"model"`
	ServiceType       string           `json:"serviceType"`
	Color             string           `json:"color"`
	Date              time.Time        `json:"date"`
	Result            InspectionResult `json:"result"`
	Observations      string           `json:"observations"`
	TechnicianID      string           `json:"technicianId"`
	CertificateNumber string           `json:"certificateNumber"`
	CreatedAt         time.Time        `json:"createdAt"`
	Photos            []Photo          `json:"photos"`
	AccidentHistory   string           `json:"accidentHistory"`
}

// Validate проверяет корректность данных осмотра
func (i *Inspection) Validate() error {
	if !ValidPlate(i.VehiclePlate) {
		return ErrInvalidPlate
	}
	if i.TechnicianID == "" {
		return ErrInvalidInspectionData
	}
	if !i.Result.IsValid() {
		return ErrInvalidInspectionData
	}
	if i.Date.IsZero() {
		return ErrInvalidInspectionData
	}
	return nil
}
