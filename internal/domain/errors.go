package domain

import "errors"

// Доменные ошибки - используются во всех слоях приложения

// User / session errors
var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidUserData    = errors.New("invalid user data")
	ErrInvalidRole        = errors.New("invalid user role")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Vehicle errors
var (
	ErrVehicleNotFound    = errors.New("vehicle not found")
	ErrInvalidPlate       = errors.New("invalid license plate")
	ErrInvalidVehicleData = errors.New("invalid vehicle data")
)

// Appointment errors
var (
	ErrAppointmentNotFound    = errors.New("appointment not found")
	ErrInvalidAppointmentData = errors.New("invalid appointment data")
	ErrInvalidStatus          = errors.New("invalid appointment status")
	ErrInvalidTimeSlot        = errors.New("invalid time slot")
	ErrSlotUnavailable        = errors.New("time slot is not available")
)

// Inspection errors
var (
	ErrInspectionNotFound     = errors.New("inspection not found")
	ErrInvalidInspectionData  = errors.New("invalid inspection data")
	ErrInvalidInspectionRange = errors.New("invalid inspection date range")
)

// Availability errors
var (
	ErrAvailabilityNotFound    = errors.New("availability not found")
	ErrInvalidAvailabilityData = errors.New("invalid availability data")
)

// Authorization errors
var (
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
)
