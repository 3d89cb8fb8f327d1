package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestValidPlate проверяет валидацию колумбийского номерного знака
func TestValidPlate(t *testing.T) {
	tests := []struct {
		name  string
		plate string
		want  bool
	}{
		{name: "корректный номер", plate: "ABC123", want: true},
		{name: "слишком короткий", plate: "AB123", want: false},
		{name: "четыре буквы", plate: "ABCD123", want: false},
		{name: "строчные буквы", plate: "abc123", want: false},
		{name: "пустая строка", plate: "", want: false},
		{name: "буквы вместо цифр", plate: "ABCDEF", want: false},
		{name: "лишний хвост", plate: "ABC1234", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPlate(tt.plate))
		})
	}
}

// TestNormalizePlate проверяет нормализацию номера
func TestNormalizePlate(t *testing.T) {
	assert.Equal(t, "ABC123", NormalizePlate(" abc 123 "))
	assert.Equal(t, "XYZ789", NormalizePlate("xyz789"))
}

// TestVehicleValidate проверяет валидацию автомобиля целиком
func TestVehicleValidate(t *testing.T) {
	valid := Vehicle{Plate: "ABC123", Brand: "Toyota", Model: "Corolla", Year: 2020, OwnerID: "5"}
	assert.NoError(t, valid.Validate())

	noOwner := valid
	noOwner.OwnerID = ""
	assert.ErrorIs(t, noOwner.Validate(), ErrInvalidVehicleData)

	badPlate := valid
	badPlate.Plate = "AB123"
	assert.ErrorIs(t, badPlate.Validate(), ErrInvalidPlate)

	badYear := valid
	badYear.Year = 1850
	assert.ErrorIs(t, badYear.Validate(), ErrInvalidVehicleData)
}
