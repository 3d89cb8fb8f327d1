package inspection

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/pkg/logger"
	"github.com/frontandrew/cda/internal/repository/localstore"
	"github.com/frontandrew/cda/internal/storage"
)

var certificateFormat = regexp.MustCompile(`^CDA-[0-9]{8}-[0-9]{5}$`)

func newTestService(t *testing.T) *Service {
	t.Helper()

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)
	repo, err := localstore.NewInspectionRepository(store, nil)
	require.NoError(t, err)

	return NewService(repo, logger.NewNoop())
}

func validRequest(plate string, date time.Time) *CreateInspectionRequest {
	return &CreateInspectionRequest{
		VehiclePlate:    plate,
		CustomerName:    "Juan Pérez",
		Brand:           "Toyota",
		Model:           "Corolla",
		ServiceType:     "Revisión técnico-mecánica",
		Color:           "Rojo",
		Date:            date,
		Result:          domain.ResultApproved,
		Observations:    "Vehículo en buenas condiciones",
		TechnicianID:    "1",
		AccidentHistory: "Sin historial de accidentes reportados",
	}
}

// TestAddInspection проверяет регистрацию осмотра с выдачей сертификата
func TestAddInspection(t *testing.T) {
	svc := newTestService(t)
	date := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	inspection, err := svc.AddInspection(context.Background(), validRequest("abc123", date))
	require.NoError(t, err)

	assert.NotEmpty(t, inspection.ID)
	assert.Equal(t, "ABC123", inspection.VehiclePlate)
	assert.Regexp(t, certificateFormat, inspection.CertificateNumber)
	assert.False(t, inspection.CreatedAt.IsZero())
}

// TestAddInspectionValidation проверяет отказ на некорректных данных
func TestAddInspectionValidation(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()
	date := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	badPlate := validRequest("12345", date)
	_, err := svc.AddInspection(ctx, badPlate)
	assert.ErrorIs(t, err, domain.ErrInvalidPlate)

	badResult := validRequest("ABC123", date)
	badResult.Result = "maybe"
	_, err = svc.AddInspection(ctx, badResult)
	assert.ErrorIs(t, err, domain.ErrInvalidInspectionData)

	noTechnician := validRequest("ABC123", date)
	noTechnician.TechnicianID = ""
	_, err = svc.AddInspection(ctx, noTechnician)
	assert.ErrorIs(t, err, domain.ErrInvalidInspectionData)
}

// TestGetByPlateReturnsMostRecent проверяет, что при нескольких осмотрах
// одного автомобиля возвращается последний по времени создания
func TestGetByPlateReturnsMostRecent(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	older := validRequest("ABC123", time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC))
	older.Result = domain.ResultRejected
	first, err := svc.AddInspection(ctx, older)
	require.NoError(t, err)

	// CreatedAt присваивается в момент вызова, пауза гарантирует порядок
	time.Sleep(5 * time.Millisecond)

	newer := validRequest("ABC123", time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC))
	second, err := svc.AddInspection(ctx, newer)
	require.NoError(t, err)

	got, err := svc.GetByPlate(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, second.ID, got.ID)
	assert.Equal(t, domain.ResultApproved, got.Result)

	history, err := svc.ListByPlate(ctx, "ABC123")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, second.ID, history[0].ID)
	assert.Equal(t, first.ID, history[1].ID)
}

// TestGetByPlateNotFound проверяет явную ошибку для автомобиля без осмотров
func TestGetByPlateNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetByPlate(context.Background(), "ZZZ999")
	assert.ErrorIs(t, err, domain.ErrInspectionNotFound)
}

// TestGetByDateRange проверяет выборку по диапазону с включающими границами
func TestGetByDateRange(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 12, 0, 0, 0, time.UTC)
	}
	for _, d := range []int{1, 5, 10} {
		_, err := svc.AddInspection(ctx, validRequest("ABC123", day(d)))
		require.NoError(t, err)
	}

	got, err := svc.GetByDateRange(ctx, day(1), day(5))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = svc.GetByDateRange(ctx, day(10), day(10))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// Перевернутый диапазон отклоняется
	_, err = svc.GetByDateRange(ctx, day(5), day(1))
	assert.ErrorIs(t, err, domain.ErrInvalidInspectionRange)
}
