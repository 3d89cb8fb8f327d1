package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/pkg/logger"
	"github.com/frontandrew/cda/internal/repository"
	"github.com/frontandrew/cda/internal/repository/localstore"
	"github.com/frontandrew/cda/internal/storage"
)

func newTestService(t *testing.T) (*Service, repository.AppointmentRepository) {
	t.Helper()

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	apptRepo, err := localstore.NewAppointmentRepository(store, nil)
	require.NoError(t, err)
	availRepo, err := localstore.NewAvailabilityRepository(store, nil)
	require.NoError(t, err)

	return NewService(apptRepo, availRepo, 0, logger.NewNoop()), apptRepo
}

// TestBookingLifecycle проверяет полный цикл: установка доступности,
// бронирование, отказ на занятый слот, отмена и повторное бронирование
func TestBookingLifecycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := svc.SetAvailability(ctx, "1", day, []string{"08:00", "09:00"})
	require.NoError(t, err)

	req := &CreateAppointmentRequest{
		VehiclePlate: "abc123",
		Date:         day,
		Time:         "08:00",
		TechnicianID: "1",
		OwnerID:      "5",
	}

	appt, err := svc.AddAppointment(ctx, req)
	require.NoError(t, err)
	// Номерной знак нормализуется к верхнему регистру
	assert.Equal(t, "ABC123", appt.VehiclePlate)
	assert.Equal(t, domain.StatusScheduled, appt.Status)
	assert.NotEmpty(t, appt.ID)

	// Тот же слот второй раз не бронируется
	_, err = svc.AddAppointment(ctx, req)
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)

	// Свободным остался только второй слот
	free, err := svc.AvailableSlots(ctx, "1", day)
	require.NoError(t, err)
	assert.Equal(t, []string{"09:00"}, free)

	// После отмены слот снова доступен
	cancelled := domain.StatusCancelled
	_, err = svc.UpdateAppointment(ctx, appt.ID, &UpdateAppointmentRequest{Status: &cancelled})
	require.NoError(t, err)

	_, err = svc.AddAppointment(ctx, req)
	require.NoError(t, err)
}

// TestAddAppointmentWithoutAvailability проверяет отказ, когда техник
// не предложил слотов на этот день
func TestAddAppointmentWithoutAvailability(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.AddAppointment(context.Background(), &CreateAppointmentRequest{
		VehiclePlate: "ABC123",
		Date:         time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		Time:         "08:00",
		TechnicianID: "1",
		OwnerID:      "5",
	})
	assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
}

// TestAddAppointmentValidation проверяет отказ на некорректных данных
func TestAddAppointmentValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		req     *CreateAppointmentRequest
		wantErr error
	}{
		{
			name: "Неверный номерной знак",
			req: &CreateAppointmentRequest{
				VehiclePlate: "1234AB", Date: day, Time: "08:00", TechnicianID: "1", OwnerID: "5",
			},
			wantErr: domain.ErrInvalidPlate,
		},
		{
			name: "Неверный формат слота",
			req: &CreateAppointmentRequest{
				VehiclePlate: "ABC123", Date: day, Time: "8am", TechnicianID: "1", OwnerID: "5",
			},
			wantErr: domain.ErrInvalidTimeSlot,
		},
		{
			name: "Пустой владелец",
			req: &CreateAppointmentRequest{
				VehiclePlate: "ABC123", Date: day, Time: "08:00", TechnicianID: "1",
			},
			wantErr: domain.ErrInvalidAppointmentData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddAppointment(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

// TestConcurrentBookingOneWinner проверяет, что из конкурентных попыток
// занять один слот побеждает ровно одна
func TestConcurrentBookingOneWinner(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := svc.SetAvailability(ctx, "1", day, []string{"08:00"})
	require.NoError(t, err)

	const attempts = 8
	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.AddAppointment(ctx, &CreateAppointmentRequest{
				VehiclePlate: "ABC123",
				Date:         day,
				Time:         "08:00",
				TechnicianID: "1",
				OwnerID:      "5",
			})
		}(i)
	}
	wg.Wait()

	var won int
	for _, err := range errs {
		if err == nil {
			won++
			continue
		}
		assert.ErrorIs(t, err, domain.ErrSlotUnavailable)
	}
	assert.Equal(t, 1, won)
}

// TestDirectRepositoryWriteBypassesGuard демонстрирует, что защита от
// двойного бронирования живет в сервисе, а не в хранилище: прямая запись
// в репозиторий ее обходит
func TestDirectRepositoryWriteBypassesGuard(t *testing.T) {
	svc, apptRepo := newTestService(t)
	ctx := context.Background()
	day := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	_, err := svc.SetAvailability(ctx, "1", day, []string{"08:00"})
	require.NoError(t, err)

	_, err = svc.AddAppointment(ctx, &CreateAppointmentRequest{
		VehiclePlate: "ABC123", Date: day, Time: "08:00", TechnicianID: "1", OwnerID: "5",
	})
	require.NoError(t, err)

	// Репозиторий принимает дубликат без возражений
	require.NoError(t, apptRepo.Create(ctx, &domain.Appointment{
		VehiclePlate: "XYZ789",
		Date:         day,
		Time:         "08:00",
		Status:       domain.StatusScheduled,
		TechnicianID: "1",
		OwnerID:      "6",
		CreatedAt:    time.Now(),
	}))

	all, err := svc.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

// TestUpdateAppointmentNotFound проверяет явную ошибку для чужого id
func TestUpdateAppointmentNotFound(t *testing.T) {
	svc, _ := newTestService(t)

	slot := "09:00"
	_, err := svc.UpdateAppointment(context.Background(), "ghost", &UpdateAppointmentRequest{Time: &slot})
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)

	assert.ErrorIs(t, svc.DeleteAppointment(context.Background(), "ghost"), domain.ErrAppointmentNotFound)
}

// TestGetAvailabilityEmptyDay проверяет пустой набор для дня без записи
func TestGetAvailabilityEmptyDay(t *testing.T) {
	svc, _ := newTestService(t)

	slots, err := svc.GetAvailability(context.Background(), "1", time.Now())
	require.NoError(t, err)
	assert.Empty(t, slots)
}

// TestSetAvailabilityRejectsBadSlots проверяет валидацию набора слотов
func TestSetAvailabilityRejectsBadSlots(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.SetAvailability(context.Background(), "1", time.Now(), []string{"08:00", "25:00"})
	assert.ErrorIs(t, err, domain.ErrInvalidTimeSlot)
}
