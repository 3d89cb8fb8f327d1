package localstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)
	return store
}

// TestVehicleRepositorySeedOnFirstRun проверяет, что при пустом хранилище
// репозиторий поднимается со стартовыми данными и сразу сохраняет их
func TestVehicleRepositorySeedOnFirstRun(t *testing.T) {
	store := newTestStore(t)

	repo, err := NewVehicleRepository(store, SeedVehicles())
	require.NoError(t, err)

	vehicles, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, vehicles, 3)

	// Коллекция должна оказаться в durable хранилище
	var persisted []*domain.Vehicle
	require.NoError(t, store.Get(storage.KeyVehicles, &persisted))
	assert.Len(t, persisted, 3)
}

// TestVehicleRepositoryDurableOverridesSeed проверяет, что сохраненное
// состояние имеет приоритет над стартовыми данными
func TestVehicleRepositoryDurableOverridesSeed(t *testing.T) {
	store := newTestStore(t)

	first, err := NewVehicleRepository(store, SeedVehicles())
	require.NoError(t, err)

	require.NoError(t, first.Create(context.Background(), &domain.Vehicle{
		Plate: "GHI789", Brand: "Renault", Model: "Logan", Year: 2022, OwnerID: "6",
	}))

	// Новый экземпляр на том же хранилище видит добавленный автомобиль,
	// стартовые данные повторно не применяются
	second, err := NewVehicleRepository(store, SeedVehicles())
	require.NoError(t, err)

	vehicles, err := second.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, vehicles, 4)

	found, err := second.GetByPlate(context.Background(), "GHI789")
	require.NoError(t, err)
	assert.Equal(t, "Renault", found.Brand)
}

// TestAppointmentRepositoryCRUD проверяет жизненный цикл записи на осмотр
func TestAppointmentRepositoryCRUD(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	repo, err := NewAppointmentRepository(store, nil)
	require.NoError(t, err)

	appt := &domain.Appointment{
		VehiclePlate: "ABC123",
		Date:         time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		Time:         "09:00",
		Status:       domain.StatusScheduled,
		TechnicianID: "1",
		OwnerID:      "5",
		CreatedAt:    time.Now(),
	}
	require.NoError(t, repo.Create(ctx, appt))
	require.NotEmpty(t, appt.ID)

	got, err := repo.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "ABC123", got.VehiclePlate)

	got.Status = domain.StatusCancelled
	require.NoError(t, repo.Update(ctx, got))

	updated, err := repo.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelled, updated.Status)

	require.NoError(t, repo.Delete(ctx, appt.ID))
	_, err = repo.GetByID(ctx, appt.ID)
	assert.ErrorIs(t, err, domain.ErrAppointmentNotFound)

	// Операции над отсутствующими записями возвращают явную ошибку
	assert.ErrorIs(t, repo.Update(ctx, &domain.Appointment{ID: "ghost"}), domain.ErrAppointmentNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, "ghost"), domain.ErrAppointmentNotFound)
}

// TestAppointmentRepositoryPersistsAcrossReload проверяет, что записи
// переживают пересоздание репозитория на том же хранилище
func TestAppointmentRepositoryPersistsAcrossReload(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := NewAppointmentRepository(store, nil)
	require.NoError(t, err)

	appt := &domain.Appointment{
		VehiclePlate: "XYZ789",
		Date:         time.Date(2026, 9, 11, 0, 0, 0, 0, time.UTC),
		Time:         "14:30",
		Status:       domain.StatusScheduled,
		TechnicianID: "1",
		OwnerID:      "5",
	}
	require.NoError(t, first.Create(ctx, appt))

	second, err := NewAppointmentRepository(store, nil)
	require.NoError(t, err)

	got, err := second.GetByID(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, "14:30", got.Time)
	assert.True(t, appt.Date.Equal(got.Date))
}

// TestAvailabilityRepositoryUpsertCollapsesSameDay проверяет, что повторная
// установка доступности на тот же день заменяет слоты, а не плодит записи
func TestAvailabilityRepositoryUpsertCollapsesSameDay(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	repo, err := NewAvailabilityRepository(store, nil)
	require.NoError(t, err)

	day := time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)

	_, err = repo.Upsert(ctx, "1", day, []string{"08:00", "09:00"})
	require.NoError(t, err)

	// Иное время суток, тот же календарный день
	sameDayEvening := time.Date(2026, 9, 12, 18, 0, 0, 0, time.UTC)
	_, err = repo.Upsert(ctx, "1", sameDayEvening, []string{"10:00"})
	require.NoError(t, err)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	got, err := repo.GetByTechnicianAndDay(ctx, "1", day)
	require.NoError(t, err)
	assert.Equal(t, []string{"10:00"}, got.TimeSlots)
}

// TestAvailabilityRepositoryMissingDay проверяет ошибку для дня без записи
func TestAvailabilityRepositoryMissingDay(t *testing.T) {
	store := newTestStore(t)

	repo, err := NewAvailabilityRepository(store, nil)
	require.NoError(t, err)

	_, err = repo.GetByTechnicianAndDay(context.Background(), "1", time.Now())
	assert.ErrorIs(t, err, domain.ErrAvailabilityNotFound)
}

// TestInspectionRepositoryDateRange проверяет включающие границы диапазона
func TestInspectionRepositoryDateRange(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	repo, err := NewInspectionRepository(store, nil)
	require.NoError(t, err)

	day := func(d int) time.Time {
		return time.Date(2026, 9, d, 12, 0, 0, 0, time.UTC)
	}
	for _, d := range []int{1, 5, 10} {
		require.NoError(t, repo.Create(ctx, &domain.Inspection{
			VehiclePlate:      "ABC123",
			Date:              day(d),
			Result:            domain.ResultApproved,
			Observations:      "Sin novedades",
			TechnicianID:      "1",
			CertificateNumber: domain.NewCertificateNumber(),
			CreatedAt:         day(d),
		}))
	}

	got, err := repo.GetByDateRange(ctx, day(1), day(5))
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = repo.GetByDateRange(ctx, day(6), day(30))
	require.NoError(t, err)
	assert.Len(t, got, 1)

	got, err = repo.GetByDateRange(ctx, day(11), day(30))
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestNewIDMonotonic проверяет, что генератор идентификаторов не выдает
// дубликатов при плотных последовательных вызовах
func TestNewIDMonotonic(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		id := newID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate id %s", id)
		seen[id] = struct{}{}
	}
}
