package localstore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/repository"
	"github.com/frontandrew/cda/internal/storage"
)

// availabilityRepository - файловая реализация AvailabilityRepository
// Ключ записи - пара (техник, календарный день); день сравнивается
// по строке "2006-01-02", а не по полному timestamp
type availabilityRepository struct {
	mu    sync.RWMutex
	store *storage.Store
	items []*domain.TechnicianAvailability
}

// NewAvailabilityRepository загружает коллекцию из хранилища; при первом
// запуске используются и сразу сохраняются стартовые данные
func NewAvailabilityRepository(store *storage.Store, seed []*domain.TechnicianAvailability) (repository.AvailabilityRepository, error) {
	r := &availabilityRepository{store: store}

	err := store.Get(storage.KeyAvailabilities, &r.items)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		r.items = cloneAvailabilities(seed)
		if err := r.persistLocked(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("load availabilities: %w", err)
	}

	return r, nil
}

func (r *availabilityRepository) Upsert(ctx context.Context, technicianID string, date time.Time, slots []string) (*domain.TechnicianAvailability, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	day := domain.DayKey(date)
	for _, a := range r.items {
		if a.TechnicianID == technicianID && domain.DayKey(a.Date) == day {
			// Существующая запись: заменяем только набор слотов
			a.TimeSlots = append([]string(nil), slots...)
			if err := r.persistLocked(); err != nil {
				return nil, err
			}
			return cloneAvailability(a), nil
		}
	}

	created := &domain.TechnicianAvailability{
		ID:           newID(),
		TechnicianID: technicianID,
		Date:         date,
		TimeSlots:    append([]string(nil), slots...),
	}
	r.items = append(r.items, created)
	if err := r.persistLocked(); err != nil {
		return nil, err
	}
	return cloneAvailability(created), nil
}

func (r *availabilityRepository) GetByTechnicianAndDay(ctx context.Context, technicianID string, date time.Time) (*domain.TechnicianAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := domain.DayKey(date)
	for _, a := range r.items {
		if a.TechnicianID == technicianID && domain.DayKey(a.Date) == day {
			return cloneAvailability(a), nil
		}
	}
	return nil, domain.ErrAvailabilityNotFound
}

func (r *availabilityRepository) List(ctx context.Context) ([]*domain.TechnicianAvailability, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAvailabilities(r.items), nil
}

func (r *availabilityRepository) persistLocked() error {
	if err := r.store.Put(storage.KeyAvailabilities, r.items); err != nil {
		return fmt.Errorf("persist availabilities: %w", err)
	}
	return nil
}

func cloneAvailability(src *domain.TechnicianAvailability) *domain.TechnicianAvailability {
	c := *src
	c.TimeSlots = append([]string(nil), src.TimeSlots...)
	return &c
}

func cloneAvailabilities(src []*domain.TechnicianAvailability) []*domain.TechnicianAvailability {
	out := make([]*domain.TechnicianAvailability, 0, len(src))
	for _, a := range src {
		out = append(out, cloneAvailability(a))
	}
	return out
}
