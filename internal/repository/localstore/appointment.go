package localstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/frontandrew/cda/internal/domain"
	"github.com/frontandrew/cda/internal/repository"
	"github.com/frontandrew/cda/internal/storage"
)

// appointmentRepository - файловая реализация AppointmentRepository
// Само хранилище правил не навязывает: защита от двойного бронирования
// живет уровнем выше, в сценарии планирования
type appointmentRepository struct {
	mu    sync.RWMutex
	store *storage.Store
	items []*domain.Appointment
}

// NewAppointmentRepository загружает коллекцию из хранилища; при первом
// запуске используются и сразу сохраняются стартовые данные
func NewAppointmentRepository(store *storage.Store, seed []*domain.Appointment) (repository.AppointmentRepository, error) {
	r := &appointmentRepository{store: store}

	err := store.Get(storage.KeyAppointments, &r.items)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		r.items = cloneAppointments(seed)
		if err := r.persistLocked(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("load appointments: %w", err)
	}

	return r, nil
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if appointment.ID == "" {
		appointment.ID = newID()
	}

	stored := *appointment
	r.items = append(r.items, &stored)
	return r.persistLocked()
}

func (r *appointmentRepository) GetByID(ctx context.Context, id string) (*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.items {
		if a.ID == id {
			found := *a
			return &found, nil
		}
	}
	return nil, domain.ErrAppointmentNotFound
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *domain.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.items {
		if a.ID == appointment.ID {
			stored := *appointment
			r.items[i] = &stored
			return r.persistLocked()
		}
	}
	return domain.ErrAppointmentNotFound
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	filtered := make([]*domain.Appointment, 0, len(r.items))
	for _, a := range r.items {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	if len(filtered) == len(r.items) {
		return domain.ErrAppointmentNotFound
	}
	r.items = filtered
	return r.persistLocked()
}

func (r *appointmentRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Appointment
	for _, a := range r.items {
		if a.OwnerID == ownerID {
			found := *a
			result = append(result, &found)
		}
	}
	return result, nil
}

func (r *appointmentRepository) List(ctx context.Context) ([]*domain.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneAppointments(r.items), nil
}

func (r *appointmentRepository) persistLocked() error {
	if err := r.store.Put(storage.KeyAppointments, r.items); err != nil {
		return fmt.Errorf("persist appointments: %w", err)
	}
	return nil
}

func cloneAppointments(src []*domain.Appointment) []*domain.Appointment {
	out := make([]*domain.Appointment, 0, len(src))
	for _, a := range src {
		c := *a
		out = append(out, &c)
	}
	return out
}
