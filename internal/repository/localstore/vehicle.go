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

// vehicleRepository - файловая реализация VehicleRepository
// Коллекция живет в памяти; каждая мутация заменяет срез и
// пересериализует коллекцию целиком в durable хранилище
type vehicleRepository struct {
	mu    sync.RWMutex
	store *storage.Store
	items []*domain.Vehicle
}

// NewVehicleRepository загружает коллекцию из хранилища; при первом запуске
// используются и сразу сохраняются стартовые данные
func NewVehicleRepository(store *storage.Store, seed []*domain.Vehicle) (repository.VehicleRepository, error) {
	r := &vehicleRepository{store: store}

	err := store.Get(storage.KeyVehicles, &r.items)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		r.items = cloneVehicles(seed)
		if err := r.persistLocked(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("load vehicles: %w", err)
	}

	return r, nil
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if vehicle.ID == "" {
		vehicle.ID = newID()
	}

	stored := *vehicle
	r.items = append(r.items, &stored)
	return r.persistLocked()
}

func (r *vehicleRepository) GetByPlate(ctx context.Context, plate string) (*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, v := range r.items {
		if v.Plate == plate {
			found := *v
			return &found, nil
		}
	}
	return nil, domain.ErrVehicleNotFound
}

func (r *vehicleRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Vehicle
	for _, v := range r.items {
		if v.OwnerID == ownerID {
			found := *v
			result = append(result, &found)
		}
	}
	return result, nil
}

func (r *vehicleRepository) List(ctx context.Context) ([]*domain.Vehicle, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneVehicles(r.items), nil
}

// persistLocked пересериализует всю коллекцию; вызывается под блокировкой
func (r *vehicleRepository) persistLocked() error {
	if err := r.store.Put(storage.KeyVehicles, r.items); err != nil {
		return fmt.Errorf("persist vehicles: %w", err)
	}
	return nil
}

func cloneVehicles(src []*domain.Vehicle) []*domain.Vehicle {
	out := make([]*domain.Vehicle, 0, len(src))
	for _, v := range src {
		c := *v
		out = append(out, &c)
	}
	return out
}
