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

// inspectionRepository - файловая реализация InspectionRepository
// Коллекция append-only: осмотры никогда не меняются после создания
type inspectionRepository struct {
	mu    sync.RWMutex
	store *storage.Store
	items []*domain.Inspection
}

// NewInspectionRepository загружает коллекцию из хранилища; при первом
// запуске используются и сразу сохраняются стартовые данные
func NewInspectionRepository(store *storage.Store, seed []*domain.Inspection) (repository.InspectionRepository, error) {
	r := &inspectionRepository{store: store}

	err := store.Get(storage.KeyInspections, &r.items)
	switch {
	case errors.Is(err, storage.ErrKeyNotFound):
		r.items = cloneInspections(seed)
		if err := r.persistLocked(); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("load inspections: %w", err)
	}

	return r, nil
}

func (r *inspectionRepository) Create(ctx context.Context, inspection *domain.Inspection) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if inspection.ID == "" {
		inspection.ID = newID()
	}

	stored := cloneInspection(inspection)
	r.items = append(r.items, stored)
	return r.persistLocked()
}

func (r *inspectionRepository) GetByPlate(ctx context.Context, plate string) ([]*domain.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Inspection
	for _, i := range r.items {
		if i.VehiclePlate == plate {
			result = append(result, cloneInspection(i))
		}
	}
	return result, nil
}

func (r *inspectionRepository) GetByDateRange(ctx context.Context, start, end time.Time) ([]*domain.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*domain.Inspection
	for _, i := range r.items {
		// Обе границы включаются
		if !i.Date.Before(start) && !i.Date.After(end) {
			result = append(result, cloneInspection(i))
		}
	}
	return result, nil
}

func (r *inspectionRepository) List(ctx context.Context) ([]*domain.Inspection, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneInspections(r.items), nil
}

func (r *inspectionRepository) persistLocked() error {
	if err := r.store.Put(storage.KeyInspections, r.items); err != nil {
		return fmt.Errorf("persist inspections: %w", err)
	}
	return nil
}

func cloneInspection(src *domain.Inspection) *domain.Inspection {
	c := *src
	c.Photos = append([]domain.Photo(nil), src.Photos...)
	return &c
}

func cloneInspections(src []*domain.Inspection) []*domain.Inspection {
	out := make([]*domain.Inspection, 0, len(src))
	for _, i := range src {
		out = append(out, cloneInspection(i))
	}
	return out
}
