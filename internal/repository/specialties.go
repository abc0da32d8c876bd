package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"clinic-api/internal/apperr"
	"clinic-api/internal/models"
	"clinic-api/internal/store"
)

const (
	msgSpecialtyRequired       = "Specialty name is required"
	msgSpecialtyUpdateRequired = "Name is required to update Specialty"
	msgSpecialtyExists         = "Specialty already exists"
	msgSpecialtyNotFound       = "Specialty not found"
)

// SpecialtyRepository keeps names unique without regard to case, on both
// create and rename.
type SpecialtyRepository struct {
	mu    sync.Mutex
	store store.Store[models.Specialty]
}

func NewSpecialtyRepository(s store.Store[models.Specialty]) *SpecialtyRepository {
	return &SpecialtyRepository{store: s}
}

func (r *SpecialtyRepository) ListAll(ctx context.Context) ([]models.Specialty, error) {
	return r.store.List(ctx)
}

func (r *SpecialtyRepository) Get(ctx context.Context, id int64) (models.Specialty, error) {
	return find(ctx, r.store, id, msgSpecialtyNotFound)
}

func (r *SpecialtyRepository) Create(ctx context.Context, in models.SpecialtyInput) (models.Specialty, error) {
	if err := validate.Struct(in); err != nil {
		return models.Specialty{}, apperr.Validation(msgSpecialtyRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	taken, err := r.nameTaken(ctx, in.Name, 0)
	if err != nil {
		return models.Specialty{}, err
	}
	if taken {
		return models.Specialty{}, apperr.Conflict(msgSpecialtyExists)
	}

	specialty := models.Specialty{Name: in.Name}
	if err := r.store.Insert(ctx, &specialty); err != nil {
		return models.Specialty{}, fmt.Errorf("create specialty: %w", err)
	}
	return specialty, nil
}

func (r *SpecialtyRepository) Update(ctx context.Context, id int64, in models.SpecialtyInput) (models.Specialty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	specialty, err := find(ctx, r.store, id, msgSpecialtyNotFound)
	if err != nil {
		return models.Specialty{}, err
	}
	if err := validate.Struct(in); err != nil {
		return models.Specialty{}, apperr.Validation(msgSpecialtyUpdateRequired)
	}

	taken, err := r.nameTaken(ctx, in.Name, id)
	if err != nil {
		return models.Specialty{}, err
	}
	if taken {
		return models.Specialty{}, apperr.Conflict(msgSpecialtyExists)
	}

	specialty.Name = in.Name
	if err := r.store.Update(ctx, &specialty); err != nil {
		return models.Specialty{}, fmt.Errorf("update specialty %d: %w", id, err)
	}
	return specialty, nil
}

func (r *SpecialtyRepository) Remove(ctx context.Context, id int64) (models.Specialty, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return remove(ctx, r.store, id, msgSpecialtyNotFound)
}

func (r *SpecialtyRepository) nameTaken(ctx context.Context, name string, exceptID int64) (bool, error) {
	specialties, err := r.store.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list specialties: %w", err)
	}
	for _, s := range specialties {
		if s.ID != exceptID && strings.EqualFold(s.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

func (r *SpecialtyRepository) NotFound() error { return apperr.NotFound(msgSpecialtyNotFound) }
