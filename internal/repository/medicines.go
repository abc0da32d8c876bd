package repository

import (
	"context"
	"fmt"
	"sync"

	"clinic-api/internal/apperr"
	"clinic-api/internal/models"
	"clinic-api/internal/store"
)

const (
	msgMedicineRequired   = "Name, Description, Price, Quantity, Category and Laboratory are required"
	msgMedicineNegative   = "Price and Quantity must not be negative"
	msgMedicineEmptyField = "Medicine fields cannot be empty"
	msgMedicineNotFound   = "Medicine not found"
)

// MedicineRepository accepts a price or quantity of 0; only missing or
// negative values are rejected.
type MedicineRepository struct {
	mu    sync.Mutex
	store store.Store[models.Medicine]
}

func NewMedicineRepository(s store.Store[models.Medicine]) *MedicineRepository {
	return &MedicineRepository{store: s}
}

func (r *MedicineRepository) ListAll(ctx context.Context) ([]models.Medicine, error) {
	return r.store.List(ctx)
}

func (r *MedicineRepository) Get(ctx context.Context, id int64) (models.Medicine, error) {
	return find(ctx, r.store, id, msgMedicineNotFound)
}

func (r *MedicineRepository) Create(ctx context.Context, in models.MedicineInput) (models.Medicine, error) {
	if err := validate.Struct(in); err != nil {
		if hasTag(err, "gte") {
			return models.Medicine{}, apperr.Validation(msgMedicineNegative)
		}
		return models.Medicine{}, apperr.Validation(msgMedicineRequired)
	}

	medicine := models.Medicine{
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Quantity:    *in.Quantity,
		Category:    in.Category,
		Laboratory:  in.Laboratory,
	}
	if err := r.store.Insert(ctx, &medicine); err != nil {
		return models.Medicine{}, fmt.Errorf("create medicine: %w", err)
	}
	return medicine, nil
}

func (r *MedicineRepository) Update(ctx context.Context, id int64, patch models.MedicinePatch) (models.Medicine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	medicine, err := find(ctx, r.store, id, msgMedicineNotFound)
	if err != nil {
		return models.Medicine{}, err
	}
	if err := validate.Struct(patch); err != nil {
		if hasTag(err, "gte") {
			return models.Medicine{}, apperr.Validation(msgMedicineNegative)
		}
		return models.Medicine{}, apperr.Validation(msgMedicineEmptyField)
	}

	patch.Apply(&medicine)
	if err := r.store.Update(ctx, &medicine); err != nil {
		return models.Medicine{}, fmt.Errorf("update medicine %d: %w", id, err)
	}
	return medicine, nil
}

func (r *MedicineRepository) Remove(ctx context.Context, id int64) (models.Medicine, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return remove(ctx, r.store, id, msgMedicineNotFound)
}

func (r *MedicineRepository) NotFound() error { return apperr.NotFound(msgMedicineNotFound) }
