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
	msgPatientRequired   = "Name, Last Name, Email, Gender and Illness are required"
	msgPatientEmptyField = "Patient fields cannot be empty"
	msgPatientNotFound   = "Patient not found"
)

type PatientRepository struct {
	mu    sync.Mutex
	store store.Store[models.Patient]
}

func NewPatientRepository(s store.Store[models.Patient]) *PatientRepository {
	return &PatientRepository{store: s}
}

func (r *PatientRepository) ListAll(ctx context.Context) ([]models.Patient, error) {
	return r.store.List(ctx)
}

func (r *PatientRepository) Get(ctx context.Context, id int64) (models.Patient, error) {
	return find(ctx, r.store, id, msgPatientNotFound)
}

func (r *PatientRepository) Create(ctx context.Context, in models.PatientInput) (models.Patient, error) {
	if err := validate.Struct(in); err != nil {
		return models.Patient{}, apperr.Validation(msgPatientRequired)
	}

	patient := models.Patient{
		Name:     in.Name,
		LastName: in.LastName,
		Email:    in.Email,
		Gender:   in.Gender,
		Illness:  in.Illness,
	}
	if err := r.store.Insert(ctx, &patient); err != nil {
		return models.Patient{}, fmt.Errorf("create patient: %w", err)
	}
	return patient, nil
}

func (r *PatientRepository) Update(ctx context.Context, id int64, patch models.PatientPatch) (models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	patient, err := find(ctx, r.store, id, msgPatientNotFound)
	if err != nil {
		return models.Patient{}, err
	}
	if err := validate.Struct(patch); err != nil {
		return models.Patient{}, apperr.Validation(msgPatientEmptyField)
	}

	patch.Apply(&patient)
	if err := r.store.Update(ctx, &patient); err != nil {
		return models.Patient{}, fmt.Errorf("update patient %d: %w", id, err)
	}
	return patient, nil
}

func (r *PatientRepository) Remove(ctx context.Context, id int64) (models.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return remove(ctx, r.store, id, msgPatientNotFound)
}

func (r *PatientRepository) NotFound() error { return apperr.NotFound(msgPatientNotFound) }
