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
	msgDoctorRequired   = "Name, Last Name, Specialty, Phone, Email and License Number are required"
	msgDoctorEmptyField = "Doctor fields cannot be empty"
	msgDoctorNotFound   = "Doctor not found"
	msgDuplicateLicense = "A doctor with this license number already exists"
)

// DoctorRepository keeps licenseNumber unique across all doctors.
type DoctorRepository struct {
	mu    sync.Mutex
	store store.Store[models.Doctor]
}

func NewDoctorRepository(s store.Store[models.Doctor]) *DoctorRepository {
	return &DoctorRepository{store: s}
}

func (r *DoctorRepository) ListAll(ctx context.Context) ([]models.Doctor, error) {
	return r.store.List(ctx)
}

func (r *DoctorRepository) Get(ctx context.Context, id int64) (models.Doctor, error) {
	return find(ctx, r.store, id, msgDoctorNotFound)
}

func (r *DoctorRepository) Create(ctx context.Context, in models.DoctorInput) (models.Doctor, error) {
	if err := validate.Struct(in); err != nil {
		return models.Doctor{}, apperr.Validation(msgDoctorRequired)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	taken, err := r.licenseTaken(ctx, in.LicenseNumber, 0)
	if err != nil {
		return models.Doctor{}, err
	}
	if taken {
		return models.Doctor{}, apperr.Conflict(msgDuplicateLicense)
	}

	doctor := models.Doctor{
		Name:          in.Name,
		LastName:      in.LastName,
		Specialty:     in.Specialty,
		Phone:         in.Phone,
		Email:         in.Email,
		LicenseNumber: in.LicenseNumber,
	}
	if err := r.store.Insert(ctx, &doctor); err != nil {
		return models.Doctor{}, fmt.Errorf("create doctor: %w", err)
	}
	return doctor, nil
}

func (r *DoctorRepository) Update(ctx context.Context, id int64, patch models.DoctorPatch) (models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doctor, err := find(ctx, r.store, id, msgDoctorNotFound)
	if err != nil {
		return models.Doctor{}, err
	}
	if err := validate.Struct(patch); err != nil {
		return models.Doctor{}, apperr.Validation(msgDoctorEmptyField)
	}

	if patch.LicenseNumber != nil && *patch.LicenseNumber != doctor.LicenseNumber {
		taken, err := r.licenseTaken(ctx, *patch.LicenseNumber, id)
		if err != nil {
			return models.Doctor{}, err
		}
		if taken {
			return models.Doctor{}, apperr.Conflict(msgDuplicateLicense)
		}
	}

	patch.Apply(&doctor)
	if err := r.store.Update(ctx, &doctor); err != nil {
		return models.Doctor{}, fmt.Errorf("update doctor %d: %w", id, err)
	}
	return doctor, nil
}

func (r *DoctorRepository) Remove(ctx context.Context, id int64) (models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return remove(ctx, r.store, id, msgDoctorNotFound)
}

// licenseTaken reports whether a doctor other than exceptID holds license.
func (r *DoctorRepository) licenseTaken(ctx context.Context, license string, exceptID int64) (bool, error) {
	doctors, err := r.store.List(ctx)
	if err != nil {
		return false, fmt.Errorf("list doctors: %w", err)
	}
	for _, d := range doctors {
		if d.LicenseNumber == license && d.ID != exceptID {
			return true, nil
		}
	}
	return false, nil
}

// NotFound is the error reported for ids that cannot be resolved.
func (r *DoctorRepository) NotFound() error { return apperr.NotFound(msgDoctorNotFound) }
