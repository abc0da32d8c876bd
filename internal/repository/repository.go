// Package repository implements the clinic's four entity collections on top
// of a store.Store: required-field validation, uniqueness rules and partial
// updates. Each repository serializes its own writes.
package repository

import (
	"context"
	"errors"
	"fmt"

	"clinic-api/internal/apperr"
	"clinic-api/internal/store"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

func find[T any](ctx context.Context, s store.Store[T], id int64, notFound string) (T, error) {
	rec, err := s.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return rec, apperr.NotFound(notFound)
	}
	if err != nil {
		return rec, fmt.Errorf("lookup %d: %w", id, err)
	}
	return rec, nil
}

func remove[T any](ctx context.Context, s store.Store[T], id int64, notFound string) (T, error) {
	rec, err := s.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return rec, apperr.NotFound(notFound)
	}
	if err != nil {
		return rec, fmt.Errorf("remove %d: %w", id, err)
	}
	return rec, nil
}

// hasTag reports whether any field of a failed validation failed on tag.
func hasTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
