// Package store holds the persistence layer behind the clinic repositories.
package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned when no record has the requested id.
var ErrNotFound = errors.New("record not found")

// Keyed is implemented by pointers to every model kept in a Store.
type Keyed interface {
	PrimaryKey() int64
	AssignID(id int64)
}

// Store is the minimal CRUD surface the repositories need. List returns
// records in insertion order.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id int64) (T, error)
	Insert(ctx context.Context, rec *T) error
	Update(ctx context.Context, rec *T) error
	Delete(ctx context.Context, id int64) (T, error)
}
