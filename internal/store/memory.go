package store

import (
	"context"
	"slices"
	"sync"
)

// Memory is a process-lifetime Store. Records are kept in a map for lookup
// and an id slice for ordering; ids come from a monotonic counter.
type Memory[T any, PT interface {
	*T
	Keyed
}] struct {
	mu    sync.RWMutex
	next  int64
	order []int64
	rows  map[int64]T
}

func NewMemory[T any, PT interface {
	*T
	Keyed
}]() *Memory[T, PT] {
	return &Memory[T, PT]{rows: make(map[int64]T)}
}

func (m *Memory[T, PT]) List(_ context.Context) ([]T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]T, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.rows[id])
	}
	return out, nil
}

func (m *Memory[T, PT]) Get(_ context.Context, id int64) (T, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.rows[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	return rec, nil
}

func (m *Memory[T, PT]) Insert(_ context.Context, rec *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.next++
	PT(rec).AssignID(m.next)
	m.rows[m.next] = *rec
	m.order = append(m.order, m.next)
	return nil
}

func (m *Memory[T, PT]) Update(_ context.Context, rec *T) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := PT(rec).PrimaryKey()
	if _, ok := m.rows[id]; !ok {
		return ErrNotFound
	}
	m.rows[id] = *rec
	return nil
}

func (m *Memory[T, PT]) Delete(_ context.Context, id int64) (T, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.rows[id]
	if !ok {
		var zero T
		return zero, ErrNotFound
	}
	delete(m.rows, id)
	if i := slices.Index(m.order, id); i >= 0 {
		m.order = slices.Delete(m.order, i, i+1)
	}
	return rec, nil
}
