package store

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// Gorm is a Store backed by a gorm connection. Insertion order is the
// auto-increment primary key order.
type Gorm[T any] struct {
	db *gorm.DB
}

func NewGorm[T any](db *gorm.DB) *Gorm[T] {
	return &Gorm[T]{db: db}
}

func (g *Gorm[T]) List(ctx context.Context) ([]T, error) {
	var rows []T
	if err := g.db.WithContext(ctx).Order("id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list: %w", err)
	}
	if rows == nil {
		rows = []T{}
	}
	return rows, nil
}

func (g *Gorm[T]) Get(ctx context.Context, id int64) (T, error) {
	var rec T
	if err := g.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rec, ErrNotFound
		}
		return rec, fmt.Errorf("get %d: %w", id, err)
	}
	return rec, nil
}

func (g *Gorm[T]) Insert(ctx context.Context, rec *T) error {
	if err := g.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func (g *Gorm[T]) Update(ctx context.Context, rec *T) error {
	res := g.db.WithContext(ctx).Model(rec).Select("*").Updates(rec)
	if res.Error != nil {
		return fmt.Errorf("update: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (g *Gorm[T]) Delete(ctx context.Context, id int64) (T, error) {
	var rec T
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rec, id).Error; err != nil {
			return err
		}
		return tx.Delete(&rec).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rec, ErrNotFound
		}
		return rec, fmt.Errorf("delete %d: %w", id, err)
	}
	return rec, nil
}
