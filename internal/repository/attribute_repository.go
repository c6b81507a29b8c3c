package repository

import (
	"context"

	"gorm.io/gorm"

	"carzone/internal/query"
)

// AttributeRepository persists one of the vehicle reference entities. The
// type parameter is the concrete model (Fuel, Mark, ...).
type AttributeRepository[T any] interface {
	Create(ctx context.Context, entity *T) error
	Save(ctx context.Context, entity *T) error
	FindByID(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]T, error)
	Count(ctx context.Context, filter query.FilterSpec) (int64, error)
	All(ctx context.Context) ([]T, error)
	Delete(ctx context.Context, id uint) error
}

type attributeRepository[T any] struct {
	db *gorm.DB
}

// NewAttributeRepository creates a repository for one reference entity.
func NewAttributeRepository[T any](db *gorm.DB) AttributeRepository[T] {
	return &attributeRepository[T]{db: db}
}

func (r *attributeRepository[T]) Create(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Create(entity).Error
}

func (r *attributeRepository[T]) Save(ctx context.Context, entity *T) error {
	return r.db.WithContext(ctx).Save(entity).Error
}

func (r *attributeRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entity).Error; err != nil {
		return nil, err
	}
	return &entity, nil
}

// List returns one page of rows matching the filter, ordered by id so page
// boundaries stay stable across calls.
func (r *attributeRepository[T]) List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]T, error) {
	var entities []T
	err := r.db.WithContext(ctx).
		Scopes(filter.Scope()).
		Order("id ASC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&entities).Error
	if err != nil {
		return nil, err
	}
	return entities, nil
}

// Count counts the rows matching the filter without pagination.
func (r *attributeRepository[T]) Count(ctx context.Context, filter query.FilterSpec) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(new(T)).
		Scopes(filter.Scope()).
		Count(&total).Error
	return total, err
}

func (r *attributeRepository[T]) All(ctx context.Context) ([]T, error) {
	var entities []T
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

func (r *attributeRepository[T]) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(new(T), id).Error
}
