package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "carzone/internal/errors"
	"carzone/internal/model"
	"carzone/internal/query"
	"carzone/internal/repository"
)

// AttributeInput carries the writable fields of a reference entity. Nil
// pointers on update mean "leave unchanged".
type AttributeInput struct {
	Name        *string
	Description *string
}

// AttributeService implements CRUD plus filtered listing for one of the
// vehicle reference entities.
type AttributeService[T any] interface {
	Create(ctx context.Context, name, description string) (*T, error)
	Get(ctx context.Context, id uint) (*T, error)
	List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]T, query.PageMeta, error)
	Update(ctx context.Context, id uint, input AttributeInput) (*T, error)
	Delete(ctx context.Context, id uint) error
}

type attributeService[T any, PT model.AttributePtr[T]] struct {
	repo   repository.AttributeRepository[T]
	entity string
}

// NewAttributeService creates a service for one reference entity. The entity
// name is used in not-found messages ("Fuel not found").
func NewAttributeService[T any, PT model.AttributePtr[T]](repo repository.AttributeRepository[T], entity string) AttributeService[T] {
	return &attributeService[T, PT]{repo: repo, entity: entity}
}

func (s *attributeService[T, PT]) Create(ctx context.Context, name, description string) (*T, error) {
	entity := new(T)
	attr := PT(entity).Attr()
	attr.Name = name
	attr.Description = description
	if err := s.repo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.entity, err)
	}
	return entity, nil
}

func (s *attributeService[T, PT]) Get(ctx context.Context, id uint) (*T, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(s.entity)
		}
		return nil, fmt.Errorf("find %s: %w", s.entity, err)
	}
	return entity, nil
}

// List returns one page of the filtered set plus metadata. The total is
// counted over the filtered rows before pagination is applied.
func (s *attributeService[T, PT]) List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]T, query.PageMeta, error) {
	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("count %s: %w", s.entity, err)
	}
	entities, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("list %s: %w", s.entity, err)
	}
	return entities, page.Meta(total), nil
}

func (s *attributeService[T, PT]) Update(ctx context.Context, id uint, input AttributeInput) (*T, error) {
	entity, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	attr := PT(entity).Attr()
	if input.Name != nil {
		attr.Name = *input.Name
	}
	if input.Description != nil {
		attr.Description = *input.Description
	}
	if err := s.repo.Save(ctx, entity); err != nil {
		return nil, fmt.Errorf("update %s: %w", s.entity, err)
	}
	return entity, nil
}

func (s *attributeService[T, PT]) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete %s: %w", s.entity, err)
	}
	return nil
}
