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

// UserInput carries the profile fields an admin may change. Nil pointers mean
// "leave unchanged". Email, password and role are not editable here.
type UserInput struct {
	Name        *string
	Address     *string
	PhoneNumber *string
	Avatar      *string
}

// UserService implements account lookups and admin user management.
type UserService interface {
	Get(ctx context.Context, id uint) (*model.User, error)
	List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]model.User, query.PageMeta, error)
	Update(ctx context.Context, id uint, input UserInput) (*model.User, error)
	Delete(ctx context.Context, id uint) error
}

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service.
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) Get(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("User")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (s *userService) List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]model.User, query.PageMeta, error) {
	total, err := s.userRepo.Count(ctx, filter)
	if err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("count users: %w", err)
	}
	users, err := s.userRepo.List(ctx, filter, page)
	if err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("list users: %w", err)
	}
	return users, page.Meta(total), nil
}

func (s *userService) Update(ctx context.Context, id uint, input UserInput) (*model.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}
	if input.Avatar != nil {
		user.Avatar = *input.Avatar
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return user, nil
}

func (s *userService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}
