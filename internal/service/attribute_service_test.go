package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "carzone/internal/errors"
	"carzone/internal/model"
	"carzone/internal/query"
)

// MockAttributeRepository is a mock implementation of
// repository.AttributeRepository for any of the reference entities.
type MockAttributeRepository[T any] struct {
	mock.Mock
}

func (m *MockAttributeRepository[T]) Create(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockAttributeRepository[T]) Save(ctx context.Context, entity *T) error {
	args := m.Called(ctx, entity)
	return args.Error(0)
}

func (m *MockAttributeRepository[T]) FindByID(ctx context.Context, id uint) (*T, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *MockAttributeRepository[T]) List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]T, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockAttributeRepository[T]) Count(ctx context.Context, filter query.FilterSpec) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockAttributeRepository[T]) All(ctx context.Context) ([]T, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *MockAttributeRepository[T]) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newFuel(id uint, name string) model.Fuel {
	fuel := model.Fuel{}
	fuel.ID = id
	fuel.Name = name
	return fuel
}

func TestAttributeService_Create(t *testing.T) {
	mockRepo := new(MockAttributeRepository[model.Fuel])
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Fuel")).Return(nil)

	svc := NewAttributeService[model.Fuel, *model.Fuel](mockRepo, "Fuel")

	fuel, err := svc.Create(context.Background(), "Diesel", "Diesel combustion engine")
	require.NoError(t, err)
	assert.Equal(t, "Diesel", fuel.Name)
	assert.Equal(t, "Diesel combustion engine", fuel.Description)

	mockRepo.AssertExpectations(t)
}

func TestAttributeService_List(t *testing.T) {
	filter := query.FilterSpec{Name: "a"}
	page := query.PageSpec{Page: 2, PerPage: 10}
	rows := []model.Fuel{newFuel(11, "Petrol"), newFuel(12, "Diesel")}

	mockRepo := new(MockAttributeRepository[model.Fuel])
	mockRepo.On("Count", mock.Anything, filter).Return(int64(40), nil)
	mockRepo.On("List", mock.Anything, filter, page).Return(rows, nil)

	svc := NewAttributeService[model.Fuel, *model.Fuel](mockRepo, "Fuel")

	got, meta, err := svc.List(context.Background(), filter, page)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
	// total reflects the filtered set, not the page
	assert.Equal(t, query.PageMeta{Total: 40, Page: 2, PerPage: 10}, meta)

	mockRepo.AssertExpectations(t)
}

func TestAttributeService_GetNotFound(t *testing.T) {
	mockRepo := new(MockAttributeRepository[model.Fuel])
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewAttributeService[model.Fuel, *model.Fuel](mockRepo, "Fuel")

	_, err := svc.Get(context.Background(), 99)
	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Fuel", notFound.Entity)
}

func TestAttributeService_Update(t *testing.T) {
	existing := newFuel(3, "Petrol")

	mockRepo := new(MockAttributeRepository[model.Fuel])
	mockRepo.On("FindByID", mock.Anything, uint(3)).Return(&existing, nil)
	mockRepo.On("Save", mock.Anything, mock.AnythingOfType("*model.Fuel")).Return(nil)

	svc := NewAttributeService[model.Fuel, *model.Fuel](mockRepo, "Fuel")

	name := "Gasoline"
	fuel, err := svc.Update(context.Background(), 3, AttributeInput{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Gasoline", fuel.Name)
	// description was not supplied and stays put
	assert.Equal(t, existing.Description, fuel.Description)

	mockRepo.AssertExpectations(t)
}

func TestAttributeService_DeleteNotFound(t *testing.T) {
	mockRepo := new(MockAttributeRepository[model.Fuel])
	mockRepo.On("FindByID", mock.Anything, uint(404)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewAttributeService[model.Fuel, *model.Fuel](mockRepo, "Fuel")

	err := svc.Delete(context.Background(), 404)
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
