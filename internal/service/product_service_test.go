package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "carzone/internal/errors"
	"carzone/internal/model"
	"carzone/internal/query"
)

// MockProductRepository is a mock implementation of repository.ProductRepository.
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Save(ctx context.Context, product *model.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]model.Product, error) {
	args := m.Called(ctx, filter, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *MockProductRepository) Count(ctx context.Context, filter query.FilterSpec) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type productMocks struct {
	product      *MockProductRepository
	fuel         *MockAttributeRepository[model.Fuel]
	mark         *MockAttributeRepository[model.Mark]
	vtype        *MockAttributeRepository[model.VehicleType]
	transmission *MockAttributeRepository[model.Transmission]
}

func newProductService(t *testing.T) (ProductService, productMocks) {
	t.Helper()
	mocks := productMocks{
		product:      new(MockProductRepository),
		fuel:         new(MockAttributeRepository[model.Fuel]),
		mark:         new(MockAttributeRepository[model.Mark]),
		vtype:        new(MockAttributeRepository[model.VehicleType]),
		transmission: new(MockAttributeRepository[model.Transmission]),
	}
	// a nil cache client behaves as an always-empty cache
	svc := NewProductService(mocks.product, mocks.fuel, mocks.mark, mocks.vtype, mocks.transmission, nil)
	return svc, mocks
}

func productInput() ProductInput {
	name := "Corolla"
	description := "Compact sedan"
	price := decimal.NewFromInt(25000)
	seat := 5
	fuelID, markID, typeID, transmissionID := uint(1), uint(2), uint(3), uint(4)
	return ProductInput{
		Name:           &name,
		Description:    &description,
		Price:          &price,
		Seat:           &seat,
		FuelID:         &fuelID,
		MarkID:         &markID,
		TypeID:         &typeID,
		TransmissionID: &transmissionID,
	}
}

func TestProductService_Create(t *testing.T) {
	svc, mocks := newProductService(t)

	mocks.vtype.On("FindByID", mock.Anything, uint(3)).Return(&model.VehicleType{}, nil)
	mocks.mark.On("FindByID", mock.Anything, uint(2)).Return(&model.Mark{}, nil)
	mocks.transmission.On("FindByID", mock.Anything, uint(4)).Return(&model.Transmission{}, nil)
	mocks.fuel.On("FindByID", mock.Anything, uint(1)).Return(&model.Fuel{}, nil)
	mocks.product.On("Create", mock.Anything, mock.AnythingOfType("*model.Product")).Return(nil)
	mocks.product.On("FindByID", mock.Anything, uint(0)).Return(&model.Product{Name: "Corolla"}, nil)

	product, err := svc.Create(context.Background(), productInput())
	require.NoError(t, err)
	assert.Equal(t, "Corolla", product.Name)

	mocks.product.AssertExpectations(t)
}

func TestProductService_CreateMissingReference(t *testing.T) {
	svc, mocks := newProductService(t)

	mocks.vtype.On("FindByID", mock.Anything, uint(3)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Create(context.Background(), productInput())

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Type", notFound.Entity)
	mocks.product.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_List(t *testing.T) {
	svc, mocks := newProductService(t)

	filter := query.FilterSpec{IDSets: map[string][]uint{"id_fuel": {1, 2}}}
	page := query.PageSpec{Page: 1, PerPage: 10}
	rows := []model.Product{{ID: 1, Name: "Corolla"}}

	mocks.product.On("Count", mock.Anything, filter).Return(int64(1), nil)
	mocks.product.On("List", mock.Anything, filter, page).Return(rows, nil)

	got, meta, err := svc.List(context.Background(), filter, page)
	require.NoError(t, err)
	assert.Equal(t, rows, got)
	assert.Equal(t, query.PageMeta{Total: 1, Page: 1, PerPage: 10}, meta)
}

func TestProductService_GetNotFound(t *testing.T) {
	svc, mocks := newProductService(t)

	mocks.product.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.Get(context.Background(), 42)

	var notFound *apperrors.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "Product", notFound.Entity)
}

func TestProductService_UpdatePartial(t *testing.T) {
	svc, mocks := newProductService(t)

	existing := &model.Product{ID: 9, Name: "Old", Seat: 5, FuelID: 1}
	mocks.product.On("FindByID", mock.Anything, uint(9)).Return(existing, nil)
	mocks.product.On("Save", mock.Anything, mock.MatchedBy(func(p *model.Product) bool {
		return p.Name == "New" && p.Seat == 5 && p.FuelID == 1
	})).Return(nil)

	name := "New"
	_, err := svc.Update(context.Background(), 9, ProductInput{Name: &name})
	require.NoError(t, err)

	mocks.product.AssertExpectations(t)
}

func TestProductService_DeleteNotFound(t *testing.T) {
	svc, mocks := newProductService(t)

	mocks.product.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)

	err := svc.Delete(context.Background(), 7)

	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	mocks.product.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
