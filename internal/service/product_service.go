package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"carzone/internal/cache"
	apperrors "carzone/internal/errors"
	"carzone/internal/model"
	"carzone/internal/query"
	"carzone/internal/repository"
)

const productCacheTTL = 5 * time.Minute

// ProductInput carries the writable product fields. Nil pointers on update
// mean "leave unchanged".
type ProductInput struct {
	Name           *string
	Description    *string
	Price          *decimal.Decimal
	Seat           *int
	Image          *string
	FuelID         *uint
	MarkID         *uint
	TypeID         *uint
	TransmissionID *uint
}

// ProductService implements product CRUD with reference validation, filtered
// listing and a read-through cache for single lookups.
type ProductService interface {
	Create(ctx context.Context, input ProductInput) (*model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]model.Product, query.PageMeta, error)
	Update(ctx context.Context, id uint, input ProductInput) (*model.Product, error)
	Delete(ctx context.Context, id uint) error
}

type productService struct {
	productRepo      repository.ProductRepository
	fuelRepo         repository.AttributeRepository[model.Fuel]
	markRepo         repository.AttributeRepository[model.Mark]
	typeRepo         repository.AttributeRepository[model.VehicleType]
	transmissionRepo repository.AttributeRepository[model.Transmission]
	cache            *cache.Client
}

// NewProductService creates a new product service.
func NewProductService(
	productRepo repository.ProductRepository,
	fuelRepo repository.AttributeRepository[model.Fuel],
	markRepo repository.AttributeRepository[model.Mark],
	typeRepo repository.AttributeRepository[model.VehicleType],
	transmissionRepo repository.AttributeRepository[model.Transmission],
	cacheClient *cache.Client,
) ProductService {
	return &productService{
		productRepo:      productRepo,
		fuelRepo:         fuelRepo,
		markRepo:         markRepo,
		typeRepo:         typeRepo,
		transmissionRepo: transmissionRepo,
		cache:            cacheClient,
	}
}

func productCacheKey(id uint) string {
	return fmt.Sprintf("product:%d", id)
}

// checkReferences verifies that every supplied foreign key points at an
// existing row, reporting the first missing entity by name.
func (s *productService) checkReferences(ctx context.Context, input ProductInput) error {
	if input.TypeID != nil {
		if _, err := s.typeRepo.FindByID(ctx, *input.TypeID); err != nil {
			return referenceError(err, "Type")
		}
	}
	if input.MarkID != nil {
		if _, err := s.markRepo.FindByID(ctx, *input.MarkID); err != nil {
			return referenceError(err, "Mark")
		}
	}
	if input.TransmissionID != nil {
		if _, err := s.transmissionRepo.FindByID(ctx, *input.TransmissionID); err != nil {
			return referenceError(err, "Transmission")
		}
	}
	if input.FuelID != nil {
		if _, err := s.fuelRepo.FindByID(ctx, *input.FuelID); err != nil {
			return referenceError(err, "Fuel")
		}
	}
	return nil
}

func referenceError(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperrors.NotFound(entity)
	}
	return fmt.Errorf("check %s: %w", entity, err)
}

func (s *productService) Create(ctx context.Context, input ProductInput) (*model.Product, error) {
	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:           *input.Name,
		Description:    *input.Description,
		Price:          *input.Price,
		Seat:           *input.Seat,
		FuelID:         *input.FuelID,
		MarkID:         *input.MarkID,
		TypeID:         *input.TypeID,
		TransmissionID: *input.TransmissionID,
	}
	if input.Image != nil {
		product.Image = *input.Image
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}
	return s.Get(ctx, product.ID)
}

func (s *productService) Get(ctx context.Context, id uint) (*model.Product, error) {
	if data, _ := s.cache.Get(ctx, productCacheKey(id)); data != nil {
		var cached model.Product
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	if data, err := json.Marshal(product); err == nil {
		_ = s.cache.Set(ctx, productCacheKey(id), data, productCacheTTL)
	}
	return product, nil
}

func (s *productService) List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]model.Product, query.PageMeta, error) {
	total, err := s.productRepo.Count(ctx, filter)
	if err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("count products: %w", err)
	}
	products, err := s.productRepo.List(ctx, filter, page)
	if err != nil {
		return nil, query.PageMeta{}, fmt.Errorf("list products: %w", err)
	}
	return products, page.Meta(total), nil
}

func (s *productService) Update(ctx context.Context, id uint, input ProductInput) (*model.Product, error) {
	product, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("Product")
		}
		return nil, fmt.Errorf("find product: %w", err)
	}

	if err := s.checkReferences(ctx, input); err != nil {
		return nil, err
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.Seat != nil {
		product.Seat = *input.Seat
	}
	if input.Image != nil {
		product.Image = *input.Image
	}
	if input.FuelID != nil {
		product.FuelID = *input.FuelID
	}
	if input.MarkID != nil {
		product.MarkID = *input.MarkID
	}
	if input.TypeID != nil {
		product.TypeID = *input.TypeID
	}
	if input.TransmissionID != nil {
		product.TransmissionID = *input.TransmissionID
	}

	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	_ = s.cache.Delete(ctx, productCacheKey(id))
	return s.productRepo.FindByID(ctx, id)
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("Product")
		}
		return fmt.Errorf("find product: %w", err)
	}
	if err := s.productRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	_ = s.cache.Delete(ctx, productCacheKey(id))
	return nil
}
