package repository

import (
	"context"

	"gorm.io/gorm"

	"carzone/internal/model"
	"carzone/internal/query"
)

// ProductRepository defines product persistence operations. Reads preload the
// reference relations the way the API serves them.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	Save(ctx context.Context, product *model.Product) error
	FindByID(ctx context.Context, id uint) (*model.Product, error)
	List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]model.Product, error)
	Count(ctx context.Context, filter query.FilterSpec) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) withRelations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Fuel").
		Preload("Mark").
		Preload("Type").
		Preload("Transmission")
}

func (r *productRepository) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) Save(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

func (r *productRepository) FindByID(ctx context.Context, id uint) (*model.Product, error) {
	var product model.Product
	if err := r.withRelations(ctx).Where("id = ?", id).First(&product).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) List(ctx context.Context, filter query.FilterSpec, page query.PageSpec) ([]model.Product, error) {
	var products []model.Product
	err := r.withRelations(ctx).
		Scopes(filter.Scope()).
		Order("id ASC").
		Limit(page.Limit()).
		Offset(page.Offset()).
		Find(&products).Error
	if err != nil {
		return nil, err
	}
	return products, nil
}

func (r *productRepository) Count(ctx context.Context, filter query.FilterSpec) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Scopes(filter.Scope()).
		Count(&total).Error
	return total, err
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Product{}, id).Error
}
