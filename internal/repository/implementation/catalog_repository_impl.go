package implementation

import (
	"context"

	"github.com/GarvitManralDev/fitlens-backend/internal/model"
	"github.com/GarvitManralDev/fitlens-backend/internal/repository/contract"
	"github.com/GarvitManralDev/fitlens-backend/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

type ProductRepositoryImpl struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) contract.ProductRepository {
	return &ProductRepositoryImpl{db: db}
}

func (r *ProductRepositoryImpl) Create(ctx context.Context, product *model.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *ProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.Product, error) {
	var products []*model.Product
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (r *ProductRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type PriceRepositoryImpl struct {
	db *gorm.DB
}

func NewPriceRepository(db *gorm.DB) contract.PriceRepository {
	return &PriceRepositoryImpl{db: db}
}

func (r *PriceRepositoryImpl) Create(ctx context.Context, price *model.Price) error {
	return r.db.WithContext(ctx).Create(price).Error
}

func (r *PriceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.Price, error) {
	var prices []*model.Price
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&prices).Error; err != nil {
		return nil, err
	}
	return prices, nil
}
