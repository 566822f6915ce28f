package contract

import (
	"context"

	"github.com/GarvitManralDev/fitlens-backend/internal/model"
	"github.com/GarvitManralDev/fitlens-backend/internal/repository/specification"
)

type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.Product, error)
	Count(ctx context.Context) (int64, error)
}

type PriceRepository interface {
	Create(ctx context.Context, price *model.Price) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*model.Price, error)
}
