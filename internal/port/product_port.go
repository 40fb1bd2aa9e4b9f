package port

import (
	"context"

	"github.com/nikolayk812/shopapi/internal/domain"
)

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (domain.Product, error)

	SearchProducts(ctx context.Context, filter domain.ProductFilter) ([]domain.Product, error)

	InsertProduct(ctx context.Context, product domain.Product) (domain.Product, error)
	UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error)

	DeleteProduct(ctx context.Context, productID int64) error
}
