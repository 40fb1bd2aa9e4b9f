package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nikolayk812/shopapi/internal/domain"
	"github.com/nikolayk812/shopapi/internal/port"
)

type CatalogService struct {
	products port.ProductRepository
}

func NewCatalog(products port.ProductRepository) *CatalogService {
	return &CatalogService{products: products}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("products.ListProducts: %w", err)
	}

	return products, nil
}

func (s *CatalogService) GetProduct(ctx context.Context, productID int64) (domain.Product, error) {
	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		return product, fmt.Errorf("products.GetProduct: %w", err)
	}

	return product, nil
}

func (s *CatalogService) CreateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var p domain.Product

	if err := product.Validate(); err != nil {
		return p, ValidationError{Err: err}
	}

	now := time.Now().UTC()
	product.CreatedDate = now
	product.LastUpdatedDate = now

	created, err := s.products.InsertProduct(ctx, product)
	if err != nil {
		return p, fmt.Errorf("products.InsertProduct: %w", err)
	}

	return created, nil
}

func (s *CatalogService) UpdateProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	var p domain.Product

	if err := product.Validate(); err != nil {
		return p, ValidationError{Err: err}
	}

	product.LastUpdatedDate = time.Now().UTC()

	updated, err := s.products.UpdateProduct(ctx, product)
	if err != nil {
		return p, fmt.Errorf("products.UpdateProduct: %w", err)
	}

	return updated, nil
}

func (s *CatalogService) DeleteProduct(ctx context.Context, productID int64) error {
	if err := s.products.DeleteProduct(ctx, productID); err != nil {
		return fmt.Errorf("products.DeleteProduct: %w", err)
	}

	return nil
}

// SearchProducts filters in the store and sorts the filtered set here.
// The stable sort keeps ties in retrieval order.
func (s *CatalogService) SearchProducts(ctx context.Context, filter domain.ProductFilter, key domain.SortKey, order domain.SortOrder) ([]domain.Product, error) {
	if err := filter.Validate(); err != nil {
		return nil, ValidationError{Err: err}
	}

	products, err := s.products.SearchProducts(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("products.SearchProducts: %w", err)
	}

	sortProducts(products, key, order)

	return products, nil
}

func sortProducts(products []domain.Product, key domain.SortKey, order domain.SortOrder) {
	var less func(a, b domain.Product) bool

	switch key {
	case domain.SortKeyPrice:
		less = func(a, b domain.Product) bool { return a.Price.LessThan(b.Price) }
	case domain.SortKeyCreated:
		less = func(a, b domain.Product) bool { return a.CreatedDate.Before(b.CreatedDate) }
	case domain.SortKeyStock:
		less = func(a, b domain.Product) bool { return a.CurrentStock < b.CurrentStock }
	default:
		less = func(a, b domain.Product) bool {
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		if order == domain.SortOrderDesc {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}
