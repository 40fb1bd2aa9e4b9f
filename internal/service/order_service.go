package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nikolayk812/shopapi/internal/domain"
	"github.com/nikolayk812/shopapi/internal/port"
	"github.com/nikolayk812/shopapi/internal/repository"
	"github.com/shopspring/decimal"
)

type CreateOrderInput struct {
	CustomerEmail   string
	StripeSessionID *string
	Items           []CreateOrderItem
}

type CreateOrderItem struct {
	ProductID int64
	Quantity  int32
}

type OrderService struct {
	orders   port.OrderRepository
	products port.ProductRepository
}

func NewOrder(orders port.OrderRepository, products port.ProductRepository) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
	}
}

func (s *OrderService) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		return order, fmt.Errorf("orders.GetOrder: %w", err)
	}

	return order, nil
}

// CreateOrder snapshots product names and effective prices into line items
// and persists the order atomically. An unknown product fails the whole
// operation, nothing is persisted.
func (s *OrderService) CreateOrder(ctx context.Context, input CreateOrderInput) (domain.Order, error) {
	var o domain.Order

	if len(input.Items) == 0 {
		return o, ErrEmptyCart
	}

	var (
		items []domain.OrderItem
		total = decimal.Zero
	)

	for _, item := range input.Items {
		product, err := s.products.GetProduct(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return o, ProductNotFoundError{ProductID: item.ProductID}
			}
			return o, fmt.Errorf("products.GetProduct[%d]: %w", item.ProductID, err)
		}

		price := product.EffectivePrice()

		items = append(items, domain.OrderItem{
			ProductID:       product.ID,
			ProductName:     product.Name,
			PriceAtPurchase: price,
			Quantity:        item.Quantity,
		})

		total = total.Add(price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	order := domain.Order{
		CustomerEmail:   input.CustomerEmail,
		Status:          domain.OrderStatusPending,
		TotalAmount:     total,
		Items:           items,
		StripeSessionID: input.StripeSessionID,
		CreatedDate:     time.Now().UTC(),
	}

	created, err := s.orders.InsertOrder(ctx, order)
	if err != nil {
		return o, fmt.Errorf("orders.InsertOrder: %w", err)
	}

	return created, nil
}
