package port

import (
	"context"

	"github.com/nikolayk812/shopapi/internal/domain"
)

type OrderRepository interface {
	GetOrder(ctx context.Context, orderID int64) (domain.Order, error)
	GetOrderBySessionID(ctx context.Context, sessionID string) (domain.Order, error)

	InsertOrder(ctx context.Context, order domain.Order) (domain.Order, error)

	CompleteOrder(ctx context.Context, orderID int64, paymentIntentID string) error
	FailOrder(ctx context.Context, orderID int64) error
}
