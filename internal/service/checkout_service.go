package service

import (
	"context"
	"fmt"

	"github.com/nikolayk812/shopapi/internal/domain"
	"github.com/nikolayk812/shopapi/internal/port"
)

// CheckoutService reconciles local order status with the payment
// provider's authoritative session state.
type CheckoutService struct {
	orders   port.OrderRepository
	provider port.CheckoutProvider
}

func NewCheckout(orders port.OrderRepository, provider port.CheckoutProvider) *CheckoutService {
	return &CheckoutService{
		orders:   orders,
		provider: provider,
	}
}

// ReconcileSession fetches the provider session, applies the status
// transition policy and returns the stored order:
//
//   - paid and not yet completed: complete, record completion time and
//     the payment-intent id
//   - unpaid and still pending: fail
//   - anything else, including unknown provider states: no mutation
//
// A repeated paid call is a no-op thanks to the status guard.
func (s *CheckoutService) ReconcileSession(ctx context.Context, sessionID string) (domain.Order, error) {
	var o domain.Order

	session, err := s.provider.GetSession(ctx, sessionID)
	if err != nil {
		return o, ProviderError{Err: err}
	}

	order, err := s.orders.GetOrderBySessionID(ctx, sessionID)
	if err != nil {
		return o, fmt.Errorf("orders.GetOrderBySessionID: %w", err)
	}

	switch {
	case session.PaymentStatus == domain.PaymentStatusPaid && order.Status != domain.OrderStatusCompleted:
		if err := s.orders.CompleteOrder(ctx, order.ID, session.PaymentIntentID); err != nil {
			return o, fmt.Errorf("orders.CompleteOrder: %w", err)
		}
	case session.PaymentStatus == domain.PaymentStatusUnpaid && order.Status == domain.OrderStatusPending:
		if err := s.orders.FailOrder(ctx, order.ID); err != nil {
			return o, fmt.Errorf("orders.FailOrder: %w", err)
		}
	default:
		return order, nil
	}

	// Re-read so the caller sees the applied transition.
	updated, err := s.orders.GetOrderBySessionID(ctx, sessionID)
	if err != nil {
		return o, fmt.Errorf("orders.GetOrderBySessionID: %w", err)
	}

	return updated, nil
}
