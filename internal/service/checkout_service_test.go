package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikolayk812/shopapi/internal/domain"
	"github.com/nikolayk812/shopapi/internal/repository"
	"github.com/nikolayk812/shopapi/internal/service"
)

const testSessionID = "cs_test_abc123"

// sessionOrderState backs the order repo mock with a single mutable order,
// so repeated reconciliation calls observe earlier transitions.
type sessionOrderState struct {
	order domain.Order
}

func newSessionOrderState(status domain.OrderStatus) *sessionOrderState {
	return &sessionOrderState{
		order: domain.Order{
			ID:              7,
			CustomerEmail:   "buyer@example.com",
			Status:          status,
			TotalAmount:     decimal.NewFromFloat(20.00),
			StripeSessionID: lo.ToPtr(testSessionID),
			CreatedDate:     time.Now().UTC(),
		},
	}
}

func (s *sessionOrderState) repo() *orderRepoMock {
	m := &orderRepoMock{}

	m.getBySessionFunc = func(_ context.Context, sessionID string) (domain.Order, error) {
		if sessionID != testSessionID {
			return domain.Order{}, repository.ErrNotFound
		}
		return s.order, nil
	}

	m.completeFunc = func(_ context.Context, orderID int64, paymentIntentID string) error {
		s.order.Status = domain.OrderStatusCompleted
		s.order.CompletedDate = lo.ToPtr(time.Now().UTC())
		s.order.StripePaymentIntentID = lo.ToPtr(paymentIntentID)
		return nil
	}

	m.failFunc = func(_ context.Context, orderID int64) error {
		s.order.Status = domain.OrderStatusFailed
		return nil
	}

	return m
}

func paidProvider(paymentIntentID string) *providerMock {
	return &providerMock{
		getSessionFunc: func(_ context.Context, sessionID string) (domain.CheckoutSession, error) {
			return domain.CheckoutSession{
				ID:              sessionID,
				PaymentStatus:   domain.PaymentStatusPaid,
				PaymentIntentID: paymentIntentID,
			}, nil
		},
	}
}

func unpaidProvider() *providerMock {
	return &providerMock{
		getSessionFunc: func(_ context.Context, sessionID string) (domain.CheckoutSession, error) {
			return domain.CheckoutSession{
				ID:            sessionID,
				PaymentStatus: domain.PaymentStatusUnpaid,
			}, nil
		},
	}
}

func TestReconcileSession_PaidCompletesPendingOrder(t *testing.T) {
	state := newSessionOrderState(domain.OrderStatusPending)
	repo := state.repo()

	svc := service.NewCheckout(repo, paidProvider("pi_123"))

	order, err := svc.ReconcileSession(t.Context(), testSessionID)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	assert.Equal(t, "pi_123", lo.FromPtr(order.StripePaymentIntentID))
	require.NotNil(t, order.CompletedDate)
	assert.Equal(t, 1, repo.completeCalls)
	assert.Equal(t, 0, repo.failCalls)
}

func TestReconcileSession_PaidTwiceIsIdempotent(t *testing.T) {
	state := newSessionOrderState(domain.OrderStatusPending)
	repo := state.repo()

	svc := service.NewCheckout(repo, paidProvider("pi_123"))

	first, err := svc.ReconcileSession(t.Context(), testSessionID)
	require.NoError(t, err)
	require.Equal(t, domain.OrderStatusCompleted, first.Status)

	second, err := svc.ReconcileSession(t.Context(), testSessionID)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusCompleted, second.Status)
	assert.Equal(t, first.CompletedDate, second.CompletedDate)
	assert.Equal(t, first.StripePaymentIntentID, second.StripePaymentIntentID)
	assert.Equal(t, 1, repo.completeCalls, "second paid call must not mutate again")
}

func TestReconcileSession_UnpaidFailsPendingOrder(t *testing.T) {
	state := newSessionOrderState(domain.OrderStatusPending)
	repo := state.repo()

	svc := service.NewCheckout(repo, unpaidProvider())

	order, err := svc.ReconcileSession(t.Context(), testSessionID)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusFailed, order.Status)
	assert.Equal(t, 1, repo.failCalls)

	// a failed order stays failed, the guard requires pending
	again, err := svc.ReconcileSession(t.Context(), testSessionID)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusFailed, again.Status)
	assert.Equal(t, 1, repo.failCalls)
}

func TestReconcileSession_UnpaidOnCompletedOrderIsNoOp(t *testing.T) {
	state := newSessionOrderState(domain.OrderStatusCompleted)
	repo := state.repo()

	svc := service.NewCheckout(repo, unpaidProvider())

	order, err := svc.ReconcileSession(t.Context(), testSessionID)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusCompleted, order.Status)
	assert.Equal(t, 0, repo.failCalls)
	assert.Equal(t, 0, repo.completeCalls)
}

func TestReconcileSession_UnknownProviderStatusIsNoOp(t *testing.T) {
	state := newSessionOrderState(domain.OrderStatusPending)
	repo := state.repo()

	provider := &providerMock{
		getSessionFunc: func(_ context.Context, sessionID string) (domain.CheckoutSession, error) {
			return domain.CheckoutSession{
				ID:            sessionID,
				PaymentStatus: domain.ToPaymentStatus("no_payment_required"),
			}, nil
		},
	}

	svc := service.NewCheckout(repo, provider)

	order, err := svc.ReconcileSession(t.Context(), testSessionID)
	require.NoError(t, err)

	assert.Equal(t, domain.OrderStatusPending, order.Status)
	assert.Equal(t, 0, repo.completeCalls)
	assert.Equal(t, 0, repo.failCalls)
}

func TestReconcileSession_ProviderError(t *testing.T) {
	provider := &providerMock{
		getSessionFunc: func(_ context.Context, _ string) (domain.CheckoutSession, error) {
			return domain.CheckoutSession{}, errors.New("no such checkout session")
		},
	}

	svc := service.NewCheckout(&orderRepoMock{}, provider)

	_, err := svc.ReconcileSession(t.Context(), "cs_test_bogus")

	var providerErr service.ProviderError
	require.ErrorAs(t, err, &providerErr)
}

func TestReconcileSession_OrderNotFound(t *testing.T) {
	svc := service.NewCheckout(&orderRepoMock{}, paidProvider("pi_123"))

	_, err := svc.ReconcileSession(t.Context(), testSessionID)
	require.ErrorIs(t, err, repository.ErrNotFound)
}
