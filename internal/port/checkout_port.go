package port

import (
	"context"

	"github.com/nikolayk812/shopapi/internal/domain"
)

// CheckoutProvider is the payment provider collaborator: a single
// "retrieve session by id" call against the hosted checkout API.
type CheckoutProvider interface {
	GetSession(ctx context.Context, sessionID string) (domain.CheckoutSession, error)
}
