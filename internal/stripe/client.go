// Package stripe adapts the Stripe Checkout Session API to the
// provider port, so the reconciliation service never sees the SDK.
package stripe

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/shopapi/internal/domain"
	"github.com/nikolayk812/shopapi/internal/port"
	stripego "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

type checkoutProvider struct {
	api *client.API
}

func NewCheckoutProvider(apiKey string) (port.CheckoutProvider, error) {
	if apiKey == "" {
		return nil, errors.New("apiKey is empty")
	}

	api := &client.API{}
	api.Init(apiKey, nil)

	return &checkoutProvider{api: api}, nil
}

func (p *checkoutProvider) GetSession(ctx context.Context, sessionID string) (domain.CheckoutSession, error) {
	var cs domain.CheckoutSession

	params := &stripego.CheckoutSessionParams{
		Params: stripego.Params{Context: ctx},
	}

	session, err := p.api.CheckoutSessions.Get(sessionID, params)
	if err != nil {
		return cs, fmt.Errorf("api.CheckoutSessions.Get: %w", err)
	}

	return mapSessionToDomain(session), nil
}

func mapSessionToDomain(session *stripego.CheckoutSession) domain.CheckoutSession {
	var paymentIntentID string

	// payment_intent arrives as a bare id unless expanded, the SDK
	// still populates the ID field in that case.
	if session.PaymentIntent != nil {
		paymentIntentID = session.PaymentIntent.ID
	}

	return domain.CheckoutSession{
		ID:              session.ID,
		PaymentStatus:   domain.ToPaymentStatus(string(session.PaymentStatus)),
		PaymentIntentID: paymentIntentID,
	}
}
