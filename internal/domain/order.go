package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Order struct {
	ID            int64           `json:"id"`
	CustomerEmail string          `json:"customerEmail"`
	Status        OrderStatus     `json:"status"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Items         []OrderItem     `json:"items"`

	// External correlation keys assigned by the payment provider.
	StripeSessionID       *string `json:"stripeSessionId"`
	StripePaymentIntentID *string `json:"stripePaymentIntentId"`

	CreatedDate   time.Time  `json:"createdDate"`
	CompletedDate *time.Time `json:"completedDate"`
}

// OrderItem snapshots the product name and unit price at purchase time,
// so later catalog mutations never rewrite order history.
type OrderItem struct {
	ID              int64           `json:"id"`
	ProductID       int64           `json:"productId"`
	ProductName     string          `json:"productName"`
	PriceAtPurchase decimal.Decimal `json:"priceAtPurchase"`
	Quantity        int32           `json:"quantity"`
}
