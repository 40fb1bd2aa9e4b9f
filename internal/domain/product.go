package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           int64            `json:"id"`
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Price        decimal.Decimal  `json:"price"`
	IsOnSale     bool             `json:"isOnSale"`
	SalePrice    *decimal.Decimal `json:"salePrice"`
	CurrentStock int32            `json:"currentStock"`
	ImageURL     string           `json:"imageUrl"`

	CreatedDate     time.Time `json:"createdDate"`
	LastUpdatedDate time.Time `json:"lastUpdatedDate"`
}

func (p Product) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}

	if p.Price.IsNegative() || p.Price.IsZero() {
		return errors.New("price must be positive")
	}

	if p.CurrentStock < 0 {
		return errors.New("currentStock cannot be negative")
	}

	if p.IsOnSale {
		if p.SalePrice == nil {
			return errors.New("salePrice is required when isOnSale is set")
		}
		if p.SalePrice.IsNegative() || p.SalePrice.IsZero() {
			return errors.New("salePrice must be positive")
		}
	}

	return nil
}

// EffectivePrice is the unit price charged for new order items:
// the sale price while the product is on sale, the list price otherwise.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.IsOnSale && p.SalePrice != nil {
		return *p.SalePrice
	}
	return p.Price
}
