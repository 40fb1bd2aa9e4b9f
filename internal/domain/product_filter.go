package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ProductFilter has AND semantics across fields, nil fields are not applied.
type ProductFilter struct {
	Name     string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	IsOnSale *bool
	InStock  *bool
}

func (f ProductFilter) Validate() error {
	if f.MinPrice != nil && f.MinPrice.IsNegative() {
		return errors.New("minPrice cannot be negative")
	}

	if f.MaxPrice != nil && f.MaxPrice.IsNegative() {
		return errors.New("maxPrice cannot be negative")
	}

	if f.MinPrice != nil && f.MaxPrice != nil {
		if f.MaxPrice.LessThan(*f.MinPrice) {
			return fmt.Errorf("maxPrice[%s] is less than minPrice[%s]", f.MaxPrice, f.MinPrice)
		}
	}

	return nil
}

type SortKey string

const (
	SortKeyName    SortKey = "name"
	SortKeyPrice   SortKey = "price"
	SortKeyCreated SortKey = "created"
	SortKeyStock   SortKey = "stock"
)

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

// ToSortKey falls back to name ordering for unrecognized values
// instead of rejecting them.
func ToSortKey(s string) SortKey {
	switch SortKey(strings.ToLower(s)) {
	case SortKeyPrice:
		return SortKeyPrice
	case SortKeyCreated:
		return SortKeyCreated
	case SortKeyStock:
		return SortKeyStock
	default:
		return SortKeyName
	}
}

// ToSortOrder falls back to ascending for anything that is not "desc".
func ToSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortOrderDesc)) {
		return SortOrderDesc
	}
	return SortOrderAsc
}
