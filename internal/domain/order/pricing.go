package order

import (
	"github.com/africamarket/africa-market-api/internal/httperr"
	"github.com/shopspring/decimal"
)

// DefaultShipping is charged when the storefront sends no shipping cost
// (or a non-positive one).
var DefaultShipping = decimal.NewFromFloat(5.00)

type Line struct {
	ProductID uint
	Quantity  int
	Price     decimal.Decimal
}

type Totals struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Total    decimal.Decimal
}

// PriceLines computes subtotal, shipping and grand total for a cart.
// Pure; rounding to cents happens only when the values are rendered.
func PriceLines(lines []Line, shipping decimal.Decimal) (Totals, error) {
	if len(lines) == 0 {
		return Totals{}, httperr.ErrBusiness("empty_cart")
	}

	subtotal := decimal.Zero
	for _, l := range lines {
		if l.Quantity < 1 || l.Price.Sign() <= 0 {
			return Totals{}, httperr.ErrBusiness("invalid_item")
		}
		subtotal = subtotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}

	if shipping.Sign() <= 0 {
		shipping = DefaultShipping
	}

	return Totals{
		Subtotal: subtotal,
		Shipping: shipping,
		Total:    subtotal.Add(shipping),
	}, nil
}
