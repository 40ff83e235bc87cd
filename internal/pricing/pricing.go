// Package pricing computes order totals. Every surface that shows money
// goes through Compute so the cart page, the drawer and the checkout
// summary always agree on the same numbers.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/rachell444/nova-ecommerce/internal/cart"
)

var (
	// flat shipping fee, charged only when the cart is non-empty
	flatShipping = decimal.NewFromInt(10)

	// flat 10% tax, no jurisdiction logic
	taxRate = decimal.New(1, -1)
)

// Breakdown is computed, never stored. Total = Subtotal + Shipping + Tax
// by construction. Values keep full precision; rounding happens only at
// the display boundary (see Rounded and FormatPrice).
type Breakdown struct {
	Subtotal decimal.Decimal `json:"subtotal"`
	Shipping decimal.Decimal `json:"shipping"`
	Tax      decimal.Decimal `json:"tax"`
	Total    decimal.Decimal `json:"total"`
}

// Compute derives the breakdown from a cart snapshot. It is pure: the
// same items always produce the same breakdown, and an empty cart yields
// all zeros.
func Compute(items []cart.LineItem) Breakdown {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	shipping := decimal.Zero
	if subtotal.IsPositive() {
		shipping = flatShipping
	}

	tax := subtotal.Mul(taxRate)

	return Breakdown{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
	}
}

// Rounded returns a copy with every field rounded to cents for display.
func (b Breakdown) Rounded() Breakdown {
	return Breakdown{
		Subtotal: b.Subtotal.Round(2),
		Shipping: b.Shipping.Round(2),
		Tax:      b.Tax.Round(2),
		Total:    b.Total.Round(2),
	}
}
