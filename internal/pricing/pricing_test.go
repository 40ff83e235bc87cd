package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rachell444/nova-ecommerce/internal/cart"
)

func item(productID int64, price string, quantity int) cart.LineItem {
	return cart.LineItem{
		ProductID: productID,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  quantity,
	}
}

func assertDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.True(t, got.Equal(decimal.RequireFromString(want)),
		"want %s, got %s", want, got.String())
}

func TestCompute_EmptyCart(t *testing.T) {
	b := Compute(nil)

	assertDecimalEqual(t, "0", b.Subtotal)
	assertDecimalEqual(t, "0", b.Shipping)
	assertDecimalEqual(t, "0", b.Tax)
	assertDecimalEqual(t, "0", b.Total)
}

func TestCompute_NoShippingOnEmptyCart(t *testing.T) {
	// the flat fee applies only when there is something to ship
	b := Compute([]cart.LineItem{})
	assert.True(t, b.Shipping.IsZero())
}

func TestCompute_SingleMergedLine(t *testing.T) {
	// product at 299.99, quantity 2 (merged from two adds)
	b := Compute([]cart.LineItem{item(1, "299.99", 2)})

	assertDecimalEqual(t, "599.98", b.Subtotal)
	assertDecimalEqual(t, "10", b.Shipping)
	assertDecimalEqual(t, "59.998", b.Tax)
	assertDecimalEqual(t, "669.978", b.Total)

	rounded := b.Rounded()
	assertDecimalEqual(t, "60.00", rounded.Tax)
	assertDecimalEqual(t, "669.98", rounded.Total)
}

func TestCompute_TwoProducts(t *testing.T) {
	b := Compute([]cart.LineItem{
		item(1, "100.00", 1),
		item(2, "50.00", 1),
	})

	assertDecimalEqual(t, "150.00", b.Subtotal)
	assertDecimalEqual(t, "10", b.Shipping)
	assertDecimalEqual(t, "15.00", b.Tax)
	assertDecimalEqual(t, "175.00", b.Total)
}

func TestCompute_IsPure(t *testing.T) {
	items := []cart.LineItem{
		item(1, "299.99", 2),
		item(2, "49.99", 3),
	}

	first := Compute(items)
	second := Compute(items)

	assert.True(t, first.Subtotal.Equal(second.Subtotal))
	assert.True(t, first.Shipping.Equal(second.Shipping))
	assert.True(t, first.Tax.Equal(second.Tax))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestCompute_TotalIsSumOfParts(t *testing.T) {
	b := Compute([]cart.LineItem{
		item(1, "19.99", 7),
		item(2, "0.01", 3),
	})

	assert.True(t, b.Total.Equal(b.Subtotal.Add(b.Shipping).Add(b.Tax)))
}

func TestCompute_NoFloatDrift(t *testing.T) {
	// 0.1 * 3 is the classic binary float trap
	b := Compute([]cart.LineItem{item(1, "0.10", 3)})
	assertDecimalEqual(t, "0.30", b.Subtotal)
}

func TestFormatPrice(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "$0.00"},
		{"299.99", "$299.99"},
		{"1299.99", "$1,299.99"},
		{"1234567.5", "$1,234,567.50"},
		{"59.998", "$60.00"},
		{"-10", "-$10.00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := FormatPrice(decimal.RequireFromString(tt.amount))
			assert.Equal(t, tt.want, got)
		})
	}
}
