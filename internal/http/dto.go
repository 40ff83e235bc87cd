package http

import (
	"github.com/shopspring/decimal"

	"github.com/rachell444/nova-ecommerce/internal/cart"
	"github.com/rachell444/nova-ecommerce/internal/checkout"
	"github.com/rachell444/nova-ecommerce/internal/pricing"
)

// Money leaves this package as strings already rounded to cents; all
// arithmetic upstream runs at full precision.

type LineItemDTO struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Image     string `json:"image,omitempty"`
	Variant   string `json:"variant,omitempty"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type BreakdownDTO struct {
	Subtotal string `json:"subtotal"`
	Shipping string `json:"shipping"`
	Tax      string `json:"tax"`
	Total    string `json:"total"`
}

type CartResponseDTO struct {
	SessionID string        `json:"session_id"`
	Items     []LineItemDTO `json:"items"`
	ItemCount int           `json:"item_count"`
	Breakdown BreakdownDTO  `json:"breakdown"`
}

type OrderResponseDTO struct {
	OrderID       string        `json:"order_id"`
	Status        string        `json:"status"`
	TransactionID string        `json:"transaction_id,omitempty"`
	Currency      string        `json:"currency"`
	Items         []LineItemDTO `json:"items"`
	Breakdown     BreakdownDTO  `json:"breakdown"`
}

func toCartResponse(c *cart.Cart) CartResponseDTO {
	items := c.Snapshot()
	dto := CartResponseDTO{
		SessionID: c.SessionID,
		Items:     make([]LineItemDTO, 0, len(items)),
		Breakdown: toBreakdownDTO(pricing.Compute(items)),
	}
	for _, item := range items {
		dto.Items = append(dto.Items, toLineItemDTO(item))
		dto.ItemCount += item.Quantity
	}
	return dto
}

func toLineItemDTO(item cart.LineItem) LineItemDTO {
	lineTotal := item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
	return LineItemDTO{
		ProductID: item.ProductID,
		Name:      item.Name,
		UnitPrice: item.UnitPrice.Round(2).StringFixed(2),
		Image:     item.Image,
		Variant:   item.Variant,
		Quantity:  item.Quantity,
		LineTotal: lineTotal.Round(2).StringFixed(2),
	}
}

func toBreakdownDTO(b pricing.Breakdown) BreakdownDTO {
	r := b.Rounded()
	return BreakdownDTO{
		Subtotal: r.Subtotal.StringFixed(2),
		Shipping: r.Shipping.StringFixed(2),
		Tax:      r.Tax.StringFixed(2),
		Total:    r.Total.StringFixed(2),
	}
}

func toOrderResponse(order *checkout.Order) OrderResponseDTO {
	dto := OrderResponseDTO{
		OrderID:       order.ID,
		Status:        order.Status.String(),
		TransactionID: order.TransactionID,
		Currency:      order.Currency,
		Items:         make([]LineItemDTO, 0, len(order.Items)),
		Breakdown:     toBreakdownDTO(order.Breakdown),
	}
	for _, item := range order.Items {
		dto.Items = append(dto.Items, LineItemDTO{
			ProductID: item.ProductID,
			Name:      item.Name,
			UnitPrice: item.UnitPrice.Round(2).StringFixed(2),
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			LineTotal: item.Subtotal.Round(2).StringFixed(2),
		})
	}
	return dto
}
