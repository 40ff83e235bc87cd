package checkout

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/rachell444/nova-ecommerce/internal/pricing"
)

// OrderItem is a cart line frozen at checkout time.
type OrderItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"product_name"`
	Variant   string          `json:"variant,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// Order is the record produced by a completed checkout.
type Order struct {
	ID            string            `json:"order_id"`
	SessionID     string            `json:"session_id"`
	Items         []OrderItem       `json:"items"`
	Breakdown     pricing.Breakdown `json:"breakdown"`
	Currency      string            `json:"currency"`
	Status        Status            `json:"status"`
	TransactionID string            `json:"transaction_id,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
}
