package cart

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineItem is one purchasable configuration in a cart. Name, price and
// image are denormalized copies taken when the item is added, so later
// catalog changes never alter items already in the cart.
type LineItem struct {
	ProductID int64           `json:"product_id"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Image     string          `json:"image"`
	Variant   string          `json:"variant"` // display-only, not part of identity
	Quantity  int             `json:"quantity"`
	AddedAt   time.Time       `json:"added_at"`
}

// Cart is an ordered sequence of line items owned by one session.
// Lines are identified by product id alone; adding the same product in a
// different variant merges into the existing line.
type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []LineItem `json:"items"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func New(sessionID string) *Cart {
	now := time.Now()
	return &Cart{
		SessionID: sessionID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddItem appends the line, or merges by incrementing quantity when a
// line with the same product id already exists. A requested quantity
// below 1 is treated as 1.
func (c *Cart) AddItem(item LineItem) {
	if item.Quantity < 1 {
		item.Quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.UpdatedAt = time.Now()
			return
		}
	}
	if item.AddedAt.IsZero() {
		item.AddedAt = time.Now()
	}
	c.Items = append(c.Items, item)
	c.UpdatedAt = time.Now()
}

// UpdateQuantity sets the line's quantity, clamped to a minimum of 1.
// Removal is an explicit separate operation, never a side effect of a
// quantity edit. Unknown product ids are a no-op so a quantity edit can
// race a removal without erroring.
func (c *Cart) UpdateQuantity(productID int64, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// RemoveItem deletes the line if present; no-op if absent.
func (c *Cart) RemoveItem(productID int64) {
	for i, item := range c.Items {
		if item.ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = nil
	c.UpdatedAt = time.Now()
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Snapshot returns a copy of the line items that callers may keep
// without observing later mutations.
func (c *Cart) Snapshot() []LineItem {
	if len(c.Items) == 0 {
		return nil
	}
	items := make([]LineItem, len(c.Items))
	copy(items, c.Items)
	return items
}

// Copy returns a deep enough copy of the cart for read-only use.
func (c *Cart) Copy() *Cart {
	return &Cart{
		SessionID: c.SessionID,
		Items:     c.Snapshot(),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
