package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/rachell444/nova-ecommerce/internal/cart"
	"github.com/rachell444/nova-ecommerce/internal/pricing"
)

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrIllegalTransition = errors.New("illegal checkout status transition")
)

const currency = "USD"

// Service runs a checkout: snapshot the cart, charge the total, clear
// the cart, publish the completed order. The cart is cleared only after
// the charge succeeds; a failed charge leaves it untouched.
type Service struct {
	carts     *cart.Service
	gateway   PaymentGateway
	publisher OrderPublisher
}

func NewService(carts *cart.Service, gateway PaymentGateway, publisher OrderPublisher) *Service {
	if publisher == nil {
		publisher = NopPublisher{}
	}
	return &Service{
		carts:     carts,
		gateway:   gateway,
		publisher: publisher,
	}
}

func (s *Service) Checkout(ctx context.Context, sessionID string) (*Order, error) {
	c, err := s.carts.GetCart(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}
	if c.IsEmpty() {
		return nil, ErrEmptyCart
	}

	items := c.Snapshot()
	order := &Order{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Items:     makeOrderItems(items),
		Breakdown: pricing.Compute(items),
		Currency:  currency,
		Status:    StatusInitiated,
		CreatedAt: time.Now(),
	}

	if err := s.transition(order, StatusPaymentPending); err != nil {
		return nil, err
	}

	txnID, err := s.gateway.Charge(ctx, order.ID, order.Breakdown.Total)
	if err != nil {
		order.Status = StatusFailed
		return nil, fmt.Errorf("payment failed: %w", err)
	}
	order.TransactionID = txnID

	if err := s.transition(order, StatusCompleted); err != nil {
		return nil, err
	}

	if err := s.carts.ClearCart(ctx, sessionID); err != nil {
		// the order is already paid; log and keep going
		log.Printf("failed to clear cart for session %s: %v", sessionID, err)
	}

	if err := s.publisher.Publish(ctx, order); err != nil {
		log.Printf("failed to publish order %s: %v", order.ID, err)
	}

	return order, nil
}

func (s *Service) transition(order *Order, to Status) error {
	if !CanTransitionTo(order.Status, to) {
		return ErrIllegalTransition
	}
	order.Status = to
	return nil
}

func makeOrderItems(items []cart.LineItem) []OrderItem {
	result := make([]OrderItem, 0, len(items))
	for _, item := range items {
		result = append(result, OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Variant:   item.Variant,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity))),
		})
	}
	return result
}
