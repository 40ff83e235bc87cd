package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentGateway charges the order total and returns a transaction id.
// A production system would call a real payment provider here.
type PaymentGateway interface {
	Charge(ctx context.Context, orderID string, amount decimal.Decimal) (string, error)
}

// SimulatedGateway always approves the charge after an artificial delay
// that stands in for the provider round trip. Set Delay to zero in tests;
// the wait is cancellable through the context either way.
type SimulatedGateway struct {
	Delay time.Duration
}

func (g SimulatedGateway) Charge(ctx context.Context, _ string, _ decimal.Decimal) (string, error) {
	if g.Delay > 0 {
		select {
		case <-time.After(g.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return fmt.Sprintf("TXN-%s", uuid.New().String()), nil
}
