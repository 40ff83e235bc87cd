package checkout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionTo(t *testing.T) {
	tests := []struct {
		name string
		from Status
		to   Status
		want bool
	}{
		{"initiated to pending", StatusInitiated, StatusPaymentPending, true},
		{"pending to completed", StatusPaymentPending, StatusCompleted, true},
		{"initiated to failed", StatusInitiated, StatusFailed, true},
		{"pending to failed", StatusPaymentPending, StatusFailed, true},
		{"initiated straight to completed", StatusInitiated, StatusCompleted, false},
		{"completed is terminal", StatusCompleted, StatusFailed, false},
		{"failed is terminal", StatusFailed, StatusPaymentPending, false},
		{"no self transition to initiated", StatusPaymentPending, StatusInitiated, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransitionTo(tt.from, tt.to))
		})
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusInitiated.IsTerminal())
	assert.False(t, StatusPaymentPending.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusFailed.IsTerminal())
}
