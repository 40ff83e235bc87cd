package checkout

type Status string

const (
	StatusInitiated      Status = "INITIATED"
	StatusPaymentPending Status = "PAYMENT_PENDING"
	StatusCompleted      Status = "COMPLETED"
	StatusFailed         Status = "FAILED"
)

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether the status machine allows moving from
// one status to another. Failure is reachable from any non-terminal
// status.
func CanTransitionTo(from, to Status) bool {
	if from.IsTerminal() {
		return false
	}
	switch to {
	case StatusPaymentPending:
		return from == StatusInitiated
	case StatusCompleted:
		return from == StatusPaymentPending
	case StatusFailed:
		return true
	default:
		return false
	}
}
