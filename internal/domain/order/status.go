package order

import "github.com/africamarket/africa-market-api/internal/httperr"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivering Status = "delivering"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// Checkout-created orders enter at "delivering": payment is cash on
// delivery, so the earlier fulfilment states only apply to orders the
// back office walks through manually.
func InitialStatus() Status {
	return StatusDelivering
}

func IsTerminal(s Status) bool {
	return s == StatusDelivered || s == StatusCancelled
}

// ParseStatus validates a raw value against the status whitelist.
func ParseStatus(raw string) (Status, error) {
	switch Status(raw) {
	case StatusPending, StatusProcessing, StatusShipped,
		StatusDelivering, StatusDelivered, StatusCancelled:
		return Status(raw), nil
	}
	return "", httperr.ErrBusiness("invalid_status")
}

// CanTransition accepts any whitelisted target except a change out of a
// terminal state. Repeating the current status is always allowed so a
// replayed update is a no-op instead of an error.
func CanTransition(from, to Status) error {
	if from == to {
		return nil
	}
	if IsTerminal(from) {
		return httperr.ErrBusiness("invalid_transition")
	}
	return nil
}

// NotifyDelivery reports whether a transition should trigger the
// delivery-confirmation email. The from-check keeps repeated
// "delivered" updates from mailing the customer twice.
func NotifyDelivery(from, to Status) bool {
	return to == StatusDelivered && from != StatusDelivered
}
