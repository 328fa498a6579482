package booking

import (
	"errors"
	"fmt"

	"salonbook/models"
)

// GuardError signals that a draft does not satisfy the prerequisites of the
// step a screen is trying to enter. It is a recoverable routing condition,
// not a state-machine failure: handlers map it to a redirect back to
// RedirectTo.
type GuardError struct {
	RedirectTo models.BookingStep
	Message    string
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("draft not ready: %s (redirect to %s)", e.Message, e.RedirectTo)
}

// ErrPaymentFailed wraps a payment processor failure. The draft is left
// intact so the customer can retry without re-entering selections.
var ErrPaymentFailed = errors.New("payment failed")

// ErrUnknownService is returned when a draft operation references a service
// id that is not in the salon's active catalog.
var ErrUnknownService = errors.New("unknown or inactive service")

// ErrUnknownStylist is returned when a draft operation references a stylist
// id that is not in the salon's active roster.
var ErrUnknownStylist = errors.New("unknown or inactive stylist")
