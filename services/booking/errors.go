package booking

import "fmt"

// IllegalTransitionError reports a status change the booking lifecycle does
// not allow, naming both the current and the requested state.
type IllegalTransitionError struct {
	BookingID string
	From      string
	To        string
}

func (e *IllegalTransitionError) Error() string {
	return fmt.Sprintf("booking %s cannot move from %q to %q", e.BookingID, e.From, e.To)
}
