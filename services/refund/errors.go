package refund

import "fmt"

// ValidationError reports operator input that violates a refund rule. The
// rule is never silently clamped; the violated rule is named in the message.
type ValidationError struct {
	Rule    string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(rule, format string, args ...any) error {
	return &ValidationError{
		Rule:    rule,
		Message: fmt.Sprintf(format, args...),
	}
}

// AlreadyRefundedError signals that the booking's payment has already been
// refunded; refunded is a terminal state and no further refund is possible.
type AlreadyRefundedError struct {
	BookingID string
}

func (e *AlreadyRefundedError) Error() string {
	return fmt.Sprintf("booking %s has already been refunded", e.BookingID)
}

// InvalidStateError signals a precondition failure, such as attempting to
// refund a booking that was never paid.
type InvalidStateError struct {
	BookingID     string
	PaymentStatus string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("booking %s cannot be refunded: payment status is %q, expected \"paid\"", e.BookingID, e.PaymentStatus)
}

// GatewayError wraps a payment-gateway failure, including timeouts. The
// gateway's message is surfaced verbatim to the operator.
type GatewayError struct {
	Op  string
	Err error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("payment gateway %s failed: %v", e.Op, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// PersistenceError signals that the gateway call succeeded but recording the
// result did not. Money has moved while state has not; the incident is logged
// and audited for manual reconciliation, never retried silently.
type PersistenceError struct {
	BookingID        string
	ExternalRefundID string
	Err              error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("refund %s for booking %s succeeded at the gateway but was not recorded: %v (manual reconciliation required)",
		e.ExternalRefundID, e.BookingID, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
