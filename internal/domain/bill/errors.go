package bill

import (
	"errors"
	"fmt"
)

var (
	ErrBillNotFound              = errors.New("bill not found")
	ErrInvalidStatusTransition   = errors.New("invalid status transition")
	ErrPaymentNotVerified        = errors.New("payment not verified")
	ErrPaymentAlreadyVerified    = errors.New("payment already verified")
	ErrRefundWindowExpired       = errors.New("refund window expired")
	ErrRefundNotClaimed          = errors.New("refund not claimed")
	ErrRefundAlreadyClaimed      = errors.New("refund already claimed")
	ErrRefundAmountExceedsLimit  = errors.New("refund amount exceeds policy limit")
	ErrBrandRefundAlreadySettled = errors.New("brand refund already settled")
	ErrConcurrentModification    = errors.New("bill was modified concurrently")
)

// ErrInvalidTransition wraps ErrInvalidStatusTransition with the attempted
// states for error messages.
func ErrInvalidTransition(from, to string) error {
	return fmt.Errorf("%w: from %s to %s", ErrInvalidStatusTransition, from, to)
}

// ErrRequiresStatus wraps ErrInvalidStatusTransition for operations that
// need the bill in a specific status rather than moving it to one.
func ErrRequiresStatus(op, required, actual string) error {
	return fmt.Errorf("%w: %s requires status %s, bill is %s", ErrInvalidStatusTransition, op, required, actual)
}
