package brand

import "fmt"

// RefundPolicy is the brand-configured refund terms consumed by the bill
// lifecycle: how many days after approval a claim stays valid, what share of
// the bill amount is refundable, and the absolute cap.
type RefundPolicy struct {
	refundDays            int
	refundPercentage      int
	upToRefundAmountCents int64
}

// NewRefundPolicy validates and builds a refund policy. Percentage is a
// whole number in [0, 100]; days and cap must be non-negative.
func NewRefundPolicy(refundDays, refundPercentage int, upToRefundAmountCents int64) (RefundPolicy, error) {
	if refundDays < 0 {
		return RefundPolicy{}, fmt.Errorf("%w: refund days must be non-negative", ErrInvalidRefundPolicy)
	}
	if refundPercentage < 0 || refundPercentage > 100 {
		return RefundPolicy{}, fmt.Errorf("%w: refund percentage must be within [0, 100]", ErrInvalidRefundPolicy)
	}
	if upToRefundAmountCents < 0 {
		return RefundPolicy{}, fmt.Errorf("%w: refund cap must be non-negative", ErrInvalidRefundPolicy)
	}
	return RefundPolicy{
		refundDays:            refundDays,
		refundPercentage:      refundPercentage,
		upToRefundAmountCents: upToRefundAmountCents,
	}, nil
}

func (p RefundPolicy) RefundDays() int              { return p.refundDays }
func (p RefundPolicy) RefundPercentage() int        { return p.refundPercentage }
func (p RefundPolicy) UpToRefundAmountCents() int64 { return p.upToRefundAmountCents }

// AllowsRefunds reports whether the policy grants any refund at all.
func (p RefundPolicy) AllowsRefunds() bool {
	return p.refundPercentage > 0 && p.upToRefundAmountCents > 0
}

// MaxRefundCents computes the refundable amount for a bill: the policy
// percentage of the bill amount, capped at the policy's absolute limit.
func (p RefundPolicy) MaxRefundCents(billAmountCents int64) int64 {
	allowed := billAmountCents * int64(p.refundPercentage) / 100
	if allowed > p.upToRefundAmountCents {
		return p.upToRefundAmountCents
	}
	return allowed
}
