package valueobjects

// RefundStatus is the refund sub-state machine, used independently for the
// customer-side refund and the brand-side settlement mirror.
type RefundStatus string

const (
	RefundStatusPending    RefundStatus = "pending"
	RefundStatusProcessing RefundStatus = "processing"
	RefundStatusSuccess    RefundStatus = "success"
	RefundStatusFailed     RefundStatus = "failed"
)

func (s RefundStatus) String() string {
	return string(s)
}

func (s RefundStatus) IsValid() bool {
	switch s {
	case RefundStatusPending, RefundStatusProcessing, RefundStatusSuccess, RefundStatusFailed:
		return true
	}
	return false
}

// IsSettled reports whether the refund reached a terminal outcome.
func (s RefundStatus) IsSettled() bool {
	return s == RefundStatusSuccess || s == RefundStatusFailed
}

// CanTransitionTo enforces pending -> processing -> {success, failed}.
func (s RefundStatus) CanTransitionTo(target RefundStatus) bool {
	transitions := map[RefundStatus][]RefundStatus{
		RefundStatusPending:    {RefundStatusProcessing},
		RefundStatusProcessing: {RefundStatusSuccess, RefundStatusFailed},
		RefundStatusSuccess:    {},
		RefundStatusFailed:     {},
	}

	allowed, exists := transitions[s]
	if !exists {
		return false
	}

	for _, allowedStatus := range allowed {
		if allowedStatus == target {
			return true
		}
	}
	return false
}
