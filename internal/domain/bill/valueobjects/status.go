package valueobjects

// BillStatus is the primary workflow state of a bill.
type BillStatus string

const (
	StatusUploadContent   BillStatus = "upload_content"
	StatusPendingApproval BillStatus = "pending_for_approval"
	StatusApproved        BillStatus = "approved"
	StatusRejected        BillStatus = "rejected"
)

func (s BillStatus) String() string {
	return string(s)
}

// IsTerminal reports whether the primary status can no longer change.
// Refund sub-states keep evolving under "approved".
func (s BillStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransitionTo enforces the directional lifecycle: content submission
// moves a bill forward, a brand decision ends it. Nothing moves backward.
func (s BillStatus) CanTransitionTo(target BillStatus) bool {
	transitions := map[BillStatus][]BillStatus{
		StatusUploadContent:   {StatusPendingApproval},
		StatusPendingApproval: {StatusApproved, StatusRejected},
		StatusApproved:        {},
		StatusRejected:        {},
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

var ValidStatuses = map[BillStatus]bool{
	StatusUploadContent:   true,
	StatusPendingApproval: true,
	StatusApproved:        true,
	StatusRejected:        true,
}
