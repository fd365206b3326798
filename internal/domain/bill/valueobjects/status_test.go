package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBillStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    BillStatus
		to      BillStatus
		allowed bool
	}{
		{"upload to pending", StatusUploadContent, StatusPendingApproval, true},
		{"pending to approved", StatusPendingApproval, StatusApproved, true},
		{"pending to rejected", StatusPendingApproval, StatusRejected, true},
		{"upload straight to approved", StatusUploadContent, StatusApproved, false},
		{"upload straight to rejected", StatusUploadContent, StatusRejected, false},
		{"pending back to upload", StatusPendingApproval, StatusUploadContent, false},
		{"approved to rejected", StatusApproved, StatusRejected, false},
		{"rejected to approved", StatusRejected, StatusApproved, false},
		{"approved back to pending", StatusApproved, StatusPendingApproval, false},
		{"unknown source", BillStatus("bogus"), StatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBillStatusIsTerminal(t *testing.T) {
	assert.False(t, StatusUploadContent.IsTerminal())
	assert.False(t, StatusPendingApproval.IsTerminal())
	assert.True(t, StatusApproved.IsTerminal())
	assert.True(t, StatusRejected.IsTerminal())
}

func TestRefundStatusTransitions(t *testing.T) {
	tests := []struct {
		name    string
		from    RefundStatus
		to      RefundStatus
		allowed bool
	}{
		{"pending to processing", RefundStatusPending, RefundStatusProcessing, true},
		{"processing to success", RefundStatusProcessing, RefundStatusSuccess, true},
		{"processing to failed", RefundStatusProcessing, RefundStatusFailed, true},
		{"pending straight to success", RefundStatusPending, RefundStatusSuccess, false},
		{"pending straight to failed", RefundStatusPending, RefundStatusFailed, false},
		{"success to failed", RefundStatusSuccess, RefundStatusFailed, false},
		{"failed to processing", RefundStatusFailed, RefundStatusProcessing, false},
		{"processing back to pending", RefundStatusProcessing, RefundStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRefundStatusIsSettled(t *testing.T) {
	assert.False(t, RefundStatusPending.IsSettled())
	assert.False(t, RefundStatusProcessing.IsSettled())
	assert.True(t, RefundStatusSuccess.IsSettled())
	assert.True(t, RefundStatusFailed.IsSettled())
}

func TestNewPaymentType(t *testing.T) {
	pt, err := NewPaymentType("pay_now")
	assert.NoError(t, err)
	assert.True(t, pt.RequiresGateway())

	pt, err = NewPaymentType("upload_bill")
	assert.NoError(t, err)
	assert.False(t, pt.RequiresGateway())

	_, err = NewPaymentType("cash")
	assert.Error(t, err)
}

func TestNewContentType(t *testing.T) {
	for _, v := range []string{"post", "story", "reel"} {
		ct, err := NewContentType(v)
		assert.NoError(t, err)
		assert.Equal(t, v, ct.String())
	}

	_, err := NewContentType("livestream")
	assert.Error(t, err)
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(10000, "INR")
	b := NewMoney(2500, "INR")

	sum, err := a.Add(b)
	assert.NoError(t, err)
	assert.Equal(t, int64(12500), sum.AmountCents())

	diff, err := a.Sub(b)
	assert.NoError(t, err)
	assert.Equal(t, int64(7500), diff.AmountCents())

	_, err = a.Add(NewMoney(100, "USD"))
	assert.Error(t, err)
}

func TestMoneyPercentage(t *testing.T) {
	m := NewMoney(9999, "INR")
	assert.Equal(t, int64(2999), m.Percentage(30).AmountCents())
	assert.Equal(t, int64(0), m.Percentage(0).AmountCents())
	assert.Equal(t, int64(9999), m.Percentage(100).AmountCents())
}

func TestMoneyDefaultCurrency(t *testing.T) {
	m := NewMoney(100, "")
	assert.Equal(t, DefaultCurrency, m.Currency())
}

func TestEngagementRejectsNegativeCounters(t *testing.T) {
	_, err := NewEngagement(-1, 0, 0)
	assert.Error(t, err)
	_, err = NewEngagement(0, -1, 0)
	assert.Error(t, err)
	_, err = NewEngagement(0, 0, -1)
	assert.Error(t, err)
}

func TestEngagementMergeMonotonic(t *testing.T) {
	stored := ReconstructEngagement(100, 10, 5000)
	fresh := ReconstructEngagement(90, 12, 4800)

	merged := stored.MergeMonotonic(fresh)

	assert.Equal(t, uint64(100), merged.Likes())
	assert.Equal(t, uint64(12), merged.Comments())
	assert.Equal(t, uint64(5000), merged.Views())
}
