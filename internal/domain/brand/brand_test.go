package brand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPolicy(t *testing.T) RefundPolicy {
	t.Helper()
	p, err := NewRefundPolicy(7, 30, 15000)
	require.NoError(t, err)
	return p
}

func newTestBrand(t *testing.T) *Brand {
	t.Helper()
	b, err := NewBrand("br_test1234", "Acme Cosmetics", "billing@acme.example", "$2a$10$hash", testPolicy(t))
	require.NoError(t, err)
	return b
}

func TestNewBrand(t *testing.T) {
	b := newTestBrand(t)

	assert.True(t, b.IsActive())
	assert.Equal(t, int64(0), b.BalanceCents())
	assert.Equal(t, "INR", b.Currency())
	assert.Equal(t, 1, b.Version())
}

func TestCreditAndDebit(t *testing.T) {
	b := newTestBrand(t)

	require.NoError(t, b.Credit(100000))
	assert.Equal(t, int64(100000), b.BalanceCents())

	require.NoError(t, b.Debit(40000))
	assert.Equal(t, int64(60000), b.BalanceCents())
}

func TestDebitRejectsOverdraft(t *testing.T) {
	b := newTestBrand(t)
	require.NoError(t, b.Credit(5000))

	err := b.Debit(5001)
	require.ErrorIs(t, err, ErrInsufficientBalance)
	assert.Equal(t, int64(5000), b.BalanceCents())
}

func TestDebitExactBalanceAllowed(t *testing.T) {
	b := newTestBrand(t)
	require.NoError(t, b.Credit(5000))

	require.NoError(t, b.Debit(5000))
	assert.Equal(t, int64(0), b.BalanceCents())
}

func TestCreditRejectsNonPositiveAmount(t *testing.T) {
	b := newTestBrand(t)

	assert.ErrorIs(t, b.Credit(0), ErrInvalidAmount)
	assert.ErrorIs(t, b.Credit(-100), ErrInvalidAmount)
	assert.ErrorIs(t, b.Debit(0), ErrInvalidAmount)
}

func TestDeactivateIsIdempotent(t *testing.T) {
	b := newTestBrand(t)

	b.Deactivate()
	assert.False(t, b.IsActive())

	versionBefore := b.Version()
	b.Deactivate()
	assert.Equal(t, versionBefore, b.Version())
}

func TestRefundPolicyValidation(t *testing.T) {
	_, err := NewRefundPolicy(-1, 30, 15000)
	assert.ErrorIs(t, err, ErrInvalidRefundPolicy)

	_, err = NewRefundPolicy(7, 101, 15000)
	assert.ErrorIs(t, err, ErrInvalidRefundPolicy)

	_, err = NewRefundPolicy(7, -1, 15000)
	assert.ErrorIs(t, err, ErrInvalidRefundPolicy)

	_, err = NewRefundPolicy(7, 30, -1)
	assert.ErrorIs(t, err, ErrInvalidRefundPolicy)
}

func TestMaxRefundCents(t *testing.T) {
	p := testPolicy(t)

	// 30% of 40000 is 12000, below the 15000 cap.
	assert.Equal(t, int64(12000), p.MaxRefundCents(40000))

	// 30% of 100000 is 30000, capped at 15000.
	assert.Equal(t, int64(15000), p.MaxRefundCents(100000))
}

func TestAllowsRefunds(t *testing.T) {
	p := testPolicy(t)
	assert.True(t, p.AllowsRefunds())

	zeroPct, err := NewRefundPolicy(7, 0, 15000)
	require.NoError(t, err)
	assert.False(t, zeroPct.AllowsRefunds())

	zeroCap, err := NewRefundPolicy(7, 30, 0)
	require.NoError(t, err)
	assert.False(t, zeroCap.AllowsRefunds())
}

func TestNewBalanceTransaction(t *testing.T) {
	tx, err := NewBalanceTransaction(1, 2, "stl_abc123", DirectionDebit, 10000, "refund payout for bill 2")
	require.NoError(t, err)

	assert.Equal(t, "stl_abc123", tx.SettlementID())
	assert.Equal(t, DirectionDebit, tx.Direction())
	assert.Equal(t, int64(10000), tx.AmountCents())
}

func TestNewBalanceTransactionValidation(t *testing.T) {
	_, err := NewBalanceTransaction(0, 2, "stl_abc123", DirectionDebit, 10000, "")
	assert.Error(t, err)

	_, err = NewBalanceTransaction(1, 2, "", DirectionDebit, 10000, "")
	assert.Error(t, err)

	_, err = NewBalanceTransaction(1, 2, "stl_abc123", TransactionDirection("sideways"), 10000, "")
	assert.Error(t, err)

	_, err = NewBalanceTransaction(1, 2, "stl_abc123", DirectionCredit, 0, "")
	assert.ErrorIs(t, err, ErrInvalidAmount)
}
