package brand

import (
	"fmt"
	"time"
)

// TransactionDirection is the sign of a balance mutation.
type TransactionDirection string

const (
	DirectionCredit TransactionDirection = "credit"
	DirectionDebit  TransactionDirection = "debit"
)

func (d TransactionDirection) IsValid() bool {
	return d == DirectionCredit || d == DirectionDebit
}

// BalanceTransaction is an append-only ledger row recording one balance
// mutation. SettlementID is unique per settlement, which is what makes
// brand refund settlement idempotent under retries: the second insert with
// the same settlement ID hits the unique key and the mutation is skipped.
type BalanceTransaction struct {
	id           uint
	brandID      uint
	billID       uint
	settlementID string
	direction    TransactionDirection
	amountCents  int64
	reason       string
	createdAt    time.Time
}

func NewBalanceTransaction(brandID, billID uint, settlementID string, direction TransactionDirection, amountCents int64, reason string) (*BalanceTransaction, error) {
	if brandID == 0 {
		return nil, fmt.Errorf("brand ID is required")
	}
	if settlementID == "" {
		return nil, fmt.Errorf("settlement ID is required")
	}
	if !direction.IsValid() {
		return nil, fmt.Errorf("invalid transaction direction: %s", direction)
	}
	if amountCents <= 0 {
		return nil, ErrInvalidAmount
	}

	return &BalanceTransaction{
		brandID:      brandID,
		billID:       billID,
		settlementID: settlementID,
		direction:    direction,
		amountCents:  amountCents,
		reason:       reason,
		createdAt:    time.Now().UTC(),
	}, nil
}

// ReconstructBalanceTransaction rebuilds a ledger row from persistence.
func ReconstructBalanceTransaction(id, brandID, billID uint, settlementID string, direction TransactionDirection, amountCents int64, reason string, createdAt time.Time) *BalanceTransaction {
	return &BalanceTransaction{
		id:           id,
		brandID:      brandID,
		billID:       billID,
		settlementID: settlementID,
		direction:    direction,
		amountCents:  amountCents,
		reason:       reason,
		createdAt:    createdAt,
	}
}

func (t *BalanceTransaction) ID() uint                        { return t.id }
func (t *BalanceTransaction) BrandID() uint                   { return t.brandID }
func (t *BalanceTransaction) BillID() uint                    { return t.billID }
func (t *BalanceTransaction) SettlementID() string            { return t.settlementID }
func (t *BalanceTransaction) Direction() TransactionDirection { return t.direction }
func (t *BalanceTransaction) AmountCents() int64              { return t.amountCents }
func (t *BalanceTransaction) Reason() string                  { return t.reason }
func (t *BalanceTransaction) CreatedAt() time.Time            { return t.createdAt }

// SetID sets the transaction ID (only for persistence layer use)
func (t *BalanceTransaction) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("transaction ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("transaction ID cannot be zero")
	}
	t.id = id
	return nil
}
