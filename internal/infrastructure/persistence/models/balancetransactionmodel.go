package models

import "time"

// BalanceTransactionModel is append-only. The unique settlement ID is the
// idempotency key for brand refund settlements.
type BalanceTransactionModel struct {
	ID           uint   `gorm:"primaryKey"`
	BrandID      uint   `gorm:"index;not null"`
	BillID       uint   `gorm:"index"`
	SettlementID string `gorm:"uniqueIndex;size:64;not null"`
	Direction    string `gorm:"size:10;not null"`
	AmountCents  int64  `gorm:"not null"`
	Reason       string `gorm:"size:256"`
	CreatedAt    time.Time
}

func (BalanceTransactionModel) TableName() string {
	return "balance_transactions"
}
