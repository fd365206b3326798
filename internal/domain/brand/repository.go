package brand

import "context"

// Repository persists brands. Update matches on the loaded version so a
// balance mutation races cleanly with concurrent settlements.
type Repository interface {
	Create(ctx context.Context, b *Brand) error
	GetByID(ctx context.Context, id uint) (*Brand, error)
	GetBySID(ctx context.Context, sid string) (*Brand, error)
	GetByEmail(ctx context.Context, email string) (*Brand, error)
	Update(ctx context.Context, b *Brand) error
}

// BalanceTransactionRepository appends ledger rows. Create returns
// ErrDuplicateSettlement when the settlement ID was already recorded.
type BalanceTransactionRepository interface {
	Create(ctx context.Context, t *BalanceTransaction) error
	GetBySettlementID(ctx context.Context, settlementID string) (*BalanceTransaction, error)
	ListByBrandID(ctx context.Context, brandID uint, page, pageSize int) ([]*BalanceTransaction, int64, error)
}
