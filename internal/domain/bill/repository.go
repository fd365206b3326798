package bill

import (
	"context"

	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
)

// ListFilter narrows bill listings. Zero values mean "no filter".
type ListFilter struct {
	CustomerID uint
	BrandID    uint
	Status     vo.BillStatus
	Page       int
	PageSize   int
}

// Repository persists bills. Update is a guarded conditional write: it
// matches on the version the aggregate was loaded with, so two concurrent
// transitions against the same bill cannot both apply; the loser gets
// ErrConcurrentModification.
type Repository interface {
	Create(ctx context.Context, b *Bill) error
	GetByID(ctx context.Context, id uint) (*Bill, error)
	GetBySID(ctx context.Context, sid string) (*Bill, error)
	GetByGatewayOrderID(ctx context.Context, orderID string) (*Bill, error)
	Update(ctx context.Context, b *Bill) error
	List(ctx context.Context, filter ListFilter) ([]*Bill, int64, error)
}
