package usecases

import (
	"context"
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	"github.com/tagcash-inc/tagcash/internal/shared/constants"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type GetBillQuery struct {
	BillID uint
	// SID is used instead of BillID when set.
	SID string
	// Requester scoping: customers see their own bills, brands the bills
	// filed against them, admins everything.
	RequesterID   uint
	RequesterRole string
}

type GetBillResult struct {
	Bill *bill.Bill
}

type GetBillUseCase struct {
	billRepo bill.Repository
	logger   logger.Interface
}

func NewGetBillUseCase(billRepo bill.Repository, logger logger.Interface) *GetBillUseCase {
	return &GetBillUseCase{billRepo: billRepo, logger: logger}
}

func (uc *GetBillUseCase) Execute(ctx context.Context, q GetBillQuery) (*GetBillResult, error) {
	var (
		b   *bill.Bill
		err error
	)
	if q.SID != "" {
		b, err = uc.billRepo.GetBySID(ctx, q.SID)
	} else {
		b, err = uc.billRepo.GetByID(ctx, q.BillID)
	}
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get bill: %w", err))
	}

	switch q.RequesterRole {
	case constants.RoleAdmin:
	case constants.RoleBrand:
		if b.BrandID() != q.RequesterID {
			return nil, errors.NewForbiddenError("bill belongs to another brand")
		}
	default:
		if b.CustomerID() != q.RequesterID {
			return nil, errors.NewForbiddenError("bill belongs to another customer")
		}
	}

	return &GetBillResult{Bill: b}, nil
}
