package usecases

import (
	"context"
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/shared/constants"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type ListBillsQuery struct {
	CustomerID uint
	BrandID    uint
	Status     string
	Page       int
	PageSize   int
	// Requester scoping, applied on top of the explicit filters.
	RequesterID   uint
	RequesterRole string
}

type ListBillsResult struct {
	Bills []*bill.Bill
	Total int64
}

type ListBillsUseCase struct {
	billRepo bill.Repository
	logger   logger.Interface
}

func NewListBillsUseCase(billRepo bill.Repository, logger logger.Interface) *ListBillsUseCase {
	return &ListBillsUseCase{billRepo: billRepo, logger: logger}
}

func (uc *ListBillsUseCase) Execute(ctx context.Context, q ListBillsQuery) (*ListBillsResult, error) {
	filter := bill.ListFilter{
		CustomerID: q.CustomerID,
		BrandID:    q.BrandID,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}

	// Non-admin requesters are pinned to their own bills regardless of
	// the explicit filters.
	switch q.RequesterRole {
	case constants.RoleAdmin:
	case constants.RoleBrand:
		filter.BrandID = q.RequesterID
	default:
		filter.CustomerID = q.RequesterID
	}

	if q.Status != "" {
		status := vo.BillStatus(q.Status)
		if !vo.ValidStatuses[status] {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid bill status filter: %s", q.Status))
		}
		filter.Status = status
	}

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 || filter.PageSize > constants.MaxPageSize {
		filter.PageSize = constants.DefaultPageSize
	}

	bills, total, err := uc.billRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list bills", "error", err)
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}

	return &ListBillsResult{Bills: bills, Total: total}, nil
}
