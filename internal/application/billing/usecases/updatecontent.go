package usecases

import (
	"context"
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type UpdateContentCommand struct {
	BillID          uint
	CustomerID      uint
	ContentURL      string
	InstaContentURL string
}

type UpdateContentResult struct {
	Bill *bill.Bill
}

// UpdateContentUseCase lets the customer fix submitted URLs while the bill
// is still pending the brand decision.
type UpdateContentUseCase struct {
	billRepo bill.Repository
	logger   logger.Interface
}

func NewUpdateContentUseCase(billRepo bill.Repository, logger logger.Interface) *UpdateContentUseCase {
	return &UpdateContentUseCase{billRepo: billRepo, logger: logger}
}

func (uc *UpdateContentUseCase) Execute(ctx context.Context, cmd UpdateContentCommand) (*UpdateContentResult, error) {
	if cmd.ContentURL == "" && cmd.InstaContentURL == "" {
		return nil, errors.NewValidationError("nothing to update")
	}

	b, err := uc.billRepo.GetByID(ctx, cmd.BillID)
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get bill: %w", err))
	}
	if b.CustomerID() != cmd.CustomerID {
		return nil, errors.NewForbiddenError("bill belongs to another customer")
	}

	if err := b.UpdateContentURL(cmd.ContentURL, cmd.InstaContentURL); err != nil {
		return nil, mapDomainError(err)
	}

	if err := uc.billRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to save content update", "error", err, "bill_sid", b.SID())
		return nil, mapDomainError(fmt.Errorf("failed to save bill: %w", err))
	}

	return &UpdateContentResult{Bill: b}, nil
}
