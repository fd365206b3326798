package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type DeleteBillCommand struct {
	BillID uint
}

// DeleteBillUseCase soft-deletes a bill. Deleted bills drop out of every
// lookup and listing; nothing is ever removed from storage.
type DeleteBillUseCase struct {
	billRepo bill.Repository
	logger   logger.Interface
}

func NewDeleteBillUseCase(billRepo bill.Repository, logger logger.Interface) *DeleteBillUseCase {
	return &DeleteBillUseCase{billRepo: billRepo, logger: logger}
}

func (uc *DeleteBillUseCase) Execute(ctx context.Context, cmd DeleteBillCommand) error {
	b, err := uc.billRepo.GetByID(ctx, cmd.BillID)
	if err != nil {
		return mapDomainError(fmt.Errorf("failed to get bill: %w", err))
	}

	b.SoftDelete(time.Now().UTC())

	if err := uc.billRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to soft-delete bill", "error", err, "bill_sid", b.SID())
		return mapDomainError(fmt.Errorf("failed to save bill: %w", err))
	}

	uc.logger.Infow("bill deleted", "bill_sid", b.SID())
	return nil
}
