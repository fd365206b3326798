package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/shared/biztime"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type ClaimRefundCommand struct {
	BillID      uint
	CustomerID  uint
	AmountCents int64
}

type ClaimRefundResult struct {
	Bill *bill.Bill
	// WindowDeadline is when the refund window closes, returned so the
	// client can show why a late claim was rejected.
	WindowDeadline time.Time
}

// ClaimRefundUseCase opens the refund sub-machine on an approved bill. The
// window runs from the brand decision date through the end of the policy's
// last day in the business timezone; the amount is capped by the brand's
// refund policy.
type ClaimRefundUseCase struct {
	billRepo  bill.Repository
	brandRepo brand.Repository
	logger    logger.Interface
}

func NewClaimRefundUseCase(billRepo bill.Repository, brandRepo brand.Repository, logger logger.Interface) *ClaimRefundUseCase {
	return &ClaimRefundUseCase{billRepo: billRepo, brandRepo: brandRepo, logger: logger}
}

func (uc *ClaimRefundUseCase) Execute(ctx context.Context, cmd ClaimRefundCommand) (*ClaimRefundResult, error) {
	b, err := uc.billRepo.GetByID(ctx, cmd.BillID)
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get bill: %w", err))
	}
	if b.CustomerID() != cmd.CustomerID {
		return nil, errors.NewForbiddenError("bill belongs to another customer")
	}

	br, err := uc.brandRepo.GetByID(ctx, b.BrandID())
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get brand: %w", err))
	}

	policy := br.RefundPolicy()
	if !policy.AllowsRefunds() {
		return nil, errors.NewInvalidStateError("brand does not offer refunds")
	}
	if b.BrandStatusDate() == nil {
		return nil, mapDomainError(bill.ErrRequiresStatus("refund claim", vo.StatusApproved.String(), b.Status().String()))
	}

	deadline := biztime.AddDaysEndOfDayUTC(*b.BrandStatusDate(), policy.RefundDays())
	maxRefund := vo.NewMoney(policy.MaxRefundCents(b.Amount().AmountCents()), b.Amount().Currency())
	amount := vo.NewMoney(cmd.AmountCents, b.Amount().Currency())

	if err := b.ClaimRefund(amount, time.Now().UTC(), deadline, maxRefund); err != nil {
		return nil, mapDomainError(err)
	}

	if err := uc.billRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to save refund claim", "error", err, "bill_sid", b.SID())
		return nil, mapDomainError(fmt.Errorf("failed to save bill: %w", err))
	}

	uc.logger.Infow("refund claimed",
		"bill_sid", b.SID(),
		"customer_id", cmd.CustomerID,
		"amount_cents", amount.AmountCents(),
		"window_deadline", deadline,
	)

	return &ClaimRefundResult{Bill: b, WindowDeadline: deadline}, nil
}
