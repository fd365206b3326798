package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tagcash-inc/tagcash/internal/application/notification"
	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/domain/customer"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type BrandDecideCommand struct {
	BillID  uint
	BrandID uint
	// Decision is "approved" or "rejected".
	Decision string
}

type BrandDecideResult struct {
	Bill *bill.Bill
}

// BrandDecideUseCase applies the brand's approve/reject decision to a bill
// awaiting review. The decision timestamp anchors the refund window.
type BrandDecideUseCase struct {
	billRepo     bill.Repository
	customerRepo customer.Repository
	sender       notification.Sender
	logger       logger.Interface
}

func NewBrandDecideUseCase(
	billRepo bill.Repository,
	customerRepo customer.Repository,
	sender notification.Sender,
	logger logger.Interface,
) *BrandDecideUseCase {
	return &BrandDecideUseCase{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		sender:       sender,
		logger:       logger,
	}
}

func (uc *BrandDecideUseCase) Execute(ctx context.Context, cmd BrandDecideCommand) (*BrandDecideResult, error) {
	b, err := uc.billRepo.GetByID(ctx, cmd.BillID)
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get bill: %w", err))
	}
	if b.BrandID() != cmd.BrandID {
		return nil, errors.NewForbiddenError("bill belongs to another brand")
	}

	decision := vo.BillStatus(cmd.Decision)
	if decision != vo.StatusApproved && decision != vo.StatusRejected {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid decision: %s", cmd.Decision))
	}

	if err := b.Decide(decision, time.Now().UTC()); err != nil {
		return nil, mapDomainError(err)
	}

	if err := uc.billRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to save decision", "error", err, "bill_sid", b.SID())
		return nil, mapDomainError(fmt.Errorf("failed to save bill: %w", err))
	}

	uc.notifyCustomer(ctx, b)

	uc.logger.Infow("bill decided",
		"bill_sid", b.SID(),
		"brand_id", cmd.BrandID,
		"decision", decision.String(),
	)

	return &BrandDecideResult{Bill: b}, nil
}

func (uc *BrandDecideUseCase) notifyCustomer(ctx context.Context, b *bill.Bill) {
	cust, err := uc.customerRepo.GetByID(ctx, b.CustomerID())
	if err != nil {
		uc.logger.Warnw("failed to load customer for notification", "error", err, "customer_id", b.CustomerID())
		return
	}

	msg := notification.Message{
		To:      cust.Email(),
		Subject: fmt.Sprintf("Your bill %s was %s", b.SID(), b.Status()),
		BodyMarkdown: fmt.Sprintf(
			"Your submitted content for bill `%s` has been **%s** by the brand.",
			b.SID(), b.Status(),
		),
	}
	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.logger.Warnw("failed to send decision notification", "error", err, "bill_sid", b.SID())
	}
}
