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

type SettleCustomerRefundCommand struct {
	BillID uint
	// Outcome is "success" or "failed".
	Outcome string
}

type SettleCustomerRefundResult struct {
	Bill *bill.Bill
}

// SettleCustomerRefundUseCase records the terminal outcome of a processing
// customer refund. The refund date is stamped together with the outcome.
type SettleCustomerRefundUseCase struct {
	billRepo     bill.Repository
	customerRepo customer.Repository
	sender       notification.Sender
	logger       logger.Interface
}

func NewSettleCustomerRefundUseCase(
	billRepo bill.Repository,
	customerRepo customer.Repository,
	sender notification.Sender,
	logger logger.Interface,
) *SettleCustomerRefundUseCase {
	return &SettleCustomerRefundUseCase{
		billRepo:     billRepo,
		customerRepo: customerRepo,
		sender:       sender,
		logger:       logger,
	}
}

func (uc *SettleCustomerRefundUseCase) Execute(ctx context.Context, cmd SettleCustomerRefundCommand) (*SettleCustomerRefundResult, error) {
	outcome := vo.RefundStatus(cmd.Outcome)
	if !outcome.IsSettled() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid refund outcome: %s", cmd.Outcome))
	}

	b, err := uc.billRepo.GetByID(ctx, cmd.BillID)
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get bill: %w", err))
	}

	if err := b.SettleCustomerRefund(outcome, time.Now().UTC()); err != nil {
		return nil, mapDomainError(err)
	}

	if err := uc.billRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to save refund settlement", "error", err, "bill_sid", b.SID())
		return nil, mapDomainError(fmt.Errorf("failed to save bill: %w", err))
	}

	uc.notifyCustomer(ctx, b)

	uc.logger.Infow("customer refund settled",
		"bill_sid", b.SID(),
		"outcome", outcome.String(),
	)

	return &SettleCustomerRefundResult{Bill: b}, nil
}

func (uc *SettleCustomerRefundUseCase) notifyCustomer(ctx context.Context, b *bill.Bill) {
	cust, err := uc.customerRepo.GetByID(ctx, b.CustomerID())
	if err != nil {
		uc.logger.Warnw("failed to load customer for notification", "error", err, "customer_id", b.CustomerID())
		return
	}

	msg := notification.Message{
		To:      cust.Email(),
		Subject: fmt.Sprintf("Refund update for bill %s", b.SID()),
		BodyMarkdown: fmt.Sprintf(
			"Your refund for bill `%s` has been settled with outcome **%s**.",
			b.SID(), b.RefundStatus(),
		),
	}
	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.logger.Warnw("failed to send refund notification", "error", err, "bill_sid", b.SID())
	}
}
