package usecases

import (
	"context"
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/application/notification"
	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/domain/customer"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type SubmitContentCommand struct {
	BillID          uint
	CustomerID      uint
	ContentType     string
	ContentURL      string
	InstaContentURL string
}

type SubmitContentResult struct {
	Bill *bill.Bill
}

type SubmitContentUseCase struct {
	billRepo     bill.Repository
	brandRepo    brand.Repository
	customerRepo customer.Repository
	sender       notification.Sender
	logger       logger.Interface
}

func NewSubmitContentUseCase(
	billRepo bill.Repository,
	brandRepo brand.Repository,
	customerRepo customer.Repository,
	sender notification.Sender,
	logger logger.Interface,
) *SubmitContentUseCase {
	return &SubmitContentUseCase{
		billRepo:     billRepo,
		brandRepo:    brandRepo,
		customerRepo: customerRepo,
		sender:       sender,
		logger:       logger,
	}
}

func (uc *SubmitContentUseCase) Execute(ctx context.Context, cmd SubmitContentCommand) (*SubmitContentResult, error) {
	b, err := uc.billRepo.GetByID(ctx, cmd.BillID)
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get bill: %w", err))
	}
	if b.CustomerID() != cmd.CustomerID {
		return nil, errors.NewForbiddenError("bill belongs to another customer")
	}

	contentType, err := vo.NewContentType(cmd.ContentType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := b.SubmitContent(contentType, cmd.ContentURL, cmd.InstaContentURL); err != nil {
		return nil, mapDomainError(err)
	}

	if err := uc.billRepo.Update(ctx, b); err != nil {
		uc.logger.Errorw("failed to save submitted content", "error", err, "bill_sid", b.SID())
		return nil, mapDomainError(fmt.Errorf("failed to save bill: %w", err))
	}

	if cust, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID); err == nil {
		cust.TouchLastActive(b.LastActiveAt())
		if err := uc.customerRepo.Update(ctx, cust); err != nil {
			uc.logger.Warnw("failed to touch customer activity", "error", err, "customer_id", cmd.CustomerID)
		}
	}

	uc.notifyBrand(ctx, b)

	uc.logger.Infow("content submitted",
		"bill_sid", b.SID(),
		"customer_id", cmd.CustomerID,
		"content_type", contentType.String(),
	)

	return &SubmitContentResult{Bill: b}, nil
}

func (uc *SubmitContentUseCase) notifyBrand(ctx context.Context, b *bill.Bill) {
	br, err := uc.brandRepo.GetByID(ctx, b.BrandID())
	if err != nil {
		uc.logger.Warnw("failed to load brand for notification", "error", err, "brand_id", b.BrandID())
		return
	}

	msg := notification.Message{
		To:      br.Email(),
		Subject: fmt.Sprintf("Content submitted for bill %s", b.SID()),
		BodyMarkdown: fmt.Sprintf(
			"A customer submitted **%s** content for bill `%s`.\n\nContent URL: %s\n\nPlease review and approve or reject it.",
			b.ContentType().String(), b.SID(), *b.ContentURL(),
		),
	}
	if err := uc.sender.Send(ctx, msg); err != nil {
		uc.logger.Warnw("failed to send submission notification", "error", err, "bill_sid", b.SID())
	}
}
