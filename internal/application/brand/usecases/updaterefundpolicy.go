package usecases

import (
	"context"
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type UpdateRefundPolicyCommand struct {
	BrandID               uint
	RefundDays            int
	RefundPercentage      int
	UpToRefundAmountCents int64
}

type UpdateRefundPolicyResult struct {
	Brand *brand.Brand
}

// UpdateRefundPolicyUseCase replaces the brand's refund terms. Claims
// already in processing keep the terms they were opened under.
type UpdateRefundPolicyUseCase struct {
	brandRepo brand.Repository
	logger    logger.Interface
}

func NewUpdateRefundPolicyUseCase(brandRepo brand.Repository, logger logger.Interface) *UpdateRefundPolicyUseCase {
	return &UpdateRefundPolicyUseCase{brandRepo: brandRepo, logger: logger}
}

func (uc *UpdateRefundPolicyUseCase) Execute(ctx context.Context, cmd UpdateRefundPolicyCommand) (*UpdateRefundPolicyResult, error) {
	policy, err := brand.NewRefundPolicy(cmd.RefundDays, cmd.RefundPercentage, cmd.UpToRefundAmountCents)
	if err != nil {
		return nil, mapDomainError(err)
	}

	br, err := uc.brandRepo.GetByID(ctx, cmd.BrandID)
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get brand: %w", err))
	}

	br.UpdateRefundPolicy(policy)

	if err := uc.brandRepo.Update(ctx, br); err != nil {
		uc.logger.Errorw("failed to save refund policy", "error", err, "brand_id", cmd.BrandID)
		return nil, mapDomainError(fmt.Errorf("failed to save brand: %w", err))
	}

	uc.logger.Infow("refund policy updated",
		"brand_id", cmd.BrandID,
		"refund_days", cmd.RefundDays,
		"refund_percentage", cmd.RefundPercentage,
		"up_to_cents", cmd.UpToRefundAmountCents,
	)

	return &UpdateRefundPolicyResult{Brand: br}, nil
}
