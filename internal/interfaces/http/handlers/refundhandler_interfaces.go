package handlers

import (
	"context"

	"github.com/tagcash-inc/tagcash/internal/application/billing/usecases"
)

// Use case interfaces for RefundHandler

type claimRefundUseCase interface {
	Execute(ctx context.Context, cmd usecases.ClaimRefundCommand) (*usecases.ClaimRefundResult, error)
}

type settleCustomerRefundUseCase interface {
	Execute(ctx context.Context, cmd usecases.SettleCustomerRefundCommand) (*usecases.SettleCustomerRefundResult, error)
}

type settleBrandRefundUseCase interface {
	Execute(ctx context.Context, cmd usecases.SettleBrandRefundCommand) (*usecases.SettleBrandRefundResult, error)
}
