package handlers

import (
	"context"

	"github.com/tagcash-inc/tagcash/internal/application/brand/usecases"
)

// Use case interfaces for BrandHandler

type registerBrandUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterBrandCommand) (*usecases.RegisterBrandResult, error)
}

type topUpUseCase interface {
	Execute(ctx context.Context, cmd usecases.TopUpCommand) (*usecases.TopUpResult, error)
}

type updateRefundPolicyUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateRefundPolicyCommand) (*usecases.UpdateRefundPolicyResult, error)
}

type getBalanceUseCase interface {
	Execute(ctx context.Context, q usecases.GetBalanceQuery) (*usecases.GetBalanceResult, error)
}
