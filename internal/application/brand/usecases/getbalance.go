package usecases

import (
	"context"
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type GetBalanceQuery struct {
	BrandID  uint
	Page     int
	PageSize int
}

type GetBalanceResult struct {
	Brand        *brand.Brand
	Transactions []*brand.BalanceTransaction
	Total        int64
}

type GetBalanceUseCase struct {
	brandRepo     brand.Repository
	balanceTxRepo brand.BalanceTransactionRepository
	logger        logger.Interface
}

func NewGetBalanceUseCase(brandRepo brand.Repository, balanceTxRepo brand.BalanceTransactionRepository, logger logger.Interface) *GetBalanceUseCase {
	return &GetBalanceUseCase{brandRepo: brandRepo, balanceTxRepo: balanceTxRepo, logger: logger}
}

func (uc *GetBalanceUseCase) Execute(ctx context.Context, q GetBalanceQuery) (*GetBalanceResult, error) {
	br, err := uc.brandRepo.GetByID(ctx, q.BrandID)
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get brand: %w", err))
	}

	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 20
	}

	txs, total, err := uc.balanceTxRepo.ListByBrandID(ctx, q.BrandID, q.Page, q.PageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list balance transactions: %w", err)
	}

	return &GetBalanceResult{Brand: br, Transactions: txs, Total: total}, nil
}
