package usecases

import (
	"context"
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/shared/id"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

// TransactionRunner runs a function inside a database transaction.
// Satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type TopUpCommand struct {
	BrandID     uint
	AmountCents int64
	Reference   string
}

type TopUpResult struct {
	Brand        *brand.Brand
	SettlementID string
}

// TopUpUseCase credits a brand balance and appends the matching ledger row
// in one transaction.
type TopUpUseCase struct {
	brandRepo     brand.Repository
	balanceTxRepo brand.BalanceTransactionRepository
	txRunner      TransactionRunner
	logger        logger.Interface
}

func NewTopUpUseCase(
	brandRepo brand.Repository,
	balanceTxRepo brand.BalanceTransactionRepository,
	txRunner TransactionRunner,
	logger logger.Interface,
) *TopUpUseCase {
	return &TopUpUseCase{
		brandRepo:     brandRepo,
		balanceTxRepo: balanceTxRepo,
		txRunner:      txRunner,
		logger:        logger,
	}
}

func (uc *TopUpUseCase) Execute(ctx context.Context, cmd TopUpCommand) (*TopUpResult, error) {
	var (
		topped       *brand.Brand
		settlementID string
	)

	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		br, err := uc.brandRepo.GetByID(txCtx, cmd.BrandID)
		if err != nil {
			return fmt.Errorf("failed to get brand: %w", err)
		}
		if !br.IsActive() {
			return brand.ErrBrandInactive
		}

		if err := br.Credit(cmd.AmountCents); err != nil {
			return err
		}

		settlementID, err = id.GenerateWithPrefix(id.PrefixSettlement, id.DefaultLength)
		if err != nil {
			return fmt.Errorf("failed to generate settlement ID: %w", err)
		}

		reason := cmd.Reference
		if reason == "" {
			reason = "balance top-up"
		}
		row, err := brand.NewBalanceTransaction(br.ID(), 0, settlementID, brand.DirectionCredit, cmd.AmountCents, reason)
		if err != nil {
			return err
		}
		if err := uc.balanceTxRepo.Create(txCtx, row); err != nil {
			return fmt.Errorf("failed to write ledger row: %w", err)
		}

		if err := uc.brandRepo.Update(txCtx, br); err != nil {
			return fmt.Errorf("failed to save brand balance: %w", err)
		}

		topped = br
		return nil
	})
	if err != nil {
		return nil, mapDomainError(err)
	}

	uc.logger.Infow("brand balance topped up",
		"brand_id", cmd.BrandID,
		"amount_cents", cmd.AmountCents,
		"settlement_id", settlementID,
	)

	return &TopUpResult{Brand: topped, SettlementID: settlementID}, nil
}
