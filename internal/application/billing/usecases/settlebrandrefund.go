package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"time"

	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/id"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

// TransactionRunner runs a function inside a database transaction.
// Satisfied by db.TransactionManager.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// BrandSettlementConfig controls how a successful brand settlement moves
// the brand balance.
type BrandSettlementConfig struct {
	// Direction is "debit_brand" (brand pays the refund out of its
	// balance) or "credit_brand" (platform fronts the refund and credits
	// the brand's exposure back).
	Direction string
}

const (
	SettlementDebitBrand  = "debit_brand"
	SettlementCreditBrand = "credit_brand"
)

type SettleBrandRefundCommand struct {
	BillID uint
	// Outcome is "success" or "failed".
	Outcome string
}

type SettleBrandRefundResult struct {
	Bill         *bill.Bill
	SettlementID string
}

// SettleBrandRefundUseCase records the brand-side settlement outcome. On
// success the brand balance moves and a ledger row is written, all inside
// one transaction. The ledger row's settlement ID is derived from the bill,
// so a retried settlement hits the unique key instead of moving the
// balance twice.
type SettleBrandRefundUseCase struct {
	billRepo      bill.Repository
	brandRepo     brand.Repository
	balanceTxRepo brand.BalanceTransactionRepository
	txRunner      TransactionRunner
	config        BrandSettlementConfig
	logger        logger.Interface
}

func NewSettleBrandRefundUseCase(
	billRepo bill.Repository,
	brandRepo brand.Repository,
	balanceTxRepo brand.BalanceTransactionRepository,
	txRunner TransactionRunner,
	config BrandSettlementConfig,
	logger logger.Interface,
) *SettleBrandRefundUseCase {
	return &SettleBrandRefundUseCase{
		billRepo:      billRepo,
		brandRepo:     brandRepo,
		balanceTxRepo: balanceTxRepo,
		txRunner:      txRunner,
		config:        config,
		logger:        logger,
	}
}

func (uc *SettleBrandRefundUseCase) Execute(ctx context.Context, cmd SettleBrandRefundCommand) (*SettleBrandRefundResult, error) {
	outcome := vo.RefundStatus(cmd.Outcome)
	if !outcome.IsSettled() {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid settlement outcome: %s", cmd.Outcome))
	}

	var (
		settled      *bill.Bill
		settlementID string
	)

	err := uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		b, err := uc.billRepo.GetByID(txCtx, cmd.BillID)
		if err != nil {
			return fmt.Errorf("failed to get bill: %w", err)
		}

		if err := b.SettleBrandRefund(outcome, time.Now().UTC()); err != nil {
			if stderrors.Is(err, bill.ErrBrandRefundAlreadySettled) && b.BrandRefundStatus() == outcome {
				// Retry of a settlement that already landed.
				settled = b
				if outcome == vo.RefundStatusSuccess {
					settlementID = settlementIDForBill(b)
				}
				return nil
			}
			return err
		}

		if outcome == vo.RefundStatusSuccess {
			sid, err := uc.applyBalanceMovement(txCtx, b)
			if err != nil {
				return err
			}
			settlementID = sid
		}

		if err := uc.billRepo.Update(txCtx, b); err != nil {
			return fmt.Errorf("failed to save bill: %w", err)
		}

		settled = b
		return nil
	})
	if err != nil {
		return nil, mapDomainError(err)
	}

	uc.logger.Infow("brand refund settled",
		"bill_id", cmd.BillID,
		"outcome", outcome.String(),
		"settlement_id", settlementID,
	)

	return &SettleBrandRefundResult{Bill: settled, SettlementID: settlementID}, nil
}

func (uc *SettleBrandRefundUseCase) applyBalanceMovement(ctx context.Context, b *bill.Bill) (string, error) {
	if b.RefundAmount() == nil {
		return "", bill.ErrRefundNotClaimed
	}
	amountCents := b.RefundAmount().AmountCents()

	br, err := uc.brandRepo.GetByID(ctx, b.BrandID())
	if err != nil {
		return "", fmt.Errorf("failed to get brand: %w", err)
	}

	var direction brand.TransactionDirection
	switch uc.config.Direction {
	case SettlementCreditBrand:
		direction = brand.DirectionCredit
		err = br.Credit(amountCents)
	case SettlementDebitBrand, "":
		direction = brand.DirectionDebit
		err = br.Debit(amountCents)
	default:
		return "", fmt.Errorf("invalid settlement direction: %s", uc.config.Direction)
	}
	if err != nil {
		return "", err
	}

	settlementID := settlementIDForBill(b)
	ledgerRow, err := brand.NewBalanceTransaction(
		br.ID(), b.ID(), settlementID, direction, amountCents,
		fmt.Sprintf("brand refund settlement for bill %s", b.SID()),
	)
	if err != nil {
		return "", err
	}

	if err := uc.balanceTxRepo.Create(ctx, ledgerRow); err != nil {
		if stderrors.Is(err, brand.ErrDuplicateSettlement) {
			// The ledger row already exists, so the balance moved in an
			// earlier attempt. Skip the movement instead of failing.
			return settlementID, nil
		}
		return "", fmt.Errorf("failed to write ledger row: %w", err)
	}

	if err := uc.brandRepo.Update(ctx, br); err != nil {
		return "", fmt.Errorf("failed to save brand balance: %w", err)
	}

	return settlementID, nil
}

// One brand settlement per bill, so the settlement ID is derived from the
// bill SID. A retry inserts the same ID and hits the ledger's unique key.
func settlementIDForBill(b *bill.Bill) string {
	return fmt.Sprintf("%s_%s", id.PrefixSettlement, id.StripPrefix(b.SID()))
}
