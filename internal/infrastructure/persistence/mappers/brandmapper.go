package mappers

import (
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/models"
)

func BrandToModel(b *brand.Brand) *models.BrandModel {
	policy := b.RefundPolicy()
	return &models.BrandModel{
		ID:                    b.ID(),
		SID:                   b.SID(),
		Name:                  b.Name(),
		Email:                 b.Email(),
		PasswordHash:          b.PasswordHash(),
		BalanceCents:          b.BalanceCents(),
		Currency:              b.Currency(),
		RefundDays:            policy.RefundDays(),
		RefundPercentage:      policy.RefundPercentage(),
		UpToRefundAmountCents: policy.UpToRefundAmountCents(),
		Active:                b.IsActive(),
		Version:               b.Version(),
		CreatedAt:             b.CreatedAt(),
		UpdatedAt:             b.UpdatedAt(),
	}
}

func BrandToDomain(model *models.BrandModel) (*brand.Brand, error) {
	policy, err := brand.NewRefundPolicy(model.RefundDays, model.RefundPercentage, model.UpToRefundAmountCents)
	if err != nil {
		return nil, fmt.Errorf("invalid stored refund policy: %w", err)
	}

	return brand.ReconstructBrand(brand.BrandReconstructParams{
		ID:           model.ID,
		SID:          model.SID,
		Name:         model.Name,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		BalanceCents: model.BalanceCents,
		Currency:     model.Currency,
		RefundPolicy: policy,
		Active:       model.Active,
		Version:      model.Version,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	})
}

func BalanceTransactionToModel(t *brand.BalanceTransaction) *models.BalanceTransactionModel {
	return &models.BalanceTransactionModel{
		ID:           t.ID(),
		BrandID:      t.BrandID(),
		BillID:       t.BillID(),
		SettlementID: t.SettlementID(),
		Direction:    string(t.Direction()),
		AmountCents:  t.AmountCents(),
		Reason:       t.Reason(),
		CreatedAt:    t.CreatedAt(),
	}
}

func BalanceTransactionToDomain(model *models.BalanceTransactionModel) *brand.BalanceTransaction {
	return brand.ReconstructBalanceTransaction(
		model.ID,
		model.BrandID,
		model.BillID,
		model.SettlementID,
		brand.TransactionDirection(model.Direction),
		model.AmountCents,
		model.Reason,
		model.CreatedAt,
	)
}
