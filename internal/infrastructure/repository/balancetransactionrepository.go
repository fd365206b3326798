package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/mappers"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/models"
	"github.com/tagcash-inc/tagcash/internal/shared/db"
)

type BalanceTransactionRepository struct {
	db *gorm.DB
}

func NewBalanceTransactionRepository(db *gorm.DB) *BalanceTransactionRepository {
	return &BalanceTransactionRepository{db: db}
}

// Create appends a ledger row. A duplicate settlement ID hits the unique
// key and maps to ErrDuplicateSettlement, which is what makes settlement
// retries safe.
func (r *BalanceTransactionRepository) Create(ctx context.Context, t *brand.BalanceTransaction) error {
	model := mappers.BalanceTransactionToModel(t)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateKeyError(err) {
			return brand.ErrDuplicateSettlement
		}
		return fmt.Errorf("failed to create balance transaction: %w", err)
	}

	return t.SetID(model.ID)
}

func (r *BalanceTransactionRepository) GetBySettlementID(ctx context.Context, settlementID string) (*brand.BalanceTransaction, error) {
	var model models.BalanceTransactionModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("settlement_id = ?", settlementID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("balance transaction not found")
		}
		return nil, fmt.Errorf("failed to get balance transaction: %w", err)
	}

	return mappers.BalanceTransactionToDomain(&model), nil
}

func (r *BalanceTransactionRepository) ListByBrandID(ctx context.Context, brandID uint, page, pageSize int) ([]*brand.BalanceTransaction, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.BalanceTransactionModel{}).
		Where("brand_id = ?", brandID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count balance transactions: %w", err)
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var rows []models.BalanceTransactionModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list balance transactions: %w", err)
	}

	txs := make([]*brand.BalanceTransaction, 0, len(rows))
	for i := range rows {
		txs = append(txs, mappers.BalanceTransactionToDomain(&rows[i]))
	}

	return txs, total, nil
}

// isDuplicateKeyError detects unique constraint violations across the
// supported drivers (MySQL error 1062, SQLite "UNIQUE constraint failed").
func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}
