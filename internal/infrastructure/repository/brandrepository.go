package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/mappers"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/models"
	"github.com/tagcash-inc/tagcash/internal/shared/db"
)

type BrandRepository struct {
	db *gorm.DB
}

func NewBrandRepository(db *gorm.DB) *BrandRepository {
	return &BrandRepository{db: db}
}

func (r *BrandRepository) Create(ctx context.Context, b *brand.Brand) error {
	model := mappers.BrandToModel(b)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create brand: %w", err)
	}

	return b.SetID(model.ID)
}

// Update conditionally writes the brand row, guarding balance mutations
// against concurrent settlements the same way bills are guarded.
func (r *BrandRepository) Update(ctx context.Context, b *brand.Brand) error {
	model := mappers.BrandToModel(b)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BrandModel{}).
		Where("id = ? AND version < ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"name":                      model.Name,
			"password_hash":             model.PasswordHash,
			"balance_cents":             model.BalanceCents,
			"refund_days":               model.RefundDays,
			"refund_percentage":         model.RefundPercentage,
			"up_to_refund_amount_cents": model.UpToRefundAmountCents,
			"active":                    model.Active,
			"version":                   model.Version,
			"updated_at":                model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("brand %d was modified concurrently", model.ID)
	}

	return nil
}

func (r *BrandRepository) GetByID(ctx context.Context, id uint) (*brand.Brand, error) {
	var model models.BrandModel

	if err := db.GetTxFromContext(ctx, r.db).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, brand.ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to get brand: %w", err)
	}

	return mappers.BrandToDomain(&model)
}

func (r *BrandRepository) GetBySID(ctx context.Context, sid string) (*brand.Brand, error) {
	var model models.BrandModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, brand.ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to get brand by sid: %w", err)
	}

	return mappers.BrandToDomain(&model)
}

func (r *BrandRepository) GetByEmail(ctx context.Context, email string) (*brand.Brand, error) {
	var model models.BrandModel

	if err := db.GetTxFromContext(ctx, r.db).
		Where("email = ?", email).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, brand.ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to get brand by email: %w", err)
	}

	return mappers.BrandToDomain(&model)
}
