package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/mappers"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/models"
	"github.com/tagcash-inc/tagcash/internal/shared/db"
)

type BillRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) *BillRepository {
	return &BillRepository{db: db}
}

func (r *BillRepository) Create(ctx context.Context, b *bill.Bill) error {
	model := mappers.BillToModel(b)

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create bill: %w", err)
	}

	// Write back the auto-generated ID to the domain object
	return b.SetID(model.ID)
}

// Update is a conditional write: the row is only touched when its stored
// version is older than the aggregate's. Two concurrent transitions loaded
// from the same version cannot both apply; the loser gets
// ErrConcurrentModification.
func (r *BillRepository) Update(ctx context.Context, b *bill.Bill) error {
	model := mappers.BillToModel(b)

	result := db.GetTxFromContext(ctx, r.db).
		Model(&models.BillModel{}).
		Where("id = ? AND version < ?", model.ID, model.Version).
		Updates(map[string]interface{}{
			"bill_no":             model.BillNo,
			"payment_status":      model.PaymentStatus,
			"gateway_order_id":    model.GatewayOrderID,
			"gateway_payment_id":  model.GatewayPaymentID,
			"gateway_signature":   model.GatewaySignature,
			"content_type":        model.ContentType,
			"content_url":         model.ContentURL,
			"insta_content_url":   model.InstaContentURL,
			"status":              model.Status,
			"brand_status_date":   model.BrandStatusDate,
			"likes":               model.Likes,
			"comments":            model.Comments,
			"views":               model.Views,
			"meta_fetched_at":     model.MetaFetchedAt,
			"refund_status":       model.RefundStatus,
			"refund_claim_date":   model.RefundClaimDate,
			"refund_amount_cents": model.RefundAmountCents,
			"refund_date":         model.RefundDate,
			"brand_refund_status": model.BrandRefundStatus,
			"brand_refund_date":   model.BrandRefundDate,
			"deleted_at":          model.DeletedAt,
			"last_active_at":      model.LastActiveAt,
			"version":             model.Version,
			"updated_at":          model.UpdatedAt,
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update bill: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return bill.ErrConcurrentModification
	}

	return nil
}

func (r *BillRepository) GetByID(ctx context.Context, id uint) (*bill.Bill, error) {
	var model models.BillModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bill.ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to get bill: %w", err)
	}

	return mappers.BillToDomain(&model)
}

func (r *BillRepository) GetBySID(ctx context.Context, sid string) (*bill.Bill, error) {
	var model models.BillModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		Where("sid = ?", sid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bill.ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to get bill by sid: %w", err)
	}

	return mappers.BillToDomain(&model)
}

func (r *BillRepository) GetByGatewayOrderID(ctx context.Context, orderID string) (*bill.Bill, error) {
	var model models.BillModel

	if err := db.GetTxFromContext(ctx, r.db).
		Scopes(db.NotDeleted()).
		Where("gateway_order_id = ?", orderID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, bill.ErrBillNotFound
		}
		return nil, fmt.Errorf("failed to get bill by gateway order: %w", err)
	}

	return mappers.BillToDomain(&model)
}

func (r *BillRepository) List(ctx context.Context, filter bill.ListFilter) ([]*bill.Bill, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).
		Model(&models.BillModel{}).
		Scopes(db.NotDeleted())

	if filter.CustomerID != 0 {
		query = query.Where("customer_id = ?", filter.CustomerID)
	}
	if filter.BrandID != 0 {
		query = query.Where("brand_id = ?", filter.BrandID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status.String())
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bills: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var billModels []models.BillModel
	if err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&billModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list bills: %w", err)
	}

	bills := make([]*bill.Bill, 0, len(billModels))
	for i := range billModels {
		b, err := mappers.BillToDomain(&billModels[i])
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map bill %d: %w", billModels[i].ID, err)
		}
		bills = append(bills, b)
	}

	return bills, total, nil
}
