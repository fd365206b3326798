package mappers

import (
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/infrastructure/persistence/models"
)

func BillToModel(b *bill.Bill) *models.BillModel {
	model := &models.BillModel{
		ID:               b.ID(),
		SID:              b.SID(),
		BillNo:           b.BillNo(),
		CustomerID:       b.CustomerID(),
		BrandID:          b.BrandID(),
		PaymentType:      b.PaymentType().String(),
		AmountCents:      b.Amount().AmountCents(),
		Currency:         b.Amount().Currency(),
		PaymentStatus:    b.PaymentStatus().String(),
		GatewayOrderID:   b.GatewayOrderID(),
		GatewayPaymentID: b.GatewayPaymentID(),
		GatewaySignature: b.GatewaySignature(),
		ContentURL:       b.ContentURL(),
		InstaContentURL:  b.InstaContentURL(),
		BillURL:          b.BillURL(),
		Status:           b.Status().String(),
		BrandStatusDate:  b.BrandStatusDate(),
		Likes:            b.Engagement().Likes(),
		Comments:         b.Engagement().Comments(),
		Views:            b.Engagement().Views(),
		MetaFetchedAt:    b.MetaFetchedAt(),
		RefundStatus:     b.RefundStatus().String(),
		RefundClaimDate:  b.RefundClaimDate(),
		RefundDate:       b.RefundDate(),
		BrandRefundStatus: b.BrandRefundStatus().String(),
		BrandRefundDate:  b.BrandRefundDate(),
		DeletedAt:        b.DeletedAt(),
		LastActiveAt:     b.LastActiveAt(),
		Version:          b.Version(),
		CreatedAt:        b.CreatedAt(),
		UpdatedAt:        b.UpdatedAt(),
	}

	if ct := b.ContentType(); ct != nil {
		s := ct.String()
		model.ContentType = &s
	}
	if ra := b.RefundAmount(); ra != nil {
		cents := ra.AmountCents()
		model.RefundAmountCents = &cents
	}

	return model
}

func BillToDomain(model *models.BillModel) (*bill.Bill, error) {
	params := bill.BillReconstructParams{
		ID:                model.ID,
		SID:               model.SID,
		BillNo:            model.BillNo,
		CustomerID:        model.CustomerID,
		BrandID:           model.BrandID,
		PaymentType:       vo.PaymentType(model.PaymentType),
		Amount:            vo.NewMoney(model.AmountCents, model.Currency),
		PaymentStatus:     vo.PaymentStatus(model.PaymentStatus),
		GatewayOrderID:    model.GatewayOrderID,
		GatewayPaymentID:  model.GatewayPaymentID,
		GatewaySignature:  model.GatewaySignature,
		ContentURL:        model.ContentURL,
		InstaContentURL:   model.InstaContentURL,
		BillURL:           model.BillURL,
		Status:            vo.BillStatus(model.Status),
		BrandStatusDate:   model.BrandStatusDate,
		Engagement:        vo.ReconstructEngagement(model.Likes, model.Comments, model.Views),
		MetaFetchedAt:     model.MetaFetchedAt,
		RefundStatus:      vo.RefundStatus(model.RefundStatus),
		RefundClaimDate:   model.RefundClaimDate,
		RefundDate:        model.RefundDate,
		BrandRefundStatus: vo.RefundStatus(model.BrandRefundStatus),
		BrandRefundDate:   model.BrandRefundDate,
		DeletedAt:         model.DeletedAt,
		LastActiveAt:      model.LastActiveAt,
		Version:           model.Version,
		CreatedAt:         model.CreatedAt,
		UpdatedAt:         model.UpdatedAt,
	}

	if model.ContentType != nil {
		ct, err := vo.NewContentType(*model.ContentType)
		if err != nil {
			return nil, fmt.Errorf("invalid content type: %w", err)
		}
		params.ContentType = &ct
	}
	if model.RefundAmountCents != nil {
		amount := vo.NewMoney(*model.RefundAmountCents, model.Currency)
		params.RefundAmount = &amount
	}

	return bill.ReconstructBill(params)
}
