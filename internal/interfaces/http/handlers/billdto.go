package handlers

import (
	"time"

	"github.com/tagcash-inc/tagcash/internal/domain/bill"
)

// BillResponse is the wire representation of a bill.
type BillResponse struct {
	ID         uint   `json:"id"`
	SID        string `json:"sid"`
	BillNo     string `json:"bill_no,omitempty"`
	CustomerID uint   `json:"customer_id"`
	BrandID    uint   `json:"brand_id"`

	PaymentType    string  `json:"payment_type"`
	AmountCents    int64   `json:"amount_cents"`
	Currency       string  `json:"currency"`
	PaymentStatus  string  `json:"payment_status"`
	GatewayOrderID *string `json:"gateway_order_id,omitempty"`

	ContentType     *string `json:"content_type,omitempty"`
	ContentURL      *string `json:"content_url,omitempty"`
	InstaContentURL *string `json:"insta_content_url,omitempty"`
	BillURL         *string `json:"bill_url,omitempty"`

	Status          string     `json:"status"`
	BrandStatusDate *time.Time `json:"brand_status_date,omitempty"`

	Likes         uint64     `json:"likes"`
	Comments      uint64     `json:"comments"`
	Views         uint64     `json:"views"`
	MetaFetchedAt *time.Time `json:"meta_fetched_at,omitempty"`

	RefundStatus      string     `json:"refund_status"`
	RefundClaimDate   *time.Time `json:"refund_claim_date,omitempty"`
	RefundAmountCents *int64     `json:"refund_amount_cents,omitempty"`
	RefundDate        *time.Time `json:"refund_date,omitempty"`
	BrandRefundStatus string     `json:"brand_refund_status"`
	BrandRefundDate   *time.Time `json:"brand_refund_date,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toBillResponse(b *bill.Bill) BillResponse {
	resp := BillResponse{
		ID:                b.ID(),
		SID:               b.SID(),
		BillNo:            b.BillNo(),
		CustomerID:        b.CustomerID(),
		BrandID:           b.BrandID(),
		PaymentType:       string(b.PaymentType()),
		AmountCents:       b.Amount().AmountCents(),
		Currency:          b.Amount().Currency(),
		PaymentStatus:     string(b.PaymentStatus()),
		GatewayOrderID:    b.GatewayOrderID(),
		ContentURL:        b.ContentURL(),
		InstaContentURL:   b.InstaContentURL(),
		BillURL:           b.BillURL(),
		Status:            string(b.Status()),
		BrandStatusDate:   b.BrandStatusDate(),
		Likes:             b.Engagement().Likes(),
		Comments:          b.Engagement().Comments(),
		Views:             b.Engagement().Views(),
		MetaFetchedAt:     b.MetaFetchedAt(),
		RefundStatus:      string(b.RefundStatus()),
		RefundClaimDate:   b.RefundClaimDate(),
		RefundDate:        b.RefundDate(),
		BrandRefundStatus: string(b.BrandRefundStatus()),
		BrandRefundDate:   b.BrandRefundDate(),
		CreatedAt:         b.CreatedAt(),
		UpdatedAt:         b.UpdatedAt(),
	}

	if ct := b.ContentType(); ct != nil {
		s := string(*ct)
		resp.ContentType = &s
	}
	if amt := b.RefundAmount(); amt != nil {
		cents := amt.AmountCents()
		resp.RefundAmountCents = &cents
	}

	return resp
}

func toBillResponses(bills []*bill.Bill) []BillResponse {
	responses := make([]BillResponse, 0, len(bills))
	for _, b := range bills {
		responses = append(responses, toBillResponse(b))
	}
	return responses
}
