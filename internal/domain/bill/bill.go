package bill

import (
	"fmt"
	"time"

	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
)

// Bill is the aggregate root of the billing/content lifecycle. A bill
// belongs to exactly one customer and one brand for its whole life, and all
// status-affecting writes go through the guarded transition methods below.
type Bill struct {
	id         uint
	sid        string
	billNo     string
	customerID uint
	brandID    uint

	paymentType      vo.PaymentType
	amount           vo.Money
	paymentStatus    vo.PaymentStatus
	gatewayOrderID   *string
	gatewayPaymentID *string
	gatewaySignature *string

	contentType     *vo.ContentType
	contentURL      *string
	instaContentURL *string
	billURL         *string

	status          vo.BillStatus
	brandStatusDate *time.Time

	engagement    vo.Engagement
	metaFetchedAt *time.Time

	refundStatus    vo.RefundStatus
	refundClaimDate *time.Time
	refundAmount    *vo.Money
	refundDate      *time.Time

	brandRefundStatus vo.RefundStatus
	brandRefundDate   *time.Time

	deletedAt    *time.Time
	lastActiveAt time.Time
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

// NewBill creates a bill in upload_content status. For pay-now bills the
// gateway order reference is attached after order creation and the bill
// stays payment-pending until the gateway callback verifies it.
func NewBill(customerID, brandID uint, sid string, paymentType vo.PaymentType, amount vo.Money, billURL string) (*Bill, error) {
	if customerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if brandID == 0 {
		return nil, fmt.Errorf("brand ID is required")
	}
	if sid == "" {
		return nil, fmt.Errorf("bill SID is required")
	}
	if !paymentType.IsValid() {
		return nil, fmt.Errorf("invalid payment type: %s", paymentType)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("bill amount must be positive")
	}

	now := time.Now().UTC()
	b := &Bill{
		sid:               sid,
		customerID:        customerID,
		brandID:           brandID,
		paymentType:       paymentType,
		amount:            amount,
		paymentStatus:     vo.PaymentStatusPending,
		status:            vo.StatusUploadContent,
		refundStatus:      vo.RefundStatusPending,
		brandRefundStatus: vo.RefundStatusPending,
		lastActiveAt:      now,
		version:           1,
		createdAt:         now,
		updatedAt:         now,
	}

	if billURL != "" {
		b.billURL = &billURL
	}

	return b, nil
}

// BillReconstructParams carries every persisted field for rebuilding a bill
// from storage.
type BillReconstructParams struct {
	ID               uint
	SID              string
	BillNo           string
	CustomerID       uint
	BrandID          uint
	PaymentType      vo.PaymentType
	Amount           vo.Money
	PaymentStatus    vo.PaymentStatus
	GatewayOrderID   *string
	GatewayPaymentID *string
	GatewaySignature *string
	ContentType      *vo.ContentType
	ContentURL       *string
	InstaContentURL  *string
	BillURL          *string
	Status           vo.BillStatus
	BrandStatusDate  *time.Time
	Engagement       vo.Engagement
	MetaFetchedAt    *time.Time
	RefundStatus     vo.RefundStatus
	RefundClaimDate  *time.Time
	RefundAmount     *vo.Money
	RefundDate       *time.Time
	BrandRefundStatus vo.RefundStatus
	BrandRefundDate  *time.Time
	DeletedAt        *time.Time
	LastActiveAt     time.Time
	Version          int
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// ReconstructBill rebuilds a bill from persistence.
func ReconstructBill(p BillReconstructParams) (*Bill, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("bill ID cannot be zero")
	}
	if p.CustomerID == 0 {
		return nil, fmt.Errorf("customer ID is required")
	}
	if p.BrandID == 0 {
		return nil, fmt.Errorf("brand ID is required")
	}
	if !vo.ValidStatuses[p.Status] {
		return nil, fmt.Errorf("invalid bill status: %s", p.Status)
	}
	if !p.PaymentType.IsValid() {
		return nil, fmt.Errorf("invalid payment type: %s", p.PaymentType)
	}
	if !p.PaymentStatus.IsValid() {
		return nil, fmt.Errorf("invalid payment status: %s", p.PaymentStatus)
	}
	if !p.RefundStatus.IsValid() || !p.BrandRefundStatus.IsValid() {
		return nil, fmt.Errorf("invalid refund status")
	}

	return &Bill{
		id:                p.ID,
		sid:               p.SID,
		billNo:            p.BillNo,
		customerID:        p.CustomerID,
		brandID:           p.BrandID,
		paymentType:       p.PaymentType,
		amount:            p.Amount,
		paymentStatus:     p.PaymentStatus,
		gatewayOrderID:    p.GatewayOrderID,
		gatewayPaymentID:  p.GatewayPaymentID,
		gatewaySignature:  p.GatewaySignature,
		contentType:       p.ContentType,
		contentURL:        p.ContentURL,
		instaContentURL:   p.InstaContentURL,
		billURL:           p.BillURL,
		status:            p.Status,
		brandStatusDate:   p.BrandStatusDate,
		engagement:        p.Engagement,
		metaFetchedAt:     p.MetaFetchedAt,
		refundStatus:      p.RefundStatus,
		refundClaimDate:   p.RefundClaimDate,
		refundAmount:      p.RefundAmount,
		refundDate:        p.RefundDate,
		brandRefundStatus: p.BrandRefundStatus,
		brandRefundDate:   p.BrandRefundDate,
		deletedAt:         p.DeletedAt,
		lastActiveAt:      p.LastActiveAt,
		version:           p.Version,
		createdAt:         p.CreatedAt,
		updatedAt:         p.UpdatedAt,
	}, nil
}

func (b *Bill) ID() uint                     { return b.id }
func (b *Bill) SID() string                  { return b.sid }
func (b *Bill) BillNo() string               { return b.billNo }
func (b *Bill) CustomerID() uint             { return b.customerID }
func (b *Bill) BrandID() uint                { return b.brandID }
func (b *Bill) PaymentType() vo.PaymentType  { return b.paymentType }
func (b *Bill) Amount() vo.Money             { return b.amount }
func (b *Bill) PaymentStatus() vo.PaymentStatus { return b.paymentStatus }
func (b *Bill) GatewayOrderID() *string      { return b.gatewayOrderID }
func (b *Bill) GatewayPaymentID() *string    { return b.gatewayPaymentID }
func (b *Bill) GatewaySignature() *string    { return b.gatewaySignature }
func (b *Bill) ContentType() *vo.ContentType { return b.contentType }
func (b *Bill) ContentURL() *string          { return b.contentURL }
func (b *Bill) InstaContentURL() *string     { return b.instaContentURL }
func (b *Bill) BillURL() *string             { return b.billURL }
func (b *Bill) Status() vo.BillStatus        { return b.status }
func (b *Bill) BrandStatusDate() *time.Time  { return b.brandStatusDate }
func (b *Bill) Engagement() vo.Engagement    { return b.engagement }
func (b *Bill) MetaFetchedAt() *time.Time    { return b.metaFetchedAt }
func (b *Bill) RefundStatus() vo.RefundStatus { return b.refundStatus }
func (b *Bill) RefundClaimDate() *time.Time  { return b.refundClaimDate }
func (b *Bill) RefundAmount() *vo.Money      { return b.refundAmount }
func (b *Bill) RefundDate() *time.Time       { return b.refundDate }
func (b *Bill) BrandRefundStatus() vo.RefundStatus { return b.brandRefundStatus }
func (b *Bill) BrandRefundDate() *time.Time  { return b.brandRefundDate }
func (b *Bill) DeletedAt() *time.Time        { return b.deletedAt }
func (b *Bill) LastActiveAt() time.Time      { return b.lastActiveAt }
func (b *Bill) Version() int                 { return b.version }
func (b *Bill) CreatedAt() time.Time         { return b.createdAt }
func (b *Bill) UpdatedAt() time.Time         { return b.updatedAt }

// SetID sets the bill ID (only for persistence layer use)
func (b *Bill) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("bill ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("bill ID cannot be zero")
	}
	b.id = id
	return nil
}

// SetBillNo records the receipt number of an uploaded bill.
func (b *Bill) SetBillNo(billNo string) {
	if billNo == "" || b.billNo == billNo {
		return
	}
	b.billNo = billNo
	b.touch()
}

func (b *Bill) IsDeleted() bool {
	return b.deletedAt != nil
}

// AttachGatewayOrder records the gateway order reference created for a
// pay-now bill.
func (b *Bill) AttachGatewayOrder(orderID string) error {
	if !b.paymentType.RequiresGateway() {
		return fmt.Errorf("bill payment type %s has no gateway order", b.paymentType)
	}
	if orderID == "" {
		return fmt.Errorf("gateway order ID is required")
	}
	b.gatewayOrderID = &orderID
	b.touch()
	return nil
}

// VerifyPayment marks a pay-now bill's payment as verified after the
// gateway signature check passed. Verification is idempotent.
func (b *Bill) VerifyPayment(paymentID, signature string) error {
	if !b.paymentType.RequiresGateway() {
		return fmt.Errorf("bill payment type %s does not use the payment gateway", b.paymentType)
	}
	if b.paymentStatus == vo.PaymentStatusVerified {
		return nil
	}
	if paymentID == "" || signature == "" {
		return fmt.Errorf("payment ID and signature are required")
	}

	b.gatewayPaymentID = &paymentID
	b.gatewaySignature = &signature
	b.paymentStatus = vo.PaymentStatusVerified
	b.touch()
	return nil
}

// FailPayment marks the gateway payment as failed. A failed payment keeps
// the bill in upload_content; content can never be submitted against it.
func (b *Bill) FailPayment() error {
	if !b.paymentType.RequiresGateway() {
		return fmt.Errorf("bill payment type %s does not use the payment gateway", b.paymentType)
	}
	if b.paymentStatus == vo.PaymentStatusVerified {
		return ErrPaymentAlreadyVerified
	}
	b.paymentStatus = vo.PaymentStatusFailed
	b.touch()
	return nil
}

// SubmitContent transitions upload_content -> pending_for_approval and
// records the submitted content. Pay-now bills must have a verified payment
// first.
func (b *Bill) SubmitContent(contentType vo.ContentType, contentURL, instaContentURL string) error {
	if b.status != vo.StatusUploadContent {
		return ErrInvalidTransition(b.status.String(), vo.StatusPendingApproval.String())
	}
	if !b.status.CanTransitionTo(vo.StatusPendingApproval) {
		return ErrInvalidTransition(b.status.String(), vo.StatusPendingApproval.String())
	}
	if b.paymentType.RequiresGateway() && b.paymentStatus != vo.PaymentStatusVerified {
		return ErrPaymentNotVerified
	}
	if !contentType.IsValid() {
		return fmt.Errorf("invalid content type: %s", contentType)
	}
	if contentURL == "" {
		return fmt.Errorf("content URL is required")
	}

	b.contentType = &contentType
	b.contentURL = &contentURL
	if instaContentURL != "" {
		b.instaContentURL = &instaContentURL
	}
	b.status = vo.StatusPendingApproval
	b.lastActiveAt = time.Now().UTC()
	b.touch()
	return nil
}

// UpdateContentURL lets the customer fix the submitted URLs while the bill
// is still awaiting the brand decision.
func (b *Bill) UpdateContentURL(contentURL, instaContentURL string) error {
	if b.status != vo.StatusPendingApproval {
		return fmt.Errorf("%w: content can only be updated while pending approval", ErrInvalidStatusTransition)
	}
	if contentURL != "" {
		b.contentURL = &contentURL
	}
	if instaContentURL != "" {
		b.instaContentURL = &instaContentURL
	}
	b.lastActiveAt = time.Now().UTC()
	b.touch()
	return nil
}

// Decide applies the brand's approve/reject decision. Approved and rejected
// are terminal for the primary status.
func (b *Bill) Decide(decision vo.BillStatus, decidedAt time.Time) error {
	if decision != vo.StatusApproved && decision != vo.StatusRejected {
		return fmt.Errorf("invalid decision: %s", decision)
	}
	if !b.status.CanTransitionTo(decision) {
		return ErrInvalidTransition(b.status.String(), decision.String())
	}

	b.status = decision
	decidedAt = decidedAt.UTC()
	b.brandStatusDate = &decidedAt
	b.touch()
	return nil
}

// ClaimRefund opens the customer refund sub-machine on an approved bill.
// The claim must land on or before the window deadline and may not exceed
// the policy cap. A second claim is rejected.
func (b *Bill) ClaimRefund(amount vo.Money, claimDate, windowDeadline time.Time, maxRefund vo.Money) error {
	if b.status != vo.StatusApproved {
		return ErrRequiresStatus("refund claim", vo.StatusApproved.String(), b.status.String())
	}
	if b.refundStatus != vo.RefundStatusPending {
		return ErrRefundAlreadyClaimed
	}
	if !amount.IsPositive() {
		return fmt.Errorf("refund amount must be positive")
	}
	if claimDate.After(windowDeadline) {
		return ErrRefundWindowExpired
	}
	if amount.GreaterThan(maxRefund) {
		return ErrRefundAmountExceedsLimit
	}
	if !b.refundStatus.CanTransitionTo(vo.RefundStatusProcessing) {
		return ErrInvalidTransition(b.refundStatus.String(), vo.RefundStatusProcessing.String())
	}

	claimDate = claimDate.UTC()
	b.refundClaimDate = &claimDate
	b.refundAmount = &amount
	b.refundStatus = vo.RefundStatusProcessing
	b.lastActiveAt = time.Now().UTC()
	b.touch()
	return nil
}

// SettleCustomerRefund closes the customer refund with a terminal outcome.
func (b *Bill) SettleCustomerRefund(outcome vo.RefundStatus, refundDate time.Time) error {
	if !outcome.IsSettled() {
		return fmt.Errorf("invalid refund outcome: %s", outcome)
	}
	if !b.refundStatus.CanTransitionTo(outcome) {
		return ErrInvalidTransition(b.refundStatus.String(), outcome.String())
	}

	refundDate = refundDate.UTC()
	b.refundDate = &refundDate
	b.refundStatus = outcome
	b.touch()
	return nil
}

// SettleBrandRefund records the brand-side settlement outcome. It runs
// independently of the customer refund settlement, but never before a claim
// exists, and the settlement date is always recorded with the outcome.
func (b *Bill) SettleBrandRefund(outcome vo.RefundStatus, settledAt time.Time) error {
	if !outcome.IsSettled() {
		return fmt.Errorf("invalid brand refund outcome: %s", outcome)
	}
	if b.refundClaimDate == nil {
		return ErrRefundNotClaimed
	}
	if b.brandRefundStatus.IsSettled() {
		return ErrBrandRefundAlreadySettled
	}

	settledAt = settledAt.UTC()
	b.brandRefundDate = &settledAt
	b.brandRefundStatus = outcome
	b.touch()
	return nil
}

// RecordEngagement folds a successful metadata fetch into the stored
// snapshot. Counters only move forward; metaFetchedAt records the fetch
// date. Failed fetches must not call this; the aggregate stays untouched.
func (b *Bill) RecordEngagement(fresh vo.Engagement, fetchedAt time.Time) {
	b.engagement = b.engagement.MergeMonotonic(fresh)
	fetchedAt = fetchedAt.UTC()
	b.metaFetchedAt = &fetchedAt
	b.touch()
}

// SoftDelete hides the bill from all lifecycle operations. Bills are never
// hard-deleted.
func (b *Bill) SoftDelete(at time.Time) {
	if b.deletedAt != nil {
		return
	}
	at = at.UTC()
	b.deletedAt = &at
	b.touch()
}

func (b *Bill) touch() {
	b.updatedAt = time.Now().UTC()
	b.version++
}
