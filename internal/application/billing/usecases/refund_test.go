package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
)

func TestClaimRefundWithinWindow(t *testing.T) {
	billRepo := newStubBillRepo()
	brandRepo := newStubBrandRepo()
	seedBrand(t, brandRepo, 1)
	b := seedApprovedBill(t, billRepo, 2, 1)

	uc := NewClaimRefundUseCase(billRepo, brandRepo, testLogger())
	result, err := uc.Execute(context.Background(), ClaimRefundCommand{
		BillID:      b.ID(),
		CustomerID:  2,
		AmountCents: 10000,
	})
	require.NoError(t, err)

	assert.Equal(t, vo.RefundStatusProcessing, result.Bill.RefundStatus())
	assert.NotNil(t, result.Bill.RefundClaimDate())
	assert.False(t, result.WindowDeadline.IsZero())
}

func TestClaimRefundOverPolicyCap(t *testing.T) {
	billRepo := newStubBillRepo()
	brandRepo := newStubBrandRepo()
	// Policy: 30% of 50000 is 15000, and the absolute cap is also 15000.
	seedBrand(t, brandRepo, 1)
	b := seedApprovedBill(t, billRepo, 2, 1)

	uc := NewClaimRefundUseCase(billRepo, brandRepo, testLogger())
	_, err := uc.Execute(context.Background(), ClaimRefundCommand{
		BillID:      b.ID(),
		CustomerID:  2,
		AmountCents: 15001,
	})
	assert.ErrorIs(t, err, bill.ErrRefundAmountExceedsLimit)
}

func TestClaimRefundBrandWithoutRefunds(t *testing.T) {
	billRepo := newStubBillRepo()
	brandRepo := newStubBrandRepo()
	br := seedBrand(t, brandRepo, 1)
	noRefunds, err := brand.NewRefundPolicy(7, 0, 0)
	require.NoError(t, err)
	br.UpdateRefundPolicy(noRefunds)
	b := seedApprovedBill(t, billRepo, 2, 1)

	uc := NewClaimRefundUseCase(billRepo, brandRepo, testLogger())
	_, err = uc.Execute(context.Background(), ClaimRefundCommand{
		BillID:      b.ID(),
		CustomerID:  2,
		AmountCents: 1000,
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInvalidState, appErr.Type)
}

func TestClaimRefundMissingBillNotFound(t *testing.T) {
	uc := NewClaimRefundUseCase(newStubBillRepo(), newStubBrandRepo(), testLogger())
	_, err := uc.Execute(context.Background(), ClaimRefundCommand{
		BillID:      404,
		CustomerID:  2,
		AmountCents: 1000,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, bill.ErrBillNotFound)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeNotFound, appErr.Type)
}

func TestClaimRefundAfterWindowExpired(t *testing.T) {
	billRepo := newStubBillRepo()
	brandRepo := newStubBrandRepo()
	seedBrand(t, brandRepo, 1) // 7 refund days
	b := seedBill(t, billRepo, 2, 1, vo.PaymentTypeUploadBill)
	require.NoError(t, b.SubmitContent(vo.ContentTypePost, "https://instagram.com/p/abc", ""))
	require.NoError(t, b.Decide(vo.StatusApproved, time.Now().UTC().AddDate(0, 0, -30)))

	uc := NewClaimRefundUseCase(billRepo, brandRepo, testLogger())
	_, err := uc.Execute(context.Background(), ClaimRefundCommand{
		BillID:      b.ID(),
		CustomerID:  2,
		AmountCents: 1000,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, bill.ErrRefundWindowExpired)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeRefundWindowExpired, appErr.Type)
}

func TestClaimRefundOnUndecidedBill(t *testing.T) {
	billRepo := newStubBillRepo()
	brandRepo := newStubBrandRepo()
	seedBrand(t, brandRepo, 1)
	b := seedBill(t, billRepo, 2, 1, vo.PaymentTypeUploadBill)

	uc := NewClaimRefundUseCase(billRepo, brandRepo, testLogger())
	_, err := uc.Execute(context.Background(), ClaimRefundCommand{
		BillID:      b.ID(),
		CustomerID:  2,
		AmountCents: 1000,
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, bill.ErrInvalidStatusTransition)
	assert.Contains(t, err.Error(), "requires status approved")
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInvalidState, appErr.Type)
}

func claimedBillFixture(t *testing.T) (*stubBillRepo, *stubBrandRepo, *bill.Bill) {
	t.Helper()
	billRepo := newStubBillRepo()
	brandRepo := newStubBrandRepo()
	seedBrand(t, brandRepo, 1)
	b := seedApprovedBill(t, billRepo, 2, 1)

	uc := NewClaimRefundUseCase(billRepo, brandRepo, testLogger())
	_, err := uc.Execute(context.Background(), ClaimRefundCommand{
		BillID:      b.ID(),
		CustomerID:  2,
		AmountCents: 10000,
	})
	require.NoError(t, err)
	return billRepo, brandRepo, b
}

func TestSettleCustomerRefund(t *testing.T) {
	billRepo, _, b := claimedBillFixture(t)
	customerRepo := newStubCustomerRepo()
	seedCustomer(t, customerRepo, 2)
	sender := &stubSender{}

	uc := NewSettleCustomerRefundUseCase(billRepo, customerRepo, sender, testLogger())
	result, err := uc.Execute(context.Background(), SettleCustomerRefundCommand{
		BillID:  b.ID(),
		Outcome: "success",
	})
	require.NoError(t, err)

	assert.Equal(t, vo.RefundStatusSuccess, result.Bill.RefundStatus())
	assert.NotNil(t, result.Bill.RefundDate())
	assert.Len(t, sender.sent, 1)
}

func TestSettleCustomerRefundInvalidOutcome(t *testing.T) {
	billRepo, _, b := claimedBillFixture(t)
	customerRepo := newStubCustomerRepo()

	uc := NewSettleCustomerRefundUseCase(billRepo, customerRepo, &stubSender{}, testLogger())
	_, err := uc.Execute(context.Background(), SettleCustomerRefundCommand{
		BillID:  b.ID(),
		Outcome: "pending",
	})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
}

func TestSettleBrandRefundDebitsBrandAndWritesLedger(t *testing.T) {
	billRepo, brandRepo, b := claimedBillFixture(t)
	balanceTxRepo := newStubBalanceTxRepo()

	uc := NewSettleBrandRefundUseCase(billRepo, brandRepo, balanceTxRepo, passTxRunner{},
		BrandSettlementConfig{Direction: SettlementDebitBrand}, testLogger())
	result, err := uc.Execute(context.Background(), SettleBrandRefundCommand{
		BillID:  b.ID(),
		Outcome: "success",
	})
	require.NoError(t, err)

	assert.Equal(t, vo.RefundStatusSuccess, result.Bill.BrandRefundStatus())
	assert.NotNil(t, result.Bill.BrandRefundDate())
	assert.NotEmpty(t, result.SettlementID)

	br, err := brandRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), br.BalanceCents())

	row, err := balanceTxRepo.GetBySettlementID(context.Background(), result.SettlementID)
	require.NoError(t, err)
	assert.Equal(t, brand.DirectionDebit, row.Direction())
	assert.Equal(t, int64(10000), row.AmountCents())
}

func TestSettleBrandRefundFailedOutcomeMovesNoBalance(t *testing.T) {
	billRepo, brandRepo, b := claimedBillFixture(t)
	balanceTxRepo := newStubBalanceTxRepo()

	uc := NewSettleBrandRefundUseCase(billRepo, brandRepo, balanceTxRepo, passTxRunner{},
		BrandSettlementConfig{Direction: SettlementDebitBrand}, testLogger())
	result, err := uc.Execute(context.Background(), SettleBrandRefundCommand{
		BillID:  b.ID(),
		Outcome: "failed",
	})
	require.NoError(t, err)

	assert.Equal(t, vo.RefundStatusFailed, result.Bill.BrandRefundStatus())
	assert.Empty(t, result.SettlementID)

	br, err := brandRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(100000), br.BalanceCents())
	assert.Empty(t, balanceTxRepo.rows)
}

func TestSettleBrandRefundRetryIsIdempotent(t *testing.T) {
	billRepo, brandRepo, b := claimedBillFixture(t)
	balanceTxRepo := newStubBalanceTxRepo()

	uc := NewSettleBrandRefundUseCase(billRepo, brandRepo, balanceTxRepo, passTxRunner{},
		BrandSettlementConfig{Direction: SettlementDebitBrand}, testLogger())
	first, err := uc.Execute(context.Background(), SettleBrandRefundCommand{BillID: b.ID(), Outcome: "success"})
	require.NoError(t, err)

	// A retry with the same outcome reports the settlement that already
	// landed instead of failing.
	second, err := uc.Execute(context.Background(), SettleBrandRefundCommand{BillID: b.ID(), Outcome: "success"})
	require.NoError(t, err)
	assert.Equal(t, first.SettlementID, second.SettlementID)
	assert.Equal(t, vo.RefundStatusSuccess, second.Bill.BrandRefundStatus())

	// Balance moved exactly once.
	br, err := brandRepo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(90000), br.BalanceCents())
	assert.Len(t, balanceTxRepo.rows, 1)
}

func TestSettleBrandRefundConflictingOutcomeRejected(t *testing.T) {
	billRepo, brandRepo, b := claimedBillFixture(t)

	uc := NewSettleBrandRefundUseCase(billRepo, brandRepo, newStubBalanceTxRepo(), passTxRunner{},
		BrandSettlementConfig{Direction: SettlementDebitBrand}, testLogger())
	_, err := uc.Execute(context.Background(), SettleBrandRefundCommand{BillID: b.ID(), Outcome: "success"})
	require.NoError(t, err)

	_, err = uc.Execute(context.Background(), SettleBrandRefundCommand{BillID: b.ID(), Outcome: "failed"})
	require.Error(t, err)
	assert.ErrorIs(t, err, bill.ErrBrandRefundAlreadySettled)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeConflict, appErr.Type)
}

func TestSettleBrandRefundInsufficientBalance(t *testing.T) {
	billRepo := newStubBillRepo()
	brandRepo := newStubBrandRepo()
	br := seedBrand(t, brandRepo, 1)
	require.NoError(t, br.Debit(95000)) // leaves 5000, refund claim is 10000
	b := seedApprovedBill(t, billRepo, 2, 1)

	claim := NewClaimRefundUseCase(billRepo, brandRepo, testLogger())
	_, err := claim.Execute(context.Background(), ClaimRefundCommand{BillID: b.ID(), CustomerID: 2, AmountCents: 10000})
	require.NoError(t, err)

	uc := NewSettleBrandRefundUseCase(billRepo, brandRepo, newStubBalanceTxRepo(), passTxRunner{},
		BrandSettlementConfig{Direction: SettlementDebitBrand}, testLogger())
	_, err = uc.Execute(context.Background(), SettleBrandRefundCommand{BillID: b.ID(), Outcome: "success"})
	assert.ErrorIs(t, err, brand.ErrInsufficientBalance)
}

func TestSettleBrandRefundBeforeClaimRejected(t *testing.T) {
	billRepo := newStubBillRepo()
	brandRepo := newStubBrandRepo()
	seedBrand(t, brandRepo, 1)
	b := seedApprovedBill(t, billRepo, 2, 1)

	uc := NewSettleBrandRefundUseCase(billRepo, brandRepo, newStubBalanceTxRepo(), passTxRunner{},
		BrandSettlementConfig{Direction: SettlementDebitBrand}, testLogger())
	_, err := uc.Execute(context.Background(), SettleBrandRefundCommand{BillID: b.ID(), Outcome: "success"})
	assert.ErrorIs(t, err, bill.ErrRefundNotClaimed)
}

func TestRefreshEngagementFetchesAndStores(t *testing.T) {
	billRepo := newStubBillRepo()
	b := seedBill(t, billRepo, 2, 1, vo.PaymentTypeUploadBill)
	require.NoError(t, b.SubmitContent(vo.ContentTypePost, "https://instagram.com/p/abc", ""))

	fresh, err := vo.NewEngagement(250, 14, 9000)
	require.NoError(t, err)
	fetcher := &stubFetcher{engagement: fresh}
	cache := newStubCache()

	uc := NewRefreshEngagementUseCase(billRepo, fetcher, cache, testLogger())
	result, err := uc.Execute(context.Background(), RefreshEngagementCommand{BillID: b.ID()})
	require.NoError(t, err)

	assert.False(t, result.FromCache)
	assert.Equal(t, uint64(250), result.Bill.Engagement().Likes())
	assert.NotNil(t, result.Bill.MetaFetchedAt())
	assert.Equal(t, 1, fetcher.calls)
	assert.Equal(t, 1, cache.sets)
}

func TestRefreshEngagementFetchesWithInstaURL(t *testing.T) {
	billRepo := newStubBillRepo()
	b := seedBill(t, billRepo, 2, 1, vo.PaymentTypeUploadBill)
	require.NoError(t, b.SubmitContent(vo.ContentTypeReel,
		"https://cdn.example.com/render/abc", "https://instagram.com/reel/xyz"))

	fresh, err := vo.NewEngagement(120, 8, 4000)
	require.NoError(t, err)
	fetcher := &stubFetcher{engagement: fresh}

	uc := NewRefreshEngagementUseCase(billRepo, fetcher, newStubCache(), testLogger())
	_, err = uc.Execute(context.Background(), RefreshEngagementCommand{BillID: b.ID()})
	require.NoError(t, err)

	assert.Equal(t, "https://instagram.com/reel/xyz", fetcher.lastURL)
}

func TestRefreshEngagementFallsBackToContentURL(t *testing.T) {
	billRepo := newStubBillRepo()
	b := seedBill(t, billRepo, 2, 1, vo.PaymentTypeUploadBill)
	require.NoError(t, b.SubmitContent(vo.ContentTypePost, "https://instagram.com/p/abc", ""))

	fresh, err := vo.NewEngagement(120, 8, 4000)
	require.NoError(t, err)
	fetcher := &stubFetcher{engagement: fresh}

	uc := NewRefreshEngagementUseCase(billRepo, fetcher, newStubCache(), testLogger())
	_, err = uc.Execute(context.Background(), RefreshEngagementCommand{BillID: b.ID()})
	require.NoError(t, err)

	assert.Equal(t, "https://instagram.com/p/abc", fetcher.lastURL)
}

func TestRefreshEngagementServedFromCache(t *testing.T) {
	billRepo := newStubBillRepo()
	b := seedBill(t, billRepo, 2, 1, vo.PaymentTypeUploadBill)
	require.NoError(t, b.SubmitContent(vo.ContentTypePost, "https://instagram.com/p/abc", ""))

	cache := newStubCache()
	cache.hits[b.ID()] = vo.ReconstructEngagement(100, 5, 2000)
	fetcher := &stubFetcher{}

	uc := NewRefreshEngagementUseCase(billRepo, fetcher, cache, testLogger())
	result, err := uc.Execute(context.Background(), RefreshEngagementCommand{BillID: b.ID()})
	require.NoError(t, err)

	assert.True(t, result.FromCache)
	assert.Zero(t, fetcher.calls)
}

func TestRefreshEngagementFetchFailureMutatesNothing(t *testing.T) {
	billRepo := newStubBillRepo()
	b := seedBill(t, billRepo, 2, 1, vo.PaymentTypeUploadBill)
	require.NoError(t, b.SubmitContent(vo.ContentTypePost, "https://instagram.com/p/abc", ""))
	first, err := vo.NewEngagement(100, 5, 2000)
	require.NoError(t, err)
	b.RecordEngagement(first, b.LastActiveAt())
	updatesBefore := billRepo.updates

	fetcher := &stubFetcher{err: fmt.Errorf("upstream 503")}
	uc := NewRefreshEngagementUseCase(billRepo, fetcher, newStubCache(), testLogger())
	_, err = uc.Execute(context.Background(), RefreshEngagementCommand{BillID: b.ID()})
	require.Error(t, err)

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeMetadataFetch, appErr.Type)

	stored, err := billRepo.GetByID(context.Background(), b.ID())
	require.NoError(t, err)
	assert.Equal(t, uint64(100), stored.Engagement().Likes())
	assert.Equal(t, updatesBefore, billRepo.updates)
}

func TestRefreshEngagementRequiresSubmittedContent(t *testing.T) {
	billRepo := newStubBillRepo()
	b := seedBill(t, billRepo, 2, 1, vo.PaymentTypeUploadBill)

	uc := NewRefreshEngagementUseCase(billRepo, &stubFetcher{}, newStubCache(), testLogger())
	_, err := uc.Execute(context.Background(), RefreshEngagementCommand{BillID: b.ID()})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeInvalidState, appErr.Type)
}
