package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagcash-inc/tagcash/internal/application/billing/usecases"
	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/interfaces/http/handlers/testutil"
	"github.com/tagcash-inc/tagcash/internal/shared/constants"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
)

type mockClaimRefundUC struct {
	result  *usecases.ClaimRefundResult
	err     error
	lastCmd usecases.ClaimRefundCommand
}

func (m *mockClaimRefundUC) Execute(ctx context.Context, cmd usecases.ClaimRefundCommand) (*usecases.ClaimRefundResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockSettleCustomerRefundUC struct {
	result *usecases.SettleCustomerRefundResult
	err    error
}

func (m *mockSettleCustomerRefundUC) Execute(ctx context.Context, cmd usecases.SettleCustomerRefundCommand) (*usecases.SettleCustomerRefundResult, error) {
	return m.result, m.err
}

type mockSettleBrandRefundUC struct {
	result  *usecases.SettleBrandRefundResult
	err     error
	lastCmd usecases.SettleBrandRefundCommand
}

func (m *mockSettleBrandRefundUC) Execute(ctx context.Context, cmd usecases.SettleBrandRefundCommand) (*usecases.SettleBrandRefundResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

func newClaimedTestBill(t *testing.T) *bill.Bill {
	t.Helper()
	b := newApprovedTestBill(t)
	now := time.Now().UTC()
	require.NoError(t, b.ClaimRefund(vo.NewMoney(10000, "INR"), now, now.Add(24*time.Hour), vo.NewMoney(25000, "INR")))
	return b
}

func newTestRefundHandler(
	claimUC claimRefundUseCase,
	settleCustomerUC settleCustomerRefundUseCase,
	settleBrandUC settleBrandRefundUseCase,
) *RefundHandler {
	return NewRefundHandler(claimUC, settleCustomerUC, settleBrandUC, testutil.NewMockLogger())
}

func TestRefundHandler_ClaimRefund_Success(t *testing.T) {
	claimed := newClaimedTestBill(t)
	deadline := time.Now().UTC().Add(24 * time.Hour)
	mockUC := &mockClaimRefundUC{result: &usecases.ClaimRefundResult{Bill: claimed, WindowDeadline: deadline}}
	handler := newTestRefundHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/bills/7/refund/claim", ClaimRefundRequest{AmountCents: 10000})
	testutil.SetAuthContext(c, 10, constants.RoleCustomer)
	testutil.SetURLParam(c, "id", "7")

	handler.ClaimRefund(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.lastCmd.BillID)
	assert.Equal(t, uint(10), mockUC.lastCmd.CustomerID)
	assert.Equal(t, int64(10000), mockUC.lastCmd.AmountCents)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data ClaimRefundResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "processing", data.Bill.RefundStatus)
	require.NotNil(t, data.Bill.RefundAmountCents)
	assert.Equal(t, int64(10000), *data.Bill.RefundAmountCents)
	assert.WithinDuration(t, deadline, data.WindowDeadline, time.Second)
}

func TestRefundHandler_ClaimRefund_WindowExpired(t *testing.T) {
	mockUC := &mockClaimRefundUC{err: errors.NewRefundWindowExpiredError("refund window has closed")}
	handler := newTestRefundHandler(mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/bills/7/refund/claim", ClaimRefundRequest{AmountCents: 10000})
	testutil.SetAuthContext(c, 10, constants.RoleCustomer)
	testutil.SetURLParam(c, "id", "7")

	handler.ClaimRefund(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "refund_window_expired", resp.Error.Type)
}

func TestRefundHandler_ClaimRefund_NonPositiveAmount(t *testing.T) {
	handler := newTestRefundHandler(&mockClaimRefundUC{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/bills/7/refund/claim", ClaimRefundRequest{AmountCents: 0})
	testutil.SetAuthContext(c, 10, constants.RoleCustomer)
	testutil.SetURLParam(c, "id", "7")

	handler.ClaimRefund(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefundHandler_SettleCustomerRefund_Success(t *testing.T) {
	settled := newClaimedTestBill(t)
	require.NoError(t, settled.SettleCustomerRefund(vo.RefundStatusSuccess, time.Now().UTC()))
	mockUC := &mockSettleCustomerRefundUC{result: &usecases.SettleCustomerRefundResult{Bill: settled}}
	handler := newTestRefundHandler(nil, mockUC, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/bills/7/refund/settle", SettleRefundRequest{Outcome: "success"})
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)
	testutil.SetURLParam(c, "id", "7")

	handler.SettleCustomerRefund(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data BillResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "success", data.RefundStatus)
	assert.NotNil(t, data.RefundDate)
}

func TestRefundHandler_SettleCustomerRefund_InvalidOutcome(t *testing.T) {
	handler := newTestRefundHandler(nil, &mockSettleCustomerRefundUC{}, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/bills/7/refund/settle", SettleRefundRequest{Outcome: "done"})
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)
	testutil.SetURLParam(c, "id", "7")

	handler.SettleCustomerRefund(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRefundHandler_SettleBrandRefund_Success(t *testing.T) {
	settled := newClaimedTestBill(t)
	require.NoError(t, settled.SettleBrandRefund(vo.RefundStatusSuccess, time.Now().UTC()))
	mockUC := &mockSettleBrandRefundUC{result: &usecases.SettleBrandRefundResult{Bill: settled, SettlementID: "stl_handlertest1"}}
	handler := newTestRefundHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/bills/7/refund/settle-brand", SettleRefundRequest{Outcome: "success"})
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)
	testutil.SetURLParam(c, "id", "7")

	handler.SettleBrandRefund(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(7), mockUC.lastCmd.BillID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data SettleBrandRefundResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, "stl_handlertest1", data.SettlementID)
	assert.Equal(t, "success", data.Bill.BrandRefundStatus)
}

func TestRefundHandler_SettleBrandRefund_AlreadySettled(t *testing.T) {
	mockUC := &mockSettleBrandRefundUC{err: errors.NewInvalidStateError("brand refund already settled")}
	handler := newTestRefundHandler(nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodPost, "/bills/7/refund/settle-brand", SettleRefundRequest{Outcome: "failed"})
	testutil.SetAuthContext(c, 1, constants.RoleAdmin)
	testutil.SetURLParam(c, "id", "7")

	handler.SettleBrandRefund(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
