package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagcash-inc/tagcash/internal/application/brand/usecases"
	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/interfaces/http/handlers/testutil"
	"github.com/tagcash-inc/tagcash/internal/shared/constants"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
)

type mockRegisterBrandUC struct {
	result *usecases.RegisterBrandResult
	err    error
}

func (m *mockRegisterBrandUC) Execute(ctx context.Context, cmd usecases.RegisterBrandCommand) (*usecases.RegisterBrandResult, error) {
	return m.result, m.err
}

type mockTopUpUC struct {
	result  *usecases.TopUpResult
	err     error
	lastCmd usecases.TopUpCommand
}

func (m *mockTopUpUC) Execute(ctx context.Context, cmd usecases.TopUpCommand) (*usecases.TopUpResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockUpdateRefundPolicyUC struct {
	result *usecases.UpdateRefundPolicyResult
	err    error
}

func (m *mockUpdateRefundPolicyUC) Execute(ctx context.Context, cmd usecases.UpdateRefundPolicyCommand) (*usecases.UpdateRefundPolicyResult, error) {
	return m.result, m.err
}

type mockGetBalanceUC struct {
	result    *usecases.GetBalanceResult
	err       error
	lastQuery usecases.GetBalanceQuery
}

func (m *mockGetBalanceUC) Execute(ctx context.Context, q usecases.GetBalanceQuery) (*usecases.GetBalanceResult, error) {
	m.lastQuery = q
	return m.result, m.err
}

func newTestBrand(t *testing.T) *brand.Brand {
	t.Helper()
	policy, err := brand.NewRefundPolicy(7, 50, 25000)
	require.NoError(t, err)
	b, err := brand.NewBrand("brd_handlertest1", "Acme Cosmetics", "billing@acme.example.com", "$2a$12$hash", policy)
	require.NoError(t, err)
	return b
}

func newTestBrandHandler(
	registerUC registerBrandUseCase,
	topUpUC topUpUseCase,
	policyUC updateRefundPolicyUseCase,
	balanceUC getBalanceUseCase,
) *BrandHandler {
	return NewBrandHandler(registerUC, topUpUC, policyUC, balanceUC, testutil.NewMockLogger())
}

func TestBrandHandler_Register_Success(t *testing.T) {
	testBrand := newTestBrand(t)
	mockUC := &mockRegisterBrandUC{result: &usecases.RegisterBrandResult{Brand: testBrand}}
	handler := newTestBrandHandler(mockUC, nil, nil, nil)

	reqBody := RegisterBrandRequest{
		Name:                  "Acme Cosmetics",
		Email:                 "billing@acme.example.com",
		Password:              "password123",
		RefundDays:            7,
		RefundPercentage:      50,
		UpToRefundAmountCents: 25000,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/brands/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data BrandResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, testBrand.SID(), data.SID)
	assert.Equal(t, 7, data.RefundDays)
	assert.Equal(t, 50, data.RefundPercentage)
	assert.Equal(t, int64(25000), data.UpToRefundAmountCents)
}

func TestBrandHandler_Register_DuplicateEmail(t *testing.T) {
	mockUC := &mockRegisterBrandUC{err: errors.NewConflictError("email already registered")}
	handler := newTestBrandHandler(mockUC, nil, nil, nil)

	reqBody := RegisterBrandRequest{
		Name:     "Acme Cosmetics",
		Email:    "billing@acme.example.com",
		Password: "password123",
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/brands/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestBrandHandler_Register_BadPercentage(t *testing.T) {
	handler := newTestBrandHandler(&mockRegisterBrandUC{}, nil, nil, nil)

	reqBody := RegisterBrandRequest{
		Name:             "Acme Cosmetics",
		Email:            "billing@acme.example.com",
		Password:         "password123",
		RefundPercentage: 150,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/brands/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBrandHandler_TopUp_Success(t *testing.T) {
	testBrand := newTestBrand(t)
	require.NoError(t, testBrand.Credit(100000))
	mockUC := &mockTopUpUC{result: &usecases.TopUpResult{Brand: testBrand, SettlementID: "txn_topup1"}}
	handler := newTestBrandHandler(nil, mockUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/brands/balance/topup", TopUpRequest{AmountCents: 100000, Reference: "wire-42"})
	testutil.SetAuthContext(c, 20, constants.RoleBrand)

	handler.TopUp(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(20), mockUC.lastCmd.BrandID)
	assert.Equal(t, int64(100000), mockUC.lastCmd.AmountCents)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data TopUpResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(100000), data.Brand.BalanceCents)
	assert.Equal(t, "txn_topup1", data.SettlementID)
}

func TestBrandHandler_TopUp_Unauthenticated(t *testing.T) {
	handler := newTestBrandHandler(nil, &mockTopUpUC{}, nil, nil)

	c, w := testutil.NewTestContext(http.MethodPost, "/brands/balance/topup", TopUpRequest{AmountCents: 100000})

	handler.TopUp(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBrandHandler_UpdateRefundPolicy_Success(t *testing.T) {
	testBrand := newTestBrand(t)
	mockUC := &mockUpdateRefundPolicyUC{result: &usecases.UpdateRefundPolicyResult{Brand: testBrand}}
	handler := newTestBrandHandler(nil, nil, mockUC, nil)

	reqBody := UpdateRefundPolicyRequest{RefundDays: 14, RefundPercentage: 30, UpToRefundAmountCents: 50000}
	c, w := testutil.NewTestContext(http.MethodPut, "/brands/policy", reqBody)
	testutil.SetAuthContext(c, 20, constants.RoleBrand)

	handler.UpdateRefundPolicy(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestBrandHandler_GetBalance_Success(t *testing.T) {
	testBrand := newTestBrand(t)
	require.NoError(t, testBrand.Credit(40000))
	tx, err := brand.NewBalanceTransaction(20, 7, "stl_balance1", brand.DirectionCredit, 40000, "top-up")
	require.NoError(t, err)

	mockUC := &mockGetBalanceUC{result: &usecases.GetBalanceResult{
		Brand:        testBrand,
		Transactions: []*brand.BalanceTransaction{tx},
		Total:        1,
	}}
	handler := newTestBrandHandler(nil, nil, nil, mockUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/brands/balance", nil)
	testutil.SetAuthContext(c, 20, constants.RoleBrand)

	handler.GetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, uint(20), mockUC.lastQuery.BrandID)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var data GetBalanceResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, int64(40000), data.BalanceCents)
	assert.Equal(t, "INR", data.Currency)
	require.Len(t, data.Transactions, 1)
	assert.Equal(t, "stl_balance1", data.Transactions[0].SettlementID)
	assert.Equal(t, "credit", data.Transactions[0].Direction)
	assert.WithinDuration(t, time.Now().UTC(), data.Transactions[0].CreatedAt, 5*time.Second)
}
