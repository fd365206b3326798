package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	customerUsecases "github.com/tagcash-inc/tagcash/internal/application/customer/usecases"
	"github.com/tagcash-inc/tagcash/internal/domain/customer"
	"github.com/tagcash-inc/tagcash/internal/interfaces/http/handlers/testutil"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
)

type mockRegisterCustomerUC struct {
	result *customerUsecases.RegisterCustomerResult
	err    error
}

func (m *mockRegisterCustomerUC) Execute(ctx context.Context, cmd customerUsecases.RegisterCustomerCommand) (*customerUsecases.RegisterCustomerResult, error) {
	return m.result, m.err
}

func newTestCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	cu, err := customer.NewCustomer("cus_handlertest1", "creator.jane", "jane@example.com", "$2a$12$hash")
	require.NoError(t, err)
	return cu
}

func TestCustomerHandler_Register_Success(t *testing.T) {
	testCustomer := newTestCustomer(t)
	mockUC := &mockRegisterCustomerUC{result: &customerUsecases.RegisterCustomerResult{Customer: testCustomer}}
	handler := NewCustomerHandler(mockUC, testutil.NewMockLogger())

	reqBody := RegisterCustomerRequest{Handle: "creator.jane", Email: "jane@example.com", Password: "password123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/customers/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var data CustomerResponse
	require.NoError(t, json.Unmarshal(resp.Data, &data))
	assert.Equal(t, testCustomer.SID(), data.SID)
	assert.Equal(t, "creator.jane", data.Handle)
	assert.True(t, data.Active)
}

func TestCustomerHandler_Register_ShortPassword(t *testing.T) {
	handler := NewCustomerHandler(&mockRegisterCustomerUC{}, testutil.NewMockLogger())

	reqBody := RegisterCustomerRequest{Handle: "creator.jane", Email: "jane@example.com", Password: "short"}
	c, w := testutil.NewTestContext(http.MethodPost, "/customers/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerHandler_Register_DuplicateEmail(t *testing.T) {
	mockUC := &mockRegisterCustomerUC{err: errors.NewConflictError("email already registered")}
	handler := NewCustomerHandler(mockUC, testutil.NewMockLogger())

	reqBody := RegisterCustomerRequest{Handle: "creator.jane", Email: "jane@example.com", Password: "password123"}
	c, w := testutil.NewTestContext(http.MethodPost, "/customers/register", reqBody)

	handler.Register(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}
