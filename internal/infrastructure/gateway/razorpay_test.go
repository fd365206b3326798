package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appgateway "github.com/tagcash-inc/tagcash/internal/application/billing/gateway"
	"github.com/tagcash-inc/tagcash/internal/shared/config"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

func testGateway(baseURL string) *RazorpayGateway {
	return NewRazorpayGateway(&config.PaymentGatewayConfig{
		BaseURL:        baseURL,
		KeyID:          "rzp_test_key",
		KeySecret:      "test_secret",
		TimeoutSeconds: 5,
	}, logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestCreateOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/orders", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "rzp_test_key", user)
		assert.Equal(t, "test_secret", pass)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(50000), body["amount"])
		assert.Equal(t, "INR", body["currency"])

		json.NewEncoder(w).Encode(map[string]string{"id": "order_test123"})
	}))
	defer server.Close()

	resp, err := testGateway(server.URL).CreateOrder(context.Background(), appgateway.CreateOrderRequest{
		AmountCents: 50000,
		Currency:    "INR",
		Receipt:     "bill_abc",
	})
	require.NoError(t, err)
	assert.Equal(t, "order_test123", resp.OrderID)
}

func TestCreateOrderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":        "BAD_REQUEST_ERROR",
				"description": "amount exceeds maximum",
			},
		})
	}))
	defer server.Close()

	_, err := testGateway(server.URL).CreateOrder(context.Background(), appgateway.CreateOrderRequest{
		AmountCents: 1,
		Currency:    "INR",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount exceeds maximum")
}

func TestVerifySignature(t *testing.T) {
	g := testGateway("http://unused")

	mac := hmac.New(sha256.New, []byte("test_secret"))
	mac.Write([]byte("order_abc|pay_123"))
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, g.VerifySignature("order_abc", "pay_123", valid))
	assert.False(t, g.VerifySignature("order_abc", "pay_123", "forged"))
	assert.False(t, g.VerifySignature("order_abc", "pay_999", valid))
	assert.False(t, g.VerifySignature("order_abc", "pay_123", ""))
}
