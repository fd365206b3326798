package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	appgateway "github.com/tagcash-inc/tagcash/internal/application/billing/gateway"
	"github.com/tagcash-inc/tagcash/internal/shared/config"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

// RazorpayGateway implements the billing PaymentGateway port against the
// Razorpay orders API. Callback signatures are HMAC-SHA256 over
// "orderID|paymentID" keyed with the API secret.
type RazorpayGateway struct {
	baseURL    string
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     logger.Interface
}

func NewRazorpayGateway(cfg *config.PaymentGatewayConfig, log logger.Interface) *RazorpayGateway {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &RazorpayGateway{
		baseURL:   cfg.BaseURL,
		keyID:     cfg.KeyID,
		keySecret: cfg.KeySecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: log,
	}
}

type orderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type orderResponse struct {
	ID string `json:"id"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (g *RazorpayGateway) CreateOrder(ctx context.Context, req appgateway.CreateOrderRequest) (*appgateway.CreateOrderResponse, error) {
	body, err := json.Marshal(orderRequest{
		Amount:   req.AmountCents,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode order request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build order request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(g.keyID, g.keySecret)

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("order request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var gwErr errorResponse
		if err := json.NewDecoder(resp.Body).Decode(&gwErr); err == nil && gwErr.Error.Description != "" {
			return nil, fmt.Errorf("gateway rejected order: %s (%s)", gwErr.Error.Description, gwErr.Error.Code)
		}
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var order orderResponse
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("gateway returned empty order ID")
	}

	g.logger.Debugw("gateway order created", "order_id", order.ID, "amount_cents", req.AmountCents)

	return &appgateway.CreateOrderResponse{OrderID: order.ID}, nil
}

func (g *RazorpayGateway) VerifySignature(orderID, paymentID, signature string) bool {
	mac := hmac.New(sha256.New, []byte(g.keySecret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
