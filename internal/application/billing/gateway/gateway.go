// Package gateway defines the payment gateway port used by the billing
// usecases. The concrete adapter lives in infrastructure.
package gateway

import "context"

// CreateOrderRequest asks the gateway to open an order for a pay-now bill.
// Amount is in minor currency units.
type CreateOrderRequest struct {
	AmountCents int64
	Currency    string
	Receipt     string
	Notes       map[string]string
}

// CreateOrderResponse carries the gateway order reference the client SDK
// needs to collect the payment.
type CreateOrderResponse struct {
	OrderID string
}

// PaymentGateway creates orders and verifies payment callbacks.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*CreateOrderResponse, error)

	// VerifySignature checks the callback signature over the order and
	// payment identifiers. A false return means the callback is forged or
	// corrupted and the payment must be treated as failed.
	VerifySignature(orderID, paymentID, signature string) bool
}
