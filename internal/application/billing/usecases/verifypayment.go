package usecases

import (
	"context"
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/application/billing/gateway"
	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type VerifyPaymentCommand struct {
	GatewayOrderID   string
	GatewayPaymentID string
	Signature        string
}

type VerifyPaymentResult struct {
	Bill *bill.Bill
}

// VerifyPaymentUseCase handles the payment gateway callback for pay-now
// bills. The signature is checked before anything is persisted; a bad
// signature marks the payment failed.
type VerifyPaymentUseCase struct {
	billRepo bill.Repository
	gateway  gateway.PaymentGateway
	logger   logger.Interface
}

func NewVerifyPaymentUseCase(billRepo bill.Repository, gw gateway.PaymentGateway, logger logger.Interface) *VerifyPaymentUseCase {
	return &VerifyPaymentUseCase{billRepo: billRepo, gateway: gw, logger: logger}
}

func (uc *VerifyPaymentUseCase) Execute(ctx context.Context, cmd VerifyPaymentCommand) (*VerifyPaymentResult, error) {
	if cmd.GatewayOrderID == "" || cmd.GatewayPaymentID == "" || cmd.Signature == "" {
		return nil, errors.NewValidationError("order ID, payment ID and signature are required")
	}

	b, err := uc.billRepo.GetByGatewayOrderID(ctx, cmd.GatewayOrderID)
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get bill for order %s: %w", cmd.GatewayOrderID, err))
	}

	if !uc.gateway.VerifySignature(cmd.GatewayOrderID, cmd.GatewayPaymentID, cmd.Signature) {
		uc.logger.Warnw("payment signature verification failed",
			"bill_sid", b.SID(),
			"gateway_order_id", cmd.GatewayOrderID,
			"gateway_payment_id", cmd.GatewayPaymentID,
		)
		if err := b.FailPayment(); err != nil {
			return nil, mapDomainError(err)
		}
		if err := uc.billRepo.Update(ctx, b); err != nil {
			return nil, mapDomainError(fmt.Errorf("failed to record failed payment: %w", err))
		}
		return nil, errors.NewPaymentVerificationError("payment signature verification failed")
	}

	if err := b.VerifyPayment(cmd.GatewayPaymentID, cmd.Signature); err != nil {
		return nil, mapDomainError(err)
	}
	if err := uc.billRepo.Update(ctx, b); err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to save verified payment: %w", err))
	}

	uc.logger.Infow("payment verified",
		"bill_sid", b.SID(),
		"gateway_order_id", cmd.GatewayOrderID,
		"gateway_payment_id", cmd.GatewayPaymentID,
	)

	return &VerifyPaymentResult{Bill: b}, nil
}
