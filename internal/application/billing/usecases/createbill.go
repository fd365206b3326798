package usecases

import (
	"context"
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/application/billing/gateway"
	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	vo "github.com/tagcash-inc/tagcash/internal/domain/bill/valueobjects"
	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/domain/customer"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/id"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type CreateBillCommand struct {
	CustomerID  uint
	BrandID     uint
	PaymentType string
	AmountCents int64
	Currency    string
	BillNo      string
	BillURL     string
}

type CreateBillResult struct {
	Bill *bill.Bill
	// GatewayOrderID is set for pay-now bills; the client completes the
	// payment against this order and the gateway calls back.
	GatewayOrderID string
}

type CreateBillUseCase struct {
	billRepo     bill.Repository
	brandRepo    brand.Repository
	customerRepo customer.Repository
	gateway      gateway.PaymentGateway
	logger       logger.Interface
}

func NewCreateBillUseCase(
	billRepo bill.Repository,
	brandRepo brand.Repository,
	customerRepo customer.Repository,
	gw gateway.PaymentGateway,
	logger logger.Interface,
) *CreateBillUseCase {
	return &CreateBillUseCase{
		billRepo:     billRepo,
		brandRepo:    brandRepo,
		customerRepo: customerRepo,
		gateway:      gw,
		logger:       logger,
	}
}

func (uc *CreateBillUseCase) Execute(ctx context.Context, cmd CreateBillCommand) (*CreateBillResult, error) {
	cust, err := uc.customerRepo.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get customer: %w", err))
	}
	if !cust.IsActive() {
		return nil, mapDomainError(customer.ErrCustomerInactive)
	}

	br, err := uc.brandRepo.GetByID(ctx, cmd.BrandID)
	if err != nil {
		return nil, mapDomainError(fmt.Errorf("failed to get brand: %w", err))
	}
	if !br.IsActive() {
		return nil, mapDomainError(brand.ErrBrandInactive)
	}

	paymentType, err := vo.NewPaymentType(cmd.PaymentType)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if paymentType == vo.PaymentTypeUploadBill && cmd.BillURL == "" {
		return nil, errors.NewValidationError("bill URL is required for uploaded bills")
	}

	sid, err := id.GenerateWithPrefix(id.PrefixBill, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate bill ID: %w", err)
	}

	amount := vo.NewMoney(cmd.AmountCents, cmd.Currency)
	newBill, err := bill.NewBill(cmd.CustomerID, cmd.BrandID, sid, paymentType, amount, cmd.BillURL)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.BillNo != "" {
		newBill.SetBillNo(cmd.BillNo)
	}

	var orderID string
	if paymentType.RequiresGateway() {
		resp, err := uc.gateway.CreateOrder(ctx, gateway.CreateOrderRequest{
			AmountCents: amount.AmountCents(),
			Currency:    amount.Currency(),
			Receipt:     sid,
			Notes:       map[string]string{"brand_sid": br.SID()},
		})
		if err != nil {
			uc.logger.Errorw("failed to create gateway order", "error", err, "bill_sid", sid)
			return nil, fmt.Errorf("failed to create gateway order: %w", err)
		}
		if err := newBill.AttachGatewayOrder(resp.OrderID); err != nil {
			return nil, err
		}
		orderID = resp.OrderID
	}

	if err := uc.billRepo.Create(ctx, newBill); err != nil {
		uc.logger.Errorw("failed to save bill", "error", err, "bill_sid", sid)
		return nil, fmt.Errorf("failed to save bill: %w", err)
	}

	uc.logger.Infow("bill created",
		"bill_sid", sid,
		"customer_id", cmd.CustomerID,
		"brand_id", cmd.BrandID,
		"payment_type", paymentType.String(),
		"amount_cents", amount.AmountCents(),
	)

	return &CreateBillResult{Bill: newBill, GatewayOrderID: orderID}, nil
}
