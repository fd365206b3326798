package usecases

import (
	stderrors "errors"

	"github.com/tagcash-inc/tagcash/internal/domain/bill"
	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/domain/customer"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
)

// mapDomainError translates domain sentinels into typed application errors
// so the HTTP layer renders a stable error code instead of a generic 500.
// Already-typed errors pass through; unknown errors stay internal. The
// original error is kept as the cause so errors.Is still matches it.
func mapDomainError(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	switch {
	case stderrors.Is(err, bill.ErrBillNotFound):
		return errors.NewNotFoundError("bill not found").WithCause(err)
	case stderrors.Is(err, bill.ErrInvalidStatusTransition):
		return errors.NewInvalidStateError(err.Error()).WithCause(err)
	case stderrors.Is(err, bill.ErrPaymentNotVerified):
		return errors.NewInvalidStateError("payment not verified").WithCause(err)
	case stderrors.Is(err, bill.ErrPaymentAlreadyVerified):
		return errors.NewInvalidStateError("payment already verified").WithCause(err)
	case stderrors.Is(err, bill.ErrRefundWindowExpired):
		return errors.NewRefundWindowExpiredError("refund window has expired").WithCause(err)
	case stderrors.Is(err, bill.ErrRefundNotClaimed):
		return errors.NewInvalidStateError("refund not claimed").WithCause(err)
	case stderrors.Is(err, bill.ErrRefundAlreadyClaimed):
		return errors.NewInvalidStateError("refund already claimed").WithCause(err)
	case stderrors.Is(err, bill.ErrRefundAmountExceedsLimit):
		return errors.NewValidationError("refund amount exceeds the policy limit").WithCause(err)
	case stderrors.Is(err, bill.ErrBrandRefundAlreadySettled):
		return errors.NewConflictError("brand refund already settled").WithCause(err)
	case stderrors.Is(err, bill.ErrConcurrentModification):
		return errors.NewConflictError("bill was modified concurrently, retry the request").WithCause(err)
	case stderrors.Is(err, brand.ErrBrandNotFound):
		return errors.NewNotFoundError("brand not found").WithCause(err)
	case stderrors.Is(err, brand.ErrBrandInactive):
		return errors.NewInvalidStateError("brand is deactivated").WithCause(err)
	case stderrors.Is(err, brand.ErrInsufficientBalance):
		return errors.NewInsufficientBalanceError("brand balance cannot cover the refund").WithCause(err)
	case stderrors.Is(err, brand.ErrInvalidAmount):
		return errors.NewValidationError("amount must be positive").WithCause(err)
	case stderrors.Is(err, customer.ErrCustomerNotFound):
		return errors.NewNotFoundError("customer not found").WithCause(err)
	case stderrors.Is(err, customer.ErrCustomerInactive):
		return errors.NewInvalidStateError("customer is deactivated").WithCause(err)
	}
	return err
}
