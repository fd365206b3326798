package usecases

import (
	stderrors "errors"

	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
)

// mapDomainError translates brand domain sentinels into typed application
// errors so the HTTP layer renders a stable error code. Already-typed
// errors pass through; unknown errors stay internal.
func mapDomainError(err error) error {
	if err == nil || errors.IsAppError(err) {
		return err
	}
	switch {
	case stderrors.Is(err, brand.ErrBrandNotFound):
		return errors.NewNotFoundError("brand not found").WithCause(err)
	case stderrors.Is(err, brand.ErrBrandInactive):
		return errors.NewInvalidStateError("brand is deactivated").WithCause(err)
	case stderrors.Is(err, brand.ErrInvalidAmount):
		return errors.NewValidationError("amount must be positive").WithCause(err)
	case stderrors.Is(err, brand.ErrInsufficientBalance):
		return errors.NewInsufficientBalanceError("brand balance cannot cover the amount").WithCause(err)
	case stderrors.Is(err, brand.ErrInvalidRefundPolicy):
		return errors.NewValidationError(err.Error()).WithCause(err)
	}
	return err
}
