package brand

import "errors"

var (
	ErrBrandNotFound       = errors.New("brand not found")
	ErrBrandInactive       = errors.New("brand inactive")
	ErrInvalidAmount       = errors.New("amount must be positive")
	ErrInsufficientBalance = errors.New("insufficient brand balance")
	ErrInvalidRefundPolicy = errors.New("invalid refund policy")
	ErrDuplicateSettlement = errors.New("settlement already applied")
)
