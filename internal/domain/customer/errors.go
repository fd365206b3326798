package customer

import "errors"

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerInactive = errors.New("customer inactive")
	ErrEmailTaken       = errors.New("email already registered")
)
