package usecases

import (
	"context"
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/application/auth"
	"github.com/tagcash-inc/tagcash/internal/domain/customer"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/id"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type RegisterCustomerCommand struct {
	Handle   string
	Email    string
	Password string
}

type RegisterCustomerResult struct {
	Customer *customer.Customer
}

type RegisterCustomerUseCase struct {
	customerRepo customer.Repository
	hasher       auth.PasswordHasher
	logger       logger.Interface
}

func NewRegisterCustomerUseCase(customerRepo customer.Repository, hasher auth.PasswordHasher, logger logger.Interface) *RegisterCustomerUseCase {
	return &RegisterCustomerUseCase{customerRepo: customerRepo, hasher: hasher, logger: logger}
}

func (uc *RegisterCustomerUseCase) Execute(ctx context.Context, cmd RegisterCustomerCommand) (*RegisterCustomerResult, error) {
	if existing, _ := uc.customerRepo.GetByEmail(ctx, cmd.Email); existing != nil {
		return nil, errors.NewConflictError("email already registered")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixCustomer, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate customer ID: %w", err)
	}

	cust, err := customer.NewCustomer(sid, cmd.Handle, cmd.Email, hash)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customerRepo.Create(ctx, cust); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to save customer", "error", err, "customer_sid", sid)
		return nil, fmt.Errorf("failed to save customer: %w", err)
	}

	uc.logger.Infow("customer registered", "customer_sid", sid, "handle", cmd.Handle)
	return &RegisterCustomerResult{Customer: cust}, nil
}
