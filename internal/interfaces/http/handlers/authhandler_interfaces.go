package handlers

import (
	"context"

	authUsecases "github.com/tagcash-inc/tagcash/internal/application/auth/usecases"
	customerUsecases "github.com/tagcash-inc/tagcash/internal/application/customer/usecases"
)

// Use case interfaces for AuthHandler and CustomerHandler

type loginUseCase interface {
	Execute(ctx context.Context, cmd authUsecases.LoginCommand) (*authUsecases.LoginResult, error)
}

type registerCustomerUseCase interface {
	Execute(ctx context.Context, cmd customerUsecases.RegisterCustomerCommand) (*customerUsecases.RegisterCustomerResult, error)
}
