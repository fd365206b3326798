package usecases

import (
	"context"
	"fmt"

	"github.com/tagcash-inc/tagcash/internal/application/auth"
	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/id"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type RegisterBrandCommand struct {
	Name     string
	Email    string
	Password string
	// Refund policy terms; zero values mean the brand offers no refunds.
	RefundDays            int
	RefundPercentage      int
	UpToRefundAmountCents int64
}

type RegisterBrandResult struct {
	Brand *brand.Brand
}

type RegisterBrandUseCase struct {
	brandRepo brand.Repository
	hasher    auth.PasswordHasher
	logger    logger.Interface
}

func NewRegisterBrandUseCase(brandRepo brand.Repository, hasher auth.PasswordHasher, logger logger.Interface) *RegisterBrandUseCase {
	return &RegisterBrandUseCase{brandRepo: brandRepo, hasher: hasher, logger: logger}
}

func (uc *RegisterBrandUseCase) Execute(ctx context.Context, cmd RegisterBrandCommand) (*RegisterBrandResult, error) {
	if existing, _ := uc.brandRepo.GetByEmail(ctx, cmd.Email); existing != nil {
		return nil, errors.NewConflictError("email already registered")
	}

	policy, err := brand.NewRefundPolicy(cmd.RefundDays, cmd.RefundPercentage, cmd.UpToRefundAmountCents)
	if err != nil {
		return nil, mapDomainError(err)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	sid, err := id.GenerateWithPrefix(id.PrefixBrand, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate brand ID: %w", err)
	}

	newBrand, err := brand.NewBrand(sid, cmd.Name, cmd.Email, hash, policy)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.brandRepo.Create(ctx, newBrand); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("email already registered")
		}
		uc.logger.Errorw("failed to save brand", "error", err, "brand_sid", sid)
		return nil, fmt.Errorf("failed to save brand: %w", err)
	}

	uc.logger.Infow("brand registered", "brand_sid", sid, "name", cmd.Name)
	return &RegisterBrandResult{Brand: newBrand}, nil
}
