package usecases

import (
	"context"
	"time"

	"github.com/tagcash-inc/tagcash/internal/application/auth"
	"github.com/tagcash-inc/tagcash/internal/domain/brand"
	"github.com/tagcash-inc/tagcash/internal/domain/customer"
	"github.com/tagcash-inc/tagcash/internal/shared/constants"
	"github.com/tagcash-inc/tagcash/internal/shared/errors"
	"github.com/tagcash-inc/tagcash/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
	// Role selects the account table: "customer" or "brand".
	Role string
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	AccountID uint
	Role      string
}

// LoginUseCase authenticates a customer or brand account and issues an
// access token. Lookup failures and bad passwords produce the same error so
// the endpoint does not leak which emails exist.
type LoginUseCase struct {
	customerRepo customer.Repository
	brandRepo    brand.Repository
	hasher       auth.PasswordHasher
	tokens       auth.TokenIssuer
	logger       logger.Interface
}

func NewLoginUseCase(
	customerRepo customer.Repository,
	brandRepo brand.Repository,
	hasher auth.PasswordHasher,
	tokens auth.TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		customerRepo: customerRepo,
		brandRepo:    brandRepo,
		hasher:       hasher,
		tokens:       tokens,
		logger:       logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	invalid := errors.NewUnauthorizedError("invalid email or password")

	var (
		accountID uint
		hash      string
		active    bool
	)

	switch cmd.Role {
	case constants.RoleBrand:
		br, err := uc.brandRepo.GetByEmail(ctx, cmd.Email)
		if err != nil {
			return nil, invalid
		}
		accountID, hash, active = br.ID(), br.PasswordHash(), br.IsActive()
	case constants.RoleCustomer, "":
		cmd.Role = constants.RoleCustomer
		cust, err := uc.customerRepo.GetByEmail(ctx, cmd.Email)
		if err != nil {
			return nil, invalid
		}
		accountID, hash, active = cust.ID(), cust.PasswordHash(), cust.IsActive()
	default:
		return nil, errors.NewValidationError("invalid role")
	}

	if !active {
		return nil, errors.NewForbiddenError("account is deactivated")
	}
	if err := uc.hasher.Compare(hash, cmd.Password); err != nil {
		return nil, invalid
	}

	token, expiresAt, err := uc.tokens.Issue(accountID, cmd.Role)
	if err != nil {
		uc.logger.Errorw("failed to issue token", "error", err, "account_id", accountID)
		return nil, errors.NewInternalError("failed to issue token")
	}

	uc.logger.Infow("account logged in", "account_id", accountID, "role", cmd.Role)

	return &LoginResult{
		Token:     token,
		ExpiresAt: expiresAt,
		AccountID: accountID,
		Role:      cmd.Role,
	}, nil
}
