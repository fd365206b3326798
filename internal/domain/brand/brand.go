package brand

import (
	"fmt"
	"time"
)

// Brand is a merchant that reviews customer bills and owns a balance
// ledger. The balance only changes through Credit and Debit, and a debit
// that would take it negative is rejected; brand debt is not tracked.
type Brand struct {
	id           uint
	sid          string
	name         string
	email        string
	passwordHash string
	balanceCents int64
	currency     string
	refundPolicy RefundPolicy
	active       bool
	version      int
	createdAt    time.Time
	updatedAt    time.Time
}

func NewBrand(sid, name, email, passwordHash string, policy RefundPolicy) (*Brand, error) {
	if sid == "" {
		return nil, fmt.Errorf("brand SID is required")
	}
	if name == "" {
		return nil, fmt.Errorf("brand name is required")
	}
	if email == "" {
		return nil, fmt.Errorf("brand email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &Brand{
		sid:          sid,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		currency:     "INR",
		refundPolicy: policy,
		active:       true,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// BrandReconstructParams carries persisted fields for rebuilding a brand.
type BrandReconstructParams struct {
	ID           uint
	SID          string
	Name         string
	Email        string
	PasswordHash string
	BalanceCents int64
	Currency     string
	RefundPolicy RefundPolicy
	Active       bool
	Version      int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ReconstructBrand rebuilds a brand from persistence.
func ReconstructBrand(p BrandReconstructParams) (*Brand, error) {
	if p.ID == 0 {
		return nil, fmt.Errorf("brand ID cannot be zero")
	}
	if p.Name == "" {
		return nil, fmt.Errorf("brand name is required")
	}

	return &Brand{
		id:           p.ID,
		sid:          p.SID,
		name:         p.Name,
		email:        p.Email,
		passwordHash: p.PasswordHash,
		balanceCents: p.BalanceCents,
		currency:     p.Currency,
		refundPolicy: p.RefundPolicy,
		active:       p.Active,
		version:      p.Version,
		createdAt:    p.CreatedAt,
		updatedAt:    p.UpdatedAt,
	}, nil
}

func (b *Brand) ID() uint                   { return b.id }
func (b *Brand) SID() string                { return b.sid }
func (b *Brand) Name() string               { return b.name }
func (b *Brand) Email() string              { return b.email }
func (b *Brand) PasswordHash() string       { return b.passwordHash }
func (b *Brand) BalanceCents() int64        { return b.balanceCents }
func (b *Brand) Currency() string           { return b.currency }
func (b *Brand) RefundPolicy() RefundPolicy { return b.refundPolicy }
func (b *Brand) IsActive() bool             { return b.active }
func (b *Brand) Version() int               { return b.version }
func (b *Brand) CreatedAt() time.Time       { return b.createdAt }
func (b *Brand) UpdatedAt() time.Time       { return b.updatedAt }

// SetID sets the brand ID (only for persistence layer use)
func (b *Brand) SetID(id uint) error {
	if b.id != 0 {
		return fmt.Errorf("brand ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("brand ID cannot be zero")
	}
	b.id = id
	return nil
}

// Credit increases the brand balance.
func (b *Brand) Credit(amountCents int64) error {
	if amountCents <= 0 {
		return ErrInvalidAmount
	}
	b.balanceCents += amountCents
	b.touch()
	return nil
}

// Debit decreases the brand balance, rejecting overdraft.
func (b *Brand) Debit(amountCents int64) error {
	if amountCents <= 0 {
		return ErrInvalidAmount
	}
	if b.balanceCents < amountCents {
		return fmt.Errorf("%w: balance=%d, debit=%d", ErrInsufficientBalance, b.balanceCents, amountCents)
	}
	b.balanceCents -= amountCents
	b.touch()
	return nil
}

// UpdateRefundPolicy replaces the brand's refund terms. Existing claims
// already in processing are unaffected; the policy applies to new claims.
func (b *Brand) UpdateRefundPolicy(policy RefundPolicy) {
	b.refundPolicy = policy
	b.touch()
}

// Deactivate blocks new bills against the brand.
func (b *Brand) Deactivate() {
	if !b.active {
		return
	}
	b.active = false
	b.touch()
}

func (b *Brand) touch() {
	b.updatedAt = time.Now().UTC()
	b.version++
}
