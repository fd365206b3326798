// Package customer holds the influencer account aggregate. Customers
// upload bills against brands and claim refunds; the aggregate itself is
// deliberately small; the lifecycle state lives on the bill.
package customer

import (
	"fmt"
	"time"
)

type Customer struct {
	id           uint
	sid          string
	handle       string
	email        string
	passwordHash string
	active       bool
	lastActiveAt time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewCustomer(sid, handle, email, passwordHash string) (*Customer, error) {
	if sid == "" {
		return nil, fmt.Errorf("customer SID is required")
	}
	if handle == "" {
		return nil, fmt.Errorf("customer handle is required")
	}
	if email == "" {
		return nil, fmt.Errorf("customer email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &Customer{
		sid:          sid,
		handle:       handle,
		email:        email,
		passwordHash: passwordHash,
		active:       true,
		lastActiveAt: now,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructCustomer rebuilds a customer from persistence.
func ReconstructCustomer(id uint, sid, handle, email, passwordHash string, active bool, lastActiveAt, createdAt, updatedAt time.Time) (*Customer, error) {
	if id == 0 {
		return nil, fmt.Errorf("customer ID cannot be zero")
	}
	return &Customer{
		id:           id,
		sid:          sid,
		handle:       handle,
		email:        email,
		passwordHash: passwordHash,
		active:       active,
		lastActiveAt: lastActiveAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Customer) ID() uint                { return c.id }
func (c *Customer) SID() string             { return c.sid }
func (c *Customer) Handle() string          { return c.handle }
func (c *Customer) Email() string           { return c.email }
func (c *Customer) PasswordHash() string    { return c.passwordHash }
func (c *Customer) IsActive() bool          { return c.active }
func (c *Customer) LastActiveAt() time.Time { return c.lastActiveAt }
func (c *Customer) CreatedAt() time.Time    { return c.createdAt }
func (c *Customer) UpdatedAt() time.Time    { return c.updatedAt }

// SetID sets the customer ID (only for persistence layer use)
func (c *Customer) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("customer ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("customer ID cannot be zero")
	}
	c.id = id
	return nil
}

// TouchLastActive records customer activity.
func (c *Customer) TouchLastActive(at time.Time) {
	c.lastActiveAt = at.UTC()
	c.updatedAt = time.Now().UTC()
}

// Deactivate blocks logins and new bills for this customer.
func (c *Customer) Deactivate() {
	if !c.active {
		return
	}
	c.active = false
	c.updatedAt = time.Now().UTC()
}
