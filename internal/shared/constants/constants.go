// Package constants defines application-wide constant values.
package constants

// Environment names
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// Context keys set by middleware
const (
	ContextKeyAccountID   = "account_id"
	ContextKeyAccountRole = "account_role"
)

// Pagination defaults
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Account roles carried in JWT claims and enforced by the permission layer.
const (
	RoleCustomer = "customer"
	RoleBrand    = "brand"
	RoleAdmin    = "admin"
)
