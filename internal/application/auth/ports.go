// Package auth defines the authentication ports shared by the account
// usecases. Concrete bcrypt and JWT implementations live in infrastructure.
package auth

import "time"

// PasswordHasher hashes and verifies account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer mints access tokens for authenticated accounts.
type TokenIssuer interface {
	Issue(accountID uint, role string) (token string, expiresAt time.Time, err error)
}
