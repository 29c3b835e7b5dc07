package entity

import "time"

// TokenClaims is the identity asserted by a validated access token.
// It is rebuilt from the signed token on every request and never persisted.
type TokenClaims struct {
	Subject   string    // Email of the user the token was issued to.
	IssuedAt  time.Time // UTC.
	ExpiresAt time.Time // Absolute UTC expiry embedded at issue time.
}
