package models

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token is an admin JWT authorizing configuration reloads. The embedded
// claims are the registered set; the subject names the operator.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact serialization sent as the bearer token.
	SignedString string `json:"-"`

	// Operator mirrors the "sub" claim.
	Operator string `json:"-"`
}

// String returns the compact serialization.
func (t *Token) String() string {
	return t.SignedString
}

// ExpiresIn returns how long the token stays valid after now, zero once it
// has expired and -1 when it never expires.
func (t *Token) ExpiresIn(now time.Time) time.Duration {
	if t.ExpiresAt == nil {
		return -1
	}
	if left := t.ExpiresAt.Sub(now); left > 0 {
		return left
	}
	return 0
}
