package models

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestToken_ExpiresIn(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	tok := &Token{SignedString: "a.b.c"}
	assert.Equal(t, time.Duration(-1), tok.ExpiresIn(now))
	assert.Equal(t, "a.b.c", tok.String())

	tok.ExpiresAt = jwt.NewNumericDate(now.Add(time.Hour))
	assert.Equal(t, time.Hour, tok.ExpiresIn(now))

	assert.Zero(t, tok.ExpiresIn(now.Add(2*time.Hour)))
}
