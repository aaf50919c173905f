package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/utils"
)

func newAuth(key string) AuthService {
	return NewAuthService(config.App{
		TokenSignKey:  key,
		TokenIssuer:   "selector",
		TokenDuration: time.Hour,
	}, logger.Nop())
}

func TestAuthService_Enabled(t *testing.T) {
	assert.True(t, newAuth("secret").Enabled())
	assert.False(t, newAuth("").Enabled())
}

func TestAuthService_CreateAndParse(t *testing.T) {
	svc := newAuth("secret")
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, "ops")
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "ops", parsed.Operator)
	assert.Equal(t, "selector", parsed.Issuer)
}

func TestAuthService_Disabled(t *testing.T) {
	svc := newAuth("")
	ctx := context.Background()

	_, err := svc.CreateToken(ctx, "ops")
	assert.ErrorIs(t, err, ErrAuthDisabled)

	_, err = svc.ParseToken(ctx, "anything")
	assert.ErrorIs(t, err, ErrAuthDisabled)
}

func TestAuthService_EmptyOperator(t *testing.T) {
	_, err := newAuth("secret").CreateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyOperator)
}

func TestAuthService_ParseRejects(t *testing.T) {
	svc := newAuth("secret")
	ctx := context.Background()

	foreign, err := utils.GenerateJWTToken("selector", "ops", time.Hour, "other-secret")
	require.NoError(t, err)
	expired, err := utils.GenerateJWTToken("selector", "ops", -time.Minute, "secret")
	require.NoError(t, err)
	wrongIssuer, err := utils.GenerateJWTToken("someone-else", "ops", time.Hour, "secret")
	require.NoError(t, err)

	for name, tok := range map[string]string{
		"garbage":      "not.a.jwt",
		"foreign key":  foreign.SignedString,
		"expired":      expired.SignedString,
		"wrong issuer": wrongIssuer.SignedString,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := svc.ParseToken(ctx, tok)
			assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
		})
	}
}
