package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/utils"
	"github.com/MKhiriev/go-toml-selector/models"
)

// authService signs and verifies admin tokens with HMAC-SHA256.
// All state is read-only after construction.
type authService struct {
	// tokenSignKey is the HMAC secret. Empty disables the guard.
	tokenSignKey string

	// tokenIssuer is the "iss" claim; tokens with another issuer are
	// rejected.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService builds the token service from the app settings.
func NewAuthService(cfg config.App, log *logger.Logger) AuthService {
	return &authService{
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        log,
	}
}

func (a *authService) Enabled() bool {
	return a.tokenSignKey != ""
}

// CreateToken issues a token for operator that expires after the
// configured duration.
func (a *authService) CreateToken(ctx context.Context, operator string) (models.Token, error) {
	if !a.Enabled() {
		return models.Token{}, ErrAuthDisabled
	}
	if operator == "" {
		return models.Token{}, ErrEmptyOperator
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, operator, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("operator", operator).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken verifies signature, issuer and expiry. Every failure is
// reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if !a.Enabled() {
		return models.Token{}, ErrAuthDisabled
	}

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
