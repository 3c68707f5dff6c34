package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of every issued token.
const TokenTTL = 24 * time.Hour

// tokenService signs HS256 tokens with a single shared secret.
type tokenService struct {
	signKey string
	issuer  string
	now     func() time.Time

	logger *logger.Logger
}

// NewTokenService returns a TokenService signing with cfg.TokenSignKey. A nil
// clock defaults to time.Now.
func NewTokenService(cfg config.App, now func() time.Time, logger *logger.Logger) (TokenService, error) {
	if cfg.TokenSignKey == "" {
		return nil, ErrMissingSigningKey
	}
	if now == nil {
		now = time.Now
	}

	return &tokenService{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
		now:     now,
		logger:  logger,
	}, nil
}

// Issue creates a token for subjectID valid for exactly TokenTTL from now.
func (s *tokenService) Issue(ctx context.Context, subjectID string) (models.Token, error) {
	token, err := utils.GenerateJWTToken(s.issuer, subjectID, s.now(), TokenTTL, s.signKey)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*tokenService.Issue").Msg("error generating token")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// Verify checks signature, algorithm, expiry and issuer of token. Expired
// tokens yield ErrTokenIsExpired; every other failure yields
// ErrTokenIsInvalid.
func (s *tokenService) Verify(ctx context.Context, token string) (models.Token, error) {
	parsed, err := utils.ValidateAndParseJWTToken(token, s.signKey, s.issuer, s.now)
	if err == nil {
		return parsed, nil
	}

	logger.FromContext(ctx).Debug().Err(err).Str("func", "*tokenService.Verify").Msg("token rejected")
	if errors.Is(err, jwt.ErrTokenExpired) {
		return models.Token{}, ErrTokenIsExpired
	}

	return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
}
