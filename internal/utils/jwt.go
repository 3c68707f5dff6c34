package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrEmptySubject is returned when a token carries no "sub" claim.
	ErrEmptySubject = errors.New("empty subject")
	// ErrInvalidAuthorizationHeader is returned by ParseBearerToken for
	// headers that are neither "Bearer <token>" nor a bare token.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")
)

const bearerScheme = "Bearer"

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token with the given parameters.
//
// The token includes the following standard claims:
//   - Subject   (sub): the user ID
//   - IssuedAt  (iat): issuedAt
//   - ExpiresAt (exp): issuedAt plus tokenDuration
//   - Issuer    (iss): only when issuer is non-empty
//
// userID, tokenDuration and signKey are required.
//
// Example usage:
//
//	token, err := utils.GenerateJWTToken("", userID, time.Now(), 24*time.Hour, "secret")
func GenerateJWTToken(issuer, userID string, issuedAt time.Time, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if userID == "" || tokenDuration == 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(issuedAt),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during signing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates the given JWT token string and extracts its claims.
//
// Validation includes:
//   - Signing method: HS256 only
//   - Signature verification using the provided sign key
//   - Expiration (exp) claim check against now
//   - Issuer (iss) claim check, only when tokenIssuer is non-empty
//   - Subject (sub) claim presence
//
// Errors wrap the jwt/v5 sentinels, so callers can tell an expired token
// apart with errors.Is(err, jwt.ErrTokenExpired).
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer string, now func() time.Time) (models.Token, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if now != nil {
		opts = append(opts, jwt.WithTimeFunc(now))
	}
	if tokenIssuer != "" {
		opts = append(opts, jwt.WithIssuer(tokenIssuer))
	}

	claims := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, opts...)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := claims.GetUserID()
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrEmptySubject, err)
	}

	return models.Token{
		Token:            token,
		RegisteredClaims: claims.RegisteredClaims,
		SignedString:     tokenString,
		UserID:           userID,
	}, nil
}

// ParseBearerToken extracts the token from an Authorization header value.
// Both "Bearer <token>" and a bare "<token>" are accepted. An empty header
// yields an empty token and no error.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	switch {
	case len(parts) == 0:
		return "", nil
	case len(parts) == 1 && !strings.EqualFold(parts[0], bearerScheme):
		return parts[0], nil
	case len(parts) == 2 && strings.EqualFold(parts[0], bearerScheme):
		return parts[1], nil
	default:
		return "", ErrInvalidAuthorizationHeader
	}
}

// ParseUserIDFromJWT reads the subject of a token without verifying it.
// Only for display purposes on the client side.
func ParseUserIDFromJWT(tokenString string) (string, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return "", err
	}

	sub, err := token.Claims.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", ErrEmptySubject
	}

	return sub, nil
}
