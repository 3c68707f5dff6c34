package service

import "errors"

// Auth flow errors.
var (
	ErrValidation         = errors.New("invalid data provided")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Token errors. Every one of them is reported to HTTP callers as 401.
var (
	ErrMissingToken      = errors.New("token is missing")
	ErrTokenIsExpired    = errors.New("token is expired")
	ErrTokenIsInvalid    = errors.New("token is invalid")
	ErrTokenUserNotFound = errors.New("token user not found")
)

var (
	ErrMissingSigningKey   = errors.New("token signing key is not configured")
	ErrTokenCreationFailed = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Client-side errors.
var (
	ErrNotLoggedIn       = errors.New("not logged in")
	ErrServerUnavailable = errors.New("server unavailable")
)
