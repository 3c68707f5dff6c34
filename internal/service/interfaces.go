package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService orchestrates registration, login and the gatekeeping check
// performed for every protected request.
type AuthService interface {
	// Register creates a record for req. Email and password must be
	// non-empty; an email already in the directory yields ErrDuplicateEmail.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login verifies credentials and issues a token for the matching record.
	Login(ctx context.Context, credentials models.Credentials) (models.Token, error)
	// Authorize verifies rawToken and resolves the record it names.
	Authorize(ctx context.Context, rawToken string) (models.User, error)
	// Details projects an authorized record onto the profile view.
	Details(ctx context.Context, user models.User) models.Profile
}

// TokenService issues and verifies signed, time-bounded identity tokens.
//
// Verify returns ErrTokenIsExpired or ErrTokenIsInvalid on failure and
// nothing else.
type TokenService interface {
	Issue(ctx context.Context, subjectID string) (models.Token, error)
	Verify(ctx context.Context, token string) (models.Token, error)
}

// CredentialHasher turns a plaintext secret into a stored digest and checks
// a plaintext against one.
type CredentialHasher interface {
	Hash(plaintext string) (string, error)
	Compare(digest, plaintext string) error
}

// IDGenerator assigns identifiers to new records.
type IDGenerator interface {
	Generate() string
}

// AppInfoService reports the running server version.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
