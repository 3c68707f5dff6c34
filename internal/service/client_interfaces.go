package service

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService is the client-side view of the auth API. The token
// obtained by Login is held in memory for the lifetime of the process.
type ClientAuthService interface {
	// Register creates an account on the server.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates against the server and keeps the issued token.
	// Returns the subject id read from the token.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// Profile fetches the profile of the logged-in user. Returns
	// ErrNotLoggedIn when Login has not succeeded yet.
	Profile(ctx context.Context) (models.Profile, error)

	// Token returns the token obtained by the last successful Login.
	Token() string

	// Logout forgets the held token.
	Logout()
}
