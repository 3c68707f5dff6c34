package store

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

// UserDirectory is the persistent set of user records. Records are created
// once and never updated or deleted. Email is unique across the directory.
//
// Driver and network failures are reported wrapped in
// [ErrDirectoryUnavailable].
//
//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock
type UserDirectory interface {
	// CreateUser persists user. Returns [ErrEmailAlreadyExists] when a
	// record with the same email is already present.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns the record with exactly this email, or
	// [ErrNoUserWasFound].
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns the record with this id, or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error
	// Close releases the backend connection.
	Close(ctx context.Context) error
}
