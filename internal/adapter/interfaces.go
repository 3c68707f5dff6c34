// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the go-auth-keeper server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// service layer from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrNotFound] for 404, [ErrUnauthorized] for 401). The
// server's stable message follows the sentinel text after ": ".
package adapter

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the
// go-auth-keeper server.
type ServerAdapter interface {
	// SetToken stores the token that will be attached to all subsequent
	// authenticated requests. An empty token clears it.
	SetToken(token string)

	// Token returns the token currently stored in the adapter, or an empty
	// string if no token has been set yet.
	Token() string

	// Register sends a registration request. The server issues no token on
	// registration; Login must follow.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates with the server. On success the issued token is
	// stored via SetToken and returned.
	Login(ctx context.Context, credentials models.Credentials) (string, error)

	// Details fetches the profile of the user owning the stored token.
	Details(ctx context.Context) (models.Profile, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
