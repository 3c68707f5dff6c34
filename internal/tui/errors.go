// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-auth-keeper/internal/service"
)

// humanizeError turns client service errors into a line for the status bar.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrServerUnavailable):
		return "server is unavailable, try again later"
	case errors.Is(err, service.ErrValidation):
		return "email and password are required"
	case errors.Is(err, service.ErrDuplicateEmail):
		return "this email is already registered"
	case errors.Is(err, service.ErrUserNotFound):
		return "no account with this email"
	case errors.Is(err, service.ErrInvalidCredentials):
		return "wrong password"
	case errors.Is(err, service.ErrNotLoggedIn), errors.Is(err, service.ErrMissingToken):
		return "log in first"
	case errors.Is(err, service.ErrTokenIsExpired):
		return "session expired, log in again"
	case errors.Is(err, service.ErrTokenIsInvalid), errors.Is(err, service.ErrTokenUserNotFound):
		return "session is no longer valid, log in again"
	default:
		return err.Error()
	}
}
