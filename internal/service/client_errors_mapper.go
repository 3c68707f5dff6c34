// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-auth-keeper/internal/adapter"
	"github.com/MKhiriev/go-auth-keeper/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch msg {
		case app.MsgInvalidDataProvided:
			return ErrValidation
		case app.MsgEmailAlreadyExists:
			return ErrDuplicateEmail
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidPassword:
			return ErrInvalidCredentials
		case app.MsgTokenIsMissing:
			return ErrMissingToken
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsInvalid:
			return ErrTokenIsInvalid
		case app.MsgTokenUserNotFound:
			return ErrTokenUserNotFound
		}

	case errors.Is(err, adapter.ErrNotFound):
		if msg == app.MsgUserNotFound {
			return ErrUserNotFound
		}

	case errors.Is(err, adapter.ErrServiceUnavailable),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrTransport):
		return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
