// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrNoUserInContext is returned when a protected handler runs without
	// the auth middleware having stored the caller.
	ErrNoUserInContext = errors.New("no authorized user in request context")

	// errRouteNotFound answers unknown paths and unsupported methods.
	errRouteNotFound = errors.New("route not found")
)
