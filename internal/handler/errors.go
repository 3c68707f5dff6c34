// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

var (
	// errNoHandlersAreCreated means the config enables neither the HTTP API
	// nor the gRPC health endpoint.
	errNoHandlersAreCreated = errors.New("no handlers are created")

	errServicesAreMissing = errors.New("http handler requires services")
)
