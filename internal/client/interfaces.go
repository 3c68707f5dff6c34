// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/internal/tui"
)

var errUserQuit = tui.ErrUserQuit

// Client is a runnable client application.
type Client interface {
	// Run starts the client and blocks until exit.
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
