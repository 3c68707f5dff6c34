package server

import "context"

// Server runs every enabled transport until its context ends.
type Server interface {
	// RunServer serves until ctx is canceled or a transport fails, then
	// shuts every transport down within the configured timeout.
	RunServer(ctx context.Context) error
}

// transport is one listening server managed by [Server].
type transport interface {
	Name() string
	Addr() string
	RunServer() error
	Shutdown(ctx context.Context) error
}
