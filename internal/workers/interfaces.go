// Package workers runs the background jobs of the auth server.
package workers

import "context"

// Worker is a background job. Run must return promptly and keep working in
// its own goroutine until ctx ends.
type Worker interface {
	Run(ctx context.Context)
}

// HealthReporter receives the result of each directory health check.
type HealthReporter interface {
	SetServing(serving bool)
}

// Pinger is the part of the user directory the health worker needs.
type Pinger interface {
	Ping(ctx context.Context) error
}
