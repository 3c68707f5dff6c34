package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

const defaultHealthCheckInterval = 30 * time.Second

// DirectoryHealthWorker pings the user directory at a fixed interval and
// reports the outcome to the gRPC health server.
type DirectoryHealthWorker struct {
	directory Pinger
	reporter  HealthReporter
	interval  time.Duration

	// serving is the last reported status; only the worker goroutine
	// touches it.
	serving bool

	logger *logger.Logger
}

func NewDirectoryHealthWorker(directory Pinger, reporter HealthReporter, interval time.Duration, logger *logger.Logger) *DirectoryHealthWorker {
	if interval <= 0 {
		interval = defaultHealthCheckInterval
	}
	return &DirectoryHealthWorker{
		directory: directory,
		reporter:  reporter,
		interval:  interval,
		serving:   true,
		logger:    logger,
	}
}

// Run checks once immediately, then on every tick until ctx ends.
func (w *DirectoryHealthWorker) Run(ctx context.Context) {
	w.logger.Info().Dur("interval", w.interval).Msg("directory health worker started")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.check(ctx)
		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("directory health worker stopped")
				return
			case <-ticker.C:
				w.check(ctx)
			}
		}
	}()
}

// check pings with a deadline of one interval so a hung backend cannot
// stall the loop.
func (w *DirectoryHealthWorker) check(ctx context.Context) {
	pingCtx, cancel := context.WithTimeout(ctx, w.interval)
	defer cancel()

	err := w.directory.Ping(pingCtx)
	if ctx.Err() != nil {
		return
	}

	serving := err == nil
	if serving != w.serving {
		if serving {
			w.logger.Info().Msg("user directory is reachable again")
		} else {
			w.logger.Err(err).Msg("user directory is unreachable")
		}
	}

	w.serving = serving
	w.reporter.SetServing(serving)
}
