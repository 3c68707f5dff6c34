package workers

import (
	"context"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/handler"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers the current configuration needs. The
// directory health worker runs only when the gRPC health endpoint is on.
func NewWorkers(storages *store.Storages, handlers *handler.Handlers, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if handlers.GRPC != nil {
		w.workers = append(w.workers,
			NewDirectoryHealthWorker(storages.UserDirectory, handlers.GRPC, cfg.HealthCheckInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("workers created")
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
