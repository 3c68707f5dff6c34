// Package grpc exposes the standard grpc.health.v1 service of the auth server.
package grpc

import (
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// AuthServiceName is the service name whose status mirrors the user
// directory. The overall ("") status follows it.
const AuthServiceName = "goauthkeeper.v1.AuthService"

// Handler owns the health server registered on the gRPC server.
//
// The serving status starts as SERVING, since the directory was reachable
// when storages were opened, and is flipped by the directory health worker.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] reporting SERVING.
func NewHandler(logger *logger.Logger) *Handler {
	h := &Handler{
		health: health.NewServer(),
		logger: logger,
	}
	h.SetServing(true)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// SetServing switches both the overall and the auth service status.
func (h *Handler) SetServing(serving bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(AuthServiceName, status)
}

// Shutdown reports NOT_SERVING to every watcher and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}
