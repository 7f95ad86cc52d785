// Package grpc exposes the server's health over the standard gRPC health
// protocol, so that orchestrators can probe it without speaking HTTP.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// ServiceName is the health service name answered besides the empty
// (whole server) name.
const ServiceName = "copperbeam"

// Handler answers gRPC health checks from the ping service.
type Handler struct {
	grpc_health_v1.UnimplementedHealthServer

	services *service.Services

	logger *logger.Logger
}

// NewHandler constructs a [Handler] backed by services.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Register installs the health service on server.
func (h *Handler) Register(server grpc.ServiceRegistrar) {
	grpc_health_v1.RegisterHealthServer(server, h)
}

func (h *Handler) Check(ctx context.Context, req *grpc_health_v1.HealthCheckRequest) (*grpc_health_v1.HealthCheckResponse, error) {
	if name := req.GetService(); name != "" && name != ServiceName {
		return nil, status.Errorf(codes.NotFound, "unknown service %q", name)
	}
	return &grpc_health_v1.HealthCheckResponse{Status: h.servingStatus(ctx)}, nil
}

func (h *Handler) Watch(req *grpc_health_v1.HealthCheckRequest, stream grpc_health_v1.Health_WatchServer) error {
	if name := req.GetService(); name != "" && name != ServiceName {
		return stream.Send(&grpc_health_v1.HealthCheckResponse{Status: grpc_health_v1.HealthCheckResponse_SERVICE_UNKNOWN})
	}
	return stream.Send(&grpc_health_v1.HealthCheckResponse{Status: h.servingStatus(stream.Context())})
}

func (h *Handler) servingStatus(ctx context.Context) grpc_health_v1.HealthCheckResponse_ServingStatus {
	if h.services.PingService.Ping(ctx).Status != "OK" {
		return grpc_health_v1.HealthCheckResponse_NOT_SERVING
	}
	return grpc_health_v1.HealthCheckResponse_SERVING
}
