package service

import (
	"context"
	"os"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/models"
)

// isoMillis matches the ISO-8601 form clients already parse.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type pingService struct {
	product  string
	version  int
	server   string
	deployed string
	build    string

	logger *logger.Logger
}

// NewPingService builds a [PingService]. The deployment time is fixed at
// construction. An empty cfg.ServerID falls back to the host name.
func NewPingService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (PingService, error) {
	server := cfg.ServerID
	if server == "" {
		hostname, err := os.Hostname()
		if err != nil || hostname == "" {
			return nil, ErrServerIDIsNotSpecified
		}
		server = hostname
	}

	return &pingService{
		product:  cfg.Product,
		version:  cfg.ServerVersion,
		server:   server,
		deployed: time.Now().UTC().Format(isoMillis),
		build:    build.BuildVersion(),
		logger:   logger,
	}, nil
}

func (s *pingService) Ping(ctx context.Context) models.PingResponse {
	return models.PingResponse{
		Product:  s.product,
		Status:   "OK",
		Version:  s.version,
		Deployed: s.deployed,
		Server:   s.server,
		Build:    s.build,
	}
}
