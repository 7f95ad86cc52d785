package http

import (
	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/metrics"
	"github.com/MKhiriev/go-copper-beam/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics
	landing  *landingPage

	ipOverride string

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, cfg config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		metrics:    m,
		landing:    newLandingPage(cfg.App),
		ipOverride: cfg.Geo.IPOverride,
		logger:     logger,
	}
}
