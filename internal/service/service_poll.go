package service

import (
	"context"

	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/geo"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
)

// DefaultPollBatchSize is used when no batch size is configured.
const DefaultPollBatchSize = 100

type pollService struct {
	resolver  geo.Resolver
	batchSize int

	logger *logger.Logger
}

// NewPollService builds the maintenance task run by the periodic poller.
func NewPollService(resolver geo.Resolver, cfg config.Workers, logger *logger.Logger) PollService {
	batchSize := cfg.PollBatchSize
	if batchSize <= 0 {
		batchSize = DefaultPollBatchSize
	}

	return &pollService{
		resolver:  resolver,
		batchSize: batchSize,
		logger:    logger,
	}
}

// Poll re-resolves failed geolocation records whose retry interval elapsed.
func (s *pollService) Poll(ctx context.Context) error {
	refreshed, err := s.resolver.RefreshStale(ctx, s.batchSize)
	if err != nil {
		return err
	}
	if refreshed > 0 {
		s.logger.Info().Str("func", "*pollService.Poll").Int("refreshed", refreshed).Msg("stale ip geolocation records refreshed")
	}
	return nil
}
