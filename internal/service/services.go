package service

import (
	"github.com/MKhiriev/go-copper-beam/internal/cache"
	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/crypto"
	"github.com/MKhiriev/go-copper-beam/internal/geo"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/metrics"
	"github.com/MKhiriev/go-copper-beam/internal/store"
	"github.com/MKhiriev/go-copper-beam/internal/validators"
	"github.com/MKhiriev/go-copper-beam/models"
)

type Services struct {
	RegistrationService RegistrationService
	UserService         UserService
	PingService         PingService
	PollService         PollService
}

// Dependencies groups the collaborators shared by the services.
type Dependencies struct {
	Storages  *store.Storages
	UserCache cache.Cache[string, models.User]
	Resolver  geo.Resolver
	Keys      crypto.KeyService
	Metrics   *metrics.Metrics
	Build     models.AppBuildInfo
}

func NewServices(deps Dependencies, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	validator := validators.NewRequestValidator(deps.Keys)

	pingService, err := NewPingService(cfg.App, deps.Build, logger)
	if err != nil {
		return nil, err
	}

	userService := NewUserService(deps.Storages.UserRepository, deps.UserCache, validator, cfg.App, logger)

	return &Services{
		RegistrationService: NewRegistrationService(
			deps.Storages.UserRepository,
			deps.Storages.RegistrationRepository,
			userService,
			deps.Resolver,
			validator,
			deps.Keys,
			cfg.App,
			deps.Metrics,
			logger,
		),
		UserService: userService,
		PingService: pingService,
		PollService: NewPollService(deps.Resolver, cfg.Workers, logger),
	}, nil
}
