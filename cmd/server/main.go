package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-copper-beam/internal/cache"
	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/crypto"
	"github.com/MKhiriev/go-copper-beam/internal/geo"
	"github.com/MKhiriev/go-copper-beam/internal/handler"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/metrics"
	"github.com/MKhiriev/go-copper-beam/internal/server"
	"github.com/MKhiriev/go-copper-beam/internal/service"
	"github.com/MKhiriev/go-copper-beam/internal/store"
	"github.com/MKhiriev/go-copper-beam/internal/workers"
	"github.com/MKhiriev/go-copper-beam/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("copper-beam-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	redisClient, err := cache.NewRedisClient(ctx, cfg.Storage.Redis.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to redis")
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	userCache := cache.NewLRU[string, models.User](service.UserCacheSize, service.UserCacheTTL)
	geoCache := cache.NewLRU[string, models.IPAddressRecord](geo.CacheSize, geo.CacheTTL)
	var (
		users   cache.Cache[string, models.User]            = userCache
		records cache.Cache[string, models.IPAddressRecord] = geoCache
	)
	if redisClient != nil {
		users = cache.NewTiered[string, models.User](userCache,
			cache.NewRedis[models.User](redisClient, cfg.Storage.Redis.Prefix+"user:", service.UserCacheTTL))
		records = cache.NewTiered[string, models.IPAddressRecord](geoCache,
			cache.NewRedis[models.IPAddressRecord](redisClient, cfg.Storage.Redis.Prefix+"ip:", geo.CacheTTL))
		log.Info().Msg("redis cache tier enabled")
	}

	resolver := geo.NewResolver(cfg.Geo, geo.NewHTTPProvider(cfg.Geo), storages.IPAddressRepository, records, m, log)
	defer resolver.Close()

	services, err := service.NewServices(service.Dependencies{
		Storages:  storages,
		UserCache: users,
		Resolver:  resolver,
		Keys:      crypto.NewKeyService(),
		Metrics:   m,
		Build:     models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
	}, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, m, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	background := workers.NewWorkers(
		workers.NewPoller("User.poll", cfg.Workers.PollInterval, services.PollService, m, log),
	)
	background.Run(ctx)

	if err := srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped")
	}

	cancel()
	background.Wait()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
