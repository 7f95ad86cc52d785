// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package geo

import (
	"context"
	"errors"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/cache"
	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/metrics"
	"github.com/MKhiriev/go-copper-beam/internal/store"
	"github.com/MKhiriev/go-copper-beam/models"
	"golang.org/x/sync/singleflight"
)

const (
	// CacheTTL is how long a resolved record is served from the cache.
	CacheTTL = time.Hour
	// CacheSize caps the number of cached records.
	CacheSize = 10000
)

type resolver struct {
	enabled  bool
	provider Provider
	repo     store.IPAddressRepository
	cache    cache.Cache[string, models.IPAddressRecord]
	metrics  *metrics.Metrics
	logger   *logger.Logger

	now       func() time.Time
	group     singleflight.Group
	refreshes sync.WaitGroup
}

// NewResolver builds a [Resolver]. When cfg.Enabled is false the provider
// is never called and only persisted records are returned.
func NewResolver(
	cfg config.Geo,
	provider Provider,
	repo store.IPAddressRepository,
	cache cache.Cache[string, models.IPAddressRecord],
	m *metrics.Metrics,
	log *logger.Logger,
) Resolver {
	return &resolver{
		enabled:  cfg.Enabled,
		provider: provider,
		repo:     repo,
		cache:    cache,
		metrics:  m,
		logger:   log,
		now:      time.Now,
	}
}

// Resolve implements [Resolver].
func (r *resolver) Resolve(ctx context.Context, ip string, force bool) (models.IPAddressRecord, bool) {
	ip = strings.ToLower(strings.TrimSpace(ip))
	if ip == "" || isLoopback(ip) {
		return models.IPAddressRecord{}, false
	}
	// Forwarded headers are client supplied; only literal addresses reach storage.
	if net.ParseIP(ip) == nil {
		return models.IPAddressRecord{}, false
	}

	if !force {
		if record, ok := r.cache.Get(ctx, ip); ok {
			r.metrics.IncrementGeoLookups(metrics.GeoCacheHit)
			return record, true
		}
	}

	log := logger.FromContext(ctx)

	record, err := r.repo.FindIPAddress(ctx, ip)
	found := err == nil
	if err != nil && !errors.Is(err, store.ErrIPAddressNotFound) {
		log.Err(err).Str("func", "*resolver.Resolve").Str("ip", ip).Msg("error reading ip address record")
		return models.IPAddressRecord{}, false
	}
	if found {
		record = decorate(record)
	}

	if found && record.IsFresh(r.now()) {
		r.metrics.IncrementGeoLookups(metrics.GeoFresh)
		r.cache.Set(ctx, ip, record)
		return record, true
	}

	if !r.enabled {
		r.metrics.IncrementGeoLookups(metrics.GeoDisabled)
		return record, found
	}

	if found {
		// serve the stale record while the refresh runs detached
		r.metrics.IncrementGeoLookups(metrics.GeoStaleRefresh)
		r.cache.Set(ctx, ip, record)
		r.refreshAsync(ctx, ip)
		return record, true
	}

	return r.lookup(ctx, ip, false)
}

// RefreshStale implements [Resolver].
func (r *resolver) RefreshStale(ctx context.Context, limit int) (int, error) {
	if !r.enabled || limit <= 0 {
		return 0, nil
	}

	before := r.now().Add(-models.IPAddressFailRetryInterval)
	records, err := r.repo.FindStaleIPAddresses(ctx, models.IPAddressStatusFail, before, limit)
	if err != nil {
		return 0, err
	}

	refreshed := 0
	for _, record := range records {
		if ctx.Err() != nil {
			break
		}
		if _, ok := r.lookup(ctx, record.IPAddress, true); ok {
			refreshed++
		}
	}

	return refreshed, ctx.Err()
}

// Close implements [Resolver].
func (r *resolver) Close() {
	r.refreshes.Wait()
}

func (r *resolver) refreshAsync(ctx context.Context, ip string) {
	detached := context.WithoutCancel(ctx)
	r.refreshes.Go(func() {
		r.lookup(detached, ip, true)
	})
}

// lookup asks the provider and persists the answer. Concurrent lookups of
// one address share a single provider call.
func (r *resolver) lookup(ctx context.Context, ip string, existing bool) (models.IPAddressRecord, bool) {
	v, err, _ := r.group.Do(ip, func() (any, error) {
		return r.fetchAndStore(ctx, ip, existing)
	})
	if err != nil {
		return models.IPAddressRecord{}, false
	}
	return v.(models.IPAddressRecord), true
}

func (r *resolver) fetchAndStore(ctx context.Context, ip string, existing bool) (models.IPAddressRecord, error) {
	log := logger.FromContext(ctx)
	log.Debug().Str("func", "*resolver.fetchAndStore").Str("ip", ip).Msg("fetching geo location")

	looked, err := r.provider.Lookup(ctx, ip)
	if err != nil {
		r.metrics.IncrementGeoLookups(metrics.GeoLookupFailed)
		log.Warn().Err(err).Str("func", "*resolver.fetchAndStore").Str("ip", ip).Msg("geo lookup failed")
		return models.IPAddressRecord{}, err
	}

	now := r.now()
	looked.IPAddress = ip
	looked.LastUpdated = now

	var stored models.IPAddressRecord
	if existing {
		stored, err = r.repo.UpdateIPAddress(ctx, looked)
	} else {
		looked.Created = now
		stored, err = r.repo.InsertIPAddress(ctx, looked)
	}
	if err != nil {
		log.Err(err).Str("func", "*resolver.fetchAndStore").Str("ip", ip).Msg("error storing ip address record")
		return models.IPAddressRecord{}, err
	}

	stored = decorate(stored)
	r.metrics.IncrementGeoLookups(metrics.GeoLookedUp)
	r.cache.Set(ctx, ip, stored)

	log.Info().
		Str("func", "*resolver.fetchAndStore").
		Str("ip", ip).
		Str("status", string(stored.Status)).
		Str("country", CountryName(stored.CountryCode)).
		Str("continent", stored.Continent).
		Str("city", stored.City).
		Msg("geo location resolved")

	return stored, nil
}

func decorate(record models.IPAddressRecord) models.IPAddressRecord {
	record.Continent = ContinentName(record.CountryCode)
	return record
}

func isLoopback(ip string) bool {
	switch ip {
	case "::1", "localhost", "127.0.0.1":
		return true
	}
	parsed := net.ParseIP(ip)
	return parsed != nil && parsed.IsLoopback()
}
