package geo

import (
	"context"

	"github.com/MKhiriev/go-copper-beam/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/geo_mock.go -package=mock

// Provider looks an IP address up at the external geolocation service.
type Provider interface {
	// Lookup returns the provider's answer for ip. The returned record has
	// no timestamps set. Any transport failure, non-200 status or payload
	// without a status is an error.
	Lookup(ctx context.Context, ip string) (models.IPAddressRecord, error)
}

// Resolver resolves IP addresses to geolocation records.
type Resolver interface {
	// Resolve never fails: every lookup or persistence problem is logged
	// and reported as ok == false, which callers treat as "unknown".
	Resolve(ctx context.Context, ip string, force bool) (record models.IPAddressRecord, ok bool)
	// RefreshStale re-resolves up to limit failed records whose retry
	// interval elapsed and returns how many were refreshed.
	RefreshStale(ctx context.Context, limit int) (int, error)
	// Close waits for in-flight background refreshes.
	Close()
}
