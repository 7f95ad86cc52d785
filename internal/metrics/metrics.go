package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registration outcomes.
const (
	OutcomeExisting = "existing"
	OutcomeCreated  = "created"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

// Geo lookup outcomes.
const (
	GeoCacheHit     = "cache_hit"
	GeoFresh        = "fresh"
	GeoStaleRefresh = "stale_refresh"
	GeoLookedUp     = "looked_up"
	GeoLookupFailed = "lookup_failed"
	GeoDisabled     = "disabled"
)

// Metrics holds all Prometheus metrics for the server.
type Metrics struct {
	Registrations     *prometheus.CounterVec
	UsersCreated      prometheus.Counter
	GeoLookups        *prometheus.CounterVec
	PollCyclesSkipped prometheus.Counter
	PollDuration      prometheus.Histogram

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with a fresh registry.
func New() *Metrics {
	return NewWithRegistry(prometheus.NewRegistry())
}

// NewWithRegistry creates the collectors and registers them with reg.
func NewWithRegistry(reg *prometheus.Registry) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		Registrations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "copper_beam_registrations_total",
			Help: "Total number of register-user calls by outcome",
		}, []string{"outcome"}),
		UsersCreated: factory.NewCounter(prometheus.CounterOpts{
			Name: "copper_beam_users_created_total",
			Help: "Total number of users created",
		}),
		GeoLookups: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "copper_beam_geo_resolutions_total",
			Help: "Total number of ip geolocation resolutions by outcome",
		}, []string{"outcome"}),
		PollCyclesSkipped: factory.NewCounter(prometheus.CounterOpts{
			Name: "copper_beam_poll_cycles_skipped_total",
			Help: "Total number of poll ticks skipped because the previous cycle was still running",
		}),
		PollDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "copper_beam_poll_duration_seconds",
			Help:    "Duration of completed poll cycles",
			Buckets: prometheus.DefBuckets,
		}),
		gatherer: reg,
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func (m *Metrics) IncrementRegistrations(outcome string) {
	m.Registrations.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementUsersCreated() {
	m.UsersCreated.Inc()
}

func (m *Metrics) IncrementGeoLookups(outcome string) {
	m.GeoLookups.WithLabelValues(outcome).Inc()
}

func (m *Metrics) IncrementPollCyclesSkipped() {
	m.PollCyclesSkipped.Inc()
}

func (m *Metrics) ObservePollDuration(seconds float64) {
	m.PollDuration.Observe(seconds)
}
