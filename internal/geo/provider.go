package geo

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/utils"
	"github.com/MKhiriev/go-copper-beam/models"
)

const defaultLookupTimeout = 5 * time.Second

// lookupResponse is the ip-api style payload returned by the provider.
type lookupResponse struct {
	Status      string  `json:"status"`
	Country     string  `json:"country"`
	CountryCode string  `json:"countryCode"`
	Region      string  `json:"region"`
	RegionName  string  `json:"regionName"`
	City        string  `json:"city"`
	Zip         string  `json:"zip"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Timezone    string  `json:"timezone"`
	ISP         string  `json:"isp"`
	Org         string  `json:"org"`
	AS          string  `json:"as"`
	Query       string  `json:"query"`
	Message     string  `json:"message"`
}

type httpProvider struct {
	client    *utils.HTTPClient
	urlPrefix string
	urlSuffix string
}

// NewHTTPProvider returns a [Provider] that GETs urlPrefix + ip + urlSuffix.
// Every request is bounded by cfg.Timeout.
func NewHTTPProvider(cfg config.Geo) Provider {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultLookupTimeout
	}

	return &httpProvider{
		client:    utils.NewHTTPClient(timeout),
		urlPrefix: cfg.URLPrefix,
		urlSuffix: cfg.URLSuffix,
	}
}

// Lookup implements [Provider].
func (p *httpProvider) Lookup(ctx context.Context, ip string) (models.IPAddressRecord, error) {
	var payload lookupResponse

	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		SetResult(&payload).
		ForceContentType("application/json").
		Get(p.urlPrefix + ip + p.urlSuffix)
	if err != nil {
		return models.IPAddressRecord{}, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return models.IPAddressRecord{}, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status())
	}
	if payload.Status == "" {
		return models.IPAddressRecord{}, ErrInvalidResponse
	}

	return models.IPAddressRecord{
		IPAddress:   ip,
		Status:      models.IPAddressStatus(payload.Status),
		Country:     payload.Country,
		CountryCode: payload.CountryCode,
		Region:      payload.Region,
		RegionName:  payload.RegionName,
		City:        payload.City,
		Zip:         payload.Zip,
		Lat:         payload.Lat,
		Lon:         payload.Lon,
		Timezone:    payload.Timezone,
		ISP:         payload.ISP,
		Org:         payload.Org,
		AS:          payload.AS,
		Query:       payload.Query,
		Message:     payload.Message,
	}, nil
}
