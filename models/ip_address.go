package models

import "time"

// IPAddressStatus is the outcome of the last provider lookup.
type IPAddressStatus string

const (
	IPAddressStatusSuccess IPAddressStatus = "success"
	IPAddressStatusFail    IPAddressStatus = "fail"
)

const (
	// IPAddressSuccessLifetime is how long a successful lookup stays fresh.
	IPAddressSuccessLifetime = 30 * 24 * time.Hour
	// IPAddressFailRetryInterval is how long a failed lookup stays fresh
	// before it is retried.
	IPAddressFailRetryInterval = 24 * time.Hour
)

// IPAddressRecord is the persisted geolocation of one IP address, keyed by
// the lower-cased address.
type IPAddressRecord struct {
	IPAddress   string    `json:"ipAddress"`
	Created     time.Time `json:"created"`
	LastUpdated time.Time `json:"lastUpdated"`

	Status      IPAddressStatus `json:"status"`
	Country     string          `json:"country"`
	CountryCode string          `json:"countryCode"`
	Region      string          `json:"region"`
	RegionName  string          `json:"regionName"`
	City        string          `json:"city"`
	Zip         string          `json:"zip"`
	Lat         float64         `json:"lat"`
	Lon         float64         `json:"lon"`
	Timezone    string          `json:"timezone"`
	ISP         string          `json:"isp"`
	Org         string          `json:"org"`
	AS          string          `json:"as"`
	Query       string          `json:"query"`
	Message     string          `json:"message"`

	// Continent is derived from CountryCode on read and never persisted.
	Continent string `json:"continent,omitempty"`
}

// IsFresh reports whether the record is still within its freshness window
// at now: 30 days for successful lookups, 1 day for anything else.
func (r IPAddressRecord) IsFresh(now time.Time) bool {
	lifetime := IPAddressFailRetryInterval
	if r.Status == IPAddressStatusSuccess {
		lifetime = IPAddressSuccessLifetime
	}
	return now.Sub(r.LastUpdated) < lifetime
}

// HasGeo reports whether any location field is populated.
func (r IPAddressRecord) HasGeo() bool {
	return !r.Location().IsEmpty()
}

// Location projects the record onto the fields copied onto a user.
func (r IPAddressRecord) Location() Location {
	return Location{
		Country: r.Country,
		Region:  r.Region,
		City:    r.City,
		Zip:     r.Zip,
	}
}
