package models

import "time"

// UserStatus is the lifecycle state of a user account.
type UserStatus string

const (
	UserStatusActive  UserStatus = "active"
	UserStatusDeleted UserStatus = "deleted"
)

// UserAccountType distinguishes regular accounts from network accounts.
type UserAccountType string

const (
	UserAccountTypeNormal  UserAccountType = "normal"
	UserAccountTypeNetwork UserAccountType = "network"
)

// MaxUserIPAddresses caps User.IPAddresses. When a new address would
// exceed the cap, the oldest entry is evicted.
const MaxUserIPAddresses = 64

// User is a registered account identified by the address derived from its
// public key.
type User struct {
	// ID is the opaque unique identifier assigned at creation.
	ID string `json:"id"`

	Added  time.Time       `json:"added"`
	Status UserStatus      `json:"status"`
	Type   UserAccountType `json:"type"`

	// Address is unique across all users and all address history entries.
	Address   string `json:"address"`
	PublicKey string `json:"publicKey"`

	// EncryptedPrivateKey is stored for accounts whose keys are escrowed.
	// Registration leaves it empty.
	EncryptedPrivateKey string `json:"-"`

	// AddressHistory lists every address the user has ever held,
	// including the current one.
	AddressHistory []UserAddressHistory `json:"addressHistory"`

	Balance     float64   `json:"balance"`
	LastContact time.Time `json:"lastContact"`
	Admin       bool      `json:"admin"`

	// IPAddresses holds distinct client IPs in insertion order, oldest
	// first, at most MaxUserIPAddresses entries.
	IPAddresses []string `json:"ipAddresses"`

	Location

	OriginalReferrer    string `json:"originalReferrer"`
	OriginalLandingPage string `json:"originalLandingPage"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// HasIPAddress reports whether ip is already in u.IPAddresses.
func (u User) HasIPAddress(ip string) bool {
	for _, known := range u.IPAddresses {
		if known == ip {
			return true
		}
	}
	return false
}

// UserAddressHistory records one address held by a user.
type UserAddressHistory struct {
	Address   string    `json:"address"`
	PublicKey string    `json:"publicKey"`
	Added     time.Time `json:"added"`
}

// Location is the coarse geographic data copied onto a user from an
// IP address record.
type Location struct {
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// IsEmpty reports whether no location field is set.
func (l Location) IsEmpty() bool {
	return l.Country == "" && l.Region == "" && l.City == "" && l.Zip == ""
}
