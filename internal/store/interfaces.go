package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-copper-beam/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts and their address history.
type UserRepository interface {
	// FindUserByID returns ErrNoUserWasFound when id is unknown.
	FindUserByID(ctx context.Context, id string) (models.User, error)
	// FindUserByAddress matches the current address only.
	FindUserByAddress(ctx context.Context, address string) (models.User, error)
	// FindUserByHistoricalAddress matches any address the user ever held.
	FindUserByHistoricalAddress(ctx context.Context, address string) (models.User, error)

	// InsertUser stores user and its address history in one transaction.
	// A clash on any address yields ErrAddressAlreadyRegistered.
	InsertUser(ctx context.Context, user models.User) error

	// AddUserIPAddress appends ip to the user's IP list unless already
	// present, dropping the oldest entries past models.MaxUserIPAddresses
	// in the same statement. A non-nil loc also replaces the stored
	// location.
	AddUserIPAddress(ctx context.Context, userID string, ip string, loc *models.Location) error
	UpdateUserGeo(ctx context.Context, userID string, loc models.Location) error
	UpdateLastUserContact(ctx context.Context, userID string, at time.Time) error

	// DeleteUser removes the user, its address history and its
	// registration events in one transaction.
	DeleteUser(ctx context.Context, userID string) error
}

// IPAddressRepository persists IP geolocation records keyed by the
// lower-cased address.
type IPAddressRepository interface {
	// FindIPAddress returns ErrIPAddressNotFound when ip is unknown.
	FindIPAddress(ctx context.Context, ip string) (models.IPAddressRecord, error)
	// InsertIPAddress inserts record. If a record for the same address
	// already exists, the stored one is returned unchanged.
	InsertIPAddress(ctx context.Context, record models.IPAddressRecord) (models.IPAddressRecord, error)
	// UpdateIPAddress always sets status and last-updated; other fields are
	// only overwritten when non-empty in record.
	UpdateIPAddress(ctx context.Context, record models.IPAddressRecord) (models.IPAddressRecord, error)
	// FindStaleIPAddresses lists up to limit records with status whose
	// last update is older than before, oldest first.
	FindStaleIPAddresses(ctx context.Context, status models.IPAddressStatus, before time.Time, limit int) ([]models.IPAddressRecord, error)
}

// RegistrationRepository persists registration events.
type RegistrationRepository interface {
	InsertUserRegistration(ctx context.Context, registration models.UserRegistration) error
	// FindUserRegistrationBySessionID returns ErrRegistrationNotFound when
	// sessionID is unknown.
	FindUserRegistrationBySessionID(ctx context.Context, sessionID string) (models.UserRegistration, error)
	// ExistsUserRegistrationByFingerprint reports whether userID registered
	// before with fingerprint. For mobile devices the IP address must match
	// too, since mobile fingerprints collide often.
	ExistsUserRegistrationByFingerprint(ctx context.Context, userID, fingerprint string, mobile bool, ip string) (bool, error)
	// FindUserRegistrationDistinctFingerprints lists the distinct non-empty
	// desktop fingerprints userID has registered with.
	FindUserRegistrationDistinctFingerprints(ctx context.Context, userID string) ([]string, error)
}
