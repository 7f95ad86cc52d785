package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"
	"time"

	"github.com/MKhiriev/go-copper-beam/models"
)

// RegistrationService runs the register-user workflow.
type RegistrationService interface {
	// RegisterUser validates the signed request, creates the account or
	// merges the caller's IP into an existing one, and records a
	// registration event.
	RegisterUser(ctx context.Context, req models.RestRequest, client models.ClientInfo) (models.RegisterUserResponse, error)
}

// UserService reads users through a short-lived cache and handles
// administrative deletion.
type UserService interface {
	// GetUser serves from the cache unless force is set.
	GetUser(ctx context.Context, id string, force bool) (models.User, error)
	// GetUserByAddress always reads storage and refreshes the cache.
	GetUserByAddress(ctx context.Context, address string) (models.User, error)
	UpdateLastUserContact(ctx context.Context, userID string, at time.Time) error
	// DeleteUser handles a signed delete-user request from an admin.
	DeleteUser(ctx context.Context, req models.RestRequest) (models.DeleteUserResponse, error)
}

// PingService reports liveness details.
type PingService interface {
	Ping(ctx context.Context) models.PingResponse
}

// PollService runs the periodic maintenance cycle.
type PollService interface {
	Poll(ctx context.Context) error
}
