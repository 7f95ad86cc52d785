package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/cache"
	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/store"
	"github.com/MKhiriev/go-copper-beam/internal/validators"
	"github.com/MKhiriev/go-copper-beam/models"
)

const (
	// UserCacheTTL is how long a user read stays cached.
	UserCacheTTL = 5 * time.Minute
	// UserCacheSize caps the number of cached users.
	UserCacheSize = 10000
)

type userService struct {
	userRepository store.UserRepository
	cache          cache.Cache[string, models.User]
	validator      *validators.RequestValidator
	serverVersion  int

	logger *logger.Logger
}

// NewUserService builds a [UserService] caching reads in userCache.
func NewUserService(
	userRepository store.UserRepository,
	userCache cache.Cache[string, models.User],
	validator *validators.RequestValidator,
	cfg config.App,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository: userRepository,
		cache:          userCache,
		validator:      validator,
		serverVersion:  cfg.ServerVersion,
		logger:         logger,
	}
}

func (s *userService) GetUser(ctx context.Context, id string, force bool) (models.User, error) {
	if !force {
		if user, ok := s.cache.Get(ctx, id); ok {
			return user, nil
		}
	}

	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	s.cache.Set(ctx, user.ID, user)

	return user, nil
}

func (s *userService) GetUserByAddress(ctx context.Context, address string) (models.User, error) {
	user, err := s.userRepository.FindUserByAddress(ctx, address)
	if err != nil {
		return models.User{}, err
	}
	s.cache.Set(ctx, user.ID, user)

	return user, nil
}

func (s *userService) UpdateLastUserContact(ctx context.Context, userID string, at time.Time) error {
	return s.userRepository.UpdateLastUserContact(ctx, userID, at)
}

// DeleteUser removes the target user and everything recorded about it.
// The caller must be a registered admin. The target is resolved through the
// user cache first, so an unknown id is rejected before any write.
func (s *userService) DeleteUser(ctx context.Context, req models.RestRequest) (models.DeleteUserResponse, error) {
	log := logger.FromContext(ctx)

	details, caller, err := validators.ValidateRegisteredRequest[models.DeleteUserDetails](ctx, s.validator, s, req)
	if err != nil {
		return models.DeleteUserResponse{}, err
	}
	if !caller.Admin {
		log.Info().Str("func", "*userService.DeleteUser").Str("caller_id", caller.ID).Msg("non-admin attempted user deletion")
		return models.DeleteUserResponse{}, ErrNotAdmin
	}
	if details.UserID == "" {
		return models.DeleteUserResponse{}, ErrInvalidDeleteDetails
	}

	target, err := s.GetUser(ctx, details.UserID, false)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.DeleteUserResponse{}, ErrUserNotFound
	}
	if err != nil {
		return models.DeleteUserResponse{}, err
	}

	err = s.userRepository.DeleteUser(ctx, target.ID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.DeleteUserResponse{}, ErrUserNotFound
	}
	if err != nil {
		return models.DeleteUserResponse{}, err
	}
	s.cache.Remove(ctx, details.UserID)

	log.Info().
		Str("func", "*userService.DeleteUser").
		Str("caller_id", caller.ID).
		Str("user_id", target.ID).
		Str("address", target.Address).
		Msg("user deleted by admin")

	return models.DeleteUserResponse{
		RestResponse: models.RestResponse{ServerVersion: s.serverVersion},
		ID:           details.UserID,
	}, nil
}
