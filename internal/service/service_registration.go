// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/crypto"
	"github.com/MKhiriev/go-copper-beam/internal/geo"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/metrics"
	"github.com/MKhiriev/go-copper-beam/internal/store"
	"github.com/MKhiriev/go-copper-beam/internal/utils"
	"github.com/MKhiriev/go-copper-beam/internal/validators"
	"github.com/MKhiriev/go-copper-beam/models"
)

// referralParam is the landing URL query parameter carrying the address of
// the referring user.
const referralParam = "s"

type idGenerator interface {
	Generate() string
}

type registrationService struct {
	userRepository         store.UserRepository
	registrationRepository store.RegistrationRepository
	users                  UserService
	resolver               geo.Resolver
	validator              *validators.RequestValidator
	keys                   crypto.KeyService
	metrics                *metrics.Metrics

	serverVersion int
	ids           idGenerator
	now           func() time.Time

	logger *logger.Logger
}

// NewRegistrationService builds the [RegistrationService] backing
// register-user.
func NewRegistrationService(
	userRepository store.UserRepository,
	registrationRepository store.RegistrationRepository,
	users UserService,
	resolver geo.Resolver,
	validator *validators.RequestValidator,
	keys crypto.KeyService,
	cfg config.App,
	m *metrics.Metrics,
	logger *logger.Logger,
) RegistrationService {
	return &registrationService{
		userRepository:         userRepository,
		registrationRepository: registrationRepository,
		users:                  users,
		resolver:               resolver,
		validator:              validator,
		keys:                   keys,
		metrics:                m,
		serverVersion:          cfg.ServerVersion,
		ids:                    utils.NewUUIDGenerator(),
		now:                    time.Now,
		logger:                 logger,
	}
}

func registrationPublicKey(d models.RegisterUserDetails) string {
	return d.PublicKey
}

// RegisterUser authenticates the caller with the key it claims, then finds
// or creates its account and records the registration event.
func (s *registrationService) RegisterUser(ctx context.Context, req models.RestRequest, client models.ClientInfo) (models.RegisterUserResponse, error) {
	resp, outcome, err := s.register(ctx, req, client)
	if err != nil {
		if isClientError(err) {
			outcome = metrics.OutcomeRejected
		} else {
			outcome = metrics.OutcomeFailed
		}
	}
	s.metrics.IncrementRegistrations(outcome)

	return resp, err
}

func (s *registrationService) register(ctx context.Context, req models.RestRequest, client models.ClientInfo) (models.RegisterUserResponse, string, error) {
	log := logger.FromContext(ctx).With().Str("func", "*registrationService.RegisterUser").Logger()

	details, err := validators.ValidateRequest(ctx, s.validator, req, registrationPublicKey)
	if err != nil {
		log.Debug().Err(err).Msg("registration request rejected")
		return models.RegisterUserResponse{}, "", err
	}
	if details.Address == "" || details.PublicKey == "" {
		return models.RegisterUserResponse{}, "", ErrInvalidRegistrationDetails
	}

	derived, err := s.keys.DeriveAddress(details.PublicKey)
	if err != nil || derived != details.Address {
		log.Debug().Str("address", details.Address).Str("derived", derived).Msg("address does not match public key")
		return models.RegisterUserResponse{}, "", ErrAddressInconsistent
	}

	ip := strings.ToLower(strings.TrimSpace(client.IPAddress))
	location, hasGeo := s.resolver.Resolve(ctx, ip, false)
	userAgent := details.UserAgent
	if userAgent == "" {
		userAgent = client.UserAgent
	}
	isMobile := strings.Contains(strings.ToLower(userAgent), "mobi")
	now := s.now()

	outcome := metrics.OutcomeExisting
	user, err := s.users.GetUserByAddress(ctx, details.Address)
	switch {
	case err == nil:
		if err := s.mergeClient(ctx, user, ip, location, hasGeo); err != nil {
			return models.RegisterUserResponse{}, "", err
		}
	case errors.Is(err, store.ErrNoUserWasFound):
		user, err = s.createUser(ctx, details, ip, location, hasGeo, now)
		if err != nil {
			return models.RegisterUserResponse{}, "", err
		}
		outcome = metrics.OutcomeCreated
		s.metrics.IncrementUsersCreated()
		log.Info().Str("user_id", user.ID).Str("address", user.Address).Msg("user created")
	default:
		return models.RegisterUserResponse{}, "", fmt.Errorf("finding user by address: %w", err)
	}

	registration := models.UserRegistration{
		SessionID:       s.ids.Generate(),
		UserID:          user.ID,
		At:              now,
		IPAddress:       ip,
		Fingerprint:     details.Fingerprint,
		IsMobile:        isMobile,
		Address:         details.Address,
		Referrer:        details.Referrer,
		LandingPage:     details.LandingURL,
		UserAgent:       userAgent,
		ReferringUserID: s.referringUserID(ctx, details.LandingURL),
	}
	if err := s.registrationRepository.InsertUserRegistration(ctx, registration); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("failed to record registration")
		return models.RegisterUserResponse{}, "", fmt.Errorf("recording registration: %w", err)
	}

	return models.RegisterUserResponse{
		RestResponse: models.RestResponse{ServerVersion: s.serverVersion},
		SessionID:    registration.SessionID,
		ID:           user.ID,
		Admin:        user.Admin,
	}, outcome, nil
}

// mergeClient records a new client IP on an existing user; storage evicts
// the oldest one past the cap. When the IP is already known, only a changed
// city refreshes the stored location.
func (s *registrationService) mergeClient(ctx context.Context, user models.User, ip string, location models.IPAddressRecord, hasGeo bool) error {
	if ip != "" && !user.HasIPAddress(ip) {
		var loc *models.Location
		if hasGeo && location.HasGeo() {
			l := location.Location()
			loc = &l
		}
		if err := s.userRepository.AddUserIPAddress(ctx, user.ID, ip, loc); err != nil {
			return fmt.Errorf("adding user ip address: %w", err)
		}
		return nil
	}

	if hasGeo && location.City != "" && location.City != user.City {
		if err := s.userRepository.UpdateUserGeo(ctx, user.ID, location.Location()); err != nil {
			return fmt.Errorf("updating user geo: %w", err)
		}
	}
	return nil
}

func (s *registrationService) createUser(ctx context.Context, details models.RegisterUserDetails, ip string, location models.IPAddressRecord, hasGeo bool, now time.Time) (models.User, error) {
	_, err := s.userRepository.FindUserByHistoricalAddress(ctx, details.Address)
	if err == nil {
		return models.User{}, ErrAddressReused
	}
	if !errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, fmt.Errorf("checking address history: %w", err)
	}

	user := models.User{
		ID:        s.ids.Generate(),
		Added:     now,
		Status:    models.UserStatusActive,
		Type:      models.UserAccountTypeNormal,
		Address:   details.Address,
		PublicKey: details.PublicKey,
		AddressHistory: []models.UserAddressHistory{{
			Address:   details.Address,
			PublicKey: details.PublicKey,
			Added:     now,
		}},
		LastContact:         now,
		IPAddresses:         []string{},
		OriginalReferrer:    details.Referrer,
		OriginalLandingPage: details.LandingURL,
	}
	if ip != "" {
		user.IPAddresses = append(user.IPAddresses, ip)
	}
	if hasGeo {
		user.Location = location.Location()
	}

	err = s.userRepository.InsertUser(ctx, user)
	if errors.Is(err, store.ErrAddressAlreadyRegistered) {
		return models.User{}, ErrAddressReused
	}
	if err != nil {
		return models.User{}, fmt.Errorf("inserting user: %w", err)
	}

	return user, nil
}

// referringUserID resolves the "s" parameter of the landing URL to a user
// id, by current address first and by historical address second. Any
// failure leaves the referral unset.
func (s *registrationService) referringUserID(ctx context.Context, landingURL string) string {
	if landingURL == "" {
		return ""
	}
	log := logger.FromContext(ctx)

	parsed, err := url.Parse(landingURL)
	if err != nil {
		log.Warn().Err(err).Str("landing_url", landingURL).Msg("landing url could not be parsed")
		return ""
	}
	address := parsed.Query().Get(referralParam)
	if address == "" {
		return ""
	}

	if referrer, err := s.users.GetUserByAddress(ctx, address); err == nil {
		return referrer.ID
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Warn().Err(err).Str("referrer_address", address).Msg("failed to resolve referring user")
		return ""
	}

	referrer, err := s.userRepository.FindUserByHistoricalAddress(ctx, address)
	if err != nil {
		if !errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Err(err).Str("referrer_address", address).Msg("failed to resolve referring user")
		}
		return ""
	}
	return referrer.ID
}

func isClientError(err error) bool {
	for _, target := range []error{
		validators.ErrMalformedRequest,
		validators.ErrNoPublicKey,
		validators.ErrInvalidPublicKey,
		validators.ErrInvalidSignature,
		validators.ErrStaleTimestamp,
		validators.ErrUnknownUser,
		ErrInvalidRegistrationDetails,
		ErrAddressInconsistent,
		ErrAddressReused,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
