package validators

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-copper-beam/internal/crypto"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/store"
	"github.com/MKhiriev/go-copper-beam/models"
)

// Field names accepted by [RequestValidator.Validate].
const (
	FieldVersion   = "version"
	FieldDetails   = "details"
	FieldSignature = "signature"
	FieldTimestamp = "timestamp"
)

const (
	// SupportedVersion is the only envelope version accepted.
	SupportedVersion = 1
	// MaxClockSkew bounds the distance between a payload timestamp and the
	// server clock.
	MaxClockSkew = 15 * time.Minute
)

// RequestValidator validates signed envelopes against a public key.
type RequestValidator struct {
	keys         crypto.KeyService
	now          func() time.Time
	maxClockSkew time.Duration
}

// NewRequestValidator returns a validator using keys for signature checks.
func NewRequestValidator(keys crypto.KeyService) *RequestValidator {
	return &RequestValidator{
		keys:         keys,
		now:          time.Now,
		maxClockSkew: MaxClockSkew,
	}
}

// Validate implements [Validator] for [models.RestRequest] (envelope shape)
// and [models.Signable] (timestamp freshness). With no fields every check
// for the type runs.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RestRequest:
		return v.validateEnvelope(value, fields...)
	case *models.RestRequest:
		if value == nil {
			return ErrMalformedRequest
		}
		return v.validateEnvelope(*value, fields...)
	case models.Signable:
		return v.validateSignable(value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *RequestValidator) validateEnvelope(req models.RestRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldVersion, FieldDetails, FieldSignature}
	}

	for _, field := range fields {
		switch field {
		case FieldVersion:
			if req.Version != SupportedVersion {
				return ErrMalformedRequest
			}
		case FieldDetails:
			if req.Details == "" {
				return ErrMalformedRequest
			}
		case FieldSignature:
			if req.Signature == "" {
				return ErrMalformedRequest
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

func (v *RequestValidator) validateSignable(s models.Signable, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTimestamp}
	}

	for _, field := range fields {
		switch field {
		case FieldTimestamp:
			if s.Timestamp == 0 {
				return ErrStaleTimestamp
			}
			skew := v.now().Sub(time.UnixMilli(s.Timestamp)).Abs()
			if skew > v.maxClockSkew {
				return ErrStaleTimestamp
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}
	return nil
}

// VerifySignature checks req against publicKeyPEM and then checks the
// freshness of envelope.
func (v *RequestValidator) VerifySignature(ctx context.Context, req models.RestRequest, envelope models.Signable, publicKeyPEM string) error {
	if publicKeyPEM == "" {
		return ErrNoPublicKey
	}

	valid, err := v.keys.Verify(req.Details, publicKeyPEM, req.Signature)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "*RequestValidator.VerifySignature").Msg("public key rejected")
		return ErrInvalidPublicKey
	}
	if !valid {
		return ErrInvalidSignature
	}

	return v.Validate(ctx, envelope, FieldTimestamp)
}

// ParseRequest checks the envelope shape and decodes its details into T.
func ParseRequest[T models.Signer](ctx context.Context, v *RequestValidator, req models.RestRequest) (T, error) {
	var details T

	if err := v.Validate(ctx, req); err != nil {
		return details, err
	}
	if err := json.Unmarshal([]byte(req.Details), &details); err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "ParseRequest").Msg("details are not valid json")
		return details, ErrMalformedRequest
	}

	return details, nil
}

// ValidateRequest runs the full check sequence with a caller-supplied key,
// as registration does with the key embedded in its own payload. The key
// is taken from the parsed details through publicKey.
func ValidateRequest[T models.Signer](ctx context.Context, v *RequestValidator, req models.RestRequest, publicKey func(T) string) (T, error) {
	details, err := ParseRequest[T](ctx, v, req)
	if err != nil {
		return details, err
	}

	if err := v.VerifySignature(ctx, req, details.Envelope(), publicKey(details)); err != nil {
		return details, err
	}
	return details, nil
}

// ValidateRegisteredRequest runs the full check sequence for a request
// signed by an existing user, whose stored key is looked up by the payload
// address. On success the user's last contact is updated.
func ValidateRegisteredRequest[T models.Signer](ctx context.Context, v *RequestValidator, users RegisteredUsers, req models.RestRequest) (T, models.User, error) {
	details, err := ParseRequest[T](ctx, v, req)
	if err != nil {
		return details, models.User{}, err
	}

	user, err := users.GetUserByAddress(ctx, details.Envelope().Address)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return details, models.User{}, ErrUnknownUser
	}
	if err != nil {
		return details, models.User{}, err
	}

	if err := v.VerifySignature(ctx, req, details.Envelope(), user.PublicKey); err != nil {
		return details, models.User{}, err
	}

	if err := users.UpdateLastUserContact(ctx, user.ID, v.now()); err != nil {
		return details, models.User{}, err
	}

	return details, user, nil
}
