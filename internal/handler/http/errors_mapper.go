package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/service"
	"github.com/MKhiriev/go-copper-beam/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrMalformedRequest: http.StatusBadRequest,
	validators.ErrNoPublicKey:      http.StatusUnauthorized,
	validators.ErrInvalidPublicKey: http.StatusUnauthorized,
	validators.ErrUnknownUser:      http.StatusUnauthorized,
	validators.ErrInvalidSignature: http.StatusForbidden,
	validators.ErrStaleTimestamp:   http.StatusBadRequest,

	service.ErrInvalidRegistrationDetails: http.StatusBadRequest,
	service.ErrAddressInconsistent:        http.StatusBadRequest,
	service.ErrAddressReused:              http.StatusConflict,
	service.ErrInvalidDeleteDetails:       http.StatusBadRequest,
	service.ErrNotAdmin:                   http.StatusForbidden,
	service.ErrUserNotFound:               http.StatusNotFound,
}

// errorMessageMap holds the plain-text bodies clients already match on.
var errorMessageMap = map[error]string{
	validators.ErrMalformedRequest: "Invalid request body or unsupported version",
	validators.ErrNoPublicKey:      "No public key available",
	validators.ErrInvalidPublicKey: "Public key is not valid",
	validators.ErrUnknownUser:      "No such registered users",
	validators.ErrInvalidSignature: "Signature is invalid",
	validators.ErrStaleTimestamp:   "Timestamp is not current",

	service.ErrInvalidRegistrationDetails: "Invalid request-user details",
	service.ErrAddressInconsistent:        "This address is inconsistent with the publicKey provided.",
	service.ErrAddressReused:              "This address was registered previously and cannot be reused.",
	service.ErrInvalidDeleteDetails:       "Invalid delete-user details",
	service.ErrNotAdmin:                   "Only administrators may delete users",
	service.ErrUserNotFound:               "No such user",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError answers with the status and message mapped from err. Client
// errors are logged at Info, everything else at Error.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
	} else {
		log.Info().Err(err).Str("path", r.URL.Path).Int("status", status).Msg("request rejected")
	}

	http.Error(w, messageFromError(err), status)
}
