package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/MKhiriev/go-copper-beam/internal/utils"
	"github.com/MKhiriev/go-copper-beam/internal/validators"
	"github.com/MKhiriev/go-copper-beam/models"
)

// maxRequestBodySize bounds the signed envelope.
const maxRequestBodySize = 64 << 10

func decodeRestRequest(w http.ResponseWriter, r *http.Request) (models.RestRequest, bool) {
	var req models.RestRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req); err != nil {
		logger.FromRequest(r).Debug().Err(err).Msg("Invalid JSON was passed")
		writeError(w, r, validators.ErrMalformedRequest)
		return req, false
	}
	return req, true
}

func (h *Handler) registerUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRestRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.services.RegistrationService.RegisterUser(r.Context(), req, clientInfoFromRequest(r))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeRestRequest(w, r)
	if !ok {
		return
	}

	resp, err := h.services.UserService.DeleteUser(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}
