package http

import (
	"net/http"

	"github.com/MKhiriev/go-copper-beam/internal/utils"
)

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-cache, no-store, max-age=0, must-revalidate")
	utils.WriteJSON(w, h.services.PingService.Ping(r.Context()), http.StatusOK)
}
