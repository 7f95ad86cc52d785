package http

import (
	"net"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-copper-beam/internal/utils"
	"github.com/MKhiriev/go-copper-beam/models"
)

const (
	forwardedForHeader = "X-Forwarded-For"
	realIPHeader       = "X-Real-IP"
)

// withClientInfo stores the caller address and user agent in the request
// context.
func (h *Handler) withClientInfo(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		info := models.ClientInfo{
			IPAddress: h.clientIP(r),
			UserAgent: r.UserAgent(),
		}
		next.ServeHTTP(w, r.WithContext(utils.WithClientInfo(r.Context(), info)))
	})
}

// clientIP resolves the caller address: the configured override first,
// then the first X-Forwarded-For entry, then X-Real-IP, then the peer
// address.
func (h *Handler) clientIP(r *http.Request) string {
	if h.ipOverride != "" {
		return h.ipOverride
	}

	if forwarded := r.Header.Get(forwardedForHeader); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(first)
	}

	if realIP := strings.TrimSpace(r.Header.Get(realIPHeader)); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return strings.TrimSpace(r.RemoteAddr)
	}
	return host
}

func clientInfoFromRequest(r *http.Request) models.ClientInfo {
	if info, ok := utils.GetClientInfoFromContext(r.Context()); ok {
		return info
	}
	return models.ClientInfo{UserAgent: r.UserAgent()}
}
