// Package utils provides small helpers shared across the server and the
// simulated client: typed context keys, JSON response writing, the
// outbound HTTP client and id generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-copper-beam/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// ClientInfoCtxKey is the key under which the HTTP layer stores the
// resolved caller address and user agent.
var ClientInfoCtxKey = contextKey("clientInfo")

// WithClientInfo returns a copy of ctx carrying info.
func WithClientInfo(ctx context.Context, info models.ClientInfo) context.Context {
	return context.WithValue(ctx, ClientInfoCtxKey, info)
}

// GetClientInfoFromContext retrieves the caller description stored by
// [WithClientInfo]. ok is false when none was stored.
func GetClientInfoFromContext(ctx context.Context) (models.ClientInfo, bool) {
	info, ok := ctx.Value(ClientInfoCtxKey).(models.ClientInfo)
	return info, ok
}
