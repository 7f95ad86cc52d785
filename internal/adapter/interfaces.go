// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the copper-beam REST protocol.
//
// [ServerAdapter] signs details documents with the caller's private key,
// wraps them in the request envelope and maps error statuses to the
// sentinel values in errors.go, so callers can use [errors.Is] (e.g.
// [ErrConflict] for a reused address).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-copper-beam/models"
)

// ServerAdapter talks to a copper-beam server.
type ServerAdapter interface {
	// Ping reports the server's health document.
	Ping(ctx context.Context) (models.PingResponse, error)

	// RegisterUser signs details with privateKeyPEM and posts them to
	// register-user.
	RegisterUser(ctx context.Context, details models.RegisterUserDetails, privateKeyPEM string) (models.RegisterUserResponse, error)

	// DeleteUser signs details with the administrator's privateKeyPEM and
	// posts them to delete-user.
	DeleteUser(ctx context.Context, details models.DeleteUserDetails, privateKeyPEM string) (models.DeleteUserResponse, error)
}
