// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks signed request envelopes.
//
// Every dynamic endpoint accepts a [models.RestRequest] whose Details field is
// a JSON document signed by the caller. Validation runs in a fixed order,
// each step an exit point:
//  1. envelope shape: version 1, non-empty details and signature, details
//     parse into the expected payload type;
//  2. key resolution: the payload's own public key (registration) or the
//     stored key of the registered user owning the payload address;
//  3. signature over the exact details string;
//  4. timestamp within the allowed clock skew.
//
// A fully accepted registered-user request updates the user's last contact.
package validators

import (
	"context"
	"time"

	"github.com/MKhiriev/go-copper-beam/models"
)

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}

// RegisteredUsers resolves the signer of a registered-user request and
// records that it made contact.
type RegisteredUsers interface {
	// GetUserByAddress returns store.ErrNoUserWasFound for unknown addresses.
	GetUserByAddress(ctx context.Context, address string) (models.User, error)
	UpdateLastUserContact(ctx context.Context, userID string, at time.Time) error
}
