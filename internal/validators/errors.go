package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrMalformedRequest covers an unsupported version, a missing details
	// or signature field and details that are not valid JSON.
	ErrMalformedRequest = errors.New("invalid request body or unsupported version")
	ErrNoPublicKey      = errors.New("no public key available")
	ErrInvalidPublicKey = errors.New("public key is not valid")
	ErrInvalidSignature = errors.New("signature is invalid")
	ErrStaleTimestamp   = errors.New("timestamp is not current")
	ErrUnknownUser      = errors.New("no such registered users")
)
