package geo

import "errors"

var (
	// ErrUnexpectedStatus is returned when the provider answers with a
	// status code other than 200.
	ErrUnexpectedStatus = errors.New("unexpected response from geo provider")
	// ErrInvalidResponse is returned when the provider payload carries no
	// status field.
	ErrInvalidResponse = errors.New("invalid response from geo provider")
	// ErrLookupFailed wraps transport errors, timeouts included.
	ErrLookupFailed = errors.New("failure fetching ip geo info")
)
