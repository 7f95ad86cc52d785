package server

import "context"

// Server is the lifecycle shared by the transport servers of this package.
type Server interface {
	// RunServer serves until ctx is cancelled or a stop signal arrives,
	// then shuts down.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server.
	Shutdown(ctx context.Context)
}
