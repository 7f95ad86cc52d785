// Package server runs the HTTP and gRPC transports of copper-beam.
//
// Both servers share one lifecycle: they start together, and the first
// failure, cancelled context or termination signal stops both gracefully.
package server
