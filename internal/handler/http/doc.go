// Package http implements the HTTP transport of the copper-beam server.
//
// It wires the chi router, the signed /d endpoints, the ping and metrics
// endpoints and the landing page. Request tracing, access logging, client
// address resolution and response compression are applied as middleware
// before requests reach the service layer.
package http
