// Package server runs the reference authority's HTTP server.
//
// It owns startup, signal handling and graceful shutdown: SIGINT, SIGTERM,
// SIGQUIT or cancellation of the run context stop accepting connections and
// drain in-flight requests within the configured request timeout.
package server
