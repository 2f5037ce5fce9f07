package server

import (
	"context"
	"net"
)

// Server defines the lifecycle contract of the authority server.
type Server interface {
	// RunServer listens on the configured address and blocks until ctx is
	// cancelled or a stop signal arrives, then shuts down gracefully.
	RunServer(ctx context.Context) error

	// Serve is RunServer on an already open listener.
	Serve(ctx context.Context, ln net.Listener) error
}
