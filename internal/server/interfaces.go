package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// RunServer blocks until ctx is cancelled or the listener fails, then shuts
// down gracefully. Shutdown stops serving new requests and waits for the
// in-flight ones until ctx expires.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown(ctx context.Context) error
}

// BackgroundWorkers is the set of goroutines started next to the server and
// drained after it stops.
type BackgroundWorkers interface {
	Run(ctx context.Context)
	Wait()
}
