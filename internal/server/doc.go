// Package server runs the HTTP server and the background workers.
//
// It owns the process lifecycle: startup, signal handling, graceful
// shutdown of in-flight requests and draining of background work.
package server
