// Package server runs the daemon's control-channel HTTP server.
//
// It provides lifecycle orchestration: startup, signal handling, and
// graceful shutdown of the listener.
package server
