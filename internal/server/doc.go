// Package server runs the HTTP transport of the selector server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown, followed by the registered shutdown hooks.
package server
