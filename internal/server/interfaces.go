package server

// Server runs the selector transports.
type Server interface {
	// RunServer serves until the process is signalled, then shuts down.
	RunServer()

	// Shutdown stops the listeners and runs the shutdown hooks.
	Shutdown()
}
