package server

// Server runs the HTTP transport.
type Server interface {
	// RunServer serves until SIGINT, SIGTERM or SIGQUIT and returns after a
	// graceful shutdown.
	RunServer()

	// Shutdown stops accepting connections and waits for in-flight requests,
	// up to a fixed timeout.
	Shutdown()
}
