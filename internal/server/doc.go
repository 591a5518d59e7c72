// Package server runs the HTTP transport and shuts it down gracefully on
// SIGINT, SIGTERM or SIGQUIT.
package server
