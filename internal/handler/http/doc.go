// Package http implements the HTTP transport layer of the messaging API.
//
// It wires chi routes to the service layer and carries the cross-cutting
// middleware: request tracing, access logging, response compression, panic
// recovery, request timeouts and bearer-token authentication. Every failure
// is written as a JSON envelope {"error":{"reason","message","status"}}.
package http
