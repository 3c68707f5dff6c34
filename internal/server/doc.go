// Package server wires and runs the auth server's transports.
//
// It owns the HTTP API and gRPC health listeners and drains both within the
// configured shutdown timeout when the run context ends.
package server
