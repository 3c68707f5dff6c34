// Package http implements the HTTP transport layer of the auth server.
//
// It exposes route wiring, request handlers and middleware used by the REST
// API. Request tracing, access logging and token gatekeeping are handled in
// this package before requests are delegated to the service layer. Every
// failure is answered with a JSON [models.ErrorResponse] carrying a stable
// message from package app.
package http
