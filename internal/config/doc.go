// Package config loads the server and client settings.
//
// Sources are merged with mergo, each one overriding the non-zero fields of
// the previous:
//
//	.env file (exported into the environment) -> env vars -> flags -> JSON file
//
// [GetStructuredConfig] builds and validates the server config,
// [GetClientConfig] the terminal client's.
package config
