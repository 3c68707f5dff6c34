// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Directory drivers supported by [Directory.Driver].
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
	DriverMemory   = "memory"
)

// Defaults applied to zero-valued fields after all sources are merged.
const (
	defaultHTTPAddress         = ":8080"
	defaultDriver              = DriverMongo
	defaultDatabase            = "auth"
	defaultCollection          = "users"
	defaultConnectTimeout      = 10 * time.Second
	defaultCacheTTL            = 5 * time.Minute
	defaultShutdownTimeout     = 10 * time.Second
	defaultHealthCheckInterval = 30 * time.Second
	defaultServiceName         = "go-auth-keeper"
)

// StructuredConfig is the top-level configuration container for the
// go-auth-keeper server. It is populated by merging values from a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token, password hashing and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the user directory and its optional cache.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Telemetry holds the optional OTLP trace exporter settings.
	Telemetry Telemetry `envPrefix:"TELEMETRY_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// Adapter holds the settings the client uses to reach the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret used to sign and verify tokens. Required.
	// Env: APP_TOKEN_SIGN_KEY (SECRET_KEY is accepted as a fallback)
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the optional "iss" claim. When set, tokens carrying a
	// different issuer are rejected.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// PasswordHashCost is the bcrypt cost. Zero selects bcrypt.DefaultCost.
	// Env: APP_PASSWORD_HASH_COST
	PasswordHashCost int `env:"PASSWORD_HASH_COST"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version overrides the build version reported by GET /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the user directory and cache settings.
type Storage struct {
	Directory Directory `envPrefix:"DIRECTORY_"`
	Cache     Cache     `envPrefix:"CACHE_"`
}

// Directory selects and configures the user directory backend.
type Directory struct {
	// Driver is one of "mongo", "postgres", "sqlite" or "memory".
	// Env: STORAGE_DIRECTORY_DRIVER
	Driver string `env:"DRIVER"`

	// DSN is the connection string: a mongodb:// URI, a PostgreSQL DSN or a
	// SQLite file path. Ignored by the memory driver.
	// Env: STORAGE_DIRECTORY_DSN
	DSN string `env:"DSN"`

	// Database is the MongoDB database name.
	// Env: STORAGE_DIRECTORY_DATABASE
	Database string `env:"DATABASE"`

	// Collection is the MongoDB collection holding user records.
	// Env: STORAGE_DIRECTORY_COLLECTION
	Collection string `env:"COLLECTION"`

	// ConnectTimeout bounds the initial connect and ping.
	// Env: STORAGE_DIRECTORY_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Cache configures the optional redis read-through cache for lookups by
// user id. The cache is disabled when RedisAddress is empty.
type Cache struct {
	RedisAddress  string        `env:"REDIS_ADDRESS"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB"`
	TTL           time.Duration `env:"TTL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS (PORT is accepted as a fallback)
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server. Empty
	// disables gRPC.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout is the maximum duration of a single HTTP request.
	// Zero disables the timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Telemetry configures OpenTelemetry tracing. Tracing is off when
// OTLPEndpoint is empty.
type Telemetry struct {
	OTLPEndpoint string `env:"OTLP_ENDPOINT"`
	ServiceName  string `env:"SERVICE_NAME"`
}

// Workers holds configuration for background workers.
type Workers struct {
	// HealthCheckInterval is how often the directory is pinged to update
	// the gRPC serving status.
	HealthCheckInterval time.Duration `env:"HEALTH_CHECK_INTERVAL"`
}

// Adapter holds the client's view of the server.
type Adapter struct {
	// HTTPAddress is the server address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the timeout applied to each outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (last source
// wins for non-zero fields):
//  1. .env file (exported into the environment)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		build()
}

// applyDefaults fills zero-valued fields with their defaults.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = defaultShutdownTimeout
	}

	dir := &cfg.Storage.Directory
	if dir.Driver == "" {
		dir.Driver = defaultDriver
	}
	if dir.Database == "" {
		dir.Database = defaultDatabase
	}
	if dir.Collection == "" {
		dir.Collection = defaultCollection
	}
	if dir.ConnectTimeout == 0 {
		dir.ConnectTimeout = defaultConnectTimeout
	}

	if cfg.Storage.Cache.RedisAddress != "" && cfg.Storage.Cache.TTL == 0 {
		cfg.Storage.Cache.TTL = defaultCacheTTL
	}

	if cfg.Telemetry.ServiceName == "" {
		cfg.Telemetry.ServiceName = defaultServiceName
	}

	if cfg.Workers.HealthCheckInterval == 0 {
		cfg.Workers.HealthCheckInterval = defaultHealthCheckInterval
	}
}
