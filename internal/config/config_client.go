package config

import (
	"fmt"
	"os"
	"time"
)

const (
	defaultClientServerAddress = "localhost:8080"
	defaultClientTimeout       = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address used by the client.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration.
type ClientConfig struct {
	// Adapter contains the server address and timeout.
	Adapter ClientAdapter
	// LogLevel is the zerolog level of the client log file.
	LogLevel string
}

// GetClientConfig builds and validates the client configuration from the
// .env file, ADAPTER_* environment variables and the client flags.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withEnv().
		withClientFlags(args).
		merge()
	if err != nil {
		return nil, fmt.Errorf("error get client config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		LogLevel: cfg.App.LogLevel,
	}
	if clientCfg.Adapter.HTTPAddress == "" {
		clientCfg.Adapter.HTTPAddress = defaultClientServerAddress
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = defaultClientTimeout
	}

	return clientCfg, clientCfg.validate()
}
