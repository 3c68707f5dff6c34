package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the server flags from args.
//
// Flags:
//
//	-a                server address in format [host]:[port]
//	-grpc-address     gRPC health server address in format [host]:[port]
//	-driver           directory driver (mongo, postgres, sqlite, memory)
//	-d                directory DSN
//	-c/-config        json file path with configs
//	-token-sign-key   token signing key
//	-token-issuer     token issuer name
//	-request-timeout  request timeout (e.g., "30s", "1m")
//	-redis-address    redis address of the directory cache
//	-log-level        zerolog level
func ParseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress, grpcServerAddress NetAddress
	var driver, dsn string
	var jsonConfigPath string
	var tokenSignKey, tokenIssuer string
	var requestTimeout time.Duration
	var redisAddress string
	var logLevel string

	fs := flag.NewFlagSet("auth-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&driver, "driver", "", "Directory driver")
	fs.StringVar(&dsn, "d", "", "Directory DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&redisAddress, "redis-address", "", "Redis address of the directory cache")
	fs.StringVar(&logLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey: tokenSignKey,
			TokenIssuer:  tokenIssuer,
			LogLevel:     logLevel,
		},
		Storage: Storage{
			Directory: Directory{
				Driver: driver,
				DSN:    dsn,
			},
			Cache: Cache{
				RedisAddress: redisAddress,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// ParseClientFlags parses the client flags from args.
//
// Flags:
//
//	-a        server address, with or without scheme
//	-timeout  request timeout (e.g., "5s")
func ParseClientFlags(args []string) (*StructuredConfig, error) {
	var serverAddress string
	var requestTimeout time.Duration

	fs := flag.NewFlagSet("auth-client", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&serverAddress, "a", "", "Server address")
	fs.DurationVar(&requestTimeout, "timeout", 0, "Request timeout (e.g., 5s)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address yields an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// The host may be empty (all interfaces), "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
