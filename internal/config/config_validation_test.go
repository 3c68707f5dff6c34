package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := func() StructuredConfig {
		return StructuredConfig{
			App:     App{TokenSignKey: "secret"},
			Storage: Storage{Directory: Directory{Driver: DriverPostgres, DSN: "postgres://localhost/auth"}},
			Server:  Server{HTTPAddress: ":8080"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "missing signing key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.TokenSignKey = "" },
			wantErr: ErrMissingTokenSignKey,
		},
		{
			name:    "bcrypt cost too low",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 2 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "bcrypt cost too high",
			mutate:  func(cfg *StructuredConfig) { cfg.App.PasswordHashCost = 32 },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Directory.Driver = "cassandra" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "missing dsn",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.Directory.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "memory needs no dsn",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Directory = Directory{Driver: DriverMemory}
			},
		},
		{
			name: "negative cache ttl",
			mutate: func(cfg *StructuredConfig) {
				cfg.Storage.Cache = Cache{RedisAddress: "localhost:6379", TTL: -time.Second}
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "no server address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server = Server{} },
			wantErr: ErrInvalidServerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetClientConfig_Defaults(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("ADAPTER_ADDRESS", "")
	t.Setenv("ADAPTER_REQUEST_TIMEOUT", "")

	cfg, err := getClientConfig(nil)

	require.NoError(t, err)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "absent.env"))
	t.Setenv("ADAPTER_ADDRESS", "env-host:8080")

	cfg, err := getClientConfig([]string{"-a", "flag-host:9000", "-timeout", "1s"})

	require.NoError(t, err)
	assert.Equal(t, "flag-host:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)
}

func TestGetClientConfig_NegativeTimeout(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "absent.env"))

	_, err := getClientConfig([]string{"-timeout", "-1s"})

	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}
