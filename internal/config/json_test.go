package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "test_issuer",
			"password_hash_cost": 11
		},
		"server": {
			"http_address": "localhost:8080",
			"grpc_address": "localhost:9090",
			"request_timeout": "30s",
			"shutdown_timeout": "5s"
		},
		"storage": {
			"directory": {
				"driver": "mongo",
				"dsn": "mongodb://localhost:27017",
				"database": "auth",
				"collection": "users",
				"connect_timeout": "2s"
			},
			"cache": { "redis_address": "localhost:6379", "ttl": "1m" }
		},
		"telemetry": { "otlp_endpoint": "http://collector:4318" },
		"workers": { "health_check_interval": "10s" },
		"adapter": { "http_address": "localhost:8080", "request_timeout": "1s" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "test_issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 11, cfg.App.PasswordHashCost)

	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "localhost:9090", cfg.Server.GRPCAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)

	assert.Equal(t, DriverMongo, cfg.Storage.Directory.Driver)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Storage.Directory.DSN)
	assert.Equal(t, 2*time.Second, cfg.Storage.Directory.ConnectTimeout)
	assert.Equal(t, "localhost:6379", cfg.Storage.Cache.RedisAddress)
	assert.Equal(t, time.Minute, cfg.Storage.Cache.TTL)

	assert.Equal(t, "http://collector:4318", cfg.Telemetry.OTLPEndpoint)
	assert.Equal(t, 10*time.Second, cfg.Workers.HealthCheckInterval)
	assert.Equal(t, time.Second, cfg.Adapter.RequestTimeout)

	assert.Empty(t, cfg.JSONFilePath, "json source must not point to another json file")
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))

	assert.Error(t, err)
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server":{"request_timeout":"soon"}}`), 0o600))

	_, err := parseJSON(p)

	assert.Error(t, err)
}

func TestDuration_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bool", input: `true`, wantErr: true},
		{name: "bad string", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	out, err := json.Marshal(Duration(2 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"2m0s"`, string(out))
}
