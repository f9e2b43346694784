package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("RUN_ADDRESS", ":9090")
	t.Setenv("STORAGE_BACKEND", BackendMemory)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.RunAddress)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
	assert.Equal(t, "secret", cfg.JWTSecret)
	assert.Equal(t, 3*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestConfig_ParseFlags(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    Config
		wantErr bool
	}{
		{
			name: "flags override",
			args: []string{"-a", ":8000", "-d", "postgres://db", "-s", "memory", "-j", "jwt", "-k", "hash", "-l", "debug"},
			want: Config{
				RunAddress:     ":8000",
				DatabaseURI:    "postgres://db",
				StorageBackend: "memory",
				JWTSecret:      "jwt",
				HashKey:        "hash",
				LogLevel:       "debug",
			},
		},
		{
			name: "no flags keep values",
			args: nil,
			want: Config{RunAddress: "localhost:8084", LogLevel: "info"},
		},
		{
			name:    "unknown flag",
			args:    []string{"-x"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{RunAddress: "localhost:8084", LogLevel: "info"}
			err := cfg.ParseFlags(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, *cfg)
		})
	}
}
