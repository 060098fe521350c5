package config

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderDefaults(t *testing.T) {
	loader := Loader{Getenv: func(string) string { return "" }}

	cfg, err := loader.Load(Overrides{})
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Zero(t, cfg.Timeout)
	assert.Empty(t, cfg.Root)
}

func TestLoaderEnvThenOverrides(t *testing.T) {
	t.Setenv(envLogLevel, "info")
	t.Setenv(envTimeout, "30")
	t.Setenv(envRoot, "/staging")

	cfg, err := Loader{}.Load(Overrides{})
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, "/staging", cfg.Root)

	cfg, err = Loader{}.Load(Overrides{LogLevel: "debug", Timeout: 0, TimeoutSet: true, Root: "/other"})
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Zero(t, cfg.Timeout, "explicit zero override disables the env timeout")
	assert.Equal(t, "/other", cfg.Root)
}

func TestLoaderRejectsBadEnvTimeout(t *testing.T) {
	loader := Loader{Getenv: func(key string) string {
		if key == envTimeout {
			return "soon"
		}
		return ""
	}}

	_, err := loader.Load(Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), envTimeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     RuntimeConfig
		wantErr string
	}{
		{name: "defaults", cfg: DefaultRuntimeConfig()},
		{name: "rooted", cfg: RuntimeConfig{LogLevel: "debug", Root: "/tmp/stage", Timeout: time.Minute}},
		{name: "bad level", cfg: RuntimeConfig{LogLevel: "loud"}, wantErr: "invalid log level"},
		{name: "negative timeout", cfg: RuntimeConfig{LogLevel: "warn", Timeout: -time.Second}, wantErr: "timeout must not be negative"},
		{name: "relative root", cfg: RuntimeConfig{LogLevel: "warn", Root: "stage"}, wantErr: "root must be an absolute path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLevel(t *testing.T) {
	level, err := RuntimeConfig{LogLevel: "debug"}.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
}

func TestParseTimeout(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Duration
		wantErr bool
	}{
		{in: "90", want: 90 * time.Second},
		{in: "1m30s", want: 90 * time.Second},
		{in: "250ms", want: 250 * time.Millisecond},
		{in: "0", want: 0},
		{in: "later", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeout(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
