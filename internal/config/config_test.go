package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 15*time.Second, cfg.Validator.Timeout)
	assert.Equal(t, "127.0.0.1:5000", cfg.Server.Addr())
}

func TestLoad_YAMLOverlay(t *testing.T) {
	path := writeConfig(t, `
validator:
  url: http://grader.local:8080
  timeout: 3s
server:
  port: 9000
log:
  level: debug
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://grader.local:8080", cfg.Validator.URL)
	assert.Equal(t, 3*time.Second, cfg.Validator.Timeout)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Bind, "unset keys keep defaults")
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "validator:\n  url: http://file:1\n")
	t.Setenv("CONECTIVO_VALIDATOR_URL", "http://env:2")
	t.Setenv("CONECTIVO_VALIDATOR_TIMEOUT", "750ms")
	t.Setenv("CONECTIVO_SERVER_PORT", "6001")
	t.Setenv("CONECTIVO_LOG_MODE", "prod")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env:2", cfg.Validator.URL)
	assert.Equal(t, 750*time.Millisecond, cfg.Validator.Timeout)
	assert.Equal(t, 6001, cfg.Server.Port)
	assert.Equal(t, "prod", cfg.Log.Mode)
}

func TestLoad_EmptyEnvURLDisablesRemote(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("CONECTIVO_VALIDATOR_URL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Empty(t, cfg.Validator.URL)
}

func TestLoad_MissingDefaultFileIsFine(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().Validator, cfg.Validator)
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_BadInputs(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "validator: [unterminated"))
		assert.Error(t, err)
	})
	t.Run("port env", func(t *testing.T) {
		t.Setenv("CONECTIVO_SERVER_PORT", "abc")
		_, err := Load(writeConfig(t, ""))
		assert.ErrorContains(t, err, "CONECTIVO_SERVER_PORT")
	})
	t.Run("timeout env", func(t *testing.T) {
		t.Setenv("CONECTIVO_VALIDATOR_TIMEOUT", "soon")
		_, err := Load(writeConfig(t, ""))
		assert.ErrorContains(t, err, "CONECTIVO_VALIDATOR_TIMEOUT")
	})
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"timeout", func(c *Config) { c.Validator.Timeout = -time.Second }, "validator.timeout"},
		{"level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"mode", func(c *Config) { c.Log.Mode = "json" }, "log.mode"},
		{"url", func(c *Config) { c.Validator.URL = "ftp://x" }, "validator.url"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestDefaultLogFile_UsesXDGState(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_STATE_HOME", dir)

	got, err := DefaultLogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "conectivo", "conectivo.log"), got)
}
