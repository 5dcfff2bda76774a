package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err, "a missing config file falls back to defaults")

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "disha_db", cfg.Database.Name)
	assert.Empty(t, cfg.Database.URI, "no database URI by default")
	assert.Equal(t, "24h", cfg.JWT.AccessTokenExpiration)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
  mode: release
database:
  uri: mongodb://localhost:27017
  name: disha_test
jwt:
  secret: file-secret
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "mongodb://localhost:27017", cfg.Database.URI)
	assert.Equal(t, "disha_test", cfg.Database.Name)
	assert.Equal(t, "file-secret", cfg.JWT.Secret)
	assert.Equal(t, "uploads", cfg.Server.StoragePath, "unset fields keep their defaults")
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: "9090"
`)
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
}

func TestLoadConfigRejectsBadDurations(t *testing.T) {
	path := writeConfig(t, `
jwt:
  access_token_expiration: "twenty hours"
`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access token expiration")

	path = writeConfig(t, `
database:
  timeout: "soon"
`)
	_, err = LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timeout")
}

func TestLoadConfigRejectsEmptySecret(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: ""
`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}
