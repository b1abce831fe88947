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
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 5*time.Minute, cfg.Server.CacheTTL)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 30*time.Minute, cfg.Session.TTL)
	assert.Equal(t, 1, cfg.WorkerPool.Size)
	assert.Equal(t, "g", cfg.Units.Weight)
	assert.Equal(t, "C", cfg.Units.Temperature)
	assert.Equal(t, DefaultSequence, cfg.NewBrew.Sequence)
	assert.Equal(t, "main", cfg.Theme.Name)
	assert.False(t, cfg.Push.Enabled())
}

func TestLoad_ExplicitValues(t *testing.T) {
	path := writeConfig(t, `
database:
  driver: postgres
  dsn: host=localhost
units:
  weight: oz
  temperature: F
new_brew:
  sequence: [time, grindSize]
session:
  ttl_minutes: 5
push:
  vapid_public_key: pub
  vapid_private_key: priv
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "host=localhost", cfg.Database.DSN)
	assert.Equal(t, "oz", cfg.Units.Weight)
	assert.Equal(t, []string{"time", "grindSize"}, cfg.NewBrew.Sequence)
	assert.Equal(t, 5*time.Minute, cfg.Session.TTL)
	assert.True(t, cfg.Push.Enabled())
}

func TestLoad_DSNFromEnvironment(t *testing.T) {
	t.Setenv("BREWER_DATABASE_DSN", "file:env.db")
	path := writeConfig(t, "database:\n  dsn: file:yaml.db\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "file:env.db", cfg.Database.DSN)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "server: [not a map"))
	assert.Error(t, err)
}
