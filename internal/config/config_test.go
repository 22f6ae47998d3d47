package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
app:
  name: "shareit"
  environment: "test"
database:
  path: "test.db"
http:
  port: 9090
redis:
  enabled: true
  address: "localhost:6379"
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, "shareit", cfg.App.Name)
	assert.Equal(t, "test.db", cfg.Database.Path)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.True(t, cfg.Redis.Enabled)
}

func TestLoadConfigDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	require.NoError(t, os.WriteFile(configPath, []byte("database:\n  path: \"test.db\"\n"), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 50, cfg.RateLimit.Requests)
	assert.Equal(t, 60, cfg.RateLimit.Window)
	assert.Equal(t, "Bookings", cfg.Exports.SheetName)
}

func TestLoadConfigEnvExpansion(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	t.Setenv("SHAREIT_DB_PATH", "/tmp/expanded.db")
	yamlContent := "database:\n  path: \"${SHAREIT_DB_PATH}\"\n"
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644))

	cfg, err := Load(configPath)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/expanded.db", cfg.Database.Path)
}

func TestValidateConfig(t *testing.T) {
	t.Run("MissingDatabasePath", func(t *testing.T) {
		cfg := &Config{}
		cfg.applyDefaults()
		assert.Error(t, cfg.Validate())
	})

	t.Run("RedisEnabledWithoutAddress", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Path: "x.db"}, Redis: RedisConfig{Enabled: true}}
		cfg.applyDefaults()
		assert.Error(t, cfg.Validate())
	})

	t.Run("Valid", func(t *testing.T) {
		cfg := &Config{Database: DatabaseConfig{Path: "x.db"}}
		cfg.applyDefaults()
		assert.NoError(t, cfg.Validate())
	})
}
