package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "campusregistry", cfg.Database.DBName)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.CORS.AllowAll)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoadConfigFromFile(t *testing.T) {
	content := []byte(`
server:
  port: "9000"
  mode: "production"
database:
  host: "db.internal"
  dbname: "registry"
cors:
  allowed_origins:
    - "https://admin.example.edu"
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "registry", cfg.Database.DBName)
	assert.Equal(t, []string{"https://admin.example.edu"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.IsDevelopment())
}

func TestEnvOverridesFile(t *testing.T) {
	content := []byte(`
server:
  port: "9000"
`)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadConfigRejectsInvalidMode(t *testing.T) {
	t.Setenv("SERVER_MODE", "staging")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	setDefaults(cfg)
	cfg.Database.User = "registry"
	cfg.Database.Password = "pw"
	cfg.Database.Host = "db"
	cfg.Database.Port = "5433"
	cfg.Database.DBName = "campus"

	assert.Equal(t,
		"postgres://registry:pw@db:5433/campus?sslmode=disable",
		cfg.GetPostgresConnectionString(),
	)
}
