package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "DB_DRIVER", "DB_HOST", "DB_PORT", "DB_NAME", "DB_POOL_SIZE",
		"DB_QUEUE_LIMIT", "TRANSLATOR_URL", "TRANSLATOR_HEALTH_TTL_SECONDS", "JOURNAL_PATH", "LOG_FORMAT"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Database.PoolSize)
	assert.Equal(t, 0, cfg.Database.QueueLimit)
	assert.Equal(t, "sakila_es", cfg.Database.Name)
	assert.Empty(t, cfg.Journal.Path)
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sqlgate.toml")
	content := `
port = "8080"

[database]
host = "db.internal"
pool_size = 4
queue_limit = 50

[translator]
base_url = "http://translator:5000"

[logging]
format = "json"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	clearEnv(t)
	t.Setenv("DB_POOL_SIZE", "6")
	t.Setenv("DB_NAME", "sakila")
	t.Setenv("TRANSLATOR_HEALTH_TTL_SECONDS", "0")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 6, cfg.Database.PoolSize)
	assert.Equal(t, 50, cfg.Database.QueueLimit)
	assert.Equal(t, "sakila", cfg.Database.Name)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "http://translator:5000", cfg.Translator.BaseURL)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, 0, cfg.Translator.HealthTTLSeconds)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "sqlserver driver", mutate: func(c *Config) { c.Database.Driver = DriverSQLServer }},
		{name: "translator disabled", mutate: func(c *Config) { c.Translator.BaseURL = "" }},
		{name: "bad port", mutate: func(c *Config) { c.Port = "http" }, wantErr: true},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, wantErr: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "oracle" }, wantErr: true},
		{name: "empty host", mutate: func(c *Config) { c.Database.Host = "" }, wantErr: true},
		{name: "zero pool", mutate: func(c *Config) { c.Database.PoolSize = 0 }, wantErr: true},
		{name: "negative queue", mutate: func(c *Config) { c.Database.QueueLimit = -1 }, wantErr: true},
		{name: "translator not http", mutate: func(c *Config) { c.Translator.BaseURL = "ftp://x" }, wantErr: true},
		{name: "translator health uncached", mutate: func(c *Config) { c.Translator.HealthTTLSeconds = 0 }},
		{name: "negative translator health ttl", mutate: func(c *Config) { c.Translator.HealthTTLSeconds = -1 }, wantErr: true},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SQLGATE_TEST_FLAG", "TRUE")
	assert.True(t, getEnvBool("SQLGATE_TEST_FLAG", false))

	t.Setenv("SQLGATE_TEST_FLAG", "no")
	assert.False(t, getEnvBool("SQLGATE_TEST_FLAG", true))

	assert.True(t, getEnvBool("SQLGATE_TEST_UNSET", true))
}
