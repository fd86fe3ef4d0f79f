package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Port       string           `toml:"port"`
	PublicDir  string           `toml:"public_dir"`
	Database   DatabaseConfig   `toml:"database"`
	Translator TranslatorConfig `toml:"translator"`
	Journal    JournalConfig    `toml:"journal"`
	Logging    LoggingConfig    `toml:"logging"`
	Prometheus PrometheusConfig `toml:"prometheus"`
	CORS       CORSConfig       `toml:"cors"`
}

// DatabaseConfig describes the pooled database. Pool size is fixed for the
// process lifetime.
type DatabaseConfig struct {
	Driver     string `toml:"driver"` // "mysql" or "sqlserver"
	Host       string `toml:"host"`
	Port       int    `toml:"port"`
	User       string `toml:"user"`
	Password   string `toml:"password"`
	Name       string `toml:"name"`
	PoolSize   int    `toml:"pool_size"`
	QueueLimit int    `toml:"queue_limit"` // 0 = unbounded
	Encrypt    bool   `toml:"encrypt"`     // sqlserver only
}

type TranslatorConfig struct {
	BaseURL          string `toml:"base_url"` // empty disables translation
	TimeoutSeconds   int    `toml:"timeout_seconds"`
	HealthTTLSeconds int    `toml:"health_ttl_seconds"`
}

type JournalConfig struct {
	Path string `toml:"path"` // empty disables the journal
}

type LoggingConfig struct {
	Verbose bool   `toml:"verbose"`
	Format  string `toml:"format"` // "console" or "json"
}

type PrometheusConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

type CORSConfig struct {
	AllowOrigins []string `toml:"allow_origins"`
}

// Default returns the configuration used when neither a file nor the
// environment says otherwise.
func Default() *Config {
	return &Config{
		Port: DefaultPort,
		Database: DatabaseConfig{
			Driver:   DriverMySQL,
			Host:     "mysql",
			Port:     3306,
			User:     "root",
			Password: "sakila_password",
			Name:     "sakila_es",
			PoolSize: DefaultPoolSize,
		},
		Translator: TranslatorConfig{
			BaseURL:          "http://localhost:5000",
			TimeoutSeconds:   120,
			HealthTTLSeconds: 30,
		},
		Logging: LoggingConfig{
			Format: "console",
		},
		Prometheus: PrometheusConfig{
			Enabled: true,
			Path:    "/metrics",
		},
		CORS: CORSConfig{
			AllowOrigins: []string{"*"},
		},
	}
}

// Load reads defaults, then the TOML file at path (if any), then environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	cfg.Port = getEnv("PORT", cfg.Port)
	cfg.PublicDir = getEnv("PUBLIC_DIR", cfg.PublicDir)

	cfg.Database.Driver = getEnv("DB_DRIVER", cfg.Database.Driver)
	cfg.Database.Host = getEnv("DB_HOST", cfg.Database.Host)
	cfg.Database.Port = getEnvInt("DB_PORT", cfg.Database.Port)
	cfg.Database.User = getEnv("DB_USER", cfg.Database.User)
	cfg.Database.Password = getEnv("DB_PASSWORD", cfg.Database.Password)
	cfg.Database.Name = getEnv("DB_NAME", cfg.Database.Name)
	cfg.Database.PoolSize = getEnvInt("DB_POOL_SIZE", cfg.Database.PoolSize)
	cfg.Database.QueueLimit = getEnvInt("DB_QUEUE_LIMIT", cfg.Database.QueueLimit)
	cfg.Database.Encrypt = getEnvBool("DB_ENCRYPT", cfg.Database.Encrypt)

	cfg.Translator.BaseURL = getEnv("TRANSLATOR_URL", cfg.Translator.BaseURL)
	cfg.Translator.TimeoutSeconds = getEnvInt("TRANSLATOR_TIMEOUT_SECONDS", cfg.Translator.TimeoutSeconds)
	cfg.Translator.HealthTTLSeconds = getEnvInt("TRANSLATOR_HEALTH_TTL_SECONDS", cfg.Translator.HealthTTLSeconds)

	cfg.Journal.Path = getEnv("JOURNAL_PATH", cfg.Journal.Path)

	cfg.Logging.Verbose = getEnvBool("DEBUG", cfg.Logging.Verbose)
	cfg.Logging.Format = getEnv("LOG_FORMAT", cfg.Logging.Format)

	if origins := os.Getenv("CORS_ALLOW_ORIGINS"); origins != "" {
		cfg.CORS.AllowOrigins = strings.Split(origins, ",")
	}
}

// Validate checks the configuration for values the gateway cannot run with.
func (c *Config) Validate() error {
	port, err := strconv.Atoi(c.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}

	switch c.Database.Driver {
	case DriverMySQL, DriverSQLServer:
	default:
		return fmt.Errorf("database.driver must be %q or %q, got %q", DriverMySQL, DriverSQLServer, c.Database.Driver)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database.host is required")
	}
	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database.port %d", c.Database.Port)
	}
	if c.Database.PoolSize < 1 {
		return fmt.Errorf("database.pool_size must be at least 1, got %d", c.Database.PoolSize)
	}
	if c.Database.QueueLimit < 0 {
		return fmt.Errorf("database.queue_limit must not be negative, got %d", c.Database.QueueLimit)
	}

	if c.Translator.BaseURL != "" && !strings.HasPrefix(c.Translator.BaseURL, "http://") &&
		!strings.HasPrefix(c.Translator.BaseURL, "https://") {
		return fmt.Errorf("translator.base_url must be an http(s) URL, got %q", c.Translator.BaseURL)
	}
	if c.Translator.TimeoutSeconds < 0 {
		return fmt.Errorf("translator.timeout_seconds must not be negative")
	}
	if c.Translator.HealthTTLSeconds < 0 {
		return fmt.Errorf("translator.health_ttl_seconds must not be negative, got %d", c.Translator.HealthTTLSeconds)
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be \"console\" or \"json\", got %q", c.Logging.Format)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.EqualFold(value, "true") || value == "1"
	}
	return defaultValue
}
