package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config Application Configuration
type Config struct {
	App    AppConfig    `mapstructure:"app"`
	Log    LogConfig    `mapstructure:"log"`
	Search SearchConfig `mapstructure:"search"`
	Events EventsConfig `mapstructure:"events"`
}

// AppConfig Application Configuration
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Env     string `mapstructure:"env"` // development, staging, production
}

// LogConfig Log Configuration
type LogConfig struct {
	Level    string `mapstructure:"level"`  // debug, info, warn, error
	Format   string `mapstructure:"format"` // json, console
	Output   string `mapstructure:"output"` // stdout, file
	FilePath string `mapstructure:"file_path"`
}

// SearchConfig Defaults applied to search requests that leave paging unset
type SearchConfig struct {
	DefaultPerPage int `mapstructure:"default_per_page"`
	MaxPerPage     int `mapstructure:"max_per_page"`
}

// EventsConfig Domain event delivery configuration
// AuditFile 为空时审计只写日志，否则同时以 JSON 行追加到该文件
type EventsConfig struct {
	AuditFile string      `mapstructure:"audit_file"`
	Retry     RetryConfig `mapstructure:"retry"`
}

// RetryConfig Retry configuration for event handlers
type RetryConfig struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxAttempts   int           `mapstructure:"max_attempts"`
	InitialDelay  time.Duration `mapstructure:"initial_delay"`
	MaxDelay      time.Duration `mapstructure:"max_delay"`
	BackoffFactor float64       `mapstructure:"backoff_factor"`
	JitterEnabled bool          `mapstructure:"jitter_enabled"`
}

// IsDevelopment Whether it's development environment
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction Whether it's production environment
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// Load Load Configuration
// Environment variables use the CATALOG_ prefix, e.g. CATALOG_LOG_LEVEL=debug
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("CATALOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Use default values when config file doesn't exist
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if config.Search.MaxPerPage > 0 && config.Search.DefaultPerPage > config.Search.MaxPerPage {
		return nil, fmt.Errorf("search.default_per_page (%d) exceeds search.max_per_page (%d)",
			config.Search.DefaultPerPage, config.Search.MaxPerPage)
	}

	return &config, nil
}

// setDefaults Set default configuration
func setDefaults(v *viper.Viper) {
	// App
	v.SetDefault("app.name", "catalog")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.env", "development")

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.output", "stdout")
	v.SetDefault("log.file_path", "logs/app.log")

	// Search
	v.SetDefault("search.default_per_page", 15)
	v.SetDefault("search.max_per_page", 100)

	// Events
	v.SetDefault("events.audit_file", "")
	v.SetDefault("events.retry.enabled", true)
	v.SetDefault("events.retry.max_attempts", 3)
	v.SetDefault("events.retry.initial_delay", "100ms")
	v.SetDefault("events.retry.max_delay", "2s")
	v.SetDefault("events.retry.backoff_factor", 2.0)
	v.SetDefault("events.retry.jitter_enabled", true)
}
