// Package config loads and validates squadron configuration.
//
// Values come from environment variables with built-in defaults; a .env
// file is loaded by main before Load is called. All tunables the
// orchestration core consumes live here so tests can construct Config
// literals without touching the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config is the umbrella configuration object returned by Load and
// threaded through construction. No component reads the environment
// after startup.
type Config struct {
	// Workspace is the shared directory all sub-agents of a commander
	// operate in. Required for submit.
	Workspace string

	HTTP         *HTTPConfig
	Runtime      *RuntimeConfig
	Orchestrator *OrchestratorConfig
	Pool         *PoolConfig
	Monitor      *MonitorConfig
	Cleanup      *CleanupConfig
	Events       *EventsConfig
	Masking      *MaskingConfig
	Slack        *SlackConfig
	Database     *DatabaseConfig
	Retention    *RetentionConfig
}

// Load builds the full configuration from the environment, applying
// defaults for anything unset.
func Load() (*Config, error) {
	runtime, err := loadRuntimeConfig()
	if err != nil {
		return nil, err
	}

	dbCfg, err := loadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	maskingCfg, err := loadMaskingConfig()
	if err != nil {
		return nil, err
	}

	retentionCfg, err := loadRetentionConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Workspace:    os.Getenv("SQUADRON_WORKSPACE"),
		HTTP:         loadHTTPConfig(),
		Runtime:      runtime,
		Orchestrator: DefaultOrchestratorConfig(),
		Pool:         DefaultPoolConfig(),
		Monitor:      DefaultMonitorConfig(),
		Cleanup:      DefaultCleanupConfig(),
		Events:       DefaultEventsConfig(),
		Masking:      maskingCfg,
		Slack:        loadSlackConfig(),
		Database:     dbCfg,
		Retention:    retentionCfg,
	}, nil
}

// HTTPConfig holds the control API listen settings.
type HTTPConfig struct {
	Port string
}

func loadHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Port: getEnvOrDefault("HTTP_PORT", "8080"),
	}
}

// EventsConfig holds event hub settings.
type EventsConfig struct {
	// CatchupSize is how many recent events per commander are buffered
	// for late WebSocket subscribers.
	CatchupSize int

	// WriteTimeout bounds a single WebSocket send.
	WriteTimeout time.Duration
}

// DefaultEventsConfig returns the built-in event hub defaults.
func DefaultEventsConfig() *EventsConfig {
	return &EventsConfig{
		CatchupSize:  200,
		WriteTimeout: 10 * time.Second,
	}
}

// MaskingConfig selects the secret patterns scrubbed from CLI output
// before it is logged, broadcast, or persisted.
type MaskingConfig struct {
	// Enabled turns output masking off entirely when false.
	Enabled bool

	// PatternGroup names the built-in pattern set to apply.
	PatternGroup string

	// CustomPatterns are appended to the group's patterns.
	CustomPatterns []MaskingPattern
}

// MaskingPattern is one regex masking rule.
type MaskingPattern struct {
	Pattern     string `json:"pattern"`
	Replacement string `json:"replacement"`
	Description string `json:"description,omitempty"`
}

// DefaultMaskingConfig returns the built-in masking defaults.
func DefaultMaskingConfig() *MaskingConfig {
	return &MaskingConfig{
		Enabled:      true,
		PatternGroup: "secrets",
	}
}

func loadMaskingConfig() (*MaskingConfig, error) {
	cfg := DefaultMaskingConfig()
	cfg.Enabled = getEnvOrDefault("MASKING_ENABLED", "true") != "false"
	cfg.PatternGroup = getEnvOrDefault("MASKING_PATTERN_GROUP", cfg.PatternGroup)

	// Custom rules ride in as a JSON array so .env stays one file.
	if raw := os.Getenv("MASKING_CUSTOM_PATTERNS"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &cfg.CustomPatterns); err != nil {
			return nil, fmt.Errorf("invalid MASKING_CUSTOM_PATTERNS: %w", err)
		}
	}
	return cfg, nil
}

// SlackConfig holds notification settings. Empty Token disables the
// notifier entirely.
type SlackConfig struct {
	Token   string
	Channel string
}

func loadSlackConfig() *SlackConfig {
	return &SlackConfig{
		Token:   os.Getenv("SLACK_BOT_TOKEN"),
		Channel: os.Getenv("SLACK_CHANNEL_ID"),
	}
}

// DatabaseConfig holds snapshot-store connection settings. An empty
// Host selects the in-memory store.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string

	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

func loadDatabaseConfig() (*DatabaseConfig, error) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return &DatabaseConfig{}, nil
	}

	port, err := strconv.Atoi(getEnvOrDefault("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	maxOpen, err := strconv.Atoi(getEnvOrDefault("DB_MAX_OPEN_CONNS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %w", err)
	}
	maxIdle, err := strconv.Atoi(getEnvOrDefault("DB_MAX_IDLE_CONNS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_IDLE_CONNS: %w", err)
	}

	cfg := &DatabaseConfig{
		Host:            host,
		Port:            port,
		User:            getEnvOrDefault("DB_USER", "squadron"),
		Password:        os.Getenv("DB_PASSWORD"),
		Database:        getEnvOrDefault("DB_NAME", "squadron"),
		SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
		MaxOpenConns:    maxOpen,
		MaxIdleConns:    maxIdle,
		ConnMaxLifetime: 30 * time.Minute,
		ConnMaxIdleTime: 5 * time.Minute,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks a configured (non-empty) database config for values
// that would fail at connection time.
func (c *DatabaseConfig) Validate() error {
	if c.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required when DB_HOST is set")
	}
	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.MaxOpenConns)
	}
	if c.MaxIdleConns < 0 || c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf("DB_MAX_IDLE_CONNS must be between 0 and DB_MAX_OPEN_CONNS, got %d", c.MaxIdleConns)
	}
	return nil
}

// Enabled reports whether a database backend is configured.
func (c *DatabaseConfig) Enabled() bool {
	return c != nil && c.Host != ""
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
