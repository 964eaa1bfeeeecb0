package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewkit/squadron/pkg/models"
)

// clearEnv blanks every variable Load reads so tests see deterministic
// defaults regardless of the host environment. t.Setenv restores the
// originals automatically.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SQUADRON_WORKSPACE",
		"HTTP_PORT",
		"CLI_BINARY",
		"CLI_BINARY_OPUS",
		"CLI_BINARY_SONNET",
		"CLI_BINARY_HAIKU",
		"MASKING_ENABLED",
		"MASKING_PATTERN_GROUP",
		"MASKING_CUSTOM_PATTERNS",
		"SLACK_BOT_TOKEN",
		"SLACK_CHANNEL_ID",
		"DB_HOST",
		"DB_PORT",
		"DB_USER",
		"DB_PASSWORD",
		"DB_NAME",
		"DB_SSLMODE",
		"DB_MAX_OPEN_CONNS",
		"DB_MAX_IDLE_CONNS",
		"RETENTION_TERMINAL",
		"RETENTION_ORPHAN",
		"RETENTION_SWEEP_INTERVAL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.Workspace)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, "aicli", cfg.Runtime.Binaries[models.ModelOpus])
	assert.Equal(t, "aicli", cfg.Runtime.Binaries[models.ModelSonnet])
	assert.Equal(t, "aicli", cfg.Runtime.Binaries[models.ModelHaiku])
	assert.True(t, cfg.Masking.Enabled)
	assert.Equal(t, "secrets", cfg.Masking.PatternGroup)
	assert.Empty(t, cfg.Masking.CustomPatterns)
	assert.Empty(t, cfg.Slack.Token)
	assert.Empty(t, cfg.Slack.Channel)
	assert.False(t, cfg.Database.Enabled())
	assert.Equal(t, DefaultOrchestratorConfig(), cfg.Orchestrator)
	assert.Equal(t, DefaultPoolConfig(), cfg.Pool)
	assert.Equal(t, DefaultMonitorConfig(), cfg.Monitor)
	assert.Equal(t, DefaultCleanupConfig(), cfg.Cleanup)
	assert.Equal(t, DefaultEventsConfig(), cfg.Events)
	assert.Equal(t, DefaultRetentionConfig(), cfg.Retention)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("SQUADRON_WORKSPACE", "/srv/work")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CLI_BINARY", "devagent")
	t.Setenv("CLI_BINARY_OPUS", "devagent-big")
	t.Setenv("MASKING_ENABLED", "false")
	t.Setenv("MASKING_PATTERN_GROUP", "all")
	t.Setenv("SLACK_BOT_TOKEN", "xoxb-test")
	t.Setenv("SLACK_CHANNEL_ID", "C123")
	t.Setenv("RETENTION_TERMINAL", "48h")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/srv/work", cfg.Workspace)
	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "devagent-big", cfg.Runtime.Binaries[models.ModelOpus])
	assert.Equal(t, "devagent", cfg.Runtime.Binaries[models.ModelSonnet])
	assert.Equal(t, "devagent", cfg.Runtime.Binaries[models.ModelHaiku])
	assert.False(t, cfg.Masking.Enabled)
	assert.Equal(t, "all", cfg.Masking.PatternGroup)
	assert.Equal(t, "xoxb-test", cfg.Slack.Token)
	assert.Equal(t, "C123", cfg.Slack.Channel)
	assert.Equal(t, 48*time.Hour, cfg.Retention.TerminalRetention)
	assert.Equal(t, 24*time.Hour, cfg.Retention.OrphanRetention)
}

func TestLoadMaskingCustomPatterns(t *testing.T) {
	t.Run("valid JSON array", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MASKING_CUSTOM_PATTERNS",
			`[{"pattern":"internal_id_[0-9]+","replacement":"[MASKED_ID]","description":"internal IDs"}]`)

		cfg, err := Load()
		require.NoError(t, err)
		require.Len(t, cfg.Masking.CustomPatterns, 1)
		assert.Equal(t, "internal_id_[0-9]+", cfg.Masking.CustomPatterns[0].Pattern)
		assert.Equal(t, "[MASKED_ID]", cfg.Masking.CustomPatterns[0].Replacement)
	})

	t.Run("invalid JSON is rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MASKING_CUSTOM_PATTERNS", `{not json`)

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid MASKING_CUSTOM_PATTERNS")
	})
}

func TestLoadDatabaseConfig(t *testing.T) {
	t.Run("no host selects in-memory store", func(t *testing.T) {
		clearEnv(t)

		cfg, err := Load()
		require.NoError(t, err)
		assert.False(t, cfg.Database.Enabled())
	})

	t.Run("host with password enables the store", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PASSWORD", "secret")

		cfg, err := Load()
		require.NoError(t, err)
		require.True(t, cfg.Database.Enabled())
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "squadron", cfg.Database.User)
		assert.Equal(t, "squadron", cfg.Database.Database)
		assert.Equal(t, "disable", cfg.Database.SSLMode)
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	})

	t.Run("host without password is rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_HOST", "localhost")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "DB_PASSWORD is required")
	})

	t.Run("non-numeric port is rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_PORT", "not-a-port")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid DB_PORT")
	})
}

func TestDatabaseConfigValidate(t *testing.T) {
	valid := func() *DatabaseConfig {
		return &DatabaseConfig{
			Host:         "localhost",
			Port:         5432,
			User:         "squadron",
			Password:     "secret",
			Database:     "squadron",
			MaxOpenConns: 10,
			MaxIdleConns: 5,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*DatabaseConfig)
		wantErr string
	}{
		{
			name:   "valid config",
			mutate: func(c *DatabaseConfig) {},
		},
		{
			name:    "empty password",
			mutate:  func(c *DatabaseConfig) { c.Password = "" },
			wantErr: "DB_PASSWORD is required",
		},
		{
			name:    "zero max open conns",
			mutate:  func(c *DatabaseConfig) { c.MaxOpenConns = 0 },
			wantErr: "DB_MAX_OPEN_CONNS must be positive",
		},
		{
			name:    "negative max idle conns",
			mutate:  func(c *DatabaseConfig) { c.MaxIdleConns = -1 },
			wantErr: "DB_MAX_IDLE_CONNS must be between",
		},
		{
			name:    "more idle than open conns",
			mutate:  func(c *DatabaseConfig) { c.MaxIdleConns = 20 },
			wantErr: "DB_MAX_IDLE_CONNS must be between",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDatabaseConfigEnabled(t *testing.T) {
	var nilCfg *DatabaseConfig
	assert.False(t, nilCfg.Enabled())
	assert.False(t, (&DatabaseConfig{}).Enabled())
	assert.True(t, (&DatabaseConfig{Host: "localhost"}).Enabled())
}

func TestDefaultOrchestratorConfig(t *testing.T) {
	cfg := DefaultOrchestratorConfig()

	assert.Equal(t, 1*time.Second, cfg.IntroDelay)
	assert.Equal(t, 6, cfg.MaxSubtasks)
	assert.Equal(t, 500, cfg.DependencyContextChars)
	assert.Equal(t, 800, cfg.SynthesisResultChars)
	assert.Equal(t, 30*time.Second, cfg.DisbandDelay)
}

func TestDefaultPoolConfig(t *testing.T) {
	assert.Equal(t, 8, DefaultPoolConfig().MaxPoolSize)
}

func TestDefaultMonitorConfig(t *testing.T) {
	cfg := DefaultMonitorConfig()

	assert.Equal(t, 10*time.Second, cfg.SnapshotInterval)
	assert.Equal(t, 360, cfg.SnapshotRingSize)
	assert.Equal(t, 30*time.Second, cfg.AlertDedupWindow)
	assert.Equal(t, 3, cfg.IdleWarningCount)
	assert.Equal(t, 60*time.Second, cfg.IdleCriticalAge)
	assert.Equal(t, 4, cfg.CompletedWarningCount)
}

func TestDefaultCleanupConfig(t *testing.T) {
	cfg := DefaultCleanupConfig()

	assert.Equal(t, 5*time.Second, cfg.SweepInterval)
	assert.Equal(t, 30*time.Second, cfg.TerminalRetention)
	assert.Equal(t, 12, cfg.SoftAgentCap)
}

func TestDefaultRetentionConfig(t *testing.T) {
	cfg := DefaultRetentionConfig()

	assert.Equal(t, 7*24*time.Hour, cfg.TerminalRetention)
	assert.Equal(t, 24*time.Hour, cfg.OrphanRetention)
	assert.Equal(t, 12*time.Hour, cfg.SweepInterval)
}

func TestLoadRetentionConfig(t *testing.T) {
	t.Run("invalid duration is rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RETENTION_ORPHAN", "yesterday")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid RETENTION_ORPHAN")
	})

	t.Run("non-positive duration is rejected", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("RETENTION_SWEEP_INTERVAL", "0s")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RETENTION_SWEEP_INTERVAL must be positive")
	})
}

func TestRuntimeConfigBinary(t *testing.T) {
	cfg := &RuntimeConfig{
		Binaries: map[models.Model]string{models.ModelOpus: "devagent"},
	}

	bin, err := cfg.Binary(models.ModelOpus)
	require.NoError(t, err)
	assert.Equal(t, "devagent", bin)

	_, err = cfg.Binary(models.ModelHaiku)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CLI binary configured")
}
