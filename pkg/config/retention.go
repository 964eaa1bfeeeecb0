package config

import (
	"fmt"
	"time"
)

// RetentionConfig controls pruning of the task-queue snapshot store.
// Rows normally disappear when a commander disbands; anything older
// than these windows is residue of a run that died mid-flight.
type RetentionConfig struct {
	// TerminalRetention is how long completed and failed rows stay
	// queryable before the sweeper deletes them.
	TerminalRetention time.Duration

	// OrphanRetention is how long non-terminal rows from interrupted
	// runs are kept for inspection. Must comfortably exceed the longest
	// plausible orchestration.
	OrphanRetention time.Duration

	// SweepInterval is how often the sweeper runs.
	SweepInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		TerminalRetention: 7 * 24 * time.Hour,
		OrphanRetention:   24 * time.Hour,
		SweepInterval:     12 * time.Hour,
	}
}

func loadRetentionConfig() (*RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	for _, entry := range []struct {
		key  string
		dest *time.Duration
	}{
		{"RETENTION_TERMINAL", &cfg.TerminalRetention},
		{"RETENTION_ORPHAN", &cfg.OrphanRetention},
		{"RETENTION_SWEEP_INTERVAL", &cfg.SweepInterval},
	} {
		raw := getEnvOrDefault(entry.key, entry.dest.String())
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", entry.key, err)
		}
		if d <= 0 {
			return nil, fmt.Errorf("%s must be positive, got %s", entry.key, d)
		}
		*entry.dest = d
	}
	return cfg, nil
}
