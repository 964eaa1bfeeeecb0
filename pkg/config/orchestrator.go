package config

import "time"

// OrchestratorConfig contains pipeline tunables.
type OrchestratorConfig struct {
	// IntroDelay is the grace period between submit and decomposition,
	// reserved for host UI animation.
	IntroDelay time.Duration

	// MaxSubtasks caps how many planner entries are accepted; extras
	// are truncated.
	MaxSubtasks int

	// DependencyContextChars bounds each completed dependency's result
	// excerpt injected into downstream prompts.
	DependencyContextChars int

	// SynthesisResultChars bounds each sub-task's result or error
	// excerpt in the synthesis prompt.
	SynthesisResultChars int

	// DisbandDelay is how long a terminal orchestration stays readable
	// before its commander is disbanded and the records dropped.
	DisbandDelay time.Duration
}

// DefaultOrchestratorConfig returns the built-in pipeline defaults.
func DefaultOrchestratorConfig() *OrchestratorConfig {
	return &OrchestratorConfig{
		IntroDelay:             1 * time.Second,
		MaxSubtasks:            6,
		DependencyContextChars: 500,
		SynthesisResultChars:   800,
		DisbandDelay:           30 * time.Second,
	}
}

// PoolConfig contains sub-agent pool tunables.
type PoolConfig struct {
	// MaxPoolSize caps how many idle sub-agents are retained across all
	// roles. Releases beyond the cap destroy the agent.
	MaxPoolSize int
}

// DefaultPoolConfig returns the built-in pool defaults.
func DefaultPoolConfig() *PoolConfig {
	return &PoolConfig{
		MaxPoolSize: 8,
	}
}

// MonitorConfig contains passive monitor tunables.
type MonitorConfig struct {
	// SnapshotInterval is how often per-state counts are aggregated.
	SnapshotInterval time.Duration

	// SnapshotRingSize bounds retained snapshots (360 at 10s ≈ 1 hour).
	SnapshotRingSize int

	// AlertDedupWindow suppresses repeat alerts with identical messages.
	AlertDedupWindow time.Duration

	// IdleWarningCount triggers a warning when exceeded.
	IdleWarningCount int

	// IdleCriticalAge triggers a critical alert for any agent idle longer.
	IdleCriticalAge time.Duration

	// CompletedWarningCount triggers a warning when more agents than
	// this await cleanup.
	CompletedWarningCount int
}

// DefaultMonitorConfig returns the built-in monitor defaults.
func DefaultMonitorConfig() *MonitorConfig {
	return &MonitorConfig{
		SnapshotInterval:      10 * time.Second,
		SnapshotRingSize:      360,
		AlertDedupWindow:      30 * time.Second,
		IdleWarningCount:      3,
		IdleCriticalAge:       60 * time.Second,
		CompletedWarningCount: 4,
	}
}

// CleanupConfig contains cleanup manager tunables.
type CleanupConfig struct {
	// SweepInterval is how often terminal agents are reaped and
	// pressure republished.
	SweepInterval time.Duration

	// TerminalRetention is how long a completed or errored agent is
	// kept before the sweep destroys it.
	TerminalRetention time.Duration

	// SoftAgentCap is the non-terminal agent count above which pressure
	// starts to rise.
	SoftAgentCap int
}

// DefaultCleanupConfig returns the built-in cleanup defaults.
func DefaultCleanupConfig() *CleanupConfig {
	return &CleanupConfig{
		SweepInterval:     5 * time.Second,
		TerminalRetention: 30 * time.Second,
		SoftAgentCap:      12,
	}
}
