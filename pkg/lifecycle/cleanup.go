package lifecycle

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/models"
)

// completedBacklogThreshold is the completed-awaiting-cleanup count above
// which pressure is escalated one level.
const completedBacklogThreshold = 4

// PressureSink receives recomputed pressure values. The concurrency
// controller and sub-agent pool both implement it.
type PressureSink interface {
	SetPressure(p models.Pressure)
}

// CleanupManager reaps terminal agents after a retention window and
// derives the pressure signal from registry occupancy. It runs a periodic
// sweep between Start and Stop; every recomputed pressure value is pushed
// to the registered sinks.
type CleanupManager struct {
	cfg     config.CleanupConfig
	manager *Manager
	logger  *slog.Logger

	mu         sync.Mutex
	memoryHint models.Pressure
	sinks      []PressureSink
	last       models.Pressure

	cancel context.CancelFunc
	done   chan struct{}
}

// NewCleanupManager wires a cleanup manager over the given registry.
func NewCleanupManager(cfg config.CleanupConfig, manager *Manager) *CleanupManager {
	return &CleanupManager{
		cfg:     cfg,
		manager: manager,
		logger:  slog.Default().With("component", "cleanup"),
		last:    models.PressureNormal,
	}
}

// AddSink registers a consumer of pressure updates.
func (c *CleanupManager) AddSink(sink PressureSink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sinks = append(c.sinks, sink)
}

// SetMemoryHint records an external memory-pressure hint. The effective
// pressure never drops below the hint until it is cleared with
// ClearMemoryHint.
func (c *CleanupManager) SetMemoryHint(p models.Pressure) {
	c.mu.Lock()
	c.memoryHint = p
	c.mu.Unlock()
	c.Publish()
}

// ClearMemoryHint removes the external hint.
func (c *CleanupManager) ClearMemoryHint() {
	c.mu.Lock()
	c.memoryHint = ""
	c.mu.Unlock()
	c.Publish()
}

// Pressure computes the current pressure from live-agent occupancy
// against the soft cap, the completed backlog, and the external hint.
func (c *CleanupManager) Pressure() models.Pressure {
	counts := c.manager.Counts()

	live := 0
	for state, n := range counts {
		if !state.IsTerminal() {
			live += n
		}
	}
	backlog := counts[models.AgentCompleted] + counts[models.AgentError]

	p := models.PressureNormal
	if c.cfg.SoftAgentCap > 0 {
		ratio := float64(live) / float64(c.cfg.SoftAgentCap)
		switch {
		case ratio >= 1.0:
			p = models.PressureCritical
		case ratio >= 0.75:
			p = models.PressureHigh
		case ratio >= 0.5:
			p = models.PressureElevated
		}
	}
	if backlog > completedBacklogThreshold {
		p = p.Escalate()
	}

	c.mu.Lock()
	hint := c.memoryHint
	c.mu.Unlock()
	if hint.IsValid() && hint.Severity() > p.Severity() {
		p = hint
	}
	return p
}

// Publish recomputes the pressure and pushes it to all sinks. Changes are
// logged at info level, steady values at debug.
func (c *CleanupManager) Publish() models.Pressure {
	p := c.Pressure()

	c.mu.Lock()
	changed := p != c.last
	c.last = p
	sinks := make([]PressureSink, len(c.sinks))
	copy(sinks, c.sinks)
	c.mu.Unlock()

	if changed {
		c.logger.Info("Pressure changed", "pressure", p, "limit", p.Limit())
	}
	for _, sink := range sinks {
		sink.SetPressure(p)
	}
	return p
}

// Start launches the periodic sweep. It returns immediately; the sweep
// runs once at startup and then on every tick until Stop.
func (c *CleanupManager) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	c.cancel = cancel
	c.done = make(chan struct{})

	go c.run(ctx)

	c.logger.Info("Cleanup manager started",
		"sweep_interval", c.cfg.SweepInterval,
		"terminal_retention", c.cfg.TerminalRetention,
		"soft_agent_cap", c.cfg.SoftAgentCap)
	return nil
}

// Stop halts the sweep loop and waits for it to exit.
func (c *CleanupManager) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	<-c.done
	c.logger.Info("Cleanup manager stopped")
}

func (c *CleanupManager) run(ctx context.Context) {
	defer close(c.done)

	ticker := time.NewTicker(c.cfg.SweepInterval)
	defer ticker.Stop()

	c.sweep()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep()
		}
	}
}

// sweep destroys terminal agents older than the retention window and
// republishes pressure. Best-effort: failures are logged, never fatal.
func (c *CleanupManager) sweep() {
	cutoff := time.Now().Add(-c.cfg.TerminalRetention)

	reaped := 0
	for _, view := range c.manager.AgentViews() {
		if !view.State.IsTerminal() {
			continue
		}
		if view.StateSince.After(cutoff) {
			continue
		}
		if err := c.manager.Destroy(view.ID); err != nil {
			c.logger.Warn("Failed to destroy terminal agent",
				"agent_id", view.ID,
				"error", err)
			continue
		}
		reaped++
	}
	if reaped > 0 {
		c.logger.Info("Reaped terminal agents", "count", reaped)
	}

	c.Publish()
}
