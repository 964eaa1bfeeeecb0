package lifecycle

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/models"
)

const alertLogCapacity = 100

// AlertLevel classifies monitor alerts.
type AlertLevel string

const (
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

// Alert is one emitted monitor alert.
type Alert struct {
	Level   AlertLevel `json:"level"`
	Message string     `json:"message"`
	At      time.Time  `json:"at"`
}

// Report is a point-in-time summary of the agent registry.
type Report struct {
	At                time.Time                 `json:"at"`
	Total             int                       `json:"total"`
	Busy              int                       `json:"busy"`
	Idle              int                       `json:"idle"`
	Pooled            int                       `json:"pooled"`
	CompletedAwaiting int                       `json:"completed_awaiting"`
	Counts            map[models.AgentState]int `json:"counts"`
}

// Monitor periodically snapshots the agent registry and raises alerts on
// suspicious occupancy. It only ever reads through the StateView; it never
// mutates agents. Snapshots and alerts are kept in bounded buffers.
type Monitor struct {
	cfg    config.MonitorConfig
	view   StateView
	logger *slog.Logger

	mu        sync.Mutex
	snapshots []Report
	alerts    []Alert
	lastAlert map[string]time.Time

	cancel context.CancelFunc
	done   chan struct{}
}

// NewMonitor builds a monitor over a read-only registry view.
func NewMonitor(cfg config.MonitorConfig, view StateView) *Monitor {
	if cfg.SnapshotRingSize <= 0 {
		cfg.SnapshotRingSize = config.DefaultMonitorConfig().SnapshotRingSize
	}
	return &Monitor{
		cfg:       cfg,
		view:      view,
		logger:    slog.Default().With("component", "monitor"),
		snapshots: make([]Report, 0, cfg.SnapshotRingSize),
		lastAlert: make(map[string]time.Time),
	}
}

// Start launches the snapshot loop.
func (m *Monitor) Start(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(ctx)

	m.logger.Info("Monitor started", "snapshot_interval", m.cfg.SnapshotInterval)
	return nil
}

// Stop halts the snapshot loop and waits for it to exit.
func (m *Monitor) Stop() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	<-m.done
	m.logger.Info("Monitor stopped")
}

func (m *Monitor) run(ctx context.Context) {
	defer close(m.done)

	ticker := time.NewTicker(m.cfg.SnapshotInterval)
	defer ticker.Stop()

	m.Capture()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Capture()
		}
	}
}

// Report computes the current registry summary without recording it.
func (m *Monitor) Report() Report {
	views := m.view.AgentViews()

	rep := Report{
		At:     time.Now(),
		Total:  len(views),
		Counts: make(map[models.AgentState]int),
	}
	for _, v := range views {
		rep.Counts[v.State]++
		switch {
		case v.State.IsBusy():
			rep.Busy++
		case v.State == models.AgentIdle:
			rep.Idle++
		case v.State == models.AgentPooled:
			rep.Pooled++
		}
	}
	rep.CompletedAwaiting = rep.Counts[models.AgentCompleted] + rep.Counts[models.AgentError]
	return rep
}

// Capture records one snapshot and evaluates the alert rules against it.
func (m *Monitor) Capture() Report {
	rep := m.Report()
	views := m.view.AgentViews()

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.snapshots) >= m.cfg.SnapshotRingSize {
		drop := int(float64(m.cfg.SnapshotRingSize) * evictBatchFraction)
		if drop < 1 {
			drop = 1
		}
		m.snapshots = append(m.snapshots[:0], m.snapshots[drop:]...)
	}
	m.snapshots = append(m.snapshots, rep)

	m.evaluateLocked(rep, views)
	return rep
}

// evaluateLocked applies the alert rules. Caller holds m.mu.
func (m *Monitor) evaluateLocked(rep Report, views []AgentView) {
	if rep.Idle > m.cfg.IdleWarningCount {
		m.raiseLocked(AlertWarning, fmt.Sprintf("%d agents idle", rep.Idle), rep.At)
	}

	for _, v := range views {
		if v.State != models.AgentIdle {
			continue
		}
		if rep.At.Sub(v.StateSince) > m.cfg.IdleCriticalAge {
			msg := fmt.Sprintf("agent %s idle for more than %s", v.ID, m.cfg.IdleCriticalAge)
			m.raiseLocked(AlertCritical, msg, rep.At)
		}
	}

	if rep.CompletedAwaiting > m.cfg.CompletedWarningCount {
		msg := fmt.Sprintf("%d completed agents awaiting cleanup", rep.CompletedAwaiting)
		m.raiseLocked(AlertWarning, msg, rep.At)
	}
}

// raiseLocked emits one alert unless an identical message fired within the
// dedup window. Caller holds m.mu.
func (m *Monitor) raiseLocked(level AlertLevel, message string, at time.Time) {
	if last, ok := m.lastAlert[message]; ok && at.Sub(last) < m.cfg.AlertDedupWindow {
		return
	}
	m.lastAlert[message] = at

	if len(m.alerts) >= alertLogCapacity {
		drop := int(float64(alertLogCapacity) * evictBatchFraction)
		if drop < 1 {
			drop = 1
		}
		m.alerts = append(m.alerts[:0], m.alerts[drop:]...)
	}
	m.alerts = append(m.alerts, Alert{Level: level, Message: message, At: at})

	switch level {
	case AlertCritical:
		m.logger.Error("Monitor alert", "message", message)
	default:
		m.logger.Warn("Monitor alert", "message", message)
	}
}

// Snapshots returns up to n most recent snapshots, newest last.
func (m *Monitor) Snapshots(n int) []Report {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n <= 0 || n > len(m.snapshots) {
		n = len(m.snapshots)
	}
	out := make([]Report, n)
	copy(out, m.snapshots[len(m.snapshots)-n:])
	return out
}

// Alerts returns up to n most recent alerts, newest last.
func (m *Monitor) Alerts(n int) []Alert {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n <= 0 || n > len(m.alerts) {
		n = len(m.alerts)
	}
	out := make([]Alert, n)
	copy(out, m.alerts[len(m.alerts)-n:])
	return out
}
