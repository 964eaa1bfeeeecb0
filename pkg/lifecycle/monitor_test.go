package lifecycle

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/models"
)

// stubView feeds the monitor a fixed set of agents.
type stubView struct {
	views []AgentView
}

func (s *stubView) AgentViews() []AgentView {
	out := make([]AgentView, len(s.views))
	copy(out, s.views)
	return out
}

func (s *stubView) Counts() map[models.AgentState]int {
	counts := make(map[models.AgentState]int)
	for _, v := range s.views {
		counts[v.State]++
	}
	return counts
}

func agentIn(state models.AgentState, since time.Time) AgentView {
	return AgentView{
		ID:          fmt.Sprintf("agent-%s-%d", state, since.UnixNano()),
		Role:        models.RoleDeveloper,
		CommanderID: "cmd-1",
		State:       state,
		StateSince:  since,
	}
}

func monitorConfig() config.MonitorConfig {
	return config.MonitorConfig{
		SnapshotInterval:      10 * time.Second,
		SnapshotRingSize:      360,
		AlertDedupWindow:      30 * time.Second,
		IdleWarningCount:      3,
		IdleCriticalAge:       60 * time.Second,
		CompletedWarningCount: 4,
	}
}

func TestMonitorReportCountsStates(t *testing.T) {
	now := time.Now()
	view := &stubView{views: []AgentView{
		agentIn(models.AgentWorking, now),
		agentIn(models.AgentThinking, now),
		agentIn(models.AgentIdle, now),
		agentIn(models.AgentPooled, now),
		agentIn(models.AgentCompleted, now),
		agentIn(models.AgentError, now),
	}}

	mon := NewMonitor(monitorConfig(), view)
	rep := mon.Report()

	assert.Equal(t, 6, rep.Total)
	assert.Equal(t, 2, rep.Busy)
	assert.Equal(t, 1, rep.Idle)
	assert.Equal(t, 1, rep.Pooled)
	assert.Equal(t, 2, rep.CompletedAwaiting)
	assert.Equal(t, 1, rep.Counts[models.AgentWorking])
}

func TestMonitorWarnsOnIdleCount(t *testing.T) {
	now := time.Now()
	view := &stubView{}
	for i := 0; i < 4; i++ {
		view.views = append(view.views, AgentView{
			ID:         fmt.Sprintf("idle-%d", i),
			State:      models.AgentIdle,
			StateSince: now,
		})
	}

	mon := NewMonitor(monitorConfig(), view)
	mon.Capture()

	alerts := mon.Alerts(0)
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertWarning, alerts[0].Level)
	assert.Equal(t, "4 agents idle", alerts[0].Message)
}

func TestMonitorCriticalOnLongIdleAgent(t *testing.T) {
	view := &stubView{views: []AgentView{
		{ID: "sleeper", State: models.AgentIdle, StateSince: time.Now().Add(-2 * time.Minute)},
	}}

	mon := NewMonitor(monitorConfig(), view)
	mon.Capture()

	alerts := mon.Alerts(0)
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertCritical, alerts[0].Level)
	assert.Contains(t, alerts[0].Message, "sleeper")
}

func TestMonitorWarnsOnCompletedBacklog(t *testing.T) {
	now := time.Now()
	view := &stubView{}
	for i := 0; i < 5; i++ {
		view.views = append(view.views, agentIn(models.AgentCompleted, now.Add(time.Duration(i)*time.Millisecond)))
	}

	mon := NewMonitor(monitorConfig(), view)
	mon.Capture()

	alerts := mon.Alerts(0)
	require.Len(t, alerts, 1)
	assert.Equal(t, "5 completed agents awaiting cleanup", alerts[0].Message)
}

func TestMonitorDeduplicatesAlerts(t *testing.T) {
	view := &stubView{views: []AgentView{
		{ID: "sleeper", State: models.AgentIdle, StateSince: time.Now().Add(-2 * time.Minute)},
	}}

	mon := NewMonitor(monitorConfig(), view)
	mon.Capture()
	mon.Capture() // same message inside the dedup window

	assert.Len(t, mon.Alerts(0), 1)
}

func TestMonitorSnapshotRingEvicts(t *testing.T) {
	cfg := monitorConfig()
	cfg.SnapshotRingSize = 10

	mon := NewMonitor(cfg, &stubView{})
	for i := 0; i < 11; i++ {
		mon.Capture()
	}

	// Full ring drops the oldest 20% batch before appending.
	assert.Len(t, mon.Snapshots(0), 9)
}
