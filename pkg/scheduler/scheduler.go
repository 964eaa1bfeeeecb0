// Package scheduler releases decomposed sub-tasks in dependency order,
// highest priority first. One scheduler instance serves every live
// orchestration; state is keyed by commander identity.
package scheduler

import (
	"log/slog"
	"sort"
	"time"

	"github.com/crewkit/squadron/pkg/models"
)

// entry is the scheduling record for one sub-task.
type entry struct {
	index        int
	priority     models.Priority
	dependencies []int
	status       models.SubTaskStatus
	scheduledAt  time.Time
	startedAt    time.Time
}

// Scheduler maintains per-orchestration entry maps and answers the
// orchestrator's "what runs next" question.
//
// Not safe for concurrent use: the orchestrator serializes all access
// behind its own lock.
type Scheduler struct {
	log     *slog.Logger
	entries map[string]map[int]*entry

	totalScheduled int
	totalCompleted int
	waitSum        time.Duration
	waitSamples    int
}

// Stats is a point-in-time throughput summary, for reporting only.
type Stats struct {
	TotalScheduled int           `json:"total_scheduled"`
	TotalCompleted int           `json:"total_completed"`
	AverageWait    time.Duration `json:"average_wait"`
}

// New creates an empty scheduler.
func New(log *slog.Logger) *Scheduler {
	if log == nil {
		log = slog.Default()
	}
	return &Scheduler{
		log:     log.With("component", "scheduler"),
		entries: make(map[string]map[int]*entry),
	}
}

// AddOrchestration registers scheduling entries for every sub-task of a
// freshly decomposed orchestration. Priorities come pre-derived on the
// sub-tasks (complexity mapping plus the zero-dependency promotion).
func (s *Scheduler) AddOrchestration(commanderID string, subtasks []*models.SubTask) {
	m := make(map[int]*entry, len(subtasks))
	for _, st := range subtasks {
		m[st.Index] = &entry{
			index:        st.Index,
			priority:     st.Priority,
			dependencies: st.Dependencies,
			status:       models.SubTaskPending,
		}
	}
	s.entries[commanderID] = m
	s.log.Debug("Orchestration registered", "commander_id", commanderID, "subtasks", len(subtasks))
}

// RemoveOrchestration drops all state for a commander. Called on cancel
// and after synthesis. Unknown commanders are a no-op.
func (s *Scheduler) RemoveOrchestration(commanderID string) {
	delete(s.entries, commanderID)
}

// ready reports whether e can start: still pending and every dependency
// completed. Entries downstream of a failed dependency are never ready.
func (s *Scheduler) ready(m map[int]*entry, e *entry) bool {
	if e.status != models.SubTaskPending {
		return false
	}
	for _, dep := range e.dependencies {
		d, ok := m[dep]
		if !ok || d.status != models.SubTaskCompleted {
			return false
		}
	}
	return true
}

// ReadyCount returns how many sub-tasks could start right now.
func (s *Scheduler) ReadyCount(commanderID string) int {
	m := s.entries[commanderID]
	count := 0
	for _, e := range m {
		if s.ready(m, e) {
			count++
		}
	}
	return count
}

// NextBatch returns up to maxSize ready sub-task indices ordered by
// priority (critical first) with lower index breaking ties. It never
// mutates state, so identical inputs yield identical batches.
func (s *Scheduler) NextBatch(commanderID string, maxSize int) []int {
	m := s.entries[commanderID]
	if maxSize <= 0 || len(m) == 0 {
		return nil
	}

	ready := make([]*entry, 0, len(m))
	for _, e := range m {
		if s.ready(m, e) {
			ready = append(ready, e)
		}
	}
	sort.Slice(ready, func(i, j int) bool {
		if ready[i].priority != ready[j].priority {
			return ready[i].priority > ready[j].priority
		}
		return ready[i].index < ready[j].index
	})

	if len(ready) > maxSize {
		ready = ready[:maxSize]
	}
	batch := make([]int, len(ready))
	for i, e := range ready {
		batch[i] = e.index
	}
	return batch
}

// MarkScheduled transitions a sub-task to waiting: picked for a wave,
// not yet granted a start slot.
func (s *Scheduler) MarkScheduled(commanderID string, index int) {
	e := s.lookup(commanderID, index, "MarkScheduled")
	if e == nil {
		return
	}
	e.status = models.SubTaskWaiting
	e.scheduledAt = time.Now()
	s.totalScheduled++
}

// MarkStarted transitions a sub-task to in_progress and records the
// wait between scheduling and start for the stats.
func (s *Scheduler) MarkStarted(commanderID string, index int) {
	e := s.lookup(commanderID, index, "MarkStarted")
	if e == nil {
		return
	}
	e.status = models.SubTaskInProgress
	e.startedAt = time.Now()
	if !e.scheduledAt.IsZero() {
		s.waitSum += e.startedAt.Sub(e.scheduledAt)
		s.waitSamples++
	}
}

// MarkCompleted transitions a sub-task to completed, unblocking its
// dependents for the next ready check.
func (s *Scheduler) MarkCompleted(commanderID string, index int) {
	e := s.lookup(commanderID, index, "MarkCompleted")
	if e == nil {
		return
	}
	e.status = models.SubTaskCompleted
	s.totalCompleted++
}

// MarkFailed transitions a sub-task to failed. Its dependents stay
// unready forever; the orchestrator decides their fate.
func (s *Scheduler) MarkFailed(commanderID string, index int) {
	e := s.lookup(commanderID, index, "MarkFailed")
	if e == nil {
		return
	}
	e.status = models.SubTaskFailed
}

// Stats returns cumulative throughput counters across all
// orchestrations this scheduler has seen.
func (s *Scheduler) Stats() Stats {
	st := Stats{
		TotalScheduled: s.totalScheduled,
		TotalCompleted: s.totalCompleted,
	}
	if s.waitSamples > 0 {
		st.AverageWait = s.waitSum / time.Duration(s.waitSamples)
	}
	return st
}

func (s *Scheduler) lookup(commanderID string, index int, op string) *entry {
	m, ok := s.entries[commanderID]
	if !ok {
		s.log.Warn("Unknown orchestration", "op", op, "commander_id", commanderID)
		return nil
	}
	e, ok := m[index]
	if !ok {
		s.log.Warn("Unknown sub-task index", "op", op, "commander_id", commanderID, "index", index)
		return nil
	}
	return e
}
