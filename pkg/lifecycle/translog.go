package lifecycle

import (
	"sync"
	"time"

	"github.com/crewkit/squadron/pkg/models"
)

const (
	transitionLogCapacity = 500
	// evictBatchFraction is the share of the oldest entries dropped in one
	// batch when the log is full, so eviction does not run on every append.
	evictBatchFraction = 0.2
)

// TransitionRecord is one accepted lifecycle transition.
type TransitionRecord struct {
	AgentID string            `json:"agent_id"`
	Event   Event             `json:"event"`
	From    models.AgentState `json:"from"`
	To      models.AgentState `json:"to"`
	At      time.Time         `json:"at"`
}

// TransitionLog keeps a bounded history of accepted transitions for
// debugging and the monitor report. Rejected transitions are not recorded.
type TransitionLog struct {
	mu       sync.Mutex
	capacity int
	entries  []TransitionRecord
}

// NewTransitionLog returns a log bounded at the given capacity. A
// non-positive capacity falls back to the default.
func NewTransitionLog(capacity int) *TransitionLog {
	if capacity <= 0 {
		capacity = transitionLogCapacity
	}
	return &TransitionLog{
		capacity: capacity,
		entries:  make([]TransitionRecord, 0, capacity),
	}
}

// Record appends one transition, evicting the oldest batch when full.
func (l *TransitionLog) Record(rec TransitionRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) >= l.capacity {
		drop := int(float64(l.capacity) * evictBatchFraction)
		if drop < 1 {
			drop = 1
		}
		l.entries = append(l.entries[:0], l.entries[drop:]...)
	}
	l.entries = append(l.entries, rec)
}

// Recent returns up to n most recent transitions, newest last.
func (l *TransitionLog) Recent(n int) []TransitionRecord {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.entries) {
		n = len(l.entries)
	}
	out := make([]TransitionRecord, n)
	copy(out, l.entries[len(l.entries)-n:])
	return out
}

// Len reports the number of retained entries.
func (l *TransitionLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
