// Package controller enforces the global concurrent-start limit for
// sub-agents. Admissions beyond the effective limit queue in priority
// order and drain as running tasks finish.
package controller

import (
	"container/heap"
	"log/slog"

	"github.com/crewkit/squadron/pkg/models"
)

// StartFunc is invoked synchronously for every admitted start.
type StartFunc func(commanderID string, index int, model models.Model)

// Controller tracks the active sub-agent count against the
// pressure-derived limit.
//
// Not safe for concurrent use: the orchestrator serializes all access
// behind its own lock.
type Controller struct {
	log       *slog.Logger
	onStart   StartFunc
	liveCount func() int

	pressure    models.Pressure
	activeCount int
	queue       startQueue
	seq         int64
}

// New creates a controller at normal pressure. onStart runs on the
// caller's goroutine for synchronous admissions and on the completion
// path for drained ones. liveCount reports the lifecycle manager's
// current busy-agent count, used to rebuild activeCount on Reset.
func New(log *slog.Logger, onStart StartFunc, liveCount func() int) *Controller {
	if log == nil {
		log = slog.Default()
	}
	return &Controller{
		log:       log.With("component", "controller"),
		onStart:   onStart,
		liveCount: liveCount,
		pressure:  models.PressureNormal,
	}
}

// SetPressure updates the effective limit for future admissions.
// In-flight sub-agents are never preempted; a lowered limit simply
// stops new admissions until completions bring activeCount back under.
func (c *Controller) SetPressure(p models.Pressure) {
	if !p.IsValid() || p == c.pressure {
		return
	}
	c.log.Info("Pressure changed", "from", c.pressure, "to", p, "limit", p.Limit())
	c.pressure = p
}

// Pressure returns the current pressure level.
func (c *Controller) Pressure() models.Pressure {
	return c.pressure
}

// EffectiveLimit returns the admission ceiling at current pressure.
func (c *Controller) EffectiveLimit() int {
	return c.pressure.Limit()
}

// ActiveCount returns how many admitted starts have not yet completed.
func (c *Controller) ActiveCount() int {
	return c.activeCount
}

// QueueLen returns how many starts are waiting for a slot.
func (c *Controller) QueueLen() int {
	return c.queue.Len()
}

// RequestStart admits the sub-task immediately when a slot is free,
// invoking onStart before returning. Otherwise the request joins the
// priority queue (higher priority first, insertion order on ties) and
// admitted is false.
func (c *Controller) RequestStart(commanderID string, index int, model models.Model, priority models.Priority) (admitted bool) {
	if c.activeCount < c.EffectiveLimit() {
		c.activeCount++
		c.onStart(commanderID, index, model)
		return true
	}

	c.seq++
	heap.Push(&c.queue, &pendingStart{
		commanderID: commanderID,
		index:       index,
		model:       model,
		priority:    priority,
		seq:         c.seq,
	})
	c.log.Debug("Start queued",
		"commander_id", commanderID,
		"index", index,
		"priority", priority.String(),
		"queued", c.queue.Len())
	return false
}

// TaskCompleted releases one slot and drains the queue while capacity
// remains.
func (c *Controller) TaskCompleted() {
	c.releaseSlot()
}

// TaskCancelled releases one slot and drains the queue while capacity
// remains. Identical to TaskCompleted; the split keeps call sites
// readable.
func (c *Controller) TaskCancelled() {
	c.releaseSlot()
}

func (c *Controller) releaseSlot() {
	if c.activeCount > 0 {
		c.activeCount--
	}
	c.drain()
}

func (c *Controller) drain() {
	for c.queue.Len() > 0 && c.activeCount < c.EffectiveLimit() {
		next := heap.Pop(&c.queue).(*pendingStart)
		c.activeCount++
		c.onStart(next.commanderID, next.index, next.model)
	}
}

// OptimalWaveSize is the single place wave width is decided:
// min(readyCount, free slots, max(1, totalRemaining)), floored at zero.
func (c *Controller) OptimalWaveSize(readyCount, totalRemaining int) int {
	size := readyCount
	if free := c.EffectiveLimit() - c.activeCount; free < size {
		size = free
	}
	if remaining := max(1, totalRemaining); remaining < size {
		size = remaining
	}
	return max(0, size)
}

// Reset purges the commander's queued entries and rebuilds activeCount
// from the lifecycle manager's live busy count rather than zeroing it,
// so other commanders' in-flight work keeps its slots.
func (c *Controller) Reset(commanderID string) {
	kept := c.queue[:0]
	purged := 0
	for _, p := range c.queue {
		if p.commanderID == commanderID {
			purged++
			continue
		}
		kept = append(kept, p)
	}
	c.queue = kept
	heap.Init(&c.queue)

	c.activeCount = c.liveCount()
	c.log.Debug("Controller reset",
		"commander_id", commanderID,
		"purged", purged,
		"active", c.activeCount)
	c.drain()
}
