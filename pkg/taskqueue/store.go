// Package taskqueue persists a snapshot of scheduled sub-tasks so an
// interrupted run leaves an inspectable trace behind. The orchestrator
// mirrors every schedule, start, and terminal transition into the
// store; on a clean finish the commander's rows are removed, so
// anything ListPending returns after startup is residue of a run that
// died mid-flight.
//
// Writes are best-effort from the orchestrator's perspective: failures
// are logged and never abort the pipeline. Re-executing leftover items
// is the host's decision, not the core's.
package taskqueue

import (
	"context"
	"errors"

	"github.com/crewkit/squadron/pkg/models"
)

// ErrNotFound is returned when a mark operation addresses an item the
// store does not hold.
var ErrNotFound = errors.New("task queue item not found")

// Store is the snapshot persistence surface. EntStore keeps items in
// Postgres; MemoryStore serves database-less hosts and tests.
type Store interface {
	// Enqueue records a newly scheduled sub-task.
	Enqueue(ctx context.Context, item models.TaskQueueItem) error

	// MarkStarted flips the item to in_progress and records the agent
	// executing it.
	MarkStarted(ctx context.Context, commanderID string, index int, agentID string) error

	// MarkCompleted flips the item to completed.
	MarkCompleted(ctx context.Context, commanderID string, index int) error

	// MarkFailed flips the item to failed.
	MarkFailed(ctx context.Context, commanderID string, index int) error

	// Remove drops every item belonging to the commander.
	Remove(ctx context.Context, commanderID string) error

	// ListPending returns all non-terminal items across commanders,
	// oldest first.
	ListPending(ctx context.Context) ([]models.TaskQueueItem, error)
}
