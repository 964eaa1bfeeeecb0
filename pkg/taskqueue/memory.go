package taskqueue

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crewkit/squadron/pkg/models"
)

// MemoryStore is a mutex-guarded in-process Store. It backs hosts that
// run without a database and every unit test.
type MemoryStore struct {
	mu    sync.Mutex
	items map[itemKey]*models.TaskQueueItem
}

type itemKey struct {
	commanderID string
	index       int
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[itemKey]*models.TaskQueueItem)}
}

// Enqueue records the item, assigning an ID and enqueue time when the
// caller left them empty. Re-enqueueing the same (commander, index)
// overwrites the previous row.
func (s *MemoryStore) Enqueue(_ context.Context, item models.TaskQueueItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.EnqueuedAt.IsZero() {
		item.EnqueuedAt = time.Now()
	}
	deps := make([]int, len(item.Dependencies))
	copy(deps, item.Dependencies)
	item.Dependencies = deps

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[itemKey{item.CommanderID, item.SubTaskIndex}] = &item
	return nil
}

// MarkStarted flips the item to in_progress.
func (s *MemoryStore) MarkStarted(_ context.Context, commanderID string, index int, agentID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemKey{commanderID, index}]
	if !ok {
		return fmt.Errorf("%w: %s/%d", ErrNotFound, commanderID, index)
	}
	now := time.Now()
	item.Status = models.SubTaskInProgress
	item.AssignedAgent = agentID
	item.StartedAt = &now
	return nil
}

// MarkCompleted flips the item to completed.
func (s *MemoryStore) MarkCompleted(ctx context.Context, commanderID string, index int) error {
	return s.setStatus(commanderID, index, models.SubTaskCompleted)
}

// MarkFailed flips the item to failed.
func (s *MemoryStore) MarkFailed(ctx context.Context, commanderID string, index int) error {
	return s.setStatus(commanderID, index, models.SubTaskFailed)
}

func (s *MemoryStore) setStatus(commanderID string, index int, status models.SubTaskStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[itemKey{commanderID, index}]
	if !ok {
		return fmt.Errorf("%w: %s/%d", ErrNotFound, commanderID, index)
	}
	item.Status = status
	return nil
}

// Remove drops every item belonging to the commander. Removing a
// commander with no rows is not an error.
func (s *MemoryStore) Remove(_ context.Context, commanderID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key := range s.items {
		if key.commanderID == commanderID {
			delete(s.items, key)
		}
	}
	return nil
}

// ListPending returns all non-terminal items, oldest first.
func (s *MemoryStore) ListPending(_ context.Context) ([]models.TaskQueueItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pending := make([]models.TaskQueueItem, 0, len(s.items))
	for _, item := range s.items {
		if item.Status.IsTerminal() {
			continue
		}
		pending = append(pending, *item)
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].EnqueuedAt.Before(pending[j].EnqueuedAt)
	})
	return pending, nil
}

// Len reports how many items the store holds, terminal included.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}
