package taskqueue

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/crewkit/squadron/ent"
	"github.com/crewkit/squadron/ent/taskqueueitem"
	"github.com/crewkit/squadron/pkg/models"
)

// EntStore persists sub-task snapshots in PostgreSQL through Ent. Rows
// are addressed by (commander_id, sub_task_index), matching the unique
// constraint on the table.
type EntStore struct {
	client *ent.Client
}

// NewEntStore wraps an Ent client in the Store interface.
func NewEntStore(client *ent.Client) *EntStore {
	return &EntStore{client: client}
}

// Enqueue records a newly scheduled sub-task, assigning an ID and
// enqueue time when the caller left them empty.
func (s *EntStore) Enqueue(ctx context.Context, item models.TaskQueueItem) error {
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.EnqueuedAt.IsZero() {
		item.EnqueuedAt = time.Now()
	}

	status, err := statusToEnt(item.Status)
	if err != nil {
		return err
	}

	create := s.client.TaskQueueItem.Create().
		SetID(item.ID).
		SetCommanderID(item.CommanderID).
		SetSubTaskIndex(item.SubTaskIndex).
		SetTitle(item.Title).
		SetPrompt(item.Prompt).
		SetStatus(status).
		SetEnqueuedAt(item.EnqueuedAt)

	if item.AssignedAgent != "" {
		create = create.SetAssignedAgent(item.AssignedAgent)
	}
	if len(item.Dependencies) > 0 {
		create = create.SetDependencies(item.Dependencies)
	}
	if item.StartedAt != nil {
		create = create.SetStartedAt(*item.StartedAt)
	}

	if _, err := create.Save(ctx); err != nil {
		return fmt.Errorf("enqueue %s/%d: %w", item.CommanderID, item.SubTaskIndex, err)
	}
	return nil
}

// MarkStarted flips the item to in_progress and records the agent
// executing it.
func (s *EntStore) MarkStarted(ctx context.Context, commanderID string, index int, agentID string) error {
	n, err := s.client.TaskQueueItem.Update().
		Where(
			taskqueueitem.CommanderIDEQ(commanderID),
			taskqueueitem.SubTaskIndexEQ(index),
		).
		SetStatus(taskqueueitem.StatusInProgress).
		SetAssignedAgent(agentID).
		SetStartedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark started %s/%d: %w", commanderID, index, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s/%d", ErrNotFound, commanderID, index)
	}
	return nil
}

// MarkCompleted flips the item to completed.
func (s *EntStore) MarkCompleted(ctx context.Context, commanderID string, index int) error {
	return s.setStatus(ctx, commanderID, index, taskqueueitem.StatusCompleted)
}

// MarkFailed flips the item to failed.
func (s *EntStore) MarkFailed(ctx context.Context, commanderID string, index int) error {
	return s.setStatus(ctx, commanderID, index, taskqueueitem.StatusFailed)
}

func (s *EntStore) setStatus(ctx context.Context, commanderID string, index int, status taskqueueitem.Status) error {
	n, err := s.client.TaskQueueItem.Update().
		Where(
			taskqueueitem.CommanderIDEQ(commanderID),
			taskqueueitem.SubTaskIndexEQ(index),
		).
		SetStatus(status).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark %s %s/%d: %w", status, commanderID, index, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s/%d", ErrNotFound, commanderID, index)
	}
	return nil
}

// Remove drops every item belonging to the commander. Removing a
// commander with no rows is not an error.
func (s *EntStore) Remove(ctx context.Context, commanderID string) error {
	_, err := s.client.TaskQueueItem.Delete().
		Where(taskqueueitem.CommanderIDEQ(commanderID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("remove %s: %w", commanderID, err)
	}
	return nil
}

// ListPending returns all non-terminal items across commanders, oldest
// first. After a restart these are the sub-tasks a previous run never
// finished.
func (s *EntStore) ListPending(ctx context.Context) ([]models.TaskQueueItem, error) {
	rows, err := s.client.TaskQueueItem.Query().
		Where(taskqueueitem.StatusIn(
			taskqueueitem.StatusPending,
			taskqueueitem.StatusWaiting,
			taskqueueitem.StatusInProgress,
		)).
		Order(ent.Asc(taskqueueitem.FieldEnqueuedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}

	items := make([]models.TaskQueueItem, 0, len(rows))
	for _, row := range rows {
		item, err := itemFromEnt(row)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func itemFromEnt(row *ent.TaskQueueItem) (models.TaskQueueItem, error) {
	status, err := statusFromEnt(row.Status)
	if err != nil {
		return models.TaskQueueItem{}, err
	}
	return models.TaskQueueItem{
		ID:            row.ID,
		CommanderID:   row.CommanderID,
		SubTaskIndex:  row.SubTaskIndex,
		Title:         row.Title,
		Prompt:        row.Prompt,
		AssignedAgent: row.AssignedAgent,
		Dependencies:  row.Dependencies,
		Status:        status,
		EnqueuedAt:    row.EnqueuedAt,
		StartedAt:     row.StartedAt,
	}, nil
}

func statusToEnt(status models.SubTaskStatus) (taskqueueitem.Status, error) {
	switch status {
	case models.SubTaskPending:
		return taskqueueitem.StatusPending, nil
	case models.SubTaskWaiting, "":
		return taskqueueitem.StatusWaiting, nil
	case models.SubTaskInProgress:
		return taskqueueitem.StatusInProgress, nil
	case models.SubTaskCompleted:
		return taskqueueitem.StatusCompleted, nil
	case models.SubTaskFailed:
		return taskqueueitem.StatusFailed, nil
	default:
		return "", fmt.Errorf("unknown sub-task status %q", status)
	}
}

func statusFromEnt(status taskqueueitem.Status) (models.SubTaskStatus, error) {
	switch status {
	case taskqueueitem.StatusPending:
		return models.SubTaskPending, nil
	case taskqueueitem.StatusWaiting:
		return models.SubTaskWaiting, nil
	case taskqueueitem.StatusInProgress:
		return models.SubTaskInProgress, nil
	case taskqueueitem.StatusCompleted:
		return models.SubTaskCompleted, nil
	case taskqueueitem.StatusFailed:
		return models.SubTaskFailed, nil
	default:
		return "", fmt.Errorf("unknown stored status %q", status)
	}
}
