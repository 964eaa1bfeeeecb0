package taskqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewkit/squadron/pkg/models"
	testdb "github.com/crewkit/squadron/test/database"
)

// Integration tests against real PostgreSQL. NewTestClient gives each
// test its own schema, so fixed commander IDs cannot collide.

func TestEntStoreRoundTrip(t *testing.T) {
	store := NewEntStore(testdb.NewTestClient(t).Client)
	ctx := context.Background()

	started := time.Now().Add(-time.Second).UTC().Truncate(time.Millisecond)
	item := models.TaskQueueItem{
		ID:            "item-1",
		CommanderID:   "cmd-1",
		SubTaskIndex:  2,
		Title:         "Integration tests",
		Prompt:        "write integration tests for the repository",
		AssignedAgent: "agent-7",
		Dependencies:  []int{0, 1},
		Status:        models.SubTaskInProgress,
		EnqueuedAt:    time.Now().UTC().Truncate(time.Millisecond),
		StartedAt:     &started,
	}
	require.NoError(t, store.Enqueue(ctx, item))

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	got := pending[0]
	assert.Equal(t, "item-1", got.ID)
	assert.Equal(t, "cmd-1", got.CommanderID)
	assert.Equal(t, 2, got.SubTaskIndex)
	assert.Equal(t, "Integration tests", got.Title)
	assert.Equal(t, "write integration tests for the repository", got.Prompt)
	assert.Equal(t, "agent-7", got.AssignedAgent)
	assert.Equal(t, []int{0, 1}, got.Dependencies)
	assert.Equal(t, models.SubTaskInProgress, got.Status)
	require.NotNil(t, got.StartedAt)
	assert.WithinDuration(t, started, *got.StartedAt, time.Second)
}

func TestEntStoreEnqueueAssignsIdentity(t *testing.T) {
	store := NewEntStore(testdb.NewTestClient(t).Client)
	ctx := context.Background()

	require.NoError(t, store.Enqueue(ctx, queueItem("cmd-1", 0)))

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.NotEmpty(t, pending[0].ID)
	assert.False(t, pending[0].EnqueuedAt.IsZero())
	assert.Equal(t, models.SubTaskWaiting, pending[0].Status)
	assert.Empty(t, pending[0].AssignedAgent)
	assert.Nil(t, pending[0].StartedAt)
}

func TestEntStoreMarkTransitions(t *testing.T) {
	store := NewEntStore(testdb.NewTestClient(t).Client)
	ctx := context.Background()
	require.NoError(t, store.Enqueue(ctx, queueItem("cmd-1", 0)))
	require.NoError(t, store.Enqueue(ctx, queueItem("cmd-1", 1)))
	require.NoError(t, store.Enqueue(ctx, queueItem("cmd-1", 2)))

	require.NoError(t, store.MarkStarted(ctx, "cmd-1", 0, "agent-3"))

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)
	assert.Equal(t, models.SubTaskInProgress, pending[0].Status)
	assert.Equal(t, "agent-3", pending[0].AssignedAgent)
	require.NotNil(t, pending[0].StartedAt)

	// Terminal transitions drop items from the pending scan.
	require.NoError(t, store.MarkCompleted(ctx, "cmd-1", 0))
	require.NoError(t, store.MarkFailed(ctx, "cmd-1", 1))

	pending, err = store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, 2, pending[0].SubTaskIndex)
}

func TestEntStoreMarkUnknownItem(t *testing.T) {
	store := NewEntStore(testdb.NewTestClient(t).Client)
	ctx := context.Background()

	err := store.MarkStarted(ctx, "cmd-1", 3, "agent-1")
	assert.True(t, errors.Is(err, ErrNotFound))

	err = store.MarkCompleted(ctx, "cmd-1", 3)
	assert.True(t, errors.Is(err, ErrNotFound))

	err = store.MarkFailed(ctx, "cmd-1", 3)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestEntStoreRemoveDropsOnlyThatCommander(t *testing.T) {
	store := NewEntStore(testdb.NewTestClient(t).Client)
	ctx := context.Background()
	require.NoError(t, store.Enqueue(ctx, queueItem("cmd-1", 0)))
	require.NoError(t, store.Enqueue(ctx, queueItem("cmd-1", 1)))
	require.NoError(t, store.Enqueue(ctx, queueItem("cmd-2", 0)))

	// Terminal rows are removed along with live ones.
	require.NoError(t, store.MarkCompleted(ctx, "cmd-1", 1))
	require.NoError(t, store.Remove(ctx, "cmd-1"))

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "cmd-2", pending[0].CommanderID)

	// Removing a commander with no rows is a no-op.
	require.NoError(t, store.Remove(ctx, "cmd-1"))
}

func TestEntStoreListPendingOrdersByEnqueueTime(t *testing.T) {
	store := NewEntStore(testdb.NewTestClient(t).Client)
	ctx := context.Background()

	late := queueItem("cmd-1", 1)
	late.EnqueuedAt = time.Now().Add(time.Minute)
	early := queueItem("cmd-2", 0)
	early.EnqueuedAt = time.Now().Add(-time.Minute)

	require.NoError(t, store.Enqueue(ctx, late))
	require.NoError(t, store.Enqueue(ctx, early))

	pending, err := store.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 2)
	assert.Equal(t, "cmd-2", pending[0].CommanderID)
	assert.Equal(t, "cmd-1", pending[1].CommanderID)
}
