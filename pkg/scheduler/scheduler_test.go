package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewkit/squadron/pkg/models"
)

func subtask(index int, priority models.Priority, deps ...int) *models.SubTask {
	return &models.SubTask{
		Index:        index,
		Title:        "task",
		Prompt:       "do it",
		Dependencies: deps,
		Priority:     priority,
		Status:       models.SubTaskPending,
	}
}

func TestReadyCountHonorsDependencies(t *testing.T) {
	s := New(nil)
	s.AddOrchestration("cmd-1", []*models.SubTask{
		subtask(0, models.PriorityHigh),
		subtask(1, models.PriorityMedium, 0),
		subtask(2, models.PriorityMedium, 1),
	})

	assert.Equal(t, 1, s.ReadyCount("cmd-1"))

	s.MarkScheduled("cmd-1", 0)
	s.MarkStarted("cmd-1", 0)
	assert.Equal(t, 0, s.ReadyCount("cmd-1"))

	s.MarkCompleted("cmd-1", 0)
	assert.Equal(t, 1, s.ReadyCount("cmd-1"))
}

func TestNextBatchOrdersByPriorityThenIndex(t *testing.T) {
	s := New(nil)
	s.AddOrchestration("cmd-1", []*models.SubTask{
		subtask(0, models.PriorityLow),
		subtask(1, models.PriorityCritical),
		subtask(2, models.PriorityHigh),
		subtask(3, models.PriorityCritical),
	})

	batch := s.NextBatch("cmd-1", 3)
	assert.Equal(t, []int{1, 3, 2}, batch)
}

func TestNextBatchIsIdempotent(t *testing.T) {
	s := New(nil)
	s.AddOrchestration("cmd-1", []*models.SubTask{
		subtask(0, models.PriorityHigh),
		subtask(1, models.PriorityHigh),
	})

	first := s.NextBatch("cmd-1", 2)
	second := s.NextBatch("cmd-1", 2)
	assert.Equal(t, first, second)
	assert.Equal(t, []int{0, 1}, first)
}

func TestNextBatchRespectsMaxSize(t *testing.T) {
	s := New(nil)
	s.AddOrchestration("cmd-1", []*models.SubTask{
		subtask(0, models.PriorityHigh),
		subtask(1, models.PriorityHigh),
		subtask(2, models.PriorityHigh),
	})

	assert.Len(t, s.NextBatch("cmd-1", 2), 2)
	assert.Empty(t, s.NextBatch("cmd-1", 0))
}

func TestFailedDependencyBlocksDependents(t *testing.T) {
	s := New(nil)
	s.AddOrchestration("cmd-1", []*models.SubTask{
		subtask(0, models.PriorityHigh),
		subtask(1, models.PriorityMedium, 0),
	})

	s.MarkScheduled("cmd-1", 0)
	s.MarkStarted("cmd-1", 0)
	s.MarkFailed("cmd-1", 0)

	assert.Equal(t, 0, s.ReadyCount("cmd-1"))
	assert.Empty(t, s.NextBatch("cmd-1", 4))
}

func TestRemoveOrchestrationDropsState(t *testing.T) {
	s := New(nil)
	s.AddOrchestration("cmd-1", []*models.SubTask{subtask(0, models.PriorityHigh)})

	s.RemoveOrchestration("cmd-1")

	assert.Equal(t, 0, s.ReadyCount("cmd-1"))
	assert.Empty(t, s.NextBatch("cmd-1", 4))
	// Marks after removal must not panic.
	s.MarkCompleted("cmd-1", 0)
}

func TestStatsTrackThroughput(t *testing.T) {
	s := New(nil)
	s.AddOrchestration("cmd-1", []*models.SubTask{
		subtask(0, models.PriorityHigh),
		subtask(1, models.PriorityHigh),
	})

	s.MarkScheduled("cmd-1", 0)
	s.MarkStarted("cmd-1", 0)
	s.MarkCompleted("cmd-1", 0)
	s.MarkScheduled("cmd-1", 1)
	s.MarkStarted("cmd-1", 1)

	st := s.Stats()
	assert.Equal(t, 2, st.TotalScheduled)
	assert.Equal(t, 1, st.TotalCompleted)
	assert.GreaterOrEqual(t, int64(st.AverageWait), int64(0))
}

func TestSchedulerIsolatesCommanders(t *testing.T) {
	s := New(nil)
	s.AddOrchestration("cmd-1", []*models.SubTask{subtask(0, models.PriorityHigh)})
	s.AddOrchestration("cmd-2", []*models.SubTask{
		subtask(0, models.PriorityLow),
		subtask(1, models.PriorityLow),
	})

	require.Equal(t, 1, s.ReadyCount("cmd-1"))
	require.Equal(t, 2, s.ReadyCount("cmd-2"))

	s.RemoveOrchestration("cmd-1")
	assert.Equal(t, 2, s.ReadyCount("cmd-2"))
}
