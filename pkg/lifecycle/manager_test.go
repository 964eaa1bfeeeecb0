package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewkit/squadron/pkg/models"
)

func TestManagerCreateRegistersInitializing(t *testing.T) {
	mgr := NewManager(nil)

	agent := mgr.Create(models.RoleDeveloper, "cmd-1", models.ModelSonnet)

	assert.NotEmpty(t, agent.ID)
	assert.Equal(t, models.AgentInitializing, agent.State)
	assert.Equal(t, "cmd-1", agent.CommanderID)

	got, ok := mgr.Get(agent.ID)
	require.True(t, ok)
	assert.Equal(t, agent.ID, got.ID)
	assert.Equal(t, 1, mgr.Len())
}

func TestManagerTransitionFollowsAllowList(t *testing.T) {
	mgr := NewManager(nil)
	agent := mgr.Create(models.RoleTester, "cmd-1", models.ModelSonnet)

	state, err := mgr.Transition(agent.ID, EventSpawned)
	require.NoError(t, err)
	assert.Equal(t, models.AgentIdle, state)

	state, err = mgr.Transition(agent.ID, EventAssigned)
	require.NoError(t, err)
	assert.Equal(t, models.AgentWorking, state)

	state, err = mgr.Transition(agent.ID, EventCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.AgentCompleted, state)
}

func TestManagerTransitionRejectsIllegalPairs(t *testing.T) {
	mgr := NewManager(nil)
	agent := mgr.Create(models.RoleReviewer, "cmd-1", models.ModelSonnet)

	// Completing straight from initializing is not in the allow-list.
	state, err := mgr.Transition(agent.ID, EventCompleted)
	require.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.AgentInitializing, state)

	// State must be untouched after a rejection.
	got, ok := mgr.Get(agent.ID)
	require.True(t, ok)
	assert.Equal(t, models.AgentInitializing, got.State)
}

func TestManagerTransitionUnknownAgent(t *testing.T) {
	mgr := NewManager(nil)

	_, err := mgr.Transition("missing", EventSpawned)
	assert.ErrorIs(t, err, ErrAgentNotFound)
}

func TestManagerWaitingStatesRoundTrip(t *testing.T) {
	mgr := NewManager(nil)
	agent := mgr.Create(models.RoleDesigner, "cmd-1", models.ModelOpus)

	_, err := mgr.Transition(agent.ID, EventSpawned)
	require.NoError(t, err)
	_, err = mgr.Transition(agent.ID, EventAssigned)
	require.NoError(t, err)

	for _, event := range []Event{EventPermissionRequested, EventQuestionAsked, EventPlanSubmitted} {
		state, err := mgr.Transition(agent.ID, event)
		require.NoError(t, err)
		assert.True(t, state.IsWaitingForUser(), "state %s should be a waiting state", state)

		state, err = mgr.Transition(agent.ID, EventResumed)
		require.NoError(t, err)
		assert.Equal(t, models.AgentWorking, state)
	}
}

func TestManagerPoolingRoundTrip(t *testing.T) {
	mgr := NewManager(nil)
	agent := mgr.Create(models.RoleResearcher, "cmd-1", models.ModelSonnet)

	_, err := mgr.Transition(agent.ID, EventSpawned)
	require.NoError(t, err)
	_, err = mgr.Transition(agent.ID, EventAssigned)
	require.NoError(t, err)
	_, err = mgr.Transition(agent.ID, EventCompleted)
	require.NoError(t, err)

	state, err := mgr.Transition(agent.ID, EventReleased)
	require.NoError(t, err)
	assert.Equal(t, models.AgentPooled, state)

	require.NoError(t, mgr.Reparent(agent.ID, "cmd-2"))

	state, err = mgr.Transition(agent.ID, EventAcquired)
	require.NoError(t, err)
	assert.Equal(t, models.AgentIdle, state)

	got, _ := mgr.Get(agent.ID)
	assert.Equal(t, "cmd-2", got.CommanderID)
}

func TestManagerDestroyRemovesAgent(t *testing.T) {
	mgr := NewManager(nil)
	agent := mgr.Create(models.RoleDeveloper, "cmd-1", models.ModelSonnet)
	_, err := mgr.Transition(agent.ID, EventSpawned)
	require.NoError(t, err)

	require.NoError(t, mgr.Destroy(agent.ID))
	_, ok := mgr.Get(agent.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, mgr.Len())

	// Destroying an agent that is already gone is not an error.
	assert.NoError(t, mgr.Destroy(agent.ID))
}

func TestManagerCountsAndBusy(t *testing.T) {
	mgr := NewManager(nil)

	a := mgr.Create(models.RoleDeveloper, "cmd-1", models.ModelSonnet)
	b := mgr.Create(models.RoleTester, "cmd-1", models.ModelSonnet)
	c := mgr.Create(models.RoleReviewer, "cmd-1", models.ModelSonnet)

	for _, id := range []string{a.ID, b.ID, c.ID} {
		_, err := mgr.Transition(id, EventSpawned)
		require.NoError(t, err)
	}
	_, err := mgr.Transition(a.ID, EventAssigned)
	require.NoError(t, err)
	_, err = mgr.Transition(b.ID, EventAssigned)
	require.NoError(t, err)
	_, err = mgr.Transition(b.ID, EventThinkingStarted)
	require.NoError(t, err)

	counts := mgr.Counts()
	assert.Equal(t, 1, counts[models.AgentWorking])
	assert.Equal(t, 1, counts[models.AgentThinking])
	assert.Equal(t, 1, counts[models.AgentIdle])
	assert.Equal(t, 2, mgr.BusyCount())
}

func TestManagerRecordsTransitions(t *testing.T) {
	log := NewTransitionLog(10)
	mgr := NewManager(log)
	agent := mgr.Create(models.RoleDeveloper, "cmd-1", models.ModelSonnet)

	_, err := mgr.Transition(agent.ID, EventSpawned)
	require.NoError(t, err)
	_, _ = mgr.Transition(agent.ID, EventCompleted) // rejected, not recorded

	recent := log.Recent(0)
	require.Len(t, recent, 1)
	assert.Equal(t, EventSpawned, recent[0].Event)
	assert.Equal(t, models.AgentInitializing, recent[0].From)
	assert.Equal(t, models.AgentIdle, recent[0].To)
}
