package orchestrator

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/models"
	"github.com/crewkit/squadron/pkg/runtime"
	"github.com/crewkit/squadron/pkg/taskqueue"
)

// multiStepPrompt clears the decomposition gate: more than eight words
// with several imperative indicators.
const multiStepPrompt = "implement the user service then write tests and document the api"

const waitFor = 2 * time.Second
const pollEvery = 5 * time.Millisecond

// ─────────────────────────────────────────────────────────────
// Harness
// ─────────────────────────────────────────────────────────────

// recordingSink collects published envelopes for assertions.
type recordingSink struct {
	mu   sync.Mutex
	envs []models.Envelope
}

func (s *recordingSink) Publish(env models.Envelope) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.envs = append(s.envs, env)
}

func (s *recordingSink) byKind(kind models.EventKind) []models.Envelope {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Envelope
	for _, env := range s.envs {
		if env.Kind == kind {
			out = append(out, env)
		}
	}
	return out
}

// phases returns the phase-change sequence seen so far.
func (s *recordingSink) phases() []models.Phase {
	var out []models.Phase
	for _, env := range s.byKind(models.EventPhaseChanged) {
		out = append(out, env.Payload.(map[string]any)["phase"].(models.Phase))
	}
	return out
}

// waves returns the dispatched index batches in wave order.
func (s *recordingSink) waves() [][]int {
	var out [][]int
	for _, env := range s.byKind(models.EventWaveStarted) {
		out = append(out, env.Payload.(map[string]any)["indices"].([]int))
	}
	return out
}

type testHarness struct {
	o     *Orchestrator
	rt    *runtime.ScriptedRuntime
	sink  *recordingSink
	store *taskqueue.MemoryStore
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	orchCfg := config.DefaultOrchestratorConfig()
	orchCfg.IntroDelay = time.Millisecond
	// Disband is driven explicitly in tests; keep records inspectable.
	orchCfg.DisbandDelay = time.Hour
	return &config.Config{
		Workspace:    t.TempDir(),
		Orchestrator: orchCfg,
	}
}

func newTestHarness(t *testing.T, scripts ...runtime.Script) *testHarness {
	t.Helper()
	rt := runtime.NewScriptedRuntime(scripts...)
	sink := &recordingSink{}
	store := taskqueue.NewMemoryStore()
	o := New(testConfig(t), rt, store, sink, nil)
	t.Cleanup(o.Shutdown)
	return &testHarness{o: o, rt: rt, sink: sink, store: store}
}

func (h *testHarness) waitPhase(t *testing.T, commanderID string, phase models.Phase) models.Orchestration {
	t.Helper()
	var orch models.Orchestration
	require.Eventually(t, func() bool {
		got, ok := h.o.Get(commanderID)
		if !ok {
			return false
		}
		orch = got
		return got.Phase == phase
	}, waitFor, pollEvery, "orchestration never reached phase %s", phase)
	return orch
}

func (h *testHarness) waitHeld(t *testing.T, n int) {
	t.Helper()
	require.Eventually(t, func() bool {
		return h.rt.Held() == n
	}, waitFor, pollEvery, "runtime never held %d tasks", n)
}

// ─────────────────────────────────────────────────────────────
// Script builders
// ─────────────────────────────────────────────────────────────

func completedWith(match, result string) runtime.Script {
	return runtime.Script{
		Match: runtime.MatchContains(match),
		Events: func(taskID string) []runtime.Event {
			return []runtime.Event{runtime.CompletedEvent{TaskID: taskID, Result: result}}
		},
	}
}

func failedWith(match, message string) runtime.Script {
	return runtime.Script{
		Match: runtime.MatchContains(match),
		Events: func(taskID string) []runtime.Event {
			return []runtime.Event{runtime.FailedEvent{TaskID: taskID, Err: &runtime.ProcessError{Message: message}}}
		},
	}
}

func plannerScript(t *testing.T, subtasks ...models.PlannedSubTask) runtime.Script {
	t.Helper()
	raw, err := json.Marshal(models.Plan{Subtasks: subtasks})
	require.NoError(t, err)
	return completedWith("planning assistant", string(raw))
}

// linearChain is a three-step plan where each step depends on the one
// before it.
func linearChain() []models.PlannedSubTask {
	return []models.PlannedSubTask{
		{Title: "Schema migration", Prompt: "add the schema migration", EstimatedComplexity: models.ComplexityMedium},
		{Title: "Repository layer", Prompt: "implement the repository layer", Dependencies: []int{0}, EstimatedComplexity: models.ComplexityMedium},
		{Title: "Integration tests", Prompt: "write integration tests for the repository layer", Dependencies: []int{1}, EstimatedComplexity: models.ComplexityMedium},
	}
}

// fanOut is three independent steps joined by a final one.
func fanOut() []models.PlannedSubTask {
	return []models.PlannedSubTask{
		{Title: "Parser", Prompt: "update the parser", CanParallel: true, EstimatedComplexity: models.ComplexityLow},
		{Title: "Encoder", Prompt: "update the encoder", CanParallel: true, EstimatedComplexity: models.ComplexityLow},
		{Title: "Decoder", Prompt: "update the decoder", CanParallel: true, EstimatedComplexity: models.ComplexityLow},
		{Title: "Changelog", Prompt: "write the changelog", Dependencies: []int{0, 1, 2}, EstimatedComplexity: models.ComplexityLow},
	}
}

// ─────────────────────────────────────────────────────────────
// Submit validation
// ─────────────────────────────────────────────────────────────

func TestSubmitRejectsInvalidInput(t *testing.T) {
	h := newTestHarness(t)
	h.rt.Release()

	_, err := h.o.Submit("   ", models.ModelSonnet)
	require.ErrorIs(t, err, ErrEmptyPrompt)

	_, err = h.o.Submit(multiStepPrompt, models.Model("gpt-9"))
	require.ErrorIs(t, err, ErrUnknownModel)

	assert.Empty(t, h.o.List())
	assert.Empty(t, h.rt.Started())
}

func TestSubmitRequiresWorkspace(t *testing.T) {
	cfg := testConfig(t)
	cfg.Workspace = ""
	o := New(cfg, runtime.NewScriptedRuntime(), nil, nil, nil)
	t.Cleanup(o.Shutdown)

	_, err := o.Submit(multiStepPrompt, models.ModelSonnet)
	require.ErrorIs(t, err, ErrWorkspaceNotConfigured)
}

func TestSubmitRefusesSingleStepPrompts(t *testing.T) {
	h := newTestHarness(t)
	h.rt.Release()

	// Too short to decompose.
	_, err := h.o.Submit("fix bug", models.ModelSonnet)
	require.ErrorIs(t, err, ErrDirectExecution)

	// Long enough but without multi-step structure.
	_, err = h.o.Submit("explain what the retry middleware in this repo is for", models.ModelSonnet)
	require.ErrorIs(t, err, ErrDirectExecution)

	assert.Empty(t, h.o.List())
	assert.Empty(t, h.rt.Started())
}

// ─────────────────────────────────────────────────────────────
// Full pipeline
// ─────────────────────────────────────────────────────────────

func TestLinearChainRunsInDependencyOrder(t *testing.T) {
	h := newTestHarness(t,
		plannerScript(t, linearChain()...),
		completedWith("add the schema migration", "migration added"),
		completedWith("implement the repository layer", "repository implemented"),
		completedWith("write integration tests", "tests passing"),
		completedWith("Sub-task outcomes:", "final summary"),
	)
	h.rt.Release()

	id, err := h.o.Submit(multiStepPrompt, models.ModelSonnet)
	require.NoError(t, err)

	orch := h.waitPhase(t, id, models.PhaseCompleted)

	assert.Equal(t, "final summary", orch.SynthesisResult)
	assert.Equal(t, 3, orch.Wave)
	require.NotNil(t, orch.CompletedAt)
	require.Len(t, orch.SubTasks, 3)
	for i, st := range orch.SubTasks {
		assert.Equal(t, models.SubTaskCompleted, st.Status, "sub-task %d", i)
		assert.NotEmpty(t, st.Result)
		assert.NotNil(t, st.CompletedAt)
	}

	// One child per pipeline step, strictly ordered by the chain.
	recs := h.rt.Started()
	require.Len(t, recs, 5)
	assert.Equal(t, models.PlannerModel, recs[0].Model)
	assert.Contains(t, recs[0].Prompt, "planning assistant")
	assert.Contains(t, recs[0].Prompt, multiStepPrompt)
	assert.Contains(t, recs[1].Prompt, "add the schema migration")
	assert.Contains(t, recs[2].Prompt, "implement the repository layer")
	assert.Contains(t, recs[3].Prompt, "write integration tests")
	assert.Contains(t, recs[4].Prompt, "Sub-task outcomes:")
	for _, rec := range recs[1:] {
		assert.Equal(t, models.ModelSonnet, rec.Model)
	}

	// Dependency results feed the next step; roots get the bare prompt.
	assert.NotContains(t, recs[1].Prompt, "Context from previous steps:")
	assert.Contains(t, recs[2].Prompt, "Context from previous steps:")
	assert.Contains(t, recs[2].Prompt, "- Schema migration: migration added")
	assert.Contains(t, recs[3].Prompt, "- Repository layer: repository implemented")
	assert.NotContains(t, recs[3].Prompt, "Schema migration:")

	// Synthesis sees every outcome with its title and result.
	assert.Contains(t, recs[4].Prompt, multiStepPrompt)
	assert.Contains(t, recs[4].Prompt, "[COMPLETED] 1. Schema migration")
	assert.Contains(t, recs[4].Prompt, "[COMPLETED] 3. Integration tests")
	assert.Contains(t, recs[4].Prompt, "tests passing")

	assert.Equal(t, []models.Phase{
		models.PhaseDecomposing,
		models.PhaseExecuting,
		models.PhaseSynthesizing,
		models.PhaseCompleted,
	}, h.sink.phases())
	assert.Equal(t, [][]int{{0}, {1}, {2}}, h.sink.waves())

	// Agents go back to the pool once the orchestration settles, and
	// the durable queue mirror is cleared.
	views := h.o.AgentViews()
	require.Len(t, views, 3)
	for _, v := range views {
		assert.Equal(t, models.AgentPooled, v.State)
	}
	require.Eventually(t, func() bool {
		return h.store.Len() == 0
	}, waitFor, pollEvery)
}

func TestFanOutRunsIndependentStepsTogether(t *testing.T) {
	h := newTestHarness(t, plannerScript(t, fanOut()...))

	id, err := h.o.Submit(multiStepPrompt, models.ModelSonnet)
	require.NoError(t, err)

	// Planner starts and is held; step it to get the plan applied.
	h.waitHeld(t, 1)
	h.rt.Step()

	// All three independent steps launch in one wave.
	h.waitHeld(t, 3)
	orch, ok := h.o.Get(id)
	require.True(t, ok)
	assert.Equal(t, models.PhaseExecuting, orch.Phase)
	assert.Equal(t, 1, orch.Wave)
	for i := 0; i < 3; i++ {
		assert.Equal(t, models.SubTaskInProgress, orch.SubTasks[i].Status, "sub-task %d", i)
		assert.Equal(t, models.PriorityMedium, orch.SubTasks[i].Priority, "sub-task %d", i)
	}
	assert.Equal(t, models.SubTaskPending, orch.SubTasks[3].Status)
	assert.Equal(t, models.PriorityLow, orch.SubTasks[3].Priority)
	assert.Equal(t, 3, h.o.Stats().Active)

	// The durable mirror tracks the running wave.
	require.Eventually(t, func() bool {
		pending, err := h.store.ListPending(context.Background())
		return err == nil && len(pending) == 3
	}, waitFor, pollEvery)

	// Wave 1 completes; the join step launches with all three results.
	h.rt.Step()
	h.waitHeld(t, 1)
	joinRec := h.rt.Started()[4]
	assert.Contains(t, joinRec.Prompt, "write the changelog")
	assert.Contains(t, joinRec.Prompt, "Context from previous steps:")
	assert.Contains(t, joinRec.Prompt, "- Parser: done")
	assert.Contains(t, joinRec.Prompt, "- Encoder: done")
	assert.Contains(t, joinRec.Prompt, "- Decoder: done")

	// Join completes; synthesis launches.
	h.rt.Step()
	h.waitHeld(t, 1)
	h.waitPhase(t, id, models.PhaseSynthesizing)

	h.rt.Step()
	orch = h.waitPhase(t, id, models.PhaseCompleted)
	assert.Equal(t, "done", orch.SynthesisResult)
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, h.sink.waves())
}

// ─────────────────────────────────────────────────────────────
// Direct-execution fallback
// ─────────────────────────────────────────────────────────────

func TestSingleEntryPlanFallsBackToDirectExecution(t *testing.T) {
	prompt := "refactor the authentication module and add tests and update docs"
	h := newTestHarness(t,
		plannerScript(t, models.PlannedSubTask{
			Title:               "Everything",
			Prompt:              "do everything at once",
			EstimatedComplexity: models.ComplexityHigh,
		}),
		completedWith(prompt, "refactored directly"),
	)
	roles := []models.Role{models.RoleDeveloper, models.RoleTester}
	h.o.randomRole = func() models.Role {
		r := roles[0]
		roles = roles[1:]
		return r
	}
	h.rt.Release()

	id, err := h.o.Submit(prompt, models.ModelSonnet)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(h.sink.byKind(models.EventDirectCompleted)) == 1
	}, waitFor, pollEvery)

	// The orchestration record is gone; the prompt ran as-is.
	_, ok := h.o.Get(id)
	assert.False(t, ok)
	assert.Empty(t, h.o.List())

	recs := h.rt.Started()
	require.Len(t, recs, 2)
	assert.Equal(t, prompt, recs[1].Prompt)
	assert.Equal(t, models.ModelSonnet, recs[1].Model)

	payload := h.sink.byKind(models.EventDirectCompleted)[0].Payload.(map[string]any)
	assert.Equal(t, "refactored directly", payload["result"])
	assert.Empty(t, payload["error"])

	// Both fallback agents exist and are pooled again afterwards.
	views := h.o.AgentViews()
	require.Len(t, views, 2)
	got := map[models.Role]bool{}
	for _, v := range views {
		assert.Equal(t, models.AgentPooled, v.State)
		got[v.Role] = true
	}
	assert.True(t, got[models.RoleDeveloper])
	assert.True(t, got[models.RoleTester])
}

func TestUnparseablePlanFallsBackToDirectExecution(t *testing.T) {
	h := newTestHarness(t,
		completedWith("planning assistant", "sorry, I cannot produce a plan today"),
	)
	h.rt.Release()

	id, err := h.o.Submit(multiStepPrompt, models.ModelSonnet)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(h.sink.byKind(models.EventDirectCompleted)) == 1
	}, waitFor, pollEvery)

	_, ok := h.o.Get(id)
	assert.False(t, ok)

	recs := h.rt.Started()
	require.Len(t, recs, 2)
	assert.Equal(t, multiStepPrompt, recs[1].Prompt)
}

func TestPlannerCrashFallsBackToDirectExecution(t *testing.T) {
	h := newTestHarness(t,
		failedWith("planning assistant", "exit status 1"),
	)
	h.rt.Release()

	_, err := h.o.Submit(multiStepPrompt, models.ModelSonnet)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(h.sink.byKind(models.EventDirectCompleted)) == 1
	}, waitFor, pollEvery)

	recs := h.rt.Started()
	require.Len(t, recs, 2)
	assert.Equal(t, multiStepPrompt, recs[1].Prompt)
}

// ─────────────────────────────────────────────────────────────
// Failure cascade
// ─────────────────────────────────────────────────────────────

func TestFailedDependencySkipsDownstreamAndStillSynthesizes(t *testing.T) {
	h := newTestHarness(t,
		plannerScript(t, linearChain()...),
		completedWith("add the schema migration", "migration added"),
		failedWith("implement the repository layer", "compile error in repository.go"),
		completedWith("Sub-task outcomes:", "partial delivery"),
	)
	h.rt.Release()

	id, err := h.o.Submit(multiStepPrompt, models.ModelSonnet)
	require.NoError(t, err)

	orch := h.waitPhase(t, id, models.PhaseCompleted)

	assert.Equal(t, models.SubTaskCompleted, orch.SubTasks[0].Status)
	assert.Equal(t, models.SubTaskFailed, orch.SubTasks[1].Status)
	assert.Contains(t, orch.SubTasks[1].Error, "compile error")
	assert.Equal(t, models.SubTaskFailed, orch.SubTasks[2].Status)
	assert.Equal(t, dependencyFailedError, orch.SubTasks[2].Error)
	assert.Equal(t, "partial delivery", orch.SynthesisResult)

	// The skipped step never spawned a child.
	recs := h.rt.Started()
	require.Len(t, recs, 4)
	synthesis := recs[3].Prompt
	assert.Contains(t, synthesis, "[COMPLETED] 1. Schema migration")
	assert.Contains(t, synthesis, "[FAILED] 2. Repository layer")
	assert.Contains(t, synthesis, "Error: compile error in repository.go")
	assert.Contains(t, synthesis, "[FAILED] 3. Integration tests")
	assert.Contains(t, synthesis, "Error: "+dependencyFailedError)
}

// ─────────────────────────────────────────────────────────────
// Cancellation
// ─────────────────────────────────────────────────────────────

func TestCancelStopsInFlightWork(t *testing.T) {
	h := newTestHarness(t, plannerScript(t, fanOut()...))

	id, err := h.o.Submit(multiStepPrompt, models.ModelSonnet)
	require.NoError(t, err)

	h.waitHeld(t, 1)
	h.rt.Step()
	h.waitHeld(t, 3)

	require.NoError(t, h.o.Cancel(id))

	orch, ok := h.o.Get(id)
	require.True(t, ok)
	assert.Equal(t, models.PhaseFailed, orch.Phase)
	require.NotNil(t, orch.CompletedAt)
	assert.Empty(t, orch.SynthesisResult)
	for i, st := range orch.SubTasks {
		assert.Equal(t, models.SubTaskFailed, st.Status, "sub-task %d", i)
		if i < 3 {
			assert.Equal(t, runtime.ErrCancelled.Error(), st.Error, "sub-task %d", i)
		}
	}

	// All slots are free, nothing is queued, and the wave-1 agents are
	// back in the pool.
	stats := h.o.Stats()
	assert.Equal(t, 0, stats.Active)
	assert.Equal(t, 0, stats.Queued)
	assert.Equal(t, 0, h.o.scheduler.ReadyCount(id))
	views := h.o.AgentViews()
	require.Len(t, views, 3)
	for _, v := range views {
		assert.Equal(t, models.AgentPooled, v.State)
	}

	// The cancelled children settle without resurrecting anything: no
	// synthesis starts and no wave beyond the first is published.
	require.Eventually(t, func() bool {
		return h.rt.Held() == 0
	}, waitFor, pollEvery)
	assert.Len(t, h.rt.Started(), 4)
	assert.Equal(t, [][]int{{0, 1, 2}}, h.sink.waves())
	assert.Empty(t, h.sink.byKind(models.EventSynthesisResult))
	require.Eventually(t, func() bool {
		return h.store.Len() == 0
	}, waitFor, pollEvery)

	// Cancelling again is a no-op; unknown IDs are an error.
	require.NoError(t, h.o.Cancel(id))
	require.ErrorIs(t, h.o.Cancel("no-such-commander"), ErrUnknownOrchestration)
}

func TestCancelDirectExecution(t *testing.T) {
	h := newTestHarness(t,
		plannerScript(t, models.PlannedSubTask{
			Title:               "Everything",
			Prompt:              "do everything at once",
			EstimatedComplexity: models.ComplexityLow,
		}),
	)

	id, err := h.o.Submit(multiStepPrompt, models.ModelSonnet)
	require.NoError(t, err)

	h.waitHeld(t, 1)
	h.rt.Step()
	// The fallback task is started and held.
	h.waitHeld(t, 1)

	require.NoError(t, h.o.Cancel(id))

	assert.Equal(t, 0, h.o.Stats().Active)
	views := h.o.AgentViews()
	require.Len(t, views, 2)
	for _, v := range views {
		assert.Equal(t, models.AgentPooled, v.State)
	}
	assert.Empty(t, h.sink.byKind(models.EventDirectCompleted))

	// A second cancel finds the settled run and leaves it alone.
	require.NoError(t, h.o.Cancel(id))
}

// ─────────────────────────────────────────────────────────────
// Disband
// ─────────────────────────────────────────────────────────────

func TestDisbandRemovesTerminalRecordsOnly(t *testing.T) {
	h := newTestHarness(t, plannerScript(t, fanOut()...))

	id, err := h.o.Submit(multiStepPrompt, models.ModelSonnet)
	require.NoError(t, err)

	h.waitHeld(t, 1)
	h.rt.Step()
	h.waitHeld(t, 3)

	// Still running: disband must not touch it.
	h.o.Disband(id)
	_, ok := h.o.Get(id)
	require.True(t, ok)

	require.NoError(t, h.o.Cancel(id))
	h.o.Disband(id)

	_, ok = h.o.Get(id)
	assert.False(t, ok)
	assert.Empty(t, h.o.List())

	// Pooled agents survive the disband; they belong to the pool now.
	views := h.o.AgentViews()
	require.Len(t, views, 3)
	for _, v := range views {
		assert.Equal(t, models.AgentPooled, v.State)
	}
}

// ─────────────────────────────────────────────────────────────
// Status plumbing and pressure
// ─────────────────────────────────────────────────────────────

func TestAgentStatusEventsSurfaceThroughSink(t *testing.T) {
	h := newTestHarness(t,
		plannerScript(t,
			models.PlannedSubTask{Title: "Think", Prompt: "think hard about the design", EstimatedComplexity: models.ComplexityMedium},
			models.PlannedSubTask{Title: "Apply", Prompt: "apply the design", Dependencies: []int{0}, EstimatedComplexity: models.ComplexityMedium},
		),
		runtime.Script{
			Match: runtime.MatchContains("think hard about the design"),
			Events: func(taskID string) []runtime.Event {
				return []runtime.Event{
					runtime.StatusEvent{TaskID: taskID, Status: "thinking"},
					runtime.ProgressEvent{TaskID: taskID, Fraction: 0.5},
					runtime.StatusEvent{TaskID: taskID, Status: "working"},
					runtime.OutputEvent{TaskID: taskID, Line: "wrote design.md"},
					runtime.CompletedEvent{TaskID: taskID, Result: "design done"},
				}
			},
		},
	)
	h.rt.Release()

	id, err := h.o.Submit(multiStepPrompt, models.ModelSonnet)
	require.NoError(t, err)
	h.waitPhase(t, id, models.PhaseCompleted)

	// Thinking and working both produced agent status envelopes.
	var states []models.AgentState
	for _, env := range h.sink.byKind(models.EventAgentStatus) {
		states = append(states, env.Payload.(map[string]any)["state"].(models.AgentState))
	}
	assert.Contains(t, states, models.AgentThinking)
	assert.Contains(t, states, models.AgentWorking)

	progress := h.sink.byKind(models.EventProgress)
	require.Len(t, progress, 1)
	payload := progress[0].Payload.(map[string]any)
	assert.Equal(t, 0.5, payload["fraction"])
	assert.Equal(t, 0, payload["index"])

	output := h.sink.byKind(models.EventAgentOutput)
	require.Len(t, output, 1)
	assert.Equal(t, "wrote design.md", output[0].Payload.(map[string]any)["line"])
}

func TestApprovalRequestParksAgentUntilResumed(t *testing.T) {
	h := newTestHarness(t,
		plannerScript(t,
			models.PlannedSubTask{Title: "Migrate", Prompt: "run the migration script", EstimatedComplexity: models.ComplexityMedium},
			models.PlannedSubTask{Title: "Verify", Prompt: "verify the migration", Dependencies: []int{0}, EstimatedComplexity: models.ComplexityMedium},
		),
		runtime.Script{
			Match: runtime.MatchContains("run the migration script"),
			Events: func(taskID string) []runtime.Event {
				return []runtime.Event{
					runtime.DangerousCommandEvent{TaskID: taskID, Tool: "Bash", Input: "rm -rf ./cache", Reason: "destructive"},
					runtime.StatusEvent{TaskID: taskID, Status: "working"},
					runtime.CompletedEvent{TaskID: taskID, Result: "migrated"},
				}
			},
		},
	)
	h.rt.Release()

	id, err := h.o.Submit(multiStepPrompt, models.ModelSonnet)
	require.NoError(t, err)
	h.waitPhase(t, id, models.PhaseCompleted)

	approvals := h.sink.byKind(models.EventDangerousCommand)
	require.Len(t, approvals, 1)
	payload := approvals[0].Payload.(map[string]any)
	assert.Equal(t, "Bash", payload["tool"])
	assert.Equal(t, "rm -rf ./cache", payload["input"])

	// The agent passed through the permission state and still finished.
	var states []models.AgentState
	for _, env := range h.sink.byKind(models.EventAgentStatus) {
		states = append(states, env.Payload.(map[string]any)["state"].(models.AgentState))
	}
	assert.Contains(t, states, models.AgentRequestingPermission)
	assert.Contains(t, states, models.AgentWorking)
}

func TestSetPressureShrinksAdmissionLimit(t *testing.T) {
	h := newTestHarness(t)

	h.o.SetPressure(models.PressureHigh)

	stats := h.o.Stats()
	assert.Equal(t, models.PressureHigh, stats.Pressure)
	assert.Equal(t, 2, stats.Limit)
}

func TestShutdownCancelsEverythingInFlight(t *testing.T) {
	h := newTestHarness(t, plannerScript(t, fanOut()...))

	id, err := h.o.Submit(multiStepPrompt, models.ModelSonnet)
	require.NoError(t, err)

	h.waitHeld(t, 1)
	h.rt.Step()
	h.waitHeld(t, 3)

	h.o.Shutdown()

	orch, ok := h.o.Get(id)
	require.True(t, ok)
	assert.Equal(t, models.PhaseFailed, orch.Phase)
	assert.Equal(t, 0, h.o.Stats().Active)
	assert.Equal(t, 0, h.store.Len())
}
