package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crewkit/squadron/pkg/lifecycle"
	"github.com/crewkit/squadron/pkg/models"
)

// dependencyFailedError is the error recorded on sub-tasks whose
// transitive dependencies include a failure. They never ran.
const dependencyFailedError = "Dependency failed"

// ─────────────────────────────────────────────────────────────
// Phase 2 — demand-driven wave execution
// ─────────────────────────────────────────────────────────────

// tick advances the execution phase: it either dispatches the next wave
// of ready sub-tasks or, once everything is terminal, moves on to
// synthesis. Runs after decomposition and after every sub-task
// completion or failure. Holds the facade lock.
func (o *Orchestrator) tick(orch *models.Orchestration) {
	if orch.Phase != models.PhaseExecuting {
		return
	}

	if allTerminal(orch) {
		o.beginSynthesis(orch)
		return
	}

	ready := o.scheduler.ReadyCount(orch.CommanderID)
	if ready == 0 {
		return
	}
	wave := o.controller.OptimalWaveSize(ready, remainingCount(orch))
	batch := o.scheduler.NextBatch(orch.CommanderID, wave)
	if len(batch) == 0 {
		return
	}

	orch.Wave++
	o.log.Info("Wave dispatched",
		"commander_id", orch.CommanderID,
		"wave", orch.Wave,
		"size", len(batch),
		"ready", ready,
		"limit", o.controller.EffectiveLimit())
	o.publish(models.EventWaveStarted, orch.CommanderID, map[string]any{
		"wave":    orch.Wave,
		"indices": batch,
	})

	for _, index := range batch {
		o.scheduleSubTask(orch, orch.SubTasks[index])
	}
}

// scheduleSubTask acquires an agent for the sub-task and requests a
// start slot. The actual launch happens in startAdmitted, either
// synchronously when a slot is free or later when the controller
// drains. Holds the facade lock.
func (o *Orchestrator) scheduleSubTask(orch *models.Orchestration, st *models.SubTask) {
	agent, hit := o.pool.AcquireOrCreate(models.RoleForIndex(st.Index), orch.CommanderID, orch.Model)
	o.trackAgent(orch.CommanderID, agent.ID)
	st.AgentID = agent.ID
	st.Status = models.SubTaskWaiting
	o.scheduler.MarkScheduled(orch.CommanderID, st.Index)

	o.log.Debug("Sub-task scheduled",
		"commander_id", orch.CommanderID,
		"index", st.Index,
		"agent_id", agent.ID,
		"role", agent.Role,
		"pool_hit", hit)
	o.publishSubTask(orch, st)
	o.publishAgent(orch.CommanderID, agent.ID)

	item := models.TaskQueueItem{
		ID:           uuid.NewString(),
		CommanderID:  orch.CommanderID,
		SubTaskIndex: st.Index,
		Title:        st.Title,
		Prompt:       st.Prompt,
		Dependencies: append([]int(nil), st.Dependencies...),
		Status:       models.SubTaskWaiting,
		EnqueuedAt:   time.Now(),
	}
	o.storeWrite("enqueue", func(ctx context.Context) error {
		return o.store.Enqueue(ctx, item)
	})

	o.controller.RequestStart(orch.CommanderID, st.Index, orch.Model, st.Priority)
}

// startAdmitted is the controller's admission callback: the slot is
// already counted when it runs. It fires synchronously under the facade
// lock, either inside RequestStart or while a completion drains the
// queue.
func (o *Orchestrator) startAdmitted(commanderID string, index int, model models.Model) {
	if index == directIndex {
		o.startDirect(commanderID)
		return
	}

	orch, ok := o.orchestrations[commanderID]
	if !ok || orch.Phase != models.PhaseExecuting {
		// Admitted after cancellation or phase change; free the slot.
		o.controller.TaskCancelled()
		return
	}
	st := orch.SubTasks[index]
	if st.Status != models.SubTaskWaiting {
		o.controller.TaskCancelled()
		return
	}

	taskID := uuid.NewString()
	now := time.Now()
	st.TaskID = taskID
	st.Status = models.SubTaskInProgress
	st.StartedAt = &now
	o.tasks[taskID] = taskRef{kind: taskSubTask, commanderID: commanderID, index: index}
	o.scheduler.MarkStarted(commanderID, index)

	if _, err := o.manager.Transition(st.AgentID, lifecycle.EventAssigned); err != nil {
		o.log.Warn("Agent assignment rejected",
			"agent_id", st.AgentID,
			"index", index,
			"error", err)
	}

	o.log.Info("Sub-task started",
		"commander_id", commanderID,
		"index", index,
		"title", st.Title,
		"agent_id", st.AgentID,
		"active", o.controller.ActiveCount())
	o.publishSubTask(orch, st)
	o.publishAgent(commanderID, st.AgentID)

	agentID := st.AgentID
	o.storeWrite("mark_started", func(ctx context.Context) error {
		return o.store.MarkStarted(ctx, commanderID, index, agentID)
	})

	o.runtime.Start(o.ctx, taskID, model, o.workspace, o.subTaskPrompt(orch, st))
}

// subTaskPrompt builds the child's prompt: the planned prompt plus a
// bounded excerpt of every completed dependency's result.
func (o *Orchestrator) subTaskPrompt(orch *models.Orchestration, st *models.SubTask) string {
	if len(st.Dependencies) == 0 {
		return st.Prompt
	}

	var b strings.Builder
	b.WriteString(st.Prompt)
	wroteHeader := false
	for _, dep := range st.Dependencies {
		d := orch.SubTasks[dep]
		if d.Status != models.SubTaskCompleted {
			continue
		}
		if !wroteHeader {
			b.WriteString("\n\nContext from previous steps:\n")
			wroteHeader = true
		}
		fmt.Fprintf(&b, "- %s: %s\n", d.Title, prefix(d.Result, o.cfg.DependencyContextChars))
	}
	return b.String()
}

// ─────────────────────────────────────────────────────────────
// Sub-task settlement
// ─────────────────────────────────────────────────────────────

// completeSubTask settles a successful sub-task and advances the wave.
// Holds the facade lock.
func (o *Orchestrator) completeSubTask(orch *models.Orchestration, st *models.SubTask, result string) {
	now := time.Now()
	st.Status = models.SubTaskCompleted
	st.Result = result
	st.CompletedAt = &now
	o.scheduler.MarkCompleted(orch.CommanderID, st.Index)
	o.finishAgent(st.AgentID, lifecycle.EventCompleted)

	o.log.Info("Sub-task completed",
		"commander_id", orch.CommanderID,
		"index", st.Index,
		"title", st.Title)
	o.publishSubTask(orch, st)
	o.publishAgent(orch.CommanderID, st.AgentID)

	commanderID, index := orch.CommanderID, st.Index
	o.storeWrite("mark_completed", func(ctx context.Context) error {
		return o.store.MarkCompleted(ctx, commanderID, index)
	})

	o.controller.TaskCompleted()
	o.tick(orch)
}

// failSubTask settles a failed sub-task, cascades the failure to
// dependents that can no longer run, and advances the wave. Holds the
// facade lock.
func (o *Orchestrator) failSubTask(orch *models.Orchestration, st *models.SubTask, taskErr error) {
	now := time.Now()
	st.Status = models.SubTaskFailed
	st.Error = taskErr.Error()
	st.CompletedAt = &now
	o.scheduler.MarkFailed(orch.CommanderID, st.Index)
	o.finishAgent(st.AgentID, lifecycle.EventFailed)

	o.log.Warn("Sub-task failed",
		"commander_id", orch.CommanderID,
		"index", st.Index,
		"title", st.Title,
		"error", taskErr)
	o.publishSubTask(orch, st)
	o.publishAgent(orch.CommanderID, st.AgentID)

	commanderID, index := orch.CommanderID, st.Index
	o.storeWrite("mark_failed", func(ctx context.Context) error {
		return o.store.MarkFailed(ctx, commanderID, index)
	})

	o.failDependents(orch)
	o.controller.TaskCompleted()
	o.tick(orch)
}

// failDependents marks every pending sub-task downstream of a failure
// as failed, transitively, so the all-terminal check can fire. Only
// pending entries are affected: anything waiting or in progress had all
// dependencies completed when it was scheduled.
func (o *Orchestrator) failDependents(orch *models.Orchestration) {
	now := time.Now()
	for changed := true; changed; {
		changed = false
		for _, st := range orch.SubTasks {
			if st.Status != models.SubTaskPending {
				continue
			}
			for _, dep := range st.Dependencies {
				if orch.SubTasks[dep].Status != models.SubTaskFailed {
					continue
				}
				st.Status = models.SubTaskFailed
				st.Error = dependencyFailedError
				st.CompletedAt = &now
				o.scheduler.MarkFailed(orch.CommanderID, st.Index)
				o.log.Warn("Sub-task skipped",
					"commander_id", orch.CommanderID,
					"index", st.Index,
					"failed_dependency", dep)
				o.publishSubTask(orch, st)
				changed = true
				break
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────
// Counters
// ─────────────────────────────────────────────────────────────

// remainingCount is how many sub-tasks are not yet terminal.
func remainingCount(orch *models.Orchestration) int {
	n := 0
	for _, st := range orch.SubTasks {
		if !st.Status.IsTerminal() {
			n++
		}
	}
	return n
}

// allTerminal reports whether every sub-task has settled.
func allTerminal(orch *models.Orchestration) bool {
	if len(orch.SubTasks) == 0 {
		return false
	}
	return remainingCount(orch) == 0
}

// prefix bounds s to at most n runes.
func prefix(s string, n int) string {
	if n <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
