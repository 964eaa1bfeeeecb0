package orchestrator

import (
	"errors"

	"github.com/google/uuid"

	"github.com/crewkit/squadron/pkg/lifecycle"
	"github.com/crewkit/squadron/pkg/models"
	"github.com/crewkit/squadron/pkg/planner"
	"github.com/crewkit/squadron/pkg/runtime"
)

// ─────────────────────────────────────────────────────────────
// Phase 1 — decomposition
// ─────────────────────────────────────────────────────────────

// beginDecomposition sends the decomposition prompt to the planner CLI
// on the cheapest model. Runs after the intro delay; a cancellation in
// the meantime leaves the orchestration terminal and this becomes a
// no-op.
func (o *Orchestrator) beginDecomposition(commanderID string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	orch, ok := o.orchestrations[commanderID]
	if !ok || orch.Phase != models.PhaseDecomposing {
		return
	}

	taskID := uuid.NewString()
	o.tasks[taskID] = taskRef{kind: taskPlan, commanderID: commanderID}

	o.log.Info("Decomposition started",
		"commander_id", commanderID,
		"planner_model", models.PlannerModel)
	o.runtime.Start(o.ctx, taskID, models.PlannerModel, o.workspace, planner.BuildPrompt(orch.Prompt))
}

// handlePlanCompleted parses the planner's output and either enters
// phase 2 or falls back to direct execution. Holds the facade lock.
func (o *Orchestrator) handlePlanCompleted(orch *models.Orchestration, raw string) {
	plan, err := planner.Parse(raw)
	if err != nil {
		o.log.Warn("Plan rejected, falling back to direct execution",
			"commander_id", orch.CommanderID,
			"error", err)
		o.fallbackDirect(orch)
		return
	}
	if len(plan.Subtasks) <= 1 {
		o.log.Warn("Plan too small to orchestrate, falling back to direct execution",
			"commander_id", orch.CommanderID,
			"subtasks", len(plan.Subtasks))
		o.fallbackDirect(orch)
		return
	}
	o.applyPlan(orch, plan)
}

// handlePlanFailed covers planner process failures (spawn errors,
// crashes, cancellation of the planner child from outside). Holds the
// facade lock.
func (o *Orchestrator) handlePlanFailed(orch *models.Orchestration, err error) {
	o.log.Warn("Planner process failed, falling back to direct execution",
		"commander_id", orch.CommanderID,
		"error", err)
	o.fallbackDirect(orch)
}

// applyPlan materializes the accepted plan into sub-tasks, registers
// them with the scheduler, and starts the first wave.
func (o *Orchestrator) applyPlan(orch *models.Orchestration, plan *models.Plan) {
	subtasks := make([]*models.SubTask, 0, len(plan.Subtasks))
	for i, planned := range plan.Subtasks {
		deps := make([]int, len(planned.Dependencies))
		copy(deps, planned.Dependencies)
		subtasks = append(subtasks, &models.SubTask{
			Index:        i,
			Title:        planned.Title,
			Prompt:       planned.Prompt,
			Dependencies: deps,
			CanParallel:  planned.CanParallel,
			Priority:     models.PriorityFromComplexity(planned.EstimatedComplexity, len(deps) > 0),
			Status:       models.SubTaskPending,
		})
	}

	orch.SubTasks = subtasks
	orch.Phase = models.PhaseExecuting
	o.scheduler.AddOrchestration(orch.CommanderID, subtasks)

	o.log.Info("Plan accepted",
		"commander_id", orch.CommanderID,
		"subtasks", len(subtasks))
	o.publishPhase(orch)

	o.tick(orch)
}

// ─────────────────────────────────────────────────────────────
// Direct-execution fallback
// ─────────────────────────────────────────────────────────────

// fallbackDirect abandons decomposition: the orchestration record is
// dropped, two random-role sub-agents are spawned, and the original
// prompt runs as a single task through the controller at critical
// priority. Holds the facade lock.
func (o *Orchestrator) fallbackDirect(orch *models.Orchestration) {
	commanderID := orch.CommanderID
	delete(o.orchestrations, commanderID)
	o.scheduler.RemoveOrchestration(commanderID)

	primary, _ := o.pool.AcquireOrCreate(o.randomRole(), commanderID, orch.Model)
	standby, _ := o.pool.AcquireOrCreate(o.randomRole(), commanderID, orch.Model)
	o.trackAgent(commanderID, primary.ID)
	o.trackAgent(commanderID, standby.ID)

	run := &directRun{
		commanderID: commanderID,
		prompt:      orch.Prompt,
		model:       orch.Model,
		agentID:     primary.ID,
		standbyID:   standby.ID,
	}
	o.directs[commanderID] = run

	o.log.Info("Direct execution started",
		"commander_id", commanderID,
		"agent_id", primary.ID,
		"role", primary.Role)

	o.controller.RequestStart(commanderID, directIndex, orch.Model, models.PriorityCritical)
}

// startDirect launches the fallback task once the controller grants a
// slot. Invoked from the admission callback with the facade lock held.
func (o *Orchestrator) startDirect(commanderID string) {
	run, ok := o.directs[commanderID]
	if !ok || run.taskID != "" {
		// Cancelled while queued, or already started. Give the slot back.
		o.controller.TaskCancelled()
		return
	}

	taskID := uuid.NewString()
	run.taskID = taskID
	o.tasks[taskID] = taskRef{kind: taskDirect, commanderID: commanderID}

	if _, err := o.manager.Transition(run.agentID, lifecycle.EventAssigned); err != nil {
		o.log.Warn("Direct agent assignment rejected", "agent_id", run.agentID, "error", err)
	}
	o.publishAgent(commanderID, run.agentID)
	o.runtime.Start(o.ctx, taskID, run.model, o.workspace, run.prompt)
}

// finishDirect settles the fallback run in either direction. Holds the
// facade lock.
func (o *Orchestrator) finishDirect(run *directRun, result string, runErr error) {
	run.done = true
	o.controller.TaskCompleted()

	cmd := o.commanders[run.commanderID]
	if runErr != nil {
		run.err = runErr.Error()
		if cmd != nil {
			cmd.Status = models.CommanderError
		}
		o.finishAgent(run.agentID, lifecycle.EventFailed)
		o.log.Warn("Direct execution failed",
			"commander_id", run.commanderID,
			"error", runErr)
	} else {
		run.result = result
		if cmd != nil {
			cmd.Status = models.CommanderCompleted
		}
		o.finishAgent(run.agentID, lifecycle.EventCompleted)
		o.log.Info("Direct execution completed", "commander_id", run.commanderID)
	}
	o.pool.Release(run.agentID)
	o.pool.Release(run.standbyID)

	o.publish(models.EventDirectCompleted, run.commanderID, map[string]any{
		"result": run.result,
		"error":  run.err,
	})
	o.scheduleDisband(run.commanderID)
}

// cancelDirect tears down an in-flight fallback run. Settled runs are
// left alone. Holds the facade lock.
func (o *Orchestrator) cancelDirect(run *directRun) {
	if run.done {
		return
	}
	run.done = true
	if run.taskID != "" {
		delete(o.tasks, run.taskID)
		if err := o.runtime.CancelProcess(run.taskID); err != nil && !errors.Is(err, runtime.ErrUnknownTask) {
			o.log.Debug("Cancel of direct process failed", "task_id", run.taskID, "error", err)
		}
		o.finishAgent(run.agentID, lifecycle.EventCompleted)
		o.controller.TaskCancelled()
	}
	run.err = runtime.ErrCancelled.Error()

	if cmd, ok := o.commanders[run.commanderID]; ok {
		cmd.Status = models.CommanderError
	}
	o.pool.Release(run.agentID)
	o.pool.Release(run.standbyID)
	o.controller.Reset(run.commanderID)

	o.log.Info("Direct execution cancelled", "commander_id", run.commanderID)
	o.scheduleDisband(run.commanderID)
}
