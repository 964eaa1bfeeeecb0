package orchestrator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/crewkit/squadron/pkg/models"
)

// synthesisTemplate is the fixed phase-3 instruction wrapped around the
// original task and the per-sub-task outcomes.
const synthesisTemplate = `An orchestrated coding task has finished executing in the shared workspace. The original task:

%s

Sub-task outcomes:

%s
Produce the final answer for the user:
1. Verify that the combined changes satisfy the original task.
2. Fix any inconsistencies between sub-task results before answering.
3. Summarize what was done, including anything that failed and why.
4. List concrete follow-ups the user should run or review, if any.`

// ─────────────────────────────────────────────────────────────
// Phase 3 — synthesis
// ─────────────────────────────────────────────────────────────

// beginSynthesis sends the synthesis prompt to the commander on the
// user-selected model. Reached exactly once, when the all-terminal
// check first passes. Holds the facade lock.
func (o *Orchestrator) beginSynthesis(orch *models.Orchestration) {
	orch.Phase = models.PhaseSynthesizing
	o.log.Info("Synthesis started",
		"commander_id", orch.CommanderID,
		"completed", countByStatus(orch, models.SubTaskCompleted),
		"failed", countByStatus(orch, models.SubTaskFailed))
	o.publishPhase(orch)

	taskID := uuid.NewString()
	o.tasks[taskID] = taskRef{kind: taskSynthesis, commanderID: orch.CommanderID}
	o.runtime.Start(o.ctx, taskID, orch.Model, o.workspace, o.synthesisPrompt(orch))
}

// synthesisPrompt renders the outcome list: status marker, title, and a
// bounded excerpt of each result or error.
func (o *Orchestrator) synthesisPrompt(orch *models.Orchestration) string {
	var outcomes strings.Builder
	for _, st := range orch.SubTasks {
		marker := "COMPLETED"
		body := prefix(st.Result, o.cfg.SynthesisResultChars)
		if st.Status == models.SubTaskFailed {
			marker = "FAILED"
			body = "Error: " + prefix(st.Error, o.cfg.SynthesisResultChars)
		}
		fmt.Fprintf(&outcomes, "[%s] %d. %s\n%s\n\n", marker, st.Index+1, st.Title, body)
	}
	return fmt.Sprintf(synthesisTemplate, orch.Prompt, outcomes.String())
}

// completeSynthesis records the final answer and settles the
// orchestration as a success. Holds the facade lock.
func (o *Orchestrator) completeSynthesis(orch *models.Orchestration, result string) {
	orch.SynthesisResult = result
	o.publish(models.EventSynthesisResult, orch.CommanderID, map[string]any{
		"result": result,
	})
	o.finishOrchestration(orch, models.CommanderCompleted)
}

// failSynthesis settles the orchestration with partial results: the
// phase still reads completed, the commander records the error, and no
// retry happens. Holds the facade lock.
func (o *Orchestrator) failSynthesis(orch *models.Orchestration, synthErr error) {
	o.log.Error("Synthesis failed, finishing with partial results",
		"commander_id", orch.CommanderID,
		"error", synthErr)
	o.finishOrchestration(orch, models.CommanderError)
}

// finishOrchestration is the shared tail of both synthesis outcomes:
// terminal phase, agent release, controller reset, scheduler and store
// cleanup, notification, deferred disband. Holds the facade lock.
func (o *Orchestrator) finishOrchestration(orch *models.Orchestration, status models.CommanderStatus) {
	now := time.Now()
	orch.Phase = models.PhaseCompleted
	orch.CompletedAt = &now

	commanderID := orch.CommanderID
	cmd := o.commanders[commanderID]
	if cmd != nil {
		cmd.Status = status
		o.releaseAgents(cmd)
	}

	o.controller.Reset(commanderID)
	o.scheduler.RemoveOrchestration(commanderID)
	o.storeWrite("remove", func(ctx context.Context) error {
		return o.store.Remove(ctx, commanderID)
	})

	o.log.Info("Orchestration finished",
		"commander_id", commanderID,
		"commander_status", status,
		"waves", orch.Wave,
		"duration", now.Sub(orch.CreatedAt))
	o.publishPhase(orch)
	o.notifyFinished(orch)
	o.scheduleDisband(commanderID)
}

// releaseAgents returns every non-busy agent of the commander to the
// pool; the pool pools or destroys each one depending on capacity and
// pressure. Busy agents are left alone (none should exist by now).
func (o *Orchestrator) releaseAgents(cmd *models.Commander) {
	for _, agentID := range cmd.SubAgentIDs {
		agent, ok := o.manager.Get(agentID)
		if !ok || agent.State == models.AgentPooled || agent.State.IsBusy() {
			continue
		}
		o.pool.Release(agentID)
		o.publishAgent(cmd.ID, agentID)
	}
}

// countByStatus tallies sub-tasks in one status.
func countByStatus(orch *models.Orchestration, status models.SubTaskStatus) int {
	n := 0
	for _, st := range orch.SubTasks {
		if st.Status == status {
			n++
		}
	}
	return n
}
