package orchestrator

import (
	"github.com/crewkit/squadron/pkg/lifecycle"
	"github.com/crewkit/squadron/pkg/models"
	"github.com/crewkit/squadron/pkg/runtime"
)

// ─────────────────────────────────────────────────────────────
// Runtime event fan-in
// ─────────────────────────────────────────────────────────────

// handleEvent is the runtime's callback. It runs on per-task dispatch
// goroutines and is the only writer besides the public operations, so
// it takes the facade lock first. Events whose task ref is gone are
// dropped: that is how post-cancellation noise dies.
func (o *Orchestrator) handleEvent(ev runtime.Event) {
	o.mu.Lock()
	defer o.mu.Unlock()

	ref, ok := o.tasks[ev.Task()]
	if !ok {
		return
	}

	switch ev := ev.(type) {
	case runtime.CompletedEvent:
		delete(o.tasks, ev.TaskID)
		o.handleCompleted(ref, ev.Result)
	case runtime.FailedEvent:
		delete(o.tasks, ev.TaskID)
		o.handleFailed(ref, ev.Err)
	case runtime.StatusEvent:
		o.handleStatus(ref, ev.Status)
	case runtime.ProgressEvent:
		payload := o.eventScope(ref)
		payload["fraction"] = ev.Fraction
		o.publish(models.EventProgress, ref.commanderID, payload)
	case runtime.OutputEvent:
		payload := o.eventScope(ref)
		payload["line"] = ev.Line
		o.publish(models.EventAgentOutput, ref.commanderID, payload)
	case runtime.DangerousCommandEvent:
		o.handleInteraction(ref, lifecycle.EventPermissionRequested,
			models.EventDangerousCommand, map[string]any{
				"tool":   ev.Tool,
				"input":  ev.Input,
				"reason": ev.Reason,
			})
	case runtime.AskUserEvent:
		o.handleInteraction(ref, lifecycle.EventQuestionAsked,
			models.EventAskUserQuestion, map[string]any{
				"session_id": ev.SessionID,
				"input":      ev.Input,
			})
	case runtime.PlanReviewEvent:
		o.handleInteraction(ref, lifecycle.EventPlanSubmitted,
			models.EventPlanReview, map[string]any{
				"session_id": ev.SessionID,
				"input":      ev.Input,
			})
	}
}

// handleCompleted routes a successful child exit by task kind. Holds
// the facade lock.
func (o *Orchestrator) handleCompleted(ref taskRef, result string) {
	switch ref.kind {
	case taskPlan:
		orch, ok := o.orchestrations[ref.commanderID]
		if !ok || orch.Phase != models.PhaseDecomposing {
			return
		}
		o.handlePlanCompleted(orch, result)

	case taskSubTask:
		orch, ok := o.orchestrations[ref.commanderID]
		if !ok || orch.Phase != models.PhaseExecuting {
			// The slot was counted at admission; give it back.
			o.controller.TaskCancelled()
			return
		}
		o.completeSubTask(orch, orch.SubTasks[ref.index], result)

	case taskSynthesis:
		orch, ok := o.orchestrations[ref.commanderID]
		if !ok || orch.Phase != models.PhaseSynthesizing {
			return
		}
		o.completeSynthesis(orch, result)

	case taskDirect:
		run, ok := o.directs[ref.commanderID]
		if !ok {
			o.controller.TaskCancelled()
			return
		}
		o.finishDirect(run, result, nil)
	}
}

// handleFailed routes a failed child exit by task kind. Cancellation
// arrives here too when the whole runtime shuts down; the sub-task
// records the sentinel's message like any other failure. Holds the
// facade lock.
func (o *Orchestrator) handleFailed(ref taskRef, err error) {
	switch ref.kind {
	case taskPlan:
		orch, ok := o.orchestrations[ref.commanderID]
		if !ok || orch.Phase != models.PhaseDecomposing {
			return
		}
		o.handlePlanFailed(orch, err)

	case taskSubTask:
		orch, ok := o.orchestrations[ref.commanderID]
		if !ok || orch.Phase != models.PhaseExecuting {
			o.controller.TaskCancelled()
			return
		}
		o.failSubTask(orch, orch.SubTasks[ref.index], err)

	case taskSynthesis:
		orch, ok := o.orchestrations[ref.commanderID]
		if !ok || orch.Phase != models.PhaseSynthesizing {
			return
		}
		o.failSynthesis(orch, err)

	case taskDirect:
		run, ok := o.directs[ref.commanderID]
		if !ok {
			o.controller.TaskCancelled()
			return
		}
		o.finishDirect(run, "", err)
	}
}

// ─────────────────────────────────────────────────────────────
// Agent state mapping
// ─────────────────────────────────────────────────────────────

// handleStatus maps the CLI's coarse status strings onto lifecycle
// transitions. Unknown statuses and no-op repeats are ignored; the
// allow-list rejects anything incoherent. Holds the facade lock.
func (o *Orchestrator) handleStatus(ref taskRef, status string) {
	agentID := o.agentFor(ref)
	if agentID == "" {
		return
	}
	agent, ok := o.manager.Get(agentID)
	if !ok {
		return
	}

	switch status {
	case "thinking":
		if agent.State == models.AgentThinking {
			return
		}
		if agent.State.IsWaitingForUser() {
			o.transition(agentID, lifecycle.EventResumed)
		}
		o.transition(agentID, lifecycle.EventThinkingStarted)

	case "working":
		switch {
		case agent.State == models.AgentThinking:
			o.transition(agentID, lifecycle.EventThinkingFinished)
		case agent.State.IsWaitingForUser():
			o.transition(agentID, lifecycle.EventResumed)
		default:
			return
		}

	default:
		o.log.Debug("Unknown agent status",
			"status", status,
			"agent_id", agentID)
		return
	}

	o.publishAgent(ref.commanderID, agentID)
}

// handleInteraction parks the agent in the matching waiting state and
// surfaces the approval request to the host. Resolution comes from the
// CLI itself: a later status event resumes the agent. Holds the facade
// lock.
func (o *Orchestrator) handleInteraction(ref taskRef, event lifecycle.Event, kind models.EventKind, payload map[string]any) {
	if agentID := o.agentFor(ref); agentID != "" {
		o.transition(agentID, event)
		o.publishAgent(ref.commanderID, agentID)
	}
	for k, v := range o.eventScope(ref) {
		payload[k] = v
	}
	o.publish(kind, ref.commanderID, payload)
}

// eventScope builds the common payload fields identifying where an
// event came from: task kind, sub-task index when there is one, agent
// when one is executing it.
func (o *Orchestrator) eventScope(ref taskRef) map[string]any {
	payload := map[string]any{"kind": refKind(ref)}
	if ref.kind == taskSubTask {
		payload["index"] = ref.index
	}
	if agentID := o.agentFor(ref); agentID != "" {
		payload["agent_id"] = agentID
	}
	return payload
}

// transition applies one lifecycle event, relying on the manager to log
// rejects. A misbehaving event stream is noise, never corruption.
func (o *Orchestrator) transition(agentID string, event lifecycle.Event) {
	_, _ = o.manager.Transition(agentID, event)
}

// agentFor resolves the sub-agent executing the ref's task, when one
// exists. Planner and synthesis children run as the commander and have
// no sub-agent.
func (o *Orchestrator) agentFor(ref taskRef) string {
	switch ref.kind {
	case taskSubTask:
		orch, ok := o.orchestrations[ref.commanderID]
		if !ok || ref.index < 0 || ref.index >= len(orch.SubTasks) {
			return ""
		}
		return orch.SubTasks[ref.index].AgentID
	case taskDirect:
		run, ok := o.directs[ref.commanderID]
		if !ok {
			return ""
		}
		return run.agentID
	default:
		return ""
	}
}

// refKind names the task kind for event payloads.
func refKind(ref taskRef) string {
	switch ref.kind {
	case taskPlan:
		return "plan"
	case taskSubTask:
		return "sub_task"
	case taskSynthesis:
		return "synthesis"
	case taskDirect:
		return "direct"
	default:
		return "unknown"
	}
}
