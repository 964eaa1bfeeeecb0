package orchestrator

import (
	"context"
	"time"

	"github.com/crewkit/squadron/pkg/models"
)

// ─────────────────────────────────────────────────────────────
// Host event publishing
// ─────────────────────────────────────────────────────────────
//
// Everything here is best-effort: a nil or slow collaborator never
// blocks or fails the pipeline.

// publish hands one envelope to the sink. Holds the facade lock, which
// is safe because Sink implementations must not block.
func (o *Orchestrator) publish(kind models.EventKind, commanderID string, payload any) {
	o.seq++
	if o.sink == nil {
		return
	}
	o.sink.Publish(models.Envelope{
		Kind:        kind,
		CommanderID: commanderID,
		Payload:     payload,
		Timestamp:   time.Now(),
		Seq:         o.seq,
	})
}

// publishPhase announces the orchestration's current phase.
func (o *Orchestrator) publishPhase(orch *models.Orchestration) {
	o.publish(models.EventPhaseChanged, orch.CommanderID, map[string]any{
		"phase": orch.Phase,
		"wave":  orch.Wave,
	})
}

// publishSubTask announces one sub-task's current status. Results are
// excerpted so a chatty sub-task cannot bloat the event stream.
func (o *Orchestrator) publishSubTask(orch *models.Orchestration, st *models.SubTask) {
	o.publish(models.EventSubTaskStatus, orch.CommanderID, map[string]any{
		"index":    st.Index,
		"title":    st.Title,
		"status":   st.Status,
		"agent_id": st.AgentID,
		"result":   prefix(st.Result, o.cfg.SynthesisResultChars),
		"error":    st.Error,
	})
}

// publishAgent announces an agent's current lifecycle state. Agents
// already destroyed are skipped.
func (o *Orchestrator) publishAgent(commanderID, agentID string) {
	agent, ok := o.manager.Get(agentID)
	if !ok {
		return
	}
	o.publish(models.EventAgentStatus, commanderID, map[string]any{
		"agent_id": agent.ID,
		"role":     agent.Role,
		"state":    agent.State,
	})
}

// notifyFinished tells the notifier about a terminal orchestration on
// its own goroutine, with a snapshot so the notifier never sees live
// state. Holds the facade lock only to snapshot.
func (o *Orchestrator) notifyFinished(orch *models.Orchestration) {
	if o.notifier == nil {
		return
	}
	snap := snapshotOrchestration(orch)
	go o.notifier.OrchestrationFinished(context.Background(), snap)
}

// ─────────────────────────────────────────────────────────────
// Snapshot store writes
// ─────────────────────────────────────────────────────────────

// storeWrite queues one snapshot-store write for the store worker.
// Callers hold the facade lock, so the queue preserves pipeline order.
// Best-effort: a full queue drops the write with a warning.
func (o *Orchestrator) storeWrite(name string, fn func(context.Context) error) {
	if o.store == nil || o.storeClosed {
		return
	}
	select {
	case o.storeCh <- storeOp{name: name, fn: fn}:
	default:
		o.log.Warn("Snapshot store queue full, dropping write", "op", name)
	}
}

// storeLoop applies queued store writes in order, off the facade
// goroutines. Runs until Shutdown closes the queue.
func (o *Orchestrator) storeLoop() {
	defer close(o.storeDone)
	for op := range o.storeCh {
		ctx, cancel := context.WithTimeout(context.Background(), storeWriteTimeout)
		err := op.fn(ctx)
		cancel()
		if err != nil {
			o.log.Warn("Snapshot store write failed", "op", op.name, "error", err)
		}
	}
}

// snapshotOrchestration deep-copies an orchestration so views and
// collaborators never alias live state.
func snapshotOrchestration(orch *models.Orchestration) models.Orchestration {
	snap := *orch
	if orch.CompletedAt != nil {
		at := *orch.CompletedAt
		snap.CompletedAt = &at
	}
	snap.SubTasks = make([]*models.SubTask, len(orch.SubTasks))
	for i, st := range orch.SubTasks {
		stCopy := *st
		stCopy.Dependencies = append([]int(nil), st.Dependencies...)
		if st.StartedAt != nil {
			at := *st.StartedAt
			stCopy.StartedAt = &at
		}
		if st.CompletedAt != nil {
			at := *st.CompletedAt
			stCopy.CompletedAt = &at
		}
		snap.SubTasks[i] = &stCopy
	}
	return snap
}
