package orchestrator

import (
	"sort"

	"github.com/crewkit/squadron/pkg/lifecycle"
	"github.com/crewkit/squadron/pkg/models"
	"github.com/crewkit/squadron/pkg/pool"
	"github.com/crewkit/squadron/pkg/scheduler"
)

// Stats is the aggregate health view the control API serves.
type Stats struct {
	Pool      pool.Stats      `json:"pool"`
	Scheduler scheduler.Stats `json:"scheduler"`
	Active    int             `json:"active"`
	Limit     int             `json:"limit"`
	Queued    int             `json:"queued"`
	Pressure  models.Pressure `json:"pressure"`
	Agents    int             `json:"agents"`
}

// Get returns a snapshot of one orchestration.
func (o *Orchestrator) Get(commanderID string) (models.Orchestration, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()

	orch, ok := o.orchestrations[commanderID]
	if !ok {
		return models.Orchestration{}, false
	}
	return snapshotOrchestration(orch), true
}

// List returns snapshots of every orchestration this instance holds,
// newest first.
func (o *Orchestrator) List() []models.Orchestration {
	o.mu.Lock()
	defer o.mu.Unlock()

	list := make([]models.Orchestration, 0, len(o.orchestrations))
	for _, orch := range o.orchestrations {
		list = append(list, snapshotOrchestration(orch))
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt.After(list[j].CreatedAt)
	})
	return list
}

// Stats aggregates pool, scheduler, and controller health.
func (o *Orchestrator) Stats() Stats {
	o.mu.Lock()
	defer o.mu.Unlock()

	return Stats{
		Pool:      o.pool.Stats(),
		Scheduler: o.scheduler.Stats(),
		Active:    o.controller.ActiveCount(),
		Limit:     o.controller.EffectiveLimit(),
		Queued:    o.controller.QueueLen(),
		Pressure:  o.controller.Pressure(),
		Agents:    o.manager.Len(),
	}
}

// AgentViews snapshots every registered sub-agent.
func (o *Orchestrator) AgentViews() []lifecycle.AgentView {
	return o.manager.AgentViews()
}
