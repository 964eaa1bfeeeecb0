// Package pool recycles idle sub-agents across orchestrations. Agents
// park here between assignments so a new wave can skip the spawn cost;
// a LIFO stack per role keeps the most recently warm agent on top.
package pool

import (
	"log/slog"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/lifecycle"
	"github.com/crewkit/squadron/pkg/models"
)

// Pool holds released sub-agents keyed by role.
//
// Not safe for concurrent use: the orchestrator serializes all access
// behind its own lock.
type Pool struct {
	log     *slog.Logger
	cfg     config.PoolConfig
	manager *lifecycle.Manager

	idle     map[models.Role][]string
	size     int
	pressure models.Pressure

	hits   int
	misses int
}

// Stats is a point-in-time pool summary for the stats endpoint.
type Stats struct {
	Hits        int     `json:"hits"`
	Misses      int     `json:"misses"`
	HitRate     float64 `json:"hit_rate"`
	Pooled      int     `json:"pooled"`
	Utilization float64 `json:"utilization"`
}

// New creates an empty pool over the lifecycle manager.
func New(cfg config.PoolConfig, manager *lifecycle.Manager) *Pool {
	return &Pool{
		log:      slog.Default().With("component", "pool"),
		cfg:      cfg,
		manager:  manager,
		idle:     make(map[models.Role][]string),
		pressure: models.PressureNormal,
	}
}

// SetPressure updates the pooling gate. Above elevated pressure,
// releases destroy agents instead of pooling them; agents already
// pooled stay until acquired or the host shuts down.
func (p *Pool) SetPressure(pressure models.Pressure) {
	if pressure.IsValid() {
		p.pressure = pressure
	}
}

// AcquireOrCreate returns an idle agent of the given role, preferring
// the most recently pooled one. On a hit the agent is re-parented to
// the commander; on a miss a fresh agent is created and spawned. Either
// way the returned agent is idle and ready for assignment.
func (p *Pool) AcquireOrCreate(role models.Role, commanderID string, model models.Model) (models.SubAgent, bool) {
	for {
		stack := p.idle[role]
		if len(stack) == 0 {
			break
		}

		agentID := stack[len(stack)-1]
		p.idle[role] = stack[:len(stack)-1]
		p.size--

		if err := p.manager.Reparent(agentID, commanderID); err != nil {
			// Stale entry; the agent is gone. Try the next one down.
			continue
		}
		if _, err := p.manager.Transition(agentID, lifecycle.EventAcquired); err != nil {
			p.log.Warn("Dropping unacquirable pooled agent", "agent_id", agentID, "error", err)
			continue
		}

		p.hits++
		agent, _ := p.manager.Get(agentID)
		p.log.Debug("Pool hit", "agent_id", agentID, "role", role, "commander_id", commanderID)
		return agent, true
	}

	p.misses++
	agent := p.manager.Create(role, commanderID, model)
	if _, err := p.manager.Transition(agent.ID, lifecycle.EventSpawned); err != nil {
		p.log.Warn("Fresh agent failed to spawn", "agent_id", agent.ID, "error", err)
	}
	agent, _ = p.manager.Get(agent.ID)
	return agent, false
}

// Release returns an agent to the pool when capacity and pressure
// permit; otherwise the agent is destroyed. Agents in states the
// allow-list will not pool from (error, for one) are always destroyed.
func (p *Pool) Release(agentID string) bool {
	agent, ok := p.manager.Get(agentID)
	if !ok {
		return false
	}

	if p.size < p.cfg.MaxPoolSize && p.pressure.AllowsPooling() {
		if _, err := p.manager.Transition(agentID, lifecycle.EventReleased); err == nil {
			p.idle[agent.Role] = append(p.idle[agent.Role], agentID)
			p.size++
			p.log.Debug("Agent pooled", "agent_id", agentID, "role", agent.Role, "pooled", p.size)
			return true
		}
	}

	if err := p.manager.Destroy(agentID); err != nil {
		p.log.Warn("Failed to destroy released agent", "agent_id", agentID, "error", err)
	}
	return false
}

// Forget drops an agent from the pool's bookkeeping without touching
// its lifecycle state. Used when the orchestrator destroys a pooled
// agent directly.
func (p *Pool) Forget(agentID string) {
	for role, stack := range p.idle {
		for i, id := range stack {
			if id == agentID {
				p.idle[role] = append(stack[:i], stack[i+1:]...)
				p.size--
				return
			}
		}
	}
}

// Size reports how many agents are currently pooled.
func (p *Pool) Size() int {
	return p.size
}

// Stats summarizes reuse effectiveness. Utilization is the share of
// live agents doing anything at all versus parked in the pool.
func (p *Pool) Stats() Stats {
	s := Stats{
		Hits:   p.hits,
		Misses: p.misses,
		Pooled: p.size,
	}
	if total := p.hits + p.misses; total > 0 {
		s.HitRate = float64(p.hits) / float64(total)
	}

	counts := p.manager.Counts()
	pooled := counts[models.AgentPooled]
	active := 0
	for state, n := range counts {
		if state != models.AgentPooled {
			active += n
		}
	}
	if active+pooled > 0 {
		s.Utilization = float64(active) / float64(active+pooled)
	}
	return s
}
