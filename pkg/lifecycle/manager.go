// Package lifecycle tracks every sub-agent from creation to destruction.
// A Manager owns the agent registry and is the only writer of agent
// states; transitions are validated against a fixed allow-list and
// recorded in a bounded TransitionLog. The cleanup manager and monitor
// built on top of it are documented in their own files.
package lifecycle

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crewkit/squadron/pkg/models"
)

var (
	// ErrAgentNotFound is returned when an agent ID is not registered.
	ErrAgentNotFound = errors.New("agent not found")

	// ErrInvalidTransition is returned when an (event, state) pair is not
	// in the transition allow-list. The agent's state is left untouched.
	ErrInvalidTransition = errors.New("invalid lifecycle transition")
)

// AgentView is a read-only snapshot of one agent, safe to hand to the
// monitor and API layers.
type AgentView struct {
	ID          string            `json:"id"`
	Role        models.Role       `json:"role"`
	CommanderID string            `json:"commander_id"`
	State       models.AgentState `json:"state"`
	StateSince  time.Time         `json:"state_since"`
}

// StateView is the read-only surface the monitor consumes.
type StateView interface {
	AgentViews() []AgentView
	Counts() map[models.AgentState]int
}

// Manager is the canonical sub-agent registry and state machine.
type Manager struct {
	mu         sync.RWMutex
	agents     map[string]*models.SubAgent
	stateSince map[string]time.Time

	log    *TransitionLog
	logger *slog.Logger
}

// NewManager returns an empty registry recording into the given log.
func NewManager(log *TransitionLog) *Manager {
	if log == nil {
		log = NewTransitionLog(0)
	}
	return &Manager{
		agents:     make(map[string]*models.SubAgent),
		stateSince: make(map[string]time.Time),
		log:        log,
		logger:     slog.Default().With("component", "lifecycle"),
	}
}

// Create registers a new agent in the initializing state and returns a
// snapshot of it. The caller transitions it onward once its runtime is up.
func (m *Manager) Create(role models.Role, commanderID string, model models.Model) models.SubAgent {
	agent := &models.SubAgent{
		ID:          uuid.NewString(),
		Role:        role,
		CommanderID: commanderID,
		State:       models.AgentInitializing,
		Model:       model,
		CreatedAt:   time.Now(),
	}

	m.mu.Lock()
	m.agents[agent.ID] = agent
	m.stateSince[agent.ID] = agent.CreatedAt
	m.mu.Unlock()

	m.logger.Info("Agent created",
		"agent_id", agent.ID,
		"role", role,
		"commander_id", commanderID,
		"model", model)
	return *agent
}

// Transition applies one lifecycle event to an agent. Illegal transitions
// are rejected with ErrInvalidTransition and logged; the state is unchanged.
func (m *Manager) Transition(agentID string, event Event) (models.AgentState, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	agent, ok := m.agents[agentID]
	if !ok {
		return "", fmt.Errorf("transition %s: %w", event, ErrAgentNotFound)
	}

	to, ok := nextState(event, agent.State)
	if !ok {
		m.logger.Warn("Rejected lifecycle transition",
			"agent_id", agentID,
			"event", event,
			"state", agent.State)
		return agent.State, fmt.Errorf("event %s from state %s: %w", event, agent.State, ErrInvalidTransition)
	}

	from := agent.State
	agent.State = to
	now := time.Now()
	m.stateSince[agentID] = now
	m.log.Record(TransitionRecord{
		AgentID: agentID,
		Event:   event,
		From:    from,
		To:      to,
		At:      now,
	})

	m.logger.Debug("Agent transition",
		"agent_id", agentID,
		"event", event,
		"from", from,
		"to", to)
	return to, nil
}

// Reparent reassigns a pooled agent to a new commander before reuse.
func (m *Manager) Reparent(agentID, commanderID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	agent, ok := m.agents[agentID]
	if !ok {
		return ErrAgentNotFound
	}
	agent.CommanderID = commanderID
	return nil
}

// Get returns a snapshot of one agent.
func (m *Manager) Get(agentID string) (models.SubAgent, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	agent, ok := m.agents[agentID]
	if !ok {
		return models.SubAgent{}, false
	}
	return *agent, true
}

// Destroy runs the destroying and destroyed transitions and drops the
// agent from the registry. Agents already gone are not an error.
func (m *Manager) Destroy(agentID string) error {
	if _, err := m.Transition(agentID, EventDestroying); err != nil {
		if errors.Is(err, ErrAgentNotFound) {
			return nil
		}
		return err
	}
	if _, err := m.Transition(agentID, EventDestroyed); err != nil {
		return err
	}

	m.mu.Lock()
	delete(m.agents, agentID)
	delete(m.stateSince, agentID)
	m.mu.Unlock()

	m.logger.Info("Agent destroyed", "agent_id", agentID)
	return nil
}

// Counts returns the number of agents per state.
func (m *Manager) Counts() map[models.AgentState]int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	counts := make(map[models.AgentState]int)
	for _, agent := range m.agents {
		counts[agent.State]++
	}
	return counts
}

// BusyCount reports how many agents are actively occupied with a task.
func (m *Manager) BusyCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, agent := range m.agents {
		if agent.State.IsBusy() {
			n++
		}
	}
	return n
}

// Len reports the number of registered agents.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.agents)
}

// AgentViews returns a snapshot of every registered agent.
func (m *Manager) AgentViews() []AgentView {
	m.mu.RLock()
	defer m.mu.RUnlock()

	views := make([]AgentView, 0, len(m.agents))
	for id, agent := range m.agents {
		views = append(views, AgentView{
			ID:          id,
			Role:        agent.Role,
			CommanderID: agent.CommanderID,
			State:       agent.State,
			StateSince:  m.stateSince[id],
		})
	}
	return views
}

// Log exposes the transition log for reports and tests.
func (m *Manager) Log() *TransitionLog {
	return m.log
}
