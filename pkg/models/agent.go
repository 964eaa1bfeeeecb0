package models

import "time"

// AgentState is the lifecycle state of one sub-agent. Transitions are
// guarded by the lifecycle manager's allow-list; see pkg/lifecycle.
type AgentState string

const (
	AgentInitializing         AgentState = "initializing"
	AgentIdle                 AgentState = "idle"
	AgentWorking              AgentState = "working"
	AgentThinking             AgentState = "thinking"
	AgentRequestingPermission AgentState = "requesting_permission"
	AgentWaitingForAnswer     AgentState = "waiting_for_answer"
	AgentReviewingPlan        AgentState = "reviewing_plan"
	AgentCompleted            AgentState = "completed"
	AgentError                AgentState = "error"
	AgentPooled               AgentState = "pooled"
	AgentSuspended            AgentState = "suspended"
	AgentSuspendedIdle        AgentState = "suspended_idle"
	AgentDestroying           AgentState = "destroying"
	AgentDestroyed            AgentState = "destroyed"
)

// IsBusy reports whether the agent occupies a concurrency slot:
// actively working, thinking, or parked on a user interaction.
func (s AgentState) IsBusy() bool {
	switch s {
	case AgentWorking, AgentThinking,
		AgentRequestingPermission, AgentWaitingForAnswer, AgentReviewingPlan:
		return true
	default:
		return false
	}
}

// IsWaitingForUser reports whether the agent is parked on a user
// interaction (permission, question, or plan review).
func (s AgentState) IsWaitingForUser() bool {
	switch s {
	case AgentRequestingPermission, AgentWaitingForAnswer, AgentReviewingPlan:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the agent has finished its assignment and
// awaits cleanup.
func (s AgentState) IsTerminal() bool {
	return s == AgentCompleted || s == AgentError
}

// SubAgent is a worker bound to one role, owned by the pool while idle
// and by the orchestrator while assigned.
type SubAgent struct {
	ID          string     `json:"id"`
	Role        Role       `json:"role"`
	CommanderID string     `json:"commander_id"`
	State       AgentState `json:"state"`
	Model       Model      `json:"model"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Commander is a top-level agent owning one orchestration.
type Commander struct {
	ID          string          `json:"id"`
	Model       Model           `json:"model"`
	SubAgentIDs []string        `json:"sub_agent_ids"`
	Status      CommanderStatus `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CommanderStatus is the terminal disposition of a commander.
type CommanderStatus string

const (
	CommanderActive    CommanderStatus = "active"
	CommanderCompleted CommanderStatus = "completed"
	CommanderError     CommanderStatus = "error"
	CommanderDisbanded CommanderStatus = "disbanded"
)
