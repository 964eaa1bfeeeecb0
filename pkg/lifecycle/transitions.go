package lifecycle

import "github.com/crewkit/squadron/pkg/models"

// Event names the cause of a lifecycle transition. The allow-list below
// is the only authority on which (event, from) pairs are legal; anything
// else is rejected without touching agent state.
type Event string

const (
	EventSpawned             Event = "spawned"
	EventAssigned            Event = "assigned"
	EventThinkingStarted     Event = "thinking_started"
	EventThinkingFinished    Event = "thinking_finished"
	EventPermissionRequested Event = "permission_requested"
	EventQuestionAsked       Event = "question_asked"
	EventPlanSubmitted       Event = "plan_submitted"
	EventResumed             Event = "resumed"
	EventCompleted           Event = "completed"
	EventFailed              Event = "failed"
	EventReleased            Event = "released"
	EventAcquired            Event = "acquired"
	EventSuspended           Event = "suspended"
	EventUnsuspended         Event = "unsuspended"
	EventDestroying          Event = "destroying"
	EventDestroyed           Event = "destroyed"
)

// allowedTransitions maps (event, fromState) to the resulting state.
var allowedTransitions = map[Event]map[models.AgentState]models.AgentState{
	EventSpawned: {
		models.AgentInitializing: models.AgentIdle,
	},
	EventAssigned: {
		models.AgentIdle: models.AgentWorking,
	},
	EventThinkingStarted: {
		models.AgentWorking: models.AgentThinking,
	},
	EventThinkingFinished: {
		models.AgentThinking: models.AgentWorking,
	},
	EventPermissionRequested: {
		models.AgentWorking:  models.AgentRequestingPermission,
		models.AgentThinking: models.AgentRequestingPermission,
	},
	EventQuestionAsked: {
		models.AgentWorking:  models.AgentWaitingForAnswer,
		models.AgentThinking: models.AgentWaitingForAnswer,
	},
	EventPlanSubmitted: {
		models.AgentWorking:  models.AgentReviewingPlan,
		models.AgentThinking: models.AgentReviewingPlan,
	},
	EventResumed: {
		models.AgentRequestingPermission: models.AgentWorking,
		models.AgentWaitingForAnswer:     models.AgentWorking,
		models.AgentReviewingPlan:        models.AgentWorking,
	},
	EventCompleted: {
		models.AgentWorking:  models.AgentCompleted,
		models.AgentThinking: models.AgentCompleted,
	},
	EventFailed: {
		models.AgentInitializing:         models.AgentError,
		models.AgentWorking:              models.AgentError,
		models.AgentThinking:             models.AgentError,
		models.AgentRequestingPermission: models.AgentError,
		models.AgentWaitingForAnswer:     models.AgentError,
		models.AgentReviewingPlan:        models.AgentError,
	},
	EventReleased: {
		models.AgentIdle:      models.AgentPooled,
		models.AgentCompleted: models.AgentPooled,
	},
	EventAcquired: {
		models.AgentPooled: models.AgentIdle,
	},
	EventSuspended: {
		models.AgentWorking: models.AgentSuspended,
		models.AgentIdle:    models.AgentSuspendedIdle,
		models.AgentPooled:  models.AgentSuspendedIdle,
	},
	EventUnsuspended: {
		models.AgentSuspended:     models.AgentWorking,
		models.AgentSuspendedIdle: models.AgentIdle,
	},
	EventDestroying: {
		models.AgentIdle:      models.AgentDestroying,
		models.AgentPooled:    models.AgentDestroying,
		models.AgentCompleted: models.AgentDestroying,
		models.AgentError:     models.AgentDestroying,
	},
	EventDestroyed: {
		models.AgentDestroying: models.AgentDestroyed,
	},
}

// nextState resolves the allow-list. ok is false when the (event, from)
// pair is not legal.
func nextState(event Event, from models.AgentState) (models.AgentState, bool) {
	byFrom, ok := allowedTransitions[event]
	if !ok {
		return "", false
	}
	to, ok := byFrom[from]
	return to, ok
}
