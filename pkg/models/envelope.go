package models

import "time"

// EventKind classifies host-facing orchestration events.
type EventKind string

const (
	EventPhaseChanged     EventKind = "orchestration.phase"
	EventSubTaskStatus    EventKind = "subtask.status"
	EventAgentStatus      EventKind = "agent.status"
	EventAgentOutput      EventKind = "agent.output"
	EventProgress         EventKind = "subtask.progress"
	EventDangerousCommand EventKind = "approval.dangerous_command"
	EventAskUserQuestion  EventKind = "approval.ask_user"
	EventPlanReview       EventKind = "approval.plan_review"
	EventSynthesisResult  EventKind = "orchestration.synthesis"
	EventDirectCompleted  EventKind = "direct.completed"
	EventWaveStarted      EventKind = "orchestration.wave"
)

// Envelope is the wire shape of one host-facing event. Payload must be
// JSON-serializable; consumers dispatch on Kind.
type Envelope struct {
	Kind        EventKind `json:"kind"`
	CommanderID string    `json:"commander_id"`
	Payload     any       `json:"payload,omitempty"`
	Timestamp   time.Time `json:"ts"`
	Seq         int64     `json:"seq"`
}
