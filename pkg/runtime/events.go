package runtime

import (
	"encoding/json"
	"strings"
)

// Event is one callback from a supervised CLI process. The concrete
// types below form a closed union; consumers dispatch with a type
// switch. Events for a given task arrive in emission order, each at
// most once.
type Event interface {
	// Task returns the identity the process was started under.
	Task() string

	runtimeEvent()
}

// StatusEvent reports a lifecycle-relevant status change, e.g. the
// agent switching between working and thinking.
type StatusEvent struct {
	TaskID string
	Status string
}

// ProgressEvent reports fractional completion in [0, 1].
type ProgressEvent struct {
	TaskID   string
	Fraction float64
}

// CompletedEvent is terminal: the process produced its result.
type CompletedEvent struct {
	TaskID string
	Result string
}

// FailedEvent is terminal: the process failed, was cancelled, or exited
// without a result. Cancellations satisfy errors.Is(Err, ErrCancelled).
type FailedEvent struct {
	TaskID string
	Err    error
}

// DangerousCommandEvent surfaces a guarded operation awaiting user
// confirmation.
type DangerousCommandEvent struct {
	TaskID string
	Tool   string
	Input  string
	Reason string
}

// AskUserEvent surfaces a structured question from the agent.
type AskUserEvent struct {
	TaskID    string
	SessionID string
	Input     json.RawMessage
}

// PlanReviewEvent surfaces a plan awaiting approval.
type PlanReviewEvent struct {
	TaskID    string
	SessionID string
	Input     json.RawMessage
}

// OutputEvent is one streamed log line, already masked.
type OutputEvent struct {
	TaskID string
	Line   string
}

// exitEvent is internal: the waiter goroutine's signal that the child
// exited. Never delivered to handlers.
type exitEvent struct {
	TaskID string
	err    error
}

func (e StatusEvent) Task() string           { return e.TaskID }
func (e ProgressEvent) Task() string         { return e.TaskID }
func (e CompletedEvent) Task() string        { return e.TaskID }
func (e FailedEvent) Task() string           { return e.TaskID }
func (e DangerousCommandEvent) Task() string { return e.TaskID }
func (e AskUserEvent) Task() string          { return e.TaskID }
func (e PlanReviewEvent) Task() string       { return e.TaskID }
func (e OutputEvent) Task() string           { return e.TaskID }
func (e exitEvent) Task() string             { return e.TaskID }

func (StatusEvent) runtimeEvent()           {}
func (ProgressEvent) runtimeEvent()         {}
func (CompletedEvent) runtimeEvent()        {}
func (FailedEvent) runtimeEvent()           {}
func (DangerousCommandEvent) runtimeEvent() {}
func (AskUserEvent) runtimeEvent()          {}
func (PlanReviewEvent) runtimeEvent()       {}
func (OutputEvent) runtimeEvent()           {}
func (exitEvent) runtimeEvent()             {}

// wireEvent is the stdout line format. One JSON object per line; the
// type field selects the shape, everything else is optional.
type wireEvent struct {
	Type      string          `json:"type"`
	Status    string          `json:"status"`
	Fraction  float64         `json:"fraction"`
	Result    string          `json:"result"`
	Error     string          `json:"error"`
	Tool      string          `json:"tool"`
	Input     json.RawMessage `json:"input"`
	Reason    string          `json:"reason"`
	SessionID string          `json:"session_id"`
}

// parseLine classifies one stdout line. Non-JSON lines and unknown type
// values become output events so forward-incompatible CLIs degrade to
// plain logging instead of breaking the stream.
func parseLine(taskID, line string) Event {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed[0] != '{' {
		return OutputEvent{TaskID: taskID, Line: line}
	}

	var we wireEvent
	if err := json.Unmarshal([]byte(trimmed), &we); err != nil {
		return OutputEvent{TaskID: taskID, Line: line}
	}

	switch we.Type {
	case "status":
		return StatusEvent{TaskID: taskID, Status: we.Status}
	case "progress":
		return ProgressEvent{TaskID: taskID, Fraction: clampFraction(we.Fraction)}
	case "completed":
		return CompletedEvent{TaskID: taskID, Result: we.Result}
	case "failed":
		return FailedEvent{TaskID: taskID, Err: &ProcessError{Message: we.Error}}
	case "dangerous_command":
		return DangerousCommandEvent{
			TaskID: taskID,
			Tool:   we.Tool,
			Input:  rawToString(we.Input),
			Reason: we.Reason,
		}
	case "ask_user":
		return AskUserEvent{TaskID: taskID, SessionID: we.SessionID, Input: we.Input}
	case "plan_review":
		return PlanReviewEvent{TaskID: taskID, SessionID: we.SessionID, Input: we.Input}
	default:
		return OutputEvent{TaskID: taskID, Line: line}
	}
}

// rawToString renders a JSON value for display: string literals are
// unquoted, anything else keeps its JSON text.
func rawToString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

func clampFraction(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// ProcessError carries the error string a CLI reported in a failed
// event, distinguishing it from spawn and exit errors.
type ProcessError struct {
	Message string
}

func (e *ProcessError) Error() string {
	if e.Message == "" {
		return "process reported failure"
	}
	return e.Message
}
