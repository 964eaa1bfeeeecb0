package models

// SubTaskStatus is the scheduling state of one decomposed unit of work.
//
// Transitions are strictly monotonic per sub-task:
// pending → waiting → in_progress → (completed | failed).
// A sub-task never reaches completed without passing through in_progress.
type SubTaskStatus string

const (
	SubTaskPending    SubTaskStatus = "pending"
	SubTaskWaiting    SubTaskStatus = "waiting"
	SubTaskInProgress SubTaskStatus = "in_progress"
	SubTaskCompleted  SubTaskStatus = "completed"
	SubTaskFailed     SubTaskStatus = "failed"
)

// IsTerminal reports whether the status admits no further transitions.
func (s SubTaskStatus) IsTerminal() bool {
	return s == SubTaskCompleted || s == SubTaskFailed
}

// IsValid checks if the status is one of the known scheduling states.
func (s SubTaskStatus) IsValid() bool {
	switch s {
	case SubTaskPending, SubTaskWaiting, SubTaskInProgress, SubTaskCompleted, SubTaskFailed:
		return true
	default:
		return false
	}
}
