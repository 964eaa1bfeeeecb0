package models

// Phase is the pipeline stage an orchestration is currently in.
type Phase string

const (
	PhaseDecomposing  Phase = "decomposing"
	PhaseExecuting    Phase = "executing"
	PhaseSynthesizing Phase = "synthesizing"
	PhaseCompleted    Phase = "completed"
	PhaseFailed       Phase = "failed"
)

// IsTerminal reports whether the phase permits no further state mutation.
func (p Phase) IsTerminal() bool {
	return p == PhaseCompleted || p == PhaseFailed
}

// IsValid checks if the phase is one of the pipeline stages.
func (p Phase) IsValid() bool {
	switch p {
	case PhaseDecomposing, PhaseExecuting, PhaseSynthesizing, PhaseCompleted, PhaseFailed:
		return true
	default:
		return false
	}
}
