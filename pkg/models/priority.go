package models

// Complexity is the planner's effort estimate for one sub-task.
type Complexity string

const (
	ComplexityLow    Complexity = "low"
	ComplexityMedium Complexity = "medium"
	ComplexityHigh   Complexity = "high"
)

// IsValid checks if the complexity is one of the contract values.
func (c Complexity) IsValid() bool {
	return c == ComplexityLow || c == ComplexityMedium || c == ComplexityHigh
}

// Priority orders sub-tasks within a scheduling wave. Higher values
// are scheduled first.
type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

// PriorityFromComplexity derives scheduling priority from the planner's
// complexity estimate. Sub-tasks with no dependencies are promoted one
// level (capped at critical) so independent work starts early.
func PriorityFromComplexity(c Complexity, hasDependencies bool) Priority {
	var p Priority
	switch c {
	case ComplexityHigh:
		p = PriorityHigh
	case ComplexityMedium:
		p = PriorityMedium
	default:
		p = PriorityLow
	}
	if !hasDependencies && p < PriorityCritical {
		p++
	}
	return p
}

// String renders the priority for logs and reports.
func (p Priority) String() string {
	switch p {
	case PriorityCritical:
		return "critical"
	case PriorityHigh:
		return "high"
	case PriorityMedium:
		return "medium"
	default:
		return "low"
	}
}
