package models

// Plan is the decomposition returned by the planner CLI. The JSON shape
// is a contract; fields beyond these are ignored.
type Plan struct {
	Subtasks []PlannedSubTask `json:"subtasks"`
}

// PlannedSubTask is one entry of the planner's decomposition.
//
// Dependencies are zero-based indices into the same list, each strictly
// less than the entry's own index. CanParallel is advisory only: the
// dependency graph already encodes parallelism, so the scheduler ignores
// it, but the field is preserved for forward compatibility.
type PlannedSubTask struct {
	Title               string     `json:"title"`
	Prompt              string     `json:"prompt"`
	Dependencies        []int      `json:"dependencies"`
	CanParallel         bool       `json:"can_parallel"`
	EstimatedComplexity Complexity `json:"estimated_complexity"`
}
