package planner

import (
	"fmt"
	"strings"
)

// MaxSubtasks caps how many plan entries the parser accepts; extras are
// truncated, never an error.
const MaxSubtasks = 6

// decompositionTemplate is the fixed phase-1 instruction. The planner
// is told to answer with the JSON object alone; wrappers and prose are
// tolerated by the lenient parse but never requested.
const decompositionTemplate = `You are a planning assistant for a team of coding agents sharing one workspace.

Break the following task into at most %d sub-tasks:

%s

Respond with ONLY a JSON object in exactly this shape, no prose and no code fences:

{"subtasks":[{"title":"short name","prompt":"self-contained instruction","dependencies":[0],"can_parallel":true,"estimated_complexity":"medium"}]}

Rules:
- "title" is at most 80 characters.
- "prompt" must be executable by one agent with no other context.
- "dependencies" lists zero-based indices of sub-tasks that must finish first; every index must be smaller than the entry's own index.
- "can_parallel" states whether the sub-task can run alongside its siblings.
- "estimated_complexity" is one of "low", "medium", "high".
- Use at most %d sub-tasks and order them so dependencies come before dependents.`

// BuildPrompt renders the fixed decomposition instruction around the
// user's original prompt.
func BuildPrompt(userPrompt string) string {
	return fmt.Sprintf(decompositionTemplate, MaxSubtasks, strings.TrimSpace(userPrompt), MaxSubtasks)
}
