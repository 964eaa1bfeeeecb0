package planner

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"

	"github.com/crewkit/squadron/pkg/models"
)

// ErrPlanUnparseable reports a planner response no decode strategy
// could read. The orchestrator falls back to direct execution.
var ErrPlanUnparseable = errors.New("plan unparseable")

// ErrPlanInvalid reports a response that decoded but violates the
// contract: an empty sub-task prompt, a self-dependency, or a forward
// dependency reference.
var ErrPlanInvalid = errors.New("plan invalid")

// planPattern extracts the JSON object out of responses that wrap it in
// prose or code fences.
var planPattern = regexp.MustCompile(`\{[\s\S]*"subtasks"[\s\S]*\}`)

// Parse decodes the planner's response. Strict decode first; on failure
// the JSON object is regex-extracted from the surrounding text and
// decoded again. Plans longer than MaxSubtasks are truncated to the
// first MaxSubtasks entries. Every dependency index must point strictly
// backwards within the list. Unknown complexity values normalize to
// medium rather than failing the whole plan.
func Parse(raw string) (*models.Plan, error) {
	var plan models.Plan
	if err := json.Unmarshal([]byte(raw), &plan); err != nil {
		extracted := planPattern.FindString(raw)
		if extracted == "" {
			return nil, fmt.Errorf("%w: no JSON object in response", ErrPlanUnparseable)
		}
		if err := json.Unmarshal([]byte(extracted), &plan); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrPlanUnparseable, err)
		}
	}

	if len(plan.Subtasks) > MaxSubtasks {
		plan.Subtasks = plan.Subtasks[:MaxSubtasks]
	}

	for i := range plan.Subtasks {
		st := &plan.Subtasks[i]
		if st.Prompt == "" {
			return nil, fmt.Errorf("%w: subtask %d has an empty prompt", ErrPlanInvalid, i)
		}
		for _, dep := range st.Dependencies {
			if dep < 0 || dep >= i {
				return nil, fmt.Errorf("%w: subtask %d depends on %d", ErrPlanInvalid, i, dep)
			}
		}
		if !st.EstimatedComplexity.IsValid() {
			st.EstimatedComplexity = models.ComplexityMedium
		}
	}

	return &plan, nil
}
