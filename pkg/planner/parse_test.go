package planner

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewkit/squadron/pkg/models"
)

func TestParseStrictJSON(t *testing.T) {
	raw := `{"subtasks":[
		{"title":"Refactor auth","prompt":"Refactor the auth module","dependencies":[],"can_parallel":true,"estimated_complexity":"medium"},
		{"title":"Add tests","prompt":"Add integration tests","dependencies":[0],"can_parallel":false,"estimated_complexity":"low"}
	]}`

	plan, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, plan.Subtasks, 2)

	assert.Equal(t, "Refactor auth", plan.Subtasks[0].Title)
	assert.Empty(t, plan.Subtasks[0].Dependencies)
	assert.Equal(t, models.ComplexityMedium, plan.Subtasks[0].EstimatedComplexity)
	assert.Equal(t, []int{0}, plan.Subtasks[1].Dependencies)
	assert.False(t, plan.Subtasks[1].CanParallel)
}

func TestParseExtractsFromProse(t *testing.T) {
	raw := "Sure! Here is the plan:\n```json\n" +
		`{"subtasks":[{"title":"A","prompt":"do a","dependencies":[],"can_parallel":true,"estimated_complexity":"low"},` +
		`{"title":"B","prompt":"do b","dependencies":[0],"can_parallel":true,"estimated_complexity":"high"}]}` +
		"\n```\nLet me know if you need anything else."

	plan, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, plan.Subtasks, 2)
	assert.Equal(t, models.ComplexityHigh, plan.Subtasks[1].EstimatedComplexity)
}

func TestParseTruncatesToSixEntries(t *testing.T) {
	subtasks := make([]string, 7)
	for i := range subtasks {
		subtasks[i] = fmt.Sprintf(`{"title":"T%d","prompt":"p%d","dependencies":[],"can_parallel":true,"estimated_complexity":"low"}`, i, i)
	}
	raw := `{"subtasks":[` + subtasks[0]
	for _, st := range subtasks[1:] {
		raw += "," + st
	}
	raw += `]}`

	plan, err := Parse(raw)
	require.NoError(t, err)
	require.Len(t, plan.Subtasks, 6)
	assert.Equal(t, "T5", plan.Subtasks[5].Title)
}

func TestParseRejectsSelfDependency(t *testing.T) {
	raw := `{"subtasks":[{"title":"A","prompt":"do a","dependencies":[0],"can_parallel":true,"estimated_complexity":"low"}]}`

	_, err := Parse(raw)
	assert.ErrorIs(t, err, ErrPlanInvalid)
}

func TestParseRejectsForwardDependency(t *testing.T) {
	raw := `{"subtasks":[
		{"title":"A","prompt":"do a","dependencies":[1],"can_parallel":true,"estimated_complexity":"low"},
		{"title":"B","prompt":"do b","dependencies":[],"can_parallel":true,"estimated_complexity":"low"}
	]}`

	_, err := Parse(raw)
	assert.ErrorIs(t, err, ErrPlanInvalid)
}

func TestParseRejectsEmptyPrompt(t *testing.T) {
	raw := `{"subtasks":[{"title":"A","prompt":"","dependencies":[],"can_parallel":true,"estimated_complexity":"low"}]}`

	_, err := Parse(raw)
	assert.ErrorIs(t, err, ErrPlanInvalid)
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse("I could not come up with a plan, sorry.")
	assert.ErrorIs(t, err, ErrPlanUnparseable)

	_, err = Parse(`{"subtasks": not json}`)
	assert.ErrorIs(t, err, ErrPlanUnparseable)
}

func TestParseNormalizesUnknownComplexity(t *testing.T) {
	raw := `{"subtasks":[{"title":"A","prompt":"do a","dependencies":[],"can_parallel":true,"estimated_complexity":"extreme"}]}`

	plan, err := Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, models.ComplexityMedium, plan.Subtasks[0].EstimatedComplexity)
}

func TestParseRoundTrip(t *testing.T) {
	raw := `{"subtasks":[
		{"title":"A","prompt":"do a","dependencies":[],"can_parallel":true,"estimated_complexity":"low"},
		{"title":"B","prompt":"do b","dependencies":[0],"can_parallel":false,"estimated_complexity":"high"}
	]}`

	plan, err := Parse(raw)
	require.NoError(t, err)

	encoded, err := json.Marshal(plan)
	require.NoError(t, err)

	again, err := Parse(string(encoded))
	require.NoError(t, err)
	assert.Equal(t, plan, again)
}
