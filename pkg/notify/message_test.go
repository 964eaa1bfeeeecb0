package notify

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewkit/squadron/pkg/models"
)

func completedOrchestration(commanderID string) models.Orchestration {
	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	done := created.Add(90 * time.Second)
	return models.Orchestration{
		CommanderID: commanderID,
		Prompt:      "implement the user service then write tests",
		Model:       models.ModelOpus,
		Phase:       models.PhaseCompleted,
		SubTasks: []*models.SubTask{
			{Index: 0, Title: "implement service", Status: models.SubTaskCompleted},
			{Index: 1, Title: "write tests", Status: models.SubTaskCompleted},
		},
		SynthesisResult: "Both pieces landed cleanly.",
		CreatedAt:       created,
		CompletedAt:     &done,
	}
}

func sectionText(t *testing.T, block goslack.Block) string {
	t.Helper()
	section, ok := block.(*goslack.SectionBlock)
	require.True(t, ok, "expected a section block")
	return section.Text.Text
}

func TestBuildFinishedMessage_Completed(t *testing.T) {
	blocks := BuildFinishedMessage(completedOrchestration("cmdr-a1b2"))

	require.Len(t, blocks, 3)

	header := sectionText(t, blocks[0])
	assert.Contains(t, header, ":white_check_mark:")
	assert.Contains(t, header, "Orchestration Complete")
	assert.Contains(t, header, "cmdr-a1b2")

	summary := sectionText(t, blocks[1])
	assert.Contains(t, summary, "opus")
	assert.Contains(t, summary, "1m30s")
	assert.Contains(t, summary, "2 completed")

	assert.Contains(t, sectionText(t, blocks[2]), "Both pieces landed cleanly.")
}

func TestBuildFinishedMessage_CompletedWithoutSynthesis(t *testing.T) {
	orch := completedOrchestration("cmdr-a1b2")
	orch.SynthesisResult = ""

	blocks := BuildFinishedMessage(orch)
	require.Len(t, blocks, 2, "no synthesis block when there is nothing to preview")
}

func TestBuildFinishedMessage_Failed(t *testing.T) {
	created := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	done := created.Add(30 * time.Second)
	orch := models.Orchestration{
		CommanderID: "cmdr-dead",
		Model:       models.ModelSonnet,
		Phase:       models.PhaseFailed,
		SubTasks: []*models.SubTask{
			{Index: 0, Title: "refactor parser", Status: models.SubTaskCompleted},
			{Index: 1, Title: "write tests", Status: models.SubTaskFailed, Error: "exit status 1"},
		},
		CreatedAt:   created,
		CompletedAt: &done,
	}

	blocks := BuildFinishedMessage(orch)
	require.Len(t, blocks, 2)

	header := sectionText(t, blocks[0])
	assert.Contains(t, header, ":x:")
	assert.Contains(t, header, "Orchestration Failed")
	assert.Contains(t, header, "write tests: exit status 1")

	summary := sectionText(t, blocks[1])
	assert.Contains(t, summary, "1 completed, 1 failed")
}

func TestBuildFinishedMessage_FailedWithoutSubTaskError(t *testing.T) {
	// Cancelled before any sub-task ran: no error section, just status.
	orch := models.Orchestration{
		CommanderID: "cmdr-gone",
		Model:       models.ModelHaiku,
		Phase:       models.PhaseFailed,
		CreatedAt:   time.Now(),
	}

	blocks := BuildFinishedMessage(orch)
	require.Len(t, blocks, 2)
	assert.NotContains(t, sectionText(t, blocks[0]), "*Error:*")
	assert.Contains(t, sectionText(t, blocks[1]), "*Sub-tasks:* none")
}

func TestSubTaskTally(t *testing.T) {
	tests := []struct {
		name     string
		tasks    []*models.SubTask
		expected string
	}{
		{
			name:     "empty",
			tasks:    nil,
			expected: "none",
		},
		{
			name: "single status",
			tasks: []*models.SubTask{
				{Status: models.SubTaskCompleted},
				{Status: models.SubTaskCompleted},
			},
			expected: "2 completed",
		},
		{
			name: "mixed statuses in fixed order",
			tasks: []*models.SubTask{
				{Status: models.SubTaskPending},
				{Status: models.SubTaskFailed},
				{Status: models.SubTaskCompleted},
				{Status: models.SubTaskCompleted},
				{Status: models.SubTaskInProgress},
			},
			expected: "2 completed, 1 failed, 1 in_progress, 1 pending",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, subTaskTally(tt.tasks))
		})
	}
}

func TestTruncateForSlack(t *testing.T) {
	t.Run("short text unchanged", func(t *testing.T) {
		assert.Equal(t, "hello", truncateForSlack("hello"))
	})

	t.Run("exact limit unchanged", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength)
		assert.Equal(t, text, truncateForSlack(text))
	})

	t.Run("over limit truncated", func(t *testing.T) {
		text := strings.Repeat("a", maxBlockTextLength+100)
		result := truncateForSlack(text)
		assert.True(t, len(result) < len(text))
		assert.Contains(t, result, "truncated")
	})

	t.Run("multi-byte runes not split", func(t *testing.T) {
		text := strings.Repeat("🔥", maxBlockTextLength+10)
		result := truncateForSlack(text)
		assert.Contains(t, result, "truncated")
		assert.True(t, utf8.ValidString(result), "result should be valid UTF-8")
		prefix := strings.Split(result, "\n\n_...")[0]
		assert.Equal(t, maxBlockTextLength, utf8.RuneCountInString(prefix))
	})
}
