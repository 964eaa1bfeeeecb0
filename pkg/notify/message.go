package notify

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	goslack "github.com/slack-go/slack"

	"github.com/crewkit/squadron/pkg/models"
)

const maxBlockTextLength = 2900

var phaseEmoji = map[models.Phase]string{
	models.PhaseCompleted: ":white_check_mark:",
	models.PhaseFailed:    ":x:",
}

var phaseLabel = map[models.Phase]string{
	models.PhaseCompleted: "Orchestration Complete",
	models.PhaseFailed:    "Orchestration Failed",
}

// tallyOrder fixes the display order of sub-task counts.
var tallyOrder = []models.SubTaskStatus{
	models.SubTaskCompleted,
	models.SubTaskFailed,
	models.SubTaskInProgress,
	models.SubTaskWaiting,
	models.SubTaskPending,
}

// BuildFinishedMessage creates Block Kit blocks for a terminal orchestration.
func BuildFinishedMessage(orch models.Orchestration) []goslack.Block {
	emoji := phaseEmoji[orch.Phase]
	if emoji == "" {
		emoji = ":question:"
	}
	label := phaseLabel[orch.Phase]
	if label == "" {
		label = "Orchestration " + string(orch.Phase)
	}

	headerText := fmt.Sprintf("%s *%s* — `%s`", emoji, label, orch.CommanderID)
	if orch.Phase == models.PhaseFailed {
		if reason := firstFailure(orch.SubTasks); reason != "" {
			headerText += fmt.Sprintf("\n\n*Error:*\n%s", truncateForSlack(reason))
		}
	}

	summaryText := fmt.Sprintf("*Model:* %s\n*Duration:* %s\n*Sub-tasks:* %s",
		orch.Model, orchestrationDuration(orch), subTaskTally(orch.SubTasks))

	blocks := []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
			nil, nil,
		),
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, summaryText, false, false),
			nil, nil,
		),
	}

	if orch.Phase == models.PhaseCompleted && orch.SynthesisResult != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(orch.SynthesisResult), false, false),
			nil, nil,
		))
	}

	return blocks
}

// subTaskTally renders per-status counts, e.g. "4 completed, 1 failed".
func subTaskTally(tasks []*models.SubTask) string {
	if len(tasks) == 0 {
		return "none"
	}

	counts := make(map[models.SubTaskStatus]int)
	for _, st := range tasks {
		counts[st.Status]++
	}

	var parts []string
	for _, status := range tallyOrder {
		if n := counts[status]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, status))
		}
	}
	return strings.Join(parts, ", ")
}

// firstFailure returns the first sub-task error, prefixed with the
// sub-task title when present. Empty when the orchestration failed
// without a sub-task error (cancelled, decomposition failure).
func firstFailure(tasks []*models.SubTask) string {
	for _, st := range tasks {
		if st.Status != models.SubTaskFailed || st.Error == "" {
			continue
		}
		if st.Title != "" {
			return st.Title + ": " + st.Error
		}
		return st.Error
	}
	return ""
}

func orchestrationDuration(orch models.Orchestration) time.Duration {
	if orch.CompletedAt != nil {
		return orch.CompletedAt.Sub(orch.CreatedAt).Round(time.Second)
	}
	return time.Since(orch.CreatedAt).Round(time.Second)
}

func truncateForSlack(text string) string {
	if utf8.RuneCountInString(text) <= maxBlockTextLength {
		return text
	}
	runes := []rune(text)
	return string(runes[:maxBlockTextLength]) + "\n\n_... (truncated — full result available via the API)_"
}
