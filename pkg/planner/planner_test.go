package planner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldDecomposeShortPrompt(t *testing.T) {
	assert.False(t, ShouldDecompose("fix bug"))
	assert.False(t, ShouldDecompose(""))
}

func TestShouldDecomposeExactlyEightWords(t *testing.T) {
	// Indicators everywhere, but the eight-word floor wins.
	prompt := "refactor auth then add tests then update docs"
	assert.False(t, ShouldDecompose(prompt))
}

func TestShouldDecomposeNineWordsNoIndicators(t *testing.T) {
	assert.False(t, ShouldDecompose("the quick brown fox jumps over the lazy dog"))
}

func TestShouldDecomposeNineWordsTwoIndicators(t *testing.T) {
	assert.True(t, ShouldDecompose("please refactor the auth module and update its docs"))
}

func TestShouldDecomposeScenarioPrompt(t *testing.T) {
	prompt := "refactor the authentication module and add tests and update docs"
	assert.True(t, ShouldDecompose(prompt))
}

func TestShouldDecomposeSeparatorsNeedThirteenWords(t *testing.T) {
	// Two separators but only ten words: below the separator rule's floor.
	assert.False(t, ShouldDecompose("alpha beta, gamma delta, epsilon zeta eta theta iota kappa"))

	// Fourteen words and two separators, no indicator words.
	prompt := "the parser grammar, the emitter backend, plus documentation pages all deserve a second look"
	assert.True(t, ShouldDecompose(prompt))
}

func TestShouldDecomposeNumberedList(t *testing.T) {
	assert.True(t, ShouldDecompose("please handle these 1. parse config 2. validate schema 3. emit report"))
	assert.True(t, ShouldDecompose("work through 1) the scanner 2) the evaluator 3) the printer please"))
}

func TestShouldDecomposeTraditionalChinese(t *testing.T) {
	// No whitespace at all; Han runes must count as words.
	assert.True(t, ShouldDecompose("首先重構認證模組然後為它新增整合測試最後更新使用說明"))
}

func TestShouldDecomposeWholeWordIndicators(t *testing.T) {
	// "address" and "fixture" must not hit "add" and "fix".
	prompt := "the address book fixture needs a tidier layout on mobile screens"
	assert.False(t, ShouldDecompose(prompt))
}

func TestShouldDecomposeDeterministic(t *testing.T) {
	prompt := "refactor the authentication module and add tests and update docs"
	first := ShouldDecompose(prompt)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ShouldDecompose(prompt))
	}
}

func TestBuildPromptEmbedsTask(t *testing.T) {
	got := BuildPrompt("  build a CLI that tails logs  ")

	assert.Contains(t, got, "build a CLI that tails logs")
	assert.Contains(t, got, `"subtasks"`)
	assert.Contains(t, got, "at most 6 sub-tasks")
	assert.Contains(t, got, `"estimated_complexity"`)
	// Leading/trailing whitespace around the task is trimmed.
	assert.False(t, strings.Contains(got, "  build a CLI"))
}
