// Package planner implements the decomposition gate, the fixed planner
// instruction template, and the lenient parser for the planner CLI's
// JSON contract. Everything here is deterministic: the same prompt
// always yields the same gate decision and the same parse outcome.
package planner

import (
	"regexp"
	"strings"
	"unicode"
)

// decompositionIndicators is the fixed multilingual indicator list the
// gate matches against: imperative verbs and sequencing adverbs in
// English and Traditional Chinese. The list is part of the contract —
// changing it changes which prompts auto-decompose.
var decompositionIndicators = []string{
	// English sequencing adverbs.
	"first", "then", "next", "after", "finally", "lastly",
	// English imperative verbs common in coding tasks.
	"add", "create", "implement", "refactor", "update", "fix",
	"write", "test", "remove", "migrate", "document", "deploy",
	"review", "configure", "install", "rename",
	// Traditional Chinese sequencing adverbs.
	"首先", "然後", "接著", "最後", "再來",
	// Traditional Chinese imperative verbs.
	"新增", "建立", "實作", "重構", "更新", "修復",
	"撰寫", "測試", "移除", "遷移", "部署", "設定",
	"安裝", "檢查",
}

// numberedListPattern matches enumerations like "1. " or "2) ".
var numberedListPattern = regexp.MustCompile(`\d+[.)] `)

// ShouldDecompose is the heuristic gate deciding whether a prompt goes
// through the decomposition pipeline or stays on the host's direct path.
//
// Prompts of eight words or fewer never decompose. Longer prompts
// decompose when they hit at least two indicators, carry at least two
// clause separators past twelve words, or contain a numbered list.
func ShouldDecompose(prompt string) bool {
	words := countWords(prompt)
	if words <= 8 {
		return false
	}
	if indicatorHits(prompt) >= 2 {
		return true
	}
	if words > 12 && separatorCount(prompt) >= 2 {
		return true
	}
	return numberedListPattern.MatchString(prompt)
}

// countWords counts whitespace-separated words. Han runes are counted
// individually because Chinese text carries no word spacing; without
// this the gate's word-count floor would reject every Chinese prompt.
func countWords(prompt string) int {
	count := 0
	for _, field := range strings.Fields(prompt) {
		latin := 0
		for _, r := range field {
			if unicode.Is(unicode.Han, r) {
				count++
			} else {
				latin = 1
			}
		}
		count += latin
	}
	return count
}

// indicatorHits counts how many distinct indicators appear in the
// prompt. ASCII indicators match whole words only ("add" must not hit
// inside "address"); Chinese indicators match as substrings.
func indicatorHits(prompt string) int {
	words := make(map[string]struct{})
	for _, field := range strings.Fields(strings.ToLower(prompt)) {
		words[strings.Trim(field, ",.;:!?()[]{}\"'")] = struct{}{}
	}

	hits := 0
	for _, indicator := range decompositionIndicators {
		if isASCII(indicator) {
			if _, ok := words[indicator]; ok {
				hits++
			}
		} else if strings.Contains(prompt, indicator) {
			hits++
		}
	}
	return hits
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

// separatorCount counts clause separators: comma and semicolon in both
// their ASCII and ideographic/full-width forms.
func separatorCount(prompt string) int {
	count := 0
	for _, r := range prompt {
		switch r {
		case ',', ';', '、', '，', '；':
			count++
		}
	}
	return count
}
