// Package masking scrubs secrets from sub-agent CLI output before it
// is logged, broadcast, or persisted.
package masking

import (
	"fmt"
	"log/slog"
	"regexp"

	"github.com/crewkit/squadron/pkg/config"
)

// DefaultPatternGroup is applied when the configured group is unknown.
// Masking falls back rather than off: a typo in the group name must not
// silently disable scrubbing.
const DefaultPatternGroup = "secrets"

// Service applies the configured pattern set to output lines. Created
// once at application startup. Thread-safe and stateless aside from
// compiled patterns, so one instance serves every sub-agent stream.
type Service struct {
	enabled bool
	active  []*CompiledPattern
}

// NewService compiles the configured pattern group plus any custom
// patterns. Invalid patterns are logged and skipped.
func NewService(cfg config.MaskingConfig) *Service {
	s := &Service{enabled: cfg.Enabled}
	if !cfg.Enabled {
		slog.Info("Output masking disabled")
		return s
	}

	compiled := compileBuiltinPatterns()

	group := cfg.PatternGroup
	names, ok := patternGroups()[group]
	if !ok {
		slog.Warn("Unknown masking pattern group, using default",
			"pattern_group", group, "default", DefaultPatternGroup)
		group = DefaultPatternGroup
		names = patternGroups()[group]
	}
	for _, name := range names {
		if cp, ok := compiled[name]; ok {
			s.active = append(s.active, cp)
		}
	}
	s.active = append(s.active, compileCustomPatterns(cfg.CustomPatterns)...)

	slog.Info("Masking service initialized",
		"pattern_group", group,
		"patterns", len(s.active),
		"custom_patterns", len(cfg.CustomPatterns))
	return s
}

// Mask scrubs one output line (or any larger chunk of text). Input
// matching no pattern is returned unchanged.
func (s *Service) Mask(line string) string {
	if !s.enabled || line == "" {
		return line
	}
	for _, p := range s.active {
		line = p.Regex.ReplaceAllString(line, p.Replacement)
	}
	return line
}

// compileBuiltinPatterns compiles all built-in regex patterns. Invalid
// patterns are logged and skipped.
func compileBuiltinPatterns() map[string]*CompiledPattern {
	out := make(map[string]*CompiledPattern)
	for name, pattern := range builtinPatterns() {
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile built-in masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		out[name] = &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		}
	}
	return out
}

// compileCustomPatterns compiles operator-supplied patterns. They are
// keyed as "custom:{index}" and applied after the built-in group.
func compileCustomPatterns(patterns []config.MaskingPattern) []*CompiledPattern {
	var out []*CompiledPattern
	for i, pattern := range patterns {
		name := fmt.Sprintf("custom:%d", i)
		compiled, err := regexp.Compile(pattern.Pattern)
		if err != nil {
			slog.Error("Failed to compile custom masking pattern, skipping",
				"pattern", name, "error", err)
			continue
		}
		out = append(out, &CompiledPattern{
			Name:        name,
			Regex:       compiled,
			Replacement: pattern.Replacement,
			Description: pattern.Description,
		})
	}
	return out
}
