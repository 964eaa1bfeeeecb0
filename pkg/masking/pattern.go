package masking

import (
	"regexp"

	"github.com/crewkit/squadron/pkg/config"
)

// CompiledPattern holds a pre-compiled regex pattern with its replacement.
type CompiledPattern struct {
	Name        string
	Regex       *regexp.Regexp
	Replacement string
	Description string
}

// builtinPatterns returns the regex rules that ship with squadron.
// Replacements keep a recognizable label so a masked line still reads.
func builtinPatterns() map[string]config.MaskingPattern {
	return map[string]config.MaskingPattern{
		"api_key": {
			Pattern:     `(?i)(?:api[_-]?key|apikey)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-]{16,})["']?`,
			Replacement: `api_key=***MASKED_API_KEY***`,
			Description: "API keys",
		},
		"password": {
			Pattern:     `(?i)(?:password|passwd|pwd)["']?\s*[:=]\s*["']?([^"'\s\n]{6,})["']?`,
			Replacement: `password=***MASKED_PASSWORD***`,
			Description: "Passwords in key=value form",
		},
		"url_password": {
			Pattern:     `([a-zA-Z][a-zA-Z0-9+.-]*://[^:/@\s]+):([^@/\s]+)@`,
			Replacement: `${1}:***MASKED_PASSWORD***@`,
			Description: "Passwords embedded in URLs",
		},
		"token": {
			Pattern:     `(?i)(?:token|jwt)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{20,})["']?`,
			Replacement: `token=***MASKED_TOKEN***`,
			Description: "Access tokens in key=value form",
		},
		"bearer_header": {
			Pattern:     `(?i)\bbearer\s+[A-Za-z0-9_\-\.=]{8,}`,
			Replacement: `Bearer ***MASKED_TOKEN***`,
			Description: "Authorization bearer headers",
		},
		"certificate": {
			Pattern:     `(?s)-----BEGIN [A-Z ]+-----.*?-----END [A-Z ]+-----`,
			Replacement: `***MASKED_PEM_BLOCK***`,
			Description: "PEM blocks (certificates and private keys)",
		},
		"private_key": {
			Pattern:     `(?i)(?:private[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{16,})["']?`,
			Replacement: `private_key=***MASKED_PRIVATE_KEY***`,
			Description: "Private keys in key=value form",
		},
		"secret_key": {
			Pattern:     `(?i)(?:secret[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9_\-\.]{16,})["']?`,
			Replacement: `secret_key=***MASKED_SECRET_KEY***`,
			Description: "Secret keys in key=value form",
		},
		"ssh_key": {
			Pattern:     `ssh-(?:rsa|dss|ed25519|ecdsa)\s+[A-Za-z0-9+/=]+`,
			Replacement: `***MASKED_SSH_KEY***`,
			Description: "SSH public keys",
		},
		"aws_access_key": {
			Pattern:     `\bAKIA[A-Z0-9]{16}\b`,
			Replacement: `***MASKED_AWS_KEY***`,
			Description: "AWS access key IDs",
		},
		"aws_secret_key": {
			Pattern:     `(?i)(?:aws[_-]?secret[_-]?access[_-]?key)["']?\s*[:=]\s*["']?([A-Za-z0-9/+=]{40})["']?`,
			Replacement: `aws_secret_access_key=***MASKED_AWS_SECRET***`,
			Description: "AWS secret keys",
		},
		"github_token": {
			Pattern:     `\bgh[pousr]_[A-Za-z0-9_]{36,255}\b`,
			Replacement: `***MASKED_GITHUB_TOKEN***`,
			Description: "GitHub tokens",
		},
		"slack_token": {
			Pattern:     `\bxox[baprs]-[A-Za-z0-9-]{10,72}\b`,
			Replacement: `***MASKED_SLACK_TOKEN***`,
			Description: "Slack tokens",
		},
		"email": {
			Pattern:     `\b[A-Za-z0-9._%+-]+@[A-Za-z0-9]+(?:[.-][A-Za-z0-9]+)*\.[A-Za-z]{2,63}\b`,
			Replacement: `***MASKED_EMAIL***`,
			Description: "Email addresses",
		},
	}
}

// patternGroups returns the predefined, ordered groups of masking
// patterns. Order matters: more specific rules run before the generic
// key=value sweeps so replacements stay labeled correctly.
func patternGroups() map[string][]string {
	return map[string][]string{
		"basic": {"api_key", "password"},
		"secrets": {
			"certificate", "api_key", "secret_key", "private_key",
			"token", "bearer_header", "url_password", "password",
		},
		"cloud": {"aws_access_key", "aws_secret_key", "api_key", "token"},
		"all": {
			"certificate", "api_key", "secret_key", "private_key",
			"token", "bearer_header", "url_password", "password",
			"ssh_key", "aws_access_key", "aws_secret_key",
			"github_token", "slack_token", "email",
		},
	}
}
