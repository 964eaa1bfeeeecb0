package config

import (
	"fmt"
	"os"

	"github.com/crewkit/squadron/pkg/models"
)

// RuntimeConfig tells the CLI process runtime which binary to spawn for
// each model tier.
type RuntimeConfig struct {
	// Binaries maps model tier to executable path or name on PATH.
	Binaries map[models.Model]string

	// ExtraArgs are passed to every spawn before the prompt.
	ExtraArgs []string
}

// loadRuntimeConfig resolves per-model binaries from the environment.
// A single CLI_BINARY serves all tiers unless a per-tier override
// (CLI_BINARY_OPUS etc.) is set.
func loadRuntimeConfig() (*RuntimeConfig, error) {
	base := getEnvOrDefault("CLI_BINARY", "aicli")

	binaries := map[models.Model]string{
		models.ModelOpus:   base,
		models.ModelSonnet: base,
		models.ModelHaiku:  base,
	}
	for m, key := range map[models.Model]string{
		models.ModelOpus:   "CLI_BINARY_OPUS",
		models.ModelSonnet: "CLI_BINARY_SONNET",
		models.ModelHaiku:  "CLI_BINARY_HAIKU",
	} {
		if v := os.Getenv(key); v != "" {
			binaries[m] = v
		}
	}

	for m, bin := range binaries {
		if bin == "" {
			return nil, fmt.Errorf("no CLI binary configured for model %s", m)
		}
	}

	return &RuntimeConfig{Binaries: binaries}, nil
}

// Binary returns the executable for the given model tier.
func (c *RuntimeConfig) Binary(m models.Model) (string, error) {
	bin, ok := c.Binaries[m]
	if !ok || bin == "" {
		return "", fmt.Errorf("no CLI binary configured for model %s", m)
	}
	return bin, nil
}
