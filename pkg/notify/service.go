package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/models"
)

const (
	postTimeout     = 10 * time.Second
	defaultDedupTTL = time.Hour
)

// Service posts one Slack message per terminal orchestration.
// Nil-safe: all methods are no-ops when the service is nil.
type Service struct {
	client *Client
	dedup  *dedupCache
	logger *slog.Logger
}

// NewService creates a new Slack notification service.
// Returns nil if Token or Channel is empty.
func NewService(cfg config.SlackConfig) *Service {
	if cfg.Token == "" || cfg.Channel == "" {
		return nil
	}
	return newService(NewClient(cfg.Token, cfg.Channel))
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client) *Service {
	return newService(client)
}

func newService(client *Client) *Service {
	return &Service{
		client: client,
		dedup:  newDedupCache(defaultDedupTTL),
		logger: slog.Default().With("component", "notify"),
	}
}

// OrchestrationFinished sends a terminal status notification. Repeated
// terminal events for the same orchestration within the dedup window
// post once. Fail-open: errors are logged, never returned.
func (s *Service) OrchestrationFinished(ctx context.Context, orch models.Orchestration) {
	if s == nil {
		return
	}
	if !orch.Phase.IsTerminal() {
		return
	}

	if !s.dedup.shouldPost(fingerprint(orch)) {
		s.logger.Debug("Duplicate terminal notification suppressed",
			"commander_id", orch.CommanderID,
			"phase", orch.Phase)
		return
	}

	blocks := BuildFinishedMessage(orch)
	if err := s.client.PostMessage(ctx, blocks, postTimeout); err != nil {
		s.logger.Error("Failed to send Slack notification",
			"commander_id", orch.CommanderID,
			"phase", orch.Phase,
			"error", err)
	}
}
