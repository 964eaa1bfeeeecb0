// Package cleanup enforces retention on the task-queue snapshot store.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/crewkit/squadron/ent"
	"github.com/crewkit/squadron/ent/taskqueueitem"
	"github.com/crewkit/squadron/pkg/config"
)

// Service periodically prunes task-queue rows that a commander disband
// never removed:
//   - terminal rows (completed, failed) past the terminal window
//   - live-looking rows from interrupted runs past the orphan window
//
// Deletes are idempotent and time-based only, so the sweep is safe to
// run alongside a live orchestrator: the windows sit far beyond any
// orchestration's lifespan.
type Service struct {
	cfg    config.RetentionConfig
	client *ent.Client
	log    *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a retention sweeper over the given Ent client.
func NewService(cfg config.RetentionConfig, client *ent.Client) *Service {
	return &Service{
		cfg:    cfg,
		client: client,
		log:    slog.Default().With("component", "cleanup"),
	}
}

// Start launches the background sweep loop. An immediate sweep runs
// first so restart residue is visible in the logs right away.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.log.Info("Retention sweeper started",
		"terminal_retention", s.cfg.TerminalRetention,
		"orphan_retention", s.cfg.OrphanRetention,
		"interval", s.cfg.SweepInterval)
}

// Stop signals the sweep loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.log.Info("Retention sweeper stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.sweep(ctx)

	ticker := time.NewTicker(s.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *Service) sweep(ctx context.Context) {
	s.pruneTerminal(ctx)
	s.pruneOrphans(ctx)
}

func (s *Service) pruneTerminal(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.TerminalRetention)
	n, err := s.client.TaskQueueItem.Delete().
		Where(
			taskqueueitem.StatusIn(
				taskqueueitem.StatusCompleted,
				taskqueueitem.StatusFailed,
			),
			taskqueueitem.EnqueuedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		s.log.Error("Retention: terminal prune failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Info("Retention: pruned terminal rows", "count", n)
	}
}

func (s *Service) pruneOrphans(ctx context.Context) {
	cutoff := time.Now().Add(-s.cfg.OrphanRetention)
	n, err := s.client.TaskQueueItem.Delete().
		Where(
			taskqueueitem.StatusIn(
				taskqueueitem.StatusPending,
				taskqueueitem.StatusWaiting,
				taskqueueitem.StatusInProgress,
			),
			taskqueueitem.EnqueuedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		s.log.Error("Retention: orphan prune failed", "error", err)
		return
	}
	if n > 0 {
		s.log.Warn("Retention: pruned orphaned rows from an interrupted run", "count", n)
	}
}
