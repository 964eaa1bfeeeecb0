// Squadron orchestrator server — exposes the HTTP control API, streams
// progress over WebSockets, and supervises the sub-agent pool.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/crewkit/squadron/pkg/api"
	"github.com/crewkit/squadron/pkg/cleanup"
	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/database"
	"github.com/crewkit/squadron/pkg/events"
	"github.com/crewkit/squadron/pkg/masking"
	"github.com/crewkit/squadron/pkg/notify"
	"github.com/crewkit/squadron/pkg/orchestrator"
	"github.com/crewkit/squadron/pkg/runtime"
	"github.com/crewkit/squadron/pkg/taskqueue"
	"github.com/crewkit/squadron/pkg/version"
)

// orchestratorStopTimeout bounds the wait for live orchestrations to
// cancel during shutdown. CancelAll kills child processes outright, so
// this only covers bookkeeping and the store drain.
const orchestratorStopTimeout = 30 * time.Second

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	// Parse command-line flags
	envFile := flag.String("env-file",
		getEnv("ENV_FILE", ".env"),
		"Path to environment file")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(*envFile); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", *envFile, "error", err)
	} else {
		slog.Info("Loaded environment", "path", *envFile)
	}

	ctx := context.Background()

	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting squadron",
		"version", version.Full(),
		"http_port", cfg.HTTP.Port,
		"workspace", cfg.Workspace)

	// 2. Select the snapshot store: PostgreSQL when configured, in-memory otherwise
	var store taskqueue.Store
	var dbClient *database.Client
	if cfg.Database.Enabled() {
		dbClient, err = database.NewClient(ctx, cfg.Database)
		if err != nil {
			slog.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := dbClient.Close(); err != nil {
				slog.Error("Error closing database client", "error", err)
			}
		}()
		store = taskqueue.NewEntStore(dbClient.Client)
		slog.Info("Connected to PostgreSQL snapshot store",
			"host", cfg.Database.Host,
			"database", cfg.Database.Database)
	} else {
		store = taskqueue.NewMemoryStore()
		slog.Info("Using in-memory snapshot store")
	}

	// 3. Surface work a previous run left unfinished
	if pending, err := store.ListPending(ctx); err != nil {
		slog.Warn("Could not list pending queue items", "error", err)
	} else if len(pending) > 0 {
		slog.Warn("Found sub-tasks from an interrupted run", "count", len(pending))
		for _, item := range pending {
			slog.Info("Interrupted sub-task",
				"commander_id", item.CommanderID,
				"sub_task_index", item.SubTaskIndex,
				"title", item.Title,
				"status", item.Status)
		}
	}

	// 4. Masking service and CLI runtime
	masker := masking.NewService(*cfg.Masking)
	rt := runtime.New(*cfg.Runtime, masker)

	// 5. Event hub for WebSocket streaming
	hub := events.NewHub(*cfg.Events)

	// 6. Optional Slack notifier
	var notifier orchestrator.Notifier
	if svc := notify.NewService(*cfg.Slack); svc != nil {
		notifier = svc
		slog.Info("Slack notifier enabled", "channel", cfg.Slack.Channel)
	}

	// 7. Wire the orchestrator and start its background loops
	orch := orchestrator.New(cfg, rt, store, hub, notifier)
	if err := orch.Monitor().Start(ctx); err != nil {
		slog.Error("Failed to start state monitor", "error", err)
		os.Exit(1)
	}
	if err := orch.Cleanup().Start(ctx); err != nil {
		slog.Error("Failed to start cleanup manager", "error", err)
		os.Exit(1)
	}

	// Retention sweeper prunes snapshot rows left behind by interrupted runs
	var sweeper *cleanup.Service
	if dbClient != nil {
		sweeper = cleanup.NewService(*cfg.Retention, dbClient.Client)
		sweeper.Start(ctx)
	}

	// 8. Start HTTP server (non-blocking)
	httpServer := api.NewServer(orch, hub, dbClient)
	errCh := make(chan error, 1)
	go func() {
		addr := ":" + cfg.HTTP.Port
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("Squadron started successfully")

	// 9. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 10. Graceful shutdown: stop intake first, then cancel live work
	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	done := make(chan struct{})
	go func() {
		orch.Shutdown()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Orchestrator stopped gracefully")
	case <-time.After(orchestratorStopTimeout):
		slog.Warn("Orchestrator shutdown timeout exceeded")
	}

	orch.Cleanup().Stop()
	orch.Monitor().Stop()
	if sweeper != nil {
		sweeper.Stop()
	}
	hub.Close()

	slog.Info("Shutdown complete")
}
