// Package orchestrator coordinates multi-step coding tasks end to end:
// decomposition of a user prompt into sub-tasks, dependency-aware
// wave execution on pooled sub-agents, and synthesis of the results
// into one final answer.
//
// The Orchestrator is the single owner of all orchestration state. One
// facade mutex guards the orchestrations map, sub-task statuses, the
// scheduler, the concurrency controller, and the pool; runtime event
// dispatch goroutines and timer callbacks acquire it before touching
// anything. No lock is held while waiting on child output, timers, or
// collaborator I/O.
package orchestrator

import (
	"context"
	"errors"
	"log/slog"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/controller"
	"github.com/crewkit/squadron/pkg/lifecycle"
	"github.com/crewkit/squadron/pkg/models"
	"github.com/crewkit/squadron/pkg/planner"
	"github.com/crewkit/squadron/pkg/pool"
	"github.com/crewkit/squadron/pkg/runtime"
	"github.com/crewkit/squadron/pkg/scheduler"
	"github.com/crewkit/squadron/pkg/taskqueue"
)

var (
	// ErrEmptyPrompt rejects submissions with nothing to do.
	ErrEmptyPrompt = errors.New("empty prompt")

	// ErrUnknownModel rejects submissions outside the supported model set.
	ErrUnknownModel = errors.New("unknown model")

	// ErrWorkspaceNotConfigured rejects submissions before a workspace
	// directory is set; sub-agents have nowhere to run.
	ErrWorkspaceNotConfigured = errors.New("workspace not configured")

	// ErrDirectExecution is returned by Submit when the decomposition
	// gate decides the prompt is a single-step job. The caller should
	// run it directly instead of paying for orchestration.
	ErrDirectExecution = errors.New("prompt below decomposition threshold")

	// ErrUnknownOrchestration is returned for commander IDs this
	// orchestrator does not hold.
	ErrUnknownOrchestration = errors.New("unknown orchestration")
)

// Sink receives host-facing events (phase changes, sub-task and agent
// transitions, CLI output, approval requests). Implementations must not
// block; delivery is best-effort and a nil Sink is valid.
type Sink interface {
	Publish(env models.Envelope)
}

// Notifier is told about terminal orchestrations. Implementations are
// expected to be fail-open; a nil Notifier is valid.
type Notifier interface {
	OrchestrationFinished(ctx context.Context, orch models.Orchestration)
}

// ─────────────────────────────────────────────────────────────
// Internal types
// ─────────────────────────────────────────────────────────────

// taskKind tells the event handler what a runtime task ID stands for.
type taskKind int

const (
	taskPlan taskKind = iota
	taskSubTask
	taskSynthesis
	taskDirect
)

// directIndex is the controller index used for direct-execution
// admissions, which have no sub-task behind them.
const directIndex = -1

// taskRef resolves a runtime task ID back to orchestration state.
type taskRef struct {
	kind        taskKind
	commanderID string
	index       int
}

// directRun is the fallback path's bookkeeping: two sub-agents and the
// original prompt executed as a single task.
type directRun struct {
	commanderID string
	prompt      string
	model       models.Model
	agentID     string
	standbyID   string
	taskID      string
	result      string
	err         string
	done        bool
}

// storeOp is one queued snapshot-store write.
type storeOp struct {
	name string
	fn   func(context.Context) error
}

// storeWriteTimeout bounds a single snapshot-store write.
const storeWriteTimeout = 5 * time.Second

// Orchestrator is the pipeline facade. Construct with New, then drive
// it with Submit and Cancel; runtime events feed back through the
// registered handler.
type Orchestrator struct {
	mu sync.Mutex

	log       *slog.Logger
	cfg       config.OrchestratorConfig
	workspace string

	runtime  runtime.Runtime
	store    taskqueue.Store
	sink     Sink
	notifier Notifier

	scheduler  *scheduler.Scheduler
	controller *controller.Controller
	manager    *lifecycle.Manager
	pool       *pool.Pool
	cleanup    *lifecycle.CleanupManager
	monitor    *lifecycle.Monitor

	orchestrations map[string]*models.Orchestration
	commanders     map[string]*models.Commander
	directs        map[string]*directRun
	tasks          map[string]taskRef

	seq int64

	ctx       context.Context
	cancelCtx context.CancelFunc

	storeCh     chan storeOp
	storeDone   chan struct{}
	storeClosed bool

	// afterFunc schedules deferred work (intro delay, disband). Tests
	// replace it to run callbacks inline.
	afterFunc func(d time.Duration, fn func())

	// randomRole picks roles for the direct-execution fallback.
	randomRole func() models.Role
}

// New wires a complete orchestrator over the given runtime. Store,
// sink, and notifier may be nil; the corresponding concerns are
// silently skipped. The runtime's event handler is registered here, so
// New must run before the first Start on it.
func New(cfg *config.Config, rt runtime.Runtime, store taskqueue.Store, sink Sink, notifier Notifier) *Orchestrator {
	log := slog.Default().With("component", "orchestrator")

	pipelineCfg := cfg.Orchestrator
	if pipelineCfg == nil {
		pipelineCfg = config.DefaultOrchestratorConfig()
	}
	poolCfg := cfg.Pool
	if poolCfg == nil {
		poolCfg = config.DefaultPoolConfig()
	}
	cleanupCfg := cfg.Cleanup
	if cleanupCfg == nil {
		cleanupCfg = config.DefaultCleanupConfig()
	}
	monitorCfg := cfg.Monitor
	if monitorCfg == nil {
		monitorCfg = config.DefaultMonitorConfig()
	}

	ctx, cancel := context.WithCancel(context.Background())

	manager := lifecycle.NewManager(lifecycle.NewTransitionLog(0))
	o := &Orchestrator{
		log:            log,
		cfg:            *pipelineCfg,
		workspace:      cfg.Workspace,
		runtime:        rt,
		store:          store,
		sink:           sink,
		notifier:       notifier,
		scheduler:      scheduler.New(log),
		manager:        manager,
		pool:           pool.New(*poolCfg, manager),
		orchestrations: make(map[string]*models.Orchestration),
		commanders:     make(map[string]*models.Commander),
		directs:        make(map[string]*directRun),
		tasks:          make(map[string]taskRef),
		ctx:            ctx,
		cancelCtx:      cancel,
		storeCh:        make(chan storeOp, 256),
		storeDone:      make(chan struct{}),
		afterFunc: func(d time.Duration, fn func()) {
			time.AfterFunc(d, fn)
		},
		randomRole: func() models.Role {
			roles := models.AllRoles()
			return roles[rand.Intn(len(roles))]
		},
	}
	o.controller = controller.New(log, o.startAdmitted, manager.BusyCount)
	o.cleanup = lifecycle.NewCleanupManager(*cleanupCfg, manager)
	o.cleanup.AddSink(o)
	o.monitor = lifecycle.NewMonitor(*monitorCfg, manager)

	if store != nil {
		go o.storeLoop()
	}

	rt.OnEvent(o.handleEvent)
	return o
}

// SetPressure forwards a recomputed pressure level to the controller
// and pool under the facade lock. The cleanup manager calls this from
// its sweep goroutine.
func (o *Orchestrator) SetPressure(p models.Pressure) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.controller.SetPressure(p)
	o.pool.SetPressure(p)
}

// Monitor exposes the passive state monitor for reports and startup.
func (o *Orchestrator) Monitor() *lifecycle.Monitor {
	return o.monitor
}

// Cleanup exposes the cleanup manager for startup and shutdown.
func (o *Orchestrator) Cleanup() *lifecycle.CleanupManager {
	return o.cleanup
}

// ShouldDecompose reports whether the prompt clears the multi-step
// gate. Deterministic; safe to call without holding any state.
func (o *Orchestrator) ShouldDecompose(prompt string) bool {
	return planner.ShouldDecompose(prompt)
}

// ─────────────────────────────────────────────────────────────
// Submit — entry point
// ─────────────────────────────────────────────────────────────

// Submit accepts a prompt for orchestration and returns the commander
// ID owning it. It samples resource pressure, creates the commander
// and orchestration records, and schedules phase 1 after the intro
// delay. The pipeline itself runs asynchronously; progress surfaces
// through the sink and the status views.
func (o *Orchestrator) Submit(prompt string, model models.Model) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	if !model.IsValid() {
		return "", ErrUnknownModel
	}
	if o.workspace == "" {
		return "", ErrWorkspaceNotConfigured
	}
	if !planner.ShouldDecompose(prompt) {
		return "", ErrDirectExecution
	}

	// Refresh pressure before sizing anything. Publish fans out to the
	// controller and pool through SetPressure, so no lock is held yet.
	pressure := o.cleanup.Publish()

	o.mu.Lock()
	defer o.mu.Unlock()

	now := time.Now()
	cmd := &models.Commander{
		ID:        uuid.NewString(),
		Model:     model,
		Status:    models.CommanderActive,
		CreatedAt: now,
	}
	orch := &models.Orchestration{
		CommanderID: cmd.ID,
		Prompt:      prompt,
		Model:       model,
		Phase:       models.PhaseDecomposing,
		CreatedAt:   now,
	}
	o.commanders[cmd.ID] = cmd
	o.orchestrations[cmd.ID] = orch

	o.log.Info("Orchestration submitted",
		"commander_id", cmd.ID,
		"model", model,
		"pressure", pressure,
		"limit", o.controller.EffectiveLimit())
	o.publishPhase(orch)

	commanderID := cmd.ID
	o.afterFunc(o.cfg.IntroDelay, func() {
		o.beginDecomposition(commanderID)
	})
	return cmd.ID, nil
}

// ─────────────────────────────────────────────────────────────
// Cancel — user-initiated teardown
// ─────────────────────────────────────────────────────────────

// Cancel aborts the orchestration: phase flips to failed, every
// in-flight CLI process is terminated, sub-agents go back to the pool,
// and scheduler state is dropped. Termination is asynchronous; the
// runtime's trailing failure events are ignored because their task
// refs are gone by the time they arrive. Cancelling an already
// terminal orchestration is a no-op.
func (o *Orchestrator) Cancel(commanderID string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	orch, ok := o.orchestrations[commanderID]
	if !ok {
		if run, ok := o.directs[commanderID]; ok {
			o.cancelDirect(run)
			return nil
		}
		return ErrUnknownOrchestration
	}
	if orch.Phase.IsTerminal() {
		return nil
	}

	o.log.Info("Orchestration cancelled",
		"commander_id", commanderID,
		"phase", orch.Phase)

	// Kill every child belonging to this commander: the planner during
	// decomposition, sub-tasks during execution, the commander itself
	// during synthesis. Dropping the refs first makes the trailing
	// events unroutable.
	for taskID, ref := range o.tasks {
		if ref.commanderID != commanderID {
			continue
		}
		delete(o.tasks, taskID)
		if err := o.runtime.CancelProcess(taskID); err != nil {
			o.log.Debug("Cancel of child process failed", "task_id", taskID, "error", err)
		}
	}

	now := time.Now()
	orch.Phase = models.PhaseFailed
	orch.CompletedAt = &now

	for _, st := range orch.SubTasks {
		if st.Status.IsTerminal() {
			continue
		}
		if st.AgentID != "" {
			// In-progress agents first settle out of their busy state;
			// waiting ones are still idle and pool directly.
			if st.Status == models.SubTaskInProgress {
				o.finishAgent(st.AgentID, lifecycle.EventCompleted)
			}
			o.pool.Release(st.AgentID)
		}
		st.Status = models.SubTaskFailed
		st.Error = runtime.ErrCancelled.Error()
		st.CompletedAt = &now
		o.publishSubTask(orch, st)
	}

	o.scheduler.RemoveOrchestration(commanderID)
	o.controller.Reset(commanderID)

	if cmd, ok := o.commanders[commanderID]; ok {
		cmd.Status = models.CommanderError
	}

	o.publishPhase(orch)
	o.storeWrite("remove", func(ctx context.Context) error {
		return o.store.Remove(ctx, commanderID)
	})
	o.notifyFinished(orch)
	o.scheduleDisband(commanderID)
	return nil
}

// ─────────────────────────────────────────────────────────────
// Disband — deferred record teardown
// ─────────────────────────────────────────────────────────────

// scheduleDisband arms the deferred teardown of a terminal commander.
// Callers hold the facade lock.
func (o *Orchestrator) scheduleDisband(commanderID string) {
	o.afterFunc(o.cfg.DisbandDelay, func() {
		o.Disband(commanderID)
	})
}

// Disband removes the commander and its orchestration records and
// destroys any agents still parented to it. Pooled agents stay: they
// belong to the pool once released. Disbanding an unknown or still
// active commander is a no-op.
func (o *Orchestrator) Disband(commanderID string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	cmd, ok := o.commanders[commanderID]
	if !ok || cmd.Status == models.CommanderActive {
		return
	}

	destroyed := 0
	for _, agentID := range cmd.SubAgentIDs {
		agent, ok := o.manager.Get(agentID)
		if !ok || agent.State == models.AgentPooled {
			continue
		}
		if err := o.manager.Destroy(agentID); err != nil {
			o.log.Warn("Failed to destroy agent on disband", "agent_id", agentID, "error", err)
			continue
		}
		destroyed++
	}

	cmd.Status = models.CommanderDisbanded
	delete(o.commanders, commanderID)
	delete(o.orchestrations, commanderID)
	delete(o.directs, commanderID)

	o.log.Info("Commander disbanded",
		"commander_id", commanderID,
		"agents_destroyed", destroyed)
}

// ─────────────────────────────────────────────────────────────
// Shutdown
// ─────────────────────────────────────────────────────────────

// Shutdown cancels every live orchestration, terminates all child
// processes, and drains the snapshot-store queue. The orchestrator
// accepts no work afterwards.
func (o *Orchestrator) Shutdown() {
	o.mu.Lock()
	var active []string
	for id, orch := range o.orchestrations {
		if !orch.Phase.IsTerminal() {
			active = append(active, id)
		}
	}
	for id, run := range o.directs {
		if !run.done {
			active = append(active, id)
		}
	}
	o.mu.Unlock()

	for _, id := range active {
		if err := o.Cancel(id); err != nil && !errors.Is(err, ErrUnknownOrchestration) {
			o.log.Warn("Cancel during shutdown failed", "commander_id", id, "error", err)
		}
	}

	o.runtime.CancelAll()
	o.cancelCtx()

	o.mu.Lock()
	closeStore := o.store != nil && !o.storeClosed
	o.storeClosed = true
	o.mu.Unlock()
	if closeStore {
		close(o.storeCh)
		<-o.storeDone
	}
}

// ─────────────────────────────────────────────────────────────
// Agent helpers
// ─────────────────────────────────────────────────────────────

// finishAgent drives an agent to the given terminal event, resuming it
// out of a user-interaction state first when necessary. Invalid
// transitions are logged by the manager and otherwise ignored: a
// misbehaving stream must never corrupt agent state.
func (o *Orchestrator) finishAgent(agentID string, event lifecycle.Event) {
	agent, ok := o.manager.Get(agentID)
	if !ok {
		return
	}
	if agent.State.IsWaitingForUser() {
		if _, err := o.manager.Transition(agentID, lifecycle.EventResumed); err != nil {
			return
		}
	}
	if _, err := o.manager.Transition(agentID, event); err != nil {
		o.log.Debug("Terminal agent transition rejected",
			"agent_id", agentID,
			"event", event,
			"error", err)
	}
}

// trackAgent records pool-acquired agents on their commander so disband
// can find strays later.
func (o *Orchestrator) trackAgent(commanderID, agentID string) {
	cmd, ok := o.commanders[commanderID]
	if !ok {
		return
	}
	for _, id := range cmd.SubAgentIDs {
		if id == agentID {
			return
		}
	}
	cmd.SubAgentIDs = append(cmd.SubAgentIDs, agentID)
}
