// Package runtime supervises the external AI CLI processes that execute
// sub-tasks. Each Start spawns one child in the task's working
// directory, parses its line-oriented JSON stdout into the typed Event
// union, and delivers every event through a single per-task dispatch
// goroutine so handlers observe a serialized, at-most-once stream.
package runtime

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"sync"
	"sync/atomic"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/models"
)

var (
	// ErrCancelled is the failure cause delivered after CancelProcess.
	// Once a task is cancelled, no other event for it is delivered.
	ErrCancelled = errors.New("task cancelled")

	// ErrUnknownTask is returned when cancelling a task that is not
	// running.
	ErrUnknownTask = errors.New("unknown task")
)

// Callback receives runtime events. Calls are serialized per task; a
// slow callback applies backpressure to that task's stream only.
type Callback func(Event)

// Masker scrubs secrets from output lines before they leave the
// process boundary.
type Masker interface {
	Mask(string) string
}

// Runtime is the surface the orchestrator drives. CLIRuntime is the
// real implementation; ScriptedRuntime stands in for tests.
type Runtime interface {
	// OnEvent registers the event handler. Must be called before the
	// first Start.
	OnEvent(Callback)

	// Start spawns the CLI for one task. It never blocks on the child
	// and never fails synchronously: spawn errors arrive as a
	// FailedEvent through the handler.
	Start(ctx context.Context, taskID string, model models.Model, dir, prompt string)

	// CancelProcess terminates the task's child. The handler receives
	// exactly one FailedEvent carrying ErrCancelled; events already in
	// flight are suppressed.
	CancelProcess(taskID string) error

	// CancelAll cancels every running task, for shutdown.
	CancelAll()
}

// task is one supervised child process.
type task struct {
	id        string
	cancel    context.CancelFunc
	events    chan Event
	cancelled atomic.Bool
}

// CLIRuntime spawns one external CLI process per task.
type CLIRuntime struct {
	log     *slog.Logger
	cfg     config.RuntimeConfig
	masker  Masker
	handler Callback

	mu    sync.Mutex
	tasks map[string]*task
	wg    sync.WaitGroup
}

// eventBuffer bounds each task's in-flight event queue. Readers block
// when the handler falls this far behind, which in turn throttles the
// child through its stdout pipe.
const eventBuffer = 256

// New creates a runtime. masker may be nil when no masking is wanted.
func New(cfg config.RuntimeConfig, masker Masker) *CLIRuntime {
	return &CLIRuntime{
		log:    slog.Default().With("component", "runtime"),
		cfg:    cfg,
		masker: masker,
		tasks:  make(map[string]*task),
	}
}

// OnEvent registers the handler all task dispatchers deliver to.
func (r *CLIRuntime) OnEvent(h Callback) {
	r.handler = h
}

// Start spawns the configured binary for the model with the prompt as
// its final argument, working directory set to dir. Stdout lines are
// parsed into events; stderr lines surface as output events.
func (r *CLIRuntime) Start(ctx context.Context, taskID string, model models.Model, dir, prompt string) {
	taskCtx, cancel := context.WithCancel(ctx)
	t := &task{
		id:     taskID,
		cancel: cancel,
		events: make(chan Event, eventBuffer),
	}

	r.mu.Lock()
	r.tasks[taskID] = t
	r.mu.Unlock()

	r.wg.Add(1)
	go r.dispatch(t)

	bin, err := r.cfg.Binary(model)
	if err != nil {
		r.failSpawn(t, err)
		return
	}

	args := append([]string{}, r.cfg.ExtraArgs...)
	args = append(args, "--model", string(model), prompt)
	cmd := exec.CommandContext(taskCtx, bin, args...)
	cmd.Dir = dir

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		r.failSpawn(t, err)
		return
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		r.failSpawn(t, err)
		return
	}

	if err := cmd.Start(); err != nil {
		r.failSpawn(t, fmt.Errorf("spawn %s: %w", bin, err))
		return
	}

	r.log.Info("Process started",
		"task_id", taskID,
		"binary", bin,
		"model", model,
		"pid", cmd.Process.Pid)

	var readers sync.WaitGroup
	readers.Add(2)
	go func() {
		defer readers.Done()
		r.readStdout(t, stdout)
	}()
	go func() {
		defer readers.Done()
		r.readStderr(t, stderr)
	}()

	// Waiter: reap the child after both pipes drain, then close the
	// event stream with the exit disposition.
	go func() {
		readers.Wait()
		err := cmd.Wait()
		t.events <- exitEvent{TaskID: taskID, err: err}
		close(t.events)
	}()
}

// failSpawn short-circuits a task that never got a child process.
func (r *CLIRuntime) failSpawn(t *task, err error) {
	r.log.Error("Spawn failed", "task_id", t.id, "error", err)
	t.events <- FailedEvent{TaskID: t.id, Err: err}
	close(t.events)
}

// dispatch is the single delivery goroutine for one task. It filters
// duplicates after a terminal event and everything after cancellation,
// then unregisters the task when the stream ends.
func (r *CLIRuntime) dispatch(t *task) {
	defer r.wg.Done()
	defer func() {
		r.mu.Lock()
		delete(r.tasks, t.id)
		r.mu.Unlock()
	}()

	terminal := false
	for ev := range t.events {
		if terminal {
			continue
		}

		if exit, ok := ev.(exitEvent); ok {
			terminal = true
			switch {
			case t.cancelled.Load():
				r.deliver(FailedEvent{TaskID: t.id, Err: ErrCancelled})
			case exit.err != nil:
				r.deliver(FailedEvent{TaskID: t.id, Err: fmt.Errorf("process exited: %w", exit.err)})
			default:
				r.deliver(FailedEvent{TaskID: t.id, Err: errors.New("process exited without a result")})
			}
			continue
		}

		if t.cancelled.Load() {
			continue
		}

		switch ev.(type) {
		case CompletedEvent, FailedEvent:
			terminal = true
		}
		r.deliver(ev)
	}
}

func (r *CLIRuntime) deliver(ev Event) {
	if r.handler != nil {
		r.handler(ev)
	}
}

func (r *CLIRuntime) readStdout(t *task, pipe io.Reader) {
	scanner := bufio.NewScanner(pipe)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		ev := parseLine(t.id, scanner.Text())
		if out, ok := ev.(OutputEvent); ok {
			out.Line = r.mask(out.Line)
			ev = out
		}
		t.events <- ev
	}
}

func (r *CLIRuntime) readStderr(t *task, pipe io.Reader) {
	scanner := bufio.NewScanner(pipe)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		t.events <- OutputEvent{TaskID: t.id, Line: r.mask(scanner.Text())}
	}
}

func (r *CLIRuntime) mask(line string) string {
	if r.masker == nil {
		return line
	}
	return r.masker.Mask(line)
}

// CancelProcess kills the task's child. The exit path delivers the
// single ErrCancelled failure; wire events that raced the cancel are
// dropped.
func (r *CLIRuntime) CancelProcess(taskID string) error {
	r.mu.Lock()
	t, ok := r.tasks[taskID]
	r.mu.Unlock()
	if !ok {
		return fmt.Errorf("cancel %s: %w", taskID, ErrUnknownTask)
	}

	if t.cancelled.CompareAndSwap(false, true) {
		r.log.Info("Cancelling process", "task_id", taskID)
		t.cancel()
	}
	return nil
}

// CancelAll cancels every running task. Used on shutdown; each task
// still delivers its ErrCancelled failure so state settles normally.
func (r *CLIRuntime) CancelAll() {
	r.mu.Lock()
	tasks := make([]*task, 0, len(r.tasks))
	for _, t := range r.tasks {
		tasks = append(tasks, t)
	}
	r.mu.Unlock()

	for _, t := range tasks {
		if t.cancelled.CompareAndSwap(false, true) {
			t.cancel()
		}
	}
}

// Wait blocks until every task's dispatcher has finished. Call after
// CancelAll during shutdown.
func (r *CLIRuntime) Wait() {
	r.wg.Wait()
}

// Running reports how many tasks have live dispatchers.
func (r *CLIRuntime) Running() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.tasks)
}
