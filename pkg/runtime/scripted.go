package runtime

import (
	"context"
	"strings"
	"sync"

	"github.com/crewkit/squadron/pkg/models"
)

// Script pairs a prompt matcher with the events a fake process should
// emit. The first matching script wins; unmatched prompts complete with
// a canned result.
type Script struct {
	// Match selects prompts this script answers.
	Match func(prompt string) bool

	// Events produces the stream for the task, already bound to its ID.
	Events func(taskID string) []Event
}

// MatchContains builds a matcher on substring containment.
func MatchContains(substr string) func(string) bool {
	return func(prompt string) bool { return strings.Contains(prompt, substr) }
}

// StartRecord captures one Start call for assertions.
type StartRecord struct {
	TaskID string
	Model  models.Model
	Dir    string
	Prompt string
}

// ScriptedRuntime is a Runtime whose processes are scripts instead of
// child processes. Events for a task are delivered in order on a
// dedicated goroutine, mirroring the real runtime's serialization and
// cancellation semantics.
type ScriptedRuntime struct {
	mu       sync.Mutex
	handler  Callback
	scripts  []Script
	started  []StartRecord
	tasks    map[string]*scriptedTask
	released bool
	pending  []*scriptedTask
}

type scriptedTask struct {
	id        string
	events    []Event
	cancelled chan struct{}
	once      sync.Once
}

// NewScriptedRuntime creates a scripted runtime with no scripts: every
// task completes immediately with the result "done".
func NewScriptedRuntime(scripts ...Script) *ScriptedRuntime {
	return &ScriptedRuntime{
		scripts: scripts,
		tasks:   make(map[string]*scriptedTask),
	}
}

// OnEvent registers the handler, as on the real runtime.
func (s *ScriptedRuntime) OnEvent(h Callback) {
	s.handler = h
}

// Hold stops tasks from running until Release, so tests can observe
// intermediate states with multiple tasks in flight.
func (s *ScriptedRuntime) Hold() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.released = false
	s.pending = nil
}

// Release runs every held task and lets future tasks run immediately.
func (s *ScriptedRuntime) Release() {
	s.mu.Lock()
	held := s.pending
	s.pending = nil
	s.released = true
	s.mu.Unlock()

	for _, t := range held {
		go s.run(t)
	}
}

// Step runs the currently held tasks while keeping future ones held,
// advancing the pipeline one stage at a time.
func (s *ScriptedRuntime) Step() {
	s.mu.Lock()
	held := s.pending
	s.pending = nil
	s.mu.Unlock()

	for _, t := range held {
		go s.run(t)
	}
}

// Held reports how many started tasks are currently held.
func (s *ScriptedRuntime) Held() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// Start records the call and plays the matching script on a goroutine.
func (s *ScriptedRuntime) Start(_ context.Context, taskID string, model models.Model, dir, prompt string) {
	t := &scriptedTask{
		id:        taskID,
		events:    s.eventsFor(taskID, prompt),
		cancelled: make(chan struct{}),
	}

	s.mu.Lock()
	s.started = append(s.started, StartRecord{TaskID: taskID, Model: model, Dir: dir, Prompt: prompt})
	s.tasks[taskID] = t
	hold := !s.released
	if hold {
		s.pending = append(s.pending, t)
	}
	s.mu.Unlock()

	if !hold {
		go s.run(t)
	}
}

func (s *ScriptedRuntime) eventsFor(taskID, prompt string) []Event {
	for _, script := range s.scripts {
		if script.Match(prompt) {
			return script.Events(taskID)
		}
	}
	return []Event{CompletedEvent{TaskID: taskID, Result: "done"}}
}

func (s *ScriptedRuntime) run(t *scriptedTask) {
	for _, ev := range t.events {
		select {
		case <-t.cancelled:
			s.finish(t, FailedEvent{TaskID: t.id, Err: ErrCancelled})
			return
		default:
		}

		s.deliver(ev)
		switch ev.(type) {
		case CompletedEvent, FailedEvent:
			s.drop(t.id)
			return
		}
	}
	// Script ended without a terminal event: behave like a process that
	// exited silently.
	select {
	case <-t.cancelled:
		s.finish(t, FailedEvent{TaskID: t.id, Err: ErrCancelled})
	default:
		s.finish(t, FailedEvent{TaskID: t.id, Err: errProcessEnded})
	}
}

var errProcessEnded = &ProcessError{Message: "process exited without a result"}

func (s *ScriptedRuntime) finish(t *scriptedTask, ev Event) {
	t.once.Do(func() {
		s.deliver(ev)
		s.drop(t.id)
	})
}

func (s *ScriptedRuntime) deliver(ev Event) {
	if s.handler != nil {
		s.handler(ev)
	}
}

func (s *ScriptedRuntime) drop(taskID string) {
	s.mu.Lock()
	delete(s.tasks, taskID)
	s.mu.Unlock()
}

// CancelProcess marks the task cancelled. Held tasks fail immediately
// with ErrCancelled; running tasks fail before their next event.
func (s *ScriptedRuntime) CancelProcess(taskID string) error {
	s.mu.Lock()
	t, ok := s.tasks[taskID]
	var held bool
	if ok {
		for i, p := range s.pending {
			if p.id == taskID {
				s.pending = append(s.pending[:i], s.pending[i+1:]...)
				held = true
				break
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		return ErrUnknownTask
	}

	close(t.cancelled)
	if held {
		go s.finish(t, FailedEvent{TaskID: t.id, Err: ErrCancelled})
	}
	return nil
}

// CancelAll cancels every live task.
func (s *ScriptedRuntime) CancelAll() {
	s.mu.Lock()
	ids := make([]string, 0, len(s.tasks))
	for id := range s.tasks {
		ids = append(ids, id)
	}
	s.mu.Unlock()

	for _, id := range ids {
		_ = s.CancelProcess(id)
	}
}

// Started returns a copy of all Start calls in order.
func (s *ScriptedRuntime) Started() []StartRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StartRecord, len(s.started))
	copy(out, s.started)
	return out
}
