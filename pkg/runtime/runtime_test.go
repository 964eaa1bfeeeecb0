package runtime

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/models"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Event
	}{
		{
			name: "status",
			line: `{"type":"status","status":"thinking"}`,
			want: StatusEvent{TaskID: "t1", Status: "thinking"},
		},
		{
			name: "progress",
			line: `{"type":"progress","fraction":0.4}`,
			want: ProgressEvent{TaskID: "t1", Fraction: 0.4},
		},
		{
			name: "progress clamps above one",
			line: `{"type":"progress","fraction":1.7}`,
			want: ProgressEvent{TaskID: "t1", Fraction: 1},
		},
		{
			name: "progress clamps below zero",
			line: `{"type":"progress","fraction":-0.3}`,
			want: ProgressEvent{TaskID: "t1", Fraction: 0},
		},
		{
			name: "completed",
			line: `{"type":"completed","result":"all done"}`,
			want: CompletedEvent{TaskID: "t1", Result: "all done"},
		},
		{
			name: "dangerous command with string input",
			line: `{"type":"dangerous_command","tool":"Bash","input":"rm -rf ./cache","reason":"destructive"}`,
			want: DangerousCommandEvent{TaskID: "t1", Tool: "Bash", Input: "rm -rf ./cache", Reason: "destructive"},
		},
		{
			name: "dangerous command keeps structured input as JSON",
			line: `{"type":"dangerous_command","tool":"Write","input":{"path":"/etc/hosts"}}`,
			want: DangerousCommandEvent{TaskID: "t1", Tool: "Write", Input: `{"path":"/etc/hosts"}`},
		},
		{
			name: "ask user",
			line: `{"type":"ask_user","session_id":"s1","input":{"question":"which db?"}}`,
			want: AskUserEvent{TaskID: "t1", SessionID: "s1", Input: json.RawMessage(`{"question":"which db?"}`)},
		},
		{
			name: "plan review",
			line: `{"type":"plan_review","session_id":"s2","input":["step one"]}`,
			want: PlanReviewEvent{TaskID: "t1", SessionID: "s2", Input: json.RawMessage(`["step one"]`)},
		},
		{
			name: "plain text passes through",
			line: "compiling module...",
			want: OutputEvent{TaskID: "t1", Line: "compiling module..."},
		},
		{
			name: "unknown type degrades to output",
			line: `{"type":"telemetry","fraction":1}`,
			want: OutputEvent{TaskID: "t1", Line: `{"type":"telemetry","fraction":1}`},
		},
		{
			name: "broken JSON degrades to output",
			line: `{"type":"status",`,
			want: OutputEvent{TaskID: "t1", Line: `{"type":"status",`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLine("t1", tt.line))
		})
	}
}

func TestParseLineFailureCarriesProcessError(t *testing.T) {
	ev := parseLine("t1", `{"type":"failed","error":"compile error in main.go"}`)
	failed, ok := ev.(FailedEvent)
	require.True(t, ok)
	assert.EqualError(t, failed.Err, "compile error in main.go")

	// An empty error string still yields a usable message.
	ev = parseLine("t1", `{"type":"failed"}`)
	failed, ok = ev.(FailedEvent)
	require.True(t, ok)
	assert.EqualError(t, failed.Err, "process reported failure")
}

// ─────────────────────────────────────────────────────────────
// Live process tests
// ─────────────────────────────────────────────────────────────

// writeScript drops an executable stand-in for the CLI. The runtime
// invokes it as <bin> --model <tier> <prompt>; the preamble shifts the
// model flag away so $1 is the prompt.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fake-cli.sh")
	script := "#!/bin/sh\nshift 2\n" + body + "\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o755))
	return path
}

func newCLIRuntime(t *testing.T, bin string, masker Masker) (*CLIRuntime, chan Event) {
	t.Helper()
	cfg := config.RuntimeConfig{Binaries: map[models.Model]string{
		models.ModelOpus:   bin,
		models.ModelSonnet: bin,
		models.ModelHaiku:  bin,
	}}
	r := New(cfg, masker)
	events := make(chan Event, 64)
	r.OnEvent(func(ev Event) { events <- ev })
	t.Cleanup(func() {
		r.CancelAll()
		r.Wait()
	})
	return r, events
}

func nextEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case ev := <-events:
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestStartDeliversParsedEventStream(t *testing.T) {
	bin := writeScript(t, `
echo "running $1"
echo '{"type":"status","status":"working"}'
echo '{"type":"completed","result":"ok"}'`)
	r, events := newCLIRuntime(t, bin, nil)

	r.Start(context.Background(), "t1", models.ModelSonnet, t.TempDir(), "ping")

	assert.Equal(t, OutputEvent{TaskID: "t1", Line: "running ping"}, nextEvent(t, events))
	assert.Equal(t, StatusEvent{TaskID: "t1", Status: "working"}, nextEvent(t, events))
	assert.Equal(t, CompletedEvent{TaskID: "t1", Result: "ok"}, nextEvent(t, events))

	require.Eventually(t, func() bool {
		return r.Running() == 0
	}, 5*time.Second, 10*time.Millisecond)
}

func TestStartFailsWhenBinaryMissing(t *testing.T) {
	r, events := newCLIRuntime(t, filepath.Join(t.TempDir(), "no-such-cli"), nil)

	r.Start(context.Background(), "t1", models.ModelSonnet, t.TempDir(), "ping")

	failed, ok := nextEvent(t, events).(FailedEvent)
	require.True(t, ok)
	assert.False(t, errors.Is(failed.Err, ErrCancelled))
	assert.Contains(t, failed.Err.Error(), "no-such-cli")
}

func TestStartFailsForUnconfiguredModel(t *testing.T) {
	r := New(config.RuntimeConfig{Binaries: map[models.Model]string{}}, nil)
	events := make(chan Event, 4)
	r.OnEvent(func(ev Event) { events <- ev })

	r.Start(context.Background(), "t1", models.ModelOpus, t.TempDir(), "ping")

	failed, ok := nextEvent(t, events).(FailedEvent)
	require.True(t, ok)
	assert.Contains(t, failed.Err.Error(), "no CLI binary configured")
}

func TestNonZeroExitBecomesFailure(t *testing.T) {
	bin := writeScript(t, `
echo "about to die"
exit 3`)
	r, events := newCLIRuntime(t, bin, nil)

	r.Start(context.Background(), "t1", models.ModelSonnet, t.TempDir(), "ping")

	assert.Equal(t, OutputEvent{TaskID: "t1", Line: "about to die"}, nextEvent(t, events))
	failed, ok := nextEvent(t, events).(FailedEvent)
	require.True(t, ok)
	assert.Contains(t, failed.Err.Error(), "process exited")
}

func TestSilentExitBecomesFailure(t *testing.T) {
	bin := writeScript(t, "exit 0")
	r, events := newCLIRuntime(t, bin, nil)

	r.Start(context.Background(), "t1", models.ModelSonnet, t.TempDir(), "ping")

	failed, ok := nextEvent(t, events).(FailedEvent)
	require.True(t, ok)
	assert.Contains(t, failed.Err.Error(), "without a result")
}

func TestCancelProcessSuppressesInFlightEvents(t *testing.T) {
	// exec keeps the pipe in the killed process itself, so cancellation
	// closes the stream promptly.
	bin := writeScript(t, `
echo '{"type":"status","status":"working"}'
exec sleep 30`)
	r, events := newCLIRuntime(t, bin, nil)

	r.Start(context.Background(), "t1", models.ModelSonnet, t.TempDir(), "ping")
	require.Equal(t, StatusEvent{TaskID: "t1", Status: "working"}, nextEvent(t, events))

	require.NoError(t, r.CancelProcess("t1"))

	failed, ok := nextEvent(t, events).(FailedEvent)
	require.True(t, ok)
	assert.ErrorIs(t, failed.Err, ErrCancelled)

	// The stream is closed: nothing after the cancellation failure.
	require.Eventually(t, func() bool {
		return r.Running() == 0
	}, 5*time.Second, 10*time.Millisecond)
	select {
	case ev := <-events:
		t.Fatalf("unexpected event after cancellation: %#v", ev)
	default:
	}

	require.ErrorIs(t, r.CancelProcess("t1"), ErrUnknownTask)
}

func TestCancelAllStopsEveryTask(t *testing.T) {
	bin := writeScript(t, "exec sleep 30")
	r, events := newCLIRuntime(t, bin, nil)

	r.Start(context.Background(), "a", models.ModelSonnet, t.TempDir(), "ping")
	r.Start(context.Background(), "b", models.ModelSonnet, t.TempDir(), "pong")
	require.Eventually(t, func() bool {
		return r.Running() == 2
	}, 5*time.Second, 10*time.Millisecond)

	r.CancelAll()
	r.Wait()

	cancelled := map[string]bool{}
	for i := 0; i < 2; i++ {
		failed, ok := nextEvent(t, events).(FailedEvent)
		require.True(t, ok)
		require.ErrorIs(t, failed.Err, ErrCancelled)
		cancelled[failed.TaskID] = true
	}
	assert.True(t, cancelled["a"])
	assert.True(t, cancelled["b"])
	assert.Equal(t, 0, r.Running())
}

type staticMasker struct{}

func (staticMasker) Mask(line string) string {
	return strings.ReplaceAll(line, "hunter2", "***MASKED***")
}

func TestOutputLinesAreMasked(t *testing.T) {
	bin := writeScript(t, `
echo "export TOKEN=hunter2"
echo "stderr leak hunter2" 1>&2
echo '{"type":"completed","result":"ok"}'`)
	r, events := newCLIRuntime(t, bin, staticMasker{})

	r.Start(context.Background(), "t1", models.ModelSonnet, t.TempDir(), "ping")

	lines := map[string]bool{}
	for {
		ev := nextEvent(t, events)
		if out, ok := ev.(OutputEvent); ok {
			lines[out.Line] = true
			continue
		}
		require.Equal(t, CompletedEvent{TaskID: "t1", Result: "ok"}, ev)
		break
	}
	assert.True(t, lines["export TOKEN=***MASKED***"])
	assert.True(t, lines["stderr leak ***MASKED***"])
}
