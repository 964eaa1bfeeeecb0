package notify

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/models"
	"github.com/crewkit/squadron/pkg/orchestrator"
)

// The orchestrator hands terminal snapshots to this service.
var _ orchestrator.Notifier = (*Service)(nil)

// newMockSlackAPI spins up a fake chat.postMessage endpoint and returns
// a service wired to it plus the call counter.
func newMockSlackAPI(t *testing.T, response string) (*Service, *atomic.Int32) {
	t.Helper()

	var calls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, response)
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	client := NewClientWithAPIURL("xoxb-test", "C123", server.URL+"/")
	return NewServiceWithClient(client), &calls
}

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	// Should not panic.
	s.OrchestrationFinished(context.Background(), completedOrchestration("cmdr-a1b2"))
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(config.SlackConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(config.SlackConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(config.SlackConfig{Token: "xoxb-test", Channel: "C123"})
		assert.NotNil(t, svc)
	})
}

func TestOrchestrationFinished_PostsOncePerOrchestration(t *testing.T) {
	svc, calls := newMockSlackAPI(t, `{"ok":true,"channel":"C123","ts":"1700000000.000100"}`)
	ctx := context.Background()

	orch := completedOrchestration("cmdr-a1b2")
	svc.OrchestrationFinished(ctx, orch)
	svc.OrchestrationFinished(ctx, orch)
	assert.Equal(t, int32(1), calls.Load(), "duplicate terminal event should be suppressed")

	svc.OrchestrationFinished(ctx, completedOrchestration("cmdr-zz99"))
	assert.Equal(t, int32(2), calls.Load(), "distinct orchestrations post separately")
}

func TestOrchestrationFinished_SkipsNonTerminal(t *testing.T) {
	svc, calls := newMockSlackAPI(t, `{"ok":true,"channel":"C123","ts":"1700000000.000100"}`)

	orch := completedOrchestration("cmdr-a1b2")
	orch.Phase = models.PhaseExecuting
	svc.OrchestrationFinished(context.Background(), orch)

	assert.Equal(t, int32(0), calls.Load())
}

func TestOrchestrationFinished_SwallowsAPIError(t *testing.T) {
	svc, calls := newMockSlackAPI(t, `{"ok":false,"error":"channel_not_found"}`)

	// Should not panic; the failure is logged and dropped.
	svc.OrchestrationFinished(context.Background(), completedOrchestration("cmdr-a1b2"))
	assert.Equal(t, int32(1), calls.Load())
}
