package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crewkit/squadron/pkg/config"
	"github.com/crewkit/squadron/pkg/events"
	"github.com/crewkit/squadron/pkg/orchestrator"
	"github.com/crewkit/squadron/pkg/runtime"
)

// multiStepPrompt clears the decomposition gate: more than eight words
// with several imperative indicators.
const multiStepPrompt = "implement the user service then write tests and document the api"

func init() {
	gin.SetMode(gin.TestMode)
}

// newTestServer wires a control server over a scripted runtime and a
// live event hub. The runtime holds all tasks, so submissions sit in
// the decomposing phase for the duration of a test.
func newTestServer(t *testing.T) (*Server, *gin.Engine) {
	t.Helper()

	orchCfg := config.DefaultOrchestratorConfig()
	orchCfg.IntroDelay = time.Millisecond
	orchCfg.DisbandDelay = time.Hour
	cfg := &config.Config{
		Workspace:    t.TempDir(),
		Orchestrator: orchCfg,
	}

	hub := events.NewHub(*config.DefaultEventsConfig())
	t.Cleanup(hub.Close)

	orch := orchestrator.New(cfg, runtime.NewScriptedRuntime(), nil, hub, nil)
	t.Cleanup(orch.Shutdown)

	server := NewServer(orch, hub, nil)
	return server, server.Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSubmitOrchestration(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/orchestrations",
		`{"prompt": "`+multiStepPrompt+`", "model": "sonnet"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	commanderID, _ := body["commander_id"].(string)
	require.NotEmpty(t, commanderID)
	assert.Equal(t, "decomposing", body["status"])

	// The new orchestration is visible through the status views.
	rec = doJSON(t, router, http.MethodGet, "/api/v1/orchestrations/"+commanderID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody(t, rec)
	assert.Equal(t, commanderID, got["commander_id"])
	assert.Equal(t, "decomposing", got["phase"])

	rec = doJSON(t, router, http.MethodGet, "/api/v1/orchestrations", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestSubmitValidation(t *testing.T) {
	_, router := newTestServer(t)

	tests := []struct {
		name     string
		body     string
		wantCode int
	}{
		{
			name:     "malformed JSON",
			body:     `{"prompt": `,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "empty prompt",
			body:     `{"prompt": "   ", "model": "sonnet"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "unknown model",
			body:     `{"prompt": "` + multiStepPrompt + `", "model": "gpt-9"}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "single-step prompt",
			body:     `{"prompt": "fix bug", "model": "sonnet"}`,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, http.MethodPost, "/api/v1/orchestrations", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			body := decodeBody(t, rec)
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestGetUnknownOrchestration(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/orchestrations/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCancelOrchestration(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSON(t, router, http.MethodPost, "/api/v1/orchestrations",
		`{"prompt": "`+multiStepPrompt+`", "model": "haiku"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	commanderID := decodeBody(t, rec)["commander_id"].(string)

	rec = doJSON(t, router, http.MethodDelete, "/api/v1/orchestrations/"+commanderID, "")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, router, http.MethodGet, "/api/v1/orchestrations/"+commanderID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "failed", decodeBody(t, rec)["phase"])

	// Cancelling a terminal orchestration is a no-op, not an error.
	rec = doJSON(t, router, http.MethodDelete, "/api/v1/orchestrations/"+commanderID, "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCancelUnknownOrchestration(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSON(t, router, http.MethodDelete, "/api/v1/orchestrations/no-such-id", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPoolStats(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/pool/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body, "pool")
	assert.Contains(t, body, "limit")
	assert.Contains(t, body, "pressure")
}

func TestMonitorReport(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/api/v1/monitor/report", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	require.Contains(t, body, "report")
	report := body["report"].(map[string]interface{})
	assert.Equal(t, float64(0), report["total"])
}

func TestHealthOnMemoryStore(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "memory", body["store"])
	assert.NotEmpty(t, body["version"])
	assert.NotContains(t, body, "database")
}

func TestSecurityHeaders(t *testing.T) {
	_, router := newTestServer(t)

	rec := doJSON(t, router, http.MethodGet, "/health", "")
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestWebSocketStreamsSubmission(t *testing.T) {
	_, router := newTestServer(t)
	ts := httptest.NewServer(router)
	t.Cleanup(ts.Close)

	// Submit first: the phase event lands in the hub's catch-up buffer
	// and is replayed to the late subscriber.
	rec := doJSON(t, router, http.MethodPost, "/api/v1/orchestrations",
		`{"prompt": "`+multiStepPrompt+`", "model": "opus"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	commanderID := decodeBody(t, rec)["commander_id"].(string)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, "ws"+ts.URL[len("http"):]+"/ws", nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close(websocket.StatusNormalClosure, "") })

	readMsg := func() map[string]interface{} {
		_, data, err := conn.Read(ctx)
		require.NoError(t, err)
		var msg map[string]interface{}
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	}

	require.Equal(t, "connection.established", readMsg()["type"])

	sub, err := json.Marshal(events.ClientMessage{
		Action:  "subscribe",
		Channel: events.CommanderChannel(commanderID),
	})
	require.NoError(t, err)
	require.NoError(t, conn.Write(ctx, websocket.MessageText, sub))
	require.Equal(t, "subscription.confirmed", readMsg()["type"])

	env := readMsg()
	assert.Equal(t, "orchestration.phase", env["kind"])
	assert.Equal(t, commanderID, env["commander_id"])
}
