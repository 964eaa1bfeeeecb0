// Package api exposes the HTTP control surface: orchestration
// submission, inspection, and cancellation, pool and monitor views,
// health, and the WebSocket event stream.
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crewkit/squadron/pkg/database"
	"github.com/crewkit/squadron/pkg/events"
	"github.com/crewkit/squadron/pkg/orchestrator"
)

// Server is the HTTP control server over one orchestrator instance.
type Server struct {
	log  *slog.Logger
	orch *orchestrator.Orchestrator
	hub  *events.Hub

	// db backs the /health check; nil when running on the memory store.
	db *database.Client

	httpServer *http.Server
}

// NewServer creates the control server. db may be nil.
func NewServer(orch *orchestrator.Orchestrator, hub *events.Hub, db *database.Client) *Server {
	return &Server{
		log:  slog.Default().With("component", "api"),
		orch: orch,
		hub:  hub,
		db:   db,
	}
}

// Router builds the gin engine with all routes registered. Exposed so
// tests can drive handlers without a listening socket.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), securityHeaders())

	router.GET("/health", s.healthHandler)
	router.GET("/ws", s.websocketHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/orchestrations", s.submitOrchestrationHandler)
		v1.GET("/orchestrations", s.listOrchestrationsHandler)
		v1.GET("/orchestrations/:id", s.getOrchestrationHandler)
		v1.DELETE("/orchestrations/:id", s.cancelOrchestrationHandler)
		v1.GET("/pool/stats", s.poolStatsHandler)
		v1.GET("/monitor/report", s.monitorReportHandler)
	}

	return router
}

// Start listens on addr and serves until Shutdown. Blocks; run it on a
// goroutine and watch the returned error.
func (s *Server) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown stops accepting connections and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}
