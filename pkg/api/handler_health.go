package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/crewkit/squadron/pkg/database"
	"github.com/crewkit/squadron/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusUnhealthy = "unhealthy"
)

// healthHandler handles GET /health.
// Returns a minimal, safe response suitable for unauthenticated access.
// Only the snapshot store is checked; the per-model CLI binaries are
// external and excluded so a broken CLI cannot make the control plane
// look dead.
func (s *Server) healthHandler(c *gin.Context) {
	resp := &HealthResponse{
		Status:  healthStatusHealthy,
		Version: version.GitCommit,
		Store:   "memory",
	}

	if s.db != nil {
		resp.Store = "postgres"

		reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		dbHealth, err := database.Health(reqCtx, s.db.DB())
		resp.Database = dbHealth
		if err != nil {
			resp.Status = healthStatusUnhealthy
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
	}

	c.JSON(http.StatusOK, resp)
}
