package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewkit/squadron/pkg/models"
	"github.com/crewkit/squadron/pkg/orchestrator"
)

// submitOrchestrationHandler handles POST /api/v1/orchestrations.
// Creates the commander and returns immediately; the pipeline runs
// asynchronously and progress streams over /ws.
func (s *Server) submitOrchestrationHandler(c *gin.Context) {
	// 1. Bind HTTP request
	var req SubmitOrchestrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// 2. Hand off to the orchestrator. Prompt and model validation live
	// there; this layer only translates the verdict.
	commanderID, err := s.orch.Submit(req.Prompt, models.Model(req.Model))
	if err != nil {
		mapSubmitError(c, err)
		return
	}

	// 3. Return response
	c.JSON(http.StatusCreated, &SubmitOrchestrationResponse{
		CommanderID: commanderID,
		Status:      string(models.PhaseDecomposing),
		Message:     "Orchestration accepted",
	})
}

// getOrchestrationHandler handles GET /api/v1/orchestrations/:id.
func (s *Server) getOrchestrationHandler(c *gin.Context) {
	orch, ok := s.orch.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "orchestration not found"})
		return
	}
	c.JSON(http.StatusOK, orch)
}

// listOrchestrationsHandler handles GET /api/v1/orchestrations.
// Returns every orchestration this instance holds, newest first.
func (s *Server) listOrchestrationsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.orch.List())
}

// cancelOrchestrationHandler handles DELETE /api/v1/orchestrations/:id.
// Cancellation of an already terminal orchestration succeeds without
// effect.
func (s *Server) cancelOrchestrationHandler(c *gin.Context) {
	commanderID := c.Param("id")

	if err := s.orch.Cancel(commanderID); err != nil {
		if errors.Is(err, orchestrator.ErrUnknownOrchestration) {
			c.JSON(http.StatusNotFound, gin.H{"error": "orchestration not found"})
			return
		}
		s.log.Error("Cancel failed", "commander_id", commanderID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, &CancelResponse{
		CommanderID: commanderID,
		Message:     "Orchestration cancelled",
	})
}
