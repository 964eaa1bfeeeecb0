package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/crewkit/squadron/pkg/orchestrator"
)

// mapSubmitError maps orchestrator submission errors to HTTP error
// responses.
func mapSubmitError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, orchestrator.ErrEmptyPrompt),
		errors.Is(err, orchestrator.ErrUnknownModel):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, orchestrator.ErrDirectExecution):
		// Not an orchestration job. The host should run the prompt as a
		// plain single-agent task instead.
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, orchestrator.ErrWorkspaceNotConfigured):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		slog.Error("Unexpected submit error", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
