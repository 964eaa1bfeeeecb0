package api

import (
	"github.com/crewkit/squadron/pkg/database"
	"github.com/crewkit/squadron/pkg/lifecycle"
)

// SubmitOrchestrationResponse is returned by POST /api/v1/orchestrations.
type SubmitOrchestrationResponse struct {
	CommanderID string `json:"commander_id"`
	Status      string `json:"status"`
	Message     string `json:"message"`
}

// CancelResponse is returned by DELETE /api/v1/orchestrations/:id.
type CancelResponse struct {
	CommanderID string `json:"commander_id"`
	Message     string `json:"message"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status   string                 `json:"status"`
	Version  string                 `json:"version"`
	Store    string                 `json:"store"`
	Database *database.HealthStatus `json:"database,omitempty"`
}

// MonitorResponse is returned by GET /api/v1/monitor/report.
type MonitorResponse struct {
	Report lifecycle.Report  `json:"report"`
	Alerts []lifecycle.Alert `json:"alerts"`
}
