package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// poolStatsHandler handles GET /api/v1/pool/stats. Aggregates pool,
// scheduler, and admission-controller counters into one snapshot.
func (s *Server) poolStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.orch.Stats())
}

// monitorReportHandler handles GET /api/v1/monitor/report. Returns the
// current registry summary plus recent occupancy alerts.
func (s *Server) monitorReportHandler(c *gin.Context) {
	mon := s.orch.Monitor()
	c.JSON(http.StatusOK, &MonitorResponse{
		Report: mon.Report(),
		Alerts: mon.Alerts(20),
	})
}
