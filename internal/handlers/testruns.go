package handlers

import (
	"net/http"

	"clinic-api/internal/testrun"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RunTestsRequest struct {
	FailTests []string `json:"failTests"`
}

// RunTests re-runs the handler test suite with the requested scenarios
// broken. It blocks until the runner exits or the configured timeout fires.
func (h *Handler) RunTests(c *gin.Context) {
	var req RunTestsRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	result, err := h.tests.Run(c.Request.Context(), req.FailTests)
	if err != nil {
		h.log.Error("Test run failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetTestLogs(c *gin.Context) {
	logs, err := h.tests.Logs()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs})
}

type testStatsResponse struct {
	Success bool `json:"success"`
	testrun.Stats
}

func (h *Handler) GetTestStats(c *gin.Context) {
	st, err := h.tests.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, testStatsResponse{Success: true, Stats: st})
}
