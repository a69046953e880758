package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Reports if the process should receive traffic.
type HealthReporter interface {
	Serving() bool
}

// Health check handler.
type HealthHandler struct {
	reporter HealthReporter
}

type HealthHandlerDependencies struct {
	Reporter HealthReporter
}

// Create a new instance of the health handler.
// Without a reporter the handler only answers that the process is up.
func NewHealthHandler(deps *HealthHandlerDependencies) *HealthHandler {
	return &HealthHandler{
		reporter: deps.Reporter,
	}
}

// Handler for the health endpoint.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	if h.reporter != nil && !h.reporter.Serving() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "NOT_SERVING"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "SERVING"})
}
