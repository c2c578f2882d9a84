package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"memory-mob/pkg/response"
)

const (
	ServiceName    = "memory-mob"
	ServiceVersion = "1.0.0"
)

var startedAt = time.Now()

// statusBody is shared by the probe endpoints.
func (srv HTTPServer) statusBody(status string) gin.H {
	return gin.H{
		"status":      status,
		"service":     ServiceName,
		"version":     ServiceVersion,
		"environment": srv.environment,
		"uptime":      time.Since(startedAt).Round(time.Second).String(),
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("healthy"))
}

// readyCheck answers 503 until the readiness probe (the database ping) succeeds.
// @Summary Readiness Check
// @Description Check if the API can reach its database
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} map[string]interface{} "A dependency is unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.readiness == nil {
		response.OK(c, srv.statusBody("ready"))
		return
	}

	ctx := c.Request.Context()
	if err := srv.readiness(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: %v", err)
		c.JSON(http.StatusServiceUnavailable, response.Resp{
			ErrorCode: http.StatusServiceUnavailable,
			Message:   "not ready",
			Data:      srv.statusBody("unavailable"),
		})
		return
	}
	response.OK(c, srv.statusBody("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.statusBody("alive"))
}
