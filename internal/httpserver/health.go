package httpserver

import (
	"context"
	"net/http"
	"sort"
	"time"

	"chat-task-scheduler/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Chat Task Scheduler is up"
	HealthVersion = "1.0.0"
	ServiceName   = "chat-task-scheduler"

	readyCheckTimeout = 2 * time.Second
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck runs every registered dependency check and answers 503 when one fails.
// @Summary Readiness Check
// @Description Check if the API and its dependencies are ready to serve traffic
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 503 {object} response.Resp "A dependency is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), readyCheckTimeout)
	defer cancel()

	checks := srv.runReadyChecks(ctx)
	for _, status := range checks {
		if status != "ok" {
			c.JSON(http.StatusServiceUnavailable, response.Resp{
				ErrorCode: http.StatusServiceUnavailable,
				Message:   "not ready",
				Data:      gin.H{"status": "not_ready", "checks": checks, "service": ServiceName},
			})
			return
		}
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"checks":  checks,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

func (srv *HTTPServer) runReadyChecks(ctx context.Context) map[string]string {
	names := make([]string, 0, len(srv.readyChecks))
	for name := range srv.readyChecks {
		names = append(names, name)
	}
	sort.Strings(names)

	checks := make(map[string]string, len(names))
	for _, name := range names {
		if err := srv.readyChecks[name](ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: %s: %v", name, err)
			checks[name] = "unavailable"
			continue
		}
		checks[name] = "ok"
	}
	return checks
}
