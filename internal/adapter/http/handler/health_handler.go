package handler

import (
	"net/http"

	"adyen-notification-reconciler/internal/core/ports"
	"adyen-notification-reconciler/pkg/response"

	"github.com/gin-gonic/gin"
)

// HealthCheck handles GET /health and pings every configured dependency.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus, len(checkers))
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Ping(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
				continue
			}
			deps[checker.Name()] = depStatus{Status: "healthy"}
		}

		if !allHealthy {
			response.Status(c, http.StatusServiceUnavailable, gin.H{
				"status":       "degraded",
				"dependencies": deps,
			})
			return
		}
		response.OK(c, gin.H{
			"status":       "healthy",
			"dependencies": deps,
		})
	}
}
