package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthCheck probes one dependency.
type HealthCheck struct {
	Name  string
	Check func(ctx context.Context) error
}

func addHealthRoutes(router *gin.Engine, checks []HealthCheck) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/health", healthHandler(checks))
}

// healthHandler reports 503 as soon as one dependency fails.
func healthHandler(checks []HealthCheck) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
		defer cancel()

		status := http.StatusOK
		results := gin.H{}
		for _, hc := range checks {
			if err := hc.Check(ctx); err != nil {
				zap.L().Warn("[server][health] check failed", zap.String("dependency", hc.Name), zap.Error(err))
				results[hc.Name] = "down"
				status = http.StatusServiceUnavailable
				continue
			}
			results[hc.Name] = "up"
		}

		state := "ok"
		if status != http.StatusOK {
			state = "degraded"
		}
		c.JSON(status, gin.H{"status": state, "dependencies": results})
	}
}
