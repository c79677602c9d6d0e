package handler

import (
	"context"
	"net/http"
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var startTime = time.Now()

// HealthHandler reports dependency reachability and basic host stats. Any
// unreachable dependency degrades the overall status and the response code.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := "healthy"
	checks := gin.H{}

	if err := utils.MongoClient.Ping(ctx, readpref.Primary()); err != nil {
		status = "degraded"
		checks["mongodb"] = "unreachable"
	} else {
		checks["mongodb"] = "ok"
	}

	if err := utils.RedisClient.Ping(ctx).Err(); err != nil {
		status = "degraded"
		checks["redis"] = "unreachable"
	} else {
		checks["redis"] = "ok"
	}

	code := http.StatusOK
	if status != "healthy" {
		code = http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status": status,
		"uptime": time.Since(startTime).Round(time.Second).String(),
		"checks": checks,
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_percent": utils.GetMemoryUsage(),
		},
	})
}
