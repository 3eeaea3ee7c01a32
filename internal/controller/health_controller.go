package controller

import (
	"context"
	"net/http"
	"time"

	"learning_portal_backend/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const healthProbeTimeout = 2 * time.Second

type HealthController struct {
	DB    *gorm.DB
	Redis *redis.Client
}

// NewHealthController probes redis only when a client is given.
func NewHealthController(db *gorm.DB, rdb *redis.Client) *HealthController {
	return &HealthController{DB: db, Redis: rdb}
}

// @Summary Health check
// @Description Reports database and, when configured, redis reachability
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Failure 503 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	probeCtx, cancel := context.WithTimeout(ctx.Request.Context(), healthProbeTimeout)
	defer cancel()

	components := gin.H{"database": "up"}
	healthy := true

	sqlDB, err := c.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(probeCtx)
	}
	if err != nil {
		components["database"] = "down"
		healthy = false
	}

	// redis only guards the reminder sweep, so its outage degrades instead of failing
	if c.Redis != nil {
		components["redis"] = "up"
		if err := c.Redis.Ping(probeCtx).Err(); err != nil {
			components["redis"] = "down"
		}
	}

	if !healthy {
		ctx.JSON(http.StatusServiceUnavailable, util.Response{
			Code:    http.StatusServiceUnavailable,
			Message: "Database unavailable",
			Data:    gin.H{"status": "down", "components": components},
			Kind:    util.KindInternal,
		})
		return
	}
	util.Success(ctx, gin.H{"status": "ok", "components": components})
}
