package v1

import (
	"net/http"
	"time"

	"github.com/giorgigordiashvili/restaurant-platform/internal/infrastructure/connector"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// HealthHandler defines the interface for liveness and readiness probes
type HealthHandler interface {
	Health(ctx *gin.Context)
	Ready(ctx *gin.Context)
}

type healthHandler struct {
	db    *gorm.DB
	cache connector.Cache
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db *gorm.DB, cache connector.Cache) HealthHandler {
	return &healthHandler{
		db:    db,
		cache: cache,
	}
}

// Health reports whether the service and its dependencies are usable.
func (handler *healthHandler) Health(ctx *gin.Context) {
	components := gin.H{"database": "ok", "cache": "ok"}
	healthy := true

	sqlDB, err := handler.db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		components["database"] = "unavailable"
		healthy = false
	}

	if !cacheRoundtrip(ctx, handler.cache) {
		components["cache"] = "unavailable"
		healthy = false
	}

	status := http.StatusOK
	state := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}
	ctx.JSON(status, gin.H{"status": state, "components": components})
}

// Ready reports whether the process accepts traffic.
func (handler *healthHandler) Ready(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// cacheRoundtrip writes and reads back a probe key, proving the cache
// accepts both operations rather than just answering pings.
func cacheRoundtrip(ctx *gin.Context, cache connector.Cache) bool {
	if cache == nil {
		return false
	}

	const key = "health:probe"
	if err := cache.Set(ctx, key, "ok", time.Minute); err != nil {
		return false
	}
	value, err := cache.Get(ctx, key)
	return err == nil && value == "ok"
}
