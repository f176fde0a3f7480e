package handlers

import (
	"context"
	"net/http"
	"time"

	"hypergo-properties/pkg/cache"

	"github.com/gin-gonic/gin"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports "down" when the store is unreachable and "degraded"
// when only the cache is, since requests still succeed without it.
type HealthHandler struct {
	store Pinger
	cache cache.Store
}

func NewHealthHandler(store Pinger, cacheStore cache.Store) *HealthHandler {
	return &HealthHandler{store: store, cache: cacheStore}
}

func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	checks := gin.H{"store": "ok", "cache": "ok"}
	status, code := "ok", http.StatusOK

	if h.cache.Ping(ctx) != nil {
		checks["cache"] = "unavailable"
		status = "degraded"
	}
	if h.store != nil && h.store.Ping(ctx) != nil {
		checks["store"] = "unavailable"
		status, code = "down", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{"status": status, "checks": checks, "time": time.Now().UTC()})
}
