package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	*BaseHandler
	backend string
}

func NewHealthHandler(base *BaseHandler, backend string) *HealthHandler {
	return &HealthHandler{BaseHandler: base, backend: backend}
}

func (h *HealthHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/health", h.Health)
}

// Health pings the database and reports the active storage backend.
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	database := "ok"

	sqlDB, err := h.GetDB(c).DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request.Context())
	}
	if err != nil {
		status = http.StatusServiceUnavailable
		database = "unavailable"
	}

	c.JSON(status, gin.H{
		"status":   http.StatusText(status),
		"database": database,
		"storage":  h.backend,
	})
}
