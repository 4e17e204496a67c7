package routes

import (
	"net/http"

	"sitecms_backend/internal/handlers"
	"sitecms_backend/internal/logger"
	"sitecms_backend/internal/storage"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api/v1, the health probe at the root,
// the Prometheus endpoint and, for the local backend, the static file tree.
func RegisterRoutes(
	ginRouter *gin.Engine,
	appHandlers *handlers.AppHandlers,
	store storage.Storage,
	metricsHandler http.Handler,
) {
	api := ginRouter.Group("/api/v1")
	for _, h := range appHandlers.All() {
		h.RegisterRoutes(api)
	}

	appHandlers.HealthHandler.RegisterRoutes(&ginRouter.RouterGroup)

	if metricsHandler != nil {
		ginRouter.GET("/metrics", gin.WrapH(metricsHandler))
	}

	if local, ok := store.(*storage.LocalStorage); ok {
		ginRouter.Static(storage.StaticPrefix, local.BasePath())
		logger.Info("Static files mounted", "prefix", storage.StaticPrefix, "dir", local.BasePath())
	}
}
