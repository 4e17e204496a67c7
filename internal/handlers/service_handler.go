package handlers

import (
	"net/http"

	"sitecms_backend/internal/middleware"
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/services"
	"sitecms_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// ServiceHandler serves the company's service offerings.
type ServiceHandler struct {
	*ContentHandler[models.Service, dto.CreateServiceRequest, dto.UpdateServiceRequest]
	catalog *services.CatalogService
}

func NewServiceHandler(base *BaseHandler, catalog *services.CatalogService) *ServiceHandler {
	return &ServiceHandler{
		ContentHandler: NewContentHandler[models.Service, dto.CreateServiceRequest, dto.UpdateServiceRequest](base, catalog.ContentService, "Service"),
		catalog:        catalog,
	}
}

func (h *ServiceHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/services")
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.GET("/slug/:slug", h.GetBySlug)
		group.GET("/number/:number", h.GetByNumber)

		admin := group.Group("", middleware.RequireAdmin())
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *ServiceHandler) GetByNumber(c *gin.Context) {
	service, err := h.catalog.GetByNumber(h.GetDB(c), c.Param("number"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}
