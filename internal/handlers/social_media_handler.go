package handlers

import (
	"net/http"

	"sitecms_backend/internal/middleware"
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/services"
	"sitecms_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type SocialMediaHandler struct {
	*ContentHandler[models.SocialMediaLink, dto.CreateSocialMediaRequest, dto.UpdateSocialMediaRequest]
	links *services.SocialMediaService
}

func NewSocialMediaHandler(base *BaseHandler, links *services.SocialMediaService) *SocialMediaHandler {
	return &SocialMediaHandler{
		ContentHandler: NewContentHandler[models.SocialMediaLink, dto.CreateSocialMediaRequest, dto.UpdateSocialMediaRequest](base, links.ContentService, "Social media link"),
		links:          links,
	}
}

func (h *SocialMediaHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/social-media")
	{
		group.GET("/active", h.Active)
		group.GET("/platform/:platform", h.ByPlatform)
		group.GET("/:id", h.Get)

		admin := group.Group("", middleware.RequireAdmin())
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.PATCH("/:id/toggle", h.ToggleActive)
		admin.PATCH("/:id/reorder", h.Reorder)
	}
}

func (h *SocialMediaHandler) Active(c *gin.Context) {
	links, err := h.links.Active(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, links)
}

func (h *SocialMediaHandler) ByPlatform(c *gin.Context) {
	link, err := h.links.ByPlatform(h.GetDB(c), c.Param("platform"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, link)
}
