package handlers

import (
	"net/http"

	"sitecms_backend/internal/middleware"
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/services"
	"sitecms_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	*ContentHandler[models.Testimonial, dto.CreateTestimonialRequest, dto.UpdateTestimonialRequest]
	testimonials *services.TestimonialService
}

func NewTestimonialHandler(base *BaseHandler, testimonials *services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		ContentHandler: NewContentHandler[models.Testimonial, dto.CreateTestimonialRequest, dto.UpdateTestimonialRequest](base, testimonials.ContentService, "Testimonial"),
		testimonials:   testimonials,
	}
}

func (h *TestimonialHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/testimonials")
	{
		group.GET("/active", h.Active)
		group.GET("/featured", h.Featured)
		group.GET("/:id", h.Get)

		admin := group.Group("", middleware.RequireAdmin())
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
		admin.PATCH("/:id/toggle", h.ToggleActive)
		admin.PATCH("/:id/feature", h.ToggleFeatured)
		admin.PATCH("/:id/reorder", h.Reorder)
	}
}

func (h *TestimonialHandler) Active(c *gin.Context) {
	items, err := h.testimonials.Active(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *TestimonialHandler) Featured(c *gin.Context) {
	limit, err := ParseLimit(c, defaultFeaturedLimit, maxFeaturedLimit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	items, err := h.testimonials.Featured(h.GetDB(c), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
