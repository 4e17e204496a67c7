package handlers

import (
	"net/http"

	"sitecms_backend/internal/middleware"
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/services"
	"sitecms_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

const (
	defaultFeaturedLimit = 3
	maxFeaturedLimit     = 10
)

// ProjectHandler serves portfolio projects and their before/after image
// pairs.
type ProjectHandler struct {
	*ContentHandler[models.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest]
	projects *services.ProjectService
}

func NewProjectHandler(base *BaseHandler, projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		ContentHandler: NewContentHandler[models.Project, dto.CreateProjectRequest, dto.UpdateProjectRequest](base, projects.ContentService, "Project"),
		projects:       projects,
	}
}

func (h *ProjectHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/projects")
	{
		group.GET("", h.ListProjects)
		group.GET("/featured", h.Featured)
		group.GET("/:id", h.GetProject)
		group.GET("/slug/:slug", h.GetProjectBySlug)
		group.GET("/:id/images", h.ListImages)

		admin := group.Group("", middleware.RequireAdmin())
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.DeleteProject)
		admin.PATCH("/:id/feature", h.ToggleFeatured)

		admin.POST("/:id/images", h.AddImage)
		admin.PUT("/images/:image_id", h.UpdateImage)
		admin.PATCH("/images/:image_id/reorder", h.ReorderImage)
		admin.DELETE("/images/:image_id", h.DeleteImage)
	}
}

// ListProjects filters by ?category= when given; otherwise it pages through
// projects with their images loaded.
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	db := h.GetDB(c)

	if category := c.Query("category"); category != "" {
		projects, err := h.projects.ListByCategory(db, category)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, projects)
		return
	}

	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}
	projects, err := h.projects.ListWithImages(db, page.Skip, page.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) Featured(c *gin.Context) {
	limit, err := ParseLimit(c, defaultFeaturedLimit, maxFeaturedLimit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	projects, err := h.projects.Featured(h.GetDB(c), limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, projects)
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	project, err := h.projects.GetWithImages(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

func (h *ProjectHandler) GetProjectBySlug(c *gin.Context) {
	project, err := h.projects.GetBySlugWithImages(h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject removes the project and all of its image pairs.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if _, err := h.projects.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse("Project deleted successfully"))
}

func (h *ProjectHandler) ListImages(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	images, err := h.projects.Images(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

func (h *ProjectHandler) AddImage(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.CreateProjectImageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	image, err := h.projects.AddImage(h.GetDB(c), id, req.ToModel())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, image)
}

func (h *ProjectHandler) UpdateImage(c *gin.Context) {
	imageID, err := ParseParamUint(c, "image_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req dto.UpdateProjectImageRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	image, err := h.projects.UpdateImage(h.GetDB(c), imageID, req.ToPatch())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *ProjectHandler) ReorderImage(c *gin.Context) {
	imageID, err := ParseParamUint(c, "image_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	n, ok := h.orderFromRequest(c)
	if !ok {
		return
	}

	image, err := h.projects.ReorderImage(h.GetDB(c), imageID, n)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, image)
}

func (h *ProjectHandler) DeleteImage(c *gin.Context) {
	imageID, err := ParseParamUint(c, "image_id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if _, err := h.projects.DeleteImage(h.GetDB(c), imageID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse("Image deleted successfully"))
}
