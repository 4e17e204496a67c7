package handlers

import (
	"net/http"

	"sitecms_backend/internal/middleware"
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/services"
	"sitecms_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type BlogHandler struct {
	*ContentHandler[models.BlogPost, dto.CreateBlogPostRequest, dto.UpdateBlogPostRequest]
	blog *services.BlogService
}

func NewBlogHandler(base *BaseHandler, blog *services.BlogService) *BlogHandler {
	return &BlogHandler{
		ContentHandler: NewContentHandler[models.BlogPost, dto.CreateBlogPostRequest, dto.UpdateBlogPostRequest](base, blog.ContentService, "Blog post"),
		blog:           blog,
	}
}

func (h *BlogHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/blog")
	{
		group.GET("", h.ListPosts)
		group.GET("/search", h.Search)
		group.GET("/:id", h.Get)
		group.GET("/slug/:slug", h.GetBySlug)

		admin := group.Group("", middleware.RequireAdmin())
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.PATCH("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// ListPosts honours ?search= first, then ?category=, and otherwise pages
// through all posts newest first.
func (h *BlogHandler) ListPosts(c *gin.Context) {
	db := h.GetDB(c)

	if q := c.Query("search"); q != "" {
		posts, err := h.blog.Search(db, q)
		h.respondList(c, posts, err)
		return
	}
	if category := c.Query("category"); category != "" {
		posts, err := h.blog.ListByCategory(db, category)
		h.respondList(c, posts, err)
		return
	}
	h.List(c)
}

func (h *BlogHandler) Search(c *gin.Context) {
	var req dto.BlogSearchRequest
	if !h.BindAndValidate_Query(c, &req) {
		return
	}
	posts, err := h.blog.Search(h.GetDB(c), req.Q)
	h.respondList(c, posts, err)
}

func (h *BlogHandler) respondList(c *gin.Context, posts []models.BlogPost, err error) {
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, posts)
}
