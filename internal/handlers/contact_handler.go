package handlers

import (
	"net/http"

	"sitecms_backend/internal/middleware"
	"sitecms_backend/internal/models"
	"sitecms_backend/internal/services"
	"sitecms_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ContactHandler accepts the public contact form and lets the admin triage
// submissions.
type ContactHandler struct {
	*BaseHandler
	contacts *services.ContactService
}

func NewContactHandler(base *BaseHandler, contacts *services.ContactService) *ContactHandler {
	return &ContactHandler{
		BaseHandler: base,
		contacts:    contacts,
	}
}

func (h *ContactHandler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/contacts")
	{
		group.POST("", h.Submit)

		admin := group.Group("", middleware.RequireAdmin())
		admin.GET("", h.List)
		admin.GET("/:id", h.Get)
		admin.PATCH("/:id/read", h.MarkRead)
		admin.PATCH("/:id/unread", h.MarkUnread)
		admin.DELETE("/:id", h.Delete)
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req dto.CreateContactRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	submission, err := h.contacts.Submit(h.GetDB(c), req.ToModel())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, submission)
}

// List returns submissions newest first; ?unread_only=true narrows to unread
// ones.
func (h *ContactHandler) List(c *gin.Context) {
	db := h.GetDB(c)

	if c.Query("unread_only") == "true" {
		items, err := h.contacts.Unread(db)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, items)
		return
	}

	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}
	items, err := h.contacts.List(db, page.Skip, page.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContactHandler) Get(c *gin.Context) {
	h.byID(c, h.contacts.Get)
}

func (h *ContactHandler) MarkRead(c *gin.Context) {
	h.byID(c, h.contacts.MarkRead)
}

func (h *ContactHandler) MarkUnread(c *gin.Context) {
	h.byID(c, h.contacts.MarkUnread)
}

func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	if _, err := h.contacts.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse("Contact submission deleted successfully"))
}

func (h *ContactHandler) byID(c *gin.Context, op func(db *gorm.DB, id uint) (*models.ContactSubmission, error)) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	submission, err := op(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, submission)
}
