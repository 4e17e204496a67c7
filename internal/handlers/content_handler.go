package handlers

import (
	"net/http"

	"sitecms_backend/internal/models"
	"sitecms_backend/internal/repositories"
	"sitecms_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CreateRequest is a validated create payload that builds a new entity.
type CreateRequest[T any] interface {
	ToModel() *T
}

// UpdateRequest is a validated update payload that yields a sparse patch.
type UpdateRequest interface {
	ToPatch() repositories.Patch
}

// ContentHandler serves the CRUD endpoints every content type shares.
// C and U are the create and update request DTOs.
type ContentHandler[T models.Entity, C CreateRequest[T], U UpdateRequest] struct {
	*BaseHandler
	service *services.ContentService[T]
	label   string
}

func NewContentHandler[T models.Entity, C CreateRequest[T], U UpdateRequest](base *BaseHandler, service *services.ContentService[T], label string) *ContentHandler[T, C, U] {
	return &ContentHandler[T, C, U]{
		BaseHandler: base,
		service:     service,
		label:       label,
	}
}

func (h *ContentHandler[T, C, U]) List(c *gin.Context) {
	page, ok := h.ParsePagination(c)
	if !ok {
		return
	}

	items, err := h.service.List(h.GetDB(c), page.Skip, page.Limit)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *ContentHandler[T, C, U]) Get(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	item, err := h.service.Get(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler[T, C, U]) GetBySlug(c *gin.Context) {
	item, err := h.service.GetBySlug(h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler[T, C, U]) Create(c *gin.Context) {
	var req C
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.service.Create(h.GetDB(c), req.ToModel())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ContentHandler[T, C, U]) Update(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	var req U
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.service.Update(h.GetDB(c), id, req.ToPatch())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler[T, C, U]) Delete(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if _, err := h.service.Delete(h.GetDB(c), id); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse(h.label+" deleted successfully"))
}

func (h *ContentHandler[T, C, U]) ToggleActive(c *gin.Context) {
	h.mutateByID(c, h.service.ToggleActive)
}

func (h *ContentHandler[T, C, U]) ToggleFeatured(c *gin.Context) {
	h.mutateByID(c, h.service.ToggleFeatured)
}

// Reorder takes the new position from ?new_order= or a JSON
// {"order_index": n} body.
func (h *ContentHandler[T, C, U]) Reorder(c *gin.Context) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	n, ok := h.orderFromRequest(c)
	if !ok {
		return
	}

	item, err := h.service.Reorder(h.GetDB(c), id, n)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ContentHandler[T, C, U]) mutateByID(c *gin.Context, op func(db *gorm.DB, id uint) (*T, error)) {
	id, err := ParseParamUint(c, "id")
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	item, err := op(h.GetDB(c), id)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}
