package handlers

import (
	"io"
	"net/http"
	"strconv"
	"strings"

	"sitecms_backend/internal/logger"
	"sitecms_backend/internal/services"
	"sitecms_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// MediaCacheControl marks media as immutable: keys are never reused.
const MediaCacheControl = "public, max-age=31536000, immutable"

// MediaHandler streams stored objects. Remote-backed URLs point here; it
// works for the local backend too.
type MediaHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewMediaHandler(base *BaseHandler, uploadService services.UploadService) *MediaHandler {
	return &MediaHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *MediaHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/media/*key", h.ServeMedia)
}

func (h *MediaHandler) ServeMedia(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		apperrors.HandleError(c, apperrors.ErrNotFound("media"))
		return
	}

	blob, err := h.uploadService.Open(c.Request.Context(), key)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer blob.Body.Close()

	c.Header("Content-Type", blob.ContentType)
	c.Header("Cache-Control", MediaCacheControl)
	if blob.Size >= 0 {
		c.Header("Content-Length", strconv.FormatInt(blob.Size, 10))
	}
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, blob.Body); err != nil {
		logger.CtxWarn(c.Request.Context(), "media stream interrupted", "key", key, "error", err.Error())
	}
}
