package handlers

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"sitecms_backend/internal/middleware"
	"sitecms_backend/internal/services"
	"sitecms_backend/internal/services/dto"
	"sitecms_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const maxFormFieldSize = 1024

type UploadHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewUploadHandler(base *BaseHandler, uploadService services.UploadService) *UploadHandler {
	return &UploadHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *UploadHandler) RegisterRoutes(r *gin.RouterGroup) {
	uploads := r.Group("/upload", middleware.RequireAdmin())
	{
		uploads.POST("", h.UploadFile)
		uploads.DELETE("/*key", h.DeleteFile)
	}
}

// UploadFile streams the "file" part of a multipart form into the upload
// gatekeeper. The target subfolder comes from ?subfolder= or a "subfolder"
// form field sent before the file.
func (h *UploadHandler) UploadFile(c *gin.Context) {
	reader, err := c.Request.MultipartReader()
	if err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("expected a multipart/form-data body"))
		return
	}

	subfolder := c.Query("subfolder")
	for {
		part, err := reader.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			apperrors.HandleError(c, apperrors.NewBadRequestError("failed to parse form: "+err.Error()))
			return
		}

		switch part.FormName() {
		case "subfolder":
			value, err := io.ReadAll(io.LimitReader(part, maxFormFieldSize))
			_ = part.Close()
			if err != nil {
				apperrors.HandleError(c, apperrors.NewBadRequestError("failed to read subfolder"))
				return
			}
			subfolder = strings.TrimSpace(string(value))
		case "file":
			h.store(c, part, subfolder)
			_ = part.Close()
			return
		default:
			_ = part.Close()
		}
	}

	apperrors.HandleError(c, apperrors.NewBadRequestError("no file provided"))
}

func (h *UploadHandler) store(c *gin.Context, part *multipart.Part, subfolder string) {
	resp, err := h.uploadService.Upload(c.Request.Context(), &dto.UploadRequest{
		Filename:    part.FileName(),
		ContentType: part.Header.Get("Content-Type"),
		Size:        -1,
		Body:        part,
		Subfolder:   subfolder,
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *UploadHandler) DeleteFile(c *gin.Context) {
	key := strings.TrimPrefix(c.Param("key"), "/")
	if key == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing file path"))
		return
	}

	if err := h.uploadService.Delete(c.Request.Context(), key); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse("File deleted successfully"))
}
