package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"path/filepath"
	"strings"

	"sitecms_backend/internal/imageprocessor"
	"sitecms_backend/internal/logger"
	"sitecms_backend/internal/metrics"
	"sitecms_backend/internal/services/dto"
	"sitecms_backend/internal/storage"
	"sitecms_backend/pkg/apperrors"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// UploadService is the gatekeeper in front of the media store: it decides
// whether a file may be stored, names it and optionally shrinks it.
type UploadService interface {
	Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error)
	Delete(ctx context.Context, key string) error
	Open(ctx context.Context, key string) (*storage.Blob, error)
	Backend() string
}

// Optimizer re-encodes image bytes; see imageprocessor.Processor.
type Optimizer interface {
	Optimize(data []byte) ([]byte, bool, error)
}

type UploadConfig struct {
	MaxFileSize      int64
	AllowedTypes     []string
	OptimizeImages   bool
	DefaultSubfolder string
}

func GetDefaultUploadConfig() *UploadConfig {
	return &UploadConfig{
		MaxFileSize:      10 * 1024 * 1024,
		AllowedTypes:     []string{"image/jpeg", "image/png", "image/webp", "image/gif"},
		DefaultSubfolder: "uploads",
	}
}

type uploadService struct {
	storage   storage.Storage
	optimizer Optimizer
	metrics   *metrics.Metrics
	config    *UploadConfig
}

func NewUploadService(store storage.Storage, optimizer Optimizer, m *metrics.Metrics, config *UploadConfig) UploadService {
	if config == nil {
		config = GetDefaultUploadConfig()
	}
	if config.DefaultSubfolder == "" {
		config.DefaultSubfolder = "uploads"
	}
	return &uploadService{
		storage:   store,
		optimizer: optimizer,
		metrics:   m,
		config:    config,
	}
}

func (s *uploadService) Backend() string {
	return s.storage.Backend()
}

func (s *uploadService) Upload(ctx context.Context, req *dto.UploadRequest) (*dto.UploadResponse, error) {
	log := logger.FromContext(ctx)

	declared := s.declaredType(req.ContentType, req.Filename)
	if !s.isAllowed(declared) {
		s.metrics.RecordUpload(metrics.UploadInvalidType, 0)
		return nil, apperrors.ErrInvalidFileType(declared)
	}

	ext := strings.ToLower(filepath.Ext(req.Filename))
	if ext != "" && !s.isAllowed(mimeTypeForExt(ext)) {
		s.metrics.RecordUpload(metrics.UploadInvalidType, 0)
		return nil, apperrors.ErrInvalidFileType(ext)
	}

	subfolder, err := cleanSubfolder(req.Subfolder, s.config.DefaultSubfolder)
	if err != nil {
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if req.Size > s.config.MaxFileSize {
		s.metrics.RecordUpload(metrics.UploadTooLarge, 0)
		return nil, apperrors.ErrFileTooLarge(s.config.MaxFileSize)
	}

	data, err := io.ReadAll(io.LimitReader(req.Body, s.config.MaxFileSize+1))
	if err != nil {
		return nil, apperrors.NewBadRequestError("failed to read uploaded file")
	}
	if int64(len(data)) > s.config.MaxFileSize {
		s.metrics.RecordUpload(metrics.UploadTooLarge, 0)
		return nil, apperrors.ErrFileTooLarge(s.config.MaxFileSize)
	}

	sniffed := mimetype.Detect(data)
	contentType, ok := s.matchAllowed(sniffed)
	if !ok {
		s.metrics.RecordUpload(metrics.UploadInvalidType, 0)
		log.Warn("upload content does not match an allowed type",
			"declared", declared, "detected", sniffed.String(), "filename", req.Filename)
		return nil, apperrors.ErrInvalidFileType(sniffed.String())
	}

	if ext == "" {
		ext = sniffed.Extension()
	}
	key := path.Join(subfolder, newToken()+ext)

	obj, err := s.storage.Put(ctx, key, data, contentType)
	if err != nil {
		s.metrics.RecordUpload(metrics.UploadStorageError, 0)
		return nil, s.storageError(err)
	}

	optimized := false
	if s.config.OptimizeImages && s.optimizer != nil {
		if stored, ok := s.optimize(ctx, key, data, contentType); ok {
			obj, data, optimized = stored.Object, stored.data, true
		}
	}

	s.metrics.RecordUpload(metrics.UploadStored, obj.Size)
	log.Info("file uploaded", "key", obj.Key, "size", obj.Size, "backend", s.storage.Backend())

	resp := &dto.UploadResponse{
		Message:     "File uploaded successfully",
		Key:         obj.Key,
		FilePath:    obj.Key,
		URL:         obj.URL,
		ContentType: contentType,
		Size:        obj.Size,
		Optimized:   optimized,
		Backend:     s.storage.Backend(),
	}
	if w, h, err := imageprocessor.Dimensions(data); err == nil {
		resp.Width, resp.Height = w, h
	}
	return resp, nil
}

type optimizedObject struct {
	*storage.Object
	data []byte
}

// optimize replaces the stored object with a smaller rendition. Any failure
// leaves the original in place.
func (s *uploadService) optimize(ctx context.Context, key string, data []byte, contentType string) (*optimizedObject, bool) {
	out, changed, err := s.optimizer.Optimize(data)
	if err != nil {
		s.metrics.RecordOptimization(metrics.OptimizeFailed)
		logger.CtxWarn(ctx, "image optimization failed", "key", key, "error", err.Error())
		return nil, false
	}
	if !changed {
		s.metrics.RecordOptimization(metrics.OptimizeSkipped)
		return nil, false
	}

	obj, err := s.storage.Put(ctx, key, out, contentType)
	if err != nil {
		s.metrics.RecordOptimization(metrics.OptimizeFailed)
		logger.CtxWarn(ctx, "image optimization failed", "key", key, "error", err.Error())
		return nil, false
	}

	s.metrics.RecordOptimization(metrics.OptimizeApplied)
	return &optimizedObject{Object: obj, data: out}, true
}

func (s *uploadService) Delete(ctx context.Context, key string) error {
	if err := s.storage.Delete(ctx, key); err != nil {
		return s.storageError(err)
	}
	logger.CtxInfo(ctx, "file deleted", "key", key)
	return nil
}

func (s *uploadService) Open(ctx context.Context, key string) (*storage.Blob, error) {
	blob, err := s.storage.Get(ctx, key)
	if err != nil {
		return nil, s.storageError(err)
	}
	return blob, nil
}

func (s *uploadService) storageError(err error) error {
	switch {
	case errors.Is(err, storage.ErrObjectNotFound):
		return apperrors.ErrNotFound("file")
	case errors.Is(err, storage.ErrInvalidKey):
		return apperrors.NewBadRequestError("invalid file key")
	default:
		return apperrors.ErrStorageUnavailable(err)
	}
}

// declaredType is the client's Content-Type, or the type implied by the
// extension when the client sent nothing useful.
func (s *uploadService) declaredType(header, filename string) string {
	contentType := ""
	if header != "" {
		if mediaType, _, err := mime.ParseMediaType(header); err == nil {
			contentType = strings.ToLower(mediaType)
		}
	}
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mimeTypeForExt(strings.ToLower(filepath.Ext(filename)))
	}
	return contentType
}

func (s *uploadService) isAllowed(contentType string) bool {
	for _, allowed := range s.config.AllowedTypes {
		if strings.EqualFold(allowed, contentType) {
			return true
		}
	}
	return false
}

// matchAllowed returns the allow-list entry the sniffed type satisfies.
func (s *uploadService) matchAllowed(mt *mimetype.MIME) (string, bool) {
	for _, allowed := range s.config.AllowedTypes {
		if mt.Is(allowed) {
			return allowed, true
		}
	}
	return "", false
}

func mimeTypeForExt(ext string) string {
	mimeTypes := map[string]string{
		".jpg":  "image/jpeg",
		".jpeg": "image/jpeg",
		".png":  "image/png",
		".gif":  "image/gif",
		".webp": "image/webp",
	}
	if mimeType, ok := mimeTypes[ext]; ok {
		return mimeType
	}
	return "application/octet-stream"
}

func cleanSubfolder(subfolder, fallback string) (string, error) {
	subfolder = strings.TrimSpace(subfolder)
	if subfolder == "" {
		return fallback, nil
	}
	if strings.HasPrefix(subfolder, "/") || strings.Contains(subfolder, `\`) {
		return "", fmt.Errorf("invalid subfolder %q", subfolder)
	}
	for _, part := range strings.Split(subfolder, "/") {
		if part == ".." {
			return "", fmt.Errorf("invalid subfolder %q", subfolder)
		}
	}
	cleaned := path.Clean(subfolder)
	if cleaned == "." {
		return fallback, nil
	}
	return cleaned, nil
}

// newToken is 32 hex characters from a random UUID.
func newToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
