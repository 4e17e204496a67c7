package services_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"sitecms_backend/internal/services"
	"sitecms_backend/internal/services/dto"
	"sitecms_backend/internal/storage"
	"sitecms_backend/pkg/apperrors"
	"sitecms_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyStorage counts calls into the wrapped store.
type spyStorage struct {
	storage.Storage
	puts int
}

func (s *spyStorage) Put(ctx context.Context, key string, data []byte, contentType string) (*storage.Object, error) {
	s.puts++
	return s.Storage.Put(ctx, key, data, contentType)
}

// trackingReader records whether anything read from it.
type trackingReader struct {
	r    io.Reader
	read bool
}

func (t *trackingReader) Read(p []byte) (int, error) {
	t.read = true
	return t.r.Read(p)
}

type stubOptimizer struct {
	out     []byte
	changed bool
	err     error
}

func (o stubOptimizer) Optimize([]byte) ([]byte, bool, error) {
	return o.out, o.changed, o.err
}

func jpegBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for x := 0; x < 8; x++ {
		img.Set(x, 0, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, img, &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func pngBytes(size int) []byte {
	data := make([]byte, size)
	copy(data, "\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	return data
}

func newLocalUploads(t *testing.T, cfg *services.UploadConfig, opt services.Optimizer) (services.UploadService, *spyStorage, string) {
	t.Helper()
	base := t.TempDir()
	local, err := storage.NewLocalStorage(storage.Config{BasePath: base})
	require.NoError(t, err)
	spy := &spyStorage{Storage: local}
	return services.NewUploadService(spy, opt, nil, cfg), spy, base
}

func requireCode(t *testing.T, err error, code apperrors.ErrorCode, status int) {
	t.Helper()
	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, status, appErr.HTTPCode)
}

func TestUpload_RejectsDisallowedTypeBeforeReading(t *testing.T) {
	svc, spy, _ := newLocalUploads(t, nil, nil)
	body := &trackingReader{r: bytes.NewReader([]byte("plain text"))}

	_, err := svc.Upload(context.Background(), &dto.UploadRequest{
		Filename:    "notes.txt",
		ContentType: "text/plain",
		Size:        10,
		Body:        body,
	})

	requireCode(t, err, apperrors.CodeInvalidFileType, http.StatusBadRequest)
	assert.Zero(t, spy.puts)
	assert.False(t, body.read)
}

func TestUpload_RejectsRenamedFile(t *testing.T) {
	svc, spy, _ := newLocalUploads(t, nil, nil)

	_, err := svc.Upload(context.Background(), &dto.UploadRequest{
		Filename:    "evil.jpg",
		ContentType: "image/jpeg",
		Size:        -1,
		Body:        bytes.NewReader([]byte("#!/bin/sh\necho hi\n")),
	})

	requireCode(t, err, apperrors.CodeInvalidFileType, http.StatusBadRequest)
	assert.Zero(t, spy.puts)
}

func TestUpload_FallsBackToExtension(t *testing.T) {
	svc, spy, _ := newLocalUploads(t, nil, nil)

	resp, err := svc.Upload(context.Background(), &dto.UploadRequest{
		Filename:    "logo.png",
		ContentType: "application/octet-stream",
		Size:        64,
		Body:        bytes.NewReader(pngBytes(64)),
	})
	require.NoError(t, err)
	assert.Equal(t, "image/png", resp.ContentType)
	assert.Equal(t, 1, spy.puts)
}

func TestUpload_SizeCeiling(t *testing.T) {
	cfg := services.GetDefaultUploadConfig()
	cfg.MaxFileSize = 64

	t.Run("exactly the maximum is accepted", func(t *testing.T) {
		svc, _, _ := newLocalUploads(t, cfg, nil)
		resp, err := svc.Upload(context.Background(), &dto.UploadRequest{
			Filename: "a.png", ContentType: "image/png", Size: -1,
			Body: bytes.NewReader(pngBytes(64)),
		})
		require.NoError(t, err)
		assert.Equal(t, int64(64), resp.Size)
	})

	t.Run("one byte more is rejected", func(t *testing.T) {
		svc, spy, _ := newLocalUploads(t, cfg, nil)
		_, err := svc.Upload(context.Background(), &dto.UploadRequest{
			Filename: "a.png", ContentType: "image/png", Size: -1,
			Body: bytes.NewReader(pngBytes(65)),
		})
		requireCode(t, err, apperrors.CodeFileTooLarge, http.StatusBadRequest)
		assert.Zero(t, spy.puts)
	})

	t.Run("declared size over the limit is rejected without reading", func(t *testing.T) {
		svc, spy, _ := newLocalUploads(t, cfg, nil)
		body := &trackingReader{r: bytes.NewReader(pngBytes(65))}
		_, err := svc.Upload(context.Background(), &dto.UploadRequest{
			Filename: "a.png", ContentType: "image/png", Size: 65, Body: body,
		})
		requireCode(t, err, apperrors.CodeFileTooLarge, http.StatusBadRequest)
		assert.Zero(t, spy.puts)
		assert.False(t, body.read)
	})
}

func TestUpload_LocalKeyAndContent(t *testing.T) {
	svc, _, base := newLocalUploads(t, nil, nil)
	data := jpegBytes(t)

	resp, err := svc.Upload(context.Background(), &dto.UploadRequest{
		Filename:    "photo.JPG",
		ContentType: "image/jpeg",
		Size:        int64(len(data)),
		Body:        bytes.NewReader(data),
		Subfolder:   "projects",
	})
	require.NoError(t, err)

	assert.Regexp(t, regexp.MustCompile(`^projects/[0-9a-f]{32}\.jpg$`), resp.Key)
	assert.Equal(t, resp.Key, resp.FilePath)
	assert.Equal(t, "/static/"+resp.Key, resp.URL)
	assert.Equal(t, "image/jpeg", resp.ContentType)
	assert.Equal(t, 8, resp.Width)
	assert.Equal(t, 4, resp.Height)
	assert.Equal(t, storage.BackendLocal, resp.Backend)

	stored, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(resp.Key)))
	require.NoError(t, err)
	assert.Equal(t, data, stored)

	other, err := svc.Upload(context.Background(), &dto.UploadRequest{
		Filename: "photo.JPG", ContentType: "image/jpeg", Size: -1,
		Body: bytes.NewReader(data), Subfolder: "projects",
	})
	require.NoError(t, err)
	assert.NotEqual(t, resp.Key, other.Key)
}

func TestUpload_RemoteRoundTrip(t *testing.T) {
	fake := helpers.NewFakeS3()
	svc := services.NewUploadService(storage.NewS3StorageWithClient(fake, "media"), nil, nil, nil)
	data := jpegBytes(t)

	resp, err := svc.Upload(context.Background(), &dto.UploadRequest{
		Filename: "site.jpeg", ContentType: "image/jpeg", Size: -1,
		Body: bytes.NewReader(data), Subfolder: "blog",
	})
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/media/"+resp.Key, resp.URL)
	assert.Equal(t, storage.BackendRemote, resp.Backend)

	blob, err := svc.Open(context.Background(), resp.Key)
	require.NoError(t, err)
	defer blob.Body.Close()
	got, err := io.ReadAll(blob.Body)
	require.NoError(t, err)
	assert.Equal(t, data, got)
	assert.Equal(t, "image/jpeg", blob.ContentType)
}

func TestUpload_Optimization(t *testing.T) {
	cfg := services.GetDefaultUploadConfig()
	cfg.OptimizeImages = true
	data := jpegBytes(t)

	t.Run("failure keeps the original", func(t *testing.T) {
		svc, _, base := newLocalUploads(t, cfg, stubOptimizer{err: errors.New("decode failed")})
		resp, err := svc.Upload(context.Background(), &dto.UploadRequest{
			Filename: "a.jpg", ContentType: "image/jpeg", Size: -1, Body: bytes.NewReader(data),
		})
		require.NoError(t, err)
		assert.False(t, resp.Optimized)

		stored, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(resp.Key)))
		require.NoError(t, err)
		assert.Equal(t, data, stored)
	})

	t.Run("smaller rendition replaces the original", func(t *testing.T) {
		smaller := data[:len(data)/2]
		svc, spy, base := newLocalUploads(t, cfg, stubOptimizer{out: smaller, changed: true})
		resp, err := svc.Upload(context.Background(), &dto.UploadRequest{
			Filename: "a.jpg", ContentType: "image/jpeg", Size: -1, Body: bytes.NewReader(data),
		})
		require.NoError(t, err)
		assert.True(t, resp.Optimized)
		assert.Equal(t, 2, spy.puts)
		assert.Equal(t, int64(len(smaller)), resp.Size)

		stored, err := os.ReadFile(filepath.Join(base, filepath.FromSlash(resp.Key)))
		require.NoError(t, err)
		assert.Equal(t, smaller, stored)
	})
}

func TestUpload_RejectsEscapingSubfolder(t *testing.T) {
	svc, spy, _ := newLocalUploads(t, nil, nil)

	for _, sub := range []string{"../etc", "/abs", "a/../../b"} {
		_, err := svc.Upload(context.Background(), &dto.UploadRequest{
			Filename: "a.png", ContentType: "image/png", Size: -1,
			Body: bytes.NewReader(pngBytes(32)), Subfolder: sub,
		})
		requireCode(t, err, apperrors.CodeValidationFailed, http.StatusBadRequest)
	}
	assert.Zero(t, spy.puts)
}

func TestUpload_DeleteMissingIsNotFound(t *testing.T) {
	svc, _, _ := newLocalUploads(t, nil, nil)

	err := svc.Delete(context.Background(), "uploads/missing.png")
	requireCode(t, err, apperrors.CodeNotFound, http.StatusNotFound)

	_, err = svc.Open(context.Background(), "uploads/missing.png")
	requireCode(t, err, apperrors.CodeNotFound, http.StatusNotFound)
}
