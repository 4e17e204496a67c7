package storage_test

import (
	"context"
	"io"
	"testing"

	"sitecms_backend/internal/storage"
	"sitecms_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestS3Storage_RoundTrip(t *testing.T) {
	ctx := context.Background()
	fake := helpers.NewFakeS3()
	s := storage.NewS3StorageWithClient(fake, "media")

	obj, err := s.Put(ctx, "blog/abc.png", pngHeader, "image/png")
	require.NoError(t, err)
	assert.Equal(t, "/api/v1/media/blog/abc.png", obj.URL)
	assert.NotContains(t, obj.URL, "media.")

	stored, ok := fake.Object("blog/abc.png")
	require.True(t, ok)
	assert.Equal(t, pngHeader, stored)

	blob, err := s.Get(ctx, "blog/abc.png")
	require.NoError(t, err)
	defer blob.Body.Close()
	body, err := io.ReadAll(blob.Body)
	require.NoError(t, err)
	assert.Equal(t, pngHeader, body)
	assert.Equal(t, "image/png", blob.ContentType)
	assert.Equal(t, int64(len(pngHeader)), blob.Size)

	require.NoError(t, s.Delete(ctx, "blog/abc.png"))
	assert.ErrorIs(t, s.Delete(ctx, "blog/abc.png"), storage.ErrObjectNotFound)

	_, err = s.Get(ctx, "blog/abc.png")
	assert.ErrorIs(t, err, storage.ErrObjectNotFound)
}

func TestS3Storage_BackendFailure(t *testing.T) {
	fake := helpers.NewFakeS3()
	fake.Fail = true
	s := storage.NewS3StorageWithClient(fake, "media")

	_, err := s.Put(context.Background(), "a.png", pngHeader, "image/png")
	assert.ErrorIs(t, err, storage.ErrStorageUnavailable)

	_, err = s.Get(context.Background(), "a.png")
	assert.ErrorIs(t, err, storage.ErrStorageUnavailable)

	assert.ErrorIs(t, s.Delete(context.Background(), "a.png"), storage.ErrStorageUnavailable)
}

func TestS3Storage_DeleteNormalizesKey(t *testing.T) {
	ctx := context.Background()
	fake := helpers.NewFakeS3()
	s := storage.NewS3StorageWithClient(fake, "media")

	_, err := s.Put(ctx, "blog/abc.png", pngHeader, "image/png")
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, "blog//abc.png"))
	_, ok := fake.Object("blog/abc.png")
	assert.False(t, ok, "object must be gone after a successful delete")

	assert.ErrorIs(t, s.Delete(ctx, "/blog/./abc.png"), storage.ErrObjectNotFound)
}
