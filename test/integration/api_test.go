package integration_test

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"sitecms_backend/internal/config"
	"sitecms_backend/internal/handlers"
	"sitecms_backend/internal/storage"
	"sitecms_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	srv := helpers.NewTestServer(t)

	w := srv.Do(http.MethodGet, "/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	helpers.Decode(t, w, &body)
	assert.Equal(t, "ok", body["database"])
	assert.Equal(t, "local", body["storage"])
}

func TestAuthFlow(t *testing.T) {
	srv := helpers.NewTestServer(t)

	w := srv.Do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": helpers.AdminUsername,
		"password": "wrong",
	}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.Do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": helpers.AdminUsername,
		"password": helpers.AdminPassword,
	}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var session *http.Cookie
	for _, c := range w.Result().Cookies() {
		if c.Name == "session" {
			session = c
		}
	}
	require.NotNil(t, session)
	assert.True(t, session.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/check", nil)
	req.AddCookie(session)
	w = srv.Serve(req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"authenticated":true,"username":"admin"}`, w.Body.String())

	w = srv.Do(http.MethodGet, "/api/v1/auth/check", nil, "")
	assert.JSONEq(t, `{"authenticated":false}`, w.Body.String())
}

func TestMutationsRequireAdmin(t *testing.T) {
	srv := helpers.NewTestServer(t)

	w := srv.Do(http.MethodPost, "/api/v1/services", map[string]any{
		"number": "01", "slug": "painting", "title": "Painting", "description": "Walls",
	}, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.Do(http.MethodGet, "/api/v1/contacts", nil, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = srv.Do(http.MethodGet, "/api/v1/services", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestServiceCRUD(t *testing.T) {
	srv := helpers.NewTestServer(t)
	token := srv.Login()

	w := srv.Do(http.MethodPost, "/api/v1/services", map[string]any{
		"number":      "02",
		"slug":        "flooring",
		"title":       "Flooring",
		"description": "Floors",
		"benefits":    []string{"durable", "fast"},
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID       uint     `json:"id"`
		Title    string   `json:"title"`
		Benefits []string `json:"benefits"`
	}
	helpers.Decode(t, w, &created)
	assert.Equal(t, []string{"durable", "fast"}, created.Benefits)

	w = srv.Do(http.MethodPost, "/api/v1/services", map[string]any{
		"number": "03", "slug": "flooring", "title": "Dup", "description": "Dup",
	}, token)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = srv.Do(http.MethodPost, "/api/v1/services", map[string]any{
		"number": "03", "slug": "Not A Slug", "title": "Bad", "description": "Bad",
	}, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.Do(http.MethodPut, fmt.Sprintf("/api/v1/services/%d", created.ID), map[string]any{
		"title": "Floor fitting",
	}, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated struct {
		Title       string `json:"title"`
		Description string `json:"description"`
	}
	helpers.Decode(t, w, &updated)
	assert.Equal(t, "Floor fitting", updated.Title)
	assert.Equal(t, "Floors", updated.Description)

	w = srv.Do(http.MethodGet, "/api/v1/services/slug/flooring", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.Do(http.MethodGet, "/api/v1/services/number/02", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.Do(http.MethodDelete, fmt.Sprintf("/api/v1/services/%d", created.ID), nil, token)
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.Do(http.MethodGet, fmt.Sprintf("/api/v1/services/%d", created.ID), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPaginationBounds(t *testing.T) {
	srv := helpers.NewTestServer(t)

	for _, query := range []string{"limit=0", "limit=101", "skip=-1", "limit=abc"} {
		w := srv.Do(http.MethodGet, "/api/v1/services?"+query, nil, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
	}

	w := srv.Do(http.MethodGet, "/api/v1/services?skip=0&limit=100", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProjectImagesCascade(t *testing.T) {
	srv := helpers.NewTestServer(t)
	token := srv.Login()

	w := srv.Do(http.MethodPost, "/api/v1/projects", map[string]any{
		"slug": "loft", "number": "01", "title": "Loft", "category": "residential",
		"location": "Paris", "description": "A loft", "is_featured": true,
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var project struct {
		ID uint `json:"id"`
	}
	helpers.Decode(t, w, &project)

	for i, label := range []string{"kitchen", "bath"} {
		w = srv.Do(http.MethodPost, fmt.Sprintf("/api/v1/projects/%d/images", project.ID), map[string]any{
			"before_image": "/static/projects/b.jpg",
			"after_image":  "/static/projects/a.jpg",
			"label":        label,
			"order_index":  1 - i,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w = srv.Do(http.MethodPost, "/api/v1/projects/999/images", map[string]any{
		"before_image": "b", "after_image": "a",
	}, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.Do(http.MethodGet, "/api/v1/projects/slug/loft", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var loaded struct {
		Images []struct {
			Label string `json:"label"`
		} `json:"images"`
	}
	helpers.Decode(t, w, &loaded)
	require.Len(t, loaded.Images, 2)
	assert.Equal(t, "bath", loaded.Images[0].Label)

	w = srv.Do(http.MethodGet, "/api/v1/projects/featured", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"loft"`)

	w = srv.Do(http.MethodDelete, fmt.Sprintf("/api/v1/projects/%d", project.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var remaining int64
	require.NoError(t, srv.DB.Table("project_images").Count(&remaining).Error)
	assert.Zero(t, remaining)
}

func TestContactSubmissionIsPublic(t *testing.T) {
	srv := helpers.NewTestServer(t)

	w := srv.Do(http.MethodPost, "/api/v1/contacts", map[string]any{
		"name": "Jean", "email": "jean@example.com", "message": "Hello",
		"services": []string{"painting"},
	}, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = srv.Do(http.MethodPost, "/api/v1/contacts", map[string]any{
		"name": "Jean", "email": "not-an-email", "message": "Hello",
	}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	token := srv.Login()
	w = srv.Do(http.MethodGet, "/api/v1/contacts?unread_only=true", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "jean@example.com")
}

func TestTestimonialReorderByQuery(t *testing.T) {
	srv := helpers.NewTestServer(t)
	token := srv.Login()

	w := srv.Do(http.MethodPost, "/api/v1/testimonials", map[string]any{
		"name": "Anna", "location": "Lyon", "text": "Great",
	}, token)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		ID     uint `json:"id"`
		Rating int  `json:"rating"`
	}
	helpers.Decode(t, w, &created)
	assert.Equal(t, 5, created.Rating)

	w = srv.Do(http.MethodPatch, fmt.Sprintf("/api/v1/testimonials/%d/reorder?new_order=4", created.ID), nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), `"order_index":4`)

	w = srv.Do(http.MethodGet, "/api/v1/testimonials/active", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Anna")
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 4))
	img.Set(1, 1, color.RGBA{R: 200, A: 255})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func multipartUpload(t *testing.T, filename, contentType string, data []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := mw.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &body, mw.FormDataContentType()
}

func TestUploadServeAndDelete(t *testing.T) {
	srv := helpers.NewTestServer(t)
	token := srv.Login()
	data := pngBytes(t)

	body, contentType := multipartUpload(t, "Photo.PNG", "image/png", data)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload?subfolder=projects", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := srv.Serve(req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var uploaded struct {
		Key    string `json:"key"`
		URL    string `json:"url"`
		Width  int    `json:"width"`
		Height int    `json:"height"`
	}
	helpers.Decode(t, w, &uploaded)
	assert.Regexp(t, `^projects/[0-9a-f]{32}\.png$`, uploaded.Key)
	assert.Equal(t, "/static/"+uploaded.Key, uploaded.URL)
	assert.Equal(t, 8, uploaded.Width)
	assert.Equal(t, 4, uploaded.Height)

	w = srv.Do(http.MethodGet, uploaded.URL, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, data, w.Body.Bytes())

	w = srv.Do(http.MethodGet, "/api/v1/media/"+uploaded.Key, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, handlers.MediaCacheControl, w.Header().Get("Cache-Control"))
	assert.Equal(t, data, w.Body.Bytes())

	w = srv.Do(http.MethodDelete, "/api/v1/upload/"+uploaded.Key, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = srv.Do(http.MethodDelete, "/api/v1/upload/"+uploaded.Key, nil, token)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = srv.Do(http.MethodGet, "/api/v1/media/"+uploaded.Key, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadRemoteBackendServesThroughProxy(t *testing.T) {
	bucket := helpers.NewFakeS3()
	srv := helpers.NewRemoteTestServer(t, bucket)
	token := srv.Login()
	data := pngBytes(t)

	body, contentType := multipartUpload(t, "cover.png", "image/png", data)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload?subfolder=blog", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := srv.Serve(req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var uploaded struct {
		Key     string `json:"key"`
		URL     string `json:"url"`
		Backend string `json:"backend"`
	}
	helpers.Decode(t, w, &uploaded)
	assert.Equal(t, "/api/v1/media/"+uploaded.Key, uploaded.URL)
	assert.Equal(t, storage.BackendRemote, uploaded.Backend)

	stored, ok := bucket.Object(uploaded.Key)
	require.True(t, ok)
	assert.Equal(t, data, stored)

	w = srv.Do(http.MethodGet, uploaded.URL, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Equal(t, handlers.MediaCacheControl, w.Header().Get("Cache-Control"))
	assert.Equal(t, data, w.Body.Bytes())

	w = srv.Do(http.MethodDelete, "/api/v1/upload/"+uploaded.Key, nil, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	_, ok = bucket.Object(uploaded.Key)
	assert.False(t, ok)

	w = srv.Do(http.MethodGet, uploaded.URL, nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUploadRejections(t *testing.T) {
	srv := helpers.NewTestServer(t, func(cfg *config.Config) {
		cfg.Upload.MaxSize = 64
	})
	token := srv.Login()

	cases := []struct {
		name, filename, contentType string
		data                        []byte
		code                        string
	}{
		{"disallowed type", "notes.txt", "text/plain", []byte("hello"), "INVALID_FILE_TYPE"},
		{"renamed text file", "fake.png", "image/png", []byte("definitely not an image"), "INVALID_FILE_TYPE"},
		{"too large", "big.png", "image/png", bytes.Repeat([]byte{0x89}, 65), "FILE_TOO_LARGE"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, contentType := multipartUpload(t, tc.filename, tc.contentType, tc.data)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", body)
			req.Header.Set("Content-Type", contentType)
			req.Header.Set("Authorization", "Bearer "+token)
			w := srv.Serve(req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.True(t, strings.Contains(w.Body.String(), tc.code), w.Body.String())
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	srv := helpers.NewTestServer(t)
	srv.Do(http.MethodGet, "/api/v1/services", nil, "")

	w := srv.Do(http.MethodGet, "/metrics", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "requests_total")
}
