package helpers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"sitecms_backend/internal/app"
	"sitecms_backend/internal/config"
	"sitecms_backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const (
	AdminUsername = "admin"
	AdminPassword = "correct-horse"
)

// TestServer is the full application router over a private SQLite database
// and a temporary local media directory.
type TestServer struct {
	t      *testing.T
	Router *gin.Engine
	DB     *gorm.DB
	Config *config.Config
}

func NewTestServer(t *testing.T, configure ...func(*config.Config)) *TestServer {
	return newTestServer(t, nil, configure...)
}

// NewRemoteTestServer is NewTestServer with the media store backed by an
// in-memory S3 bucket.
func NewRemoteTestServer(t *testing.T, bucket *FakeS3, configure ...func(*config.Config)) *TestServer {
	return newTestServer(t, storage.NewS3StorageWithClient(bucket, "media"), configure...)
}

func newTestServer(t *testing.T, store storage.Storage, configure ...func(*config.Config)) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := config.Default()
	cfg.Auth.SecretKey = "test-secret"
	cfg.Auth.AdminUsername = AdminUsername
	cfg.Auth.AdminPassword = AdminPassword
	cfg.Storage.BasePath = t.TempDir()
	for _, fn := range configure {
		fn(cfg)
	}

	db := NewTestDB(t)
	var (
		router *gin.Engine
		err    error
	)
	if store != nil {
		router, err = app.SetupRouterWithStorage(cfg, db, store)
	} else {
		router, err = app.SetupRouter(cfg, db)
	}
	require.NoError(t, err)

	return &TestServer{t: t, Router: router, DB: db, Config: cfg}
}

// Do sends a request with an optional JSON body and bearer token.
func (s *TestServer) Do(method, path string, body any, token string) *httptest.ResponseRecorder {
	s.t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(s.t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return s.Serve(req)
}

func (s *TestServer) Serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

// Login returns an admin session token.
func (s *TestServer) Login() string {
	s.t.Helper()

	w := s.Do(http.MethodPost, "/api/v1/auth/login", map[string]string{
		"username": AdminUsername,
		"password": AdminPassword,
	}, "")
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"access_token"`
	}
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(s.t, resp.Token)
	return resp.Token
}

// Decode unmarshals the response body into v.
func Decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}
