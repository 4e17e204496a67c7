package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
)

var (
	ErrObjectNotFound     = errors.New("object not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrInvalidKey         = errors.New("invalid object key")
)

const (
	BackendLocal  = "local"
	BackendRemote = "s3"

	// StaticPrefix is where the local backend's files are served.
	StaticPrefix = "/static"
	// ProxyPrefix is the application route that streams remote objects.
	ProxyPrefix = "/api/v1/media"
)

// Object describes a stored blob.
type Object struct {
	Key         string `json:"key"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
}

// Blob is an open object. The caller must close Body.
type Blob struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// Storage is the Media Store: an opaque key → bytes mapping with a public URL
// for every key.
type Storage interface {
	// Put stores data under key, replacing whatever was there.
	Put(ctx context.Context, key string, data []byte, contentType string) (*Object, error)

	// Get opens the object. ErrObjectNotFound when the key is unknown.
	Get(ctx context.Context, key string) (*Blob, error)

	// Delete removes the object. ErrObjectNotFound when the key is unknown.
	Delete(ctx context.Context, key string) error

	Exists(ctx context.Context, key string) (bool, error)

	// URL returns the public URL clients use to fetch key.
	URL(key string) string

	// Backend names the implementation, "local" or "s3".
	Backend() string
}

type Config struct {
	BasePath  string // local root directory
	Endpoint  string
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// Remote reports whether every remote setting is present.
func (c Config) Remote() bool {
	return c.Endpoint != "" && c.Bucket != "" && c.AccessKey != "" && c.SecretKey != ""
}

// NewStorage selects the backend once: remote when fully configured,
// local otherwise.
func NewStorage(cfg Config) (Storage, error) {
	if cfg.Remote() {
		return NewS3Storage(cfg)
	}
	return NewLocalStorage(cfg)
}

// CleanKey normalises a client-supplied key and rejects anything that could
// escape the store's namespace.
func CleanKey(key string) (string, error) {
	key = strings.TrimPrefix(strings.TrimSpace(key), "/")
	if key == "" || strings.Contains(key, `\`) || strings.ContainsRune(key, 0) {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	for _, part := range strings.Split(key, "/") {
		if part == ".." {
			return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
		}
	}

	cleaned := path.Clean(key)
	if cleaned == "." || strings.HasPrefix(cleaned, "/") {
		return "", fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return cleaned, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStorageUnavailable, op, err)
}
