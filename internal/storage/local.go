package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// LocalStorage keeps objects as files under basePath. Files are exposed by
// the router's static handler under StaticPrefix.
type LocalStorage struct {
	basePath string
}

func NewLocalStorage(cfg Config) (*LocalStorage, error) {
	if cfg.BasePath == "" {
		cfg.BasePath = "static"
	}

	if err := os.MkdirAll(cfg.BasePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	return &LocalStorage{basePath: cfg.BasePath}, nil
}

func (s *LocalStorage) Backend() string { return BackendLocal }

func (s *LocalStorage) BasePath() string { return s.basePath }

func (s *LocalStorage) fullPath(key string) (string, error) {
	key, err := CleanKey(key)
	if err != nil {
		return "", err
	}
	return filepath.Join(s.basePath, filepath.FromSlash(key)), nil
}

// Put writes to a temporary file and renames it into place so readers never
// see a partial object.
func (s *LocalStorage) Put(ctx context.Context, key string, data []byte, contentType string) (*Object, error) {
	key, err := CleanKey(key)
	if err != nil {
		return nil, err
	}
	fullPath := filepath.Join(s.basePath, filepath.FromSlash(key))

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, unavailable("create directory", err)
	}

	tmp, err := os.CreateTemp(dir, ".upload-*")
	if err != nil {
		return nil, unavailable("create file", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return nil, unavailable("write file", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return nil, unavailable("chmod file", err)
	}
	if err := tmp.Close(); err != nil {
		return nil, unavailable("close file", err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		return nil, unavailable("rename file", err)
	}

	return &Object{
		Key:         key,
		URL:         s.URL(key),
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}

func (s *LocalStorage) Get(ctx context.Context, key string) (*Blob, error) {
	fullPath, err := s.fullPath(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(fullPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrObjectNotFound
	}
	if err != nil {
		return nil, unavailable("open file", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, unavailable("stat file", err)
	}
	if info.IsDir() {
		file.Close()
		return nil, ErrObjectNotFound
	}

	contentType := "application/octet-stream"
	if mt, err := mimetype.DetectFile(fullPath); err == nil {
		contentType = mt.String()
	}

	return &Blob{Body: file, ContentType: contentType, Size: info.Size()}, nil
}

func (s *LocalStorage) Delete(ctx context.Context, key string) error {
	fullPath, err := s.fullPath(key)
	if err != nil {
		return err
	}

	if err := os.Remove(fullPath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrObjectNotFound
		}
		return unavailable("delete file", err)
	}
	return nil
}

func (s *LocalStorage) Exists(ctx context.Context, key string) (bool, error) {
	fullPath, err := s.fullPath(key)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(fullPath)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, unavailable("stat file", err)
	}
	return !info.IsDir(), nil
}

func (s *LocalStorage) URL(key string) string {
	if cleaned, err := CleanKey(key); err == nil {
		key = cleaned
	}
	return StaticPrefix + "/" + key
}
