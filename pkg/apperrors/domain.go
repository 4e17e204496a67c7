package apperrors

import (
	"fmt"
	"net/http"
)

// Factories return a fresh value on every call so callers can attach details
// without mutating shared state.

// ErrNotFound reports a missing entity of the given domain ("project", "blog_post", ...).
func ErrNotFound(domain string) *AppError {
	return New(CodeNotFound, domain, fmt.Sprintf("%s not found", humanize(domain)), http.StatusNotFound)
}

// ErrConflict reports a uniqueness violation, usually a duplicate slug.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidFileType(contentType string) *AppError {
	return New(CodeInvalidFileType, "upload", "The provided file type is not allowed", http.StatusBadRequest).
		WithDetails(map[string]string{"content_type": contentType})
}

func ErrFileTooLarge(maxSize int64) *AppError {
	return New(CodeFileTooLarge, "upload", "File size exceeds the allowed limit", http.StatusBadRequest).
		WithDetails(map[string]int64{"max_size": maxSize})
}

func ErrStorageUnavailable(err error) *AppError {
	return Wrap(err, CodeStorageUnavailable, "storage", "Storage backend unavailable", http.StatusInternalServerError)
}

func ErrInvalidCredentials() *AppError {
	return New(CodeInvalidCredentials, "auth", "Invalid username or password", http.StatusUnauthorized)
}

func humanize(domain string) string {
	out := []byte(domain)
	for i, b := range out {
		if b == '_' {
			out[i] = ' '
		}
	}
	if len(out) > 0 && out[0] >= 'a' && out[0] <= 'z' {
		out[0] -= 'a' - 'A'
	}
	return string(out)
}
