package dto

import "io"

// UploadRequest is one file handed to the gatekeeper.
type UploadRequest struct {
	Filename    string
	ContentType string // as declared by the client
	Size        int64  // as declared by the client; -1 when unknown
	Body        io.Reader
	Subfolder   string
}

type UploadResponse struct {
	Message     string `json:"message"`
	Key         string `json:"key"`
	FilePath    string `json:"file_path"`
	URL         string `json:"url"`
	ContentType string `json:"content_type"`
	Size        int64  `json:"size"`
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Optimized   bool   `json:"optimized"`
	Backend     string `json:"backend"`
}
