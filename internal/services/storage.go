// internal/services/storage.go
package services

import (
	"context"
	"io"
)

// RemoteUpload is what a storage backend reports after a successful upload.
type RemoteUpload struct {
	URL      string `json:"url"`
	FileID   string `json:"file_id"`
	Size     int64  `json:"size"`
	MimeType string `json:"mime_type"`
}

// MediaStorage holds publicly served media such as cover images.
type MediaStorage interface {
	Upload(ctx context.Context, localPath, originalName, contentType string) (*RemoteUpload, error)
	Delete(ctx context.Context, fileID string) error
	// Owns reports whether the given URL or file id belongs to this backend.
	Owns(ref string) bool
}

// DriveStorage holds book documents. Downloads are proxied through the API
// rather than served from a public URL.
type DriveStorage interface {
	Upload(ctx context.Context, localPath, originalName, contentType string) (*RemoteUpload, error)
	Delete(ctx context.Context, fileID string) error
	Metadata(ctx context.Context, fileID string) (name, mimeType string, err error)
	Download(ctx context.Context, fileID string) (io.ReadCloser, error)
}
