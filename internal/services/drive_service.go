// internal/services/drive_service.go
package services

import (
	"context"
	"fmt"
	"io"
	"os"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"github.com/studyshelf/studyshelf-backend/internal/config"
)

// DriveService stores book documents in Google Drive under a service
// account. Every uploaded file gets an anyone/reader permission so the
// returned link works without a Google login.
type DriveService struct {
	srv *drive.Service
}

func NewDriveService(ctx context.Context, cfg *config.Config) (*DriveService, error) {
	var opts []option.ClientOption
	switch {
	case cfg.Drive.ServiceAccountJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.Drive.ServiceAccountJSON)))
	case cfg.Drive.CredentialsFile != "":
		if _, err := os.Stat(cfg.Drive.CredentialsFile); err != nil {
			// Local development without a key file: fail at call time
			return &DriveService{}, nil
		}
		opts = append(opts, option.WithCredentialsFile(cfg.Drive.CredentialsFile))
	default:
		return &DriveService{}, nil
	}
	opts = append(opts, option.WithScopes(drive.DriveScope))

	srv, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create drive service: %w", err)
	}

	return &DriveService{srv: srv}, nil
}

func (s *DriveService) Upload(ctx context.Context, localPath, originalName, contentType string) (*RemoteUpload, error) {
	if s.srv == nil {
		return nil, fmt.Errorf("drive storage is not configured")
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	created, err := s.srv.Files.Create(&drive.File{Name: originalName}).
		Media(f, googleapi.ContentType(contentType)).
		Fields("id, name, size, mimeType, webViewLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to upload to drive: %w", err)
	}

	// Make the file readable by anyone with the link
	_, err = s.srv.Permissions.Create(created.Id, &drive.Permission{
		Role: "reader",
		Type: "anyone",
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to set drive permissions: %w", err)
	}

	return &RemoteUpload{
		URL:      fmt.Sprintf("https://drive.google.com/uc?id=%s", created.Id),
		FileID:   created.Id,
		Size:     created.Size,
		MimeType: created.MimeType,
	}, nil
}

func (s *DriveService) Delete(ctx context.Context, fileID string) error {
	if s.srv == nil {
		return fmt.Errorf("drive storage is not configured")
	}

	if err := s.srv.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete drive file: %w", err)
	}

	return nil
}

func (s *DriveService) Metadata(ctx context.Context, fileID string) (string, string, error) {
	if s.srv == nil {
		return "", "", fmt.Errorf("drive storage is not configured")
	}

	f, err := s.srv.Files.Get(fileID).Fields("name, mimeType").Context(ctx).Do()
	if err != nil {
		return "", "", fmt.Errorf("failed to get drive metadata: %w", err)
	}

	return f.Name, f.MimeType, nil
}

func (s *DriveService) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	if s.srv == nil {
		return nil, fmt.Errorf("drive storage is not configured")
	}

	resp, err := s.srv.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("failed to download drive file: %w", err)
	}

	return resp.Body, nil
}
