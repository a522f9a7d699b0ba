// internal/services/media_service.go
package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"

	"github.com/studyshelf/studyshelf-backend/internal/config"
)

// MediaService stores cover images in S3 under a fixed folder and serves
// them from a public URL.
type MediaService struct {
	s3Client *s3.S3
	cfg      *config.MediaConfig
}

func NewMediaService(cfg *config.Config) (*MediaService, error) {
	if cfg.Media.AccessKeyID == "" {
		// Local development: uploads fail at call time with a clear error
		return &MediaService{cfg: &cfg.Media}, nil
	}

	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Media.Region),
		Credentials: credentials.NewStaticCredentials(
			cfg.Media.AccessKeyID,
			cfg.Media.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &MediaService{
		s3Client: s3.New(sess),
		cfg:      &cfg.Media,
	}, nil
}

func (s *MediaService) Upload(ctx context.Context, localPath, originalName, contentType string) (*RemoteUpload, error) {
	if s.s3Client == nil {
		return nil, fmt.Errorf("media storage is not configured")
	}

	fileBytes, err := os.ReadFile(localPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	key := s.objectKey(originalName)

	_, err = s.s3Client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.cfg.Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload to S3: %w", err)
	}

	return &RemoteUpload{
		URL:      s.publicURL(key),
		FileID:   key,
		Size:     int64(len(fileBytes)),
		MimeType: contentType,
	}, nil
}

func (s *MediaService) Delete(ctx context.Context, fileID string) error {
	if s.s3Client == nil {
		return fmt.Errorf("media storage is not configured")
	}

	_, err := s.s3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.cfg.Bucket),
		Key:    aws.String(fileID),
	})
	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

// Owns matches both full public URLs and bare object keys from this
// backend's folder.
func (s *MediaService) Owns(ref string) bool {
	if ref == "" {
		return false
	}
	if strings.HasPrefix(ref, s.cfg.Folder+"/") {
		return true
	}
	if s.cfg.CDNBaseURL != "" && strings.HasPrefix(ref, s.cfg.CDNBaseURL) {
		return true
	}
	return strings.Contains(ref, fmt.Sprintf("%s.s3.", s.cfg.Bucket))
}

func (s *MediaService) objectKey(originalName string) string {
	id := uuid.New()
	ext := filepath.Ext(originalName)
	timestamp := time.Now().Format("20060102")
	return fmt.Sprintf("%s/%s_%s%s", s.cfg.Folder, timestamp, id.String()[:8], ext)
}

func (s *MediaService) publicURL(key string) string {
	if s.cfg.CDNBaseURL != "" {
		return fmt.Sprintf("%s/%s", s.cfg.CDNBaseURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.cfg.Bucket, s.cfg.Region, key)
}
