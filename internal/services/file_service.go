// internal/services/file_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/studyshelf/studyshelf-backend/internal/config"
	"github.com/studyshelf/studyshelf-backend/internal/models"
	"github.com/studyshelf/studyshelf-backend/internal/utils"
)

// FileService routes uploads between the two storage backends and keeps
// the files table in sync with what lives remotely.
type FileService struct {
	db    *gorm.DB
	media MediaStorage
	drive DriveStorage
	cfg   *config.Config
}

type UploadFileRequest struct {
	LocalPath    string
	OriginalName string
	ContentType  string
	Size         int64
	Type         models.AssetType
	OwnerKind    models.OwnerKind
	OwnerID      uuid.UUID
	UploadedByID uuid.UUID
}

type UpdateFileRequest struct {
	Name      string            `json:"name,omitempty"`
	OwnerKind *models.OwnerKind `json:"owner_kind,omitempty"`
	OwnerID   *uuid.UUID        `json:"owner_id,omitempty"`
}

func NewFileService(db *gorm.DB, media MediaStorage, drive DriveStorage, cfg *config.Config) *FileService {
	return &FileService{
		db:    db,
		media: media,
		drive: drive,
		cfg:   cfg,
	}
}

// BackendFor maps an asset type to the storage backend that holds it.
// Cover images always go to the media backend, book documents always to
// drive.
func BackendFor(assetType models.AssetType) models.FileBackend {
	if assetType == models.AssetTypeCoverImage {
		return models.FileBackendMedia
	}
	return models.FileBackendDrive
}

func (s *FileService) Upload(ctx context.Context, req *UploadFileRequest) (*models.File, error) {
	if !req.Type.Valid() {
		return nil, errors.New("invalid asset type")
	}
	if !req.OwnerKind.Valid() {
		return nil, errors.New("invalid owner kind")
	}

	if s.cfg.Upload.MaxSize > 0 && req.Size > s.cfg.Upload.MaxSize {
		return nil, fmt.Errorf("file size %d bytes exceeds maximum allowed size %d bytes", req.Size, s.cfg.Upload.MaxSize)
	}

	ext := strings.ToLower(filepath.Ext(req.OriginalName))
	if !s.extAllowed(ext) {
		return nil, fmt.Errorf("file type %s is not allowed", ext)
	}

	var result *RemoteUpload
	var err error
	switch BackendFor(req.Type) {
	case models.FileBackendMedia:
		result, err = s.media.Upload(ctx, req.LocalPath, req.OriginalName, req.ContentType)
	default:
		result, err = s.drive.Upload(ctx, req.LocalPath, req.OriginalName, req.ContentType)
	}
	if err != nil {
		return nil, err
	}

	file := &models.File{
		Name:         req.OriginalName,
		FileURL:      result.URL,
		FileID:       result.FileID,
		Format:       strings.TrimPrefix(ext, "."),
		Size:         req.Size,
		UploadedByID: req.UploadedByID,
		OwnerKind:    req.OwnerKind,
		OwnerID:      req.OwnerID,
	}

	if err := s.db.Create(file).Error; err != nil {
		// Remote object already exists; record the orphan and fail
		logrus.WithFields(logrus.Fields{
			"file_id": result.FileID,
			"backend": BackendFor(req.Type),
		}).Error("Failed to persist file record after remote upload")
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"file_id": file.FileID,
		"backend": BackendFor(req.Type),
		"size":    file.Size,
		"user_id": req.UploadedByID,
	}).Info("File uploaded")

	return file, nil
}

// Download proxies a drive document. Only ids the files table knows about
// are served; anything else is not found before any drive call is made.
// The caller owns closing the reader.
func (s *FileService) Download(ctx context.Context, fileID string) (io.ReadCloser, string, string, error) {
	var file models.File
	if err := s.db.Where("file_id = ?", fileID).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", "", errors.New("file not found")
		}
		return nil, "", "", fmt.Errorf("database error: %w", err)
	}

	name, mimeType, err := s.drive.Metadata(ctx, fileID)
	if err != nil {
		return nil, "", "", err
	}

	body, err := s.drive.Download(ctx, fileID)
	if err != nil {
		return nil, "", "", err
	}

	return body, name, mimeType, nil
}

// Delete removes the remote object first, then the record. A record whose
// remote delete fails stays in the table so the delete can be retried.
func (s *FileService) Delete(ctx context.Context, fileID string, userID uuid.UUID, isAdmin bool) error {
	var file models.File
	if err := s.db.Where("file_id = ?", fileID).First(&file).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("file not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && file.UploadedByID != userID {
		return errors.New("access denied")
	}

	if err := s.deleteRemote(ctx, &file); err != nil {
		return err
	}

	if err := s.db.Delete(&file).Error; err != nil {
		return fmt.Errorf("failed to delete file record: %w", err)
	}

	return nil
}

func (s *FileService) deleteRemote(ctx context.Context, file *models.File) error {
	if s.media.Owns(file.FileID) || s.media.Owns(file.FileURL) {
		return s.media.Delete(ctx, file.FileID)
	}
	return s.drive.Delete(ctx, file.FileID)
}

func (s *FileService) GetFile(id uuid.UUID) (*models.File, error) {
	var file models.File
	if err := s.db.Preload("UploadedBy").First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("file not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &file, nil
}

// ListFiles pages through file records. A non-nil uploadedBy restricts the
// listing to that uploader; the handler passes it for non-admin callers.
func (s *FileService) ListFiles(params utils.PaginationParams, ownerKind models.OwnerKind, ownerID, uploadedBy *uuid.UUID) (*utils.PaginationResult, error) {
	var files []models.File
	var total int64

	query := s.db.Model(&models.File{})
	if uploadedBy != nil {
		query = query.Where("uploaded_by_id = ?", *uploadedBy)
	}
	if ownerKind != "" {
		query = query.Where("owner_kind = ?", ownerKind)
	}
	if ownerID != nil {
		query = query.Where("owner_id = ?", *ownerID)
	}
	if params.Search != "" {
		query = query.Where("name ILIKE ?", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count files: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at", "name", "size"})
	query = utils.ApplyPagination(query, params)

	if err := query.Find(&files).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch files: %w", err)
	}

	result := utils.CreatePaginationResult(files, total, params)
	return &result, nil
}

// UpdateFile patches a file's name or owner reference. Uploads may arrive
// before their owning entity exists; the owner is patched here afterwards.
func (s *FileService) UpdateFile(id uuid.UUID, req *UpdateFileRequest, userID uuid.UUID, isAdmin bool) (*models.File, error) {
	var file models.File
	if err := s.db.First(&file, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("file not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && file.UploadedByID != userID {
		return nil, errors.New("access denied")
	}

	if req.Name != "" {
		file.Name = req.Name
	}
	if req.OwnerKind != nil {
		if !req.OwnerKind.Valid() {
			return nil, errors.New("invalid owner kind")
		}
		file.OwnerKind = *req.OwnerKind
	}
	if req.OwnerID != nil {
		file.OwnerID = *req.OwnerID
	}

	if err := s.db.Save(&file).Error; err != nil {
		return nil, fmt.Errorf("failed to update file: %w", err)
	}

	return &file, nil
}

func (s *FileService) extAllowed(ext string) bool {
	for _, allowed := range s.cfg.Upload.AllowedExts {
		if ext == allowed {
			return true
		}
	}
	return false
}
