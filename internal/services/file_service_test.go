// internal/services/file_service_test.go
package services

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/studyshelf/studyshelf-backend/internal/config"
	"github.com/studyshelf/studyshelf-backend/internal/models"
)

// errStopBeforeDB lets routing tests observe which backend was hit without
// needing a database behind the service.
var errStopBeforeDB = errors.New("stop")

type fakeMedia struct {
	uploads int
	deletes []string
}

func (f *fakeMedia) Upload(ctx context.Context, localPath, originalName, contentType string) (*RemoteUpload, error) {
	f.uploads++
	return nil, errStopBeforeDB
}

func (f *fakeMedia) Delete(ctx context.Context, fileID string) error {
	f.deletes = append(f.deletes, fileID)
	return nil
}

func (f *fakeMedia) Owns(ref string) bool {
	return strings.Contains(ref, "cover_images/")
}

type fakeDrive struct {
	uploads       int
	deletes       []string
	deleteErr     error
	metadataCalls int
	downloadCalls int
}

func (f *fakeDrive) Upload(ctx context.Context, localPath, originalName, contentType string) (*RemoteUpload, error) {
	f.uploads++
	return nil, errStopBeforeDB
}

func (f *fakeDrive) Delete(ctx context.Context, fileID string) error {
	f.deletes = append(f.deletes, fileID)
	return f.deleteErr
}

func (f *fakeDrive) Metadata(ctx context.Context, fileID string) (string, string, error) {
	f.metadataCalls++
	return "book.pdf", "application/pdf", nil
}

func (f *fakeDrive) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	f.downloadCalls++
	return io.NopCloser(strings.NewReader("content")), nil
}

func testUploadConfig() *config.Config {
	return &config.Config{
		Media: config.MediaConfig{Folder: "cover_images"},
		Upload: config.UploadConfig{
			MaxSize:     50 * 1024 * 1024,
			AllowedExts: []string{".jpeg", ".jpg", ".png", ".gif", ".pdf", ".doc", ".docx", ".zip"},
		},
	}
}

func uploadRequest(assetType models.AssetType, name string, size int64) *UploadFileRequest {
	return &UploadFileRequest{
		LocalPath:    "/tmp/does-not-matter",
		OriginalName: name,
		ContentType:  "application/octet-stream",
		Size:         size,
		Type:         assetType,
		OwnerKind:    models.OwnerKindBook,
		OwnerID:      uuid.New(),
		UploadedByID: uuid.New(),
	}
}

func TestBackendFor(t *testing.T) {
	assert.Equal(t, models.FileBackendMedia, BackendFor(models.AssetTypeCoverImage))
	assert.Equal(t, models.FileBackendDrive, BackendFor(models.AssetTypeBook))
}

func TestUploadRoutesCoverImageToMedia(t *testing.T) {
	media := &fakeMedia{}
	drive := &fakeDrive{}
	svc := NewFileService(nil, media, drive, testUploadConfig())

	_, err := svc.Upload(context.Background(), uploadRequest(models.AssetTypeCoverImage, "cover.png", 1024))
	assert.ErrorIs(t, err, errStopBeforeDB)
	assert.Equal(t, 1, media.uploads)
	assert.Equal(t, 0, drive.uploads)
}

func TestUploadRoutesBookToDrive(t *testing.T) {
	media := &fakeMedia{}
	drive := &fakeDrive{}
	svc := NewFileService(nil, media, drive, testUploadConfig())

	_, err := svc.Upload(context.Background(), uploadRequest(models.AssetTypeBook, "notes.pdf", 1024))
	assert.ErrorIs(t, err, errStopBeforeDB)
	assert.Equal(t, 0, media.uploads)
	assert.Equal(t, 1, drive.uploads)
}

func TestUploadRejectsInvalidAssetType(t *testing.T) {
	media := &fakeMedia{}
	drive := &fakeDrive{}
	svc := NewFileService(nil, media, drive, testUploadConfig())

	_, err := svc.Upload(context.Background(), uploadRequest("avatar", "cover.png", 1024))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid asset type")
	assert.Equal(t, 0, media.uploads)
	assert.Equal(t, 0, drive.uploads)
}

func TestUploadRejectsInvalidOwnerKind(t *testing.T) {
	svc := NewFileService(nil, &fakeMedia{}, &fakeDrive{}, testUploadConfig())

	req := uploadRequest(models.AssetTypeBook, "notes.pdf", 1024)
	req.OwnerKind = "invoice"

	_, err := svc.Upload(context.Background(), req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid owner kind")
}

func TestUploadRejectsOversizeFile(t *testing.T) {
	media := &fakeMedia{}
	drive := &fakeDrive{}
	svc := NewFileService(nil, media, drive, testUploadConfig())

	_, err := svc.Upload(context.Background(), uploadRequest(models.AssetTypeBook, "huge.pdf", 51*1024*1024))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
	assert.Equal(t, 0, media.uploads)
	assert.Equal(t, 0, drive.uploads)
}

func TestUploadRejectsDisallowedExtension(t *testing.T) {
	media := &fakeMedia{}
	drive := &fakeDrive{}
	svc := NewFileService(nil, media, drive, testUploadConfig())

	_, err := svc.Upload(context.Background(), uploadRequest(models.AssetTypeBook, "malware.exe", 1024))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed")
	assert.Equal(t, 0, media.uploads)
	assert.Equal(t, 0, drive.uploads)
}

func TestDownloadProxiesRecordedDriveFile(t *testing.T) {
	db, mock := newMockedDB(t)
	svc := NewFileService(db, &fakeMedia{}, &fakeDrive{}, testUploadConfig())

	mock.ExpectQuery(`SELECT (.+) FROM "files" WHERE file_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_id"}).
			AddRow(uuid.New().String(), "drive-id-1"))

	body, name, mimeType, err := svc.Download(context.Background(), "drive-id-1")
	assert.NoError(t, err)
	defer body.Close()

	assert.Equal(t, "book.pdf", name)
	assert.Equal(t, "application/pdf", mimeType)

	content, err := io.ReadAll(body)
	assert.NoError(t, err)
	assert.Equal(t, "content", string(content))
}

func TestDownloadUnknownFileNotFoundBeforeDrive(t *testing.T) {
	db, mock := newMockedDB(t)
	drive := &fakeDrive{}
	svc := NewFileService(db, &fakeMedia{}, drive, testUploadConfig())

	mock.ExpectQuery(`SELECT (.+) FROM "files" WHERE file_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, _, _, err := svc.Download(context.Background(), "ghost-id")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")

	// Unrecorded ids never reach the drive backend.
	assert.Equal(t, 0, drive.metadataCalls)
	assert.Equal(t, 0, drive.downloadCalls)
}
