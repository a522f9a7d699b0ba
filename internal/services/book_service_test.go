// internal/services/book_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/studyshelf/studyshelf-backend/internal/config"
	"github.com/studyshelf/studyshelf-backend/internal/models"
	"github.com/studyshelf/studyshelf-backend/internal/utils"
)

// newMockedDB opens gorm over a sqlmock connection so service queries can
// run without Postgres. Expectations are matched in order.
func newMockedDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestMediaKeyFromURL(t *testing.T) {
	svc := NewBookService(nil, &fakeMedia{}, &fakeDrive{}, testUploadConfig())

	t.Run("extracts key from public URL", func(t *testing.T) {
		url := "https://studyshelf-assets.s3.ap-south-1.amazonaws.com/cover_images/20250101_ab12cd34.png"
		assert.Equal(t, "cover_images/20250101_ab12cd34.png", svc.mediaKeyFromURL(url))
	})

	t.Run("empty URL", func(t *testing.T) {
		assert.Equal(t, "", svc.mediaKeyFromURL(""))
	})

	t.Run("foreign URL is not ours", func(t *testing.T) {
		assert.Equal(t, "", svc.mediaKeyFromURL("https://example.com/images/pic.png"))
	})
}

func TestDeleteRemoteRefSkipsEmptyID(t *testing.T) {
	media := &fakeMedia{}
	drive := &fakeDrive{}
	svc := NewBookService(nil, media, drive, testUploadConfig())

	svc.deleteRemoteRef(context.Background(), "", models.FileBackendDrive)
	assert.Empty(t, media.deletes)
	assert.Empty(t, drive.deletes)
}

func TestDeleteRemoteRefRoutesByBackend(t *testing.T) {
	media := &fakeMedia{}
	drive := &fakeDrive{}
	cfg := &config.Config{Media: config.MediaConfig{Folder: "cover_images"}}
	svc := NewBookService(nil, media, drive, cfg)

	svc.deleteRemoteRef(context.Background(), "cover_images/a.png", models.FileBackendMedia)
	svc.deleteRemoteRef(context.Background(), "drive-id-9", models.FileBackendDrive)

	assert.Equal(t, []string{"cover_images/a.png"}, media.deletes)
	assert.Equal(t, []string{"drive-id-9"}, drive.deletes)
}

func TestDeleteBookCascadeRemovesRecordsAndPrunesEnrollments(t *testing.T) {
	db, mock := newMockedDB(t)
	media := &fakeMedia{}
	drive := &fakeDrive{deleteErr: errors.New("drive unavailable")}
	svc := NewBookService(db, media, drive, testUploadConfig())

	bookID := uuid.New()
	ownerID := uuid.New()
	coverKey := "cover_images/20250101_ab12cd34.png"
	coverURL := "https://studyshelf-assets.s3.ap-south-1.amazonaws.com/" + coverKey

	mock.ExpectQuery(`SELECT (.+) FROM "books"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_by_id", "file_id", "cover_image"}).
			AddRow(bookID.String(), ownerID.String(), "drv-123", coverURL))

	mock.ExpectQuery(`SELECT (.+) FROM "files"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "file_id", "file_url"}).
			AddRow(uuid.New().String(), coverKey, coverURL).
			AddRow(uuid.New().String(), "drv-123", "https://drive.google.com/uc?id=drv-123"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "files" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "reviews"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "books" SET "deleted_at"`).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "enrollments"`).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := svc.DeleteBook(context.Background(), bookID, ownerID, false)
	assert.NoError(t, err)

	// Each backend was asked to delete exactly once, with the book row's
	// own references deduplicated against the file records. The failing
	// drive delete stopped neither the record cleanup nor the prune.
	assert.Equal(t, []string{coverKey}, media.deletes)
	assert.Equal(t, []string{"drv-123"}, drive.deletes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteBookForbiddenForNonOwner(t *testing.T) {
	db, mock := newMockedDB(t)
	media := &fakeMedia{}
	drive := &fakeDrive{}
	svc := NewBookService(db, media, drive, testUploadConfig())

	bookID := uuid.New()
	mock.ExpectQuery(`SELECT (.+) FROM "books"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_by_id"}).
			AddRow(bookID.String(), uuid.New().String()))

	err := svc.DeleteBook(context.Background(), bookID, uuid.New(), false)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
	assert.Empty(t, media.deletes)
	assert.Empty(t, drive.deletes)
}

func TestListBooksCountsOnlyMatchingBooks(t *testing.T) {
	db, mock := newMockedDB(t)
	svc := NewBookService(db, &fakeMedia{}, &fakeDrive{}, testUploadConfig())

	mock.ExpectQuery(`SELECT count\(\*\) FROM "books" WHERE books\.subject = \$1 AND \(books\.title ILIKE \$2 OR books\.author ILIKE \$3\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT (.+) FROM "books" WHERE`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(uuid.New().String(), "Mathematics-I Workbook"))

	params := utils.PaginationParams{Page: 1, Limit: 10, Sort: "created_at", Order: "desc", Search: "workbook"}
	result, err := svc.ListBooks(params, BookFilters{Subject: "Mathematics-I"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEnrollUserRequiresExistingUser(t *testing.T) {
	db, mock := newMockedDB(t)
	svc := NewBookService(db, &fakeMedia{}, &fakeDrive{}, testUploadConfig())

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err := svc.EnrollUser(uuid.New(), uuid.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}
