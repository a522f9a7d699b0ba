// internal/services/user_service_test.go
package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyshelf/studyshelf-backend/internal/utils"
)

func TestGetUserBooksAppliesCatalogFiltersToPurchasedView(t *testing.T) {
	db, mock := newMockedDB(t)
	svc := NewUserService(db)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))

	// The total must come from the filtered join, so only enrolled books
	// matching the search count; dangling enrollments fall out of the join.
	mock.ExpectQuery(`SELECT count\(\*\) FROM "books" JOIN enrollments ON enrollments\.book_id = books\.id WHERE enrollments\.user_id = \$1 AND \(books\.title ILIKE \$2 OR books\.author ILIKE \$3\)`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	mock.ExpectQuery(`SELECT (.+) FROM "books" JOIN enrollments`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title"}).
			AddRow(uuid.New().String(), "Engineering Physics"))

	params := utils.PaginationParams{Page: 1, Limit: 9, Search: "physics"}
	result, err := svc.GetUserBooks(userID, params, BookFilters{})
	require.NoError(t, err)

	assert.Equal(t, int64(1), result.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserBooksFiltersByStream(t *testing.T) {
	db, mock := newMockedDB(t)
	svc := NewUserService(db)

	userID := uuid.New()

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(userID.String()))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "books" JOIN enrollments ON enrollments\.book_id = books\.id WHERE enrollments\.user_id = \$1 AND books\.stream = \$2`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	mock.ExpectQuery(`SELECT (.+) FROM "books" JOIN enrollments`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	params := utils.PaginationParams{Page: 1, Limit: 9}
	result, err := svc.GetUserBooks(userID, params, BookFilters{Stream: "CSE"})
	require.NoError(t, err)

	assert.Equal(t, int64(0), result.Total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserBooksUnknownUser(t *testing.T) {
	db, mock := newMockedDB(t)
	svc := NewUserService(db)

	mock.ExpectQuery(`SELECT (.+) FROM "users"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.GetUserBooks(uuid.New(), utils.PaginationParams{Page: 1, Limit: 9}, BookFilters{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "user not found")
}
