// internal/router/router_test.go
package router

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/studyshelf/studyshelf-backend/internal/config"
	"github.com/studyshelf/studyshelf-backend/internal/i18n"
	"github.com/studyshelf/studyshelf-backend/internal/services"
	"github.com/studyshelf/studyshelf-backend/internal/utils"
)

var errUnconfigured = errors.New("backend not configured")

type stubMedia struct{}

func (stubMedia) Upload(ctx context.Context, localPath, originalName, contentType string) (*services.RemoteUpload, error) {
	return nil, errUnconfigured
}
func (stubMedia) Delete(ctx context.Context, fileID string) error { return errUnconfigured }
func (stubMedia) Owns(ref string) bool                            { return false }

type stubDrive struct{}

func (stubDrive) Upload(ctx context.Context, localPath, originalName, contentType string) (*services.RemoteUpload, error) {
	return nil, errUnconfigured
}
func (stubDrive) Delete(ctx context.Context, fileID string) error { return errUnconfigured }
func (stubDrive) Metadata(ctx context.Context, fileID string) (string, string, error) {
	return "", "", errUnconfigured
}
func (stubDrive) Download(ctx context.Context, fileID string) (io.ReadCloser, error) {
	return nil, errUnconfigured
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	require.NoError(t, i18n.Initialize())

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Discard,
	})
	require.NoError(t, err)

	cfg := &config.Config{
		Environment: "test",
		JWT:         config.JWTConfig{SecretKey: "router-test-secret", AccessTokenTTL: 1},
	}
	return Initialize(db, stubMedia{}, stubDrive{}, cfg)
}

func TestDownloadRequiresAuthentication(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest("GET", "/api/files/download/some-file-id", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestBookMutationsRequireInstructorOrAdminRole(t *testing.T) {
	r := testRouter(t)

	token, err := utils.GenerateJWT(uuid.New(), "Some Student", "student", 1)
	require.NoError(t, err)

	for _, method := range []string{"PUT", "DELETE"} {
		req := httptest.NewRequest(method, "/api/books/"+uuid.New().String(), strings.NewReader(`{}`))
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set("Content-Type", "application/json")

		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code, "%s must be role-gated", method)
	}
}

func TestHealthEndpointIsPublic(t *testing.T) {
	r := testRouter(t)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
