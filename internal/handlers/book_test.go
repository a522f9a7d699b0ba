// internal/handlers/book_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studyshelf/studyshelf-backend/internal/i18n"
)

// The handler rejects bad ratings before any service or database work, so
// the 400 paths run against a handler with no service behind it.
func reviewRouter(authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewBookHandler(nil)

	r := gin.New()
	r.POST("/books/:id/reviews", func(c *gin.Context) {
		if authenticated {
			c.Set("user_id", uuid.New().String())
		}
		handler.AddReview(c)
	})
	return r
}

func postReview(t *testing.T, r *gin.Engine, bookID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	jsonData, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/books/"+bookID+"/reviews", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddReviewRejectsOutOfRangeRating(t *testing.T) {
	require.NoError(t, i18n.Initialize())
	r := reviewRouter(true)
	bookID := uuid.New().String()

	for _, rating := range []int{0, -1, 6, 100} {
		w := postReview(t, r, bookID, map[string]interface{}{"rating": rating, "text": "meh"})
		assert.Equal(t, http.StatusBadRequest, w.Code, "rating %d", rating)

		var response map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.False(t, response["success"].(bool))
	}
}

func TestAddReviewRejectsInvalidBookID(t *testing.T) {
	r := reviewRouter(true)

	w := postReview(t, r, "not-a-uuid", map[string]interface{}{"rating": 4})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddReviewRequiresAuthentication(t *testing.T) {
	r := reviewRouter(false)

	w := postReview(t, r, uuid.New().String(), map[string]interface{}{"rating": 4})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

// The path id names the target user and the book must come from the body,
// so the forbidden and missing-book cases resolve before any service work.
func enrollRouter(role string) (*gin.Engine, uuid.UUID) {
	gin.SetMode(gin.TestMode)
	handler := NewBookHandler(nil)
	requester := uuid.New()

	r := gin.New()
	r.POST("/books/:id/addBookToUser", func(c *gin.Context) {
		c.Set("user_id", requester.String())
		c.Set("user_role", role)
		handler.AddBookToUser(c)
	})
	return r, requester
}

func TestAddBookToUserRequiresBookID(t *testing.T) {
	require.NoError(t, i18n.Initialize())
	r, requester := enrollRouter("student")

	// No body: nothing may be enrolled, the requester included.
	req := httptest.NewRequest("POST", "/books/"+requester.String()+"/addBookToUser", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Body present but without a bookId.
	req = httptest.NewRequest("POST", "/books/"+requester.String()+"/addBookToUser", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddBookToUserForbidsEnrollingOthers(t *testing.T) {
	r, _ := enrollRouter("student")

	body, err := json.Marshal(map[string]string{"bookId": uuid.New().String()})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/books/"+uuid.New().String()+"/addBookToUser", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestAddBookToUserRejectsInvalidTargetUserID(t *testing.T) {
	r, _ := enrollRouter("admin")

	req := httptest.NewRequest("POST", "/books/not-a-uuid/addBookToUser", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddReviewRejectsMalformedBody(t *testing.T) {
	r := reviewRouter(true)

	req := httptest.NewRequest("POST", "/books/"+uuid.New().String()+"/reviews", bytes.NewBufferString("{broken"))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
