// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paramsForQuery(t *testing.T, query string, defaultLimit int) PaginationParams {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/books"+query, nil)
	return GetPaginationParams(c, defaultLimit)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	params := paramsForQuery(t, "", DefaultCatalogPageSize)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultCatalogPageSize, params.Limit)
	assert.Equal(t, "created_at", params.Sort)
	assert.Equal(t, "desc", params.Order)
}

func TestGetPaginationParamsPurchasedDefault(t *testing.T) {
	params := paramsForQuery(t, "", DefaultPurchasedPageSize)
	assert.Equal(t, DefaultPurchasedPageSize, params.Limit)
}

func TestGetPaginationParamsClamping(t *testing.T) {
	params := paramsForQuery(t, "?page=0&limit=5000&order=sideways", DefaultCatalogPageSize)

	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultCatalogPageSize, params.Limit)
	assert.Equal(t, "desc", params.Order)
}

func TestGetPaginationParamsExplicit(t *testing.T) {
	params := paramsForQuery(t, "?page=3&limit=25&sort=title&order=asc&search=physics", DefaultCatalogPageSize)

	assert.Equal(t, 3, params.Page)
	assert.Equal(t, 25, params.Limit)
	assert.Equal(t, "title", params.Sort)
	assert.Equal(t, "asc", params.Order)
	assert.Equal(t, "physics", params.Search)
}

func TestCreatePaginationResult(t *testing.T) {
	params := PaginationParams{Page: 2, Limit: 10}
	result := CreatePaginationResult([]string{"a", "b"}, 25, params)

	assert.Equal(t, 2, result.Page)
	assert.Equal(t, 10, result.Limit)
	assert.Equal(t, int64(25), result.Total)
	assert.Equal(t, 3, result.TotalPages)
}

func TestCreatePaginationResultExactPages(t *testing.T) {
	params := PaginationParams{Page: 1, Limit: 10}
	result := CreatePaginationResult(nil, 30, params)
	assert.Equal(t, 3, result.TotalPages)
}
