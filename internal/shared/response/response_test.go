package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hris-admin/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)

	assert.Equal(t, int64(21), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PageSize)
}

func TestPaginate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	items := []int{1, 2, 3, 4, 5}

	t.Run("second page", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=2&page_size=2", nil)

		page, meta := response.Paginate(c, items, 10)

		assert.Equal(t, []int{3, 4}, page)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=9", nil)

		page, meta := response.Paginate(c, items, 10)

		assert.Empty(t, page)
		assert.Equal(t, int64(5), meta.Total)
	})

	t.Run("huge values do not overflow", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=2&page_size=9223372036854775807", nil)

		page, meta := response.Paginate(c, []int{1, 2, 3}, 10)

		assert.Empty(t, page)
		assert.Equal(t, response.MaxPageSize, meta.PageSize)
		assert.Equal(t, int64(3), meta.Total)
	})

	t.Run("huge page number is past the end", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=9223372036854775807&page_size=100", nil)

		page, _ := response.Paginate(c, items, 10)

		assert.Empty(t, page)
	})

	t.Run("page size is capped", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page_size=1000", nil)

		page, meta := response.Paginate(c, items, 10)

		assert.Equal(t, items, page)
		assert.Equal(t, response.MaxPageSize, meta.PageSize)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=-1&page_size=abc", nil)

		page, meta := response.Paginate(c, items, 3)

		assert.Equal(t, []int{1, 2, 3}, page)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, 3, meta.PageSize)
	})
}
