package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(t *testing.T, rawQuery string) *Pagination {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?"+rawQuery, nil)
	return NewPagination(c)
}

func TestNewPaginationDefaults(t *testing.T) {
	p := paginationFor(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
	assert.Equal(t, 0, p.Offset)
}

func TestNewPaginationParsesQuery(t *testing.T) {
	p := paginationFor(t, "page=3&limit=25")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 25, p.Limit)
	assert.Equal(t, 50, p.Offset)
}

func TestNewPaginationClampsBadInput(t *testing.T) {
	p := paginationFor(t, "page=-1&limit=9999")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.Limit)

	p = paginationFor(t, "page=abc&limit=xyz")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 10, p.Limit)
}

func TestSetTotal(t *testing.T) {
	p := &Pagination{Page: 1, Limit: 10}
	p.SetTotal(95)
	assert.Equal(t, int64(95), p.Total)
	assert.Equal(t, 10, p.LastPage)

	p.SetTotal(0)
	assert.Equal(t, 0, p.LastPage)
}
