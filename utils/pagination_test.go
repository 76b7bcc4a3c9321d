package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationForQuery(t *testing.T, query string) *Pagination {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/orders"+query, nil)
	return NewPagination(c)
}

func TestNewPagination(t *testing.T) {
	p := paginationForQuery(t, "")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, OrdersPerPage, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = paginationForQuery(t, "?page=3")
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 20, p.Offset)

	// Bad page values fall back to the first page.
	for _, q := range []string{"?page=0", "?page=-2", "?page=abc"} {
		p = paginationForQuery(t, q)
		assert.Equal(t, 1, p.Page, q)
	}
}

func TestPaginationSetTotal(t *testing.T) {
	p := paginationForQuery(t, "")
	p.SetTotal(25)
	assert.EqualValues(t, 25, p.Total)
	assert.Equal(t, 3, p.LastPage)

	p.SetTotal(0)
	assert.Equal(t, 0, p.LastPage)

	p.SetTotal(10)
	assert.Equal(t, 1, p.LastPage)
}
