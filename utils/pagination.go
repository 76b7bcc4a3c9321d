package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// OrdersPerPage is the fixed page size for order listings
const OrdersPerPage = 10

// Pagination represents pagination parameters
type Pagination struct {
	Page     int
	Limit    int
	Offset   int
	Total    int64
	LastPage int
}

// NewPagination creates a Pagination from the request's page query parameter.
// The page size is fixed at OrdersPerPage.
func NewPagination(c *gin.Context) *Pagination {
	pageStr := c.DefaultQuery("page", "1")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		page = 1
	}

	limit := OrdersPerPage
	offset := (page - 1) * limit

	return &Pagination{
		Page:   page,
		Limit:  limit,
		Offset: offset,
	}
}

// SetTotal sets the total number of items and calculates the last page
func (p *Pagination) SetTotal(total int64) {
	p.Total = total
	if p.Limit > 0 {
		p.LastPage = int((total + int64(p.Limit) - 1) / int64(p.Limit))
	}
}
