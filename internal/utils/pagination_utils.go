// Package utils provides utility functions to support various operations within the application.
package utils

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"larp-manager-server/internal/schemas"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// PaginationParams carries the pagination window of a listing request. Offset
// and Limit are derived from Page and Size and can be passed to queries as-is.
type PaginationParams struct {
	Page   int
	Size   int
	Offset int
	Limit  int
}

// ParsePaginationParams extracts the 'page' and 'size' parameters from the
// request's query parameters. Page is 1-based; out-of-range values are clamped
// instead of rejected.
func ParsePaginationParams(c *gin.Context) *PaginationParams {
	page, err := strconv.Atoi(c.Query(PageParamKey))
	if err != nil {
		page = 1
	}
	if page < 1 {
		page = 1
	}

	size, err := strconv.Atoi(c.Query(SizeParamKey))
	if err != nil {
		size = defaultPageSize
	}
	if size < 1 {
		size = 1
	}
	if size > maxPageSize {
		size = maxPageSize
	}

	return &PaginationParams{
		Page:   page,
		Size:   size,
		Offset: (page - 1) * size,
		Limit:  size,
	}
}

// PageInfo builds the pagination metadata for a listing with the given total
// number of records.
func (p *PaginationParams) PageInfo(totalItems int) *schemas.PageInfo {
	totalPages := 0
	if totalItems > 0 {
		totalPages = (totalItems + p.Size - 1) / p.Size
	}

	return &schemas.PageInfo{
		Page:        p.Page,
		Size:        p.Size,
		TotalItems:  totalItems,
		TotalPages:  totalPages,
		HasNext:     p.Page < totalPages,
		HasPrevious: p.Page > 1,
	}
}

// SendPaginatedResponse sends the given page of records together with the
// pagination metadata derived from the request parameters.
func SendPaginatedResponse(c *gin.Context, records interface{}, params *PaginationParams, totalItems int) {
	response := &schemas.PaginatedResponse{
		Records:    records,
		Pagination: params.PageInfo(totalItems),
	}

	WriteAndLogResponse(c, response, http.StatusOK)
}
