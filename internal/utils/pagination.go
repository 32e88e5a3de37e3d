// internal/utils/pagination.go
package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PaginationParams struct {
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
	Search string `json:"search"`
}

type PaginationResult struct {
	Page       int         `json:"page"`
	Limit      int         `json:"limit"`
	Total      int64       `json:"total"`
	TotalPages int         `json:"total_pages"`
	From       int         `json:"from"`
	To         int         `json:"to"`
	Data       interface{} `json:"data"`
}

func GetPaginationParams(c *gin.Context) PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	search := c.Query("search")

	// Validate and set defaults
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	return PaginationParams{
		Page:   page,
		Limit:  limit,
		Search: search,
	}
}

// Paginate returns the window of items selected by params together with the
// one-based positions of its first and last item (both 0 when empty).
func Paginate[T any](items []T, params PaginationParams) (page []T, from, to int) {
	if params.Page < 1 || params.Limit < 1 {
		return []T{}, 0, 0
	}
	// Compare page numbers before multiplying so a huge page cannot overflow.
	if params.Page-1 >= (len(items)+params.Limit-1)/params.Limit {
		return []T{}, 0, 0
	}

	offset := (params.Page - 1) * params.Limit

	end := offset + params.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[offset:end], offset + 1, end
}

func CreatePaginationResult(data interface{}, total int64, from, to int, params PaginationParams) PaginationResult {
	totalPages := 0
	if params.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(params.Limit)))
	}

	return PaginationResult{
		Page:       params.Page,
		Limit:      params.Limit,
		Total:      total,
		TotalPages: totalPages,
		From:       from,
		To:         to,
		Data:       data,
	}
}

func SetPaginationHeaders(c *gin.Context, result PaginationResult) {
	c.Header("X-Total-Count", strconv.FormatInt(result.Total, 10))
	c.Header("X-Page", strconv.Itoa(result.Page))
	c.Header("X-Per-Page", strconv.Itoa(result.Limit))
	c.Header("X-Total-Pages", strconv.Itoa(result.TotalPages))
}
