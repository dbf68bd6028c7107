package pagination

import (
	"math"
	"strconv"
)

const (
	DefaultLimit = 5
	MaxLimit     = 100
)

// Params holds the normalized page/limit pair from a list request.
type Params struct {
	Page  int
	Limit int
}

// Parse normalizes raw page/limit query values. Missing or malformed
// values fall back to page 1 and the default limit.
func Parse(pageStr, limitStr string) Params {
	page, _ := strconv.Atoi(pageStr)
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(limitStr)
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	return Params{Page: page, Limit: limit}
}

// Skip returns the number of documents to skip for the current page.
func (p Params) Skip() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit).
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}
