package repository

import "math"

// Pagination is the page/limit pair carried by list queries.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize clamps the pagination to sane bounds.
func (p Pagination) Normalize(defaultLimit, maxLimit int) Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = defaultLimit
	}
	if maxLimit > 0 && p.Limit > maxLimit {
		p.Limit = maxLimit
	}

	return p
}

// Offset returns the row offset for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageInfo is the pagination metadata returned alongside listings.
type PageInfo struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPageInfo computes pagination metadata for a listing result.
func NewPageInfo(p Pagination, total int64) PageInfo {
	totalPages := 0
	if p.Limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(p.Limit)))
	}

	return PageInfo{
		Page:       p.Page,
		Limit:      p.Limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
