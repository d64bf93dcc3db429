package activity

import (
	"errors"
	"fmt"
)

const (
	DefaultPage  = 1
	DefaultLimit = 100
)

var (
	ErrInvalidPage  = errors.New("page must be >= 1")
	ErrInvalidLimit = errors.New("limit must be >= 1")
)

type Pagination struct {
	Page       int
	Limit      int
	Total      int
	TotalPages int
}

// Paginate slices an already materialized list. Pages past the end are empty.
func Paginate[T any](items []T, page, limit int) ([]T, Pagination, error) {
	if page < 1 {
		return nil, Pagination{}, fmt.Errorf("%w: got %d", ErrInvalidPage, page)
	}
	if limit < 1 {
		return nil, Pagination{}, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}

	total := len(items)
	totalPages := total / limit
	if total%limit != 0 {
		totalPages++
	}
	p := Pagination{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}

	// page <= totalPages keeps (page-1)*limit below total.
	if page > totalPages {
		return []T{}, p, nil
	}
	start := (page - 1) * limit
	end := total
	if limit < total-start {
		end = start + limit
	}
	return items[start:end], p, nil
}
