package catalog

import (
	"fmt"

	"github.com/Nitishkumar2026/CineReview/internal/domain"
)

type Page[T any] struct {
	Items      []T `json:"data"`
	Page       int `json:"page"`
	TotalPages int `json:"total_pages"`
	TotalItems int `json:"total_items"`
}

// Paginate slices items into the requested fixed-size window. A page past
// the end yields empty items rather than an error so callers can clamp
// stale page selectors without special-casing.
func Paginate[T any](items []T, page, pageSize int) (Page[T], error) {
	if page <= 0 {
		return Page[T]{}, fmt.Errorf("page must be positive, got %d: %w", page, domain.ErrInvalidArgument)
	}
	if pageSize <= 0 {
		return Page[T]{}, fmt.Errorf("page size must be positive, got %d: %w", pageSize, domain.ErrInvalidArgument)
	}

	total := len(items)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	if start > total {
		start = total
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalItems: total,
	}, nil
}
