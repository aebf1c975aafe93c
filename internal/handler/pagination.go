package handler

import "gamecatalog/backend/internal/catalog"

// PaginatedResponse is one page of a listing together with its totals.
type PaginatedResponse[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total" example:"20"`
	Page       int   `json:"page" example:"1"`
	Limit      int   `json:"limit" example:"10"`
	TotalPages int   `json:"totalPages" example:"2"`
}

// NewPaginatedResponse creates a PaginatedResponse. TotalPages is at least 1.
func NewPaginatedResponse[T any](items []T, total int64, page, limit int) PaginatedResponse[T] {
	if items == nil {
		items = []T{}
	}
	return PaginatedResponse[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: catalog.TotalPages(total, limit),
	}
}
