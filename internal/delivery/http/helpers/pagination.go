package helpers

import (
	"net/http"
	"net/url"
	"strconv"

	"eventsync/internal/domain"
)

// Event listing page bounds.
const (
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ParsePagination picks the page of events requested by ?page=&page_size=.
// Anything that is not a positive integer falls back to the default, and
// page_size is capped at MaxPageSize.
func ParsePagination(r *http.Request) domain.PaginationParams {
	q := r.URL.Query()
	return domain.PaginationParams{
		Page:     positiveQueryInt(q, "page", DefaultPage),
		PageSize: min(positiveQueryInt(q, "page_size", DefaultPageSize), MaxPageSize),
	}
}

func positiveQueryInt(q url.Values, key string, fallback int) int {
	v, err := strconv.Atoi(q.Get(key))
	if err != nil || v < 1 {
		return fallback
	}
	return v
}

// PaginationMeta accompanies a page of events.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

func NewPaginationMeta(page domain.PaginationParams, total int) PaginationMeta {
	return PaginationMeta{
		Page:       page.Page,
		PageSize:   page.PageSize,
		Total:      total,
		TotalPages: page.PageCount(total),
	}
}
