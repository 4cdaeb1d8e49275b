package question

import (
	"strconv"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
)

// ParsePage reads the page query parameter. Missing, malformed and
// non-positive values all mean the first page.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// Paginate returns the PageSize window of items for a 1-based page. Asking for
// a page that starts past the end of a non-empty sequence is a not-found error;
// an empty sequence yields an empty first page.
func Paginate[T any](items []T, page int) ([]T, error) {
	if page < 1 {
		page = 1
	}
	if len(items) == 0 {
		return []T{}, nil
	}
	pages := (len(items) + PageSize - 1) / PageSize
	if page > pages {
		return nil, apperr.NotFound("paginate")
	}
	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], nil
}
