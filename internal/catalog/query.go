// Package catalog turns listing parameters into a normalized Query and the
// parameterized predicate shared by the count and page statements.
package catalog

import (
	"strconv"
	"strings"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Params are the raw listing parameters as received from a client.
type Params struct {
	Page      string
	Limit     string
	Filter    string
	Type      string
	Favorites string
	Q         string
}

// Query is a normalized listing request. Page and Limit are always in range.
type Query struct {
	Page    int
	Limit   int
	Filters []Filter
	Search  string
}

// ParsePage returns the requested page, or DefaultPage when raw is missing,
// not a number, or below 1.
func ParsePage(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return DefaultPage
	}
	return n
}

// ParseLimit returns the requested page size clamped to [1, MaxLimit].
// Missing, non-numeric and non-positive values yield DefaultLimit.
func ParseLimit(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return DefaultLimit
	}
	if n > MaxLimit {
		return MaxLimit
	}
	return n
}

// FromParams normalizes raw parameters into a Query.
//
// type=sport (or sports) with a non-empty filter selects a sport,
// type=provider selects a provider, and favorites=true restricts the listing
// to the caller's favorites. Unknown types and empty filters are ignored.
func FromParams(p Params) Query {
	q := Query{
		Page:   ParsePage(p.Page),
		Limit:  ParseLimit(p.Limit),
		Search: strings.TrimSpace(p.Q),
	}

	if value := strings.TrimSpace(p.Filter); value != "" {
		switch strings.ToLower(strings.TrimSpace(p.Type)) {
		case "sport", "sports":
			q.Filters = append(q.Filters, Sport(value))
		case "provider":
			q.Filters = append(q.Filters, Provider(value))
		}
	}
	if strings.EqualFold(strings.TrimSpace(p.Favorites), "true") {
		q.Filters = append(q.Filters, FavoritesOnly())
	}
	return q
}

// Offset is the number of rows skipped before the current page. Callers
// check PastEnd first; for pages beyond the last one the product may not fit
// in an int.
func (q Query) Offset() int {
	return (q.Page - 1) * q.Limit
}

// PastEnd reports whether the page starts at or after the last of total
// matches. It compares page numbers so huge pages cannot overflow.
func (q Query) PastEnd(total int64) bool {
	if total <= 0 {
		return true
	}
	limit := int64(q.Limit)
	if limit < 1 {
		limit = DefaultLimit
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return int64(q.Page-1) >= pages
}

// FavoritesOnly reports whether the query is restricted to favorites.
func (q Query) FavoritesOnly() bool {
	for _, f := range q.Filters {
		if _, ok := f.(favoritesFilter); ok {
			return true
		}
	}
	return false
}

// TotalPages returns ceil(total/limit), never less than 1.
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	pages := int((total + int64(limit) - 1) / int64(limit))
	if pages < 1 {
		return 1
	}
	return pages
}
