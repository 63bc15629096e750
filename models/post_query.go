package models

import (
	"errors"
	"time"
)

// ListPostsQuery holds the raw query parameters of the post listing.
// Zero values select the defaults.
type ListPostsQuery struct {
	SortBy string `json:"sortBy" validate:"omitempty,oneof=createdAt title content"`
	Order  string `json:"order"`
	Page   int    `json:"page"`
	Limit  int    `json:"limit"`
}

// SearchPostsQuery holds the raw query parameters of the post search.
// Empty strings mean "not set".
type SearchPostsQuery struct {
	Title    string `json:"title"`
	AuthorID string `json:"author" validate:"omitempty,uuid"`
	Date     string `json:"date" validate:"omitempty,searchdate"`
}

// PostListOptions is the resolved, store-level form of a listing request.
type PostListOptions struct {
	AuthorID   string
	SortColumn string
	Descending bool
	Offset     uint64
	Limit      uint64
}

// PostFilter is the resolved, store-level form of a search request.
type PostFilter struct {
	AuthorID    string
	Title       string
	CreatedFrom *time.Time
}

// Sortable post fields accepted by the listing.
const (
	SortByCreatedAt = "createdAt"
	SortByTitle     = "title"
	SortByContent   = "content"
)

// IsSortablePostField reports whether field may be used as sortBy.
func IsSortablePostField(field string) bool {
	switch field {
	case SortByCreatedAt, SortByTitle, SortByContent:
		return true
	default:
		return false
	}
}

// searchDateLayouts are the accepted formats of the search date filter.
var searchDateLayouts = []string{time.RFC3339, time.DateOnly}

// ErrInvalidSearchDate is returned by ParseSearchDate for unsupported formats.
var ErrInvalidSearchDate = errors.New("date must be RFC3339 or YYYY-MM-DD")

// ParseSearchDate parses the date filter of the post search. A bare date
// is interpreted as midnight UTC.
func ParseSearchDate(value string) (time.Time, error) {
	for _, layout := range searchDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidSearchDate
}
