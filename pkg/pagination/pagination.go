package pagination

import (
	"net/url"
	"strconv"
)

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 20
	// MaxLimit caps how many rows any list call can request.
	MaxLimit = 100
)

// Meta is the pagination block the backend attaches to list responses.
type Meta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// Params holds page-number pagination inputs for list calls.
type Params struct {
	Page  int
	Limit int
}

// NormalizeLimit enforces the configured default and maximum limits.
func NormalizeLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// NormalizePage clamps the page number to one-based indexing.
func NormalizePage(page int) int {
	if page <= 0 {
		return 1
	}
	return page
}

// Query renders the params as URL query values.
func (p Params) Query() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(NormalizePage(p.Page)))
	values.Set("limit", strconv.Itoa(NormalizeLimit(p.Limit)))
	return values
}

// Encode renders the params as a query string fragment.
func (p Params) Encode() string {
	return p.Query().Encode()
}
