package query

import (
	"net/url"
	"strconv"
)

const (
	// DefaultPage is used when page is missing or not positive.
	DefaultPage = 1
	// DefaultPerPage is used when per_page is missing or not positive.
	DefaultPerPage = 10
)

// PageSpec holds sanitized pagination parameters. Page and PerPage are always
// at least 1, so Offset never goes negative.
type PageSpec struct {
	Page    int
	PerPage int
}

// PageMeta is returned alongside list results. Total counts the rows matching
// the filters before pagination was applied.
type PageMeta struct {
	Total   int64 `json:"total"`
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
}

// ParsePageSpec reads page/per_page from query parameters, falling back to
// the defaults for missing, unparseable or non-positive values.
func ParsePageSpec(values url.Values) PageSpec {
	return PageSpec{
		Page:    intParam(values, "page", DefaultPage),
		PerPage: intParam(values, "per_page", DefaultPerPage),
	}
}

func intParam(values url.Values, key string, def int) int {
	raw := values.Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Limit is the maximum number of rows for the page.
func (p PageSpec) Limit() int {
	return p.PerPage
}

// Offset is the number of rows to skip before the page starts.
func (p PageSpec) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Meta builds the response metadata for a filtered total row count.
func (p PageSpec) Meta(total int64) PageMeta {
	return PageMeta{Total: total, Page: p.Page, PerPage: p.PerPage}
}
