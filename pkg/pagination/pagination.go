// Package pagination implements the shared page/page_size contract.
//
// Pages are 1-indexed. page_size defaults to 10 and is hard-capped at 100.
// Out-of-range values are clamped, never rejected, so a caller asking for
// page_size=5000 gets the cap rather than an error.
package pagination

import "strconv"

// Pagination defaults and bounds
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Params holds normalized pagination parameters
type Params struct {
	Page     int
	PageSize int
}

// Normalize clamps raw page/page_size values into the supported range.
// Zero or negative values fall back to defaults.
func Normalize(page, pageSize int) Params {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if pageSize > MaxPageSize {
		pageSize = MaxPageSize
	}
	return Params{Page: page, PageSize: pageSize}
}

// Offset returns the row offset for the normalized page
func (p Params) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// TotalPages returns ceil(total/page_size) for the normalized page size
func (p Params) TotalPages(total int) int {
	if total <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// ParseInt parses a query string value, returning fallback when the
// value is absent or not an integer.
func ParseInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

// ParsePageQuery parses raw page/page_size query values. Unparseable
// values come back as zero and fall to defaults in Normalize.
func ParsePageQuery(page, pageSize string) (int, int) {
	return ParseInt(page, 0), ParseInt(pageSize, 0)
}

// ClampInt clamps an integer value to a range [min, max]
func ClampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
