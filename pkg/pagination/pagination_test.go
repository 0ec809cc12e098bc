package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		page     int
		pageSize int
		want     Params
	}{
		{"defaults", 0, 0, Params{Page: 1, PageSize: DefaultPageSize}},
		{"negative page clamped", -3, 10, Params{Page: 1, PageSize: 10}},
		{"negative page size defaulted", 2, -1, Params{Page: 2, PageSize: DefaultPageSize}},
		{"oversized page size capped", 1, 5000, Params{Page: 1, PageSize: MaxPageSize}},
		{"at the cap", 1, 100, Params{Page: 1, PageSize: 100}},
		{"in range untouched", 7, 25, Params{Page: 7, PageSize: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.page, tt.pageSize))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Normalize(1, 10).Offset())
	assert.Equal(t, 10, Normalize(2, 10).Offset())
	assert.Equal(t, 45, Normalize(10, 5).Offset())
}

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{"empty set", 0, 10, 0},
		{"exact multiple", 20, 10, 2},
		{"remainder rounds up", 7, 5, 2},
		{"single partial page", 3, 10, 1},
		{"one item", 1, 100, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Normalize(1, tt.pageSize)
			assert.Equal(t, tt.want, p.TotalPages(tt.total))
		})
	}
}

func TestClampInt(t *testing.T) {
	assert.Equal(t, 1, ClampInt(0, 1, 10))
	assert.Equal(t, 10, ClampInt(50, 1, 10))
	assert.Equal(t, 5, ClampInt(5, 1, 10))
}
