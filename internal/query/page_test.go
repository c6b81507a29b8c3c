package query

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePageSpec(t *testing.T) {
	tests := []struct {
		name   string
		values url.Values
		want   PageSpec
	}{
		{
			name:   "missing parameters use defaults",
			values: url.Values{},
			want:   PageSpec{Page: 1, PerPage: 10},
		},
		{
			name:   "explicit values",
			values: url.Values{"page": {"3"}, "per_page": {"25"}},
			want:   PageSpec{Page: 3, PerPage: 25},
		},
		{
			name:   "zero page clamps to first page",
			values: url.Values{"page": {"0"}},
			want:   PageSpec{Page: 1, PerPage: 10},
		},
		{
			name:   "negative values clamp to defaults",
			values: url.Values{"page": {"-2"}, "per_page": {"-5"}},
			want:   PageSpec{Page: 1, PerPage: 10},
		},
		{
			name:   "unparseable values fall back to defaults",
			values: url.Values{"page": {"abc"}, "per_page": {"1.5"}},
			want:   PageSpec{Page: 1, PerPage: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePageSpec(tt.values))
		})
	}
}

func TestPageSpec_LimitOffset(t *testing.T) {
	tests := []struct {
		name       string
		page       PageSpec
		wantLimit  int
		wantOffset int
	}{
		{"first page", PageSpec{Page: 1, PerPage: 10}, 10, 0},
		{"second page", PageSpec{Page: 2, PerPage: 10}, 10, 10},
		{"large page size", PageSpec{Page: 4, PerPage: 50}, 50, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantLimit, tt.page.Limit())
			assert.Equal(t, tt.wantOffset, tt.page.Offset())
		})
	}
}

func TestPageSpec_Meta(t *testing.T) {
	meta := PageSpec{Page: 2, PerPage: 10}.Meta(40)
	assert.Equal(t, PageMeta{Total: 40, Page: 2, PerPage: 10}, meta)
}
