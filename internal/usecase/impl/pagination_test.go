package impl

import (
	"testing"

	"souk/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name  string
		req   usecase.PageRequest
		total int64
		want  pageWindow
	}{
		{
			name:  "defaults applied when request is zero",
			req:   usecase.PageRequest{},
			total: 45,
			want:  pageWindow{page: 1, perPage: 20, totalPages: 3, offset: 0},
		},
		{
			name:  "explicit page and perPage",
			req:   usecase.PageRequest{Page: 2, PerPage: 10},
			total: 45,
			want:  pageWindow{page: 2, perPage: 10, totalPages: 5, offset: 10},
		},
		{
			name:  "perPage clamped to the maximum",
			req:   usecase.PageRequest{Page: 1, PerPage: 500},
			total: 250,
			want:  pageWindow{page: 1, perPage: 100, totalPages: 3, offset: 0},
		},
		{
			name:  "negative perPage falls back to the default",
			req:   usecase.PageRequest{Page: 1, PerPage: -5},
			total: 45,
			want:  pageWindow{page: 1, perPage: 20, totalPages: 3, offset: 0},
		},
		{
			name:  "negative page falls back to the first page",
			req:   usecase.PageRequest{Page: -3, PerPage: 20},
			total: 45,
			want:  pageWindow{page: 1, perPage: 20, totalPages: 3, offset: 0},
		},
		{
			name:  "page beyond the last is clamped to the last",
			req:   usecase.PageRequest{Page: 99, PerPage: 20},
			total: 45,
			want:  pageWindow{page: 3, perPage: 20, totalPages: 3, offset: 40},
		},
		{
			name:  "total exactly divisible by perPage",
			req:   usecase.PageRequest{Page: 2, PerPage: 20},
			total: 40,
			want:  pageWindow{page: 2, perPage: 20, totalPages: 2, offset: 20},
		},
		{
			name:  "single record",
			req:   usecase.PageRequest{Page: 1, PerPage: 20},
			total: 1,
			want:  pageWindow{page: 1, perPage: 20, totalPages: 1, offset: 0},
		},
		{
			name:  "zero total reports page one of zero pages",
			req:   usecase.PageRequest{Page: 7, PerPage: 20},
			total: 0,
			want:  pageWindow{page: 1, perPage: 20, totalPages: 0, offset: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paginate(tt.req, tt.total)
			assert.Equal(t, tt.want, got)
		})
	}
}
