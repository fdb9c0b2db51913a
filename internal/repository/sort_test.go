package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBookSortExpr(t *testing.T) {
	t.Parallel()
	tests := []struct {
		key  string
		want string
	}{
		{key: "title", want: "b.title asc"},
		{key: "title_desc", want: "b.title desc"},
		{key: "year", want: "b.year asc nulls last"},
		{key: "year_desc", want: "b.year desc nulls last"},
		{key: "newest", want: "b.created_at desc"},
		{key: "tag", want: "b.code_maincategory asc, b.code_category asc, b.number_in_category asc"},
		// anything unknown falls back, never reaches SQL verbatim
		{key: "", want: "b.title asc"},
		{key: "id; drop table books", want: "b.title asc"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, BookSortExpr(tt.key), "key %q", tt.key)
	}
}
