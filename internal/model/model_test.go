package model_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openbookmanager/openbookmanager/internal/model"
)

func TestBook_Tag(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		book model.Book
		want string
	}{
		{
			name: "zero padded",
			book: model.Book{MainCategoryCode: "WR", CategoryCode: "PH", NumberInCategory: 42},
			want: "WR PH 0042",
		},
		{
			name: "first in category",
			book: model.Book{MainCategoryCode: "SF", CategoryCode: "FA", NumberInCategory: 1},
			want: "SF FA 0001",
		},
		{
			name: "four digits untouched",
			book: model.Book{MainCategoryCode: "NA", CategoryCode: "BI", NumberInCategory: 1234},
			want: "NA BI 1234",
		},
		{
			name: "grows past four digits",
			book: model.Book{MainCategoryCode: "NA", CategoryCode: "BI", NumberInCategory: 12345},
			want: "NA BI 12345",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, tt.book.Tag())
		})
	}
}

func TestFormatTag(t *testing.T) {
	t.Parallel()
	require.Equal(t, "WR PH 0042", model.FormatTag("WR", "PH", 42))
}
