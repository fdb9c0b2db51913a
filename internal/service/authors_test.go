package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
	"github.com/openbookmanager/openbookmanager/internal/repository"
	"github.com/openbookmanager/openbookmanager/internal/service"
)

func TestParseAuthorNames(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		raw  string
		want []model.AuthorCandidate
	}{
		{
			name: "single first last",
			raw:  "Stephen King",
			want: []model.AuthorCandidate{{FirstName: "Stephen", LastName: "King"}},
		},
		{
			name: "comma separated list",
			raw:  "Stephen King, Peter Straub",
			want: []model.AuthorCandidate{
				{FirstName: "Stephen", LastName: "King"},
				{FirstName: "Peter", LastName: "Straub"},
			},
		},
		{
			name: "middle names join the first name",
			raw:  "George Raymond Richard Martin",
			want: []model.AuthorCandidate{{FirstName: "George Raymond Richard", LastName: "Martin"}},
		},
		{
			name: "single token is a last name",
			raw:  "Voltaire",
			want: []model.AuthorCandidate{{LastName: "Voltaire"}},
		},
		{
			// commas split the list before names are parsed, so a
			// "Last, First" entry comes out as two authors
			name: "last-comma-first splits into two",
			raw:  "King, Stephen",
			want: []model.AuthorCandidate{
				{LastName: "King"},
				{LastName: "Stephen"},
			},
		},
		{
			name: "empty fragments skipped",
			raw:  " , Stephen King, ,",
			want: []model.AuthorCandidate{{FirstName: "Stephen", LastName: "King"}},
		},
		{
			name: "blank input",
			raw:  "   ",
			want: nil,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, service.ParseAuthorNames(tt.raw))
		})
	}
}

type fakeAuthorRepo struct {
	repository.Repository
	byName map[string]model.Author
}

func (f *fakeAuthorRepo) FindAuthorByName(_ context.Context, firstName, lastName string) (model.Author, error) {
	if a, ok := f.byName[firstName+"|"+lastName]; ok {
		return a, nil
	}
	return model.Author{}, errs.ErrNotFound
}

func TestService_ParseAndMatchAuthors(t *testing.T) {
	t.Parallel()
	repo := &fakeAuthorRepo{byName: map[string]model.Author{
		"Stephen|King": {ID: 7, FirstName: "Stephen", LastName: "King"},
	}}
	svc := service.NewService(repo, nil, nil, nil, zap.NewNop())

	got, err := svc.ParseAndMatchAuthors(context.Background(), "Stephen King, Peter Straub")
	require.NoError(t, err)
	require.Len(t, got, 2)

	require.NotNil(t, got[0].ExistingID)
	require.Equal(t, 7, *got[0].ExistingID)
	require.Equal(t, "Stephen", got[0].FirstName)
	require.Equal(t, "King", got[0].LastName)

	require.Nil(t, got[1].ExistingID)
	require.Equal(t, "Peter", got[1].FirstName)
	require.Equal(t, "Straub", got[1].LastName)
}
