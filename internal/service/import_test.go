package service_test

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
	"github.com/openbookmanager/openbookmanager/internal/repository"
	"github.com/openbookmanager/openbookmanager/internal/service"
)

func TestNormalizeISBN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr error
	}{
		{name: "isbn13 with hyphens", raw: "978-0-13-468599-1", want: "9780134685991"},
		{name: "isbn10 plain", raw: "0134685997", want: "0134685997"},
		{name: "isbn10 check x lowercased", raw: "080442957x", want: "080442957X"},
		{name: "spaces stripped", raw: " 978 0134685991 ", want: "9780134685991"},
		{name: "too short", raw: "12345", wantErr: errs.ErrInvalidISBN},
		{name: "eleven digits", raw: "12345678901", wantErr: errs.ErrInvalidISBN},
		{name: "letters only", raw: "not-an-isbn", wantErr: errs.ErrInvalidISBN},
		{name: "empty", raw: "", wantErr: errs.ErrInvalidISBN},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := service.NormalizeISBN(tt.raw)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

type fakeImportRepo struct {
	repository.Repository

	scannedByISBN map[string]model.ScannedBook
	booksByISBN   map[string]model.Book
	categories    map[string]model.Category
	scannedByID   map[int]model.ScannedBook
	nextNumber    int

	created  *model.ScannedBook
	promoted *promotedCall
}

type promotedCall struct {
	scannedID        int
	mainCategoryCode string
	cover            *string
}

func (f *fakeImportRepo) GetScannedByISBN(_ context.Context, isbn string) (model.ScannedBook, error) {
	if sb, ok := f.scannedByISBN[isbn]; ok {
		return sb, nil
	}
	return model.ScannedBook{}, errs.ErrNotFound
}

func (f *fakeImportRepo) GetBookByISBN(_ context.Context, isbn string) (model.Book, error) {
	if b, ok := f.booksByISBN[isbn]; ok {
		return b, nil
	}
	return model.Book{}, errs.ErrNotFound
}

func (f *fakeImportRepo) CreateScanned(_ context.Context, sb model.ScannedBook) (model.ScannedBook, error) {
	sb.ID = 1
	f.created = &sb
	return sb, nil
}

func (f *fakeImportRepo) GetCategory(_ context.Context, code string) (model.Category, error) {
	if c, ok := f.categories[code]; ok {
		return c, nil
	}
	return model.Category{}, errs.ErrNotFound
}

func (f *fakeImportRepo) GetScanned(_ context.Context, id int) (model.ScannedBook, error) {
	if sb, ok := f.scannedByID[id]; ok {
		return sb, nil
	}
	return model.ScannedBook{}, errs.ErrNotFound
}

func (f *fakeImportRepo) PeekNextNumber(_ context.Context, _, _ string) (int, error) {
	return f.nextNumber, nil
}

func (f *fakeImportRepo) PromoteScanned(_ context.Context, scannedID int, req model.PromoteRequest, mainCategoryCode string, cover *string) (model.Book, error) {
	f.promoted = &promotedCall{scannedID: scannedID, mainCategoryCode: mainCategoryCode, cover: cover}
	return model.Book{
		ID:               10,
		Title:            req.Title,
		CategoryCode:     req.CategoryCode,
		MainCategoryCode: mainCategoryCode,
		NumberInCategory: 1,
	}, nil
}

type fakeMetadata struct {
	fn func(isbn string) (model.BookMetadata, error)
}

func (f fakeMetadata) FetchByISBN(_ context.Context, isbn string) (model.BookMetadata, error) {
	return f.fn(isbn)
}

type fakeCoverSource struct {
	fn func(isbn string) (string, error)
}

func (f fakeCoverSource) ProbeCover(_ context.Context, isbn string) (string, error) {
	return f.fn(isbn)
}

type fakeCoverStore struct {
	downloadFn func(url, isbn string) (string, error)
	removed    []string
}

func (f *fakeCoverStore) Download(_ context.Context, url, isbn string) (string, error) {
	return f.downloadFn(url, isbn)
}

func (f *fakeCoverStore) Remove(name string) {
	f.removed = append(f.removed, name)
}

func TestService_Scan(t *testing.T) {
	t.Parallel()

	noCover := fakeCoverSource{fn: func(string) (string, error) { return "", errs.ErrNotFound }}
	noStore := &fakeCoverStore{downloadFn: func(string, string) (string, error) {
		return "", errors.New("unreachable")
	}}

	t.Run("invalid isbn", func(t *testing.T) {
		t.Parallel()
		svc := service.NewService(&fakeImportRepo{}, nil, noCover, noStore, zap.NewNop())
		_, err := svc.Scan(context.Background(), "12-34")
		require.ErrorIs(t, err, errs.ErrInvalidISBN)
	})

	t.Run("already in the queue", func(t *testing.T) {
		t.Parallel()
		repo := &fakeImportRepo{scannedByISBN: map[string]model.ScannedBook{
			"9780134685991": {ID: 3, ISBN: "9780134685991"},
		}}
		svc := service.NewService(repo, nil, noCover, noStore, zap.NewNop())
		_, err := svc.Scan(context.Background(), "978-0-13-468599-1")
		require.ErrorIs(t, err, errs.ErrAlreadyScanned)
	})

	t.Run("already in the collection", func(t *testing.T) {
		t.Parallel()
		repo := &fakeImportRepo{booksByISBN: map[string]model.Book{
			"9780134685991": {ID: 11, Title: "The Go Programming Language"},
		}}
		svc := service.NewService(repo, nil, noCover, noStore, zap.NewNop())
		_, err := svc.Scan(context.Background(), "9780134685991")

		var de *errs.DuplicateBookError
		require.ErrorAs(t, err, &de)
		require.Equal(t, 11, de.BookID)
		require.Equal(t, "The Go Programming Language", de.Title)
	})

	t.Run("metadata lookup fails", func(t *testing.T) {
		t.Parallel()
		meta := fakeMetadata{fn: func(string) (model.BookMetadata, error) {
			return model.BookMetadata{}, errs.ErrMetadataUnavailable
		}}
		svc := service.NewService(&fakeImportRepo{}, meta, noCover, noStore, zap.NewNop())
		_, err := svc.Scan(context.Background(), "9780134685991")
		require.ErrorIs(t, err, errs.ErrMetadataUnavailable)
	})

	t.Run("stages a pending record", func(t *testing.T) {
		t.Parallel()
		year := 2015
		meta := fakeMetadata{fn: func(isbn string) (model.BookMetadata, error) {
			require.Equal(t, "9780134685991", isbn)
			return model.BookMetadata{
				ISBN:          isbn,
				Title:         "The Go Programming Language",
				Authors:       []string{"Alan A. A. Donovan", "Brian W. Kernighan"},
				PublishedYear: &year,
			}, nil
		}}
		source := fakeCoverSource{fn: func(isbn string) (string, error) {
			return "https://covers.example.org/b/isbn/" + isbn + "-L.jpg", nil
		}}
		store := &fakeCoverStore{downloadFn: func(url, isbn string) (string, error) {
			return isbn + "_abc.jpg", nil
		}}
		repo := &fakeImportRepo{}
		svc := service.NewService(repo, meta, source, store, zap.NewNop())

		sb, err := svc.Scan(context.Background(), "978-0-13-468599-1")
		require.NoError(t, err)
		require.NotNil(t, repo.created)

		require.Equal(t, "9780134685991", sb.ISBN)
		require.Equal(t, model.ScanStatusPending, sb.Status)
		require.Equal(t, "The Go Programming Language", sb.Title)
		require.NotNil(t, sb.AuthorsRaw)
		require.Equal(t, "Alan A. A. Donovan, Brian W. Kernighan", *sb.AuthorsRaw)
		require.NotNil(t, sb.CoverURL)
		require.Equal(t, "https://covers.example.org/b/isbn/9780134685991-L.jpg", *sb.CoverURL)
		require.NotNil(t, sb.CoverLocal)
		require.Equal(t, "9780134685991_abc.jpg", *sb.CoverLocal)
	})

	t.Run("cover download failure keeps the remote url", func(t *testing.T) {
		t.Parallel()
		meta := fakeMetadata{fn: func(isbn string) (model.BookMetadata, error) {
			return model.BookMetadata{ISBN: isbn, Title: "Some Book"}, nil
		}}
		source := fakeCoverSource{fn: func(isbn string) (string, error) {
			return "https://covers.example.org/x.jpg", nil
		}}
		store := &fakeCoverStore{downloadFn: func(string, string) (string, error) {
			return "", errors.New("disk full")
		}}
		svc := service.NewService(&fakeImportRepo{}, meta, source, store, zap.NewNop())

		sb, err := svc.Scan(context.Background(), "9780134685991")
		require.NoError(t, err)
		require.NotNil(t, sb.CoverURL)
		require.Nil(t, sb.CoverLocal)
	})
}

func TestService_Promote(t *testing.T) {
	t.Parallel()

	newRepo := func() *fakeImportRepo {
		local := "9780134685991_abc.jpg"
		return &fakeImportRepo{
			categories: map[string]model.Category{
				"PH": {Code: "PH", MainCategoryCode: "WR", Title: "Philosophy"},
			},
			scannedByID: map[int]model.ScannedBook{
				5: {ID: 5, ISBN: "9780134685991", Title: "Staged", CoverLocal: &local},
			},
		}
	}
	authorID := 7
	valid := model.PromoteRequest{
		Title:        "Final Title",
		CategoryCode: "PH",
		Authors:      []model.AuthorSelection{{ExistingID: &authorID}},
	}

	t.Run("ok", func(t *testing.T) {
		t.Parallel()
		repo := newRepo()
		svc := service.NewService(repo, nil, nil, nil, zap.NewNop())

		book, err := svc.Promote(context.Background(), 5, valid)
		require.NoError(t, err)
		require.Equal(t, "Final Title", book.Title)

		require.NotNil(t, repo.promoted)
		require.Equal(t, 5, repo.promoted.scannedID)
		require.Equal(t, "WR", repo.promoted.mainCategoryCode)
		require.NotNil(t, repo.promoted.cover)
		require.Equal(t, "9780134685991_abc.jpg", *repo.promoted.cover)
	})

	t.Run("validation happens before any write", func(t *testing.T) {
		t.Parallel()
		tests := []struct {
			name string
			req  model.PromoteRequest
		}{
			{
				name: "missing title",
				req: model.PromoteRequest{CategoryCode: "PH",
					Authors: []model.AuthorSelection{{ExistingID: &authorID}}},
			},
			{
				name: "missing category",
				req: model.PromoteRequest{Title: "T",
					Authors: []model.AuthorSelection{{ExistingID: &authorID}}},
			},
			{
				name: "no authors",
				req:  model.PromoteRequest{Title: "T", CategoryCode: "PH"},
			},
			{
				name: "author reference incomplete",
				req: model.PromoteRequest{Title: "T", CategoryCode: "PH",
					Authors: []model.AuthorSelection{{FirstName: "Stephen"}}},
			},
			{
				name: "author reference ambiguous",
				req: model.PromoteRequest{Title: "T", CategoryCode: "PH",
					Authors: []model.AuthorSelection{{ExistingID: &authorID, LastName: "King"}}},
			},
			{
				name: "unknown category",
				req: model.PromoteRequest{Title: "T", CategoryCode: "ZZ",
					Authors: []model.AuthorSelection{{ExistingID: &authorID}}},
			},
		}
		for _, tt := range tests {
			tt := tt
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()
				repo := newRepo()
				svc := service.NewService(repo, nil, nil, nil, zap.NewNop())

				_, err := svc.Promote(context.Background(), 5, tt.req)
				var ve *errs.ValidationError
				require.ErrorAs(t, err, &ve)
				require.Nil(t, repo.promoted)
			})
		}
	})

	t.Run("missing staging row", func(t *testing.T) {
		t.Parallel()
		repo := newRepo()
		svc := service.NewService(repo, nil, nil, nil, zap.NewNop())

		_, err := svc.Promote(context.Background(), 99, valid)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_PreviewTag(t *testing.T) {
	t.Parallel()
	repo := &fakeImportRepo{
		categories: map[string]model.Category{
			"PH": {Code: "PH", MainCategoryCode: "WR", Title: "Philosophy"},
		},
		nextNumber: 42,
	}
	svc := service.NewService(repo, nil, nil, nil, zap.NewNop())

	preview, err := svc.PreviewTag(context.Background(), "PH")
	require.NoError(t, err)
	require.Equal(t, "WR PH 0042", preview.Tag)
	require.Equal(t, 42, preview.NextNumber)

	_, err = svc.PreviewTag(context.Background(), "ZZ")
	var ve *errs.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestService_ListQueue(t *testing.T) {
	t.Parallel()

	repo := &fakeListRepo{items: []model.ScannedBook{
		{ID: 1, Status: model.ScanStatusPending},
		{ID: 2, Status: model.ScanStatusSkipped},
		{ID: 3, Status: model.ScanStatusReviewed},
	}}
	svc := service.NewService(repo, nil, nil, nil, zap.NewNop())

	queue, err := svc.ListQueue(context.Background())
	require.NoError(t, err)
	require.Len(t, queue.Pending, 2)
	require.Len(t, queue.Skipped, 1)
	require.Equal(t, 2, queue.Skipped[0].ID)
}

type fakeListRepo struct {
	repository.Repository
	items []model.ScannedBook
}

func (f *fakeListRepo) ListScanned(_ context.Context) ([]model.ScannedBook, error) {
	return f.items, nil
}
