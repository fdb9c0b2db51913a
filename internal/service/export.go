package service

import (
	"context"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/openbookmanager/openbookmanager/internal/model"
)

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefInt(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}

// BooksCSV renders the catalog as CSV rows, computed tag included.
func (s *Service) BooksCSV(ctx context.Context) ([][]string, error) {
	books, err := s.repo.ListBooks(ctx, model.BookFilter{SortBy: "tag"})
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"tag", "title", "subtitle", "authors", "year", "isbn", "publisher", "language", "notes"}}
	for _, b := range books.Items {
		rows = append(rows, []string{
			b.Tag, b.Title, deref(b.Subtitle), b.Authors, derefInt(b.Year),
			deref(b.ISBN), deref(b.Publisher), deref(b.Language), deref(b.Notes),
		})
	}
	return rows, nil
}

func (s *Service) AuthorsCSV(ctx context.Context) ([][]string, error) {
	authors, err := s.repo.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"id", "first_name", "last_name"}}
	for _, a := range authors {
		rows = append(rows, []string{strconv.Itoa(a.ID), a.FirstName, a.LastName})
	}
	return rows, nil
}

func (s *Service) CategoriesCSV(ctx context.Context) ([][]string, error) {
	cats, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"main_category", "main_category_title", "category", "category_title"}}
	for _, c := range cats {
		rows = append(rows, []string{c.MainCategoryCode, c.MainCategoryTitle, c.Code, c.Title})
	}
	return rows, nil
}

func (s *Service) WishlistCSV(ctx context.Context) ([][]string, error) {
	items, err := s.repo.ListWishlist(ctx)
	if err != nil {
		return nil, err
	}
	rows := [][]string{{"title", "author", "notes"}}
	for _, w := range items {
		rows = append(rows, []string{w.Title, deref(w.AuthorName), deref(w.Notes)})
	}
	return rows, nil
}

// Backup assembles the full-database JSON export. Sections load in
// parallel; any failure aborts the whole export.
func (s *Service) Backup(ctx context.Context) (model.Backup, error) {
	backup := model.Backup{ExportedAt: time.Now().UTC()}

	gg, ctx := errgroup.WithContext(ctx)
	gg.Go(func() error {
		var err error
		backup.MainCategories, err = s.repo.ListMainCategories(ctx)
		return err
	})
	gg.Go(func() error {
		var err error
		backup.Categories, err = s.repo.ListCategories(ctx)
		return err
	})
	gg.Go(func() error {
		var err error
		backup.Authors, err = s.repo.ListAuthors(ctx)
		return err
	})
	gg.Go(func() error {
		books, err := s.repo.ListBooks(ctx, model.BookFilter{SortBy: "tag"})
		if err != nil {
			return err
		}
		backup.Books = books.Items
		return nil
	})
	gg.Go(func() error {
		var err error
		backup.Wishlist, err = s.repo.ListWishlist(ctx)
		return err
	})

	if err := gg.Wait(); err != nil {
		return model.Backup{}, err
	}
	return backup, nil
}
