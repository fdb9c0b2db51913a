package handler

import (
	"context"

	"github.com/openbookmanager/openbookmanager/internal/model"
	"github.com/openbookmanager/openbookmanager/internal/service"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=service_mocks

type CatalogService interface {
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)
	GetBook(ctx context.Context, id int) (model.BookDetails, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	ListAuthors(ctx context.Context) ([]model.Author, error)
	CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int, req model.AuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int) error

	ListMainCategories(ctx context.Context) ([]model.MainCategory, error)
	CreateMainCategory(ctx context.Context, req model.MainCategoryRequest) (model.MainCategory, error)
	UpdateMainCategory(ctx context.Context, code, title string) (model.MainCategory, error)
	DeleteMainCategory(ctx context.Context, code string) error
	ListCategories(ctx context.Context) ([]model.CategoryView, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error)
	UpdateCategory(ctx context.Context, code, mainCategoryCode, title string) (model.Category, error)
	DeleteCategory(ctx context.Context, code, mainCategoryCode string) error

	ListWishlist(ctx context.Context) ([]model.WishlistItem, error)
	CreateWishlist(ctx context.Context, req model.WishlistRequest) (model.WishlistItem, error)
	UpdateWishlist(ctx context.Context, id int, req model.WishlistRequest) (model.WishlistItem, error)
	DeleteWishlist(ctx context.Context, id int) error
}

type ImportService interface {
	Scan(ctx context.Context, rawISBN string) (model.ScannedBook, error)
	AddManual(ctx context.Context, req model.ManualQueueRequest) (model.ScannedBook, error)
	ListQueue(ctx context.Context) (service.ImportQueue, error)
	ExportQueue(ctx context.Context) ([]model.ScannedBook, error)
	GetScanned(ctx context.Context, id int) (model.ScannedBook, error)
	UpdateScanned(ctx context.Context, id int, req model.UpdateScannedRequest) (model.ScannedBook, error)
	Skip(ctx context.Context, id int) error
	Unskip(ctx context.Context, id int) error
	DeleteScanned(ctx context.Context, id int) error
	Promote(ctx context.Context, scannedID int, req model.PromoteRequest) (model.Book, error)
	ParseAndMatchAuthors(ctx context.Context, raw string) ([]model.AuthorCandidate, error)
	PreviewTag(ctx context.Context, categoryCode string) (model.PreviewTagResponse, error)
}

type ExportService interface {
	BooksCSV(ctx context.Context) ([][]string, error)
	AuthorsCSV(ctx context.Context) ([][]string, error)
	CategoriesCSV(ctx context.Context) ([][]string, error)
	WishlistCSV(ctx context.Context) ([][]string, error)
	Backup(ctx context.Context) (model.Backup, error)
}
