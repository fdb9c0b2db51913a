package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/internal/model"
)

type Repository interface {
	// books
	ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error)
	GetBook(ctx context.Context, id int) (model.BookDetails, error)
	GetBookByISBN(ctx context.Context, isbn string) (model.Book, error)
	CreateBook(ctx context.Context, req model.CreateBookRequest, mainCategoryCode string) (model.Book, error)
	UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest, mainCategoryCode string) (model.Book, error)
	DeleteBook(ctx context.Context, id int) error

	// authors
	ListAuthors(ctx context.Context) ([]model.Author, error)
	GetAuthor(ctx context.Context, id int) (model.Author, error)
	FindAuthorByName(ctx context.Context, firstName, lastName string) (model.Author, error)
	CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error)
	UpdateAuthor(ctx context.Context, id int, req model.AuthorRequest) (model.Author, error)
	DeleteAuthor(ctx context.Context, id int) error

	// taxonomy
	ListMainCategories(ctx context.Context) ([]model.MainCategory, error)
	CreateMainCategory(ctx context.Context, req model.MainCategoryRequest) (model.MainCategory, error)
	UpdateMainCategory(ctx context.Context, code, title string) (model.MainCategory, error)
	DeleteMainCategory(ctx context.Context, code string) error
	ListCategories(ctx context.Context) ([]model.CategoryView, error)
	GetCategory(ctx context.Context, code string) (model.Category, error)
	CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error)
	UpdateCategory(ctx context.Context, code, mainCategoryCode, title string) (model.Category, error)
	DeleteCategory(ctx context.Context, code, mainCategoryCode string) error

	// sequences
	PeekNextNumber(ctx context.Context, categoryCode, mainCategoryCode string) (int, error)

	// scan staging
	ListScanned(ctx context.Context) ([]model.ScannedBook, error)
	GetScanned(ctx context.Context, id int) (model.ScannedBook, error)
	GetScannedByISBN(ctx context.Context, isbn string) (model.ScannedBook, error)
	CreateScanned(ctx context.Context, sb model.ScannedBook) (model.ScannedBook, error)
	UpdateScanned(ctx context.Context, id int, req model.UpdateScannedRequest) (model.ScannedBook, error)
	SetScannedStatus(ctx context.Context, id int, status model.ScanStatus) error
	DeleteScanned(ctx context.Context, id int) error
	PromoteScanned(ctx context.Context, scannedID int, req model.PromoteRequest, mainCategoryCode string, cover *string) (model.Book, error)

	// wishlist
	ListWishlist(ctx context.Context) ([]model.WishlistItem, error)
	CreateWishlist(ctx context.Context, req model.WishlistRequest) (model.WishlistItem, error)
	UpdateWishlist(ctx context.Context, id int, req model.WishlistRequest) (model.WishlistItem, error)
	DeleteWishlist(ctx context.Context, id int) error
}

type repository struct {
	db  *sqlx.DB
	log *zap.Logger
}

func NewRepository(db *sqlx.DB, log *zap.Logger) (*repository, error) {
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	mainCategoriesTableName = `maincategories`
	categoriesTableName     = `categories`
	sequencesTableName      = `category_sequences`
	authorsTableName        = `authors`
	booksTableName          = `books`
	bookAuthorTableName     = `book_author`
	scannedTableName        = `scanned_books`
	wishlistTableName       = `wishlist`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) withTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()
	if err := fn(tx); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}
