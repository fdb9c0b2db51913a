package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/openbookmanager/openbookmanager/internal/errs"
	"github.com/openbookmanager/openbookmanager/internal/model"
	"github.com/openbookmanager/openbookmanager/internal/repository"
	"github.com/openbookmanager/openbookmanager/pkg/circuit_breaker"
)

// MetadataProvider reports book metadata for a normalized ISBN. Absence
// and transport failure are both errs.ErrMetadataUnavailable.
type MetadataProvider interface {
	FetchByISBN(ctx context.Context, isbn string) (model.BookMetadata, error)
}

// CoverSource probes for a cover image URL by ISBN.
type CoverSource interface {
	ProbeCover(ctx context.Context, isbn string) (string, error)
}

// CoverStore persists downloaded cover images locally.
type CoverStore interface {
	Download(ctx context.Context, url, isbn string) (string, error)
	Remove(name string)
}

type Service struct {
	log         *zap.Logger
	repo        repository.Repository
	metadata    MetadataProvider
	coverSource CoverSource
	coverStore  CoverStore
	breaker     circuit_breaker.CircuitBreaker
}

func NewService(repo repository.Repository, metadata MetadataProvider, coverSource CoverSource, coverStore CoverStore, log *zap.Logger) *Service {
	return &Service{
		log:         log,
		repo:        repo,
		metadata:    metadata,
		coverSource: coverSource,
		coverStore:  coverStore,
		breaker:     circuit_breaker.New(20, 30*time.Second, 0.5, 3),
	}
}

// resolveCategory maps a bare subcategory code to its full pair; an
// unknown code is a validation failure, reported before any write.
func (s *Service) resolveCategory(ctx context.Context, code string) (model.Category, error) {
	cat, err := s.repo.GetCategory(ctx, code)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return model.Category{}, errs.Validation("categoryCode", "is not a valid category")
		}
		return model.Category{}, err
	}
	return cat, nil
}

func (s *Service) ListBooks(ctx context.Context, filter model.BookFilter) (model.ListBooks, error) {
	return s.repo.ListBooks(ctx, filter)
}

func (s *Service) GetBook(ctx context.Context, id int) (model.BookDetails, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	cat, err := s.resolveCategory(ctx, req.CategoryCode)
	if err != nil {
		return model.Book{}, err
	}
	return s.repo.CreateBook(ctx, req, cat.MainCategoryCode)
}

func (s *Service) UpdateBook(ctx context.Context, id int, req model.UpdateBookRequest) (model.Book, error) {
	cat, err := s.resolveCategory(ctx, req.CategoryCode)
	if err != nil {
		return model.Book{}, err
	}
	return s.repo.UpdateBook(ctx, id, req, cat.MainCategoryCode)
}

func (s *Service) DeleteBook(ctx context.Context, id int) error {
	return s.repo.DeleteBook(ctx, id)
}

func (s *Service) ListAuthors(ctx context.Context) ([]model.Author, error) {
	return s.repo.ListAuthors(ctx)
}

// CreateAuthor applies the case-insensitive dedup heuristic before
// inserting; the unique index backs it up under concurrent writes.
func (s *Service) CreateAuthor(ctx context.Context, req model.AuthorRequest) (model.Author, error) {
	if _, err := s.repo.FindAuthorByName(ctx, req.FirstName, req.LastName); err == nil {
		return model.Author{}, errs.ErrAuthorExists
	} else if !errors.Is(err, errs.ErrNotFound) {
		return model.Author{}, err
	}
	return s.repo.CreateAuthor(ctx, req)
}

func (s *Service) UpdateAuthor(ctx context.Context, id int, req model.AuthorRequest) (model.Author, error) {
	return s.repo.UpdateAuthor(ctx, id, req)
}

func (s *Service) DeleteAuthor(ctx context.Context, id int) error {
	return s.repo.DeleteAuthor(ctx, id)
}

func (s *Service) ListMainCategories(ctx context.Context) ([]model.MainCategory, error) {
	return s.repo.ListMainCategories(ctx)
}

func (s *Service) CreateMainCategory(ctx context.Context, req model.MainCategoryRequest) (model.MainCategory, error) {
	return s.repo.CreateMainCategory(ctx, req)
}

func (s *Service) UpdateMainCategory(ctx context.Context, code, title string) (model.MainCategory, error) {
	return s.repo.UpdateMainCategory(ctx, code, title)
}

func (s *Service) DeleteMainCategory(ctx context.Context, code string) error {
	return s.repo.DeleteMainCategory(ctx, code)
}

func (s *Service) ListCategories(ctx context.Context) ([]model.CategoryView, error) {
	return s.repo.ListCategories(ctx)
}

func (s *Service) CreateCategory(ctx context.Context, req model.CategoryRequest) (model.Category, error) {
	return s.repo.CreateCategory(ctx, req)
}

func (s *Service) UpdateCategory(ctx context.Context, code, mainCategoryCode, title string) (model.Category, error) {
	return s.repo.UpdateCategory(ctx, code, mainCategoryCode, title)
}

func (s *Service) DeleteCategory(ctx context.Context, code, mainCategoryCode string) error {
	return s.repo.DeleteCategory(ctx, code, mainCategoryCode)
}

func (s *Service) ListWishlist(ctx context.Context) ([]model.WishlistItem, error) {
	return s.repo.ListWishlist(ctx)
}

func (s *Service) CreateWishlist(ctx context.Context, req model.WishlistRequest) (model.WishlistItem, error) {
	return s.repo.CreateWishlist(ctx, req)
}

func (s *Service) UpdateWishlist(ctx context.Context, id int, req model.WishlistRequest) (model.WishlistItem, error) {
	return s.repo.UpdateWishlist(ctx, id, req)
}

func (s *Service) DeleteWishlist(ctx context.Context, id int) error {
	return s.repo.DeleteWishlist(ctx, id)
}
