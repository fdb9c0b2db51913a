package model

import (
	"fmt"
	"time"
)

type Paging struct {
	Page          int `json:"page"`
	PageSize      int `json:"pageSize"`
	TotalElements int `json:"totalElements"`
}

type MainCategory struct {
	Code  string `json:"code" db:"code"`
	Title string `json:"title" db:"title"`
}

type Category struct {
	Code             string `json:"code" db:"code"`
	MainCategoryCode string `json:"mainCategoryCode" db:"code_maincategory"`
	Title            string `json:"title" db:"title"`
}

// CategoryView is a category joined with its main category for listings.
type CategoryView struct {
	Category
	MainCategoryTitle string `json:"mainCategoryTitle" db:"maincat_title"`
}

type Author struct {
	ID        int    `json:"id" db:"id"`
	FirstName string `json:"firstName" db:"first_name"`
	LastName  string `json:"lastName" db:"last_name"`
}

type Book struct {
	ID               int       `json:"id" db:"id"`
	Title            string    `json:"title" db:"title"`
	Subtitle         *string   `json:"subtitle,omitempty" db:"subtitle"`
	Year             *int      `json:"year,omitempty" db:"year"`
	ISBN             *string   `json:"isbn,omitempty" db:"isbn"`
	Publisher        *string   `json:"publisher,omitempty" db:"publisher"`
	Language         *string   `json:"language,omitempty" db:"language"`
	Notes            *string   `json:"notes,omitempty" db:"notes"`
	CoverImage       *string   `json:"coverImage,omitempty" db:"cover_image"`
	CategoryCode     string    `json:"categoryCode" db:"code_category"`
	MainCategoryCode string    `json:"mainCategoryCode" db:"code_maincategory"`
	NumberInCategory int       `json:"numberInCategory" db:"number_in_category"`
	CreatedAt        time.Time `json:"createdAt" db:"created_at"`
}

// Tag is the human-readable catalog label, e.g. "WR PH 0042".
// Derived on read, never stored.
func (b Book) Tag() string {
	return FormatTag(b.MainCategoryCode, b.CategoryCode, b.NumberInCategory)
}

func FormatTag(mainCategoryCode, categoryCode string, numberInCategory int) string {
	return fmt.Sprintf("%s %s %04d", mainCategoryCode, categoryCode, numberInCategory)
}

// BookListItem is a book row with its authors aggregated for listings.
type BookListItem struct {
	Book
	Tag     string `json:"tag" db:"-"`
	Authors string `json:"authors" db:"authors"`
}

type BookDetails struct {
	Book
	Tag               string   `json:"tag"`
	CategoryTitle     string   `json:"categoryTitle" db:"category_title"`
	MainCategoryTitle string   `json:"mainCategoryTitle" db:"maincat_title"`
	Authors           []Author `json:"authors"`
}

type ListBooks struct {
	Paging `json:",inline"`
	Items  []BookListItem `json:"items"`
}

type ScanStatus string

const (
	ScanStatusPending  ScanStatus = "pending"
	ScanStatusReviewed ScanStatus = "reviewed"
	ScanStatusSkipped  ScanStatus = "skipped"
	ScanStatusImported ScanStatus = "imported"
)

// ScannedBook is a staging record awaiting review before it becomes a Book.
type ScannedBook struct {
	ID             int        `json:"id" db:"id"`
	ISBN           string     `json:"isbn" db:"isbn"`
	Title          string     `json:"title" db:"title"`
	Subtitle       *string    `json:"subtitle,omitempty" db:"subtitle"`
	AuthorsRaw     *string    `json:"authorsRaw,omitempty" db:"authors_raw"`
	PublishedYear  *int       `json:"publishedYear,omitempty" db:"published_year"`
	Publisher      *string    `json:"publisher,omitempty" db:"publisher"`
	Pages          *int       `json:"pages,omitempty" db:"pages"`
	Language       *string    `json:"language,omitempty" db:"language"`
	Description    *string    `json:"description,omitempty" db:"description"`
	Notes          *string    `json:"notes,omitempty" db:"notes"`
	CoverURL       *string    `json:"coverUrl,omitempty" db:"cover_url"`
	CoverLocal     *string    `json:"coverLocal,omitempty" db:"cover_local"`
	Status         ScanStatus `json:"status" db:"status"`
	ImportedBookID *int       `json:"importedBookId,omitempty" db:"imported_book_id"`
	ScannedAt      time.Time  `json:"scannedAt" db:"scanned_at"`
}

type ListScanned struct {
	Paging `json:",inline"`
	Items  []ScannedBook `json:"items"`
}

type WishlistItem struct {
	ID         int       `json:"id" db:"id"`
	Title      string    `json:"title" db:"title"`
	AuthorName *string   `json:"authorName,omitempty" db:"author_name"`
	Notes      *string   `json:"notes,omitempty" db:"notes"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// BookMetadata is what an external metadata provider reports for an ISBN.
type BookMetadata struct {
	ISBN          string
	Title         string
	Subtitle      *string
	Authors       []string
	PublishedYear *int
	Publisher     *string
	Pages         *int
	Language      *string
	Description   *string
	CoverURL      *string
}

// AuthorCandidate is one parsed author name, matched against the catalog.
// Exactly one of ExistingID / the name pair being new applies.
type AuthorCandidate struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	ExistingID *int   `json:"existingId,omitempty"`
}

// AuthorSelection references either an existing author or a new name pair.
type AuthorSelection struct {
	ExistingID *int   `json:"existingId,omitempty"`
	FirstName  string `json:"firstName,omitempty"`
	LastName   string `json:"lastName,omitempty"`
}

type Backup struct {
	ExportedAt     time.Time      `json:"exportedAt"`
	MainCategories []MainCategory `json:"mainCategories"`
	Categories     []CategoryView `json:"categories"`
	Authors        []Author       `json:"authors"`
	Books          []BookListItem `json:"books"`
	Wishlist       []WishlistItem `json:"wishlist"`
}
