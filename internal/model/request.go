package model

type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	ExpiresIn   int    `json:"expiresIn"`
}

type CreateBookRequest struct {
	Title        string  `json:"title" validate:"required"`
	Subtitle     *string `json:"subtitle"`
	Year         *int    `json:"year"`
	ISBN         *string `json:"isbn"`
	Publisher    *string `json:"publisher"`
	Language     *string `json:"language"`
	Notes        *string `json:"notes"`
	CoverImage   *string `json:"coverImage"`
	CategoryCode string  `json:"categoryCode" validate:"required"`
	AuthorIDs    []int   `json:"authorIds" validate:"required,min=1"`
}

// UpdateBookRequest mirrors CreateBookRequest; a changed category triggers
// renumbering from the new category's sequence.
type UpdateBookRequest = CreateBookRequest

type AuthorRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
}

type MainCategoryRequest struct {
	Code  string `json:"code" validate:"required,len=2,alpha"`
	Title string `json:"title" validate:"required"`
}

type CategoryRequest struct {
	Code             string `json:"code" validate:"required,len=2,alpha"`
	MainCategoryCode string `json:"mainCategoryCode" validate:"required,len=2,alpha"`
	Title            string `json:"title" validate:"required"`
}

type WishlistRequest struct {
	Title      string  `json:"title" validate:"required"`
	AuthorName *string `json:"authorName"`
	Notes      *string `json:"notes"`
}

type ScanRequest struct {
	ISBN string `json:"isbn" validate:"required"`
}

// ManualQueueRequest adds a book to the import queue without an ISBN scan.
type ManualQueueRequest struct {
	Title         string  `json:"title" validate:"required"`
	Subtitle      *string `json:"subtitle"`
	AuthorsRaw    string  `json:"authorsRaw" validate:"required"`
	PublishedYear *int    `json:"publishedYear"`
	Publisher     *string `json:"publisher"`
	Pages         *int    `json:"pages"`
	Language      *string `json:"language"`
	Notes         *string `json:"notes"`
}

type UpdateScannedRequest struct {
	Title         string  `json:"title" validate:"required"`
	Subtitle      *string `json:"subtitle"`
	AuthorsRaw    *string `json:"authorsRaw"`
	PublishedYear *int    `json:"publishedYear"`
	Publisher     *string `json:"publisher"`
	Pages         *int    `json:"pages"`
	Language      *string `json:"language"`
	Notes         *string `json:"notes"`
}

// PromoteRequest commits a scanned book into the catalog.
type PromoteRequest struct {
	Title        string            `json:"title" validate:"required"`
	Subtitle     *string           `json:"subtitle"`
	Year         *int              `json:"year"`
	ISBN         *string           `json:"isbn"`
	Publisher    *string           `json:"publisher"`
	Language     *string           `json:"language"`
	Notes        *string           `json:"notes"`
	CategoryCode string            `json:"categoryCode" validate:"required"`
	Authors      []AuthorSelection `json:"authors" validate:"required,min=1"`
}

type ParseAuthorsRequest struct {
	AuthorsRaw string `json:"authorsRaw"`
}

type PreviewTagRequest struct {
	CategoryCode string `json:"categoryCode" validate:"required"`
}

type PreviewTagResponse struct {
	Tag        string `json:"tag"`
	NextNumber int    `json:"nextNumber"`
}

// BookFilter narrows and orders book listings. SortBy must be one of the
// repository's allow-listed sort keys.
type BookFilter struct {
	Search           string
	CategoryCode     string
	MainCategoryCode string
	SortBy           string
	Page             int
	Size             int
}
