package errs

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// scan pipeline
	ErrInvalidISBN         = errors.New("invalid ISBN format")
	ErrAlreadyScanned      = errors.New("already_scanned")
	ErrMetadataUnavailable = errors.New("book metadata unavailable")

	// catalog guards
	ErrCategoryHasBooks       = errors.New("category has books attached")
	ErrMainCategoryHasSubcats = errors.New("main category has subcategories attached")
	ErrAuthorExists           = errors.New("author with this name already exists")
	ErrAuthorInUse            = errors.New("author is linked to books")
)

// ValidationError reports a missing or malformed field before any write.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s %s", e.Field, e.Reason)
}

func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// DuplicateBookError is returned when a scanned ISBN is already in the
// collection; it surfaces the identity of the existing book.
type DuplicateBookError struct {
	BookID int
	Title  string
}

func (e *DuplicateBookError) Error() string {
	return fmt.Sprintf("already_in_collection: book %d %q", e.BookID, e.Title)
}
