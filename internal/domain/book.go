package domain

import "context"

// Book represents a book entity.
//
// AuthorName and Tags are derived fields, never persisted on the book row.
// Each read path documents whether it populates them; a nil AuthorName or
// empty Tags means "not loaded", not "absent".
type Book struct {
	ID              BookID
	AuthorID        AuthorID
	Title           string
	PublicationYear int

	AuthorName *string
	Tags       []string
}

// BookRepository defines the contract for book storage, bound to a single
// transaction like AuthorRepository.
type BookRepository interface {
	// Save inserts the book, overwriting author id, title and publication
	// year on an id conflict. Tags are never touched by Save.
	Save(ctx context.Context, book Book) error
	// Edit updates title and publication year only.
	Edit(ctx context.Context, id BookID, title string, publicationYear int) error
	// Delete removes the row. Deleting an absent id is not an error.
	Delete(ctx context.Context, id BookID) error

	// GetBookByID returns the book joined with its author's current name
	// (AuthorName populated, Tags not), or ErrNotFound.
	GetBookByID(ctx context.Context, id BookID) (Book, error)
	// GetBooksByTitle returns every book with that exact title.
	// AuthorName is not populated.
	GetBooksByTitle(ctx context.Context, title string) ([]Book, error)
	// GetAllBooks returns every book joined with its author, ordered by
	// title, then author name, then publication year. AuthorName populated.
	GetAllBooks(ctx context.Context) ([]Book, error)
	// GetBooksByAuthorID returns the author's books ordered by publication
	// year, then title. AuthorName is not populated.
	GetBooksByAuthorID(ctx context.Context, authorID AuthorID) ([]Book, error)

	// DeleteBooksByAuthorID bulk-deletes all of the author's books. Used
	// only as part of the delete-author cascade.
	DeleteBooksByAuthorID(ctx context.Context, authorID AuthorID) error
}
