package domain

import (
	"context"
	"errors"
)

// ErrNotFound is returned by single-row lookups when no row matches.
// Absence is expected application state, not a storage fault.
var ErrNotFound = errors.New("not found")

// Author represents an author entity. Names are unique across all authors;
// uniqueness is enforced by the storage layer, not checked here.
type Author struct {
	ID   AuthorID
	Name string
}

// AuthorRepository defines the contract for author storage. An implementation
// is bound to a single transaction for its whole lifetime.
type AuthorRepository interface {
	// Save inserts the author, overwriting the name on an id conflict.
	Save(ctx context.Context, author Author) error
	// Edit updates the name of an existing row. Editing an absent id is a
	// silent no-op; existence checks are the caller's responsibility.
	Edit(ctx context.Context, id AuthorID, newName string) error
	// Delete removes the row. Deleting an absent id is not an error.
	Delete(ctx context.Context, id AuthorID) error

	// GetAllAuthors returns every author ordered by name ascending.
	GetAllAuthors(ctx context.Context) ([]Author, error)
	// GetAuthorByName returns the author with that exact name, or ErrNotFound.
	GetAuthorByName(ctx context.Context, name string) (Author, error)
	// GetAuthorByID returns the author with that id, or ErrNotFound.
	GetAuthorByID(ctx context.Context, id AuthorID) (Author, error)
}
