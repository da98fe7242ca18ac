package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrMalformedID is returned when an identifier string cannot be parsed.
// It is raised at the boundary, before any storage call is attempted.
var ErrMalformedID = errors.New("malformed identifier")

// AuthorID identifies an author. It is a distinct type from BookID so the
// two can never be mixed up, even though both encode as UUID strings.
type AuthorID uuid.UUID

// NewAuthorID generates a fresh random author identifier.
func NewAuthorID() AuthorID {
	return AuthorID(uuid.New())
}

// ParseAuthorID parses the canonical hyphenated-hex encoding.
func ParseAuthorID(s string) (AuthorID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return AuthorID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	return AuthorID(id), nil
}

// String returns the canonical hyphenated-hex encoding. This is the exact
// form stored in the database and passed as a query parameter.
func (id AuthorID) String() string {
	return uuid.UUID(id).String()
}

// BookID identifies a book.
type BookID uuid.UUID

// NewBookID generates a fresh random book identifier.
func NewBookID() BookID {
	return BookID(uuid.New())
}

// ParseBookID parses the canonical hyphenated-hex encoding.
func ParseBookID(s string) (BookID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return BookID{}, fmt.Errorf("%w: %q", ErrMalformedID, s)
	}
	return BookID(id), nil
}

func (id BookID) String() string {
	return uuid.UUID(id).String()
}
