package domain

import "context"

// BookTag is a single tag attached to a book. Tag rows have no identity of
// their own; they live and die with their book.
type BookTag struct {
	BookID BookID
	Tag    string
}

// BookTagRepository defines the contract for book tag storage.
type BookTagRepository interface {
	// Save inserts the tag row unconditionally. Avoiding duplicates is the
	// caller's responsibility.
	Save(ctx context.Context, tag BookTag) error
	// DeleteByBookID bulk-deletes every tag of the book.
	DeleteByBookID(ctx context.Context, bookID BookID) error
	// GetBookTags returns the book's tags ordered alphabetically.
	GetBookTags(ctx context.Context, bookID BookID) ([]BookTag, error)
}
