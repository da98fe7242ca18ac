package usecase

import (
	"context"

	"bookcatalog/internal/domain"
)

// UnitOfWork is one transaction scope. The three repositories share the
// unit's transaction: writes through one are visible to reads through the
// others, and none are durable until Commit. A unit backs exactly one
// logical operation; Close discards it when Commit was never reached.
type UnitOfWork interface {
	Authors() domain.AuthorRepository
	Books() domain.BookRepository
	BookTags() domain.BookTagRepository

	Commit(ctx context.Context) error
	Close(ctx context.Context)
}

// UnitOfWorkFactory opens a fresh unit of work, and with it a fresh
// transaction, per logical operation.
type UnitOfWorkFactory interface {
	Begin(ctx context.Context) (UnitOfWork, error)
}
