package postgres

import (
	"context"

	"bookcatalog/internal/domain"
	"bookcatalog/internal/usecase"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UnitOfWork binds one transaction and one repository per entity to it.
// Writes through any repository are visible to reads through the others inside
// the same unit, and nothing is durable until Commit. A unit serves exactly
// one logical operation and is then discarded.
type UnitOfWork struct {
	tx        pgx.Tx
	authors   *AuthorRepo
	books     *BookRepo
	bookTags  *BookTagRepo
	committed bool
}

func newUnitOfWork(tx pgx.Tx) *UnitOfWork {
	return &UnitOfWork{
		tx:       tx,
		authors:  NewAuthorRepo(tx),
		books:    NewBookRepo(tx),
		bookTags: NewBookTagRepo(tx),
	}
}

func (u *UnitOfWork) Authors() domain.AuthorRepository {
	return u.authors
}

func (u *UnitOfWork) Books() domain.BookRepository {
	return u.books
}

func (u *UnitOfWork) BookTags() domain.BookTagRepository {
	return u.bookTags
}

// Commit finalizes the transaction.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if err := u.tx.Commit(ctx); err != nil {
		return err
	}
	u.committed = true
	return nil
}

// Close discards the transaction when Commit was never reached. There is no
// explicit rollback operation; failure paths simply skip Commit and let Close
// throw the work away.
func (u *UnitOfWork) Close(ctx context.Context) {
	if u.committed {
		return
	}
	// Rollback on an already-closed transaction reports pgx.ErrTxClosed;
	// either way the work is discarded.
	_ = u.tx.Rollback(ctx)
}

// UnitOfWorkFactory opens a fresh transaction per logical operation against
// the shared pool.
type UnitOfWorkFactory struct {
	pool *pgxpool.Pool
}

func NewUnitOfWorkFactory(pool *pgxpool.Pool) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{pool: pool}
}

func (f *UnitOfWorkFactory) Begin(ctx context.Context) (usecase.UnitOfWork, error) {
	tx, err := f.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}
	return newUnitOfWork(tx), nil
}
