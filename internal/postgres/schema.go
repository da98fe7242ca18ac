package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema creates the catalog tables if they do not exist yet. It runs
// once at startup, outside the transactional core; cmd/migrate offers the
// same schema as a goose migration for managed deployments.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	statements := []string{
		`CREATE TABLE IF NOT EXISTS authors (
			id UUID PRIMARY KEY,
			name varchar(100) UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS books (
			id UUID PRIMARY KEY,
			author_id UUID NOT NULL REFERENCES authors(id),
			title varchar(100) NOT NULL,
			publication_year integer NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS book_tags (
			book_id UUID REFERENCES books (id),
			tag varchar(30) NOT NULL
		)`,
	}
	for _, statement := range statements {
		if _, err := tx.Exec(ctx, statement); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}
