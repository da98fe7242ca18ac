package postgres

import (
	"context"
	"errors"

	"bookcatalog/internal/domain"

	"github.com/jackc/pgx/v5"
)

// AuthorRepo implements domain.AuthorRepository over a single transaction.
type AuthorRepo struct {
	tx pgx.Tx
}

func NewAuthorRepo(tx pgx.Tx) *AuthorRepo {
	return &AuthorRepo{tx: tx}
}

func (r *AuthorRepo) Save(ctx context.Context, author domain.Author) error {
	const query = `
		INSERT INTO authors (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = $2
	`
	_, err := r.tx.Exec(ctx, query, author.ID.String(), author.Name)
	return err
}

func (r *AuthorRepo) Edit(ctx context.Context, id domain.AuthorID, newName string) error {
	const query = `UPDATE authors SET name = $2 WHERE id = $1`
	_, err := r.tx.Exec(ctx, query, id.String(), newName)
	return err
}

func (r *AuthorRepo) Delete(ctx context.Context, id domain.AuthorID) error {
	const query = `DELETE FROM authors WHERE id = $1`
	_, err := r.tx.Exec(ctx, query, id.String())
	return err
}

func (r *AuthorRepo) GetAllAuthors(ctx context.Context) ([]domain.Author, error) {
	const query = `SELECT id, name FROM authors ORDER BY name`
	rows, err := r.tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var authors []domain.Author
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}
	return authors, rows.Err()
}

func (r *AuthorRepo) GetAuthorByName(ctx context.Context, name string) (domain.Author, error) {
	const query = `SELECT id, name FROM authors WHERE name = $1`
	return r.getAuthor(ctx, query, name)
}

func (r *AuthorRepo) GetAuthorByID(ctx context.Context, id domain.AuthorID) (domain.Author, error) {
	const query = `SELECT id, name FROM authors WHERE id = $1`
	return r.getAuthor(ctx, query, id.String())
}

func (r *AuthorRepo) getAuthor(ctx context.Context, query string, arg any) (domain.Author, error) {
	author, err := scanAuthor(r.tx.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Author{}, domain.ErrNotFound
		}
		return domain.Author{}, err
	}
	return author, nil
}

func scanAuthor(row pgx.Row) (domain.Author, error) {
	var rawID, name string
	if err := row.Scan(&rawID, &name); err != nil {
		return domain.Author{}, err
	}
	id, err := domain.ParseAuthorID(rawID)
	if err != nil {
		return domain.Author{}, err
	}
	return domain.Author{ID: id, Name: name}, nil
}
