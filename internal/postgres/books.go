package postgres

import (
	"context"
	"errors"

	"bookcatalog/internal/domain"

	"github.com/jackc/pgx/v5"
)

// BookRepo implements domain.BookRepository over a single transaction.
type BookRepo struct {
	tx pgx.Tx
}

func NewBookRepo(tx pgx.Tx) *BookRepo {
	return &BookRepo{tx: tx}
}

func (r *BookRepo) Save(ctx context.Context, book domain.Book) error {
	const query = `
		INSERT INTO books (id, author_id, title, publication_year)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET author_id = $2, title = $3, publication_year = $4
	`
	_, err := r.tx.Exec(ctx, query,
		book.ID.String(), book.AuthorID.String(), book.Title, book.PublicationYear)
	return err
}

func (r *BookRepo) Edit(ctx context.Context, id domain.BookID, title string, publicationYear int) error {
	const query = `UPDATE books SET title = $2, publication_year = $3 WHERE id = $1`
	_, err := r.tx.Exec(ctx, query, id.String(), title, publicationYear)
	return err
}

func (r *BookRepo) Delete(ctx context.Context, id domain.BookID) error {
	const query = `DELETE FROM books WHERE id = $1`
	_, err := r.tx.Exec(ctx, query, id.String())
	return err
}

// GetBookByID joins the author's current name into AuthorName. Tags are not
// populated here; GetBook at the use-case layer does that.
func (r *BookRepo) GetBookByID(ctx context.Context, id domain.BookID) (domain.Book, error) {
	const query = `
		SELECT books.id, author_id, title, publication_year, authors.name
		FROM books
		INNER JOIN authors ON authors.id = author_id
		WHERE books.id = $1
	`
	book, err := scanBookWithAuthor(r.tx.QueryRow(ctx, query, id.String()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Book{}, domain.ErrNotFound
		}
		return domain.Book{}, err
	}
	return book, nil
}

// GetBooksByTitle does not join authors; AuthorName stays nil on every
// returned book.
func (r *BookRepo) GetBooksByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	const query = `
		SELECT id, author_id, title, publication_year
		FROM books
		WHERE title = $1
	`
	rows, err := r.tx.Query(ctx, query, title)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooks(rows, scanBook)
}

func (r *BookRepo) GetAllBooks(ctx context.Context) ([]domain.Book, error) {
	const query = `
		SELECT books.id, author_id, title, publication_year, authors.name
		FROM books
		INNER JOIN authors ON authors.id = author_id
		ORDER BY title, name, publication_year
	`
	rows, err := r.tx.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooks(rows, scanBookWithAuthor)
}

func (r *BookRepo) GetBooksByAuthorID(ctx context.Context, authorID domain.AuthorID) ([]domain.Book, error) {
	const query = `
		SELECT id, author_id, title, publication_year
		FROM books
		WHERE author_id = $1
		ORDER BY publication_year, title
	`
	rows, err := r.tx.Query(ctx, query, authorID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectBooks(rows, scanBook)
}

func (r *BookRepo) DeleteBooksByAuthorID(ctx context.Context, authorID domain.AuthorID) error {
	const query = `DELETE FROM books WHERE author_id = $1`
	_, err := r.tx.Exec(ctx, query, authorID.String())
	return err
}

func collectBooks(rows pgx.Rows, scan func(pgx.Row) (domain.Book, error)) ([]domain.Book, error) {
	var books []domain.Book
	for rows.Next() {
		book, err := scan(rows)
		if err != nil {
			return nil, err
		}
		books = append(books, book)
	}
	return books, rows.Err()
}

func scanBook(row pgx.Row) (domain.Book, error) {
	var rawID, rawAuthorID, title string
	var year int
	if err := row.Scan(&rawID, &rawAuthorID, &title, &year); err != nil {
		return domain.Book{}, err
	}
	return newBook(rawID, rawAuthorID, title, year, nil)
}

func scanBookWithAuthor(row pgx.Row) (domain.Book, error) {
	var rawID, rawAuthorID, title, authorName string
	var year int
	if err := row.Scan(&rawID, &rawAuthorID, &title, &year, &authorName); err != nil {
		return domain.Book{}, err
	}
	return newBook(rawID, rawAuthorID, title, year, &authorName)
}

func newBook(rawID, rawAuthorID, title string, year int, authorName *string) (domain.Book, error) {
	id, err := domain.ParseBookID(rawID)
	if err != nil {
		return domain.Book{}, err
	}
	authorID, err := domain.ParseAuthorID(rawAuthorID)
	if err != nil {
		return domain.Book{}, err
	}
	return domain.Book{
		ID:              id,
		AuthorID:        authorID,
		Title:           title,
		PublicationYear: year,
		AuthorName:      authorName,
	}, nil
}
