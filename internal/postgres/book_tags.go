package postgres

import (
	"context"

	"bookcatalog/internal/domain"

	"github.com/jackc/pgx/v5"
)

// BookTagRepo implements domain.BookTagRepository over a single transaction.
type BookTagRepo struct {
	tx pgx.Tx
}

func NewBookTagRepo(tx pgx.Tx) *BookTagRepo {
	return &BookTagRepo{tx: tx}
}

func (r *BookTagRepo) Save(ctx context.Context, tag domain.BookTag) error {
	const query = `INSERT INTO book_tags (book_id, tag) VALUES ($1, $2)`
	_, err := r.tx.Exec(ctx, query, tag.BookID.String(), tag.Tag)
	return err
}

func (r *BookTagRepo) DeleteByBookID(ctx context.Context, bookID domain.BookID) error {
	const query = `DELETE FROM book_tags WHERE book_id = $1`
	_, err := r.tx.Exec(ctx, query, bookID.String())
	return err
}

func (r *BookTagRepo) GetBookTags(ctx context.Context, bookID domain.BookID) ([]domain.BookTag, error) {
	const query = `SELECT book_id, tag FROM book_tags WHERE book_id = $1 ORDER BY tag`
	rows, err := r.tx.Query(ctx, query, bookID.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tags []domain.BookTag
	for rows.Next() {
		var rawBookID, tag string
		if err := rows.Scan(&rawBookID, &tag); err != nil {
			return nil, err
		}
		id, err := domain.ParseBookID(rawBookID)
		if err != nil {
			return nil, err
		}
		tags = append(tags, domain.BookTag{BookID: id, Tag: tag})
	}
	return tags, rows.Err()
}
