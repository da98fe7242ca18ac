package usecase

import (
	"context"
	"errors"

	"bookcatalog/internal/domain"
)

// Catalog implements the catalog use cases. It is the only layer allowed to
// span entity kinds: cross-entity consistency (cascading deletes, tag
// replacement, derived-field population) is orchestrated here, inside one
// unit of work per call.
//
// Every operation, reads included, commits its unit exactly once; committing
// a transaction that wrote nothing is a harmless no-op and keeps transaction
// lifecycles uniform. Not-found never surfaces as an error: mutations report
// a boolean, lookups return nil.
type Catalog struct {
	factory UnitOfWorkFactory
}

func NewCatalog(factory UnitOfWorkFactory) *Catalog {
	return &Catalog{factory: factory}
}

// AddAuthor saves a new author under a fresh id. Duplicate names are not
// checked here; the storage unique constraint reports them as an error.
func (c *Catalog) AddAuthor(ctx context.Context, name string) (domain.Author, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return domain.Author{}, err
	}
	defer uow.Close(ctx)

	author := domain.Author{ID: domain.NewAuthorID(), Name: name}
	if err := uow.Authors().Save(ctx, author); err != nil {
		return domain.Author{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return domain.Author{}, err
	}
	return author, nil
}

// EditAuthor renames an existing author. Returns false when the id does not
// exist.
func (c *Catalog) EditAuthor(ctx context.Context, id domain.AuthorID, newName string) (bool, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer uow.Close(ctx)

	if _, err := uow.Authors().GetAuthorByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, uow.Commit(ctx)
		}
		return false, err
	}
	if err := uow.Authors().Edit(ctx, id, newName); err != nil {
		return false, err
	}
	if err := uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteAuthor removes the author together with every book they own and
// those books' tags. The storage layer only enforces the book→author
// reference, so the cascade order is a hard contract: tags first, then the
// books in bulk, then the author row. Returns false when the id does not
// exist.
func (c *Catalog) DeleteAuthor(ctx context.Context, id domain.AuthorID) (bool, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer uow.Close(ctx)

	if _, err := uow.Authors().GetAuthorByID(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, uow.Commit(ctx)
		}
		return false, err
	}

	books, err := uow.Books().GetBooksByAuthorID(ctx, id)
	if err != nil {
		return false, err
	}
	for _, book := range books {
		if err := uow.BookTags().DeleteByBookID(ctx, book.ID); err != nil {
			return false, err
		}
	}
	if err := uow.Books().DeleteBooksByAuthorID(ctx, id); err != nil {
		return false, err
	}
	if err := uow.Authors().Delete(ctx, id); err != nil {
		return false, err
	}
	if err := uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// GetAuthorByName returns the author with that exact name, or nil.
func (c *Catalog) GetAuthorByName(ctx context.Context, name string) (*domain.Author, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Close(ctx)

	author, err := uow.Authors().GetAuthorByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, uow.Commit(ctx)
		}
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAuthorByID returns the author with that id, or nil.
func (c *Catalog) GetAuthorByID(ctx context.Context, id domain.AuthorID) (*domain.Author, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Close(ctx)

	author, err := uow.Authors().GetAuthorByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, uow.Commit(ctx)
		}
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &author, nil
}

// GetAllAuthors returns every author ordered by name.
func (c *Catalog) GetAllAuthors(ctx context.Context) ([]domain.Author, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Close(ctx)

	authors, err := uow.Authors().GetAllAuthors(ctx)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return authors, nil
}

// AddBookByAuthorID saves a new book for an existing author, plus one tag row
// per tag. Tags are expected already normalized (domain.NormalizeTags).
func (c *Catalog) AddBookByAuthorID(ctx context.Context, authorID domain.AuthorID, title string, publicationYear int, tags []string) (domain.Book, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return domain.Book{}, err
	}
	defer uow.Close(ctx)

	book, err := saveBook(ctx, uow, authorID, title, publicationYear, tags)
	if err != nil {
		return domain.Book{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return domain.Book{}, err
	}
	return book, nil
}

// AddBookByAuthorName unconditionally creates a brand-new author row with the
// given name and attaches the book to it, even when an author with that name
// already exists elsewhere. Callers wanting to attach to an existing author
// must resolve the id themselves and use AddBookByAuthorID.
func (c *Catalog) AddBookByAuthorName(ctx context.Context, authorName, title string, publicationYear int, tags []string) (domain.Book, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return domain.Book{}, err
	}
	defer uow.Close(ctx)

	author := domain.Author{ID: domain.NewAuthorID(), Name: authorName}
	if err := uow.Authors().Save(ctx, author); err != nil {
		return domain.Book{}, err
	}
	book, err := saveBook(ctx, uow, author.ID, title, publicationYear, tags)
	if err != nil {
		return domain.Book{}, err
	}
	if err := uow.Commit(ctx); err != nil {
		return domain.Book{}, err
	}
	return book, nil
}

func saveBook(ctx context.Context, uow UnitOfWork, authorID domain.AuthorID, title string, publicationYear int, tags []string) (domain.Book, error) {
	book := domain.Book{
		ID:              domain.NewBookID(),
		AuthorID:        authorID,
		Title:           title,
		PublicationYear: publicationYear,
	}
	if err := uow.Books().Save(ctx, book); err != nil {
		return domain.Book{}, err
	}
	for _, tag := range tags {
		if err := uow.BookTags().Save(ctx, domain.BookTag{BookID: book.ID, Tag: tag}); err != nil {
			return domain.Book{}, err
		}
	}
	return book, nil
}

// EditBook updates title and publication year and replaces the whole tag set.
// An empty tag list leaves the book tagless. Returns false when the id does
// not exist.
func (c *Catalog) EditBook(ctx context.Context, id domain.BookID, title string, publicationYear int, tags []string) (bool, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer uow.Close(ctx)

	book, err := uow.Books().GetBookByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, uow.Commit(ctx)
		}
		return false, err
	}
	if err := uow.Books().Edit(ctx, book.ID, title, publicationYear); err != nil {
		return false, err
	}

	existing, err := uow.BookTags().GetBookTags(ctx, book.ID)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		if err := uow.BookTags().DeleteByBookID(ctx, book.ID); err != nil {
			return false, err
		}
	}
	for _, tag := range tags {
		if err := uow.BookTags().Save(ctx, domain.BookTag{BookID: book.ID, Tag: tag}); err != nil {
			return false, err
		}
	}
	if err := uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteBook removes the book and its tags, tags first. Returns false when
// the id does not exist.
func (c *Catalog) DeleteBook(ctx context.Context, id domain.BookID) (bool, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer uow.Close(ctx)

	book, err := uow.Books().GetBookByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, uow.Commit(ctx)
		}
		return false, err
	}
	if err := uow.BookTags().DeleteByBookID(ctx, book.ID); err != nil {
		return false, err
	}
	if err := uow.Books().Delete(ctx, book.ID); err != nil {
		return false, err
	}
	if err := uow.Commit(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// GetBook returns the book with AuthorName and Tags populated, or nil. This
// is the one read path that fetches tags.
func (c *Catalog) GetBook(ctx context.Context, id domain.BookID) (*domain.Book, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Close(ctx)

	book, err := uow.Books().GetBookByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, uow.Commit(ctx)
		}
		return nil, err
	}

	bookTags, err := uow.BookTags().GetBookTags(ctx, id)
	if err != nil {
		return nil, err
	}
	tags := make([]string, 0, len(bookTags))
	for _, bookTag := range bookTags {
		tags = append(tags, bookTag.Tag)
	}
	book.Tags = tags

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return &book, nil
}

// GetBooksByTitle returns every book with that exact title. AuthorName and
// Tags are not populated.
func (c *Catalog) GetBooksByTitle(ctx context.Context, title string) ([]domain.Book, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Close(ctx)

	books, err := uow.Books().GetBooksByTitle(ctx, title)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return books, nil
}

// GetAllBooks returns every book ordered by title, author name and
// publication year, with AuthorName populated. Tags are not.
func (c *Catalog) GetAllBooks(ctx context.Context) ([]domain.Book, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Close(ctx)

	books, err := uow.Books().GetAllBooks(ctx)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return books, nil
}

// GetBooksByAuthorID returns the author's books ordered by publication year
// and title. AuthorName and Tags are not populated.
func (c *Catalog) GetBooksByAuthorID(ctx context.Context, authorID domain.AuthorID) ([]domain.Book, error) {
	uow, err := c.factory.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer uow.Close(ctx)

	books, err := uow.Books().GetBooksByAuthorID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return books, nil
}
