package usecase_test

import (
	"context"
	"errors"
	"testing"

	"bookcatalog/internal/domain"
	"bookcatalog/internal/usecase"
	"bookcatalog/internal/usecase/mocks"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogMocks struct {
	factory  *mocks.MockUnitOfWorkFactory
	uow      *mocks.MockUnitOfWork
	authors  *mocks.MockAuthorRepository
	books    *mocks.MockBookRepository
	bookTags *mocks.MockBookTagRepository
}

// newCatalogMocks wires a factory that hands out a single unit of work whose
// repository accessors and Close may be called freely; the interesting
// expectations are set per test.
func newCatalogMocks(ctrl *gomock.Controller) catalogMocks {
	m := catalogMocks{
		factory:  mocks.NewMockUnitOfWorkFactory(ctrl),
		uow:      mocks.NewMockUnitOfWork(ctrl),
		authors:  mocks.NewMockAuthorRepository(ctrl),
		books:    mocks.NewMockBookRepository(ctrl),
		bookTags: mocks.NewMockBookTagRepository(ctrl),
	}
	m.factory.EXPECT().Begin(gomock.Any()).Return(m.uow, nil).AnyTimes()
	m.uow.EXPECT().Authors().Return(m.authors).AnyTimes()
	m.uow.EXPECT().Books().Return(m.books).AnyTimes()
	m.uow.EXPECT().BookTags().Return(m.bookTags).AnyTimes()
	m.uow.EXPECT().Close(gomock.Any()).AnyTimes()
	return m
}

func TestCatalog_AddAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCatalogMocks(ctrl)
	c := usecase.NewCatalog(m.factory)
	ctx := context.Background()

	t.Run("saves and commits", func(t *testing.T) {
		var saved domain.Author
		m.authors.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, a domain.Author) error {
				saved = a
				return nil
			})
		m.uow.EXPECT().Commit(ctx).Return(nil)

		author, err := c.AddAuthor(ctx, "Jane Austen")

		require.NoError(t, err)
		assert.Equal(t, "Jane Austen", author.Name)
		assert.Equal(t, saved, author)
		assert.NotEqual(t, domain.AuthorID{}, author.ID)
	})

	t.Run("unique violation propagates without commit", func(t *testing.T) {
		constraintErr := errors.New("duplicate key value violates unique constraint")
		m.authors.EXPECT().Save(ctx, gomock.Any()).Return(constraintErr)

		_, err := c.AddAuthor(ctx, "Jane Austen")

		assert.ErrorIs(t, err, constraintErr)
	})
}

func TestCatalog_EditAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCatalogMocks(ctrl)
	c := usecase.NewCatalog(m.factory)
	ctx := context.Background()
	id := domain.NewAuthorID()

	t.Run("renames existing author", func(t *testing.T) {
		m.authors.EXPECT().GetAuthorByID(ctx, id).Return(domain.Author{ID: id, Name: "old"}, nil)
		m.authors.EXPECT().Edit(ctx, id, "new").Return(nil)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		ok, err := c.EditAuthor(ctx, id, "new")

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("absent author reports false and still commits", func(t *testing.T) {
		m.authors.EXPECT().GetAuthorByID(ctx, id).Return(domain.Author{}, domain.ErrNotFound)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		ok, err := c.EditAuthor(ctx, id, "new")

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCatalog_DeleteAuthor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCatalogMocks(ctrl)
	c := usecase.NewCatalog(m.factory)
	ctx := context.Background()

	authorID := domain.NewAuthorID()
	bookA := domain.Book{ID: domain.NewBookID(), AuthorID: authorID, Title: "A", PublicationYear: 1999}
	bookB := domain.Book{ID: domain.NewBookID(), AuthorID: authorID, Title: "B", PublicationYear: 2001}

	t.Run("cascades tags then books then author", func(t *testing.T) {
		m.authors.EXPECT().GetAuthorByID(ctx, authorID).Return(domain.Author{ID: authorID, Name: "x"}, nil)
		m.books.EXPECT().GetBooksByAuthorID(ctx, authorID).Return([]domain.Book{bookA, bookB}, nil)
		gomock.InOrder(
			m.bookTags.EXPECT().DeleteByBookID(ctx, bookA.ID).Return(nil),
			m.bookTags.EXPECT().DeleteByBookID(ctx, bookB.ID).Return(nil),
			m.books.EXPECT().DeleteBooksByAuthorID(ctx, authorID).Return(nil),
			m.authors.EXPECT().Delete(ctx, authorID).Return(nil),
			m.uow.EXPECT().Commit(ctx).Return(nil),
		)

		ok, err := c.DeleteAuthor(ctx, authorID)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("absent author deletes nothing", func(t *testing.T) {
		m.authors.EXPECT().GetAuthorByID(ctx, authorID).Return(domain.Author{}, domain.ErrNotFound)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		ok, err := c.DeleteAuthor(ctx, authorID)

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("failed bulk delete skips commit", func(t *testing.T) {
		storageErr := errors.New("deadlock detected")
		m.authors.EXPECT().GetAuthorByID(ctx, authorID).Return(domain.Author{ID: authorID, Name: "x"}, nil)
		m.books.EXPECT().GetBooksByAuthorID(ctx, authorID).Return([]domain.Book{bookA}, nil)
		m.bookTags.EXPECT().DeleteByBookID(ctx, bookA.ID).Return(nil)
		m.books.EXPECT().DeleteBooksByAuthorID(ctx, authorID).Return(storageErr)

		ok, err := c.DeleteAuthor(ctx, authorID)

		assert.ErrorIs(t, err, storageErr)
		assert.False(t, ok)
	})
}

func TestCatalog_AddBookByAuthorID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCatalogMocks(ctrl)
	c := usecase.NewCatalog(m.factory)
	ctx := context.Background()
	authorID := domain.NewAuthorID()

	t.Run("saves book and one row per tag", func(t *testing.T) {
		var saved domain.Book
		var savedTags []domain.BookTag
		m.books.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, b domain.Book) error {
				saved = b
				return nil
			})
		m.bookTags.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, tag domain.BookTag) error {
				savedTags = append(savedTags, tag)
				return nil
			}).Times(2)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		book, err := c.AddBookByAuthorID(ctx, authorID, "Emma", 1815, []string{"classic", "romance"})

		require.NoError(t, err)
		assert.Equal(t, authorID, book.AuthorID)
		assert.Equal(t, "Emma", book.Title)
		assert.Equal(t, 1815, book.PublicationYear)
		assert.Equal(t, saved.ID, book.ID)
		require.Len(t, savedTags, 2)
		for _, tag := range savedTags {
			assert.Equal(t, book.ID, tag.BookID)
		}
	})

	t.Run("no tags means no tag writes", func(t *testing.T) {
		m.books.EXPECT().Save(ctx, gomock.Any()).Return(nil)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		_, err := c.AddBookByAuthorID(ctx, authorID, "Emma", 1815, nil)

		require.NoError(t, err)
	})
}

func TestCatalog_AddBookByAuthorName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCatalogMocks(ctrl)
	c := usecase.NewCatalog(m.factory)
	ctx := context.Background()

	// This path always creates a brand-new author row, even when one with the
	// same name exists; it never looks the name up first.
	var newAuthor domain.Author
	m.authors.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a domain.Author) error {
			newAuthor = a
			return nil
		})
	var savedBook domain.Book
	m.books.EXPECT().Save(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, b domain.Book) error {
			savedBook = b
			return nil
		})
	m.bookTags.EXPECT().Save(ctx, gomock.Any()).Return(nil)
	m.uow.EXPECT().Commit(ctx).Return(nil)

	book, err := c.AddBookByAuthorName(ctx, "Jane Austen", "Emma", 1815, []string{"classic"})

	require.NoError(t, err)
	assert.Equal(t, "Jane Austen", newAuthor.Name)
	assert.Equal(t, newAuthor.ID, book.AuthorID)
	assert.Equal(t, savedBook.ID, book.ID)
}

func TestCatalog_EditBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCatalogMocks(ctrl)
	c := usecase.NewCatalog(m.factory)
	ctx := context.Background()

	bookID := domain.NewBookID()
	stored := domain.Book{ID: bookID, AuthorID: domain.NewAuthorID(), Title: "Emma", PublicationYear: 1815}

	t.Run("replaces the full tag set", func(t *testing.T) {
		m.books.EXPECT().GetBookByID(ctx, bookID).Return(stored, nil)
		m.books.EXPECT().Edit(ctx, bookID, "Emma", 1816).Return(nil)
		m.bookTags.EXPECT().GetBookTags(ctx, bookID).Return([]domain.BookTag{
			{BookID: bookID, Tag: "x"},
			{BookID: bookID, Tag: "y"},
		}, nil)
		gomock.InOrder(
			m.bookTags.EXPECT().DeleteByBookID(ctx, bookID).Return(nil),
			m.bookTags.EXPECT().Save(ctx, domain.BookTag{BookID: bookID, Tag: "z"}).Return(nil),
			m.uow.EXPECT().Commit(ctx).Return(nil),
		)

		ok, err := c.EditBook(ctx, bookID, "Emma", 1816, []string{"z"})

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("tagless book gets no tag delete", func(t *testing.T) {
		m.books.EXPECT().GetBookByID(ctx, bookID).Return(stored, nil)
		m.books.EXPECT().Edit(ctx, bookID, "Emma", 1815).Return(nil)
		m.bookTags.EXPECT().GetBookTags(ctx, bookID).Return(nil, nil)
		m.bookTags.EXPECT().Save(ctx, domain.BookTag{BookID: bookID, Tag: "z"}).Return(nil)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		ok, err := c.EditBook(ctx, bookID, "Emma", 1815, []string{"z"})

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("empty tag list leaves the book tagless", func(t *testing.T) {
		m.books.EXPECT().GetBookByID(ctx, bookID).Return(stored, nil)
		m.books.EXPECT().Edit(ctx, bookID, "Emma", 1815).Return(nil)
		m.bookTags.EXPECT().GetBookTags(ctx, bookID).Return([]domain.BookTag{{BookID: bookID, Tag: "x"}}, nil)
		m.bookTags.EXPECT().DeleteByBookID(ctx, bookID).Return(nil)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		ok, err := c.EditBook(ctx, bookID, "Emma", 1815, nil)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("absent book reports false", func(t *testing.T) {
		m.books.EXPECT().GetBookByID(ctx, bookID).Return(domain.Book{}, domain.ErrNotFound)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		ok, err := c.EditBook(ctx, bookID, "Emma", 1815, []string{"z"})

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCatalog_DeleteBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCatalogMocks(ctrl)
	c := usecase.NewCatalog(m.factory)
	ctx := context.Background()

	bookID := domain.NewBookID()
	stored := domain.Book{ID: bookID, AuthorID: domain.NewAuthorID(), Title: "Emma", PublicationYear: 1815}

	t.Run("deletes tags before the book", func(t *testing.T) {
		m.books.EXPECT().GetBookByID(ctx, bookID).Return(stored, nil)
		gomock.InOrder(
			m.bookTags.EXPECT().DeleteByBookID(ctx, bookID).Return(nil),
			m.books.EXPECT().Delete(ctx, bookID).Return(nil),
			m.uow.EXPECT().Commit(ctx).Return(nil),
		)

		ok, err := c.DeleteBook(ctx, bookID)

		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("absent book reports false", func(t *testing.T) {
		m.books.EXPECT().GetBookByID(ctx, bookID).Return(domain.Book{}, domain.ErrNotFound)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		ok, err := c.DeleteBook(ctx, bookID)

		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestCatalog_GetBook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCatalogMocks(ctrl)
	c := usecase.NewCatalog(m.factory)
	ctx := context.Background()

	bookID := domain.NewBookID()
	authorName := "Jane Austen"
	stored := domain.Book{
		ID:              bookID,
		AuthorID:        domain.NewAuthorID(),
		Title:           "Emma",
		PublicationYear: 1815,
		AuthorName:      &authorName,
	}

	t.Run("populates tags", func(t *testing.T) {
		m.books.EXPECT().GetBookByID(ctx, bookID).Return(stored, nil)
		m.bookTags.EXPECT().GetBookTags(ctx, bookID).Return([]domain.BookTag{
			{BookID: bookID, Tag: "classic"},
			{BookID: bookID, Tag: "romance"},
		}, nil)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		book, err := c.GetBook(ctx, bookID)

		require.NoError(t, err)
		require.NotNil(t, book)
		assert.Equal(t, []string{"classic", "romance"}, book.Tags)
		require.NotNil(t, book.AuthorName)
		assert.Equal(t, authorName, *book.AuthorName)
	})

	t.Run("absent book returns nil", func(t *testing.T) {
		m.books.EXPECT().GetBookByID(ctx, bookID).Return(domain.Book{}, domain.ErrNotFound)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		book, err := c.GetBook(ctx, bookID)

		require.NoError(t, err)
		assert.Nil(t, book)
	})
}

func TestCatalog_AuthorLookups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCatalogMocks(ctrl)
	c := usecase.NewCatalog(m.factory)
	ctx := context.Background()

	t.Run("GetAuthorByName absent is nil, not an error", func(t *testing.T) {
		m.authors.EXPECT().GetAuthorByName(ctx, "nobody").Return(domain.Author{}, domain.ErrNotFound)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		author, err := c.GetAuthorByName(ctx, "nobody")

		require.NoError(t, err)
		assert.Nil(t, author)
	})

	t.Run("GetAuthorByID found", func(t *testing.T) {
		id := domain.NewAuthorID()
		m.authors.EXPECT().GetAuthorByID(ctx, id).Return(domain.Author{ID: id, Name: "x"}, nil)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		author, err := c.GetAuthorByID(ctx, id)

		require.NoError(t, err)
		require.NotNil(t, author)
		assert.Equal(t, id, author.ID)
	})

	t.Run("GetAllAuthors passes through", func(t *testing.T) {
		authors := []domain.Author{{ID: domain.NewAuthorID(), Name: "a"}, {ID: domain.NewAuthorID(), Name: "b"}}
		m.authors.EXPECT().GetAllAuthors(ctx).Return(authors, nil)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		got, err := c.GetAllAuthors(ctx)

		require.NoError(t, err)
		assert.Equal(t, authors, got)
	})
}

func TestCatalog_BookListings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newCatalogMocks(ctrl)
	c := usecase.NewCatalog(m.factory)
	ctx := context.Background()

	t.Run("GetBooksByTitle passes through without author names", func(t *testing.T) {
		books := []domain.Book{{ID: domain.NewBookID(), Title: "Emma"}}
		m.books.EXPECT().GetBooksByTitle(ctx, "Emma").Return(books, nil)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		got, err := c.GetBooksByTitle(ctx, "Emma")

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Nil(t, got[0].AuthorName)
		assert.Empty(t, got[0].Tags)
	})

	t.Run("GetBooksByAuthorID passes through", func(t *testing.T) {
		id := domain.NewAuthorID()
		books := []domain.Book{{ID: domain.NewBookID(), AuthorID: id, Title: "A", PublicationYear: 1999}}
		m.books.EXPECT().GetBooksByAuthorID(ctx, id).Return(books, nil)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		got, err := c.GetBooksByAuthorID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, books, got)
	})

	t.Run("GetAllBooks passes through", func(t *testing.T) {
		name := "Jane Austen"
		books := []domain.Book{{ID: domain.NewBookID(), Title: "Emma", AuthorName: &name}}
		m.books.EXPECT().GetAllBooks(ctx).Return(books, nil)
		m.uow.EXPECT().Commit(ctx).Return(nil)

		got, err := c.GetAllBooks(ctx)

		require.NoError(t, err)
		assert.Equal(t, books, got)
	})
}

func TestCatalog_BeginFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	factory := mocks.NewMockUnitOfWorkFactory(ctrl)
	c := usecase.NewCatalog(factory)
	ctx := context.Background()

	connErr := errors.New("connection refused")
	factory.EXPECT().Begin(ctx).Return(nil, connErr)

	_, err := c.AddAuthor(ctx, "Jane Austen")

	assert.ErrorIs(t, err, connErr)
}
