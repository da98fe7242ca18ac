// Package cli implements the interactive console over the catalog use cases.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bookcatalog/internal/domain"
)

// UseCases is the slice of the catalog API the console needs.
type UseCases interface {
	AddAuthor(ctx context.Context, name string) (domain.Author, error)
	EditAuthor(ctx context.Context, id domain.AuthorID, newName string) (bool, error)
	DeleteAuthor(ctx context.Context, id domain.AuthorID) (bool, error)
	GetAuthorByName(ctx context.Context, name string) (*domain.Author, error)
	GetAuthorByID(ctx context.Context, id domain.AuthorID) (*domain.Author, error)
	GetAllAuthors(ctx context.Context) ([]domain.Author, error)

	AddBookByAuthorID(ctx context.Context, authorID domain.AuthorID, title string, publicationYear int, tags []string) (domain.Book, error)
	AddBookByAuthorName(ctx context.Context, authorName, title string, publicationYear int, tags []string) (domain.Book, error)
	EditBook(ctx context.Context, id domain.BookID, title string, publicationYear int, tags []string) (bool, error)
	DeleteBook(ctx context.Context, id domain.BookID) (bool, error)
	GetBook(ctx context.Context, id domain.BookID) (*domain.Book, error)
	GetBooksByTitle(ctx context.Context, title string) ([]domain.Book, error)
	GetAllBooks(ctx context.Context) ([]domain.Book, error)
	GetBooksByAuthorID(ctx context.Context, authorID domain.AuthorID) ([]domain.Book, error)
}

// Console reads commands line by line and drives the use-case layer. Command
// failures are printed and never stop the loop; only a broken input stream
// ends Run.
type Console struct {
	useCases UseCases
	in       *bufio.Scanner
	out      io.Writer
}

func NewConsole(useCases UseCases, in io.Reader, out io.Writer) *Console {
	return &Console{
		useCases: useCases,
		in:       bufio.NewScanner(in),
		out:      out,
	}
}

// Run processes commands until EOF or an Exit command.
func (c *Console) Run(ctx context.Context) error {
	for {
		line, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}
		command, args := splitCommand(line)
		switch command {
		case "":
			continue
		case "Exit", "Quit":
			return nil
		case "Help":
			c.printHelp()
		case "AddAuthor":
			c.addAuthor(ctx, args)
		case "AddBook":
			c.addBook(ctx, args)
		case "ShowAuthors":
			c.showAuthors(ctx)
		case "ShowBooks":
			c.showBooks(ctx)
		case "ShowAuthorBooks":
			c.showAuthorBooks(ctx)
		case "ShowBook":
			c.showBook(ctx, args)
		case "DeleteAuthor":
			c.deleteAuthor(ctx, args)
		case "EditAuthor":
			c.editAuthor(ctx, args)
		case "DeleteBook":
			c.deleteBook(ctx, args)
		case "EditBook":
			c.editBook(ctx, args)
		default:
			fmt.Fprintf(c.out, "Unknown command: %s\n", command)
		}
	}
}

func splitCommand(line string) (command, args string) {
	line = strings.TrimSpace(line)
	command, args, _ = strings.Cut(line, " ")
	return command, strings.TrimSpace(args)
}

func (c *Console) printHelp() {
	fmt.Fprintln(c.out, "AddAuthor <name>           Adds author")
	fmt.Fprintln(c.out, "AddBook <pub year> <title> Adds book")
	fmt.Fprintln(c.out, "ShowAuthors                Show authors")
	fmt.Fprintln(c.out, "ShowBooks                  Show books")
	fmt.Fprintln(c.out, "ShowAuthorBooks            Show author books")
	fmt.Fprintln(c.out, "ShowBook [title]           Show book")
	fmt.Fprintln(c.out, "DeleteAuthor [name]        Delete author")
	fmt.Fprintln(c.out, "EditAuthor [name]          Edit author")
	fmt.Fprintln(c.out, "DeleteBook [title]         Delete book")
	fmt.Fprintln(c.out, "EditBook [title]           Edit book")
	fmt.Fprintln(c.out, "Exit                       Quit")
}

func (c *Console) addAuthor(ctx context.Context, name string) {
	name = strings.TrimSpace(name)
	if err := validateAuthorName(name); err != nil {
		fmt.Fprintln(c.out, "Failed to add author")
		return
	}
	// AddAuthor itself never deduplicates; known names are refused here.
	existing, err := c.useCases.GetAuthorByName(ctx, name)
	if err != nil || existing != nil {
		fmt.Fprintln(c.out, "Failed to add author")
		return
	}
	if _, err := c.useCases.AddAuthor(ctx, name); err != nil {
		fmt.Fprintln(c.out, "Failed to add author")
	}
}

func (c *Console) addBook(ctx context.Context, args string) {
	yearStr, title, _ := strings.Cut(args, " ")
	year, err := strconv.Atoi(yearStr)
	title = strings.TrimSpace(title)
	if err != nil || validateBookTitle(title) != nil {
		fmt.Fprintln(c.out, "Failed to add book")
		return
	}

	authorID, newAuthorName, ok := c.resolveBookAuthor(ctx)
	if !ok {
		fmt.Fprintln(c.out, "Failed to add book")
		return
	}

	tags := c.enterTags("Enter tags (comma separated):")

	if newAuthorName != "" {
		_, err = c.useCases.AddBookByAuthorName(ctx, newAuthorName, title, year, tags)
	} else {
		_, err = c.useCases.AddBookByAuthorID(ctx, authorID, title, year, tags)
	}
	if err != nil {
		fmt.Fprintln(c.out, "Failed to add book")
	}
}

// resolveBookAuthor asks for an author name; an existing name resolves to its
// id, an unknown one may become a brand-new author, and an empty line falls
// back to picking from the list.
func (c *Console) resolveBookAuthor(ctx context.Context) (id domain.AuthorID, newName string, ok bool) {
	fmt.Fprintln(c.out, "Enter author name or empty line to select from list:")
	name, _ := c.readLine()
	name = strings.TrimSpace(name)

	if name == "" {
		author, ok := c.selectAuthor(ctx)
		if !ok {
			return domain.AuthorID{}, "", false
		}
		return author.ID, "", true
	}

	author, err := c.useCases.GetAuthorByName(ctx, name)
	if err != nil {
		return domain.AuthorID{}, "", false
	}
	if author != nil {
		return author.ID, "", true
	}

	fmt.Fprintf(c.out, "No author found. Do you want to add %s (y/n)?\n", name)
	answer, _ := c.readLine()
	if answer != "y" && answer != "Y" {
		return domain.AuthorID{}, "", false
	}
	return domain.AuthorID{}, name, true
}

func (c *Console) showAuthors(ctx context.Context) {
	authors, err := c.useCases.GetAllAuthors(ctx)
	if err != nil {
		return
	}
	for i, author := range authors {
		fmt.Fprintf(c.out, "%d %s\n", i+1, author.Name)
	}
}

func (c *Console) showBooks(ctx context.Context) {
	books, err := c.useCases.GetAllBooks(ctx)
	if err != nil {
		return
	}
	for i, book := range books {
		fmt.Fprintf(c.out, "%d %s\n", i+1, bookWithAuthorLine(book))
	}
}

func (c *Console) showAuthorBooks(ctx context.Context) {
	author, ok := c.selectAuthor(ctx)
	if !ok {
		return
	}
	books, err := c.useCases.GetBooksByAuthorID(ctx, author.ID)
	if err != nil {
		fmt.Fprintln(c.out, "Failed to show books")
		return
	}
	for i, book := range books {
		fmt.Fprintf(c.out, "%d %s, %d\n", i+1, book.Title, book.PublicationYear)
	}
}

func (c *Console) showBook(ctx context.Context, title string) {
	book, ok := c.pickBook(ctx, strings.TrimSpace(title))
	if !ok {
		fmt.Fprintln(c.out, "Book not found")
		return
	}
	if book == nil {
		return // selection cancelled
	}
	c.printBook(*book)
}

func (c *Console) deleteAuthor(ctx context.Context, name string) {
	author, ok := c.resolveAuthor(ctx, strings.TrimSpace(name))
	if !ok {
		fmt.Fprintln(c.out, "Failed to delete author")
		return
	}
	if author == nil {
		return
	}
	deleted, err := c.useCases.DeleteAuthor(ctx, author.ID)
	if err != nil || !deleted {
		fmt.Fprintln(c.out, "Failed to delete author")
	}
}

func (c *Console) editAuthor(ctx context.Context, name string) {
	author, ok := c.resolveAuthor(ctx, strings.TrimSpace(name))
	if !ok {
		fmt.Fprintln(c.out, "Failed to edit author")
		return
	}
	if author == nil {
		return
	}
	fmt.Fprintln(c.out, "Enter new name:")
	newName, _ := c.readLine()
	newName = strings.TrimSpace(newName)
	if validateAuthorName(newName) != nil {
		fmt.Fprintln(c.out, "Failed to edit author")
		return
	}
	edited, err := c.useCases.EditAuthor(ctx, author.ID, newName)
	if err != nil || !edited {
		fmt.Fprintln(c.out, "Failed to edit author")
	}
}

func (c *Console) deleteBook(ctx context.Context, title string) {
	book, ok := c.pickBook(ctx, strings.TrimSpace(title))
	if !ok {
		fmt.Fprintln(c.out, "Book not found")
		return
	}
	if book == nil {
		return
	}
	deleted, err := c.useCases.DeleteBook(ctx, book.ID)
	if err != nil || !deleted {
		fmt.Fprintln(c.out, "Book not found")
	}
}

func (c *Console) editBook(ctx context.Context, title string) {
	book, ok := c.pickBook(ctx, strings.TrimSpace(title))
	if !ok {
		fmt.Fprintln(c.out, "Book not found")
		return
	}
	if book == nil {
		return
	}

	fmt.Fprintf(c.out, "Enter new title or empty line to use the current one (%s):\n", book.Title)
	newTitle, _ := c.readLine()
	newTitle = strings.TrimSpace(newTitle)
	if newTitle == "" {
		newTitle = book.Title
	}

	fmt.Fprintf(c.out, "Enter publication year or empty line to use the current one (%d):\n", book.PublicationYear)
	yearLine, _ := c.readLine()
	year := book.PublicationYear
	if strings.TrimSpace(yearLine) != "" {
		parsed, err := strconv.Atoi(strings.TrimSpace(yearLine))
		if err != nil {
			fmt.Fprintln(c.out, "Book not found")
			return
		}
		year = parsed
	}

	tags := c.enterTags(fmt.Sprintf("Enter tags (current tags: %s):", strings.Join(book.Tags, ", ")))

	edited, err := c.useCases.EditBook(ctx, book.ID, newTitle, year, tags)
	if err != nil || !edited {
		fmt.Fprintln(c.out, "Book not found")
	}
}

// resolveAuthor maps a possibly-empty name to an author: empty falls back to
// list selection (nil, true when cancelled), unknown names report failure.
func (c *Console) resolveAuthor(ctx context.Context, name string) (*domain.Author, bool) {
	if name == "" {
		author, ok := c.selectAuthor(ctx)
		if !ok {
			return nil, true
		}
		return &author, true
	}
	author, err := c.useCases.GetAuthorByName(ctx, name)
	if err != nil || author == nil {
		return nil, false
	}
	return author, true
}

// pickBook maps a possibly-empty title to a single fully-loaded book. With no
// title, or with several matches, the user picks from a numbered list.
// Returns (nil, true) on cancel and (nil, false) when nothing matches.
func (c *Console) pickBook(ctx context.Context, title string) (*domain.Book, bool) {
	var candidates []domain.Book
	var err error
	if title == "" {
		candidates, err = c.useCases.GetAllBooks(ctx)
	} else {
		candidates, err = c.useCases.GetBooksByTitle(ctx, title)
	}
	if err != nil || len(candidates) == 0 {
		return nil, false
	}

	chosen := candidates[0]
	if len(candidates) > 1 {
		picked, ok := c.selectBook(ctx, candidates)
		if !ok {
			return nil, true
		}
		chosen = picked
	}

	book, err := c.useCases.GetBook(ctx, chosen.ID)
	if err != nil || book == nil {
		return nil, false
	}
	return book, true
}

func (c *Console) selectAuthor(ctx context.Context) (domain.Author, bool) {
	fmt.Fprintln(c.out, "Select author:")
	authors, err := c.useCases.GetAllAuthors(ctx)
	if err != nil {
		return domain.Author{}, false
	}
	for i, author := range authors {
		fmt.Fprintf(c.out, "%d %s\n", i+1, author.Name)
	}
	fmt.Fprintln(c.out, "Enter author # or empty line to cancel")

	idx, ok := c.readIndex(len(authors))
	if !ok {
		return domain.Author{}, false
	}
	return authors[idx], true
}

func (c *Console) selectBook(ctx context.Context, books []domain.Book) (domain.Book, bool) {
	for i, book := range books {
		fmt.Fprintf(c.out, "%d %s\n", i+1, c.bookLine(ctx, book))
	}
	fmt.Fprintln(c.out, "Enter book # or empty line to cancel")

	idx, ok := c.readIndex(len(books))
	if !ok {
		return domain.Book{}, false
	}
	return books[idx], true
}

func (c *Console) readIndex(count int) (int, bool) {
	line, ok := c.readLine()
	line = strings.TrimSpace(line)
	if !ok || line == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(line)
	if err != nil || idx < 1 || idx > count {
		return 0, false
	}
	return idx - 1, true
}

func (c *Console) enterTags(prompt string) []string {
	fmt.Fprintln(c.out, prompt)
	line, _ := c.readLine()
	return domain.NormalizeTags(line)
}

// bookLine renders "title by author, year", looking the author up when the
// read path that produced the book did not join the name in.
func (c *Console) bookLine(ctx context.Context, book domain.Book) string {
	if book.AuthorName != nil {
		return bookWithAuthorLine(book)
	}
	author, err := c.useCases.GetAuthorByID(ctx, book.AuthorID)
	if err != nil || author == nil {
		return fmt.Sprintf("%s, %d", book.Title, book.PublicationYear)
	}
	return fmt.Sprintf("%s by %s, %d", book.Title, author.Name, book.PublicationYear)
}

func bookWithAuthorLine(book domain.Book) string {
	name := ""
	if book.AuthorName != nil {
		name = *book.AuthorName
	}
	return fmt.Sprintf("%s by %s, %d", book.Title, name, book.PublicationYear)
}

func (c *Console) printBook(book domain.Book) {
	fmt.Fprintf(c.out, "Title: %s\n", book.Title)
	if book.AuthorName != nil {
		fmt.Fprintf(c.out, "Author: %s\n", *book.AuthorName)
	}
	fmt.Fprintf(c.out, "Publication year: %d\n", book.PublicationYear)
	if len(book.Tags) > 0 {
		fmt.Fprintf(c.out, "Tags: %s\n", strings.Join(book.Tags, ", "))
	}
}

func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}
