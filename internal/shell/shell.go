// file: internal/shell/shell.go
// version: 1.0.0
// guid: 47f1b0d8-2c9e-4a63-8b5f-d9e6a3c10b72

// Package shell implements the interactive numbered menu for managing the
// catalog from a terminal.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jdfalk/library-catalog/internal/catalog"
	"github.com/jdfalk/library-catalog/internal/models"
)

// Menu entries.
const (
	actionAdd = iota + 1
	actionDelete
	actionFind
	actionList
	actionToggle
	actionQuit
)

// Find sub-menu entries.
const (
	searchTitle = iota + 1
	searchAuthor
	searchYear
)

// suggestionLimit caps "did you mean" output after an empty search.
const suggestionLimit = 3

// Shell reads menu choices from in and writes prompts and results to out.
type Shell struct {
	storagePath string
	in          *bufio.Scanner
	out         io.Writer
	opts        []catalog.Option
}

// New creates a shell over the catalog at storagePath. opts are passed to
// catalog.New every time the catalog is loaded.
func New(storagePath string, in io.Reader, out io.Writer, opts ...catalog.Option) *Shell {
	return &Shell{
		storagePath: storagePath,
		in:          bufio.NewScanner(in),
		out:         out,
		opts:        opts,
	}
}

// Run loops until the user quits, input ends, or ctx is cancelled. The
// catalog is reloaded from disk before every menu so changes made by other
// processes are picked up.
func (s *Shell) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		lib, err := catalog.New(s.storagePath, s.opts...)
		if err != nil {
			return err
		}

		s.printMenu()
		action, err := s.readChoice("Enter the number of the action: ", actionQuit)
		if err != nil {
			return endOfInput(err)
		}

		switch action {
		case actionAdd:
			err = s.add(lib)
		case actionDelete:
			err = s.delete(lib)
		case actionFind:
			err = s.find(lib)
		case actionList:
			s.list(lib)
		case actionToggle:
			err = s.toggle(lib)
		case actionQuit:
			fmt.Fprintln(s.out, "Goodbye.")
			return nil
		}
		if err != nil {
			return endOfInput(err)
		}
	}
}

// endOfInput treats running out of input as a normal exit.
func endOfInput(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func (s *Shell) printMenu() {
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Choose an action:")
	fmt.Fprintln(s.out, "1. Add a book")
	fmt.Fprintln(s.out, "2. Delete a book")
	fmt.Fprintln(s.out, "3. Find a book")
	fmt.Fprintln(s.out, "4. List all books")
	fmt.Fprintln(s.out, "5. Change book status")
	fmt.Fprintln(s.out, "6. Quit")
	fmt.Fprintln(s.out)
}

// readLine prompts and returns one line of input without the newline.
func (s *Shell) readLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.in.Text(), nil
}

// readChoice prompts until the answer is an integer between 1 and n.
func (s *Shell) readChoice(prompt string, n int) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && choice >= 1 && choice <= n {
			return choice, nil
		}
		fmt.Fprintf(s.out, "Invalid input. Enter a number from 1 to %d.\n", n)
	}
}

// readYear prompts until lib accepts the year. The shell reports rejected
// input itself, so the quiet Parse helpers are used instead of Validate.
func (s *Shell) readYear(lib *catalog.Library) (int, error) {
	for {
		line, err := s.readLine("Enter the year the book was written: ")
		if err != nil {
			return 0, err
		}
		if year, err := lib.ParseYear(line); err == nil {
			return year, nil
		}
		fmt.Fprintf(s.out, "Invalid year. It must not be later than %d.\n", lib.CurrentYear())
	}
}

// readID prompts until the answer names a book in lib.
func (s *Shell) readID(lib *catalog.Library, prompt string) (int, error) {
	for {
		line, err := s.readLine(prompt)
		if err != nil {
			return 0, err
		}
		if id, err := lib.ParseID(line); err == nil {
			return id, nil
		}
		fmt.Fprintln(s.out, "Invalid ID. There is no book with that ID in the library.")
	}
}

func (s *Shell) add(lib *catalog.Library) error {
	id := lib.GenerateID()
	title, err := s.readLine("Enter the title: ")
	if err != nil {
		return err
	}
	author, err := s.readLine("Enter the author: ")
	if err != nil {
		return err
	}
	year, err := s.readYear(lib)
	if err != nil {
		return err
	}

	if err := lib.Add(models.NewBook(id, title, author, year)); err != nil {
		fmt.Fprintf(s.out, "Could not add the book: %v\n", err)
		return nil
	}
	fmt.Fprintf(s.out, "Book %q added with ID %d.\n", title, id)
	return nil
}

func (s *Shell) delete(lib *catalog.Library) error {
	if lib.Len() == 0 {
		fmt.Fprintln(s.out, "The library is empty.")
		return nil
	}
	id, err := s.readID(lib, "Enter the ID of the book to delete: ")
	if err != nil {
		return err
	}

	deleted, err := lib.Delete(id)
	switch {
	case err != nil:
		fmt.Fprintf(s.out, "Could not delete the book: %v\n", err)
	case deleted:
		fmt.Fprintf(s.out, "Book with ID %d deleted.\n", id)
	default:
		fmt.Fprintf(s.out, "Book with ID %d not found.\n", id)
	}
	return nil
}

func (s *Shell) find(lib *catalog.Library) error {
	fmt.Fprintln(s.out, "What do you know about the book?")
	fmt.Fprintln(s.out, "1. Title")
	fmt.Fprintln(s.out, "2. Author")
	fmt.Fprintln(s.out, "3. Year")

	param, err := s.readChoice("Enter the number of the field: ", searchYear)
	if err != nil {
		return err
	}

	var (
		found       []models.Book
		suggestions []string
	)
	switch param {
	case searchTitle:
		title, err := s.readLine("Enter the title: ")
		if err != nil {
			return err
		}
		found = lib.FindByTitle(title)
		if len(found) == 0 {
			suggestions = lib.SuggestTitles(title, suggestionLimit)
		}
	case searchAuthor:
		author, err := s.readLine("Enter the author: ")
		if err != nil {
			return err
		}
		found = lib.FindByAuthor(author)
		if len(found) == 0 {
			suggestions = lib.SuggestAuthors(author, suggestionLimit)
		}
	case searchYear:
		year, err := s.readYear(lib)
		if err != nil {
			return err
		}
		found = lib.FindByYear(year)
	}

	if len(found) == 0 {
		fmt.Fprintln(s.out, "No books found.")
		WriteSuggestions(s.out, suggestions)
		return nil
	}
	fmt.Fprintln(s.out, "Books found:")
	fmt.Fprintln(s.out)
	WriteRecords(s.out, found, false)
	return nil
}

func (s *Shell) list(lib *catalog.Library) {
	books := lib.ListAll()
	if len(books) == 0 {
		fmt.Fprintln(s.out, "The library is empty.")
		return
	}
	fmt.Fprintln(s.out, "All books:")
	fmt.Fprintln(s.out)
	WriteRecords(s.out, books, true)
	WriteSummary(s.out, books)
}

func (s *Shell) toggle(lib *catalog.Library) error {
	if lib.Len() == 0 {
		fmt.Fprintln(s.out, "The library is empty.")
		return nil
	}
	id, err := s.readID(lib, "Enter the ID of the book whose status you want to change: ")
	if err != nil {
		return err
	}

	book, _ := lib.FindByID(id)
	next := book.Status.Toggle()
	fmt.Fprintf(s.out, "The current status is %q. Type 'yes' to change it to %q; any other answer keeps it.\n",
		book.Status, next)
	answer, err := s.readLine("Your answer: ")
	if err != nil {
		return err
	}
	if strings.TrimSpace(answer) != "yes" {
		fmt.Fprintln(s.out, "Status not changed.")
		return nil
	}

	if err := lib.ChangeStatus(id, next); err != nil {
		fmt.Fprintf(s.out, "Could not change the status: %v\n", err)
		return nil
	}
	fmt.Fprintln(s.out, "Status changed.")
	return nil
}
