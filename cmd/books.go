// file: cmd/books.go
// version: 1.0.0
// guid: d0b64a2f-9e37-4c81-a5f3-6e2c8b1d7f94

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jdfalk/library-catalog/internal/models"
	"github.com/jdfalk/library-catalog/internal/shell"
	"github.com/jdfalk/library-catalog/internal/storage"
	"github.com/spf13/cobra"
)

// suggestionLimit caps "did you mean" output after an empty search.
const suggestionLimit = 3

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a book to the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		title, _ := cmd.Flags().GetString("title")
		author, _ := cmd.Flags().GetString("author")
		yearInput, _ := cmd.Flags().GetString("year")

		lib, err := openLibrary()
		if err != nil {
			return err
		}
		year, err := lib.ParseYear(yearInput)
		if err != nil {
			return err
		}

		id := lib.GenerateID()
		if err := lib.Add(models.NewBook(id, title, author, year)); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Book %q added with ID %d\n", title, id)
		return nil
	},
}

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a book from the catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil {
			return fmt.Errorf("invalid book id %q", args[0])
		}

		lib, err := openLibrary()
		if err != nil {
			return err
		}
		deleted, err := lib.Delete(id)
		if err != nil {
			return err
		}
		if !deleted {
			fmt.Fprintf(cmd.OutOrStdout(), "Book with ID %d not found\n", id)
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Book with ID %d deleted\n", id)
		return nil
	},
}

// findCmd represents the find command
var findCmd = &cobra.Command{
	Use:   "find",
	Short: "Search the catalog by title, author or year",
	Long: `Search the catalog. Title and author match any part of the text,
ignoring case; year must match exactly. Exactly one of the flags is required.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}

		var (
			found       []models.Book
			suggestions []string
		)
		switch {
		case cmd.Flags().Changed("title"):
			title, _ := cmd.Flags().GetString("title")
			found = lib.FindByTitle(title)
			if len(found) == 0 {
				suggestions = lib.SuggestTitles(title, suggestionLimit)
			}
		case cmd.Flags().Changed("author"):
			author, _ := cmd.Flags().GetString("author")
			found = lib.FindByAuthor(author)
			if len(found) == 0 {
				suggestions = lib.SuggestAuthors(author, suggestionLimit)
			}
		default:
			yearInput, _ := cmd.Flags().GetString("year")
			year, err := lib.ParseYear(yearInput)
			if err != nil {
				return err
			}
			found = lib.FindByYear(year)
		}

		out := cmd.OutOrStdout()
		if len(found) == 0 {
			fmt.Fprintln(out, "No books found")
			shell.WriteSuggestions(out, suggestions)
			return nil
		}
		return shell.WriteTable(out, found)
	},
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show every book in the catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}

		books := lib.ListAll()
		out := cmd.OutOrStdout()
		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			data, err := storage.Encode(books)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(data))
			return nil
		}
		if len(books) == 0 {
			fmt.Fprintln(out, "The library is empty")
			return nil
		}
		if err := shell.WriteTable(out, books); err != nil {
			return err
		}
		fmt.Fprintln(out)
		shell.WriteSummary(out, books)
		return nil
	},
}

// statusCmd represents the status command
var statusCmd = &cobra.Command{
	Use:   "status <id> [in stock|issued]",
	Short: "Change whether a book is in stock or issued",
	Long: `Set the status of a book. Without a status the current one is toggled.
The status may be given as one argument ("in stock") or as separate words.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := openLibrary()
		if err != nil {
			return err
		}
		id, err := lib.ParseID(args[0])
		if err != nil {
			return err
		}

		book, _ := lib.FindByID(id)
		next := book.Status.Toggle()
		if len(args) > 1 {
			next = models.Status(strings.Join(args[1:], " "))
		}

		if err := lib.ChangeStatus(id, next); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Book %d is now %s\n", id, next)
		return nil
	},
}

func init() {
	addCmd.Flags().String("title", "", "book title")
	addCmd.Flags().String("author", "", "book author")
	addCmd.Flags().String("year", "", "year the book was written")
	addCmd.MarkFlagRequired("title")
	addCmd.MarkFlagRequired("author")
	addCmd.MarkFlagRequired("year")

	findCmd.Flags().String("title", "", "part of the title")
	findCmd.Flags().String("author", "", "part of the author's name")
	findCmd.Flags().String("year", "", "exact year")
	findCmd.MarkFlagsMutuallyExclusive("title", "author", "year")
	findCmd.MarkFlagsOneRequired("title", "author", "year")

	listCmd.Flags().Bool("json", false, "print the catalog in its storage format")
}
