// file: internal/shell/render.go
// version: 1.0.0
// guid: e3a9c7b2-5f14-4d80-96e2-0b8d1c7f4a35

package shell

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/jdfalk/library-catalog/internal/models"
)

// WriteRecords prints each book as a block of labelled lines.
func WriteRecords(w io.Writer, books []models.Book, withStatus bool) {
	for _, b := range books {
		fmt.Fprintf(w, "ID:     %d\n", b.ID)
		fmt.Fprintf(w, "Title:  %s\n", b.Title)
		fmt.Fprintf(w, "Author: %s\n", b.Author)
		fmt.Fprintf(w, "Year:   %d\n", b.Year)
		if withStatus {
			fmt.Fprintf(w, "Status: %s\n", b.Status)
		}
		fmt.Fprintln(w)
	}
}

// WriteTable prints books as aligned columns with a header row.
func WriteTable(w io.Writer, books []models.Book) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tAUTHOR\tYEAR\tSTATUS")
	for _, b := range books {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", b.ID, b.Title, b.Author, b.Year, b.Status)
	}
	return tw.Flush()
}

// WriteSummary prints how many books there are and how many are issued.
func WriteSummary(w io.Writer, books []models.Book) {
	issued := 0
	for _, b := range books {
		if b.IsIssued() {
			issued++
		}
	}
	fmt.Fprintf(w, "Total: %d, issued: %d\n", len(books), issued)
}

// WriteSuggestions prints a "did you mean" line when there is anything to offer.
func WriteSuggestions(w io.Writer, suggestions []string) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintln(w, "Did you mean:")
	for _, s := range suggestions {
		fmt.Fprintf(w, "  %s\n", s)
	}
}
