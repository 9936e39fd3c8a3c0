// file: cmd/doctor.go
// version: 1.0.0
// guid: c8f6a0d4-2a8b-48cf-9d08-02cc9915d9fc

package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/jdfalk/library-catalog/internal/config"
	"github.com/jdfalk/library-catalog/internal/fileops"
	"github.com/jdfalk/library-catalog/internal/models"
	"github.com/jdfalk/library-catalog/internal/storage"
	"github.com/spf13/cobra"
)

// errDoctorProblems is returned when the catalog has problems, so scripts
// can check the exit code.
var errDoctorProblems = errors.New("catalog has problems")

// doctorCmd represents the doctor command
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the catalog file for problems",
	Long: `Inspect the storage file without modifying it: whether it exists and
parses, its checksum, and records the interactive menu would never have
written (duplicate ids, unknown statuses, years in the future).`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDoctor(cmd.OutOrStdout(), config.AppConfig.StoragePath, time.Now().Year())
	},
}

func runDoctor(out io.Writer, path string, currentYear int) error {
	fmt.Fprintf(out, "Storage file: %s\n", path)

	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(out, "Status: missing (an empty catalog will be created on first write)")
		return nil
	}
	if err != nil {
		return err
	}
	if info.IsDir() {
		fmt.Fprintln(out, "Status: path is a directory")
		return errDoctorProblems
	}
	fmt.Fprintf(out, "Size: %d bytes\n", info.Size())

	sum, err := fileops.ComputeFileHash(path)
	if err != nil {
		return fmt.Errorf("failed to checksum %s: %w", path, err)
	}
	fmt.Fprintf(out, "SHA-256: %s\n", sum)

	books, err := storage.Load(path)
	if err != nil {
		fmt.Fprintf(out, "Status: unreadable (%v)\n", err)
		return errDoctorProblems
	}
	fmt.Fprintf(out, "Books: %d\n", len(books))

	problems := checkBooks(books, currentYear)
	if len(problems) == 0 {
		fmt.Fprintln(out, "No problems found.")
		return nil
	}

	fmt.Fprintf(out, "Found %d problems:\n", len(problems))
	for i, p := range problems {
		fmt.Fprintf(out, "%2d. %s\n", i+1, p)
	}
	return errDoctorProblems
}

// checkBooks returns a description of every record that breaks a catalog
// invariant, in file order.
func checkBooks(books []models.Book, currentYear int) []string {
	var problems []string
	seen := make(map[int]bool, len(books))
	for i, b := range books {
		if b.ID <= 0 {
			problems = append(problems, fmt.Sprintf("record %d: id %d is not positive", i+1, b.ID))
		}
		if seen[b.ID] {
			problems = append(problems, fmt.Sprintf("record %d: duplicate id %d", i+1, b.ID))
		}
		seen[b.ID] = true
		if !b.Status.Valid() {
			problems = append(problems, fmt.Sprintf("record %d: unknown status %q", i+1, string(b.Status)))
		}
		if b.Year > currentYear {
			problems = append(problems, fmt.Sprintf("record %d: year %d is in the future", i+1, b.Year))
		}
	}
	return problems
}
