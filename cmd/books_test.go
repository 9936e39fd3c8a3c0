// file: cmd/books_test.go
// version: 1.0.0
// guid: 4f7a2c9e-1b63-4d08-8e5a-c3b9d6f0a217

package cmd

import (
	"testing"

	"github.com/jdfalk/library-catalog/internal/catalog"
	"github.com/jdfalk/library-catalog/internal/models"
	"github.com/jdfalk/library-catalog/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddCommand(t *testing.T) {
	path := testutil.SeedCatalog(t, models.NewBook(1, "Dune", "Frank Herbert", 1965))

	stdout, stderr, err := executeCommand(t, "", "--storage", path,
		"add", "--title", "Emma", "--author", "Jane Austen", "--year", " 1815 ")
	require.NoError(t, err)
	assert.Contains(t, stdout, `Book "Emma" added with ID 2`)
	assert.Contains(t, stderr, "Book added")

	books := testutil.LoadCatalog(t, path)
	require.Len(t, books, 2)
	assert.Equal(t, models.NewBook(2, "Emma", "Jane Austen", 1815), books[1])
}

func TestAddCommandRejectsBadYear(t *testing.T) {
	tests := []struct {
		name string
		year string
	}{
		{"future", "3000"},
		{"not a number", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.SeedCatalog(t)
			_, _, err := executeCommand(t, "", "--storage", path,
				"add", "--title", "T", "--author", "A", "--year", tt.year)
			require.ErrorIs(t, err, catalog.ErrInvalidYear)
			assert.Empty(t, testutil.LoadCatalog(t, path))
		})
	}
}

func TestAddCommandRequiresFlags(t *testing.T) {
	path := testutil.SeedCatalog(t)
	_, _, err := executeCommand(t, "", "--storage", path, "add", "--title", "T")
	require.Error(t, err)
	assert.Empty(t, testutil.LoadCatalog(t, path))
}

func TestDeleteCommand(t *testing.T) {
	path := testutil.SeedCatalog(t,
		models.NewBook(1, "Dune", "Frank Herbert", 1965),
		models.NewBook(2, "Emma", "Jane Austen", 1815),
	)

	stdout, _, err := executeCommand(t, "", "--storage", path, "delete", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Book with ID 1 deleted")
	assert.Equal(t, []models.Book{models.NewBook(2, "Emma", "Jane Austen", 1815)}, testutil.LoadCatalog(t, path))

	stdout, _, err = executeCommand(t, "", "--storage", path, "delete", "7")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Book with ID 7 not found")

	_, _, err = executeCommand(t, "", "--storage", path, "delete", "seven")
	require.Error(t, err)
}

func TestFindCommand(t *testing.T) {
	path := testutil.SeedCatalog(t,
		models.NewBook(1, "The Hobbit", "J.R.R. Tolkien", 1937),
		models.NewBook(2, "Emma", "Jane Austen", 1815),
	)

	tests := []struct {
		name     string
		args     []string
		contains []string
		excludes []string
	}{
		{
			name:     "title ignores case",
			args:     []string{"--title", "HOBBIT"},
			contains: []string{"The Hobbit"},
			excludes: []string{"Emma"},
		},
		{
			name:     "author substring",
			args:     []string{"--author", "austen"},
			contains: []string{"Emma", "Jane Austen"},
			excludes: []string{"Hobbit"},
		},
		{
			name:     "year",
			args:     []string{"--year", "1937"},
			contains: []string{"The Hobbit"},
			excludes: []string{"Emma"},
		},
		{
			name:     "miss suggests",
			args:     []string{"--title", "Emna"},
			contains: []string{"No books found", "Did you mean:", "Emma"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"--storage", path, "find"}, tt.args...)
			stdout, _, err := executeCommand(t, "", args...)
			require.NoError(t, err)
			for _, s := range tt.contains {
				assert.Contains(t, stdout, s)
			}
			for _, s := range tt.excludes {
				assert.NotContains(t, stdout, s)
			}
		})
	}
}

func TestFindCommandFlagRules(t *testing.T) {
	path := testutil.SeedCatalog(t)

	_, _, err := executeCommand(t, "", "--storage", path, "find")
	require.Error(t, err)

	_, _, err = executeCommand(t, "", "--storage", path, "find", "--title", "a", "--author", "b")
	require.Error(t, err)
}

func TestListCommand(t *testing.T) {
	path := testutil.SeedCatalog(t)

	stdout, _, err := executeCommand(t, "", "--storage", path, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "The library is empty")

	stdout, _, err = executeCommand(t, "", "--storage", path, "list", "--json")
	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)

	path = testutil.SeedCatalog(t, models.NewBook(1, "Dune", "Frank Herbert", 1965))
	stdout, _, err = executeCommand(t, "", "--storage", path, "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "TITLE")
	assert.Contains(t, stdout, "Frank Herbert")
	assert.Contains(t, stdout, "in stock")
	assert.Contains(t, stdout, "Total: 1, issued: 0")
}

func TestStatusCommand(t *testing.T) {
	path := testutil.SeedCatalog(t, models.NewBook(1, "Dune", "Frank Herbert", 1965))

	stdout, _, err := executeCommand(t, "", "--storage", path, "status", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Book 1 is now issued")
	assert.Equal(t, models.StatusIssued, testutil.LoadCatalog(t, path)[0].Status)

	stdout, _, err = executeCommand(t, "", "--storage", path, "status", "1", "in", "stock")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Book 1 is now in stock")
	assert.Equal(t, models.StatusInStock, testutil.LoadCatalog(t, path)[0].Status)
}

func TestStatusCommandFailures(t *testing.T) {
	path := testutil.SeedCatalog(t, models.NewBook(1, "Dune", "Frank Herbert", 1965))

	_, _, err := executeCommand(t, "", "--storage", path, "status", "1", "lost")
	require.ErrorIs(t, err, catalog.ErrInvalidStatus)

	_, _, err = executeCommand(t, "", "--storage", path, "status", "9")
	require.ErrorIs(t, err, catalog.ErrNotFound)

	assert.Equal(t, models.StatusInStock, testutil.LoadCatalog(t, path)[0].Status)
}
