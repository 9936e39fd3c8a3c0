// file: internal/storage/storage.go
// version: 1.0.0
// guid: 5a2c81e4-1d3b-4f0e-9a77-2c6b8d4e1f90

// Package storage reads and writes the catalog file: a UTF-8 JSON array of
// book objects, rewritten in full on every save.
package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/jdfalk/library-catalog/internal/fileops"
	"github.com/jdfalk/library-catalog/internal/models"
)

// ErrMalformed is returned by Load when the file exists but does not decode
// as a catalog.
var ErrMalformed = errors.New("malformed catalog file")

// FilePerm is the mode of a newly created catalog file. Rewrites keep the
// existing file's mode.
const FilePerm fs.FileMode = 0644

// Load reads every book from path. A missing file is reported with an error
// satisfying errors.Is(err, fs.ErrNotExist).
func Load(path string) ([]models.Book, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Decode(data)
}

// Decode parses a catalog document.
func Decode(data []byte) ([]models.Book, error) {
	books := make([]models.Book, 0)
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	// A literal "null" decodes without error into a nil slice.
	if books == nil {
		books = make([]models.Book, 0)
	}
	return books, nil
}

// Encode renders books the way they are stored on disk: indented by four
// spaces, non-ASCII text kept literal, and an empty catalog as "[]".
func Encode(books []models.Book) ([]byte, error) {
	if books == nil {
		books = []models.Book{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(books); err != nil {
		return nil, fmt.Errorf("failed to encode catalog: %w", err)
	}
	// Encoder terminates with a newline; the stored snapshot does not.
	return literalSeparators(bytes.TrimRight(buf.Bytes(), "\n")), nil
}

// literalSeparators turns the \u2028 and \u2029 escapes the encoder always
// emits back into the raw characters. Other escapes are copied as pairs, so
// an escaped backslash followed by "u2028" is left alone.
func literalSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		c := data[i]
		if c != '\\' || i+1 >= len(data) {
			out = append(out, c)
			continue
		}
		if data[i+1] == 'u' && i+6 <= len(data) {
			switch string(data[i+2 : i+6]) {
			case "2028":
				out = utf8.AppendRune(out, '\u2028')
				i += 5
				continue
			case "2029":
				out = utf8.AppendRune(out, '\u2029')
				i += 5
				continue
			}
		}
		out = append(out, c, data[i+1])
		i++
	}
	return out
}

// Save replaces the file at path with a snapshot of books.
func Save(path string, books []models.Book) error {
	data, err := Encode(books)
	if err != nil {
		return err
	}
	if err := fileops.WriteFileAtomic(path, data, FilePerm); err != nil {
		return fmt.Errorf("failed to save catalog: %w", err)
	}
	return nil
}
