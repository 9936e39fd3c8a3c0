// file: internal/catalog/library.go
// version: 1.0.0
// guid: c5a17e3d-6b28-4f90-9d41-8e2b0a7c5f16

// Package catalog manages the in-memory book collection and keeps the
// storage file in sync with it. Every mutation rewrites the whole file.
package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"

	"github.com/jdfalk/library-catalog/internal/fileops"
	"github.com/jdfalk/library-catalog/internal/matcher"
	"github.com/jdfalk/library-catalog/internal/models"
	"github.com/jdfalk/library-catalog/internal/storage"
	"go.uber.org/zap"
)

// Library is an ordered collection of books backed by a JSON file.
// It is not safe for concurrent use.
type Library struct {
	storagePath string
	books       []models.Book
	logger      *zap.Logger
	clock       Clock

	// loadErr is set when the file existed but could not be decoded.
	loadErr     error
	quarantined bool
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger that receives diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(l *Library) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// WithClock overrides the time source used for year validation.
func WithClock(clock Clock) Option {
	return func(l *Library) {
		if clock != nil {
			l.clock = clock
		}
	}
}

// New loads the catalog stored at storagePath.
//
// A missing file yields an empty catalog. A file that cannot be decoded also
// yields an empty catalog: the problem is logged and kept in LoadError, and
// the unreadable file is moved aside before the first rewrite. Other I/O
// failures are returned.
func New(storagePath string, opts ...Option) (*Library, error) {
	l := &Library{
		storagePath: storagePath,
		logger:      zap.NewNop(),
		clock:       SystemClock{},
	}
	for _, opt := range opts {
		opt(l)
	}

	books, err := storage.Load(storagePath)
	switch {
	case err == nil:
		l.books = books
	case errors.Is(err, fs.ErrNotExist):
		l.books = make([]models.Book, 0)
	case errors.Is(err, storage.ErrMalformed):
		l.loadErr = fmt.Errorf("%w: %s: %w", ErrCorruptStorage, storagePath, err)
		l.logger.Warn("Failed to read catalog file, starting with an empty catalog",
			zap.String("path", storagePath), zap.Error(err))
		l.books = make([]models.Book, 0)
	default:
		return nil, fmt.Errorf("failed to load catalog %s: %w", storagePath, err)
	}

	return l, nil
}

// StoragePath returns the file the catalog is persisted to.
func (l *Library) StoragePath() string {
	return l.storagePath
}

// LoadError reports why the storage file was discarded at load time, or nil.
func (l *Library) LoadError() error {
	return l.loadErr
}

// Len returns the number of books in the catalog.
func (l *Library) Len() int {
	return len(l.books)
}

// save writes next to disk and, only if that succeeds, makes it the
// current catalog.
func (l *Library) save(next []models.Book) error {
	if l.loadErr != nil && !l.quarantined {
		moved, err := fileops.Quarantine(l.storagePath, l.clock.Now())
		if err != nil {
			return err
		}
		if moved != "" {
			l.logger.Warn("Moved unreadable catalog file aside", zap.String("path", moved))
		}
		l.quarantined = true
	}

	if err := storage.Save(l.storagePath, next); err != nil {
		return err
	}
	l.books = next
	return nil
}

func (l *Library) indexOf(id int) int {
	return slices.IndexFunc(l.books, func(b models.Book) bool { return b.ID == id })
}

// Exists reports whether a book with id is in the catalog.
func (l *Library) Exists(id int) bool {
	return l.indexOf(id) >= 0
}

// Add appends book and persists the catalog. It fails with ErrDuplicateID,
// leaving everything untouched, when the id is already taken.
func (l *Library) Add(book models.Book) error {
	if l.Exists(book.ID) {
		return fmt.Errorf("%w: %d", ErrDuplicateID, book.ID)
	}

	next := append(slices.Clone(l.books), book)
	if err := l.save(next); err != nil {
		return err
	}

	l.logger.Info("Book added", zap.Int("id", book.ID), zap.String("title", book.Title))
	return nil
}

// Delete removes the first book with id and persists the catalog. An
// unknown id is only logged; it returns false and nothing is written.
func (l *Library) Delete(id int) (bool, error) {
	idx := l.indexOf(id)
	if idx < 0 {
		l.logger.Info("Book not found", zap.Int("id", id))
		return false, nil
	}

	next := slices.Delete(slices.Clone(l.books), idx, idx+1)
	if err := l.save(next); err != nil {
		return false, err
	}

	l.logger.Info("Book deleted", zap.Int("id", id))
	return true, nil
}

// FindByID returns the first book with id. ok is false when there is none.
func (l *Library) FindByID(id int) (book models.Book, ok bool) {
	idx := l.indexOf(id)
	if idx < 0 {
		return models.Book{}, false
	}
	return l.books[idx], true
}

// FindByTitle returns books whose title contains title, ignoring case.
func (l *Library) FindByTitle(title string) []models.Book {
	return l.filter(func(b models.Book) bool { return matcher.Contains(b.Title, title) })
}

// FindByAuthor returns books whose author contains author, ignoring case.
func (l *Library) FindByAuthor(author string) []models.Book {
	return l.filter(func(b models.Book) bool { return matcher.Contains(b.Author, author) })
}

// FindByYear returns books published in exactly year.
func (l *Library) FindByYear(year int) []models.Book {
	return l.filter(func(b models.Book) bool { return b.Year == year })
}

func (l *Library) filter(keep func(models.Book) bool) []models.Book {
	found := make([]models.Book, 0)
	for _, b := range l.books {
		if keep(b) {
			found = append(found, b)
		}
	}
	return found
}

// ListAll returns a copy of the catalog in insertion order.
func (l *Library) ListAll() []models.Book {
	return slices.Clone(l.books)
}

// ChangeStatus sets the status of the book with id and persists the
// catalog. An invalid status and an unknown id are rejected by the same
// check with ErrInvalidStatus; in the unknown id case the error also
// matches ErrNotFound.
func (l *Library) ChangeStatus(id int, status models.Status) error {
	idx := l.indexOf(id)
	if !status.Valid() || idx < 0 {
		if idx < 0 {
			return fmt.Errorf("%w %q for book %d: %w", ErrInvalidStatus, status, id, ErrNotFound)
		}
		return fmt.Errorf("%w %q: allowed values are %q and %q",
			ErrInvalidStatus, status, models.StatusInStock, models.StatusIssued)
	}

	next := slices.Clone(l.books)
	next[idx].Status = status
	if err := l.save(next); err != nil {
		return err
	}

	l.logger.Info("Book status changed", zap.Int("id", id), zap.Stringer("status", status))
	return nil
}

// GenerateID returns the smallest positive id not used by any book. Ids of
// deleted books are handed out again.
func (l *Library) GenerateID() int {
	used := make(map[int]struct{}, len(l.books))
	for _, b := range l.books {
		used[b.ID] = struct{}{}
	}

	id := 1
	for {
		if _, taken := used[id]; !taken {
			return id
		}
		id++
	}
}

// SuggestTitles offers existing titles close to query, for searches that
// came back empty.
func (l *Library) SuggestTitles(query string, limit int) []string {
	return l.suggest(query, limit, func(b models.Book) string { return b.Title })
}

// SuggestAuthors offers existing author names close to query.
func (l *Library) SuggestAuthors(query string, limit int) []string {
	return l.suggest(query, limit, func(b models.Book) string { return b.Author })
}

func (l *Library) suggest(query string, limit int, field func(models.Book) string) []string {
	candidates := make([]string, 0, len(l.books))
	for _, b := range l.books {
		candidates = append(candidates, field(b))
	}

	suggestions := matcher.Suggest(query, candidates, limit)
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, s.Text)
	}
	return out
}
