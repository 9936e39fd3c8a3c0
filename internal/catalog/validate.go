// file: internal/catalog/validate.go
// version: 1.0.0
// guid: 0f6d2b84-5c39-4e17-a2d8-7b1e9c4a6053

package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// CurrentYear returns the year according to the library's clock.
func (l *Library) CurrentYear() int {
	return l.clock.Now().Year()
}

// ParseYear converts user input to a publication year. Anything that is not
// an integer, or is later than the current year, fails with ErrInvalidYear.
func (l *Library) ParseYear(input string) (int, error) {
	year, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidYear, input)
	}
	if current := l.CurrentYear(); year > current {
		return 0, fmt.Errorf("%w: %d is later than %d", ErrInvalidYear, year, current)
	}
	return year, nil
}

// ValidateYear reports whether input is an acceptable year, logging the
// reason when it is not.
func (l *Library) ValidateYear(input string) bool {
	if _, err := l.ParseYear(input); err != nil {
		l.logger.Warn("Invalid year, it must not be later than the current year",
			zap.String("input", input), zap.Int("current_year", l.CurrentYear()), zap.Error(err))
		return false
	}
	return true
}

// ParseID converts user input to the id of a book in the catalog. Input that
// is not a positive integer fails with ErrInvalidID; a well formed id with no
// book fails with both ErrInvalidID and ErrNotFound.
func (l *Library) ParseID(input string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidID, input)
	}
	if id <= 0 {
		return 0, fmt.Errorf("%w: %d must be greater than 0", ErrInvalidID, id)
	}
	if !l.Exists(id) {
		return 0, fmt.Errorf("%w %d: %w", ErrInvalidID, id, ErrNotFound)
	}
	return id, nil
}

// ValidateID reports whether input names a book in the catalog, logging
// the reason when it does not.
func (l *Library) ValidateID(input string) bool {
	if _, err := l.ParseID(input); err != nil {
		l.logger.Warn("Invalid book id", zap.String("input", input), zap.Error(err))
		return false
	}
	return true
}
