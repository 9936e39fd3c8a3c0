// file: internal/models/book.go
// version: 1.0.0
// guid: 3b5d730c-9786-441b-8c27-1b8086d3aa31

package models

// Status is the circulation state of a book. The string values are written
// to the storage file verbatim and must not change.
type Status string

const (
	StatusInStock Status = "in stock"
	StatusIssued  Status = "issued"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	return s == StatusInStock || s == StatusIssued
}

// Toggle returns the opposite status. Anything other than "in stock"
// (including unknown values read from disk) is treated as issued.
func (s Status) Toggle() Status {
	if s == StatusInStock {
		return StatusIssued
	}
	return StatusInStock
}

func (s Status) String() string {
	return string(s)
}

// Book is a single catalog record.
type Book struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Author string `json:"author"`
	Year   int    `json:"year"`
	Status Status `json:"status"`
}

// NewBook creates a book that is in stock.
func NewBook(id int, title, author string, year int) Book {
	return Book{
		ID:     id,
		Title:  title,
		Author: author,
		Year:   year,
		Status: StatusInStock,
	}
}

// IsIssued reports whether the book is currently checked out.
func (b Book) IsIssued() bool {
	return b.Status == StatusIssued
}
