// file: internal/models/book_test.go
// version: 1.0.0
// guid: f7dfc48e-0460-4614-9a8f-8bcad9d49bd6

package models

import (
	"testing"

	"github.com/goccy/go-json"
)

func TestNewBookDefaultsToInStock(t *testing.T) {
	book := NewBook(1, "Test Book", "Author", 2020)

	if book.Status != StatusInStock {
		t.Errorf("Expected status %q, got %q", StatusInStock, book.Status)
	}
	if book.IsIssued() {
		t.Error("Expected new book not to be issued")
	}
}

func TestStatusValid(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusInStock, true},
		{StatusIssued, true},
		{"In Stock", false},
		{"lost", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Valid(); got != tt.want {
				t.Errorf("Status(%q).Valid() = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestStatusToggle(t *testing.T) {
	if got := StatusInStock.Toggle(); got != StatusIssued {
		t.Errorf("Expected %q, got %q", StatusIssued, got)
	}
	if got := StatusIssued.Toggle(); got != StatusInStock {
		t.Errorf("Expected %q, got %q", StatusInStock, got)
	}
	// unknown values read from disk behave like issued
	if got := Status("lost").Toggle(); got != StatusInStock {
		t.Errorf("Expected %q, got %q", StatusInStock, got)
	}
}

// TestBookJSONFieldNames pins the storage field names and status literals.
func TestBookJSONFieldNames(t *testing.T) {
	book := Book{ID: 7, Title: "Война и мир", Author: "Толстой", Year: 1869, Status: StatusIssued}

	data, err := json.Marshal(book)
	if err != nil {
		t.Fatalf("Failed to marshal book: %v", err)
	}

	want := `{"id":7,"title":"Война и мир","author":"Толстой","year":1869,"status":"issued"}`
	if string(data) != want {
		t.Errorf("Expected %s, got %s", want, data)
	}
}
