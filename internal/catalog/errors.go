// file: internal/catalog/errors.go
// version: 1.0.0
// guid: 4e8b1d27-93c5-4a6f-b0e2-5d7c9a1f3b46

package catalog

import "errors"

// Sentinel errors for programmatic handling with errors.Is.
//
// ErrDuplicateID and ErrInvalidStatus are hard failures returned by Add and
// ChangeStatus. The rest describe soft failures: lookups and the Validate
// helpers log them and return a sentinel or false instead, while the Parse
// helpers hand them back to callers that want the reason.
var (
	ErrDuplicateID    = errors.New("book id already exists")
	ErrInvalidStatus  = errors.New("invalid status")
	ErrNotFound       = errors.New("book not found")
	ErrInvalidYear    = errors.New("invalid year")
	ErrInvalidID      = errors.New("invalid book id")
	ErrCorruptStorage = errors.New("catalog file is unreadable")
)
