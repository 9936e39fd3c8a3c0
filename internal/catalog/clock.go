// file: internal/catalog/clock.go
// version: 1.0.0
// guid: 9b3f6a0c-1e72-4d58-8c4b-2a0e7f5d91c3

package catalog

import "time"

// Clock supplies the current time. Year validation depends on it.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }
