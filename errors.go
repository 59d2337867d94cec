// errors.go
package pkglist

import (
	"fmt"

	"github.com/arc-language/pkglist/pkg/dpkg"
)

var (
	// ErrCommandExecution indicates the listing tool was missing or exited non-zero
	ErrCommandExecution = dpkg.ErrCommandExecution

	// ErrDecode indicates the listing was not valid UTF-8
	ErrDecode = dpkg.ErrDecode

	// ErrMalformedLine indicates an installed line had fewer than three columns
	ErrMalformedLine = dpkg.ErrMalformedLine
)

// Error wraps an error with additional context
type Error struct {
	Op     string // Operation that failed
	Source string // Command or capture file if applicable
	Err    error  // Underlying error
}

func (e *Error) Error() string {
	if e.Source != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Source, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
