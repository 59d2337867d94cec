// pkg/dpkg/errors.go
package dpkg

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCommandExecution indicates the listing tool was missing or failed
	ErrCommandExecution = errors.New("command execution failed")

	// ErrDecode indicates the listing was not valid UTF-8
	ErrDecode = errors.New("invalid utf-8 in listing")

	// ErrMalformedLine indicates an installed line had too few columns
	ErrMalformedLine = errors.New("malformed listing line")
)

// CommandError reports a listing tool that could not run or exited non-zero
type CommandError struct {
	Command  string
	Args     []string
	ExitCode int    // -1 when the process never started or was killed
	Stderr   string // Trimmed stderr of the process, if any
	Err      error
}

func (e *CommandError) Error() string {
	cmdline := strings.TrimSpace(e.Command + " " + strings.Join(e.Args, " "))
	msg := fmt.Sprintf("running %s: %v", cmdline, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func (e *CommandError) Is(target error) bool {
	return target == ErrCommandExecution
}

// DecodeError reports the first invalid UTF-8 sequence in the listing
type DecodeError struct {
	Offset int // Byte offset of the invalid sequence
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding listing: invalid utf-8 at byte %d", e.Offset)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}

// MalformedLineError reports an installed line with fewer than three columns
type MalformedLineError struct {
	Line   int    // 1-based line number in the listing
	Text   string // Raw line
	Tokens int    // Token count after whitespace normalization
}

func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("line %d: expected at least %d columns, got %d: %q",
		e.Line, minColumns, e.Tokens, e.Text)
}

func (e *MalformedLineError) Is(target error) bool {
	return target == ErrMalformedLine
}
