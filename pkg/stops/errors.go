package stops

import (
	"errors"
	"fmt"
	"strings"
)

// Common parsing errors
var (
	// ErrFormat indicates a field that should be numeric is not.
	ErrFormat = errors.New("invalid number format")

	// ErrIndex indicates a column index beyond the end of a row.
	ErrIndex = errors.New("column index out of range")

	// ErrNoHeader indicates a document without a header line.
	ErrNoHeader = errors.New("missing header line")

	// ErrInvalidUTF8 indicates input that is not valid UTF-8 text.
	ErrInvalidUTF8 = errors.New("invalid UTF-8")

	// ErrUnrenderable indicates a field that cannot be written back out: it
	// holds a double quote, which has no escape, or a line break.
	ErrUnrenderable = errors.New("field contains a quote or line break")
)

// FormatError reports a field that could not be converted to a number.
// errors.Is(err, ErrFormat) reports true for it.
type FormatError struct {
	// Value is the offending field.
	Value string
	// Kind is the target type, "int" or "float".
	Kind string
	// Index is the column index of the field, or -1 when it was converted
	// outside of a row.
	Index int
	// Err is the underlying strconv error.
	Err error
}

// Error returns a formatted error message.
func (e *FormatError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("cannot convert %q to %s", e.Value, e.Kind)
	}
	return fmt.Sprintf("cannot convert %q in column %d to %s", e.Value, e.Index+1, e.Kind)
}

// Unwrap returns the underlying error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// IndexError reports a column index that a row is too short for.
// errors.Is(err, ErrIndex) reports true for it.
type IndexError struct {
	// Index is the requested column index.
	Index int
	// Len is the number of fields in the row.
	Len int
}

// Error returns a formatted error message.
func (e *IndexError) Error() string {
	return fmt.Sprintf("column index %d out of range for row with %d fields", e.Index, e.Len)
}

// Is reports whether target is ErrIndex.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndex
}

// ParseError represents a row that failed to parse, with position information.
type ParseError struct {
	// Line is the line of the input the row came from (1-indexed).
	Line int
	// Column is the failing column (1-indexed), 0 when unknown.
	Column int
	// Err is the underlying error.
	Err error
}

// Error returns a formatted error message with position information.
func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("parse error on line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// newParseError wraps err with the line number and, when err carries one,
// the failing column.
func newParseError(line int, err error) *ParseError {
	pe := &ParseError{Line: line, Err: err}

	var fe *FormatError
	var ie *IndexError
	switch {
	case errors.As(err, &fe) && fe.Index >= 0:
		pe.Column = fe.Index + 1
	case errors.As(err, &ie):
		pe.Column = ie.Index + 1
	}
	return pe
}

// BadLineMode specifies how the pipeline handles rows that fail to parse.
type BadLineMode int

const (
	// BadLineModeError aborts on the first bad row (default).
	BadLineModeError BadLineMode = iota
	// BadLineModeWarn reports the row through WarningCallback and skips it.
	BadLineModeWarn
	// BadLineModeSkip silently skips bad rows.
	BadLineModeSkip
)

// String returns the string representation of BadLineMode.
func (m BadLineMode) String() string {
	switch m {
	case BadLineModeError:
		return "error"
	case BadLineModeWarn:
		return "warn"
	case BadLineModeSkip:
		return "skip"
	default:
		return fmt.Sprintf("BadLineMode(%d)", m)
	}
}

// ParseBadLineMode parses the output of BadLineMode.String.
func ParseBadLineMode(s string) (BadLineMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error", "":
		return BadLineModeError, nil
	case "warn":
		return BadLineModeWarn, nil
	case "skip":
		return BadLineModeSkip, nil
	default:
		return BadLineModeError, fmt.Errorf("unknown bad line mode %q", s)
	}
}

// WarningHandler is a callback function for reporting skipped rows.
type WarningHandler func(line int, message string)
