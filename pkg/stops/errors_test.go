package stops_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/shapestone/shape-stops/pkg/stops"
)

func TestBadLineMode_String(t *testing.T) {
	tests := []struct {
		mode stops.BadLineMode
		want string
	}{
		{stops.BadLineModeError, "error"},
		{stops.BadLineModeWarn, "warn"},
		{stops.BadLineModeSkip, "skip"},
		{stops.BadLineMode(99), "BadLineMode(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.mode.String(); got != tt.want {
				t.Errorf("BadLineMode.String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseBadLineMode(t *testing.T) {
	tests := []struct {
		input   string
		want    stops.BadLineMode
		wantErr bool
	}{
		{"", stops.BadLineModeError, false},
		{"error", stops.BadLineModeError, false},
		{"WARN", stops.BadLineModeWarn, false},
		{" skip ", stops.BadLineModeSkip, false},
		{"ignore", stops.BadLineModeError, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := stops.ParseBadLineMode(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseBadLineMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseBadLineMode(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatError(t *testing.T) {
	_, numErr := strconv.ParseFloat("abc", 64)

	t.Run("in a row", func(t *testing.T) {
		err := &stops.FormatError{Value: "abc", Kind: "float", Index: 2, Err: numErr}
		want := `cannot convert "abc" in column 3 to float`
		if got := err.Error(); got != want {
			t.Errorf("FormatError.Error() = %q, want %q", got, want)
		}
		if !errors.Is(err, stops.ErrFormat) {
			t.Error("errors.Is(FormatError, ErrFormat) = false")
		}
		if !errors.Is(err, strconv.ErrSyntax) {
			t.Error("FormatError does not unwrap to strconv.ErrSyntax")
		}
	})

	t.Run("standalone", func(t *testing.T) {
		err := &stops.FormatError{Value: "x", Kind: "int", Index: -1}
		want := `cannot convert "x" to int`
		if got := err.Error(); got != want {
			t.Errorf("FormatError.Error() = %q, want %q", got, want)
		}
	})
}

func TestIndexError(t *testing.T) {
	err := &stops.IndexError{Index: 3, Len: 2}
	want := "column index 3 out of range for row with 2 fields"
	if got := err.Error(); got != want {
		t.Errorf("IndexError.Error() = %q, want %q", got, want)
	}
	if !errors.Is(err, stops.ErrIndex) {
		t.Error("errors.Is(IndexError, ErrIndex) = false")
	}
	if errors.Is(err, stops.ErrFormat) {
		t.Error("errors.Is(IndexError, ErrFormat) = true")
	}
}

func TestParseError(t *testing.T) {
	t.Run("with column", func(t *testing.T) {
		err := &stops.ParseError{Line: 5, Column: 2, Err: stops.ErrIndex}
		want := "parse error on line 5, column 2: column index out of range"
		if got := err.Error(); got != want {
			t.Errorf("ParseError.Error() = %q, want %q", got, want)
		}
	})

	t.Run("without column", func(t *testing.T) {
		err := &stops.ParseError{Line: 7, Err: errors.New("boom")}
		want := "parse error on line 7: boom"
		if got := err.Error(); got != want {
			t.Errorf("ParseError.Error() = %q, want %q", got, want)
		}
	})

	t.Run("unwrap", func(t *testing.T) {
		inner := &stops.FormatError{Value: "x", Kind: "int", Index: 0}
		err := &stops.ParseError{Line: 2, Column: 1, Err: inner}

		var fe *stops.FormatError
		if !errors.As(err, &fe) || fe != inner {
			t.Error("errors.As(ParseError, *FormatError) failed")
		}
		if !errors.Is(err, stops.ErrFormat) {
			t.Error("errors.Is(ParseError, ErrFormat) = false")
		}
	})
}
