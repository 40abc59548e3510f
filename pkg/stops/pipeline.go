package stops

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

// Options configures the file pipeline.
type Options struct {
	// Delimiter is the field separator. Default: ',' (also used when zero)
	Delimiter rune
	// StopLayout maps stop rows to columns. Default: DefaultStopLayout()
	StopLayout StopLayout
	// PointLayout maps document rows to columns. Default: DefaultPointLayout()
	PointLayout PointLayout
	// OnBadLine specifies how to handle rows that fail to parse.
	// Default: BadLineModeError
	OnBadLine BadLineMode
	// WarningCallback is invoked for skipped rows when OnBadLine is
	// BadLineModeWarn. If nil, warnings are dropped.
	WarningCallback WarningHandler
}

// DefaultOptions returns default pipeline options.
func DefaultOptions() Options {
	return Options{
		Delimiter:   ',',
		StopLayout:  DefaultStopLayout(),
		PointLayout: DefaultPointLayout(),
		OnBadLine:   BadLineModeError,
	}
}

// ReadStops reads all of r and parses every line after the header as a
// BusStop.
//
// Blank lines are skipped. With BadLineModeError the first bad row aborts the
// read and no stops are returned; the error is a *ParseError carrying the
// line number.
func ReadStops(r io.Reader, opts Options) ([]BusStop, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []BusStop{}, nil
	}

	stops := make([]BusStop, 0, len(lines)-1)
	for i, line := range lines[1:] {
		lineNum := i + 2
		if strings.TrimSpace(line) == "" {
			continue
		}

		stop, err := opts.StopLayout.Parse(Fields(line, opts.delimiter()))
		if err != nil {
			if err := opts.handleBadLine(newParseError(lineNum, err)); err != nil {
				return nil, err
			}
			continue
		}
		stops = append(stops, stop)
	}

	log.Debug().Msgf("Parsed stops: lines=%d stops=%d", len(lines), len(stops))
	return stops, nil
}

// ReadStopsFile opens path and reads it with ReadStops.
func ReadStopsFile(path string, opts Options) ([]BusStop, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open stops file: %w", err)
	}
	defer file.Close()

	return ReadStops(file, opts)
}

// ReadDocument reads all of r into a Document. The first line becomes the
// header and every following non-blank line a row parsed with
// opts.PointLayout.
//
// Returns ErrNoHeader for empty input.
func ReadDocument(r io.Reader, opts Options) (*Document, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoHeader
	}

	doc := &Document{
		Header: Fields(lines[0], opts.delimiter()),
		Rows:   make([]LatLong, 0, len(lines)-1),
	}
	for i, line := range lines[1:] {
		lineNum := i + 2
		if strings.TrimSpace(line) == "" {
			continue
		}

		row, err := opts.PointLayout.Parse(Fields(line, opts.delimiter()))
		if err != nil {
			if err := opts.handleBadLine(newParseError(lineNum, err)); err != nil {
				return nil, err
			}
			continue
		}
		doc.Rows = append(doc.Rows, row)
	}

	log.Debug().Msgf("Parsed document: columns=%d rows=%d", len(doc.Header), len(doc.Rows))
	return doc, nil
}

// ReadDocumentFile opens path and reads it with ReadDocument.
func ReadDocumentFile(path string, opts Options) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open document file: %w", err)
	}
	defer file.Close()

	return ReadDocument(file, opts)
}

// delimiter returns the configured delimiter, ',' when unset.
func (o Options) delimiter() rune {
	if o.Delimiter == 0 {
		return ','
	}
	return o.Delimiter
}

// handleBadLine handles a row error based on OnBadLine mode.
// Returns nil if reading should continue, or the error if it should stop.
func (o Options) handleBadLine(err *ParseError) error {
	switch o.OnBadLine {
	case BadLineModeSkip:
		return nil
	case BadLineModeWarn:
		if o.WarningCallback != nil {
			o.WarningCallback(err.Line, err.Err.Error())
		}
		return nil
	default:
		return err
	}
}

// readLines reads all of r and splits it into lines. "\n", "\r\n" and a lone
// "\r" all end a line, and each line keeps its terminator. A final line
// without a terminator is kept as is.
//
// Input that is not valid UTF-8 fails with ErrInvalidUTF8 and the number of
// the first bad line.
func readLines(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	text := string(data)
	lines := make([]string, 0, strings.Count(text, "\n")+1)
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\n':
			lines = append(lines, text[start:i+1])
			start = i + 1
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			lines = append(lines, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		lines = append(lines, text[start:])
	}

	for i, line := range lines {
		if !utf8.ValidString(line) {
			return nil, &ParseError{Line: i + 1, Err: ErrInvalidUTF8}
		}
	}
	return lines, nil
}
