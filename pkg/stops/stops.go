// Package stops parses delimited text describing bus stops and geographic
// points into typed records.
//
// A row goes through four steps, each available on its own:
//
//	tokens := stops.Tokenize(line, ',')       // quote-aware split
//	fields := stops.Normalize(tokens)         // trim whitespace
//	stop, err := stops.ParseBusStop(fields)   // convert and assemble
//
// Tokenize honors double quotes: a delimiter inside a quoted region is kept
// as text and the quote characters themselves are dropped. There is no
// escape for a literal quote, and an unterminated quote is not an error.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Each call builds its own tokenizer with no shared mutable state.
//
// # File pipeline
//
// ReadStops and ReadDocument read a whole input, skip or consume the header
// line and parse every remaining line. Failures are reported as *ParseError
// with the line number; Options.OnBadLine decides whether a bad row aborts
// the batch or is skipped.
package stops

import (
	"strings"

	"github.com/shapestone/shape-stops/internal/parser"
)

// Tokenize splits line on delim, honoring double-quoted regions.
//
// line must be valid UTF-8: fields are built rune by rune, so invalid bytes
// come back as U+FFFD. ReadStops and ReadDocument reject such input with
// ErrInvalidUTF8 before tokenizing.
//
// The result has at least one element; an empty line yields [""]. Without
// quotes it has exactly one more element than line has delimiters.
//
// Example:
//
//	Tokenize(`51916,"[044,084]",49.273342,-123.239004`, ',')
//	// ["51916" "[044,084]" "49.273342" "-123.239004"]
func Tokenize(line string, delim rune) []string {
	return parser.Split(line, delim)
}

// Normalize returns a copy of tokens with leading and trailing whitespace,
// newlines included, removed from each token.
func Normalize(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, t := range tokens {
		out[i] = strings.TrimSpace(t)
	}
	return out
}

// Fields is Normalize(Tokenize(line, delim)).
func Fields(line string, delim rune) []string {
	return Normalize(Tokenize(line, delim))
}
