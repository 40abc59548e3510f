// Package parser splits a single delimited line into raw fields.
//
// The splitter is a two-state machine driven by tokens from internal/tokenizer:
//
//	Unquoted --quote-->     Quoted
//	Quoted   --quote-->     Unquoted
//	Unquoted --delimiter--> Unquoted (emits field)
//	Quoted   --delimiter--> Quoted   (delimiter kept as text)
//	any      --text-->      same state (text accumulated)
//
// Quote characters are never part of a field. There is no escape for a
// literal quote, and a quote left open at end of line is tolerated: the rest
// of the line, delimiters included, lands in the last field.
package parser

import (
	"strings"

	shapetokenizer "github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-stops/internal/tokenizer"
)

// State is the quote state of a Splitter.
type State int

const (
	// StateUnquoted is the initial state; delimiters separate fields.
	StateUnquoted State = iota
	// StateQuoted suspends delimiter recognition.
	StateQuoted
)

// String returns the string representation of State.
func (s State) String() string {
	if s == StateQuoted {
		return "quoted"
	}
	return "unquoted"
}

// Options configures the splitter behavior.
type Options struct {
	// Delimiter is the field separator. Default: ','
	Delimiter rune
}

// DefaultOptions returns default splitter options.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
	}
}

// Splitter turns one line into its raw fields.
// It maintains a single token lookahead like the rest of the shape parsers.
type Splitter struct {
	tokenizer *shapetokenizer.Tokenizer
	current   *shapetokenizer.Token
	hasToken  bool
	state     State
}

// NewSplitter creates a splitter for line with the default comma delimiter.
func NewSplitter(line string) *Splitter {
	return NewSplitterWithOptions(line, DefaultOptions())
}

// NewSplitterWithOptions creates a splitter for line with custom options.
func NewSplitterWithOptions(line string, opts Options) *Splitter {
	tok := tokenizer.NewTokenizerForLine(line, tokenizer.Options{
		Delimiter: opts.Delimiter,
	})

	s := &Splitter{
		tokenizer: &tok,
		state:     StateUnquoted,
	}
	s.advance() // Load first token
	return s
}

// Split consumes the line and returns its fields in order.
// The result always has at least one element; an empty line yields [""].
func (s *Splitter) Split() []string {
	fields := make([]string, 0, 8)
	var field strings.Builder

	for s.hasToken {
		token := s.peek()

		switch token.Kind() {
		case tokenizer.TokenDQuote:
			if s.state == StateQuoted {
				s.state = StateUnquoted
			} else {
				s.state = StateQuoted
			}
		case tokenizer.TokenDelimiter:
			if s.state == StateQuoted {
				field.WriteString(token.ValueString())
			} else {
				fields = append(fields, field.String())
				field.Reset()
			}
		default:
			field.WriteString(token.ValueString())
		}

		s.advance()
	}

	return append(fields, field.String())
}

// State returns the quote state reached so far. After Split, StateQuoted
// means the line ended inside an unterminated quote.
func (s *Splitter) State() State {
	return s.state
}

// Split splits line on delim, honoring double-quoted regions.
func Split(line string, delim rune) []string {
	return NewSplitterWithOptions(line, Options{Delimiter: delim}).Split()
}

// peek returns current token without advancing.
func (s *Splitter) peek() *shapetokenizer.Token {
	return s.current
}

// advance moves to next token.
func (s *Splitter) advance() {
	token, ok := s.tokenizer.NextToken()
	if ok {
		s.current = token
		s.hasToken = true
	} else {
		s.hasToken = false
		s.current = nil
	}
}
