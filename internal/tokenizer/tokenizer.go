package tokenizer

import (
	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// Options configures the tokenizer behavior.
type Options struct {
	// Delimiter is the field separator. Default: ','
	Delimiter rune
}

// DefaultOptions returns default tokenizer options.
func DefaultOptions() Options {
	return Options{
		Delimiter: ',',
	}
}

// NewTokenizerWithOptions creates a line tokenizer.
//
// Matchers are tried in this order:
// 1. Double quote
// 2. Delimiter
// 3. Text (any run of characters that is neither)
//
// The quote matcher comes first so that a '"' delimiter is always read as a
// quote. Newlines are ordinary text: the input is a single line and a trailing
// "\n" belongs to the last field until it is normalized away.
func NewTokenizerWithOptions(opts Options) tokenizer.Tokenizer {
	return tokenizer.NewTokenizerWithoutWhitespace(
		tokenizer.StringMatcherFunc(TokenDQuote, `"`),
		tokenizer.StringMatcherFunc(TokenDelimiter, string(opts.Delimiter)),
		TextMatcherWithDelim(opts.Delimiter),
	)
}

// NewTokenizerForLine creates a tokenizer already initialized with line.
func NewTokenizerForLine(line string, opts Options) tokenizer.Tokenizer {
	tok := NewTokenizerWithOptions(opts)
	tok.InitializeFromStream(tokenizer.NewStream(line))
	return tok
}

// TextMatcherWithDelim creates a matcher for text runs with a custom delimiter.
// Matches runs of characters that are not the delimiter or a double quote.
//
// Grammar:
//
//	Text = Character+ ;
//	Character = <any character except delimiter, quote> ;
//
// Performance: Uses ByteStream for fast ASCII scanning when available.
func TextMatcherWithDelim(delim rune) tokenizer.Matcher {
	return func(stream tokenizer.Stream) *tokenizer.Token {
		if delim < 128 {
			if byteStream, ok := stream.(tokenizer.ByteStream); ok {
				return textMatcherByte(byteStream, byte(delim))
			}
		}
		return textMatcherRune(stream, delim)
	}
}

func textMatcherByte(stream tokenizer.ByteStream, delim byte) *tokenizer.Token {
	startPos := stream.BytePosition()

	for {
		b, ok := stream.PeekByte()
		if !ok {
			break
		}
		if b == delim || b == '"' {
			break
		}
		stream.NextByte()
	}

	if stream.BytePosition() == startPos {
		return nil
	}

	value := stream.SliceFrom(startPos)
	return tokenizer.NewToken(TokenText, []rune(string(value)))
}

func textMatcherRune(stream tokenizer.Stream, delim rune) *tokenizer.Token {
	var value []rune

	for {
		r, ok := stream.PeekChar()
		if !ok {
			break
		}
		if r == delim || r == '"' {
			break
		}
		stream.NextChar()
		value = append(value, r)
	}

	if len(value) == 0 {
		return nil
	}

	return tokenizer.NewToken(TokenText, value)
}
