// Package tokenizer provides line tokenization using Shape's tokenizer framework.
package tokenizer

// Token type constants for a single delimited line.
//
// Note: The tokenizer emits character-level tokens only. Quote state is
// tracked by the splitter in internal/parser, not here.
const (
	// Structural tokens
	TokenDelimiter = "Delimiter" // field separator (',' by default)
	TokenDQuote    = "DQuote"    // " (quote toggle)

	// Text token
	TokenText = "Text" // run of any other characters, CR and LF included
)
