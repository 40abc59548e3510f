package stops_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/shapestone/shape-stops/pkg/stops"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim rune
		want  []string
	}{
		{"empty line", "", ',', []string{""}},
		{"no delimiter", "hello world", ',', []string{"hello world"}},
		{"header", "number,connections,lat,long", ',', []string{"number", "connections", "lat", "long"}},
		{"quoted delimiter", `a,"b,c",d`, ',', []string{"a", "b,c", "d"}},
		{
			"stop row",
			`51916,"[044,084]",49.273342,-123.239004`, ',',
			[]string{"51916", "[044,084]", "49.273342", "-123.239004"},
		},
		{"unterminated quote", `1,"[2,3],4.0`, ',', []string{"1", "[2,3],4.0"}},
		{"semicolon", "49.0;-123.0", ';', []string{"49.0", "-123.0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stops.Tokenize(tt.line, tt.delim)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q, %q) = %q, want %q", tt.line, tt.delim, got, tt.want)
			}
		})
	}
}

func TestTokenize_NoQuotesInOutput(t *testing.T) {
	lines := []string{
		`"a"`,
		`"a","b"`,
		`x"y"z`,
		`"`,
		`""""`,
		`a,"b`,
		`"[1,2]",3,"4"`,
	}

	for _, line := range lines {
		for _, tok := range stops.Tokenize(line, ',') {
			if strings.ContainsRune(tok, '"') {
				t.Errorf("Tokenize(%q) produced token %q with a quote", line, tok)
			}
		}
	}
}

func TestTokenize_JoinRoundTrip(t *testing.T) {
	tests := [][]string{
		{"single"},
		{"a", "b"},
		{"", ""},
		{"49.0", "-123.0", "x y"},
		{"\tlead", "trail "},
	}

	for _, delim := range []rune{',', ';', '\t', '|'} {
		for _, fields := range tests {
			line := strings.Join(fields, string(delim))
			if strings.ContainsRune(strings.Join(fields, ""), delim) {
				continue
			}
			got := stops.Tokenize(line, delim)
			if !reflect.DeepEqual(got, fields) {
				t.Errorf("Tokenize(%q, %q) = %q, want %q", line, delim, got, fields)
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"empty", []string{}, []string{}},
		{"newline and spaces", []string{"asdf\n", "  hello"}, []string{"asdf", "hello"}},
		{"internal whitespace kept", []string{" a  b "}, []string{"a  b"}},
		{"crlf", []string{"-123.0\r\n"}, []string{"-123.0"}},
		{"blank", []string{" \t "}, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stops.Normalize(tt.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := [][]string{
		{" a ", "b\n", "\t c \t"},
		{"", "  ", "x y"},
		{"already", "clean"},
	}

	for _, in := range inputs {
		once := stops.Normalize(in)
		twice := stops.Normalize(once)
		if !reflect.DeepEqual(once, twice) {
			t.Errorf("Normalize not idempotent for %q: %q then %q", in, once, twice)
		}
	}
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := []string{" a ", " b "}
	_ = stops.Normalize(in)
	if in[0] != " a " || in[1] != " b " {
		t.Errorf("Normalize modified its input: %q", in)
	}
}

func TestFields(t *testing.T) {
	got := stops.Fields("51916, \"[044,084]\" ,49.273342,-123.239004\n", ',')
	want := []string{"51916", "[044,084]", "49.273342", "-123.239004"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Fields() = %q, want %q", got, want)
	}
}
