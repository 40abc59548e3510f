package stops

import (
	"errors"
	"strconv"
	"strings"
)

// ParseCoordinate converts tokens[latIndex] and tokens[lonIndex] into a
// LatLong.
//
// Returns an *IndexError if either index is outside tokens and a
// *FormatError if either field is not a floating-point literal. A literal
// too large for float64 reads as ±Inf.
//
// Example:
//
//	ParseCoordinate([]string{"a", "b", "49.0", "-129.0"}, 2, 3)
//	// LatLong{Latitude: 49, Longitude: -129}
func ParseCoordinate(tokens []string, latIndex, lonIndex int) (LatLong, error) {
	lat, err := floatAt(tokens, latIndex)
	if err != nil {
		return LatLong{}, err
	}
	lon, err := floatAt(tokens, lonIndex)
	if err != nil {
		return LatLong{}, err
	}
	return LatLong{Latitude: lat, Longitude: lon}, nil
}

// ParseConnections converts a bracketed list such as "[044,084]" into its
// identifiers.
//
// Every '[' and ']' is removed, wherever it appears, and the rest is split on
// commas. Order and duplicates are kept. "[]" yields [""].
func ParseConnections(token string) []string {
	token = strings.ReplaceAll(token, "[", "")
	token = strings.ReplaceAll(token, "]", "")
	return strings.Split(token, ",")
}

// ParseID converts token into an integer identifier.
// Surrounding whitespace and leading zeros are accepted. Values outside the
// range of int are a *FormatError.
func ParseID(token string) (int, error) {
	return parseID(token, -1)
}

func parseID(token string, index int) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(token))
	if err != nil {
		return 0, &FormatError{Value: token, Kind: "int", Index: index, Err: err}
	}
	return n, nil
}

func idAt(tokens []string, index int) (int, error) {
	token, err := fieldAt(tokens, index)
	if err != nil {
		return 0, err
	}
	return parseID(token, index)
}

func floatAt(tokens []string, index int) (float64, error) {
	token, err := fieldAt(tokens, index)
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(token), 64)
	if errors.Is(err, strconv.ErrRange) {
		// Overflow reads as ±Inf.
		return f, nil
	}
	if err != nil {
		return 0, &FormatError{Value: token, Kind: "float", Index: index, Err: err}
	}
	return f, nil
}

func fieldAt(tokens []string, index int) (string, error) {
	if index < 0 || index >= len(tokens) {
		return "", &IndexError{Index: index, Len: len(tokens)}
	}
	return tokens[index], nil
}
