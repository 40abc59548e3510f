package stops

import (
	"strconv"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Document is a tabular file of points: a header row followed by one
// LatLong per line.
type Document struct {
	Header []string
	Rows   []LatLong
}

// NewDocument creates a Document owning copies of header and rows.
func NewDocument(header []string, rows []LatLong) *Document {
	return &Document{
		Header: append([]string(nil), header...),
		Rows:   append([]LatLong(nil), rows...),
	}
}

// Node returns the document as a Shape AST:
//   - *ast.ArrayDataNode for the file (header first, then one record per row)
//   - each record is an *ast.ArrayDataNode of *ast.LiteralNode string fields
//
// Coordinates are written with the shortest representation that reads back
// to the same float64, keeping at least one decimal ("49.0", not "49").
func (d *Document) Node() *ast.ArrayDataNode {
	records := make([]ast.SchemaNode, 0, len(d.Rows)+1)
	records = append(records, literalRecord(d.Header...))
	for _, row := range d.Rows {
		records = append(records, literalRecord(
			FormatCoordinate(row.Latitude),
			FormatCoordinate(row.Longitude),
		))
	}
	return ast.NewArrayDataNode(records, ast.ZeroPosition())
}

// Render writes the document as comma delimited text.
func (d *Document) Render() ([]byte, error) {
	return Render(d.Node(), ',')
}

// FormatCoordinate formats a coordinate component for output.
func FormatCoordinate(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

func literalRecord(values ...string) *ast.ArrayDataNode {
	fields := make([]ast.SchemaNode, len(values))
	for i, v := range values {
		fields[i] = ast.NewLiteralNode(v, ast.ZeroPosition())
	}
	return ast.NewArrayDataNode(fields, ast.ZeroPosition())
}
