package stops

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/shapestone/shape-core/pkg/ast"
)

// Render converts an AST node to delimited text.
//
// The node is a file (array of records) or a single record (array of
// literal fields), as built by Document.Node. Fields containing the
// delimiter are wrapped in double quotes; fields containing a quote or a
// line break cannot be read back by Tokenize and fail with ErrUnrenderable.
// Every record ends with "\n".
func Render(node ast.SchemaNode, delim rune) ([]byte, error) {
	if node == nil {
		return []byte{}, nil
	}

	var buf bytes.Buffer
	if err := renderNode(node, &buf, delim); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderStops writes header and stops in the DefaultStopLayout column order.
//
// Example output:
//
//	number,connections,lat,long
//	51916,"[044,084]",49.273342,-123.239004
func RenderStops(header []string, stops []BusStop) ([]byte, error) {
	records := make([]ast.SchemaNode, 0, len(stops)+1)
	records = append(records, literalRecord(header...))
	for _, s := range stops {
		records = append(records, literalRecord(
			strconv.Itoa(s.Number),
			"["+strings.Join(s.Connections, ",")+"]",
			FormatCoordinate(s.Coordinates.Latitude),
			FormatCoordinate(s.Coordinates.Longitude),
		))
	}
	return Render(ast.NewArrayDataNode(records, ast.ZeroPosition()), ',')
}

// renderNode recursively renders an AST node to the buffer.
func renderNode(node ast.SchemaNode, buf *bytes.Buffer, delim rune) error {
	switch n := node.(type) {
	case *ast.ArrayDataNode:
		return renderArrayData(n, buf, delim)
	case *ast.LiteralNode:
		return renderLiteral(n, buf, delim)
	default:
		return fmt.Errorf("unsupported node type for rendering: %T", node)
	}
}

// renderArrayData renders a file (array of records) or a record (array of fields).
func renderArrayData(node *ast.ArrayDataNode, buf *bytes.Buffer, delim rune) error {
	elements := node.Elements()
	if len(elements) == 0 {
		buf.WriteByte('\n')
		return nil
	}

	switch elements[0].(type) {
	case *ast.ArrayDataNode:
		for _, elem := range elements {
			rec, ok := elem.(*ast.ArrayDataNode)
			if !ok {
				return fmt.Errorf("unexpected record type in file: %T", elem)
			}
			if err := renderArrayData(rec, buf, delim); err != nil {
				return err
			}
		}
		return nil

	case *ast.LiteralNode:
		for i, elem := range elements {
			if i > 0 {
				buf.WriteRune(delim)
			}
			if err := renderNode(elem, buf, delim); err != nil {
				return err
			}
		}
		buf.WriteByte('\n')
		return nil

	default:
		return fmt.Errorf("unexpected element type in array: %T", elements[0])
	}
}

// renderLiteral renders a LiteralNode as one field.
func renderLiteral(node *ast.LiteralNode, buf *bytes.Buffer, delim rune) error {
	var value string
	switch v := node.Value().(type) {
	case string:
		value = v
	case nil:
		value = ""
	default:
		value = fmt.Sprintf("%v", v)
	}

	if strings.ContainsAny(value, "\"\r\n") {
		return fmt.Errorf("render %q: %w", value, ErrUnrenderable)
	}

	if strings.ContainsRune(value, delim) {
		buf.WriteByte('"')
		buf.WriteString(value)
		buf.WriteByte('"')
	} else {
		buf.WriteString(value)
	}
	return nil
}
