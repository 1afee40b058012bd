// Package xmla interprets XML for Analysis response documents.
package xmla

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrMalformedDocument is returned when a response document cannot be read.
var ErrMalformedDocument = errors.New("malformed response document")

// Column describes one column of a tabular result.
type Column struct {
	// Name is the element name used by each row for this column.
	Name string
	// Field is the source field (sql:field), used as the column header.
	Field string
}

// Header returns the column header.
func (c Column) Header() string {
	if c.Field != "" {
		return c.Field
	}
	return c.Name
}

// Cell is one value of a row.
type Cell struct {
	Name  string
	Value string
}

// Row is an ordered mapping from column name to value.
type Row struct {
	Cells []Cell
}

// Get returns the value stored under a column name.
func (r Row) Get(name string) (string, bool) {
	for _, c := range r.Cells {
		if c.Name == name {
			return c.Value, true
		}
	}
	return "", false
}

// Values returns the cell values in document order.
func (r Row) Values() []string {
	values := make([]string, len(r.Cells))
	for i, c := range r.Cells {
		values[i] = c.Value
	}
	return values
}

// ResultSet is a tabular (rowset) result, as returned for drill-through queries.
type ResultSet struct {
	CubeName string
	Columns  []Column
	Rows     []Row
}

// Headers returns the column headers in schema order.
func (rs *ResultSet) Headers() []string {
	headers := make([]string, len(rs.Columns))
	for i, c := range rs.Columns {
		headers[i] = c.Header()
	}
	return headers
}

type parseOptions struct {
	ignoreFirstRow bool
}

// Option configures ParseTabular.
type Option func(*parseOptions)

// WithIgnoreFirstRow skips the first row of the result.
func WithIgnoreFirstRow() Option {
	return func(o *parseOptions) {
		o.ignoreFirstRow = true
	}
}

// ParseTabular reads a tabular result. Columns come from the first sequence
// of the schema complexType named "row"; every "row" element becomes a Row.
func ParseTabular(r io.Reader, opts ...Option) (*ResultSet, error) {
	var o parseOptions
	for _, opt := range opts {
		opt(&o)
	}

	rs := &ResultSet{
		Columns: []Column{},
		Rows:    []Row{},
	}
	dec := xml.NewDecoder(r)

	var (
		inRowType   bool
		inSequence  bool
		columnsRead bool
		skipped     bool
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch {
			case inSequence && t.Name.Local == "element":
				rs.Columns = append(rs.Columns, Column{
					Name:  attr(t, "name"),
					Field: attr(t, "field"),
				})
				if err := dec.Skip(); err != nil {
					return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
				}

			case inRowType && !columnsRead && t.Name.Local == "sequence":
				inSequence = true

			case !columnsRead && t.Name.Local == "complexType" && attr(t, "name") == "row":
				inRowType = true

			case t.Name.Local == "row":
				row, err := readRow(dec, t)
				if err != nil {
					return nil, err
				}
				if o.ignoreFirstRow && !skipped {
					skipped = true
					continue
				}
				rs.Rows = append(rs.Rows, row)

			case t.Name.Local == "CubeName":
				name, err := readText(dec, t)
				if err != nil {
					return nil, err
				}
				rs.CubeName = name
			}

		case xml.EndElement:
			switch {
			case inSequence && t.Name.Local == "sequence":
				inSequence = false
				columnsRead = true
			case inRowType && t.Name.Local == "complexType":
				inRowType = false
			}
		}
	}

	return rs, nil
}

// readRow reads the children of a row element as cells.
func readRow(dec *xml.Decoder, start xml.StartElement) (Row, error) {
	row := Row{Cells: []Cell{}}
	for {
		tok, err := dec.Token()
		if err != nil {
			return Row{}, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			value, err := readText(dec, t)
			if err != nil {
				return Row{}, err
			}
			row.Cells = append(row.Cells, Cell{Name: t.Name.Local, Value: value})
		case xml.EndElement:
			if t.Name == start.Name {
				return row, nil
			}
		}
	}
}

// readText returns the concatenated character data below start and consumes
// its end element.
func readText(dec *xml.Decoder, start xml.StartElement) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			return "", fmt.Errorf("%w: reading <%s>: %v", ErrMalformedDocument, start.Name.Local, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		case xml.CharData:
			sb.Write(t)
		}
	}
	return sb.String(), nil
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}
