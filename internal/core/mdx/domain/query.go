// Package domain contains the core entities of the MDX query domain.
package domain

import "strings"

// Query represents the accumulated state of an MDX query.
type Query struct {
	Cube                    string
	Rows                    *DimensionGroups
	Columns                 *DimensionGroups
	Filters                 *DimensionGroups
	CalculatedMembers       []CalculatedMember
	NonEmpty                bool
	DrillThrough            bool
	DrillThroughMaxRows     *int // nil when not set
	DrillThroughFirstRowSet *int // nil when not set
}

// NewQuery creates an empty query against a cube.
func NewQuery(cube string) *Query {
	return &Query{
		Cube:    cube,
		Rows:    NewDimensionGroups(),
		Columns: NewDimensionGroups(),
		Filters: NewDimensionGroups(),
	}
}

// Axis returns the dimension groups registered on an axis.
func (q *Query) Axis(axis Axis) (*DimensionGroups, error) {
	switch axis {
	case Row:
		return q.Rows, nil
	case Col:
		return q.Columns, nil
	case Filter:
		return q.Filters, nil
	default:
		return nil, &AxisError{Axis: string(axis), Err: ErrInvalidAxis}
	}
}

// Clone returns a deep copy of the query.
func (q *Query) Clone() *Query {
	clone := &Query{
		Cube:              q.Cube,
		Rows:              q.Rows.Clone(),
		Columns:           q.Columns.Clone(),
		Filters:           q.Filters.Clone(),
		CalculatedMembers: append([]CalculatedMember(nil), q.CalculatedMembers...),
		NonEmpty:          q.NonEmpty,
		DrillThrough:      q.DrillThrough,
	}
	if q.DrillThroughMaxRows != nil {
		n := *q.DrillThroughMaxRows
		clone.DrillThroughMaxRows = &n
	}
	if q.DrillThroughFirstRowSet != nil {
		n := *q.DrillThroughFirstRowSet
		clone.DrillThroughFirstRowSet = &n
	}
	return clone
}

// CalculatedMember is a member defined inline by a WITH MEMBER clause.
type CalculatedMember struct {
	Name    string
	Formula string
}

// Axis identifies the query axis an element is placed on.
type Axis string

const (
	// Row places elements on the ROWS axis.
	Row Axis = "ROW"
	// Col places elements on the COLUMNS axis.
	Col Axis = "COL"
	// Filter places elements on the slicer (WHERE) axis.
	Filter Axis = "FILTER"
)

// Valid reports whether the axis is one of ROW, COL or FILTER.
func (a Axis) Valid() bool {
	return a == Row || a == Col || a == Filter
}

// ParseAxis converts an axis token into an Axis.
// Matching is exact; "row" is not accepted.
func ParseAxis(s string) (Axis, error) {
	axis := Axis(s)
	if !axis.Valid() {
		return "", &AxisError{Axis: s, Err: ErrInvalidAxis}
	}
	return axis, nil
}

const (
	// MeasuresDimension is the unique name of the measures dimension.
	MeasuresDimension = "[Measures]"

	// DimensionSeparator separates the dimension from the rest of a unique name.
	DimensionSeparator = "."
)

// DimensionUniqueName returns the part of an element unique name before the
// first separator. An element without a separator is its own dimension.
func DimensionUniqueName(element string) string {
	if i := strings.Index(element, DimensionSeparator); i >= 0 {
		return element[:i]
	}
	return element
}

// IsMeasures reports whether a dimension unique name is the measures dimension.
func IsMeasures(dimension string) bool {
	return dimension == MeasuresDimension
}
