// Package compiler implements MDX compilation from queries.
package compiler

import (
	"strconv"
	"strings"

	"github.com/satishbabariya/olap-go/internal/core/mdx/domain"
)

// MDXCompiler turns accumulated query state into an MDX statement.
// It never mutates the query it compiles.
type MDXCompiler struct{}

// NewMDXCompiler creates a new MDX compiler.
func NewMDXCompiler() *MDXCompiler {
	return &MDXCompiler{}
}

// Compile compiles a query to an MDX string.
func (c *MDXCompiler) Compile(query *domain.Query) (string, error) {
	if query.Columns.Len() == 0 {
		return "", &domain.AxisError{Axis: string(domain.Col), Err: domain.ErrEmptyAxis}
	}
	if query.Rows.Len() == 0 {
		return "", &domain.AxisError{Axis: string(domain.Row), Err: domain.ErrEmptyAxis}
	}

	nonEmpty := ""
	if query.NonEmpty {
		nonEmpty = "NON EMPTY "
	}

	var sb strings.Builder

	// WITH clause
	if len(query.CalculatedMembers) > 0 {
		sb.WriteString("WITH ")
		for _, member := range query.CalculatedMembers {
			sb.WriteString("MEMBER ")
			sb.WriteString(member.Name)
			sb.WriteString(" AS ")
			sb.WriteString(member.Formula)
			sb.WriteString(" ")
		}
	}

	// Drill-through modifiers
	if query.DrillThrough {
		sb.WriteString("DRILLTHROUGH ")
	}
	if query.DrillThroughMaxRows != nil {
		sb.WriteString("MAXROWS ")
		sb.WriteString(strconv.Itoa(*query.DrillThroughMaxRows))
		sb.WriteString(" ")
	}
	if query.DrillThroughFirstRowSet != nil {
		sb.WriteString("FIRSTROWSET ")
		sb.WriteString(strconv.Itoa(*query.DrillThroughFirstRowSet))
		sb.WriteString(" ")
	}

	sb.WriteString("SELECT ")
	sb.WriteString(nonEmpty)
	sb.WriteString(CompileAxis(query.Columns))
	sb.WriteString(" ON COLUMNS, ")
	sb.WriteString(nonEmpty)
	sb.WriteString(CompileAxis(query.Rows))
	sb.WriteString(" ON ROWS")
	sb.WriteString(" FROM ")
	sb.WriteString(query.Cube)

	// Slicer
	if query.Filters.Len() > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(CompileAxis(query.Filters))
	}

	return sb.String(), nil
}

// CompileAxis renders the set expression of one axis. Groups are combined
// with Crossjoin in first-seen order. An empty collection renders as "".
func CompileAxis(groups *domain.DimensionGroups) string {
	parts := make([]string, 0, groups.Len())
	for _, group := range groups.Groups() {
		union := Union(group.Elements)
		if len(group.Elements) > 1 && !domain.IsMeasures(group.Dimension) {
			union = Hierarchize(union)
		}
		parts = append(parts, union)
	}
	return Crossjoin(parts)
}

// Union combines the elements of one dimension. Measures render as a flat
// set; other dimensions as right-nested Union calls.
func Union(elements []string) string {
	if len(elements) == 0 {
		return ""
	}
	if domain.IsMeasures(domain.DimensionUniqueName(elements[0])) {
		return "{" + strings.Join(elements, ", ") + "}"
	}
	return foldRight("Union", elements)
}

// Crossjoin combines set expressions of distinct dimensions as right-nested
// Crossjoin calls. A single expression is returned as is.
func Crossjoin(sets []string) string {
	return foldRight("Crossjoin", sets)
}

// Hierarchize wraps a set expression in Hierarchize().
func Hierarchize(set string) string {
	return "Hierarchize(" + set + ")"
}

// foldRight renders fn(a, fn(b, c)) for [a, b, c] without recursion.
func foldRight(fn string, items []string) string {
	if len(items) == 0 {
		return ""
	}

	// Open calls left to right, then close them all after the last item.
	var sb strings.Builder
	for _, item := range items[:len(items)-1] {
		sb.WriteString(fn)
		sb.WriteString("(")
		sb.WriteString(item)
		sb.WriteString(", ")
	}
	sb.WriteString(items[len(items)-1])
	sb.WriteString(strings.Repeat(")", len(items)-1))
	return sb.String()
}
