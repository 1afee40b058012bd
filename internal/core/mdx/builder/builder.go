// Package builder implements the MDX query builder.
package builder

import (
	"github.com/satishbabariya/olap-go/internal/core/mdx/compiler"
	"github.com/satishbabariya/olap-go/internal/core/mdx/domain"
)

// QueryBuilder accumulates axis registrations against one cube.
// It is not safe for concurrent use.
type QueryBuilder struct {
	query    *domain.Query
	compiler *compiler.MDXCompiler
}

// NewQueryBuilder creates a new query builder for a cube unique name.
func NewQueryBuilder(cube string) *QueryBuilder {
	return &QueryBuilder{
		query:    domain.NewQuery(cube),
		compiler: compiler.NewMDXCompiler(),
	}
}

// AddElement registers an element unique name on an axis.
func (b *QueryBuilder) AddElement(element string, axis domain.Axis) error {
	groups, err := b.query.Axis(axis)
	if err != nil {
		return err
	}
	groups.Add(element)
	return nil
}

// AddCalculatedMember records a WITH MEMBER definition and registers the
// member on an axis like any other element.
func (b *QueryBuilder) AddCalculatedMember(element, formula string, axis domain.Axis) error {
	if !axis.Valid() {
		return &domain.AxisError{Axis: string(axis), Err: domain.ErrInvalidAxis}
	}
	b.query.CalculatedMembers = append(b.query.CalculatedMembers, domain.CalculatedMember{
		Name:    element,
		Formula: formula,
	})
	return b.AddElement(element, axis)
}

// SetNonEmpty toggles NON EMPTY on the COLUMNS and ROWS axes.
func (b *QueryBuilder) SetNonEmpty(nonEmpty bool) *QueryBuilder {
	b.query.NonEmpty = nonEmpty
	return b
}

// SetDrillThrough toggles DRILLTHROUGH. maxRows and firstRowSet are optional
// and stored as given.
func (b *QueryBuilder) SetDrillThrough(drillThrough bool, maxRows, firstRowSet *int) *QueryBuilder {
	b.query.DrillThrough = drillThrough
	b.query.DrillThroughMaxRows = copyInt(maxRows)
	b.query.DrillThroughFirstRowSet = copyInt(firstRowSet)
	return b
}

// NonEmpty returns whether NON EMPTY is set.
func (b *QueryBuilder) NonEmpty() bool {
	return b.query.NonEmpty
}

// IsDrillThrough returns whether DRILLTHROUGH is set.
func (b *QueryBuilder) IsDrillThrough() bool {
	return b.query.DrillThrough
}

// ToQueryString compiles the accumulated state to MDX.
func (b *QueryBuilder) ToQueryString() (string, error) {
	return b.compiler.Compile(b.query)
}

// GetQuery returns a copy of the accumulated query.
func (b *QueryBuilder) GetQuery() *domain.Query {
	return b.query.Clone()
}

// Int returns a pointer to n, for use with SetDrillThrough.
func Int(n int) *int {
	return &n
}

func copyInt(n *int) *int {
	if n == nil {
		return nil
	}
	return Int(*n)
}
