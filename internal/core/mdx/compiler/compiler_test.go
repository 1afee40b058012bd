package compiler_test

import (
	"strings"
	"testing"

	"github.com/satishbabariya/olap-go/internal/core/mdx/compiler"
	"github.com/satishbabariya/olap-go/internal/core/mdx/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func groups(elements ...string) *domain.DimensionGroups {
	g := domain.NewDimensionGroups()
	for _, e := range elements {
		g.Add(e)
	}
	return g
}

func TestUnion(t *testing.T) {
	tests := []struct {
		name     string
		elements []string
		want     string
	}{
		{
			name:     "single element",
			elements: []string{"[Time].[2020]"},
			want:     "[Time].[2020]",
		},
		{
			name:     "two elements",
			elements: []string{"[Time].[2020]", "[Time].[2021]"},
			want:     "Union([Time].[2020], [Time].[2021])",
		},
		{
			name:     "right nested",
			elements: []string{"a", "b", "c"},
			want:     "Union(a, Union(b, c))",
		},
		{
			name:     "measures flat set",
			elements: []string{"[Measures].[m1]", "[Measures].[m2]"},
			want:     "{[Measures].[m1], [Measures].[m2]}",
		},
		{
			name:     "single measure",
			elements: []string{"[Measures].[m1]"},
			want:     "{[Measures].[m1]}",
		},
		{
			name:     "empty",
			elements: nil,
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compiler.Union(tt.elements))
		})
	}
}

func TestCrossjoin(t *testing.T) {
	assert.Equal(t, "X", compiler.Crossjoin([]string{"X"}))
	assert.Equal(t, "Crossjoin(X, Y)", compiler.Crossjoin([]string{"X", "Y"}))
	assert.Equal(t, "Crossjoin(X, Crossjoin(Y, Z))", compiler.Crossjoin([]string{"X", "Y", "Z"}))
}

func TestHierarchize(t *testing.T) {
	assert.Equal(t, "Hierarchize(Union(a, b))", compiler.Hierarchize("Union(a, b)"))
}

func TestCompileAxis(t *testing.T) {
	tests := []struct {
		name   string
		groups *domain.DimensionGroups
		want   string
	}{
		{
			name:   "hierarchized union",
			groups: groups("[Geo].[a]", "[Geo].[b]", "[Geo].[c]"),
			want:   "Hierarchize(Union([Geo].[a], Union([Geo].[b], [Geo].[c])))",
		},
		{
			name:   "measures never hierarchized",
			groups: groups("[Measures].[m1]", "[Measures].[m2]"),
			want:   "{[Measures].[m1], [Measures].[m2]}",
		},
		{
			name:   "crossjoin in first-seen order",
			groups: groups("[Time].[2020]", "[Measures].[m1]", "[Time].[2021]"),
			want:   "Crossjoin(Hierarchize(Union([Time].[2020], [Time].[2021])), {[Measures].[m1]})",
		},
		{
			name:   "element without separator is its own dimension",
			groups: groups("[Margin]", "[Geo].[US]"),
			want:   "Crossjoin([Margin], [Geo].[US])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, compiler.CompileAxis(tt.groups))
		})
	}
}

func TestCompile_DoesNotMutate(t *testing.T) {
	q := domain.NewQuery("[Sales]")
	q.Columns.Add("[Measures].[Amount]")
	q.Rows.Add("[Time].[2020]")
	q.Rows.Add("[Time].[2021]")

	comp := compiler.NewMDXCompiler()
	first, err := comp.Compile(q)
	require.NoError(t, err)
	second, err := comp.Compile(q)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, len(q.Rows.Groups()[0].Elements))
}

func TestCompile_EmptyAxisError(t *testing.T) {
	comp := compiler.NewMDXCompiler()

	q := domain.NewQuery("[Sales]")
	_, err := comp.Compile(q)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyAxis)
	assert.Contains(t, err.Error(), "COL")

	q.Columns.Add("[Measures].[Amount]")
	_, err = comp.Compile(q)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmptyAxis)
	assert.Contains(t, err.Error(), "ROW")
}

func TestCompile_FilterNeverNonEmpty(t *testing.T) {
	q := domain.NewQuery("[Sales]")
	q.NonEmpty = true
	q.Columns.Add("[Measures].[Amount]")
	q.Rows.Add("[Time].[2020]")
	q.Filters.Add("[Geo].[US]")
	q.Filters.Add("[Geo].[FR]")

	mdx, err := compiler.NewMDXCompiler().Compile(q)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(mdx, " FROM [Sales] WHERE Hierarchize(Union([Geo].[US], [Geo].[FR]))"))
	assert.Equal(t, 2, strings.Count(mdx, "NON EMPTY"))
}

func TestCrossjoin_LongChain(t *testing.T) {
	sets := make([]string, 5000)
	for i := range sets {
		sets[i] = "s"
	}

	out := compiler.Crossjoin(sets)
	assert.Equal(t, 4999, strings.Count(out, "Crossjoin("))
	assert.True(t, strings.HasSuffix(out, "s"+strings.Repeat(")", 4999)))
}
