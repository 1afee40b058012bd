// Package service implements the query and result services.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/satishbabariya/olap-go/internal/adapters/storage"
	"github.com/satishbabariya/olap-go/internal/core/mdx/definition"
	"github.com/satishbabariya/olap-go/internal/core/mdx/domain"
	"github.com/satishbabariya/olap-go/internal/debug"
	"github.com/satishbabariya/olap-go/internal/repository"
)

// ErrHistoryDisabled is returned by history operations when no history
// repository is configured.
var ErrHistoryDisabled = errors.New("query history is disabled")

// Compiled is the outcome of compiling a definition.
type Compiled struct {
	Definition *definition.Definition
	Query      *domain.Query
	MDX        string
}

// QueryService orchestrates loading, compiling and recording queries.
type QueryService struct {
	store   storage.Storage
	history repository.HistoryRepository
}

// NewQueryService creates a new query service. history may be nil.
func NewQueryService(store storage.Storage, history repository.HistoryRepository) *QueryService {
	return &QueryService{
		store:   store,
		history: history,
	}
}

// BuildFile loads a definition file and compiles it.
func (s *QueryService) BuildFile(ctx context.Context, path string) (*Compiled, error) {
	debug.Debug("Loading definition", "path", path)

	def, err := definition.Load(ctx, s.store, path)
	if err != nil {
		debug.Error("Failed to load definition", "path", path, "error", err)
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	return s.Build(def)
}

// Build compiles a definition.
func (s *QueryService) Build(def *definition.Definition) (*Compiled, error) {
	b, err := def.Build()
	if err != nil {
		return nil, err
	}

	mdx, err := b.ToQueryString()
	if err != nil {
		return nil, err
	}

	debug.Debug("Compiled query", "cube", def.Cube, "elements", len(def.Elements), "length", len(mdx))

	return &Compiled{
		Definition: def,
		Query:      b.GetQuery(),
		MDX:        mdx,
	}, nil
}

// Explain compiles a definition file and describes it as Markdown.
func (s *QueryService) Explain(ctx context.Context, path string) (string, error) {
	compiled, err := s.BuildFile(ctx, path)
	if err != nil {
		return "", err
	}
	return Describe(compiled), nil
}

// Describe renders a compiled query as Markdown.
func Describe(c *Compiled) string {
	q := c.Query

	var sb strings.Builder
	fmt.Fprintf(&sb, "# Query on `%s`\n\n", q.Cube)

	var modifiers []string
	if q.NonEmpty {
		modifiers = append(modifiers, "non empty")
	}
	if q.DrillThrough {
		modifiers = append(modifiers, "drill-through")
	}
	if q.DrillThroughMaxRows != nil {
		modifiers = append(modifiers, fmt.Sprintf("max rows %d", *q.DrillThroughMaxRows))
	}
	if q.DrillThroughFirstRowSet != nil {
		modifiers = append(modifiers, fmt.Sprintf("first row set %d", *q.DrillThroughFirstRowSet))
	}
	if len(modifiers) > 0 {
		fmt.Fprintf(&sb, "Modifiers: %s\n\n", strings.Join(modifiers, ", "))
	}

	describeAxis(&sb, "Columns", q.Columns)
	describeAxis(&sb, "Rows", q.Rows)
	describeAxis(&sb, "Filter", q.Filters)

	if len(q.CalculatedMembers) > 0 {
		sb.WriteString("## Calculated members\n\n")
		for _, m := range q.CalculatedMembers {
			fmt.Fprintf(&sb, "- `%s` = `%s`\n", m.Name, m.Formula)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## MDX\n\n```sql\n")
	sb.WriteString(c.MDX)
	sb.WriteString("\n```\n")
	return sb.String()
}

func describeAxis(sb *strings.Builder, title string, groups *domain.DimensionGroups) {
	if groups.Len() == 0 {
		return
	}
	fmt.Fprintf(sb, "## %s\n\n", title)
	for _, g := range groups.Groups() {
		fmt.Fprintf(sb, "- `%s`: %s\n", g.Dimension, quoteAll(g.Elements))
	}
	sb.WriteString("\n")
}

func quoteAll(items []string) string {
	quoted := make([]string, len(items))
	for i, item := range items {
		quoted[i] = "`" + item + "`"
	}
	return strings.Join(quoted, ", ")
}

// Record stores a compiled query in the history.
func (s *QueryService) Record(ctx context.Context, name string, c *Compiled) error {
	if s.history == nil {
		return ErrHistoryDisabled
	}

	entry := &domain.CompiledQuery{
		Name: name,
		Cube: c.Query.Cube,
		MDX:  c.MDX,
	}
	if err := s.history.Record(ctx, entry); err != nil {
		return err
	}

	debug.Info("Recorded query", "name", name, "cube", entry.Cube)
	return nil
}

// History returns recently recorded queries.
func (s *QueryService) History(ctx context.Context, limit int) ([]*domain.CompiledQuery, error) {
	if s.history == nil {
		return nil, ErrHistoryDisabled
	}
	return s.history.List(ctx, limit)
}
