package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/satishbabariya/olap-go/internal/adapters/storage"
	"github.com/satishbabariya/olap-go/internal/core/layout"
	"github.com/satishbabariya/olap-go/internal/core/xmla"
	"github.com/satishbabariya/olap-go/internal/debug"
)

// ResultService reads response documents and renders them.
type ResultService struct {
	store storage.Storage
}

// NewResultService creates a new result service.
func NewResultService(store storage.Storage) *ResultService {
	return &ResultService{
		store: store,
	}
}

// LoadTabular parses a tabular response document.
func (s *ResultService) LoadTabular(ctx context.Context, path string, ignoreFirstRow bool) (*xmla.ResultSet, error) {
	rc, err := s.store.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	var opts []xmla.Option
	if ignoreFirstRow {
		opts = append(opts, xmla.WithIgnoreFirstRow())
	}

	rs, err := xmla.ParseTabular(rc, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	debug.Debug("Parsed tabular result", "path", path, "columns", len(rs.Columns), "rows", len(rs.Rows))
	return rs, nil
}

// LoadAxes parses the axes of a multidimensional response document.
func (s *ResultService) LoadAxes(ctx context.Context, path string) ([]xmla.Axis, error) {
	rc, err := s.store.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	axes, err := xmla.ParseAxes(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return axes, nil
}

// Render renders a result set as "html" or "markdown".
func (s *ResultService) Render(rs *xmla.ResultSet, format string) (string, error) {
	switch format {
	case "html":
		return layout.HTMLTable(rs), nil
	case "markdown":
		return layout.Markdown(rs), nil
	default:
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
}

// AxisRows flattens axes into a member table: axis, tuple, member and level.
func AxisRows(axes []xmla.Axis) ([]string, [][]string) {
	headers := []string{"Axis", "Tuple", "Member", "Caption", "Level"}
	var rows [][]string
	for _, axis := range axes {
		for i, tuple := range axis.Tuples {
			for _, m := range tuple {
				rows = append(rows, []string{
					axis.Name,
					strconv.Itoa(i),
					m.UniqueName,
					m.Caption,
					m.LevelTrueName,
				})
			}
		}
	}
	return headers, rows
}
