// Package definition loads query definitions from files and replays them
// into a query builder.
package definition

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/satishbabariya/olap-go/internal/core/mdx/builder"
	"github.com/satishbabariya/olap-go/internal/core/mdx/domain"
)

var (
	// ErrMissingCube is returned when a definition names no cube.
	ErrMissingCube = errors.New("missing cube")

	// ErrUnknownFormat is returned for files that are neither DSL nor YAML.
	ErrUnknownFormat = errors.New("unknown definition format")

	// ErrSyntax is returned when a DSL or YAML document cannot be parsed.
	ErrSyntax = errors.New("syntax error")
)

// Definition is a format-neutral description of a query.
// Elements are kept in registration order.
type Definition struct {
	Version      string        `yaml:"version,omitempty"`
	Cube         string        `yaml:"cube"`
	NonEmpty     bool          `yaml:"nonEmpty,omitempty"`
	DrillThrough *DrillThrough `yaml:"drillThrough,omitempty"`
	Elements     []Element     `yaml:"elements"`
}

// DrillThrough holds the drill-through modifiers.
type DrillThrough struct {
	Enabled     bool `yaml:"enabled"`
	MaxRows     *int `yaml:"maxRows,omitempty"`
	FirstRowSet *int `yaml:"firstRowSet,omitempty"`
}

// Element is one axis registration. A non-empty Formula makes it a
// calculated member.
type Element struct {
	Name    string `yaml:"name"`
	Formula string `yaml:"formula,omitempty"`
	Axis    string `yaml:"axis"`
}

// IsCalculated reports whether the element defines a calculated member.
func (e Element) IsCalculated() bool {
	return e.Formula != ""
}

// ElementError reports a registration that the builder rejected.
type ElementError struct {
	Index int
	Name  string
	Err   error
}

// Error implements the error interface.
func (e *ElementError) Error() string {
	return fmt.Sprintf("element %d (%s): %v", e.Index, e.Name, e.Err)
}

// Unwrap returns the underlying error.
func (e *ElementError) Unwrap() error {
	return e.Err
}

// Build replays the definition into a new query builder.
func (d *Definition) Build() (*builder.QueryBuilder, error) {
	if strings.TrimSpace(d.Cube) == "" {
		return nil, ErrMissingCube
	}
	if err := CheckVersion(d.Version); err != nil {
		return nil, err
	}

	b := builder.NewQueryBuilder(d.Cube)
	b.SetNonEmpty(d.NonEmpty)
	if d.DrillThrough != nil {
		b.SetDrillThrough(d.DrillThrough.Enabled, d.DrillThrough.MaxRows, d.DrillThrough.FirstRowSet)
	}

	for i, el := range d.Elements {
		axis := domain.Axis(el.Axis)

		var err error
		if el.IsCalculated() {
			err = b.AddCalculatedMember(el.Name, el.Formula, axis)
		} else {
			err = b.AddElement(el.Name, axis)
		}
		if err != nil {
			return nil, &ElementError{Index: i, Name: el.Name, Err: err}
		}
	}

	return b, nil
}

// Reader reads raw definition files.
type Reader interface {
	Read(ctx context.Context, path string) ([]byte, error)
}

// Load reads a definition and parses it according to its extension:
// .yaml/.yml as YAML, .mdxq (or no extension) as DSL.
func Load(ctx context.Context, r Reader, path string) (*Definition, error) {
	content, err := r.Read(ctx, path)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(content)
	case ".mdxq", "":
		return ParseDSL(path, content)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}
