package definition

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/satishbabariya/olap-go/internal/core/mdx/domain"
)

// rawFile is the parse tree of a definition file.
type rawFile struct {
	Pos        lexer.Position
	Statements []*rawStatement `@@*`
}

type rawStatement struct {
	Pos          lexer.Position
	Version      *string          `  "version" @String`
	Cube         *string          `| "cube" @Member`
	NonEmpty     bool             `| @("non" "empty")`
	DrillThrough *rawDrillThrough `| @@`
	MaxRows      *int             `| "maxrows" @Number`
	FirstRowSet  *int             `| "firstrowset" @Number`
	Member       *rawMember       `| @@`
	Axis         *rawAxis         `| @@`
}

type rawDrillThrough struct {
	Keyword     string `@"drillthrough"`
	MaxRows     *int   `( "maxrows" @Number )?`
	FirstRowSet *int   `( "firstrowset" @Number )?`
}

type rawMember struct {
	Name    string `"member" @Member`
	Formula string `"as" @String`
	Axis    string `( "on" @("columns" | "rows") | @"where" )`
}

type rawAxis struct {
	Axis    string   `( "on" @("columns" | "rows") | @"where" )`
	Members []string `@Member ( "," @Member )*`
}

var parser = participle.MustBuild[rawFile](
	participle.Lexer(QueryLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.CaseInsensitive("Keyword"),
	participle.UseLookahead(2),
)

// ParseDSL parses a definition written in the query definition language.
func ParseDSL(filename string, content []byte) (*Definition, error) {
	raw, err := parser.Parse(filename, bytes.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}
	return convertRawFile(filename, raw)
}

func convertRawFile(filename string, raw *rawFile) (*Definition, error) {
	def := &Definition{}

	for _, stmt := range raw.Statements {
		switch {
		case stmt.Version != nil:
			def.Version = *stmt.Version
		case stmt.Cube != nil:
			def.Cube = *stmt.Cube
		case stmt.NonEmpty:
			def.NonEmpty = true
		case stmt.DrillThrough != nil:
			dt := drillThrough(def)
			dt.Enabled = true
			if stmt.DrillThrough.MaxRows != nil {
				dt.MaxRows = stmt.DrillThrough.MaxRows
			}
			if stmt.DrillThrough.FirstRowSet != nil {
				dt.FirstRowSet = stmt.DrillThrough.FirstRowSet
			}
		case stmt.MaxRows != nil:
			drillThrough(def).MaxRows = stmt.MaxRows
		case stmt.FirstRowSet != nil:
			drillThrough(def).FirstRowSet = stmt.FirstRowSet
		case stmt.Member != nil:
			def.Elements = append(def.Elements, Element{
				Name:    stmt.Member.Name,
				Formula: stmt.Member.Formula,
				Axis:    string(axisFromKeyword(stmt.Member.Axis)),
			})
		case stmt.Axis != nil:
			axis := axisFromKeyword(stmt.Axis.Axis)
			for _, member := range stmt.Axis.Members {
				def.Elements = append(def.Elements, Element{Name: member, Axis: string(axis)})
			}
		}
	}

	if def.Cube == "" {
		return nil, fmt.Errorf("%w in %s", ErrMissingCube, filename)
	}
	return def, nil
}

// drillThrough returns the definition's drill-through modifiers, creating
// them disabled if absent.
func drillThrough(def *Definition) *DrillThrough {
	if def.DrillThrough == nil {
		def.DrillThrough = &DrillThrough{}
	}
	return def.DrillThrough
}

func axisFromKeyword(keyword string) domain.Axis {
	switch strings.ToLower(keyword) {
	case "columns":
		return domain.Col
	case "rows":
		return domain.Row
	default:
		return domain.Filter
	}
}

func keywordFromAxis(axis string) (string, error) {
	switch domain.Axis(axis) {
	case domain.Col:
		return "on columns", nil
	case domain.Row:
		return "on rows", nil
	case domain.Filter:
		return "where", nil
	default:
		return "", &domain.AxisError{Axis: axis, Err: domain.ErrInvalidAxis}
	}
}

// FormatDSL renders a definition in the query definition language.
// Consecutive plain elements on the same axis share one statement.
func FormatDSL(def *Definition) (string, error) {
	var sb strings.Builder

	if def.Version != "" {
		sb.WriteString("version " + strconv.Quote(def.Version) + "\n")
	}
	sb.WriteString("cube " + def.Cube + "\n")
	if def.NonEmpty {
		sb.WriteString("non empty\n")
	}
	if dt := def.DrillThrough; dt != nil {
		// MAXROWS and FIRSTROWSET apply without DRILLTHROUGH too
		var modifiers []string
		if dt.Enabled {
			modifiers = append(modifiers, "drillthrough")
		}
		if dt.MaxRows != nil {
			modifiers = append(modifiers, "maxrows "+strconv.Itoa(*dt.MaxRows))
		}
		if dt.FirstRowSet != nil {
			modifiers = append(modifiers, "firstrowset "+strconv.Itoa(*dt.FirstRowSet))
		}
		if len(modifiers) > 0 {
			sb.WriteString(strings.Join(modifiers, " ") + "\n")
		}
	}

	for i := 0; i < len(def.Elements); {
		el := def.Elements[i]
		keyword, err := keywordFromAxis(el.Axis)
		if err != nil {
			return "", &ElementError{Index: i, Name: el.Name, Err: err}
		}

		if el.IsCalculated() {
			sb.WriteString("member " + el.Name + " as " + strconv.Quote(el.Formula) + " " + keyword + "\n")
			i++
			continue
		}

		members := []string{el.Name}
		j := i + 1
		for ; j < len(def.Elements); j++ {
			next := def.Elements[j]
			if next.IsCalculated() || next.Axis != el.Axis {
				break
			}
			members = append(members, next.Name)
		}
		sb.WriteString(keyword + " " + strings.Join(members, ", ") + "\n")
		i = j
	}

	return sb.String(), nil
}
