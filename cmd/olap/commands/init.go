package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/satishbabariya/olap-go/internal/core/mdx/definition"
	"github.com/satishbabariya/olap-go/internal/core/mdx/domain"
	"github.com/satishbabariya/olap-go/internal/ui"
	"github.com/satishbabariya/olap-go/internal/utils/container"
)

// initAnswers holds the prompted values of a new definition.
type initAnswers struct {
	Cube     string
	Measures string
	Rows     string
	NonEmpty bool
}

// NewInitCommand creates the init command.
func NewInitCommand(c *container.Container) *cobra.Command {
	var (
		answers initAnswers
		yes     bool
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Create a query definition",
		Long:  "Create a new query definition, as DSL (.mdxq) or YAML (.yaml) depending on the file name",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := "query.mdxq"
			if len(args) > 0 {
				file = args[0]
			}
			if !yes {
				if err := promptDefinition(&answers); err != nil {
					return err
				}
			}
			return runInit(cmd, c, file, answers, force)
		},
	}

	cmd.Flags().StringVar(&answers.Cube, "cube", "[Sales]", "Cube to query")
	cmd.Flags().StringVar(&answers.Measures, "measures", "[Measures].[Unit Sales]", "Comma separated measures on columns")
	cmd.Flags().StringVar(&answers.Rows, "rows", "", "Comma separated members on rows")
	cmd.Flags().BoolVar(&answers.NonEmpty, "non-empty", true, "Add NON EMPTY to both axes")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Use flag values without prompting")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	return cmd
}

func promptDefinition(answers *initAnswers) error {
	questions := []*survey.Question{
		{
			Name:     "cube",
			Prompt:   &survey.Input{Message: "Cube:", Default: answers.Cube},
			Validate: survey.Required,
		},
		{
			Name:     "measures",
			Prompt:   &survey.Input{Message: "Measures (comma separated):", Default: answers.Measures},
			Validate: survey.Required,
		},
		{
			Name:     "rows",
			Prompt:   &survey.Input{Message: "Row members (comma separated):", Default: answers.Rows},
			Validate: survey.Required,
		},
		{
			Name:   "nonEmpty",
			Prompt: &survey.Confirm{Message: "Skip empty cells (NON EMPTY)?", Default: answers.NonEmpty},
		},
	}

	return survey.Ask(questions, answers)
}

func runInit(cmd *cobra.Command, c *container.Container, file string, answers initAnswers, force bool) error {
	ctx := cmd.Context()
	store := c.Storage()

	if !force {
		exists, err := store.Exists(ctx, file)
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%s already exists (use --force to overwrite)", file)
		}
	}

	def := newDefinition(answers)

	// Refuse to write a definition that does not compile
	compiled, err := c.QueryService().Build(def)
	if err != nil {
		return err
	}

	content, err := encodeDefinition(file, def)
	if err != nil {
		return err
	}
	if err := store.Write(ctx, file, content); err != nil {
		return fmt.Errorf("failed to write %s: %w", file, err)
	}

	ui.PrintSuccess("Created %s", file)
	fmt.Fprintln(cmd.OutOrStdout(), ui.HighlightMDX(compiled.MDX))
	return nil
}

// newDefinition turns prompted answers into a definition.
func newDefinition(answers initAnswers) *definition.Definition {
	def := &definition.Definition{
		Version:  definition.CurrentVersion,
		Cube:     strings.TrimSpace(answers.Cube),
		NonEmpty: answers.NonEmpty,
	}
	for _, name := range splitMembers(answers.Measures) {
		def.Elements = append(def.Elements, definition.Element{Name: name, Axis: string(domain.Col)})
	}
	for _, name := range splitMembers(answers.Rows) {
		def.Elements = append(def.Elements, definition.Element{Name: name, Axis: string(domain.Row)})
	}
	return def
}

func encodeDefinition(file string, def *definition.Definition) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return definition.EncodeYAML(def)
	default:
		content, err := definition.FormatDSL(def)
		if err != nil {
			return nil, err
		}
		return []byte(content), nil
	}
}

// splitMembers splits a comma separated member list, ignoring commas
// inside brackets.
func splitMembers(list string) []string {
	var (
		members []string
		current strings.Builder
		depth   int
	)

	flush := func() {
		if member := strings.TrimSpace(current.String()); member != "" {
			members = append(members, member)
		}
		current.Reset()
	}

	for _, r := range list {
		switch {
		case r == '[':
			depth++
		case r == ']' && depth > 0:
			depth--
		case r == ',' && depth == 0:
			flush()
			continue
		}
		current.WriteRune(r)
	}
	flush()

	return members
}
