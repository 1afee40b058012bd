package commands

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/olap-go/internal/ui"
	"github.com/satishbabariya/olap-go/internal/utils/container"
)

// NewBuildCommand creates the build command.
func NewBuildCommand(c *container.Container) *cobra.Command {
	var (
		record bool
		name   string
	)

	cmd := &cobra.Command{
		Use:   "build <file>...",
		Short: "Compile query definitions to MDX",
		Long:  "Compile one or more .mdxq or YAML query definitions into MDX statements",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBuild(cmd, c, args, record, name)
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "Record the compiled queries in the history")
	cmd.Flags().StringVar(&name, "name", "", "History name (defaults to the file name)")

	return cmd
}

func runBuild(cmd *cobra.Command, c *container.Container, files []string, record bool, name string) error {
	out := cmd.OutOrStdout()
	queryService := c.QueryService()

	for i, file := range files {
		compiled, err := queryService.BuildFile(cmd.Context(), file)
		if err != nil {
			return err
		}

		if len(files) > 1 {
			if i > 0 {
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "-- %s\n", file)
		}
		fmt.Fprintln(out, ui.HighlightMDX(compiled.MDX))

		if record {
			entryName := name
			if entryName == "" || len(files) > 1 {
				entryName = queryName(file)
			}
			if err := queryService.Record(cmd.Context(), entryName, compiled); err != nil {
				return fmt.Errorf("failed to record %s: %w", file, err)
			}
		}
	}

	return nil
}

// queryName derives a history name from a definition path.
func queryName(file string) string {
	base := filepath.Base(file)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
