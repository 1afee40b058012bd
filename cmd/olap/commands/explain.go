package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/olap-go/internal/ui"
	"github.com/satishbabariya/olap-go/internal/utils/container"
)

// NewExplainCommand creates the explain command.
func NewExplainCommand(c *container.Container) *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "explain <file>",
		Short: "Describe a query definition",
		Long:  "Describe the axes, calculated members and compiled MDX of a query definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			markdown, err := c.QueryService().Explain(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if raw {
				fmt.Fprint(cmd.OutOrStdout(), markdown)
				return nil
			}
			return ui.PrintMarkdown(markdown)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "Print markdown without terminal rendering")

	return cmd
}
