package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/olap-go/internal/config"
	"github.com/satishbabariya/olap-go/internal/core/layout"
	"github.com/satishbabariya/olap-go/internal/service"
	"github.com/satishbabariya/olap-go/internal/ui"
	"github.com/satishbabariya/olap-go/internal/utils/container"
)

// NewRenderCommand creates the render command.
func NewRenderCommand(c *container.Container) *cobra.Command {
	var (
		format         string
		ignoreFirstRow bool
		axes           bool
	)

	cmd := &cobra.Command{
		Use:   "render <response.xml>",
		Short: "Render an XMLA response",
		Long:  "Render a tabular XMLA response as a table, or list the members of a multidimensional response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = c.Config().Output
			}
			if axes {
				return runRenderAxes(cmd, c, args[0])
			}
			return runRender(cmd, c, args[0], format, ignoreFirstRow)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format (text, html, markdown)")
	cmd.Flags().BoolVar(&ignoreFirstRow, "ignore-first-row", false, "Skip the first data row")
	cmd.Flags().BoolVar(&axes, "axes", false, "List axis members instead of rows")

	return cmd
}

func runRender(cmd *cobra.Command, c *container.Container, path, format string, ignoreFirstRow bool) error {
	resultService := c.ResultService()

	rs, err := resultService.LoadTabular(cmd.Context(), path, ignoreFirstRow)
	if err != nil {
		return err
	}

	if format == config.OutputText || format == "" {
		if rs.CubeName != "" {
			ui.PrintSection(rs.CubeName)
		}
		headers, rows := layout.Rows(rs)
		return ui.PrintTable(headers, rows)
	}

	out, err := resultService.Render(rs, format)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func runRenderAxes(cmd *cobra.Command, c *container.Container, path string) error {
	axes, err := c.ResultService().LoadAxes(cmd.Context(), path)
	if err != nil {
		return err
	}
	if len(axes) == 0 {
		ui.PrintWarning("No axes in %s", path)
		return nil
	}

	headers, rows := service.AxisRows(axes)
	return ui.PrintTable(headers, rows)
}
