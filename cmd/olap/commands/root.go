// Package commands implements CLI commands.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/olap-go/internal/debug"
	"github.com/satishbabariya/olap-go/internal/ui"
	"github.com/satishbabariya/olap-go/internal/utils/container"
)

// NewRootCommand creates the root command with every query command attached.
func NewRootCommand(c *container.Container) *cobra.Command {
	var (
		debugMode bool
		noColor   bool
	)

	rootCmd := &cobra.Command{
		Use:   "olap",
		Short: "MDX query builder",
		Long: `olap compiles query definitions into MDX statements and renders
XMLA responses as tables.`,
		Version:      fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if debugMode {
				debug.Init(true)
			}
			if noColor {
				ui.SetColor(false)
			}
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(NewBuildCommand(c))
	rootCmd.AddCommand(NewExplainCommand(c))
	rootCmd.AddCommand(NewRenderCommand(c))
	rootCmd.AddCommand(NewWatchCommand(c))
	rootCmd.AddCommand(NewInitCommand(c))
	rootCmd.AddCommand(NewHistoryCommand(c))
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}
