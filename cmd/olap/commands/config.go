package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/satishbabariya/olap-go/internal/config"
	"github.com/satishbabariya/olap-go/internal/ui"
)

// NewConfigCommand creates the config command.
func NewConfigCommand(v *viper.Viper, cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or save configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := yaml.Marshal(v.AllSettings())
			if err != nil {
				return err
			}
			if file := v.ConfigFileUsed(); file != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", file)
			}
			fmt.Fprint(cmd.OutOrStdout(), string(content))
			return nil
		},
	})

	var (
		output   string
		history  bool
		provider string
		url      string
	)

	save := &cobra.Command{
		Use:   "save",
		Short: "Write the configuration to the user config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			updated := *cfg
			flags := cmd.Flags()
			if flags.Changed("output") {
				updated.Output = output
			}
			if flags.Changed("history") {
				updated.History.Enabled = history
			}
			if flags.Changed("provider") {
				updated.History.Provider = provider
			}
			if flags.Changed("url") {
				updated.History.URL = url
			}

			path, err := config.Save(v, &updated)
			if err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}
			ui.PrintSuccess("Saved %s", path)
			return nil
		},
	}

	save.Flags().StringVar(&output, "output", config.OutputText, "Default render format (text, html, markdown)")
	save.Flags().BoolVar(&history, "history", false, "Enable query history")
	save.Flags().StringVar(&provider, "provider", "sqlite", "History database provider (sqlite, postgresql, mysql)")
	save.Flags().StringVar(&url, "url", "", "History database URL")
	cmd.AddCommand(save)

	return cmd
}
