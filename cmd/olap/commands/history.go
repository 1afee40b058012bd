package commands

import (
	"errors"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/olap-go/internal/service"
	"github.com/satishbabariya/olap-go/internal/ui"
	"github.com/satishbabariya/olap-go/internal/utils/container"
)

// NewHistoryCommand creates the history command.
func NewHistoryCommand(c *container.Container) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded queries",
		Long:  "List the most recently recorded compiled queries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := c.QueryService().History(cmd.Context(), limit)
			if errors.Is(err, service.ErrHistoryDisabled) {
				ui.PrintWarning("Query history is disabled (set history.enabled in .olap.yaml)")
				return nil
			}
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				ui.PrintInfo("No recorded queries")
				return nil
			}

			rows := make([][]string, 0, len(entries))
			for _, entry := range entries {
				rows = append(rows, []string{
					strconv.FormatInt(entry.ID, 10),
					entry.Name,
					entry.Cube,
					entry.CreatedAt.Local().Format("2006-01-02 15:04"),
					entry.MDX,
				})
			}
			return ui.PrintTable([]string{"ID", "Name", "Cube", "Created", "MDX"}, rows)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Number of entries to show")

	return cmd
}
