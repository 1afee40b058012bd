package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/satishbabariya/olap-go/internal/ui"
	"github.com/satishbabariya/olap-go/internal/utils/container"
	"github.com/satishbabariya/olap-go/internal/watch"
)

// NewWatchCommand creates the watch command.
func NewWatchCommand(c *container.Container) *cobra.Command {
	var debounce time.Duration

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Recompile a query definition on change",
		Long:  "Watch a query definition and print the MDX diff every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWatch(cmd, c, args[0], debounce)
		},
	}

	cmd.Flags().DurationVar(&debounce, "debounce", watch.DefaultDebounce, "Quiet period before recompiling")

	return cmd
}

func runWatch(cmd *cobra.Command, c *container.Container, file string, debounce time.Duration) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	var previous string

	rebuild := func() error {
		compiled, err := c.QueryService().BuildFile(ctx, file)
		if err != nil {
			ui.PrintError("%v", err)
			return err
		}

		switch {
		case previous == "":
			fmt.Fprintln(out, ui.HighlightMDX(compiled.MDX))
		case previous == compiled.MDX:
			ui.PrintInfo("No changes in %s", file)
		default:
			ui.PrintSection(file)
			fmt.Fprint(out, ui.Diff(previous, compiled.MDX))
		}
		previous = compiled.MDX
		return nil
	}

	w, err := watch.NewWatcher(watchPath(c, file), debounce, rebuild)
	if err != nil {
		return err
	}
	defer w.Stop()

	ui.PrintInfo("Watching %s (press Ctrl+C to stop)", file)
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// watchPath resolves file against the configured storage base path.
func watchPath(c *container.Container, file string) string {
	base := c.Config().Storage.BasePath
	if filepath.IsAbs(file) || base == "" {
		return file
	}
	return filepath.Join(base, file)
}
