// Package main is the entry point for the olap CLI.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/satishbabariya/olap-go/cmd/olap/commands"
	"github.com/satishbabariya/olap-go/internal/config"
	"github.com/satishbabariya/olap-go/internal/debug"
	"github.com/satishbabariya/olap-go/internal/ui"
	"github.com/satishbabariya/olap-go/internal/utils/container"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	debug.Init(cfg.Debug)
	ui.SetColor(cfg.Color)

	// Create dependency injection container
	c, err := container.NewContainer(cfg, config.AppFs)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	defer c.Close(ctx)

	rootCmd := commands.NewRootCommand(c)
	rootCmd.AddCommand(commands.NewConfigCommand(v, cfg))

	return rootCmd.ExecuteContext(ctx)
}
