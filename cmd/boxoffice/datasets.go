package main

import (
	"fmt"

	"github.com/newthinker/boxoffice/internal/app"
	"github.com/newthinker/boxoffice/internal/output"
	"github.com/spf13/cobra"
)

var datasetsCmd = &cobra.Command{
	Use:   "datasets [prefix]",
	Short: "List CSV datasets in the configured store",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDatasets,
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}

func runDatasets(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg, "warn")
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	application, err := app.New(cfg, log)
	if err != nil {
		return fmt.Errorf("creating app: %w", err)
	}

	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	paths, err := application.Datasets(cmd.Context(), prefix)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(paths) == 0 {
		fmt.Fprintf(out, "No datasets found in %s store\n", cfg.Dataset.Source)
		return nil
	}

	table := output.NewTable(out, []string{"Path", "Configured"})
	for _, p := range paths {
		current := ""
		if p == cfg.Dataset.Path {
			current = "*"
		}
		table.AddRow(p, current)
	}
	return table.Render()
}
