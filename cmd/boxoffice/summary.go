package main

import (
	"fmt"
	"io"

	"github.com/newthinker/boxoffice/internal/app"
	"github.com/newthinker/boxoffice/internal/output"
	"github.com/newthinker/boxoffice/internal/view"
	"github.com/spf13/cobra"
)

var (
	summaryFrom    int
	summaryTo      int
	summaryGenres  []string
	summaryDataset string
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print the percent change in revenue by genre",
	Long: `Print each genre's domestic box office in the first and last year of the
range and the percent change between them, highest change first.

Without --from/--to the whole dataset range is used. With --genre the table is
restricted to the named genres.`,
	Example: `  boxoffice summary --from 2000 --to 2015
  boxoffice summary --genre Action --genre Horror`,
	RunE: runSummary,
}

func init() {
	summaryCmd.Flags().IntVar(&summaryFrom, "from", 0, "first release year (default: earliest in dataset)")
	summaryCmd.Flags().IntVar(&summaryTo, "to", 0, "last release year (default: latest in dataset)")
	summaryCmd.Flags().StringSliceVarP(&summaryGenres, "genre", "g", nil, "restrict to genre (repeatable)")
	summaryCmd.Flags().StringVar(&summaryDataset, "dataset", "", "dataset path, overriding the config")
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if summaryDataset != "" {
		cfg.Dataset.Path = summaryDataset
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
	if err := application.Load(cmd.Context()); err != nil {
		return fmt.Errorf("loading dataset: %w", err)
	}

	base, err := application.Base()
	if err != nil {
		return err
	}
	snap := base.DefaultSnapshot()
	snap.Genres = summaryGenres
	if cmd.Flags().Changed("from") {
		snap.Years.Min = summaryFrom
	}
	if cmd.Flags().Changed("to") {
		snap.Years.Max = summaryTo
	}

	name := view.ViewSummary
	if len(summaryGenres) > 0 {
		name = view.ViewYearlySummary
	}

	desc, err := application.Render(name, snap)
	if err != nil {
		return err
	}

	return printTable(cmd.OutOrStdout(), desc.Table)
}

func printTable(w io.Writer, data *view.TableData) error {
	fmt.Fprintln(w, data.Title)
	fmt.Fprintln(w)

	if len(data.Rows) == 0 {
		fmt.Fprintln(w, "No data for the selected range.")
		return nil
	}

	headers := make([]string, len(data.Columns))
	for i, c := range data.Columns {
		headers[i] = c.Name
	}

	table := output.NewTable(w, headers)
	for _, row := range data.Rows {
		cells := make([]string, len(data.Columns))
		for i, c := range data.Columns {
			cells[i] = row[c.ID]
		}
		table.AddRow(cells...)
	}
	return table.Render()
}
