package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/staffgen/internal/config"
	"github.com/Sumatoshi-tech/staffgen/internal/dataset"
	"github.com/Sumatoshi-tech/staffgen/pkg/stats"
)

// bucketHeadings maps bucket keys to display headings for the table
// output.
var bucketHeadings = map[string]string{
	"all":            "All employees",
	"male":           "Men",
	"female":         "Women",
	"femalePartTime": "Women working part-time",
	"maleFullTime":   "Men working full-time",
}

// NewStatsCommand creates the stats subcommand.
func NewStatsCommand() *cobra.Command {
	flags := &generationFlags{}

	var inputPath, outputPath, format string

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Aggregate employees into ranked name-frequency buckets",
		Long: `Aggregate an employee dataset into five ranked name-frequency
buckets: all, men, women, part-time women and full-time men. Without
--input a fresh population is generated first.

Examples:
  staffgen stats -n 250 --format table
  staffgen stats -i employees.json
  staffgen stats --seed 42 --format yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStats(cmd, flags, inputPath, outputPath, format)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "employee dataset file (default: generate)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "", "output format: json, yaml or table (default from config)")

	return cmd
}

func runStats(cmd *cobra.Command, flags *generationFlags, inputPath, outputPath, format string) error {
	if format == "" {
		cfg, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}

		format = cfg.Output.Format
	}

	employees, err := loadOrGenerate(cmd, flags, inputPath, dataset.Load)
	if err != nil {
		return err
	}

	statistics := stats.Aggregate(employees)

	slog.Debug("aggregated employees", "count", len(employees), "distinct_names", len(statistics.Names.All))

	if format == config.FormatTable {
		renderStatsTables(cmd.OutOrStdout(), len(employees), statistics)

		return nil
	}

	return writeEncoded(cmd, statistics, outputPath, format)
}

// renderStatsTables prints one name/count table per bucket.
func renderStatsTables(w io.Writer, population int, statistics stats.Statistics) {
	heading := color.New(color.FgCyan, color.Bold)
	heading.Fprintf(w, "Population: %s employees\n\n", humanize.Comma(int64(population)))

	statistics.Names.ForEach(func(name string, counts stats.NameCounts) {
		heading.Fprintf(w, "%s\n", bucketHeadings[name])

		if len(counts) == 0 {
			fmt.Fprintf(w, "  (empty)\n\n")

			return
		}

		tbl := table.NewWriter()
		tbl.SetOutputMirror(w)
		tbl.SetStyle(table.StyleLight)
		tbl.AppendHeader(table.Row{"Name", "Count"})

		for _, entry := range counts {
			tbl.AppendRow(table.Row{entry.Name, entry.Count})
		}

		tbl.AppendFooter(table.Row{"Total", humanize.Comma(int64(counts.Total()))})
		tbl.Render()
		fmt.Fprintln(w)
	})
}
