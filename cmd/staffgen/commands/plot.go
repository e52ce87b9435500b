package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/staffgen/internal/dataset"
	"github.com/Sumatoshi-tech/staffgen/pkg/stats"
)

const defaultPlotOutput = "staffgen.html"

// NewPlotCommand creates the plot subcommand.
func NewPlotCommand() *cobra.Command {
	flags := &generationFlags{}

	var inputPath, outputPath string

	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Render name-frequency statistics as HTML bar charts",
		Long: `Render the five aggregation buckets as rank-ordered bar charts on a
single HTML page. Without --input a fresh population is generated first.

Examples:
  staffgen plot -n 500 -o report.html
  staffgen plot -i employees.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlot(cmd, flags, inputPath, outputPath)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "employee dataset file (default: generate)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", defaultPlotOutput, "output HTML file")

	return cmd
}

func runPlot(cmd *cobra.Command, flags *generationFlags, inputPath, outputPath string) error {
	employees, err := loadOrGenerate(cmd, flags, inputPath, dataset.Load)
	if err != nil {
		return err
	}

	statistics := stats.Aggregate(employees)

	out, createErr := os.Create(outputPath)
	if createErr != nil {
		return fmt.Errorf("create %s: %w", outputPath, createErr)
	}
	defer out.Close()

	renderErr := stats.RenderHTML(out, statistics)
	if renderErr != nil {
		return renderErr
	}

	slog.Debug("rendered charts", "path", outputPath, "employees", len(employees))
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", outputPath)

	return nil
}
