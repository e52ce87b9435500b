package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/staffgen/internal/config"
	"github.com/Sumatoshi-tech/staffgen/pkg/employee"
)

const outputFilePerm = 0o600

// NewGenerateCommand creates the generate subcommand.
func NewGenerateCommand() *cobra.Command {
	flags := &generationFlags{}

	var outputPath, format string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Synthesize a fictitious employee dataset",
		Long: `Synthesize employee records with gendered names from a fixed corpus,
uniform workload levels and unique birthdates within the age window.

Examples:
  staffgen generate -n 100
  staffgen generate -n 500 --min-age 21 --max-age 40 --format yaml
  staffgen generate --seed 42 -o employees.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd, flags, outputPath, format)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&format, "format", "", "output format: json or yaml (default from config)")

	return cmd
}

func runGenerate(cmd *cobra.Command, flags *generationFlags, outputPath, format string) error {
	cfg, err := flags.load(cmd)
	if err != nil {
		return err
	}

	if format == "" {
		format = cfg.Output.Format
	}

	employees, genErr := flags.generator(cmd).Generate(cfg.Generate)
	if genErr != nil {
		return genErr
	}

	slog.Debug("generated employees",
		"count", len(employees), "min_age", cfg.Generate.Age.Min, "max_age", cfg.Generate.Age.Max)

	return writeEncoded(cmd, employees, outputPath, format)
}

// writeEncoded marshals v as JSON or YAML and writes it to outputPath,
// or to stdout when outputPath is empty.
func writeEncoded(cmd *cobra.Command, v any, outputPath, format string) error {
	var (
		data []byte
		err  error
	)

	switch format {
	case config.FormatJSON:
		data, err = json.MarshalIndent(v, "", "  ")
		data = append(data, '\n')
	case config.FormatYAML:
		data, err = yaml.Marshal(v)
	default:
		return fmt.Errorf("%w: %q", config.ErrUnknownFormat, format)
	}

	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}

	if outputPath == "" {
		_, writeErr := cmd.OutOrStdout().Write(data)
		if writeErr != nil {
			return fmt.Errorf("write output: %w", writeErr)
		}

		return nil
	}

	writeErr := os.WriteFile(outputPath, data, outputFilePerm)
	if writeErr != nil {
		return fmt.Errorf("write %s: %w", outputPath, writeErr)
	}

	slog.Debug("wrote output file", "path", outputPath, "bytes", len(data))

	return nil
}

// loadOrGenerate returns employees from the input file when one is
// given, otherwise runs the generator with the merged configuration.
func loadOrGenerate(cmd *cobra.Command, flags *generationFlags, inputPath string, loadFile func(string) ([]employee.Employee, error)) ([]employee.Employee, error) {
	if inputPath != "" {
		return loadFile(inputPath)
	}

	cfg, err := flags.load(cmd)
	if err != nil {
		return nil, err
	}

	return flags.generator(cmd).Generate(cfg.Generate)
}
