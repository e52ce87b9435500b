package commands

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/staffgen/internal/dataset"
)

// ErrValidationFailed indicates the dataset did not pass schema
// validation.
var ErrValidationFailed = errors.New("dataset validation failed")

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	var nocolor bool

	cmd := &cobra.Command{
		Use:   "validate <file.json|->",
		Short: "Validate an employee dataset against the employee schema",
		Long: `Validate an employee dataset JSON file against the canonical
employee schema.

Examples:
  staffgen validate employees.json
  staffgen validate - < employees.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if nocolor {
				color.NoColor = true //nolint:reassign // intentional override of library global
			}

			return runValidate(cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(cmd *cobra.Command, inputPath string) error {
	data, label, err := readInput(cmd, inputPath)
	if err != nil {
		return err
	}

	validateErr := dataset.Validate(data)
	if validateErr != nil {
		color.New(color.FgRed).Fprintf(cmd.OutOrStdout(), "Dataset is invalid (%s)\n", label)
		fmt.Fprintf(cmd.OutOrStdout(), "  %v\n", validateErr)

		return ErrValidationFailed
	}

	color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "Dataset is valid (%s)\n", label)

	return nil
}

func readInput(cmd *cobra.Command, inputPath string) ([]byte, string, error) {
	if inputPath == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}

		return data, "stdin", nil
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", inputPath, err)
	}

	return data, inputPath, nil
}
