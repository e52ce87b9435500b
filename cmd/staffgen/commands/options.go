// Package commands implements CLI command handlers for staffgen.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/staffgen/internal/config"
	"github.com/Sumatoshi-tech/staffgen/pkg/employee"
)

// Version is the staffgen build version, overridable via ldflags.
var Version = "dev"

// generationFlags are the flags shared by every command that can run
// the generator: population size, age window, optional seed, and an
// optional config file path.
type generationFlags struct {
	count      int
	minAge     int
	maxAge     int
	seed       uint64
	configPath string
}

func (f *generationFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.count, "count", "n", config.DefaultCount, "number of employees to generate")
	cmd.Flags().IntVar(&f.minAge, "min-age", config.DefaultMinAge, "youngest allowed employee age in years")
	cmd.Flags().IntVar(&f.maxAge, "max-age", config.DefaultMaxAge, "oldest allowed employee age in years")
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "seed for reproducible generation (0 = random)")
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file path (default: .staffgen.yaml in CWD or $HOME)")
}

// load merges the config file with explicitly set flags. Flags win over
// the file; the file wins over defaults.
func (f *generationFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	if cmd.Flags().Changed("count") {
		cfg.Generate.Count = f.count
	}

	if cmd.Flags().Changed("min-age") {
		cfg.Generate.Age.Min = f.minAge
	}

	if cmd.Flags().Changed("max-age") {
		cfg.Generate.Age.Max = f.maxAge
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// generator returns a seeded generator when --seed was given, otherwise
// a randomly sourced one.
func (f *generationFlags) generator(cmd *cobra.Command) *employee.Generator {
	if cmd.Flags().Changed("seed") {
		return employee.NewSeeded(f.seed)
	}

	return employee.New()
}
