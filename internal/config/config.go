// Package config loads staffgen settings from file, environment and
// defaults, and validates them before a run.
package config

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/staffgen/pkg/employee"
)

// Default generation settings.
const (
	DefaultCount  = 100
	DefaultMinAge = 18
	DefaultMaxAge = 65
)

// Output format identifiers.
const (
	FormatJSON  = "json"
	FormatYAML  = "yaml"
	FormatTable = "table"
)

// ErrUnknownFormat indicates an output format outside the supported set.
var ErrUnknownFormat = errors.New("config: unknown output format")

// Config is the top-level configuration struct for staffgen.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	Generate employee.Config `mapstructure:"generate"`
	Output   OutputConfig    `mapstructure:"output"`
}

// OutputConfig holds output surface settings.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Validate checks the whole configuration and reports the first invalid
// field.
func (c *Config) Validate() error {
	err := c.Generate.Validate()
	if err != nil {
		return err
	}

	switch c.Output.Format {
	case FormatJSON, FormatYAML, FormatTable:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Output.Format)
	}
}
