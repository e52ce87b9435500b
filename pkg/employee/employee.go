// Package employee implements constrained random synthesis of fictitious
// employee records: gendered name selection from a fixed corpus, uniform
// workload levels, and birthdates sampled from an age window with a
// per-run uniqueness guarantee on the formatted timestamp.
package employee

import (
	"errors"
	"fmt"
)

// Gender is the employee gender attribute.
type Gender string

// Gender values.
const (
	Male   Gender = "male"
	Female Gender = "female"
)

// ErrUnknownGender indicates a gender string outside the enum.
var ErrUnknownGender = errors.New("employee: unknown gender")

// ParseGender converts a string into a Gender value.
func ParseGender(s string) (Gender, error) {
	switch Gender(s) {
	case Male:
		return Male, nil
	case Female:
		return Female, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownGender, s)
	}
}

// Valid reports whether g is one of the enum values.
func (g Gender) Valid() bool {
	return g == Male || g == Female
}

// FullTimeWorkload is the weekly hours level that counts as full-time.
// Every other level is part-time.
const FullTimeWorkload = 40

// Workloads are the allowed weekly hours levels. Each level is equally
// likely during generation, independent of population size.
var Workloads = []int{10, 20, 30, FullTimeWorkload}

// Employee is one synthesized record. Immutable once generated.
type Employee struct {
	Gender    Gender `json:"gender"    yaml:"gender"`
	Birthdate string `json:"birthdate" yaml:"birthdate"`
	Name      string `json:"name"      yaml:"name"`
	Surname   string `json:"surname"   yaml:"surname"`
	Workload  int    `json:"workload"  yaml:"workload"`
}

// FullTime reports whether the employee works the full-time level.
func (e Employee) FullTime() bool {
	return e.Workload == FullTimeWorkload
}

// AgeRange bounds employee ages in whole years. Min is the youngest
// allowed age, Max the oldest.
type AgeRange struct {
	Min int `json:"min" yaml:"min" mapstructure:"min"`
	Max int `json:"max" yaml:"max" mapstructure:"max"`
}

// Config describes one generation run.
type Config struct {
	Count int      `json:"count" yaml:"count" mapstructure:"count"`
	Age   AgeRange `json:"age"   yaml:"age"   mapstructure:"age"`
}

// Validation errors reported by Config.Validate.
var (
	ErrInvalidCount    = errors.New("employee: count must be >= 0")
	ErrInvalidAgeRange = errors.New("employee: invalid age range")
)

// Validate checks the configuration before a generation run starts.
func (c Config) Validate() error {
	if c.Count < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidCount, c.Count)
	}

	if c.Age.Min < 0 || c.Age.Max < 0 {
		return fmt.Errorf("%w: bounds must be >= 0, got min=%d max=%d", ErrInvalidAgeRange, c.Age.Min, c.Age.Max)
	}

	if c.Age.Min > c.Age.Max {
		return fmt.Errorf("%w: min %d > max %d", ErrInvalidAgeRange, c.Age.Min, c.Age.Max)
	}

	return nil
}
