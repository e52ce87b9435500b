// Package dataset reads and writes employee datasets as JSON files and
// validates them against the canonical employee schema.
package dataset

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/Sumatoshi-tech/staffgen/pkg/employee"
)

//go:embed schema.json
var schemaBytes []byte

// ErrSchemaViolation indicates the dataset does not conform to the
// employee schema.
var ErrSchemaViolation = errors.New("dataset: schema violation")

// Validate checks raw JSON against the employee dataset schema and
// reports every violation.
func Validate(data []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	inputLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, inputLoader)
	if err != nil {
		return fmt.Errorf("dataset: validate: %w", err)
	}

	if result.Valid() {
		return nil
	}

	details := make([]string, 0, len(result.Errors()))
	for _, verr := range result.Errors() {
		details = append(details, fmt.Sprintf("%s: %s", verr.Field(), verr.Description()))
	}

	return fmt.Errorf("%w: %s", ErrSchemaViolation, strings.Join(details, "; "))
}

// Load reads an employee dataset from a JSON file, validating it
// against the schema first.
func Load(path string) ([]employee.Employee, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}

	validateErr := Validate(data)
	if validateErr != nil {
		return nil, validateErr
	}

	var employees []employee.Employee

	unmarshalErr := json.Unmarshal(data, &employees)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("dataset: decode %s: %w", path, unmarshalErr)
	}

	return employees, nil
}
