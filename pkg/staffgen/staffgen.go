// Package staffgen exposes the two-stage employee pipeline: synthesize
// a fictitious population, then derive ranked name-frequency statistics
// for charting.
package staffgen

import (
	"github.com/Sumatoshi-tech/staffgen/pkg/employee"
	"github.com/Sumatoshi-tech/staffgen/pkg/stats"
)

// GenerateEmployeeData synthesizes cfg.Count employee records within
// the configured age window.
func GenerateEmployeeData(cfg employee.Config) ([]employee.Employee, error) {
	return employee.New().Generate(cfg)
}

// GetEmployeeChartContent aggregates an employee sequence into the five
// ranked buckets, as both name→count mappings and chart series.
func GetEmployeeChartContent(employees []employee.Employee) stats.Statistics {
	return stats.Aggregate(employees)
}

// Run chains generation and aggregation for one configuration.
func Run(cfg employee.Config) (stats.Statistics, error) {
	employees, err := GenerateEmployeeData(cfg)
	if err != nil {
		return stats.Statistics{}, err
	}

	return GetEmployeeChartContent(employees), nil
}
