// Package stats aggregates synthesized employee records into ranked
// name-frequency buckets segmented by gender and workload category,
// shaped for both tabular output and charting.
package stats

import (
	"github.com/Sumatoshi-tech/staffgen/pkg/employee"
)

// ChartPair is one bar of a rank-ordered chart series.
type ChartPair struct {
	Label string `json:"label" yaml:"label"`
	Value int    `json:"value" yaml:"value"`
}

// BucketSet groups one value per aggregation bucket. The five buckets
// are fixed: everyone, each gender, part-time women and full-time men.
type BucketSet[T any] struct {
	All            T `json:"all"            yaml:"all"`
	Male           T `json:"male"           yaml:"male"`
	Female         T `json:"female"         yaml:"female"`
	FemalePartTime T `json:"femalePartTime" yaml:"femalePartTime"`
	MaleFullTime   T `json:"maleFullTime"   yaml:"maleFullTime"`
}

// BucketNames lists the bucket keys in canonical order, matching the
// field order of BucketSet.
var BucketNames = []string{"all", "male", "female", "femalePartTime", "maleFullTime"}

// ForEach visits the buckets in canonical order.
func (b *BucketSet[T]) ForEach(visit func(name string, value T)) {
	visit("all", b.All)
	visit("male", b.Male)
	visit("female", b.Female)
	visit("femalePartTime", b.FemalePartTime)
	visit("maleFullTime", b.MaleFullTime)
}

// Statistics is the aggregation result: the same five ranked buckets as
// an ordered name→count mapping and as (label, value) chart series.
type Statistics struct {
	Names     BucketSet[NameCounts]  `json:"names"     yaml:"names"`
	ChartData BucketSet[[]ChartPair] `json:"chartData" yaml:"chartData"`
}

// Aggregate consumes the employee sequence once and produces the ranked
// statistics. The input is read-only and the call is idempotent:
// aggregating the same sequence twice yields identical results.
func Aggregate(employees []employee.Employee) Statistics {
	counters := BucketSet[*NameCounter]{
		All:            NewNameCounter(),
		Male:           NewNameCounter(),
		Female:         NewNameCounter(),
		FemalePartTime: NewNameCounter(),
		MaleFullTime:   NewNameCounter(),
	}

	for _, emp := range employees {
		counters.All.Inc(emp.Name)

		switch emp.Gender {
		case employee.Male:
			counters.Male.Inc(emp.Name)

			if emp.FullTime() {
				counters.MaleFullTime.Inc(emp.Name)
			}
		case employee.Female:
			counters.Female.Inc(emp.Name)

			if !emp.FullTime() {
				counters.FemalePartTime.Inc(emp.Name)
			}
		}
	}

	names := BucketSet[NameCounts]{
		All:            counters.All.Sorted(),
		Male:           counters.Male.Sorted(),
		Female:         counters.Female.Sorted(),
		FemalePartTime: counters.FemalePartTime.Sorted(),
		MaleFullTime:   counters.MaleFullTime.Sorted(),
	}

	return Statistics{
		Names: names,
		ChartData: BucketSet[[]ChartPair]{
			All:            chartPairs(names.All),
			Male:           chartPairs(names.Male),
			Female:         chartPairs(names.Female),
			FemalePartTime: chartPairs(names.FemalePartTime),
			MaleFullTime:   chartPairs(names.MaleFullTime),
		},
	}
}

// chartPairs converts a finalized bucket into chart series form,
// preserving rank order.
func chartPairs(counts NameCounts) []ChartPair {
	pairs := make([]ChartPair, 0, len(counts))
	for _, entry := range counts {
		pairs = append(pairs, ChartPair{Label: entry.Name, Value: entry.Count})
	}

	return pairs
}
