package stats

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/staffgen/pkg/employee"
)

func sampleEmployees() []employee.Employee {
	return []employee.Employee{
		{Gender: employee.Male, Name: "Jan", Surname: "Novák", Workload: 40, Birthdate: "1990-01-01T00:00:00.001Z"},
		{Gender: employee.Male, Name: "Jan", Surname: "Svoboda", Workload: 40, Birthdate: "1990-01-01T00:00:00.002Z"},
		{Gender: employee.Female, Name: "Eva", Surname: "Nováková", Workload: 10, Birthdate: "1990-01-01T00:00:00.003Z"},
	}
}

func TestAggregate_Scenario(t *testing.T) {
	t.Parallel()

	statistics := Aggregate(sampleEmployees())

	assert.Equal(t, NameCounts{{Name: "Jan", Count: 2}, {Name: "Eva", Count: 1}}, statistics.Names.All)
	assert.Equal(t, NameCounts{{Name: "Jan", Count: 2}}, statistics.Names.Male)
	assert.Equal(t, NameCounts{{Name: "Jan", Count: 2}}, statistics.Names.MaleFullTime)
	assert.Equal(t, NameCounts{{Name: "Eva", Count: 1}}, statistics.Names.Female)
	assert.Equal(t, NameCounts{{Name: "Eva", Count: 1}}, statistics.Names.FemalePartTime)
}

func TestAggregate_ChartDataMirrorsNames(t *testing.T) {
	t.Parallel()

	statistics := Aggregate(sampleEmployees())

	statistics.Names.ForEach(func(name string, counts NameCounts) {
		var pairs []ChartPair

		statistics.ChartData.ForEach(func(chartName string, p []ChartPair) {
			if chartName == name {
				pairs = p
			}
		})

		require.Len(t, pairs, len(counts), "bucket %s", name)

		for i, entry := range counts {
			assert.Equal(t, ChartPair{Label: entry.Name, Value: entry.Count}, pairs[i])
		}
	})
}

func TestAggregate_EmptyInput(t *testing.T) {
	t.Parallel()

	statistics := Aggregate(nil)

	statistics.Names.ForEach(func(name string, counts NameCounts) {
		assert.Empty(t, counts, "names bucket %s", name)
	})
	statistics.ChartData.ForEach(func(name string, pairs []ChartPair) {
		assert.Empty(t, pairs, "chart bucket %s", name)
	})
}

func TestAggregate_BucketSums(t *testing.T) {
	t.Parallel()

	employees := generatedSample(t)
	statistics := Aggregate(employees)

	assert.Equal(t, len(employees), statistics.Names.All.Total())
	assert.Equal(t, len(employees), statistics.Names.Male.Total()+statistics.Names.Female.Total())
}

func TestAggregate_SubBucketsAreSubsets(t *testing.T) {
	t.Parallel()

	statistics := Aggregate(generatedSample(t))

	for _, entry := range statistics.Names.MaleFullTime {
		assert.GreaterOrEqual(t, statistics.Names.Male.Get(entry.Name), entry.Count)
	}

	for _, entry := range statistics.Names.FemalePartTime {
		assert.GreaterOrEqual(t, statistics.Names.Female.Get(entry.Name), entry.Count)
	}
}

func TestAggregate_SortedDescendingEverywhere(t *testing.T) {
	t.Parallel()

	statistics := Aggregate(generatedSample(t))

	statistics.ChartData.ForEach(func(name string, pairs []ChartPair) {
		for i := 1; i < len(pairs); i++ {
			assert.GreaterOrEqual(t, pairs[i-1].Value, pairs[i].Value, "bucket %s out of order at %d", name, i)
		}
	})
}

func TestAggregate_Idempotent(t *testing.T) {
	t.Parallel()

	employees := generatedSample(t)

	first := Aggregate(employees)
	second := Aggregate(employees)

	assert.Equal(t, first, second)

	firstJSON, err := json.Marshal(first)
	require.NoError(t, err)

	secondJSON, err := json.Marshal(second)
	require.NoError(t, err)

	assert.Equal(t, firstJSON, secondJSON)
}

func TestStatistics_MarshalJSON(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(Aggregate(sampleEmployees()))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"names":{"all":{"Jan":2,"Eva":1}`)
	assert.Contains(t, string(data), `"chartData":`)
	assert.Contains(t, string(data), `{"label":"Jan","value":2}`)
}

// generatedSample produces a fixed mixed population without touching
// the generator package.
func generatedSample(t *testing.T) []employee.Employee {
	t.Helper()

	maleNames := []string{"Jan", "Petr", "Tomáš", "Jan", "Petr", "Jan"}
	femaleNames := []string{"Eva", "Marie", "Eva", "Anna", "Marie", "Eva"}
	workloads := []int{10, 20, 30, 40, 40, 20}

	var employees []employee.Employee

	for _, group := range []struct {
		gender employee.Gender
		names  []string
	}{
		{employee.Male, maleNames},
		{employee.Female, femaleNames},
	} {
		gender := group.gender

		for i, name := range group.names {
			employees = append(employees, employee.Employee{
				Gender:   gender,
				Name:     name,
				Surname:  "Novák",
				Workload: workloads[i%len(workloads)],
			})
		}
	}

	return employees
}
