package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGender(t *testing.T) {
	t.Parallel()

	male, err := ParseGender("male")
	require.NoError(t, err)
	assert.Equal(t, Male, male)

	female, err := ParseGender("female")
	require.NoError(t, err)
	assert.Equal(t, Female, female)

	_, err = ParseGender("other")
	require.ErrorIs(t, err, ErrUnknownGender)
}

func TestGender_Valid(t *testing.T) {
	t.Parallel()

	assert.True(t, Male.Valid())
	assert.True(t, Female.Valid())
	assert.False(t, Gender("").Valid())
	assert.False(t, Gender("unknown").Valid())
}

func TestEmployee_FullTime(t *testing.T) {
	t.Parallel()

	assert.True(t, Employee{Workload: FullTimeWorkload}.FullTime())
	assert.False(t, Employee{Workload: 10}.FullTime())
	assert.False(t, Employee{Workload: 30}.FullTime())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := Config{Count: 10, Age: AgeRange{Min: 18, Max: 65}}
	require.NoError(t, valid.Validate())

	zero := Config{Count: 0, Age: AgeRange{Min: 0, Max: 0}}
	require.NoError(t, zero.Validate())
}

func TestConfig_Validate_NegativeCount(t *testing.T) {
	t.Parallel()

	cfg := Config{Count: -1, Age: AgeRange{Min: 18, Max: 65}}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidCount)
	assert.Contains(t, err.Error(), "-1")
}

func TestConfig_Validate_NegativeAgeBounds(t *testing.T) {
	t.Parallel()

	cfg := Config{Count: 1, Age: AgeRange{Min: -3, Max: 65}}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidAgeRange)

	cfg = Config{Count: 1, Age: AgeRange{Min: 18, Max: -1}}
	require.ErrorIs(t, cfg.Validate(), ErrInvalidAgeRange)
}

func TestConfig_Validate_MinAboveMax(t *testing.T) {
	t.Parallel()

	cfg := Config{Count: 1, Age: AgeRange{Min: 40, Max: 20}}
	err := cfg.Validate()
	require.ErrorIs(t, err, ErrInvalidAgeRange)
	assert.Contains(t, err.Error(), "min 40 > max 20")
}
