package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlotCommand_FromFile(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), "report.html")

	out := runCommand(t, NewPlotCommand(), []string{
		"-c", emptyConfigPath(t),
		"-i", writeDataset(t, statsTestDataset),
		"-o", outputPath,
	})

	assert.Contains(t, out, outputPath)

	html, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(html), "<html>")
	assert.Contains(t, string(html), "All Employees")
}

func TestPlotCommand_GeneratesWithoutInput(t *testing.T) {
	t.Parallel()

	outputPath := filepath.Join(t.TempDir(), "report.html")

	runCommand(t, NewPlotCommand(), []string{
		"-c", emptyConfigPath(t), "-n", "15", "--seed", "4", "-o", outputPath,
	})

	info, err := os.Stat(outputPath)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
