package diagram

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleBars = []Bar{
	{Label: "J1", Ratio: 2.0, Safe: true},
	{Label: "J2", Ratio: 1.0, Safe: false},
	{Label: "J3", Ratio: math.Inf(1), Safe: true},
}

func TestDrawASCIIRatioChart(t *testing.T) {
	out := DrawASCIIRatioChart(sampleBars, 1.2)

	lines := strings.Split(out, "\n")
	var rows []string
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "J") {
			rows = append(rows, l)
		}
	}
	require.Len(t, rows, 3)

	assert.Contains(t, rows[0], "2.00 ✓")
	assert.Contains(t, rows[1], "1.00 ✗")
	assert.Contains(t, rows[2], "∞ ✓")

	// the weak joint stops short of the factor marker
	assert.Contains(t, rows[1], "┊")
	assert.Contains(t, rows[0], "╋")
	assert.Contains(t, out, "factor = 1.20")
}

func TestDrawASCIIRatioChart_BarLengths(t *testing.T) {
	bars := []Bar{
		{Label: "full", Ratio: 4, Safe: true},
		{Label: "half", Ratio: 2, Safe: true},
		{Label: "neg", Ratio: -1, Safe: false},
	}
	out := DrawASCIIRatioChart(bars, 1)

	count := func(label string) int {
		for _, l := range strings.Split(out, "\n") {
			if strings.Contains(l, " "+label+" ") {
				return strings.Count(l, "█") + strings.Count(l, "╋")
			}
		}
		return -1
	}
	assert.Equal(t, chartWidth, count("full"))
	assert.Equal(t, chartWidth/2, count("half"))
	assert.Equal(t, 0, count("neg"))
}

func TestExportRatioChart(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"chart.png", "chart.svg", filepath.Join("nested", "chart.pdf")} {
		path := filepath.Join(dir, name)
		require.NoError(t, ExportRatioChart(sampleBars, 1.2, path), name)

		info, err := os.Stat(path)
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}

	require.NoError(t, ExportRatioChart(sampleBars, 1.2, filepath.Join(dir, "plain")))
	assert.FileExists(t, filepath.Join(dir, "plain.png"))
}

func TestExportRatioChart_Empty(t *testing.T) {
	err := ExportRatioChart(nil, 1.2, filepath.Join(t.TempDir(), "chart.png"))
	require.Error(t, err)
}
