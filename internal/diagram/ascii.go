package diagram

import (
	"fmt"
	"math"
	"strings"
)

// Bar is one joint in a capacity ratio chart
type Bar struct {
	Label string
	Ratio float64 // ΣMnc / ΣMnb, may be +Inf
	Safe  bool
}

// chartWidth is the number of characters of the longest bar
const chartWidth = 40

// scaleMax returns the ratio drawn at full width: the largest finite ratio,
// never less than 1.5 times the factor so the factor marker sits inside the chart.
func scaleMax(bars []Bar, factor float64) float64 {
	m := 1.5 * factor
	for _, b := range bars {
		if !math.IsInf(b.Ratio, 0) && !math.IsNaN(b.Ratio) && b.Ratio > m {
			m = b.Ratio
		}
	}
	if m <= 0 {
		m = 1
	}
	return m
}

// DrawASCIIRatioChart creates a horizontal bar chart of capacity ratios with
// the required factor marked on every bar
func DrawASCIIRatioChart(bars []Bar, factor float64) string {
	var sb strings.Builder

	labelWidth := len("Joint")
	for _, b := range bars {
		if n := len([]rune(b.Label)); n > labelWidth {
			labelWidth = n
		}
	}

	top := scaleMax(bars, factor)
	marker := int(math.Round(factor / top * chartWidth))
	if marker > chartWidth {
		marker = chartWidth
	}

	sb.WriteString("\n")
	sb.WriteString("  CAPACITY RATIO ΣMnc/ΣMnb\n")
	sb.WriteString("  ────────────────────────\n")

	for _, b := range bars {
		n := 0
		switch {
		case math.IsInf(b.Ratio, 1):
			n = chartWidth
		case math.IsNaN(b.Ratio) || b.Ratio <= 0:
			n = 0
		default:
			n = int(math.Round(b.Ratio / top * chartWidth))
			if n > chartWidth {
				n = chartWidth
			}
		}

		line := []rune(strings.Repeat("█", n) + strings.Repeat(" ", chartWidth-n))
		if marker > 0 && marker <= chartWidth {
			if marker-1 < n {
				line[marker-1] = '╋'
			} else {
				line[marker-1] = '┊'
			}
		}

		status := "✓"
		if !b.Safe {
			status = "✗"
		}

		value := fmt.Sprintf("%.2f", b.Ratio)
		if math.IsInf(b.Ratio, 1) {
			value = "∞"
		}

		sb.WriteString(fmt.Sprintf("  %-*s │%s│ %6s %s\n", labelWidth, b.Label, string(line), value, status))
	}

	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString(fmt.Sprintf("  ┊ ╋ = required ratio (factor = %.2f)\n", factor))
	sb.WriteString("  ✓ = Strong Column Weak Beam Satisfied, ✗ = Weak Column\n")

	return sb.String()
}
