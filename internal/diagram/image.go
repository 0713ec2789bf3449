package diagram

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// ExportRatioChart exports a bar chart of capacity ratios with the required
// factor drawn as a dashed line. The format follows the file extension
// (png, svg or pdf); other names get a .png suffix.
func ExportRatioChart(bars []Bar, factor float64, filename string) error {
	if len(bars) == 0 {
		return errors.New("no joints to plot")
	}

	p := plot.New()
	p.Title.Text = "Strong Column Weak Beam Check"
	p.X.Label.Text = "Joint"
	p.Y.Label.Text = "ΣMnc / ΣMnb"

	// Infinite ratios are drawn just above the largest finite bar
	clip := scaleMax(bars, factor) * 1.1

	safe := make(plotter.Values, len(bars))
	weak := make(plotter.Values, len(bars))
	labels := make([]string, len(bars))
	for i, b := range bars {
		v := b.Ratio
		switch {
		case math.IsInf(v, 1):
			v = clip
		case math.IsNaN(v), math.IsInf(v, -1):
			v = 0
		}
		if b.Safe {
			safe[i] = v
		} else {
			weak[i] = v
		}
		labels[i] = b.Label
	}

	barWidth := vg.Points(20)

	safeBars, err := plotter.NewBarChart(safe, barWidth)
	if err != nil {
		return err
	}
	safeBars.Color = color.RGBA{R: 100, G: 149, B: 237, A: 255}
	safeBars.LineStyle.Width = vg.Length(0)
	p.Add(safeBars)

	weakBars, err := plotter.NewBarChart(weak, barWidth)
	if err != nil {
		return err
	}
	weakBars.Color = color.RGBA{R: 220, G: 20, B: 60, A: 255}
	weakBars.LineStyle.Width = vg.Length(0)
	p.Add(weakBars)

	// Required ratio line
	factorLine, err := plotter.NewLine(plotter.XYs{
		{X: -0.5, Y: factor},
		{X: float64(len(bars)) - 0.5, Y: factor},
	})
	if err != nil {
		return err
	}
	factorLine.LineStyle.Width = vg.Points(1.5)
	factorLine.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	factorLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(factorLine)

	p.Legend.Add("Satisfied", safeBars)
	p.Legend.Add("Weak column", weakBars)
	p.Legend.Add(fmt.Sprintf("Required (%.2f)", factor), factorLine)
	p.Legend.Top = true
	p.NominalX(labels...)
	p.Y.Min = 0

	width := 8 * vg.Inch
	height := 6 * vg.Inch

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
