package cmd

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"go.uber.org/zap"

	"github.com/alexiusacademia/goscwb/internal/batch"
	"github.com/alexiusacademia/goscwb/internal/diagram"
	"github.com/alexiusacademia/goscwb/internal/report"
	"github.com/alexiusacademia/goscwb/internal/scwb"
	"github.com/alexiusacademia/goscwb/internal/table"
)

// batchRun collects the inputs of one batch check
type batchRun struct {
	Input  string
	Output string // empty: results.csv next to Input
	Factor float64

	// Optional artifacts
	Diagram bool
	Chart   string
	Report  string
	Project string
	Author  string
}

// executeBatch checks every joint of r.Input, writes the result table and
// prints it to w together with the summary line.
func executeBatch(w io.Writer, r batchRun) (*batch.Output, error) {
	checker := scwb.NewChecker(r.Factor)
	p := batch.New(checker, batch.WithLogger(zlog))

	outputPath := r.Output
	if outputPath == "" {
		outputPath = batch.OutputPathFor(r.Input)
	}

	fmt.Fprintf(w, "Processing data from: %s...\n\n", r.Input)

	out, err := p.Run(r.Input, outputPath)
	if err != nil {
		return nil, err
	}

	printTable(w, out.Table)
	fmt.Fprintf(w, "\nResults saved to: %s\n", outputPath)

	if r.Diagram {
		fmt.Fprint(w, diagram.DrawASCIIRatioChart(bars(out), checker.Factor()))
	}

	switch {
	case r.Chart == "":
	case len(out.Results) == 0:
		fmt.Fprintln(w, "No joints to chart, skipped chart export.")
	default:
		if err := diagram.ExportRatioChart(bars(out), checker.Factor(), r.Chart); err != nil {
			return nil, fmt.Errorf("results saved to %s, but chart export failed: %w", outputPath, err)
		}
		fmt.Fprintf(w, "Chart exported to: %s\n", r.Chart)
	}

	if r.Report != "" {
		err := report.WritePDF(r.Report, report.Input{
			Project:    r.Project,
			Author:     r.Author,
			DesignCode: cfg.DesignCode,
			Source:     r.Input,
			Output:     out,
		})
		if err != nil {
			return nil, fmt.Errorf("results saved to %s, but report failed: %w", outputPath, err)
		}
		fmt.Fprintf(w, "Report written to: %s\n", r.Report)
	}

	fmt.Fprintf(w, "\nSummary: %s\n", report.Summary(out.Summary))
	zlog.Info("summary",
		zap.String("run_id", out.Summary.RunID),
		zap.Int("safe", out.Summary.Safe),
		zap.Int("total", out.Summary.Total))
	return out, nil
}

// printTable writes t as aligned columns
func printTable(w io.Writer, t *table.Table) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Header, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
}

func bars(out *batch.Output) []diagram.Bar {
	b := make([]diagram.Bar, len(out.Results))
	for i, r := range out.Results {
		b[i] = diagram.Bar{
			Label: out.Table.Records[i].ID,
			Ratio: r.Ratio,
			Safe:  r.IsSafe,
		}
	}
	return b
}
