// Package report renders SCWB batch results as a PDF calculation sheet.
package report

import (
	"errors"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"

	"github.com/alexiusacademia/goscwb/internal/batch"
	"github.com/alexiusacademia/goscwb/internal/scwb"
)

// Input describes the report header and the batch to render
type Input struct {
	Title      string
	Project    string
	Author     string
	DesignCode string
	Source     string // input file path
	Date       time.Time
	Output     *batch.Output
}

// column widths (mm) for the results table
var colWidths = []float64{34, 26, 26, 30, 22, 52}

var colTitles = []string{"Joint", "Sum Mnc (kN-m)", "Sum Mnb (kN-m)", "Required (kN-m)", "Ratio", "Result"}

// WritePDF renders the report to path
func WritePDF(path string, in Input) error {
	if in.Output == nil {
		return errors.New("report: no batch output")
	}
	if in.Title == "" {
		in.Title = "Strong Column Weak Beam Check"
	}
	if in.Date.IsZero() {
		in.Date = time.Now()
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(in.Title, true)
	pdf.SetAuthor(in.Author, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr(in.Title))
	pdf.Ln(12)

	summary := in.Output.Summary
	pdf.SetFont("Helvetica", "", 11)
	lines := []string{
		fmt.Sprintf("Project: %s", in.Project),
		fmt.Sprintf("Author: %s", in.Author),
		fmt.Sprintf("Date: %s", in.Date.Format("2006-01-02")),
		fmt.Sprintf("Input: %s", in.Source),
		fmt.Sprintf("Run ID: %s", summary.RunID),
		fmt.Sprintf("Design code: %s", in.DesignCode),
		fmt.Sprintf("Requirement: Sum Mnc >= %.2f x Sum Mnb", summary.Factor),
	}
	for _, l := range lines {
		pdf.Cell(0, 6, tr(l))
		pdf.Ln(6)
	}
	pdf.Ln(4)

	// Table header
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	for i, title := range colTitles {
		pdf.CellFormat(colWidths[i], 7, title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	// Table body, weak columns highlighted
	pdf.SetFont("Helvetica", "", 9)
	pdf.SetFillColor(255, 205, 210)
	records := in.Output.Table.Records
	for i, r := range in.Output.Results {
		id := ""
		if i < len(records) {
			id = records[i].ID
		}
		verdict := "Satisfied"
		if !r.IsSafe {
			verdict = "Weak column"
		}
		cells := []string{
			tr(id),
			fmt.Sprintf("%.2f", r.SumMC),
			fmt.Sprintf("%.2f", r.SumMB),
			fmt.Sprintf("%.2f", r.RequiredMC),
			r.FormatRatio(),
			verdict,
		}
		for j, c := range cells {
			align := "R"
			if j == 0 || j == len(cells)-1 {
				align = "L"
			}
			pdf.CellFormat(colWidths[j], 6, c, "1", 0, align, !r.IsSafe, 0, "")
		}
		pdf.Ln(-1)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 6, Summary(summary))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "I", 8)
	pdf.MultiCell(0, 4, tr(fmt.Sprintf(
		"%s: Sum Mnc >= %.2f Sum Mnb. Ratio = Sum Mnc / Sum Mnb; inf where Sum Mnb = 0.",
		scwb.MessageSatisfied, summary.Factor)), "", "L", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}
	return nil
}

// Summary formats the pass count line
func Summary(s batch.Summary) string {
	return fmt.Sprintf("%d/%d joints passed the SCWB check.", s.Safe, s.Total)
}
