package cmd

import (
	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscwb/internal/config"
	"github.com/alexiusacademia/goscwb/internal/nscp"
)

var (
	batchFactor  float64
	batchCode    string
	batchDiagram bool
	batchChart   string
	batchReport  string
	batchProject string
	batchAuthor  string
)

var batchCmd = &cobra.Command{
	Use:   "batch <input> [output]",
	Short: "Check every joint in a CSV or XLSX table",
	Long: `Check the strong column weak beam requirement for every joint in a table
and write the table back with ratio, is_safe and message columns appended.

The input must have a header row with the columns joint_id, sum_mc and
sum_mb (kN-m). Other columns are passed through unchanged. Files ending
in .xlsx are read and written as Excel workbooks; anything else is CSV.

When no output is given, results.csv is written next to the input.
Nothing is written if any row cannot be parsed.

Examples:
  # Check a table with the default factor (1.2)
  goscwb batch joints.csv

  # Write an Excel workbook and show the ratio chart
  goscwb batch joints.csv checked.xlsx --diagram

  # Use a different factor and export a chart and PDF report
  goscwb batch joints.xlsx --factor 1.4 --chart ratios.png --report scwb.pdf`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	// Check flags
	batchCmd.Flags().Float64VarP(&batchFactor, "factor", "f", 0, "Safety factor applied to ΣMnb (default from config or design code)")
	batchCmd.Flags().StringVar(&batchCode, "code", "", "Design code preset for the factor (nscp2015, aci318)")

	// Output flags
	batchCmd.Flags().BoolVar(&batchDiagram, "diagram", false, "Show ASCII capacity ratio chart")
	batchCmd.Flags().StringVar(&batchChart, "chart", "", "Export ratio chart to file (png, svg, pdf)")
	batchCmd.Flags().StringVar(&batchReport, "report", "", "Write a PDF calculation report")
	batchCmd.Flags().StringVar(&batchProject, "project", "", "Project name shown in the report")
	batchCmd.Flags().StringVar(&batchAuthor, "author", "", "Author shown in the report")
}

func runBatch(cmd *cobra.Command, args []string) error {
	factor := cfg.Factor
	if batchCode != "" {
		f, err := nscp.FactorFor(batchCode)
		if err != nil {
			return err
		}
		factor = f
	}
	if cmd.Flags().Changed("factor") {
		if err := config.ValidateFactor(batchFactor); err != nil {
			return err
		}
		factor = batchFactor
	}

	output := ""
	if len(args) == 2 {
		output = args[1]
	}

	_, err := executeBatch(cmd.OutOrStdout(), batchRun{
		Input:   args[0],
		Output:  output,
		Factor:  factor,
		Diagram: batchDiagram,
		Chart:   batchChart,
		Report:  batchReport,
		Project: batchProject,
		Author:  batchAuthor,
	})
	return err
}
