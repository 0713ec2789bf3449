package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscwb/internal/config"
	"github.com/alexiusacademia/goscwb/internal/scwb"
)

var (
	// Joint capacities (kN-m)
	checkMc     float64
	checkMb     float64
	checkFactor float64
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check a single joint",
	Long: `Check the strong column weak beam requirement for one joint given
the summed nominal moment capacities of its columns and beams.

  ΣMnc >= factor × ΣMnb

Examples:
  # Strong column: 100 >= 1.2 × 50
  goscwb check --mc 100 --mb 50

  # Weak column with a custom factor
  goscwb check --mc 60 --mb 60 --factor 1.2`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().Float64Var(&checkMc, "mc", 0, "Sum of column nominal moment capacities ΣMnc (kN-m) [required]")
	checkCmd.Flags().Float64Var(&checkMb, "mb", 0, "Sum of beam nominal moment capacities ΣMnb (kN-m) [required]")
	checkCmd.Flags().Float64VarP(&checkFactor, "factor", "f", 0, "Safety factor (default from config or design code)")

	checkCmd.MarkFlagRequired("mc")
	checkCmd.MarkFlagRequired("mb")
}

func runCheck(cmd *cobra.Command, args []string) error {
	factor := cfg.Factor
	if cmd.Flags().Changed("factor") {
		if err := config.ValidateFactor(checkFactor); err != nil {
			return err
		}
		factor = checkFactor
	}

	r := scwb.NewChecker(factor).Check(checkMc, checkMb)
	w := cmd.OutOrStdout()

	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w, "        STRONG COLUMN WEAK BEAM CHECK - NSCP 2015 418.7.3.2")
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)

	fmt.Fprintln(w, "INPUT DATA:")
	fmt.Fprintln(w, "───────────────────────────────────────────────────────────────")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Column capacities (ΣMnc):\t%.2f kN-m\n", r.SumMC)
	fmt.Fprintf(tw, "  Beam capacities (ΣMnb):\t%.2f kN-m\n", r.SumMB)
	fmt.Fprintf(tw, "  Safety factor:\t%.2f\n", factor)
	tw.Flush()
	fmt.Fprintln(w)

	fmt.Fprintln(w, "RESULT:")
	fmt.Fprintln(w, "───────────────────────────────────────────────────────────────")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  Required ΣMnc (%.2f × ΣMnb):\t%.2f kN-m\n", factor, r.RequiredMC)
	fmt.Fprintf(tw, "  Capacity ratio ΣMnc/ΣMnb:\t%s\n", r.FormatRatio())
	tw.Flush()
	fmt.Fprintln(w)

	status := "✓"
	if !r.IsSafe {
		status = "⚠"
	}
	fmt.Fprintf(w, "  %s %s\n", status, r.Message)
	fmt.Fprintln(w)
	return nil
}
