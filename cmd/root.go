package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexiusacademia/goscwb/internal/config"
	"github.com/alexiusacademia/goscwb/internal/logger"
	"github.com/alexiusacademia/goscwb/internal/scwb"
	"github.com/alexiusacademia/goscwb/internal/version"
)

var (
	// cfg is loaded before every command runs
	cfg  = config.DefaultConfig()
	zlog = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "goscwb",
	Short: "Strong Column Weak Beam (SCWB) Checker Tool",
	Long: `goscwb - Go Strong Column Weak Beam Checker

A CLI tool that checks beam-column joints of special moment frames
for the strong column weak beam requirement:

  ΣMnc >= 1.2 ΣMnb    (NSCP 2015 Section 418.7.3.2, ACI 318 18.7.3.2)

Run without arguments to check every joint in data/sample_data.csv
and write data/results.csv. The input table must have the columns
joint_id, sum_mc and sum_mb (kN-m); other columns are kept.

Settings are read from scwb.yaml in the working directory and from
SCWB_* environment variables (.env is loaded when present).`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(".")
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded

		l, err := logger.New(logger.Config{Level: cfg.Log.Level, Debug: cfg.Log.Debug})
		if err != nil {
			return err
		}
		zlog = l
		if cfg.File != "" {
			zlog.Debug("config.loaded", zap.String("file", cfg.File))
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zlog.Sync()
	},
	Args: cobra.NoArgs,
	Run:  runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

func printBanner(w io.Writer) {
	fmt.Fprintln(w, "==================================================")
	fmt.Fprintf(w, "   Strong Column Weak Beam (SCWB) Checker Tool    \n")
	fmt.Fprintf(w, "   goscwb v%-38s\n", version.Version)
	fmt.Fprintln(w, "==================================================")
}

// runRoot checks the configured input file. User data errors are reported
// and the command still exits normally.
func runRoot(cmd *cobra.Command, args []string) {
	w := cmd.OutOrStdout()
	printBanner(w)

	_, err := executeBatch(w, batchRun{
		Input:  cfg.Input,
		Output: cfg.OutputPath(),
		Factor: cfg.Factor,
	})
	reportBatchError(w, cfg.Input, err)
}

// reportBatchError prints a batch failure the way the user expects to read it
func reportBatchError(w io.Writer, input string, err error) {
	switch {
	case err == nil:
		return
	case scwb.IsKind(err, scwb.KindMissingInput):
		fmt.Fprintf(w, "Error: Data file not found at %s\n", input)
	case scwb.IsKind(err, scwb.KindMalformedInput):
		fmt.Fprintf(w, "Error processing file: %v\n", err)
		fmt.Fprintln(w, "Failed to process data.")
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
		fmt.Fprintln(w, "Failed to process data.")
	}
}
