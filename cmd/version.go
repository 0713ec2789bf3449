package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/goscwb/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goscwb",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "goscwb v%s\n", version.Version)
		fmt.Fprintf(w, "Build: %s (%s)\n", version.GitCommit, version.BuildTime)
		fmt.Fprintln(w, "Strong Column Weak Beam Checker")
		fmt.Fprintln(w, "Based on NSCP 2015 Section 418.7.3.2 / ACI 318 18.7.3.2")
		fmt.Fprintf(w, "Copyright © %s %s\n", version.Year, version.Author)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
