package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexiusacademia/goscwb/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or initialize goscwb configuration",
	Long: `Manage goscwb configuration.

Configuration hierarchy (highest to lowest priority):
1. CLI flags (batch and check only)
2. Environment variables (SCWB_FACTOR, SCWB_DESIGN_CODE, SCWB_INPUT,
   SCWB_OUTPUT, SCWB_LOG_LEVEL, SCWB_LOG_DEBUG), also read from .env
3. Config file (./scwb.yaml)
4. Defaults`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		if cfg.File != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "Configuration file: %s\n\n", cfg.File)
		} else {
			fmt.Fprintf(cmd.ErrOrStderr(), "No configuration file found (using defaults)\n\n")
		}

		data, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}
		fmt.Fprint(w, string(data))
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default scwb.yaml in the working directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FileName + ".yaml"
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s", path)
		}

		data, err := yaml.Marshal(config.DefaultConfig())
		if err != nil {
			return fmt.Errorf("error marshaling config: %w", err)
		}

		header := "# goscwb configuration\n" +
			"# factor: 0 takes the factor from design_code (nscp2015, aci318)\n" +
			"# output: empty writes results.csv next to the input\n\n"
		if err := os.WriteFile(path, append([]byte(header), data...), 0o644); err != nil {
			return fmt.Errorf("error writing config: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Created default configuration: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
