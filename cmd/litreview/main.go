// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the litreview CLI. Each analysis
// operation is a subcommand: search, abstract, claims, compare,
// citations, and gaps.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/litreview/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the litreview CLI.
var rootCmd = &cobra.Command{
	Use:   "litreview",
	Short: "Literature analysis over an open academic paper index",
	Long: `litreview analyzes academic papers through an open paper index. It
searches for papers, fetches abstracts, extracts claims from them, compares
claim sets across papers, builds citation graphs, and synthesizes
research-gap reports.

Each operation is a subcommand. Results print as readable listings by
default; use --json for machine-readable output or --out to save a YAML
report.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/", os.Stderr)
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./litreview.yaml or ~/.config/litreview/config.yaml)")
}

func initConfig() {
	setConfigDefaults()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("litreview")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "litreview"))
		}
	}

	viper.SetEnvPrefix("LITREVIEW")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
