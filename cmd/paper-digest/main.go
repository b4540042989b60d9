// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the paper-digest CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-digest/internal/logging"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is built from the log flags before any subcommand runs.
var logger = logging.Discard()

// rootCmd is the base command for the paper-digest CLI.
var rootCmd = &cobra.Command{
	Use:   "paper-digest",
	Short: "Extract and enrich papers from the weekly ML papers digest",
	Long: `paper-digest turns the weekly ML papers digest into a table of papers and
enriches every arXiv entry with metadata scraped from its abstract page.

Each stage is a subcommand: download fetches and trims the digest, extract
parses its tables into papers.tsv, and enrich fetches arXiv pages in
parallel and writes papers_enriched.tsv. run chains all three.`,
	Version:      version,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lc := logConfig()
		l, err := logging.New(logging.Options{
			Level:  lc.Level,
			Format: lc.Format,
		})
		if err != nil {
			return err
		}
		logger = l
		slog.SetDefault(l)
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.SetVersionTemplate("paper-digest {{.Version}}\n")

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./paper-digest.yaml or ~/.config/paper-digest/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "", "log format: console or json (default: console on a terminal)")
	rootCmd.PersistentFlags().String("user-agent", defaultUserAgent, "User-Agent header for HTTP requests")

	bindFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	bindFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	bindFlag("http.user_agent", rootCmd.PersistentFlags().Lookup("user-agent"))
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("paper-digest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "paper-digest"))
		}
	}

	viper.SetEnvPrefix("PAPER_DIGEST")
	viper.SetEnvKeyReplacer(envKeyReplacer)
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
