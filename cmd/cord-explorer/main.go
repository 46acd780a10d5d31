// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the cord-explorer CLI: a two-stage
// toolkit over CORD-19 research-paper metadata. The batch stage (analyze)
// cleans the raw CSV, computes aggregates, and writes chart and data
// artifacts; the interactive stage (serve) reloads the cleaned artifact
// into a filterable dashboard.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/cord-explorer/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the cord-explorer CLI.
var rootCmd = &cobra.Command{
	Use:   "cord-explorer",
	Short: "Explore CORD-19 research-paper metadata",
	Long: `cord-explorer processes the CORD-19 metadata CSV in two stages.

The analyze stage loads and cleans the raw dataset, computes publication
aggregates, renders charts, and writes the cleaned CSV artifact. The serve
stage starts a local dashboard over that artifact with interactive year and
abstract-length filters. Run analyze before serve.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./cord-explorer.yaml or ~/.config/cord-explorer/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("cord-explorer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "cord-explorer"))
		}
	}

	viper.SetEnvPrefix("CORD_EXPLORER")
	viper.AutomaticEnv()

	setConfigDefaults()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func setConfigDefaults() {
	viper.SetDefault("data.metadata_path", "data/metadata.csv")
	viper.SetDefault("data.cleaned_path", "data/cleaned_metadata.csv")
	viper.SetDefault("data.visuals_dir", "visuals")
	viper.SetDefault("data.summary_path", "data/summary.yaml")
	viper.SetDefault("data.cache_path", "data/explorer.db")

	viper.SetDefault("clean.default_year", 2020)
	viper.SetDefault("clean.min_year", 2019)

	viper.SetDefault("analysis.top_journals", 10)
	viper.SetDefault("analysis.word_cloud_limit", 100)
	viper.SetDefault("analysis.histogram_bin_width", 10)
	viper.SetDefault("analysis.histogram_max", 500)

	viper.SetDefault("server.addr", ":8501")
	viper.SetDefault("server.default_min_year", 2020)
	viper.SetDefault("server.default_max_year", 2021)
	viper.SetDefault("server.default_min_words", 50)
	viper.SetDefault("server.sample_rows", 10)
}

// loadConfig materializes the full configuration from viper.
func loadConfig() (types.ExplorerConfig, error) {
	var cfg types.ExplorerConfig
	if err := viper.Unmarshal(&cfg); err != nil {
		return types.ExplorerConfig{}, fmt.Errorf("unmarshaling config: %w", err)
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
