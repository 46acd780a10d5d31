// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cord-explorer/internal/dataset"
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Print a diagnostic report of the raw dataset",
	Long: `Explore loads the raw metadata CSV and prints its shape, columns with
inferred types, and per-column missing-value counts. The dataset is not
modified and no artifacts are written.`,
	RunE: runExplore,
}

func init() {
	exploreCmd.Flags().String("data", "", "raw metadata CSV path (default from config)")

	rootCmd.AddCommand(exploreCmd)
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path := cfg.Data.MetadataPath
	if v, _ := cmd.Flags().GetString("data"); v != "" {
		path = v
	}

	res := dataset.Load(path)
	if !res.OK() {
		fmt.Fprintf(os.Stderr, "Could not load the dataset: %v\n", res.Err)
		return res.Err
	}

	dataset.Explore(res.Table).Write(os.Stdout)
	return nil
}
