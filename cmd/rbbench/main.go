// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Rbbench times bulk operations on persistent rbmap trees.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// version is set by the linker.
var version = "devel"

func main() {
	rootCmd := &cobra.Command{
		Use:           "rbbench",
		Short:         "Benchmark persistent red-black tree maps",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(versionCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rbbench %s\n", version)
		},
	}
}

func runCmd() *cobra.Command {
	var cfgFile string
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Insert random keys into a tree and report the time taken",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			res, err := runBench(cfg)
			if err != nil {
				return err
			}
			res.print(cmd.OutOrStdout())
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (default is ./.rbbench.yaml or $HOME/.rbbench.yaml)")
	f.Int("n", defaultN, "number of entries to insert")
	f.Uint64("seed", 0, "random seed; 0 picks one")
	f.Float64("removals", 0, "fraction of the inserted keys to remove afterwards")
	f.Bool("check", false, "verify the tree invariants after each phase")
	f.String("log-level", "info", "log level (debug traces every rebalancing step)")
	return cmd
}
