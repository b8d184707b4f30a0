// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gotruss",
	Short: "Static analysis of 2D pin-jointed trusses",
	Long: `gotruss - direct stiffness solver for 2D pin-jointed trusses

Given joint positions, member properties, applied loads and support
conditions, gotruss computes joint displacements, member internal
forces and stresses, support reactions and per-member factors of
safety.

Structure descriptions are read as JSON and results are written as
JSON, so any external process (a UI or a driver script) can use the
solver as a batch compute step:

  gotruss solve < structure.json > results.json`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
