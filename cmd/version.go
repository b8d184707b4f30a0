// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const Version = "1.0.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gotruss",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gotruss v%s\n", Version)
		fmt.Println("Direct stiffness solver for 2D pin-jointed trusses")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
