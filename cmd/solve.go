// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"fmt"
	goio "io"
	"os"

	"github.com/spf13/cobra"

	"github.com/AfiqMech/gotruss/fem"
	"github.com/AfiqMech/gotruss/inp"
	"github.com/AfiqMech/gotruss/out"
)

var (
	solveInput   string
	solveOutput  string
	solveStrict  bool
	solveVerbose bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a truss for displacements, forces and reactions",
	Long: `Run one static analysis: read a JSON structure description, assemble
and solve the global stiffness system, and write a JSON results
description.

On success the results carry status "success" with per-node
displacements and reactions and per-member forces, stresses and
safety factors. A kinematically unstable structure yields
{"status":"unstable"} with exit code 0; malformed input is reported
on stderr with a nonzero exit code.

Examples:
  # pipeline mode, as used by external drivers
  gotruss solve < structure.json > results.json

  # explicit files; --verbose traces the run on stdout
  gotruss solve -i structure.json -o results.json --verbose

  # reject dangling references and degenerate members
  gotruss solve --strict < structure.json`,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVarP(&solveInput, "input", "i", "", "Input structure description file (default: stdin)")
	solveCmd.Flags().StringVarP(&solveOutput, "output", "o", "", "Output results description file (default: stdout)")
	solveCmd.Flags().BoolVar(&solveStrict, "strict", false, "Treat dangling references and degenerate members as errors")
	solveCmd.Flags().BoolVar(&solveVerbose, "verbose", false, "Trace the run (combine with -o to keep stdout clean)")
}

func runSolve(cmd *cobra.Command, args []string) error {

	// read the complete input before parsing begins
	var b []byte
	var err error
	if solveInput == "" {
		b, err = goio.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(solveInput)
	}
	if err != nil {
		return err
	}
	if len(b) == 0 {
		return nil // empty pipeline input: nothing to do
	}

	// decode and validate
	str, err := inp.ParseStructure(b)
	if err != nil {
		return err
	}
	if solveStrict {
		str.Strict = true
	}
	warnings, err := str.Check()
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if err != nil {
		return err
	}

	// run the engine
	a := fem.NewAnalysis(str)
	a.Verbose = solveVerbose
	var res []byte
	err = a.Run()
	switch {
	case err == fem.ErrUnstable:
		res = out.Unstable()
	case err != nil:
		return err
	default:
		res, err = out.Collect(a.Dom).Encode()
		if err != nil {
			return err
		}
	}

	// write the complete output
	if solveOutput == "" {
		_, err = os.Stdout.Write(res)
		return err
	}
	return os.WriteFile(solveOutput, res, 0644)
}
