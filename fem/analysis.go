// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/io"

	"github.com/AfiqMech/gotruss/inp"
)

// Analysis implements one static analysis run. The run is single-threaded
// and purely synchronous; all state is owned by this value and discarded
// after the results are collected.
type Analysis struct {

	// input
	Str     *inp.Structure // structure description
	Solver  string         // linear solver name
	Verbose bool           // print messages during the run

	// derived
	Dom *Domain // global system; set by Run
}

// NewAnalysis returns a new analysis with the default linear solver
func NewAnalysis(str *inp.Structure) *Analysis {
	return &Analysis{Str: str, Solver: "fullpivlu"}
}

// Run assembles the global system, enforces the support conditions, solves
// for the displacements and post-processes the member response. ErrUnstable
// is returned when the reduced system is singular, i.e. the structure is
// kinematically unstable; no further computation is performed in that case.
func (o *Analysis) Run() (err error) {

	// global system
	o.Dom = NewDomain(o.Str)
	if o.Verbose {
		io.Pf("%d node(s), %d active rod(s), %d equation(s)\n", len(o.Str.Nodes), len(o.Dom.Rods), o.Dom.Ny)
	}
	o.Dom.Assemble()
	o.Dom.ApplyEssenBcs()

	// solve
	sol := GetSolver(o.Solver)
	err = sol.Solve(o.Dom.U, o.Dom.Kb, o.Dom.Fb)
	if err != nil {
		if o.Verbose && err == ErrUnstable {
			io.Pforan("global system is singular: structure is unstable\n")
		}
		return
	}

	// member response and reactions
	o.Dom.PostProcess()
	if o.Verbose {
		io.Pf("solution completed\n")
	}
	return
}
