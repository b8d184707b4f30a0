// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// LinearSolver solves the dense linear system Kb*u = fb for the unknown
// displacements, reporting invertibility instead of assuming it
type LinearSolver interface {
	Solve(u la.Vector, kb *la.Matrix, fb la.Vector) error
}

// ErrUnstable indicates a singular or near-singular global system: the
// structure is kinematically unstable (e.g. insufficient supports or a
// mechanism) and no displacements can be computed
var ErrUnstable = chk.Err("structure is kinematically unstable")

// solverAllocators holds all available linear solvers
var solverAllocators = make(map[string]func() LinearSolver)

// SetSolverAllocator registers a linear solver
func SetSolverAllocator(name string, allocator func() LinearSolver) {
	solverAllocators[name] = allocator
}

// GetSolver returns a new linear solver. It panics if the name is unknown.
func GetSolver(name string) LinearSolver {
	allocator, ok := solverAllocators[name]
	if !ok {
		chk.Panic("cannot find linear solver named %q", name)
	}
	return allocator()
}
