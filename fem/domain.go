// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements the direct stiffness method for the static analysis
// of 2D pin-jointed trusses
package fem

import (
	"github.com/cpmech/gosl/la"

	"github.com/AfiqMech/gotruss/inp"
)

// Domain holds the global system of one analysis run: the active rod
// elements, the id => index maps, and the global matrix and vectors. All
// state is local to a single run; nothing is shared across runs.
//
// Node i (insertion order) owns the two consecutive global equations 2*i (x)
// and 2*i+1 (y). Note: node ids need not be contiguous or zero-based => use
// Vid2idx to locate a node in the DOF ordering.
type Domain struct {

	// input
	Str *inp.Structure // structure description

	// auxiliary maps
	Vid2idx map[int]int  // node id => index in Str.Nodes and in the DOF ordering
	Bid2rod map[int]*Rod // beam id => active rod element

	// elements
	Rods []*Rod // active rods; beams with unresolvable endpoints or degenerate geometry are excluded

	// global system
	Ny int        // total number of equations == 2 * number of nodes
	Kb *la.Matrix // [Ny][Ny] global stiffness matrix
	Fb la.Vector  // [Ny] global load vector
	U  la.Vector  // [Ny] global displacements; set by the linear solver
	R  la.Vector  // [Ny] support reactions; set by post-processing
}

// NewDomain builds the maps and active elements and allocates the global
// system for the given structure description
func NewDomain(str *inp.Structure) (o *Domain) {

	// maps
	o = new(Domain)
	o.Str = str
	o.Vid2idx = make(map[int]int)
	for i, nod := range str.Nodes {
		o.Vid2idx[nod.Id] = i
	}

	// elements
	o.Bid2rod = make(map[int]*Rod)
	for _, bm := range str.Beams {
		si, sok := o.Vid2idx[bm.Start]
		ei, eok := o.Vid2idx[bm.End]
		if !sok || !eok {
			continue // dangling reference
		}
		rod := NewRod(bm, str.Nodes[si], str.Nodes[ei], si, ei)
		if rod == nil {
			continue // degenerate geometry
		}
		o.Rods = append(o.Rods, rod)
		o.Bid2rod[bm.Id] = rod
	}

	// global system
	o.Ny = 2 * len(str.Nodes)
	o.Kb = la.NewMatrix(o.Ny, o.Ny)
	o.Fb = la.NewVector(o.Ny)
	o.U = la.NewVector(o.Ny)
	o.R = la.NewVector(o.Ny)
	return
}

// Assemble builds the global stiffness matrix by superposition of rod
// contributions and fills the global load vector from the nodal loads
func (o *Domain) Assemble() {
	for i, nod := range o.Str.Nodes {
		o.Fb[2*i] = nod.LoadX
		o.Fb[2*i+1] = nod.LoadY
	}
	for _, rod := range o.Rods {
		rod.AddToKb(o.Kb)
	}
}
