// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// PostProcess back-substitutes the computed displacements into each rod to
// recover internal forces, stresses and safety factors, and accumulates the
// support reactions.
//
// Each rod distributes its axial force back onto its two endpoints along the
// rod direction, with opposite signs at the two ends; contributions from all
// rods touching a node are summed. The reported reaction is the negative of
// (accumulated member contribution + applied load), which recovers the
// external support reaction required for static equilibrium.
func (o *Domain) PostProcess() {
	for _, rod := range o.Rods {
		rod.CalcSig(o.U)
		o.R[rod.Umap[0]] += rod.Force * rod.C
		o.R[rod.Umap[1]] += rod.Force * rod.S
		o.R[rod.Umap[2]] -= rod.Force * rod.C
		o.R[rod.Umap[3]] -= rod.Force * rod.S
	}
	for i, nod := range o.Str.Nodes {
		o.R[2*i] = -(o.R[2*i] + nod.LoadX)
		o.R[2*i+1] = -(o.R[2*i+1] + nod.LoadY)
	}
}
