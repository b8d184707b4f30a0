// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/la"

	"github.com/AfiqMech/gotruss/inp"
)

// SafetyUndefined is the factor of safety reported for effectively
// unstressed members, where the yield/stress ratio is undefined
const SafetyUndefined = 999.0

// StressTol is the smallest stress magnitude for which the factor
// of safety is computed
const StressTol = 1e-6

// Rod represents a structural rod element (for axial loads only) with 2 nodes,
// simply implemented with constant stiffness matrix; i.e. no numerical
// integration is needed
type Rod struct {

	// basic data
	Beam *inp.Beam // beam description
	Sn   *inp.Node // start node
	En   *inp.Node // end node

	// geometry
	L float64 // length of rod
	C float64 // direction cosine; x-component of unit vector start => end
	S float64 // direction sine; y-component of unit vector start => end

	// vectors and matrices
	K [][]float64 // [4][4] element K matrix

	// assembly map (location array/element equations)
	Umap []int // global equation numbers of (startX, startY, endX, endY)

	// computed response; set by post-processing
	Force  float64 // internal axial force; tension positive
	Stress float64 // axial stress
	Safety float64 // factor of safety
}

// NewRod returns a new rod element; or nil for degenerate geometry, i.e.
// length below inp.MinLength, in which case the member must be excluded
// from assembly to avoid division by zero
func NewRod(bm *inp.Beam, sn, en *inp.Node, si, ei int) (o *Rod) {

	// geometry
	dx := en.X - sn.X
	dy := en.Y - sn.Y
	l := math.Sqrt(dx*dx + dy*dy)
	if l < inp.MinLength {
		return nil
	}

	// basic data
	o = new(Rod)
	o.Beam = bm
	o.Sn = sn
	o.En = en
	o.L = l
	o.C = dx / l
	o.S = dy / l

	// K matrix
	α := bm.E * bm.A / l
	c := o.C
	s := o.S
	o.K = [][]float64{
		{+α * c * c, +α * c * s, -α * c * c, -α * c * s},
		{+α * c * s, +α * s * s, -α * c * s, -α * s * s},
		{-α * c * c, -α * c * s, +α * c * c, +α * c * s},
		{-α * c * s, -α * s * s, +α * c * s, +α * s * s},
	}

	// assembly map
	o.Umap = []int{2 * si, 2*si + 1, 2 * ei, 2*ei + 1}
	return
}

// AddToKb adds element K to global stiffness matrix Kb. Contributions are
// accumulated since multiple rods may share a node.
func (o *Rod) AddToKb(kb *la.Matrix) {
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			kb.Add(I, J, o.K[i][j])
		}
	}
}

// Elongation computes the axial elongation for given global displacements:
// the projection of the relative end displacement onto the rod axis
func (o *Rod) Elongation(u la.Vector) float64 {
	return (u[o.Umap[2]]-u[o.Umap[0]])*o.C + (u[o.Umap[3]]-u[o.Umap[1]])*o.S
}

// CalcSig computes the internal force, axial stress and factor of safety for
// given global displacements
func (o *Rod) CalcSig(u la.Vector) {
	Δ := o.Elongation(u)
	o.Force = o.Beam.E * o.Beam.A / o.L * Δ
	o.Stress = o.Force / o.Beam.A
	if math.Abs(o.Stress) > StressTol {
		o.Safety = o.Beam.Yield / math.Abs(o.Stress)
	} else {
		o.Safety = SafetyUndefined
	}
}
