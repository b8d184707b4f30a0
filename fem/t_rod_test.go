// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/AfiqMech/gotruss/inp"
)

func Test_rod01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("rod01. geometry and stiffness of inclined rod")

	// 3-4-5 triangle
	sn := &inp.Node{Id: 1, X: 0, Y: 0}
	en := &inp.Node{Id: 2, X: 3, Y: 4}
	bm := &inp.Beam{Id: 1, Start: 1, End: 2, E: 100, A: 5, Yield: 50}
	rod := NewRod(bm, sn, en, 0, 1)
	if rod == nil {
		tst.Errorf("NewRod returned nil for valid geometry\n")
		return
	}
	chk.Float64(tst, "L", 1e-15, rod.L, 5)
	chk.Float64(tst, "c", 1e-15, rod.C, 0.6)
	chk.Float64(tst, "s", 1e-15, rod.S, 0.8)
	chk.Ints(tst, "Umap", rod.Umap, []int{0, 1, 2, 3})

	// K = E*A/L * [cc cs -cc -cs; ...] with E*A/L = 100
	c, s := 0.6, 0.8
	α := 100.0
	Kcor := [][]float64{
		{+α * c * c, +α * c * s, -α * c * c, -α * c * s},
		{+α * c * s, +α * s * s, -α * c * s, -α * s * s},
		{-α * c * c, -α * c * s, +α * c * c, +α * c * s},
		{-α * c * s, -α * s * s, +α * c * s, +α * s * s},
	}
	chk.Deep2(tst, "K", 1e-13, rod.K, Kcor)
}

func Test_rod02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("rod02. degenerate geometry")

	sn := &inp.Node{Id: 1, X: 1, Y: 1}
	en := &inp.Node{Id: 2, X: 1, Y: 1}
	bm := &inp.Beam{Id: 1, Start: 1, End: 2, E: 100, A: 5, Yield: 50}
	rod := NewRod(bm, sn, en, 0, 1)
	if rod != nil {
		tst.Errorf("NewRod must return nil for zero-length member\n")
	}
}

func Test_rod03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("rod03. elongation and axial response")

	sn := &inp.Node{Id: 1, X: 0, Y: 0}
	en := &inp.Node{Id: 2, X: 2, Y: 0}
	bm := &inp.Beam{Id: 1, Start: 1, End: 2, E: 100, A: 5, Yield: 50}
	rod := NewRod(bm, sn, en, 0, 1)

	// end node displaced axially by 0.04 => N = EA/L * 0.04 = 10
	u := []float64{0, 0, 0.04, 0}
	chk.Float64(tst, "ΔL", 1e-15, rod.Elongation(u), 0.04)
	rod.CalcSig(u)
	chk.Float64(tst, "N", 1e-13, rod.Force, 10)
	chk.Float64(tst, "σ", 1e-14, rod.Stress, 2)
	chk.Float64(tst, "FS", 1e-13, rod.Safety, 25)

	// unstressed rod reports the sentinel safety factor
	rod.CalcSig([]float64{0, 0, 0, 0})
	chk.Float64(tst, "N (unloaded)", 1e-17, rod.Force, 0)
	chk.Float64(tst, "FS (unloaded)", 1e-17, rod.Safety, SafetyUndefined)
}
