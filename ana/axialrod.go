// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for verifications
package ana

import "math"

// AxialRod computes the analytical solution of a prismatic rod with one end
// fully fixed and an axial load P applied at the free end
//
//              E, A
//      //o================o --> P
//        |<------ L ----->|
//
//  elongation:  ΔL = P·L/(E·A)
//  force:       N  = P            (tension positive)
//  stress:      σ  = P/A
//  safety:      FS = σy/|σ|
type AxialRod struct {
	L  float64 // length
	E  float64 // Young's modulus
	A  float64 // cross-sectional area
	Sy float64 // yield strength
	P  float64 // axial load; tension positive
}

// Elongation returns the change in length
func (o *AxialRod) Elongation() float64 {
	return o.P * o.L / (o.E * o.A)
}

// Force returns the internal axial force
func (o *AxialRod) Force() float64 {
	return o.P
}

// Stress returns the axial stress
func (o *AxialRod) Stress() float64 {
	return o.P / o.A
}

// SafetyFactor returns the ratio of yield strength to working stress
func (o *AxialRod) SafetyFactor() float64 {
	return o.Sy / math.Abs(o.Stress())
}
