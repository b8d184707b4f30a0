// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out collects the computed response from a solved domain and encodes
// the JSON results description consumed by external drivers
package out

import (
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/AfiqMech/gotruss/fem"
)

// NodeResult holds the computed response at one joint
type NodeResult struct {
	Id int     `json:"id"` // node id
	Ux float64 `json:"ux"` // x-displacement
	Uy float64 `json:"uy"` // y-displacement
	Rx float64 `json:"rx"` // x-reaction
	Ry float64 `json:"ry"` // y-reaction
}

// ElemResult holds the computed response of one member
type ElemResult struct {
	Id     int     `json:"id"`     // beam id
	Force  float64 `json:"force"`  // internal axial force; tension positive
	Stress float64 `json:"stress"` // axial stress
	Safety float64 `json:"safety"` // factor of safety
}

// Results holds the results description of one successful run
type Results struct {
	Status   string       `json:"status"`
	Nodes    []NodeResult `json:"nodes"`
	Elements []ElemResult `json:"elements"`
}

// Collect extracts the response fields from a solved domain. Values that are
// not finite (possible for degenerate inputs that pass the invertibility
// check only approximately) are sanitized to zero. Beams that were excluded
// from assembly carry no load and report zero force and the undefined safety
// sentinel.
func Collect(dom *fem.Domain) (res *Results) {
	res = &Results{Status: "success"}
	res.Nodes = make([]NodeResult, len(dom.Str.Nodes))
	for i, nod := range dom.Str.Nodes {
		res.Nodes[i] = NodeResult{
			Id: nod.Id,
			Ux: sane(dom.U[2*i]),
			Uy: sane(dom.U[2*i+1]),
			Rx: sane(dom.R[2*i]),
			Ry: sane(dom.R[2*i+1]),
		}
	}
	res.Elements = make([]ElemResult, len(dom.Str.Beams))
	for i, bm := range dom.Str.Beams {
		r := ElemResult{Id: bm.Id, Safety: fem.SafetyUndefined}
		if rod, ok := dom.Bid2rod[bm.Id]; ok {
			r.Force = sane(rod.Force)
			r.Stress = sane(rod.Stress)
			r.Safety = sane(rod.Safety)
		}
		res.Elements[i] = r
	}
	return
}

// Encode encodes the results description as JSON
func (o *Results) Encode() (b []byte, err error) {
	b, err = json.Marshal(o)
	if err != nil {
		return nil, chk.Err("cannot encode results description: %v", err)
	}
	return
}

// Unstable returns the results description of a kinematically unstable run.
// This is the engine's sole failure-reporting channel to its caller.
func Unstable() []byte {
	return []byte(`{"status":"unstable"}`)
}

// sane replaces NaN and infinite values by zero
func sane(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
