// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a JSON structure description
package inp

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// MinLength is the smallest member length considered valid. Members shorter
// than this are degenerate and excluded from assembly.
const MinLength = 1e-9

// Node holds data for one pin joint: position, applied load, and support
// (fixity) flags. Each node has two translational degrees of freedom.
type Node struct {
	Id     int     `json:"id"`       // unique identifier
	X      float64 `json:"x"`        // x-coordinate
	Y      float64 `json:"y"`        // y-coordinate
	LoadX  float64 `json:"loadX"`    // applied force, x-component
	LoadY  float64 `json:"loadY"`    // applied force, y-component
	FixedX bool    `json:"isFixedX"` // x-displacement prescribed to zero
	FixedY bool    `json:"isFixedY"` // y-displacement prescribed to zero
}

// Beam holds data for one axial-only member connecting two nodes
type Beam struct {
	Id    int     `json:"id"`    // unique identifier
	Start int     `json:"start"` // id of start node
	End   int     `json:"end"`   // id of end node
	E     float64 `json:"E"`     // Young's modulus
	A     float64 `json:"A"`     // cross-sectional area
	Yield float64 `json:"yield"` // yield strength, for safety-factor reporting only
}

// Structure holds the complete structure description of one analysis run
type Structure struct {
	Nodes  []*Node `json:"nodes"`    // all joints
	Beams  []*Beam `json:"elements"` // all members
	Strict bool    `json:"strict"`   // treat dangling references and degenerate members as errors
}

// ParseStructure decodes a JSON structure description. The input is read in
// full by the caller before parsing begins.
func ParseStructure(b []byte) (o *Structure, err error) {
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, chk.Err("structure description is empty")
	}
	o = new(Structure)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse structure description: %v", err)
	}
	return
}

// Check validates the structure description. Duplicate node ids and
// nonpositive stiffness properties are hard errors. Beams referencing a
// nonexistent node and beams with near-zero length are returned as warnings
// and will be excluded from assembly; with Strict set they become errors too,
// since the permissive policy can mask modelling mistakes.
func (o *Structure) Check() (warnings []string, err error) {
	if len(o.Nodes) < 1 {
		return nil, chk.Err("structure has no nodes")
	}
	n2i := make(map[int]int)
	for i, nod := range o.Nodes {
		if _, ok := n2i[nod.Id]; ok {
			return nil, chk.Err("duplicate node id %d", nod.Id)
		}
		n2i[nod.Id] = i
	}
	for _, bm := range o.Beams {
		if bm.E <= 0 {
			return nil, chk.Err("beam %d has nonpositive Young's modulus E=%g", bm.Id, bm.E)
		}
		if bm.A <= 0 {
			return nil, chk.Err("beam %d has nonpositive cross-sectional area A=%g", bm.Id, bm.A)
		}
		si, sok := n2i[bm.Start]
		ei, eok := n2i[bm.End]
		if !sok || !eok {
			warnings = append(warnings, io.Sf("beam %d references nonexistent node (start=%d, end=%d)", bm.Id, bm.Start, bm.End))
			continue
		}
		dx := o.Nodes[ei].X - o.Nodes[si].X
		dy := o.Nodes[ei].Y - o.Nodes[si].Y
		if math.Sqrt(dx*dx+dy*dy) < MinLength {
			warnings = append(warnings, io.Sf("beam %d has near-zero length", bm.Id))
		}
	}
	if o.Strict && len(warnings) > 0 {
		return warnings, chk.Err("invalid structure: %d defective beam(s); first problem: %s", len(warnings), warnings[0])
	}
	return
}

// ReadStructure parses and validates a structure description in one go
func ReadStructure(b []byte) (o *Structure, warnings []string, err error) {
	o, err = ParseStructure(b)
	if err != nil {
		return
	}
	warnings, err = o.Check()
	return
}
