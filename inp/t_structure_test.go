// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_read01(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("read01. decode structure description")

	b := []byte(`{
		"nodes": [
			{"id": 1, "x": 0, "y": 0, "isFixedX": true, "isFixedY": true},
			{"id": 2, "x": 2, "y": 0, "loadX": 10, "isFixedY": true}
		],
		"elements": [
			{"id": 1, "start": 1, "end": 2, "E": 100, "A": 5, "yield": 50}
		]
	}`)
	str, warnings, err := ReadStructure(b)
	if err != nil {
		tst.Errorf("ReadStructure failed:\n%v\n", err)
		return
	}
	if len(warnings) != 0 {
		tst.Errorf("unexpected warnings: %v\n", warnings)
		return
	}
	if len(str.Nodes) != 2 || len(str.Beams) != 1 {
		tst.Errorf("wrong number of nodes/beams: %d, %d\n", len(str.Nodes), len(str.Beams))
		return
	}

	n2 := str.Nodes[1]
	chk.Float64(tst, "x2", 1e-17, n2.X, 2)
	chk.Float64(tst, "loadX2", 1e-17, n2.LoadX, 10)
	if n2.FixedX || !n2.FixedY {
		tst.Errorf("wrong fixity flags at node 2: %v, %v\n", n2.FixedX, n2.FixedY)
	}

	bm := str.Beams[0]
	if bm.Start != 1 || bm.End != 2 {
		tst.Errorf("wrong beam connectivity: %d => %d\n", bm.Start, bm.End)
	}
	chk.Float64(tst, "E", 1e-17, bm.E, 100)
	chk.Float64(tst, "A", 1e-17, bm.A, 5)
	chk.Float64(tst, "yield", 1e-17, bm.Yield, 50)
}

func Test_read02(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("read02. malformed input fails fast")

	// empty input
	_, err := ParseStructure([]byte("  \n\t "))
	if err == nil {
		tst.Errorf("empty input must fail\n")
		return
	}

	// unparseable input
	_, err = ParseStructure([]byte(`{"nodes": [`))
	if err == nil {
		tst.Errorf("truncated JSON must fail\n")
		return
	}

	// no nodes
	str, _ := ParseStructure([]byte(`{"nodes": [], "elements": []}`))
	_, err = str.Check()
	if err == nil {
		tst.Errorf("empty node set must fail\n")
	}
}

func Test_read03(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("read03. invariant violations")

	// duplicate node id
	str := &Structure{Nodes: []*Node{{Id: 1}, {Id: 1, X: 1}}}
	_, err := str.Check()
	if err == nil {
		tst.Errorf("duplicate node id must fail\n")
		return
	}

	// nonpositive E
	str = &Structure{
		Nodes: []*Node{{Id: 1}, {Id: 2, X: 1}},
		Beams: []*Beam{{Id: 1, Start: 1, End: 2, E: 0, A: 5}},
	}
	_, err = str.Check()
	if err == nil {
		tst.Errorf("nonpositive E must fail\n")
		return
	}

	// nonpositive A
	str.Beams[0].E = 100
	str.Beams[0].A = -1
	_, err = str.Check()
	if err == nil {
		tst.Errorf("nonpositive A must fail\n")
	}
}

func Test_read04(tst *testing.T) {

	//chk.Verbose = true
	chk.PrintTitle("read04. permissive versus strict policies")

	newstr := func() *Structure {
		return &Structure{
			Nodes: []*Node{{Id: 1}, {Id: 2, X: 1}, {Id: 3, X: 1}},
			Beams: []*Beam{
				{Id: 1, Start: 1, End: 2, E: 100, A: 5},
				{Id: 2, Start: 1, End: 99, E: 100, A: 5}, // dangling
				{Id: 3, Start: 2, End: 3, E: 100, A: 5},  // zero length
			},
		}
	}

	// permissive: warnings only
	str := newstr()
	warnings, err := str.Check()
	if err != nil {
		tst.Errorf("permissive Check must not fail:\n%v\n", err)
		return
	}
	if len(warnings) != 2 {
		tst.Errorf("wrong number of warnings: %d != 2\n%v\n", len(warnings), warnings)
		return
	}

	// strict: same defects become an error
	str = newstr()
	str.Strict = true
	warnings, err = str.Check()
	if err == nil {
		tst.Errorf("strict Check must fail\n")
		return
	}
	if len(warnings) != 2 {
		tst.Errorf("strict Check must still report the warnings: %d != 2\n", len(warnings))
	}
}
