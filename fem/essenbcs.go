// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

// ApplyEssenBcs enforces the essential (displacement) boundary conditions:
// every fixed DOF is decoupled from the system by row/column elimination.
// The order of enforcement across nodes does not affect the result.
func (o *Domain) ApplyEssenBcs() {
	for i, nod := range o.Str.Nodes {
		if nod.FixedX {
			o.eliminate(2 * i)
		}
		if nod.FixedY {
			o.eliminate(2*i + 1)
		}
	}
}

// eliminate zeroes row and column eq of Kb, sets the diagonal entry to 1 and
// the load entry to 0. The matrix keeps its size and the solved displacement
// at eq is exactly zero, so no special-casing is needed downstream.
func (o *Domain) eliminate(eq int) {
	for j := 0; j < o.Ny; j++ {
		o.Kb.Set(eq, j, 0)
		o.Kb.Set(j, eq, 0)
	}
	o.Kb.Set(eq, eq, 1)
	o.Fb[eq] = 0
}
