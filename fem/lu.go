// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// machEps is the smallest number satisfying 1.0 + machEps > 1.0
const machEps = 2.220446049250313e-16

// FullPivLU solves a dense linear system by Gaussian elimination with full
// (row and column) pivoting. A pivot smaller than n*machEps times the
// largest pivot found so far indicates a rank-deficient system and yields
// ErrUnstable with no partial results.
type FullPivLU struct{}

func init() {
	SetSolverAllocator("fullpivlu", func() LinearSolver { return new(FullPivLU) })
}

// Solve solves kb*u = fb. kb and fb are preserved. For tens to low hundreds
// of DOFs the elimination runs well under a millisecond; no iterative
// refinement is performed.
func (o *FullPivLU) Solve(u la.Vector, kb *la.Matrix, fb la.Vector) (err error) {

	// check
	n := len(fb)
	if kb.M != n || kb.N != n || len(u) != n {
		return chk.Err("matrix and vector dimensions are incompatible: %d x %d versus %d", kb.M, kb.N, n)
	}

	// work on copies
	A := kb.GetCopy()
	b := la.NewVector(n)
	copy(b, fb)

	// cperm[j] == index of the unknown sitting at column j after column swaps
	cperm := make([]int, n)
	for j := 0; j < n; j++ {
		cperm[j] = j
	}

	// forward elimination with full pivoting
	maxPivot := 0.0
	for k := 0; k < n; k++ {

		// locate the largest remaining entry
		p, q, big := k, k, 0.0
		for i := k; i < n; i++ {
			for j := k; j < n; j++ {
				if a := math.Abs(A.Get(i, j)); a > big {
					p, q, big = i, j, a
				}
			}
		}
		if big > maxPivot {
			maxPivot = big
		}
		if big <= float64(n)*machEps*maxPivot {
			return ErrUnstable
		}

		// swap row k with row p; entries left of column k are never read again
		if p != k {
			for j := k; j < n; j++ {
				akj := A.Get(k, j)
				A.Set(k, j, A.Get(p, j))
				A.Set(p, j, akj)
			}
			b[k], b[p] = b[p], b[k]
		}

		// swap column k with column q
		if q != k {
			for i := 0; i < n; i++ {
				aik := A.Get(i, k)
				A.Set(i, k, A.Get(i, q))
				A.Set(i, q, aik)
			}
			cperm[k], cperm[q] = cperm[q], cperm[k]
		}

		// eliminate entries below the pivot
		for i := k + 1; i < n; i++ {
			f := A.Get(i, k) / A.Get(k, k)
			if f == 0 {
				continue
			}
			for j := k; j < n; j++ {
				A.Set(i, j, A.Get(i, j)-f*A.Get(k, j))
			}
			b[i] -= f * b[k]
		}
	}

	// back substitution, undoing the column permutation on the fly
	for i := n - 1; i >= 0; i-- {
		s := b[i]
		for j := i + 1; j < n; j++ {
			s -= A.Get(i, j) * u[cperm[j]]
		}
		u[cperm[i]] = s / A.Get(i, i)
	}
	return
}
