// Copyright 2026 The Gotruss Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/AfiqMech/gotruss/fem"
	"github.com/AfiqMech/gotruss/inp"
)

// Analyze performs the complete request/response cycle of one run: decode
// the structure description, run the engine, and encode the results
// description. A kinematically unstable structure yields the "unstable"
// results description and a nil error; malformed input yields an error and
// no output. Each run is independent and idempotent given identical input.
func Analyze(input []byte) (output []byte, warnings []string, err error) {
	str, warnings, err := inp.ReadStructure(input)
	if err != nil {
		return nil, warnings, err
	}
	a := fem.NewAnalysis(str)
	err = a.Run()
	if err == fem.ErrUnstable {
		return Unstable(), warnings, nil
	}
	if err != nil {
		return nil, warnings, err
	}
	output, err = Collect(a.Dom).Encode()
	return
}
