// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import (
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/utl"
)

// Ramp implements a load factor growing linearly from 0 @ t=0 to 1 @ t=EndTime
//
//        r
//    1.0 |        ,--------
//        |      ,'
//        |    ,'
//        |  ,'
//    0.0 +-'---------------- t
//        0  EndTime
//
type Ramp struct {
	EndTime float64 // time when ramp reaches 1.0; never smaller than VSMALL
	fcn     dbf.T   // ramp function
}

// NewRamp returns a new ramp. endTime ≤ 0 is replaced by VSMALL
func NewRamp(endTime float64) (o *Ramp) {
	o = new(Ramp)
	o.EndTime = utl.Max(endTime, VSMALL)
	o.fcn = dbf.New("rmp", dbf.Params{
		&dbf.P{N: "ta", V: 0},
		&dbf.P{N: "tb", V: o.EndTime},
		&dbf.P{N: "ca", V: 0},
		&dbf.P{N: "cb", V: 1},
	})
	return
}

// Factor returns the ramp factor r(t) ∈ [0, 1]
func (o Ramp) Factor(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= o.EndTime {
		return 1
	}
	return utl.Min(utl.Max(o.fcn.F(t, nil), 0), 1)
}
