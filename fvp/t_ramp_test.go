// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/rnd"
	"github.com/cpmech/gosl/utl"
)

func Test_ramp01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ramp01")

	ramp := NewRamp(1)
	chk.Float64(tst, "r(-1)", 1e-17, ramp.Factor(-1), 0)
	chk.Float64(tst, "r(0)", 1e-17, ramp.Factor(0), 0)
	chk.Float64(tst, "r(0.25)", 1e-15, ramp.Factor(0.25), 0.25)
	chk.Float64(tst, "r(0.5)", 1e-15, ramp.Factor(0.5), 0.5)
	chk.Float64(tst, "r(1)", 1e-17, ramp.Factor(1), 1)
	chk.Float64(tst, "r(2)", 1e-17, ramp.Factor(2), 1)

	if chk.Verbose {
		t := utl.LinSpace(-0.5, 1.5, 41)
		r := make([]float64, len(t))
		for i, v := range t {
			r[i] = ramp.Factor(v)
		}
		plt.Reset(false, nil)
		plt.Plot(t, r, &plt.A{C: "r", M: ".", L: "ramp"})
		plt.Gll("$t$", "$r$", nil)
		plt.Save("/tmp/esd", "ramp01")
	}
}

func Test_ramp02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ramp02. monotonic and bounded")

	rnd.Init(1234)
	for k := 0; k < 200; k++ {
		ramp := NewRamp(rnd.Float64(1e-3, 5))
		t1 := rnd.Float64(-1, 6)
		t2 := rnd.Float64(-1, 6)
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		r1, r2 := ramp.Factor(t1), ramp.Factor(t2)
		if r1 > r2 {
			tst.Errorf("test failed: ramp must be non-decreasing. r(%g)=%g > r(%g)=%g\n", t1, r1, t2, r2)
			return
		}
		for _, r := range []float64{r1, r2} {
			if r < 0 || r > 1 || math.IsNaN(r) {
				tst.Errorf("test failed: ramp factor must be in [0, 1]. %g is invalid\n", r)
				return
			}
		}
	}
}

func Test_ramp03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("ramp03. zero and negative end time")

	for _, endTime := range []float64{0, -1, VSMALL} {
		ramp := NewRamp(endTime)
		io.Pforan("endTime = %g => %g\n", endTime, ramp.EndTime)
		chk.Float64(tst, "EndTime", 1e-17, ramp.EndTime, VSMALL)
		chk.Float64(tst, "r(0) stays 0 for a zero-length ramp; r(t ≥ VSMALL) = 1", 1e-17, ramp.Factor(0), 0)
		for _, t := range []float64{1e-310, 1e-300, 1e-200, 1e-10, 1, 1e10} {
			r := ramp.Factor(t)
			if math.IsNaN(r) || math.IsInf(r, 0) {
				tst.Errorf("test failed: ramp factor must be finite. r(%g) = %g\n", t, r)
				return
			}
			if t >= VSMALL {
				chk.Float64(tst, io.Sf("r(%g)", t), 1e-17, r, 1)
			}
		}
	}
}
