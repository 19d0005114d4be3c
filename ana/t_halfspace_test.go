// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

func verbose() {
	chk.Verbose = true
}

func Test_halfspace01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("halfspace01")

	var sol HalfSpace
	err := sol.Init(dbf.Params{
		&dbf.P{N: "E", V: 2.5},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "rho", V: 1},
		&dbf.P{N: "tr", V: 1},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "cs", 1e-15, sol.Cs, 1)
	chk.Float64(tst, "cp", 1e-15, sol.Cp, math.Sqrt(3))
	chk.Float64(tst, "zs", 1e-15, sol.Zs, 1)

	// surface
	chk.Array(tst, "v(0,0.5)", 1e-15, sol.Velocity(0, 0.5), []float64{0, 5, 5})
	chk.Array(tst, "v(0,2)", 1e-15, sol.Velocity(0, 2), []float64{0, 10, 10})
	chk.Array(tst, "t(0,2)", 1e-15, sol.Traction(0, 2), []float64{0, 10, 10})

	// wave front has not arrived
	chk.Array(tst, "v(3,2)", 1e-15, sol.Velocity(3, 2), []float64{0, 0, 0})
	chk.Array(tst, "v(1,1.5)", 1e-15, sol.Velocity(1, 1.5), []float64{0, 5, 5})

	if chk.Verbose {
		d := utl.LinSpace(0, 4, 81)
		vy := make([]float64, len(d))
		plt.Reset(false, nil)
		for _, t := range []float64{0.5, 1, 2, 3} {
			for i, x := range d {
				vy[i] = sol.Velocity(x, t)[1]
			}
			plt.Plot(d, vy, nil)
		}
		plt.Gll("$d$", "$v_y$", nil)
		plt.Save("/tmp/esd", "halfspace01")
	}
}

func Test_halfspace02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("halfspace02")

	var sol HalfSpace
	err := sol.Init(dbf.Params{
		&dbf.P{N: "rho", V: 2},
		&dbf.P{N: "nx", V: 0},
		&dbf.P{N: "nz", V: -2},
		&dbf.P{N: "tz", V: -3},
		&dbf.P{N: "tr", V: 0},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Array(tst, "n", 1e-15, sol.N, []float64{0, 0, -1})
	chk.Float64(tst, "ramp", 1e-15, sol.Ramp(1e-10), 1)
	chk.Array(tst, "t(0,1)", 1e-15, sol.Traction(0, 1), []float64{10, 10, 0})

	err = sol.Init(dbf.Params{&dbf.P{N: "nu", V: 0.5}})
	if err == nil {
		tst.Errorf("test failed: nu = 0.5 should have been detected\n")
	}
	err = sol.Init(dbf.Params{&dbf.P{N: "wrong", V: 0}})
	if err == nil {
		tst.Errorf("test failed: invalid parameter should have been detected\n")
	}
}
