// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	chk.Verbose = true
}

func Test_linelast01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast01")

	mdl, err := New("lin-elast")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mdl.Init(dbf.Params{
		&dbf.P{N: "E", V: 1000},
		&dbf.P{N: "nu", V: 0.25},
		&dbf.P{N: "rho", V: 2},
	})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}

	// K = 1000/(3・0.5) = 666.66..., G = 1000/2.5 = 400, M = K + 4G/3 = 1200
	cp, cs := mdl.WaveSpeeds()
	io.Pforan("cp = %v, cs = %v\n", cp, cs)
	chk.Float64(tst, "cp", 1e-13, cp, math.Sqrt(1200.0/2.0))
	chk.Float64(tst, "cs", 1e-15, cs, math.Sqrt(400.0/2.0))

	zp, zs := Impedances(mdl)
	chk.Float64(tst, "zp", 1e-12, zp, 2.0*math.Sqrt(600.0))
	chk.Float64(tst, "zs", 1e-13, zs, 2.0*math.Sqrt(200.0))
}

func Test_linelast02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("linelast02")

	var mdl LinElast
	for _, prms := range []dbf.Params{
		{&dbf.P{N: "E", V: -1}, &dbf.P{N: "nu", V: 0.2}, &dbf.P{N: "rho", V: 1}},
		{&dbf.P{N: "E", V: 1}, &dbf.P{N: "nu", V: 0.5}, &dbf.P{N: "rho", V: 1}},
		{&dbf.P{N: "E", V: 1}, &dbf.P{N: "nu", V: 0.2}, &dbf.P{N: "rho", V: 0}},
		{&dbf.P{N: "E", V: 1}, &dbf.P{N: "nu", V: 0.2}, &dbf.P{N: "rho", V: 1}, &dbf.P{N: "c", V: 1}},
	} {
		err := mdl.Init(prms)
		if err == nil {
			tst.Errorf("Init should have failed with %v\n", prms)
			return
		}
		io.Pforan("%v\n", err)
	}

	err := mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rho", 1e-15, mdl.GetRho(), 7.85)
}

func Test_oned01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("oned01")

	var mdl OnedLinElast
	err := mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	cp, cs := mdl.WaveSpeeds()
	chk.Float64(tst, "cp", 1e-10, cp, math.Sqrt(2.0e8/7.85))
	chk.Float64(tst, "cs", 1e-10, cs, math.Sqrt(7.5758e+07/7.85))
}

func Test_acoustic01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("acoustic01")

	mdl, err := New("acoustic")
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	err = mdl.Init(mdl.GetPrms())
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	zp, zs := Impedances(mdl)
	chk.Float64(tst, "zp", 1e-10, zp, math.Sqrt(2.2e6))
	chk.Float64(tst, "zs", 1e-17, zs, 0)

	_, err = New("dp")
	if err == nil {
		tst.Errorf("New should have failed with unknown model\n")
	}
}
