// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/fun/dbf"

// OnedLinElast implements a linear elastic model for bars; i.e. waves travel with the bar speed √(E/ρ)
type OnedLinElast struct {
	E   float64 // Young's modulus
	G   float64 // shear modulus
	Rho float64 // density
}

// add model to factory
func init() {
	allocators["oned-elast"] = func() Model { return new(OnedLinElast) }
}

// GetRho returns density
func (o *OnedLinElast) GetRho() float64 {
	return o.Rho
}

// Init initialises model
func (o *OnedLinElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "G":
			o.G = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o OnedLinElast) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: 2.0000e+08},
		&dbf.P{N: "G", V: 7.5758e+07},
		&dbf.P{N: "rho", V: 7.8500e+00},
	}
}

// WaveSpeeds returns the bar (P) and shear (S) wave speeds
func (o OnedLinElast) WaveSpeeds() (cp, cs float64) {
	return speed(o.E, o.Rho), speed(o.G, o.Rho)
}
