// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// LinElast implements a linear elastic model for continua
type LinElast struct {
	E   float64 // Young's modulus
	Nu  float64 // Poisson's coefficient
	Rho float64 // density

	// derived
	K float64 // bulk modulus
	G float64 // shear modulus
	M float64 // P-wave modulus = K + 4G/3
}

// add model to factory
func init() {
	allocators["lin-elast"] = func() Model { return new(LinElast) }
}

// GetRho returns density
func (o *LinElast) GetRho() float64 {
	return o.Rho
}

// Init initialises model
func (o *LinElast) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		case "rho":
			o.Rho = p.V
		default:
			return chk.Err("lin-elast: parameter named %q is invalid", p.N)
		}
	}
	if o.E <= 0 {
		return chk.Err("lin-elast: E must be positive. E = %g is invalid", o.E)
	}
	if o.Nu <= -1 || o.Nu >= 0.5 {
		return chk.Err("lin-elast: nu must be in (-1, 0.5). nu = %g is invalid", o.Nu)
	}
	if o.Rho <= 0 {
		return chk.Err("lin-elast: rho must be positive. rho = %g is invalid", o.Rho)
	}
	o.K = o.E / (3.0 * (1.0 - 2.0*o.Nu))
	o.G = o.E / (2.0 * (1.0 + o.Nu))
	o.M = o.K + 4.0*o.G/3.0
	return
}

// GetPrms gets (an example) of parameters
func (o LinElast) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "E", V: 2.1e8},  // [kPa]
		&dbf.P{N: "nu", V: 0.3},   // [-]
		&dbf.P{N: "rho", V: 7.85}, // [Mg/m³]
	}
}

// WaveSpeeds returns the dilatational (P) and shear (S) wave speeds
func (o LinElast) WaveSpeeds() (cp, cs float64) {
	return speed(o.M, o.Rho), speed(o.G, o.Rho)
}
