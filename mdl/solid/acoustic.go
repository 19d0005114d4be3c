// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package solid

import "github.com/cpmech/gosl/fun/dbf"

// Acoustic implements an inviscid compressible medium. Shear waves do not exist (cs = 0);
// hence, conditions that prescribe tangential tractions cannot be used with this model
type Acoustic struct {
	K   float64 // bulk modulus
	Rho float64 // density
}

// add model to factory
func init() {
	allocators["acoustic"] = func() Model { return new(Acoustic) }
}

// GetRho returns density
func (o *Acoustic) GetRho() float64 {
	return o.Rho
}

// Init initialises model
func (o *Acoustic) Init(prms dbf.Params) (err error) {
	for _, p := range prms {
		switch p.N {
		case "K":
			o.K = p.V
		case "rho":
			o.Rho = p.V
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o Acoustic) GetPrms() dbf.Params {
	return dbf.Params{
		&dbf.P{N: "K", V: 2.2e6}, // [kPa]
		&dbf.P{N: "rho", V: 1.0}, // [Mg/m³]
	}
}

// WaveSpeeds returns the sound speed and zero
func (o Acoustic) WaveSpeeds() (cp, cs float64) {
	return speed(o.K, o.Rho), 0
}
