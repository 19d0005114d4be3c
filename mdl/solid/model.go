// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package solid implements models for solids giving the data needed by wave propagation
// (characteristic) boundary conditions
//
//   cp = √(M/ρ)   with M the P-wave (constrained) modulus
//   cs = √(G/ρ)   with G the shear modulus
//
//   zp = ρ・cp    normal impedance
//   zs = ρ・cs    shear impedance
//
package solid

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
)

// Model defines the interface for solid models
type Model interface {
	Init(prms dbf.Params) error   // initialises model
	GetPrms() dbf.Params          // gets (an example) of parameters
	GetRho() float64              // returns density
	WaveSpeeds() (cp, cs float64) // returns the dilatational (P) and shear (S) wave speeds
}

// New returns new solid model
func New(name string) (model Model, err error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("model %q is not available in 'solid' database", name)
	}
	return allocator(), nil
}

// Impedances returns the normal and shear impedances of model
func Impedances(model Model) (zp, zs float64) {
	cp, cs := model.WaveSpeeds()
	rho := model.GetRho()
	return rho * cp, rho * cs
}

// speed returns √(modulus/ρ) or zero if ρ ≤ 0
func speed(modulus, rho float64) float64 {
	if rho <= 0 || modulus <= 0 {
		return 0
	}
	return math.Sqrt(modulus / rho)
}

// allocators holds all available solid models; modelname => allocator
var allocators = map[string]func() Model{}
