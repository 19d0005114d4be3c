// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// HalfSpace computes the response of a quiescent linear elastic half-space to a ramped traction
// applied on a symmetry plane. Only the tangential part of the traction does work; it generates
// a plane shear wave travelling into the domain with speed cs:
//
//        n (outward)
//        ↑
//   =====o===== surface: v・n = 0, t_T = r(t) (I - n⊗n)・T
//        |
//        |  E, ν, ρ       v(d,t) = r(t - d/cs) (I - n⊗n)・T / zs
//        |
//        ↓  d (depth)
//
type HalfSpace struct {
	// input
	E  float64   // Young's modulus
	ν  float64   // Poisson's coefficient
	ρ  float64   // density
	T  []float64 // applied traction @ end of ramp
	Tr float64   // ramp end time
	N  []float64 // unit outward normal

	// derived
	Cp float64   // dilatational wave speed
	Cs float64   // shear wave speed
	Zp float64   // normal impedance
	Zs float64   // shear impedance
	tt []float64 // tangential traction (I - n⊗n)・T
}

// Init initialises this structure
//  prms -- E, nu, rho, tx, ty, tz, tr (ramp end time), nx, ny, nz
func (o *HalfSpace) Init(prms dbf.Params) (err error) {

	// default values
	o.E = 1000.0
	o.ν = 0.25
	o.ρ = 2.0
	o.T = []float64{10, 10, 10}
	o.Tr = 1.0
	o.N = []float64{1, 0, 0}

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.ν = p.V
		case "rho":
			o.ρ = p.V
		case "tx", "ty", "tz":
			o.T[p.N[1]-'x'] = p.V
		case "tr":
			o.Tr = p.V
		case "nx", "ny", "nz":
			o.N[p.N[1]-'x'] = p.V
		default:
			return chk.Err("half-space: parameter named %q is invalid", p.N)
		}
	}
	if o.E <= 0 || o.ρ <= 0 || o.ν <= -1 || o.ν >= 0.5 {
		return chk.Err("half-space: E, rho must be positive and nu in (-1, 0.5). E=%g, rho=%g, nu=%g are invalid", o.E, o.ρ, o.ν)
	}
	nn := la.Vector(o.N).Norm()
	if nn <= 0 {
		return chk.Err("half-space: normal must not be zero")
	}
	for i := range o.N {
		o.N[i] /= nn
	}

	// derived
	G := o.E / (2.0 * (1.0 + o.ν))
	M := o.E * (1.0 - o.ν) / ((1.0 + o.ν) * (1.0 - 2.0*o.ν))
	o.Cp = math.Sqrt(M / o.ρ)
	o.Cs = math.Sqrt(G / o.ρ)
	o.Zp = o.ρ * o.Cp
	o.Zs = o.ρ * o.Cs
	tn := la.VecDot(o.N, o.T)
	o.tt = make([]float64, 3)
	for i := 0; i < 3; i++ {
		o.tt[i] = o.T[i] - tn*o.N[i]
	}
	return
}

// Ramp returns the ramp factor @ time t
func (o HalfSpace) Ramp(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if o.Tr <= 0 {
		return 1
	}
	return utl.Min(t/o.Tr, 1)
}

// Velocity returns the particle velocity @ depth d and time t
func (o HalfSpace) Velocity(d, t float64) (v []float64) {
	r := o.Ramp(t - d/o.Cs)
	v = make([]float64, 3)
	for i := 0; i < 3; i++ {
		v[i] = r * o.tt[i] / o.Zs
	}
	return
}

// Traction returns the traction σ・n acting on a plane parallel to the surface @ depth d and time t
func (o HalfSpace) Traction(d, t float64) (tr []float64) {
	r := o.Ramp(t - d/o.Cs)
	tr = make([]float64, 3)
	for i := 0; i < 3; i++ {
		tr[i] = r * o.tt[i]
	}
	return
}
