// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fvm implements the finite volume mesh and field data consumed by boundary conditions
package fvm

// Time holds the state of the time loop
type Time struct {
	T     float64 // current time
	Dt    float64 // current time increment
	Nstep int     // time step counter
}

// Value returns the current time
func (o *Time) Value() float64 { return o.T }

// DeltaT returns the current time increment
func (o *Time) DeltaT() float64 { return o.Dt }

// Index returns the time step counter
func (o *Time) Index() int { return o.Nstep }

// Advance moves to the next time step with increment dt
func (o *Time) Advance(dt float64) {
	o.Dt = dt
	o.T += dt
	o.Nstep++
}
