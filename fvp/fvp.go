// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fvp implements boundary (patch) fields for finite volume solid dynamics
package fvp

// Verbose activates messages such as warnings about configuration defaults
var Verbose = false

// VSMALL is the smallest positive time accepted as ramp end time
const VSMALL = 1e-300

// Quantity indicates what the vector field represents
type Quantity int

const (
	Velocity     Quantity = iota // linear momentum per unit mass
	Displacement                 // displacement; boundary values are advanced with the contact velocity
)

// String returns the name of the quantity
func (q Quantity) String() string {
	switch q {
	case Velocity:
		return "velocity"
	case Displacement:
		return "displacement"
	}
	return "unknown"
}

// Patch defines the geometry of a set of boundary faces sharing one boundary condition
type Patch interface {
	Name() string     // name of patch
	Size() int        // number of faces
	Nf() [][]float64  // [size][3] unit outward normals
	MagSf() []float64 // [size] face areas
	FaceCells() []int // [size] owner cells
}

// Time defines the current state of the time loop
type Time interface {
	Value() float64  // current time
	DeltaT() float64 // current time increment
	Index() int      // time step counter
}

// Characteristics supplies the wave data required by characteristic (Riemann) boundary conditions.
// It is implemented by the constitutive/acoustic model of the enclosing solver.
type Characteristics interface {
	Impedances(p Patch) (zp, zs []float64, err error) // [size] normal (ρ・cp) and shear (ρ・cs) impedances
	Tractions(p Patch) (t [][]float64, err error)     // [size][3] interior traction σ・n at faces
}

// InternalField defines the (volume) field a patch field is attached to.
// Patch fields hold it as a borrowed handle; they never modify it.
type InternalField interface {
	Name() string                               // name of field; e.g. "lm", "D"
	Quantity() Quantity                         // what the field represents
	Time() Time                                 // time database
	PatchInternalValues(p Patch) [][]float64    // [size][3] values at owner cells
	PatchInternalOldValues(p Patch) [][]float64 // [size][3] values at owner cells at the previous time level
	Characteristics() Characteristics           // wave data; nil if not available
}

// Dict defines a configuration source for patch fields
type Dict interface {
	Found(key string) bool
	Word(key string) (string, error)
	Scalar(key string) (float64, error)
	Vector(key string) ([]float64, error)
	Vectors(key string) ([][]float64, error)
}
