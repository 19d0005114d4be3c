// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// SymmetricTraction implements a symmetric (mirror) boundary with prescribed traction.
// The contact state is computed by the acoustic Riemann solver (see Contact):
// the normal velocity vanishes, the tangential traction follows the ramped applied
// traction and outgoing waves leave the domain without reflection of spurious data.
//
//  Example of dictionary:
//
//    "symm" : {
//      "type"        : "symmetricTraction",
//      "traction"    : [10, 10, 10],
//      "rampEndTime" : 1.0
//    }
//
type SymmetricTraction struct {
	FixedValue

	// parameters
	Traction    []float64 // applied traction @ end of ramp
	RampEndTime float64   // ramp end time; ≥ VSMALL

	// auxiliary
	ramp     *Ramp       // ramp factor function
	tC       [][]float64 // [size][3] contact traction computed by last update
	old      [][]float64 // [size][3] boundary values at the beginning of the time step (displacement only)
	oldIndex int         // time index corresponding to old; -1 => not set
}

// add symmetricTraction to factory
func init() {
	SetAllocator("symmetricTraction",
		func(p Patch, iF InternalField, dict Dict) (PatchField, error) {
			return NewSymmetricTractionDict(p, iF, dict)
		},
		func(src PatchField, p Patch, iF InternalField, m Mapper) (PatchField, error) {
			ptf, ok := src.(*SymmetricTraction)
			if !ok {
				return nil, chk.Err("cannot map patch field of type %q as symmetricTraction", src.Type())
			}
			return NewSymmetricTractionMapped(ptf, p, iF, m), nil
		},
		func(p Patch, iF InternalField) PatchField {
			return NewSymmetricTraction(p, iF)
		},
	)
}

// NewSymmetricTraction returns a new symmetric traction condition with zero traction and zero values
func NewSymmetricTraction(p Patch, iF InternalField) (o *SymmetricTraction) {
	o = new(SymmetricTraction)
	o.FixedValue.init(p, iF)
	o.setParams([]float64{0, 0, 0}, VSMALL)
	return
}

// NewSymmetricTractionDict returns a new symmetric traction condition with data from dictionary.
//  Optional keys:
//   traction    -- applied traction; default = (0,0,0)
//   rampEndTime -- ramp end time; default = VSMALL
//   value       -- boundary values; default = patch internal values
//  Malformed traction or rampEndTime are replaced by their defaults.
func NewSymmetricTractionDict(p Patch, iF InternalField, dict Dict) (o *SymmetricTraction, err error) {
	o = new(SymmetricTraction)
	err = o.FixedValue.initDict(p, iF, dict)
	if err != nil {
		return nil, err
	}
	traction := []float64{0, 0, 0}
	if dict.Found("traction") {
		v, e := dict.Vector("traction")
		switch {
		case e != nil:
			warnDefault(p.Name(), "traction", e, traction)
		case len(v) != 3:
			warnDefault(p.Name(), "traction", chk.Err("traction must have 3 components. %v is invalid", v), traction)
		default:
			traction = v
		}
	}
	rampEndTime := VSMALL
	if dict.Found("rampEndTime") {
		v, e := dict.Scalar("rampEndTime")
		switch {
		case e != nil:
			warnDefault(p.Name(), "rampEndTime", e, rampEndTime)
		case v < 0:
			warnDefault(p.Name(), "rampEndTime", chk.Err("rampEndTime must not be negative. %g is invalid", v), rampEndTime)
		default:
			rampEndTime = v
		}
	}
	o.setParams(traction, rampEndTime)
	return
}

// NewSymmetricTractionMapped returns a new symmetric traction condition by mapping src onto a new patch
func NewSymmetricTractionMapped(src *SymmetricTraction, p Patch, iF InternalField, m Mapper) (o *SymmetricTraction) {
	o = new(SymmetricTraction)
	o.FixedValue.initMapped(&src.FixedValue, p, iF, m)
	o.setParams(src.Traction, src.RampEndTime)
	return
}

// Copy returns a deep copy sharing the same internal field
func (o *SymmetricTraction) Copy() *SymmetricTraction {
	return o.CopyWith(o.iF)
}

// CopyWith returns a deep copy attached to the internal field iF
func (o *SymmetricTraction) CopyWith(iF InternalField) (res *SymmetricTraction) {
	res = new(SymmetricTraction)
	res.FixedValue.copyFrom(&o.FixedValue, iF)
	res.setParams(o.Traction, o.RampEndTime)
	res.tC = cloneVecs(o.tC)
	res.old = cloneVecs(o.old)
	res.oldIndex = o.oldIndex
	return
}

// setParams sets parameters and allocates the ramp function
func (o *SymmetricTraction) setParams(traction []float64, rampEndTime float64) {
	o.Traction = cloneVec(traction)
	o.ramp = NewRamp(rampEndTime)
	o.RampEndTime = o.ramp.EndTime
	o.oldIndex = -1
}

// Type returns the type tag
func (o *SymmetricTraction) Type() string { return "symmetricTraction" }

// RampFactor returns the ramp factor @ time t
func (o *SymmetricTraction) RampFactor(t float64) float64 {
	return o.ramp.Factor(t)
}

// TargetTraction returns the ramped applied traction @ time t
func (o *SymmetricTraction) TargetTraction(t float64) (res []float64) {
	r := o.ramp.Factor(t)
	res = make([]float64, len(o.Traction))
	for i, v := range o.Traction {
		res[i] = r * v
	}
	return
}

// ContactTraction returns the contact traction computed by the last update; nil before any update
func (o *SymmetricTraction) ContactTraction() [][]float64 {
	return o.tC
}

// UpdateCoeffs computes the boundary values with the Riemann solver
func (o *SymmetricTraction) UpdateCoeffs() (err error) {

	// skip if up-to-date
	if o.updated {
		return
	}

	// collaborators
	p := o.patch
	if o.iF == nil {
		return chk.Err("symmetricTraction %q: internal field is not set", p.Name())
	}
	chars := o.iF.Characteristics()
	if chars == nil {
		return chk.Err("symmetricTraction %q: characteristic (wave) data of field %q is not available", p.Name(), o.iF.Name())
	}
	zp, zs, err := chars.Impedances(p)
	if err != nil {
		return chk.Err("symmetricTraction %q: cannot get impedances:\n%v", p.Name(), err)
	}
	tM, err := chars.Tractions(p)
	if err != nil {
		return chk.Err("symmetricTraction %q: cannot get interior tractions:\n%v", p.Name(), err)
	}
	nf := p.Nf()
	nfaces := len(o.values)
	if len(nf) != nfaces || len(zp) != nfaces || len(zs) != nfaces || len(tM) != nfaces {
		return chk.Err("symmetricTraction %q: collaborators data must have %d faces. len(nf)=%d, len(zp)=%d, len(zs)=%d, len(t)=%d", p.Name(), nfaces, len(nf), len(zp), len(zs), len(tM))
	}

	// ramped traction
	time := o.iF.Time()
	tP := o.TargetTraction(time.Value())

	// interior velocity
	var vM [][]float64
	quantity := o.iF.Quantity()
	switch quantity {
	case Velocity:
		vM = o.iF.PatchInternalValues(p)
	case Displacement:
		dt := time.DeltaT()
		if dt <= 0 {
			return chk.Err("symmetricTraction %q: Δt must be positive for displacement fields. Δt=%g is invalid", p.Name(), dt)
		}
		if o.oldIndex != time.Index() {
			o.old = cloneVecs(o.values)
			o.oldIndex = time.Index()
		}
		u := o.iF.PatchInternalValues(p)
		u0 := o.iF.PatchInternalOldValues(p)
		if len(u0) != len(u) {
			return chk.Err("symmetricTraction %q: old internal values are not available", p.Name())
		}
		vM = make([][]float64, len(u))
		for i := range u {
			vM[i] = make([]float64, len(u[i]))
			for j := range u[i] {
				vM[i][j] = (u[i][j] - u0[i][j]) / dt
			}
		}
	default:
		return chk.Err("symmetricTraction %q: cannot handle %v fields", p.Name(), quantity)
	}
	if len(vM) != nfaces {
		return chk.Err("symmetricTraction %q: number of internal values (%d) must be equal to the number of faces (%d)", p.Name(), len(vM), nfaces)
	}

	// Riemann solver
	if len(o.tC) != nfaces {
		o.tC = make([][]float64, nfaces)
		for i := 0; i < nfaces; i++ {
			o.tC[i] = make([]float64, 3)
		}
	}
	vC := make([]float64, 3)
	for i := 0; i < nfaces; i++ {
		err = Contact(vC, o.tC[i], nf[i], vM[i], tM[i], tP, zp[i], zs[i])
		if err != nil {
			return chk.Err("symmetricTraction %q: Riemann solver failed @ face %d:\n%v", p.Name(), i, err)
		}
		switch quantity {
		case Velocity:
			copy(o.values[i], vC)
		case Displacement:
			dt := time.DeltaT()
			for j := 0; j < 3; j++ {
				o.values[i][j] = o.old[i][j] + dt*vC[j]
			}
		}
	}
	if Verbose {
		io.Pf("symmetricTraction %q: t = %g, ramp = %g\n", p.Name(), time.Value(), o.ramp.Factor(time.Value()))
	}
	return o.FixedValue.UpdateCoeffs()
}

// AutoMap maps values in place. Auxiliary data is discarded
func (o *SymmetricTraction) AutoMap(m Mapper) {
	o.FixedValue.AutoMap(m)
	o.tC = nil
	o.old = nil
	o.oldIndex = -1
}

// Rmap reverse-maps values of src onto this field; src must be a symmetricTraction
func (o *SymmetricTraction) Rmap(src PatchField, addr []int) {
	ptf, ok := src.(*SymmetricTraction)
	if !ok {
		chk.Panic("cannot reverse-map patch field of type %q onto symmetricTraction", src.Type())
	}
	o.rmap(ptf.values, addr)
	o.tC = nil
	o.old = nil
	o.oldIndex = -1
}

// Clone returns an independent copy
func (o *SymmetricTraction) Clone() PatchField {
	return o.CopyWith(o.iF)
}

// CloneWith returns an independent copy attached to another internal field
func (o *SymmetricTraction) CloneWith(iF InternalField) PatchField {
	return o.CopyWith(iF)
}

// Write writes traction, rampEndTime and values as a dictionary
func (o *SymmetricTraction) Write(buf *bytes.Buffer, indent string) {
	var e Entries
	e.Add("type", FmtWord(o.Type()))
	e.Add("traction", FmtVector(o.Traction))
	e.Add("rampEndTime", FmtScalar(o.RampEndTime))
	o.addValue(&e, indent)
	e.Write(buf, indent)
}
