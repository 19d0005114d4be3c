// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// FixedValue implements a boundary condition prescribing the values at each face (Dirichlet).
// It is also the base of other fixed-value conditions which recompute their values in UpdateCoeffs.
type FixedValue struct {
	patch   Patch         // the patch
	iF      InternalField // internal field (borrowed; may be nil)
	values  [][]float64   // [size][3] boundary values
	updated bool          // UpdateCoeffs has been called and values were not consumed yet
}

// add fixedValue to factory
func init() {
	SetAllocator("fixedValue",
		func(p Patch, iF InternalField, dict Dict) (PatchField, error) {
			return NewFixedValueDict(p, iF, dict)
		},
		func(src PatchField, p Patch, iF InternalField, m Mapper) (PatchField, error) {
			ptf, ok := src.(*FixedValue)
			if !ok {
				return nil, chk.Err("cannot map patch field of type %q as fixedValue", src.Type())
			}
			return NewFixedValueMapped(ptf, p, iF, m), nil
		},
		func(p Patch, iF InternalField) PatchField {
			return NewFixedValue(p, iF)
		},
	)
}

// NewFixedValue returns a new fixed value patch field with zero values
func NewFixedValue(p Patch, iF InternalField) (o *FixedValue) {
	o = new(FixedValue)
	o.init(p, iF)
	return
}

// NewFixedValueDict returns a new fixed value patch field with values from dictionary.
// If "value" is not given, values are initialised with the patch internal values.
func NewFixedValueDict(p Patch, iF InternalField, dict Dict) (o *FixedValue, err error) {
	o = new(FixedValue)
	err = o.initDict(p, iF, dict)
	return
}

// NewFixedValueMapped returns a new fixed value patch field by mapping src onto a new patch
func NewFixedValueMapped(src *FixedValue, p Patch, iF InternalField, m Mapper) (o *FixedValue) {
	o = new(FixedValue)
	o.initMapped(src, p, iF, m)
	return
}

// init initialises the base data with zero values
func (o *FixedValue) init(p Patch, iF InternalField) {
	o.patch = p
	o.iF = iF
	o.values = make([][]float64, p.Size())
	for i := 0; i < p.Size(); i++ {
		o.values[i] = make([]float64, 3)
	}
}

// initDict initialises the base data from dictionary
func (o *FixedValue) initDict(p Patch, iF InternalField, dict Dict) (err error) {
	o.init(p, iF)
	if dict.Found("value") {
		vals, e := dict.Vectors("value")
		if e != nil {
			return chk.Err("cannot read \"value\" of patch %q:\n%v", p.Name(), e)
		}
		if len(vals) != p.Size() {
			return chk.Err("size of \"value\" (%d) of patch %q is different than the number of faces (%d)", len(vals), p.Name(), p.Size())
		}
		for i, v := range vals {
			if len(v) != 3 {
				return chk.Err("value @ face %d of patch %q must have 3 components. %v is invalid", i, p.Name(), v)
			}
			copy(o.values[i], v)
		}
		return
	}
	if iF != nil {
		o.values = cloneVecs(iF.PatchInternalValues(p))
	}
	return
}

// initMapped initialises the base data by mapping src onto a new patch
func (o *FixedValue) initMapped(src *FixedValue, p Patch, iF InternalField, m Mapper) {
	o.patch = p
	o.iF = iF
	if m.Size() != p.Size() {
		chk.Panic("mapper size (%d) must be equal to the number of faces (%d) of patch %q", m.Size(), p.Size(), p.Name())
	}
	o.values = MapValues(src.values, m, o.internalValues())
}

// copyFrom copies base data from src
func (o *FixedValue) copyFrom(src *FixedValue, iF InternalField) {
	o.patch = src.patch
	o.iF = iF
	o.values = cloneVecs(src.values)
	o.updated = src.updated
}

// internalValues returns the patch internal values or nil if internal field is not set
func (o *FixedValue) internalValues() [][]float64 {
	if o.iF == nil {
		return nil
	}
	return o.iF.PatchInternalValues(o.patch)
}

// Type returns the type tag
func (o *FixedValue) Type() string { return "fixedValue" }

// Patch returns the patch
func (o *FixedValue) Patch() Patch { return o.patch }

// Internal returns the internal field
func (o *FixedValue) Internal() InternalField { return o.iF }

// Size returns the number of faces
func (o *FixedValue) Size() int { return len(o.values) }

// Values returns the boundary values
func (o *FixedValue) Values() [][]float64 { return o.values }

// FixesValue returns true
func (o *FixedValue) FixesValue() bool { return true }

// Updated tells whether UpdateCoeffs was called and Evaluate was not called yet
func (o *FixedValue) Updated() bool { return o.updated }

// SetValues sets all boundary values
func (o *FixedValue) SetValues(vals [][]float64) {
	if len(vals) != len(o.values) {
		chk.Panic("number of values (%d) must be equal to the number of faces (%d)", len(vals), len(o.values))
	}
	for i, v := range vals {
		copy(o.values[i], v)
	}
}

// UpdateCoeffs marks the values as up-to-date. Derived conditions call it after computing the values
func (o *FixedValue) UpdateCoeffs() error {
	o.updated = true
	return nil
}

// Evaluate marks the values as consumed
func (o *FixedValue) Evaluate() error {
	o.updated = false
	return nil
}

// AutoMap maps values in place; the patch must already have the mapped size
func (o *FixedValue) AutoMap(m Mapper) {
	if m.Size() != o.patch.Size() {
		chk.Panic("mapper size (%d) must be equal to the number of faces (%d) of patch %q", m.Size(), o.patch.Size(), o.patch.Name())
	}
	var fill [][]float64
	if o.iF != nil {
		fill = o.iF.PatchInternalValues(o.patch)
	}
	o.values = MapValues(o.values, m, fill)
}

// Rmap reverse-maps values of src onto this field
func (o *FixedValue) Rmap(src PatchField, addr []int) {
	ptf, ok := src.(*FixedValue)
	if !ok {
		chk.Panic("cannot reverse-map patch field of type %q onto fixedValue", src.Type())
	}
	o.rmap(ptf.values, addr)
}

// rmap sets this[addr[i]] = vals[i]; negative addresses are skipped
func (o *FixedValue) rmap(vals [][]float64, addr []int) {
	if len(addr) > len(o.values) {
		chk.Panic("rmap: number of addresses (%d) must not exceed the number of faces (%d)", len(addr), len(o.values))
	}
	if len(addr) > len(vals) {
		chk.Panic("rmap: number of addresses (%d) must not exceed the number of source values (%d)", len(addr), len(vals))
	}
	for i, j := range addr {
		if j < 0 {
			continue
		}
		if j >= len(o.values) {
			chk.Panic("rmap: address %d of source face %d is out of range [0, %d)", j, i, len(o.values))
		}
		copy(o.values[j], vals[i])
	}
}

// Clone returns an independent copy
func (o *FixedValue) Clone() PatchField {
	return o.CloneWith(o.iF)
}

// CloneWith returns an independent copy attached to another internal field
func (o *FixedValue) CloneWith(iF InternalField) PatchField {
	res := new(FixedValue)
	res.copyFrom(o, iF)
	return res
}

// Write writes data as a dictionary
func (o *FixedValue) Write(buf *bytes.Buffer, indent string) {
	var e Entries
	e.Add("type", FmtWord(o.Type()))
	o.addValue(&e, indent)
	e.Write(buf, indent)
}

// addValue adds the "value" entry
func (o *FixedValue) addValue(e *Entries, indent string) {
	e.Add("value", FmtVectors(o.values, indent))
}

// warnDefault prints a message when a dictionary entry is replaced by its default
func warnDefault(patch, key string, err error, def interface{}) {
	if Verbose {
		io.Pfyel("patch %q: using default %s = %v\n%v\n", patch, key, def, err)
	}
}
