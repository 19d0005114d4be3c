// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
	"github.com/synthetik-technologies/explicitSolidDynamics/fvp"
)

// VolVectorField holds a vector field at cell centres and its boundary (patch) fields
type VolVectorField struct {
	Vals     [][]float64       // [ncells][3] current values
	Old      [][]float64       // [ncells][3] values at previous time level
	Boundary fvp.BoundaryField // patch fields

	// auxiliary
	name     string              // name of field
	quantity fvp.Quantity        // what the field represents
	mesh     *Mesh               // the mesh
	time     *Time               // time database
	chars    fvp.Characteristics // wave data (may be nil)
}

// NewVolVectorField returns a new field with zero values and no boundary fields
func NewVolVectorField(name string, quantity fvp.Quantity, mesh *Mesh, time *Time) (o *VolVectorField) {
	o = new(VolVectorField)
	o.name = name
	o.quantity = quantity
	o.mesh = mesh
	o.time = time
	o.Vals = utl.Alloc(mesh.Ncells, 3)
	o.Old = utl.Alloc(mesh.Ncells, 3)
	return
}

// SetCharacteristics sets the provider of wave data
func (o *VolVectorField) SetCharacteristics(chars fvp.Characteristics) {
	o.chars = chars
}

// SetBoundary allocates the patch fields from dictionaries keyed by patch name.
// Patches without dictionary are an error.
func (o *VolVectorField) SetBoundary(dicts map[string]fvp.Dict) (err error) {
	o.Boundary = make([]fvp.PatchField, len(o.mesh.Patches))
	for i, p := range o.mesh.Patches {
		dict, ok := dicts[p.Name()]
		if !ok {
			return chk.Err("field %q: cannot find boundary condition for patch %q", o.name, p.Name())
		}
		o.Boundary[i], err = fvp.New(p, o, dict)
		if err != nil {
			return
		}
	}
	return
}

// StoreOld copies current values into old values
func (o *VolVectorField) StoreOld() {
	for i := range o.Vals {
		copy(o.Old[i], o.Vals[i])
	}
}

// Name returns the name of field
func (o *VolVectorField) Name() string { return o.name }

// Quantity returns what the field represents
func (o *VolVectorField) Quantity() fvp.Quantity { return o.quantity }

// Time returns the time database
func (o *VolVectorField) Time() fvp.Time { return o.time }

// Mesh returns the mesh
func (o *VolVectorField) Mesh() *Mesh { return o.mesh }

// Characteristics returns the provider of wave data; nil if not set
func (o *VolVectorField) Characteristics() fvp.Characteristics { return o.chars }

// PatchInternalValues returns copies of the values at the owner cells of p
func (o *VolVectorField) PatchInternalValues(p fvp.Patch) [][]float64 {
	return ownerValues(o.Vals, p)
}

// PatchInternalOldValues returns copies of the old values at the owner cells of p
func (o *VolVectorField) PatchInternalOldValues(p fvp.Patch) [][]float64 {
	return ownerValues(o.Old, p)
}

// ownerValues collects vals at the owner cells of p
func ownerValues(vals [][]float64, p fvp.Patch) (res [][]float64) {
	cells := p.FaceCells()
	res = make([][]float64, len(cells))
	for i, c := range cells {
		res[i] = make([]float64, len(vals[c]))
		copy(res[i], vals[c])
	}
	return
}
