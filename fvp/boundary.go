// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// BoundaryField holds the patch fields of one internal field; one per patch
type BoundaryField []PatchField

// Find returns the patch field attached to patch named name or nil if not found
func (o BoundaryField) Find(name string) PatchField {
	for _, ptf := range o {
		if ptf.Patch().Name() == name {
			return ptf
		}
	}
	return nil
}

// UpdateCoeffs updates all patch fields that are not up-to-date
func (o BoundaryField) UpdateCoeffs() (err error) {
	for _, ptf := range o {
		if ptf.Updated() {
			continue
		}
		err = ptf.UpdateCoeffs()
		if err != nil {
			return
		}
	}
	return
}

// Evaluate updates patch fields if needed and marks all values as consumed
func (o BoundaryField) Evaluate() (err error) {
	err = o.UpdateCoeffs()
	if err != nil {
		return
	}
	for _, ptf := range o {
		err = ptf.Evaluate()
		if err != nil {
			return
		}
	}
	return
}

// Map re-creates all patch fields after a topology change.
//  patches -- new patches; same order as o
//  mappers -- one mapper per patch
func (o BoundaryField) Map(patches []Patch, iF InternalField, mappers []Mapper) (res BoundaryField, err error) {
	if len(patches) != len(o) || len(mappers) != len(o) {
		chk.Panic("number of patches (%d) and mappers (%d) must be equal to the number of patch fields (%d)", len(patches), len(mappers), len(o))
	}
	res = make([]PatchField, len(o))
	for i, ptf := range o {
		res[i], err = NewMapped(ptf, patches[i], iF, mappers[i])
		if err != nil {
			return nil, chk.Err("cannot map patch field %q:\n%v", ptf.Patch().Name(), err)
		}
	}
	return
}

// Write writes all patch fields as a dictionary keyed by patch name
func (o BoundaryField) Write(buf *bytes.Buffer, indent string) {
	var e Entries
	for _, ptf := range o {
		b := new(bytes.Buffer)
		ptf.Write(b, indent+"  ")
		e.Add(ptf.Patch().Name(), b.String())
	}
	e.Write(buf, indent)
}

// String returns the dictionary representation
func (o BoundaryField) String() string {
	buf := new(bytes.Buffer)
	o.Write(buf, "")
	io.Ff(buf, "\n")
	return buf.String()
}
