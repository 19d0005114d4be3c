// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import "bytes"

// PatchField defines what all boundary conditions attached to a patch must implement
type PatchField interface {

	// information
	Type() string            // type tag used by the factory; e.g. "symmetricTraction"
	Patch() Patch            // the patch
	Internal() InternalField // the internal field (borrowed)
	Size() int               // number of faces
	Values() [][]float64     // [size][3] boundary values
	FixesValue() bool        // whether values are prescribed (Dirichlet) or not

	// called for each solver iteration
	Updated() bool       // whether UpdateCoeffs has been called and values were not consumed yet
	UpdateCoeffs() error // computes the boundary values for the current time
	Evaluate() error     // marks the values as consumed

	// mapping
	AutoMap(m Mapper)                // maps values in place after a topology change
	Rmap(src PatchField, addr []int) // reverse-maps values of src onto this field; src must be of the same type

	// copying and writing
	Clone() PatchField                      // independent copy
	CloneWith(iF InternalField) PatchField  // independent copy attached to another internal field
	Write(buf *bytes.Buffer, indent string) // writes data as a dictionary
}
