// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
)

// Face holds the vertices of a boundary face and its owner cell
type Face struct {
	Cell  int         // owner cell
	Verts [][]float64 // [nverts][3] vertices; counter-clockwise when seen from outside the domain
}

// Patch holds the geometry of a named set of boundary faces
type Patch struct {
	name      string      // name of patch
	faceCells []int       // [nfaces] owner cells
	sf        [][]float64 // [nfaces][3] area vectors
	nf        [][]float64 // [nfaces][3] unit outward normals
	magSf     []float64   // [nfaces] face areas
	cf        [][]float64 // [nfaces][3] face centres
}

// NewPatch computes the geometry of faces.
//  The area vector of a polygon is obtained by splitting it into triangles around the first vertex:
//      Sf = ½ Σ (v[k] - v[0]) × (v[k+1] - v[0])
func NewPatch(name string, faces []*Face) (o *Patch, err error) {
	o = new(Patch)
	o.name = name
	nf := len(faces)
	o.faceCells = make([]int, nf)
	o.sf = utl.Alloc(nf, 3)
	o.nf = utl.Alloc(nf, 3)
	o.magSf = make([]float64, nf)
	o.cf = utl.Alloc(nf, 3)
	a := make([]float64, 3)
	b := make([]float64, 3)
	s := make([]float64, 3)
	for i, face := range faces {
		if face.Cell < 0 {
			return nil, chk.Err("patch %q: face %d has an invalid owner cell (%d)", name, i, face.Cell)
		}
		if len(face.Verts) < 3 {
			return nil, chk.Err("patch %q: face %d must have at least 3 vertices. %d is invalid", name, i, len(face.Verts))
		}
		for k, v := range face.Verts {
			if len(v) != 3 {
				return nil, chk.Err("patch %q: vertex %d of face %d must have 3 coordinates", name, k, i)
			}
		}
		o.faceCells[i] = face.Cell
		v0 := face.Verts[0]
		var sumA float64
		for k := 1; k < len(face.Verts)-1; k++ {
			for j := 0; j < 3; j++ {
				a[j] = face.Verts[k][j] - v0[j]
				b[j] = face.Verts[k+1][j] - v0[j]
			}
			utl.Cross3d(s, a, b)
			magS := la.Vector(s).Norm() / 2.0
			for j := 0; j < 3; j++ {
				o.sf[i][j] += s[j] / 2.0
				o.cf[i][j] += magS * (v0[j] + face.Verts[k][j] + face.Verts[k+1][j]) / 3.0
			}
			sumA += magS
		}
		o.magSf[i] = la.Vector(o.sf[i]).Norm()
		if o.magSf[i] <= 0 || sumA <= 0 {
			return nil, chk.Err("patch %q: face %d has zero area", name, i)
		}
		for j := 0; j < 3; j++ {
			o.nf[i][j] = o.sf[i][j] / o.magSf[i]
			o.cf[i][j] /= sumA
		}
	}
	return
}

// Name returns the name of patch
func (o *Patch) Name() string { return o.name }

// Size returns the number of faces
func (o *Patch) Size() int { return len(o.faceCells) }

// Nf returns the unit outward normals
func (o *Patch) Nf() [][]float64 { return o.nf }

// Sf returns the area vectors
func (o *Patch) Sf() [][]float64 { return o.sf }

// MagSf returns the face areas
func (o *Patch) MagSf() []float64 { return o.magSf }

// Cf returns the face centres
func (o *Patch) Cf() [][]float64 { return o.cf }

// FaceCells returns the owner cells
func (o *Patch) FaceCells() []int { return o.faceCells }

// Mesh holds the cells count and the boundary patches
type Mesh struct {
	Ncells  int      // number of cells
	Patches []*Patch // boundary patches
}

// NewMesh returns a new mesh and checks that all faces point to existent cells
func NewMesh(ncells int, patches []*Patch) (o *Mesh, err error) {
	o = &Mesh{Ncells: ncells, Patches: patches}
	names := make(map[string]bool)
	for _, p := range patches {
		if names[p.name] {
			return nil, chk.Err("patch named %q is duplicated", p.name)
		}
		names[p.name] = true
		for i, c := range p.faceCells {
			if c >= ncells {
				return nil, chk.Err("patch %q: owner cell (%d) of face %d is out of range; ncells = %d", p.name, c, i, ncells)
			}
		}
	}
	return
}

// Patch returns the patch named name or nil if not found
func (o *Mesh) Patch(name string) *Patch {
	for _, p := range o.Patches {
		if p.name == name {
			return p
		}
	}
	return nil
}
