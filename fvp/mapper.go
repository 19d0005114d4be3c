// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import "github.com/cpmech/gosl/chk"

// Mapper maps face values of an old patch onto a new patch after a topology change.
//  Direct mappers give one old face (or -1 if unmapped) for each new face.
//  Interpolative mappers give a list of old faces and weights for each new face.
type Mapper interface {
	Size() int               // number of faces in new patch
	Direct() bool            // direct mapping?
	DirectAddressing() []int // [size] old face of each new face; -1 => unmapped
	Addressing() [][]int     // [size][nsrc] old faces contributing to each new face
	Weights() [][]float64    // [size][nsrc] weights of the old faces
}

// DirectMapper implements Mapper with one-to-one addressing
type DirectMapper struct {
	Addr []int // [size] old face of each new face; -1 => unmapped
}

// NewIdentityMapper returns a direct mapper that keeps all n faces in place
func NewIdentityMapper(n int) *DirectMapper {
	o := &DirectMapper{Addr: make([]int, n)}
	for i := 0; i < n; i++ {
		o.Addr[i] = i
	}
	return o
}

// NewDropMapper returns a direct mapper that removes face idx out of n faces
func NewDropMapper(n, idx int) *DirectMapper {
	if idx < 0 || idx >= n {
		chk.Panic("cannot drop face %d from patch with %d faces", idx, n)
	}
	o := &DirectMapper{Addr: make([]int, 0, n-1)}
	for i := 0; i < n; i++ {
		if i != idx {
			o.Addr = append(o.Addr, i)
		}
	}
	return o
}

func (o DirectMapper) Size() int               { return len(o.Addr) }
func (o DirectMapper) Direct() bool            { return true }
func (o DirectMapper) DirectAddressing() []int { return o.Addr }
func (o DirectMapper) Addressing() [][]int     { return nil }
func (o DirectMapper) Weights() [][]float64    { return nil }

// InterpMapper implements Mapper with weighted addressing
type InterpMapper struct {
	Addr [][]int     // [size][nsrc] old faces of each new face; empty => unmapped
	Wgts [][]float64 // [size][nsrc] weights
}

func (o InterpMapper) Size() int               { return len(o.Addr) }
func (o InterpMapper) Direct() bool            { return false }
func (o InterpMapper) DirectAddressing() []int { return nil }
func (o InterpMapper) Addressing() [][]int     { return o.Addr }
func (o InterpMapper) Weights() [][]float64    { return o.Wgts }

// MapValues maps old face values with m. Unmapped faces take the values in fill
// (usually the patch internal values); if fill is nil, they are set to zero.
// Addresses out of range are programming errors and cause a panic.
func MapValues(old [][]float64, m Mapper, fill [][]float64) (res [][]float64) {
	res = make([][]float64, m.Size())
	if fill != nil && len(fill) != m.Size() {
		chk.Panic("fill values must have the same size as the mapper. %d != %d", len(fill), m.Size())
	}
	unmapped := func(i int) []float64 {
		if fill != nil {
			return cloneVec(fill[i])
		}
		return make([]float64, 3)
	}
	if m.Direct() {
		for i, j := range m.DirectAddressing() {
			if j < 0 {
				res[i] = unmapped(i)
				continue
			}
			if j >= len(old) {
				chk.Panic("direct addressing of new face %d points to old face %d; but there are %d old faces", i, j, len(old))
			}
			res[i] = cloneVec(old[j])
		}
		return
	}
	addr, wgts := m.Addressing(), m.Weights()
	if len(wgts) != len(addr) {
		chk.Panic("addressing and weights must have the same size. %d != %d", len(addr), len(wgts))
	}
	for i, faces := range addr {
		if len(faces) == 0 {
			res[i] = unmapped(i)
			continue
		}
		if len(wgts[i]) != len(faces) {
			chk.Panic("new face %d has %d addresses but %d weights", i, len(faces), len(wgts[i]))
		}
		for k, j := range faces {
			if j < 0 || j >= len(old) {
				chk.Panic("addressing of new face %d points to old face %d; but there are %d old faces", i, j, len(old))
			}
			if res[i] == nil {
				res[i] = make([]float64, len(old[j]))
			}
			for c := 0; c < len(res[i]); c++ {
				res[i][c] += wgts[i][k] * old[j][c]
			}
		}
	}
	return
}

// auxiliary ///////////////////////////////////////////////////////////////////////////////////////

func cloneVec(v []float64) []float64 {
	res := make([]float64, len(v))
	copy(res, v)
	return res
}

func cloneVecs(v [][]float64) [][]float64 {
	if v == nil {
		return nil
	}
	res := make([][]float64, len(v))
	for i := 0; i < len(v); i++ {
		res[i] = cloneVec(v[i])
	}
	return res
}
