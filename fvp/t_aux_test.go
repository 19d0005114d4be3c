// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/synthetik-technologies/explicitSolidDynamics/inp"
)

func verbose() {
	chk.Verbose = true
	Verbose = true
}

// testPatch implements Patch with given normals; face areas are 1 and owner cells are 0, 1, 2...
type testPatch struct {
	name string
	nf   [][]float64
}

func newTestPatch(name string, nf ...[]float64) *testPatch {
	return &testPatch{name, nf}
}

func (o *testPatch) Name() string    { return o.name }
func (o *testPatch) Size() int       { return len(o.nf) }
func (o *testPatch) Nf() [][]float64 { return o.nf }

func (o *testPatch) MagSf() []float64 {
	res := make([]float64, len(o.nf))
	for i := range res {
		res[i] = 1
	}
	return res
}

func (o *testPatch) FaceCells() []int {
	res := make([]int, len(o.nf))
	for i := range res {
		res[i] = i
	}
	return res
}

// testTime implements Time
type testTime struct {
	t, dt float64
	idx   int
}

func (o *testTime) Value() float64  { return o.t }
func (o *testTime) DeltaT() float64 { return o.dt }
func (o *testTime) Index() int      { return o.idx }

// testChars implements Characteristics with uniform impedances and given tractions
type testChars struct {
	zp, zs float64
	t      [][]float64
}

func (o *testChars) Impedances(p Patch) (zp, zs []float64, err error) {
	if o.zp <= 0 || o.zs <= 0 {
		return nil, nil, chk.Err("impedances must be positive")
	}
	zp = make([]float64, p.Size())
	zs = make([]float64, p.Size())
	for i := range zp {
		zp[i], zs[i] = o.zp, o.zs
	}
	return
}

func (o *testChars) Tractions(p Patch) ([][]float64, error) {
	return cloneVecs(o.t), nil
}

// testField implements InternalField; values are given directly at the faces of the patch
type testField struct {
	quantity Quantity
	time     *testTime
	vals     [][]float64
	old      [][]float64
	chars    *testChars
}

func (o *testField) Name() string                               { return "lm" }
func (o *testField) Quantity() Quantity                         { return o.quantity }
func (o *testField) Time() Time                                 { return o.time }
func (o *testField) PatchInternalValues(p Patch) [][]float64    { return cloneVecs(o.vals) }
func (o *testField) PatchInternalOldValues(p Patch) [][]float64 { return cloneVecs(o.old) }

func (o *testField) Characteristics() Characteristics {
	if o.chars == nil {
		return nil
	}
	return o.chars
}

// zeros returns n zero vectors
func zeros(n int) [][]float64 {
	res := make([][]float64, n)
	for i := range res {
		res[i] = make([]float64, 3)
	}
	return res
}

// newTestField returns a velocity field at rest with zero tractions on n faces
func newTestField(n int, zp, zs float64) *testField {
	return &testField{
		quantity: Velocity,
		time:     &testTime{dt: 0.1},
		vals:     zeros(n),
		old:      zeros(n),
		chars:    &testChars{zp, zs, zeros(n)},
	}
}

// dict decodes a JSON dictionary
func dict(s string) inp.Dict {
	d, err := inp.ReadDict([]byte(s), false)
	if err != nil {
		chk.Panic("%v", err)
	}
	return d
}

// panics tells whether f panics
func panics(f func()) (res bool) {
	defer func() {
		if err := recover(); err != nil {
			res = true
		}
	}()
	f()
	return
}
