// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/synthetik-technologies/explicitSolidDynamics/inp"
)

func Test_factory01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factory01")

	types := Types()
	io.Pforan("types = %v\n", types)
	chk.String(tst, strings.Join(types, ","), "fixedValue,symmetricTraction")

	p := newTestPatch("symm", []float64{1, 0, 0})
	fld := newTestField(1, 1, 1)

	ptf, err := New(p, fld, dict(`{"type":"symmetricTraction", "traction":[1, 2, 3]}`))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, ptf.Type(), "symmetricTraction")
	if !ptf.FixesValue() {
		tst.Errorf("test failed: symmetricTraction fixes values\n")
	}

	ptf, err = NewDefault("symmetricTraction", p, fld)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Float64(tst, "rampEndTime", 1e-17, ptf.(*SymmetricTraction).RampEndTime, VSMALL)

	_, err = New(p, fld, dict(`{"type":"nonexistent"}`))
	if err == nil {
		tst.Errorf("test failed: unknown type should have been detected\n")
	}
	_, err = New(p, fld, dict(`{"traction":[1, 2, 3]}`))
	if err == nil {
		tst.Errorf("test failed: missing type should have been detected\n")
	}
	_, err = NewDefault("nonexistent", p, fld)
	if err == nil {
		tst.Errorf("test failed: unknown type should have been detected\n")
	}

	// mapping between different types
	fv := NewFixedValue(p, fld)
	_, err = allocators["symmetricTraction"].fromMap(fv, p, fld, NewIdentityMapper(1))
	if err == nil {
		tst.Errorf("test failed: mapping fixedValue as symmetricTraction should have failed\n")
	}

	// duplicated type
	if !panics(func() { SetAllocator("fixedValue", nil, nil, nil) }) {
		tst.Errorf("test failed: duplicated type should have caused a panic\n")
	}
	if !panics(func() { SetAllocator("another", nil, nil, nil) }) {
		tst.Errorf("test failed: nil allocators should have caused a panic\n")
	}
}

func Test_fixedvalue01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fixedvalue01")

	p := newTestPatch("far", []float64{1, 0, 0}, []float64{0, 1, 0})
	fld := newTestField(2, 1, 1)
	fld.vals = [][]float64{{1, 2, 3}, {4, 5, 6}}

	ptf, err := NewFixedValueDict(p, fld, dict(`{"value":[[0, 0, 1], [0, 0, 2]]}`))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "size", ptf.Size(), 2)
	chk.Deep2(tst, "values", 1e-17, ptf.Values(), [][]float64{{0, 0, 1}, {0, 0, 2}})

	// update does not change values
	err = ptf.UpdateCoeffs()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "values", 1e-17, ptf.Values(), [][]float64{{0, 0, 1}, {0, 0, 2}})

	ptf.SetValues([][]float64{{9, 9, 9}, {8, 8, 8}})
	chk.Deep2(tst, "values", 1e-17, ptf.Values(), [][]float64{{9, 9, 9}, {8, 8, 8}})
	if !panics(func() { ptf.SetValues(zeros(3)) }) {
		tst.Errorf("test failed: wrong number of values should have caused a panic\n")
	}

	// write and read
	buf := new(bytes.Buffer)
	ptf.Write(buf, "")
	io.Pforan("%s\n", buf.String())
	d, err := inp.ReadDict(buf.Bytes(), false)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	read, err := New(p, fld, d)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.String(tst, read.Type(), "fixedValue")
	chk.Deep2(tst, "read", 0, read.Values(), ptf.Values())

	// clone
	cln := ptf.Clone()
	cln.Values()[0][0] = -1
	chk.Deep2(tst, "values", 1e-17, ptf.Values(), [][]float64{{9, 9, 9}, {8, 8, 8}})

	// without value => internal values
	ptf, err = NewFixedValueDict(p, fld, dict(`{}`))
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "values", 1e-17, ptf.Values(), [][]float64{{1, 2, 3}, {4, 5, 6}})

	// interpolative mapping onto one face
	p1 := newTestPatch("far", []float64{1, 0, 0})
	m := &InterpMapper{Addr: [][]int{{0, 1}}, Wgts: [][]float64{{0.25, 0.75}}}
	res, err := NewMapped(ptf, p1, newTestField(1, 1, 1), m)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Deep2(tst, "interp", 1e-15, res.Values(), [][]float64{{3.25, 4.25, 5.25}})
}

func Test_boundary01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("boundary01")

	symm := newTestPatch("symm", []float64{1, 0, 0})
	far := newTestPatch("far", []float64{-1, 0, 0})
	fld := newTestField(1, 1, 1)
	fld.time.t = 2

	var bf BoundaryField
	for _, item := range []struct {
		p Patch
		d string
	}{
		{symm, `{"type":"symmetricTraction", "traction":[10, 10, 10], "rampEndTime":1}`},
		{far, `{"type":"fixedValue", "value":[[0, 0, 0]]}`},
	} {
		ptf, err := New(item.p, fld, dict(item.d))
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		bf = append(bf, ptf)
	}

	if bf.Find("symm") == nil || bf.Find("far") == nil || bf.Find("none") != nil {
		tst.Errorf("test failed: Find does not work\n")
		return
	}

	err := bf.UpdateCoeffs()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for _, ptf := range bf {
		if !ptf.Updated() {
			tst.Errorf("test failed: %q should be updated\n", ptf.Patch().Name())
		}
	}
	chk.Deep2(tst, "symm", 1e-15, bf.Find("symm").Values(), [][]float64{{0, 10, 10}})

	err = bf.Evaluate()
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for _, ptf := range bf {
		if ptf.Updated() {
			tst.Errorf("test failed: %q should not be updated after Evaluate\n", ptf.Patch().Name())
		}
	}

	// write and read all
	io.Pforan("%v", bf)
	d, err := inp.ReadDict([]byte(bf.String()), false)
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	for _, ptf := range bf {
		sub, ok := d[ptf.Patch().Name()].(map[string]interface{})
		if !ok {
			tst.Errorf("test failed: cannot find %q in written data\n", ptf.Patch().Name())
			return
		}
		read, err := New(ptf.Patch(), fld, inp.Dict(sub))
		if err != nil {
			tst.Errorf("test failed: %v\n", err)
			return
		}
		chk.String(tst, read.Type(), ptf.Type())
		chk.Deep2(tst, "values", 0, read.Values(), ptf.Values())
	}

	// map with identity
	res, err := bf.Map([]Patch{symm, far}, fld, []Mapper{NewIdentityMapper(1), NewIdentityMapper(1)})
	if err != nil {
		tst.Errorf("test failed: %v\n", err)
		return
	}
	chk.Int(tst, "len", len(res), 2)
	chk.Deep2(tst, "mapped symm", 1e-17, res[0].Values(), bf[0].Values())
	chk.Float64(tst, "mapped rampEndTime", 1e-17, res[0].(*SymmetricTraction).RampEndTime, 1)
	if !panics(func() { bf.Map([]Patch{symm}, fld, nil) }) {
		tst.Errorf("test failed: wrong number of patches should have caused a panic\n")
	}
}
