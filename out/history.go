// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the output of boundary histories
package out

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/synthetik-technologies/explicitSolidDynamics/fvp"
)

// History holds the time history of area-averaged values on one patch
type History struct {
	Patch string      // name of patch
	T     []float64   // [ntimes] times
	Ramp  []float64   // [ntimes] ramp factors; zero if patch field has no ramp
	Val   [][]float64 // [ntimes][3] area-averaged boundary values
	Trac  [][]float64 // [ntimes][3] area-averaged contact tractions; zero if not available
}

// NewHistory returns a new history for the patch named patch
func NewHistory(patch string) *History {
	return &History{Patch: patch}
}

// Add records the state of ptf @ time t
func (o *History) Add(t float64, ptf fvp.PatchField) {
	if ptf.Patch().Name() != o.Patch {
		chk.Panic("history of patch %q cannot record patch %q", o.Patch, ptf.Patch().Name())
	}
	area := ptf.Patch().MagSf()
	var r float64
	var trac []float64
	if symm, ok := ptf.(*fvp.SymmetricTraction); ok {
		r = symm.RampFactor(t)
		trac = average(symm.ContactTraction(), area)
	}
	if trac == nil {
		trac = make([]float64, 3)
	}
	o.T = append(o.T, t)
	o.Ramp = append(o.Ramp, r)
	o.Val = append(o.Val, average(ptf.Values(), area))
	o.Trac = append(o.Trac, trac)
}

// Len returns the number of records
func (o *History) Len() int { return len(o.T) }

// Write writes a table with all records to dirout/fnkey.txt
func (o *History) Write(dirout, fnkey string) (err error) {
	buf := new(bytes.Buffer)
	io.Ff(buf, "%23s%23s%23s%23s%23s%23s%23s%23s\n", "t", "r", "vx", "vy", "vz", "tx", "ty", "tz")
	for i, t := range o.T {
		io.Ff(buf, "%23.15e%23.15e", t, o.Ramp[i])
		for _, v := range o.Val[i] {
			io.Ff(buf, "%23.15e", v)
		}
		for _, v := range o.Trac[i] {
			io.Ff(buf, "%23.15e", v)
		}
		io.Ff(buf, "\n")
	}
	return writeFile(dirout, fnkey+".txt", buf)
}

// Plot plots the history of the ramp factor and boundary values
func (o *History) Plot(dirout, fnkey string) {
	vx, vy, vz := o.component(o.Val, 0), o.component(o.Val, 1), o.component(o.Val, 2)
	plt.Reset(false, nil)
	plt.Subplot(2, 1, 1)
	plt.Plot(o.T, o.Ramp, &plt.A{C: "k", L: "ramp"})
	plt.Gll("$t$", "$r$", nil)
	plt.Subplot(2, 1, 2)
	plt.Plot(o.T, vx, &plt.A{C: "r", L: "x"})
	plt.Plot(o.T, vy, &plt.A{C: "g", L: "y"})
	plt.Plot(o.T, vz, &plt.A{C: "b", L: "z"})
	plt.Gll("$t$", o.Patch, nil)
	plt.Save(dirout, fnkey)
}

// component returns the i-th component of all records in vals
func (o *History) component(vals [][]float64, i int) (res []float64) {
	res = make([]float64, len(vals))
	for k, v := range vals {
		res[k] = v[i]
	}
	return
}

// average returns the area-weighted average of vals or nil if vals is empty
func average(vals [][]float64, area []float64) (res []float64) {
	if len(vals) == 0 {
		return nil
	}
	if len(area) != len(vals) {
		chk.Panic("number of values (%d) and areas (%d) must be equal", len(vals), len(area))
	}
	res = make([]float64, len(vals[0]))
	var sum float64
	for i, v := range vals {
		for j := range res {
			res[j] += area[i] * v[j]
		}
		sum += area[i]
	}
	if sum > 0 {
		for j := range res {
			res[j] /= sum
		}
	}
	return
}

// writeFile writes buf to dirout/fn creating dirout if needed
func writeFile(dirout, fn string, buf *bytes.Buffer) (err error) {
	err = os.MkdirAll(dirout, 0777)
	if err != nil {
		return chk.Err("cannot create directory %q:\n%v", dirout, err)
	}
	err = os.WriteFile(filepath.Join(dirout, fn), buf.Bytes(), 0644)
	if err != nil {
		return chk.Err("cannot write file %q:\n%v", fn, err)
	}
	return
}

// WriteBoundary writes the dictionary of all patch fields to dirout/fnkey.json
func WriteBoundary(dirout, fnkey string, bf fvp.BoundaryField) error {
	buf := new(bytes.Buffer)
	io.Ff(buf, "%v", bf)
	return writeFile(dirout, fnkey+".json", buf)
}
