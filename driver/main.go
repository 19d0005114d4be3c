// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package driver implements the explicit time loop that refreshes boundary values
package driver

import (
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/synthetik-technologies/explicitSolidDynamics/fvm"
	"github.com/synthetik-technologies/explicitSolidDynamics/fvp"
	"github.com/synthetik-technologies/explicitSolidDynamics/inp"
	"github.com/synthetik-technologies/explicitSolidDynamics/out"
)

// ttol is the relative tolerance to compare times
const ttol = 1e-12

// InteriorFunc advances the interior (cell) values and stresses by dt. Boundary values of the
// previous step are available in fld.Boundary.
type InteriorFunc func(fld *fvm.VolVectorField, chars *fvm.Elastic, dt float64) error

// Main holds all data for a simulation
type Main struct {
	Sim      *inp.Simulation         // simulation data
	Mesh     *fvm.Mesh               // mesh
	Time     *fvm.Time               // time database
	Field    *fvm.VolVectorField     // vector field subject to boundary conditions
	Chars    *fvm.Elastic            // wave data
	History  map[string]*out.History // patch name => history
	Interior InteriorFunc            // interior update; nil => interior is frozen
	ShowMsg  bool                    // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim or .yaml) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {
	sim, err := inp.ReadSim(simfilepath)
	if err != nil {
		return
	}
	return NewMainSim(sim, verbose)
}

// NewMainSim returns a new Main structure with given simulation data
func NewMainSim(sim *inp.Simulation, verbose bool) (o *Main, err error) {

	// new Main object
	o = new(Main)
	o.Sim = sim
	o.ShowMsg = verbose || sim.Data.Verbose
	fvp.Verbose = o.ShowMsg

	// mesh
	patches := make([]*fvm.Patch, len(sim.Patches))
	for i, pd := range sim.Patches {
		faces := make([]*fvm.Face, len(pd.Faces))
		for j, fd := range pd.Faces {
			faces[j] = &fvm.Face{Cell: fd.Cell, Verts: fd.Verts}
		}
		patches[i], err = fvm.NewPatch(pd.Name, faces)
		if err != nil {
			return nil, err
		}
	}
	o.Mesh, err = fvm.NewMesh(sim.Ncells, patches)
	if err != nil {
		return nil, err
	}

	// wave data
	model, err := sim.Material.GetModel()
	if err != nil {
		return nil, err
	}
	o.Chars = fvm.NewElastic(model, sim.Ncells, len(sim.Field.Sig))
	for _, σ := range o.Chars.Sig {
		copy(σ, sim.Field.Sig)
	}

	// field
	quantity := fvp.Velocity
	if sim.Field.Quantity == "displacement" {
		quantity = fvp.Displacement
	}
	o.Time = new(fvm.Time)
	o.Field = fvm.NewVolVectorField(sim.Field.Name, quantity, o.Mesh, o.Time)
	for _, v := range o.Field.Vals {
		copy(v, sim.Field.Init)
	}
	o.Field.StoreOld()
	o.Field.SetCharacteristics(o.Chars)

	// boundary conditions
	dicts := make(map[string]fvp.Dict)
	for name, d := range sim.Boundary {
		dicts[name] = d
	}
	err = o.Field.SetBoundary(dicts)
	if err != nil {
		return nil, err
	}

	// history
	o.History = make(map[string]*out.History)
	for _, p := range o.Mesh.Patches {
		o.History[p.Name()] = out.NewHistory(p.Name())
	}

	// message
	if o.ShowMsg {
		io.Pf("> Simulation file read\n")
		io.Pf("> Boundary conditions:\n%v", o.Field.Boundary)
	}
	return
}

// Run runs the time loop up to the final time
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// initial state
	o.record()

	// time loop
	tf := o.Sim.Time.Tf
	tout := o.Time.T + o.Sim.Time.DtOut
	for tf-o.Time.T > ttol*tf {
		dt := o.Sim.GetDt(o.Time.T)
		if dt <= 0 {
			return chk.Err("time step size must be positive. Δt(%g) = %g is invalid", o.Time.T, dt)
		}
		if o.Time.T+dt > tf {
			dt = tf - o.Time.T
		}
		err = o.Step(dt)
		if err != nil {
			return
		}
		if o.Time.T >= tout-ttol*tf || tf-o.Time.T <= ttol*tf {
			o.record()
			tout += o.Sim.Time.DtOut
		}
	}
	return
}

// Step advances the time by dt and refreshes all boundary values
func (o *Main) Step(dt float64) (err error) {
	o.Field.StoreOld()
	if o.Interior != nil {
		err = o.Interior(o.Field, o.Chars, dt)
		if err != nil {
			return chk.Err("interior update failed @ t = %g:\n%v", o.Time.T, err)
		}
	}
	o.Time.Advance(dt)
	err = o.Field.Boundary.Evaluate()
	if err != nil {
		return chk.Err("boundary update failed @ t = %g:\n%v", o.Time.T, err)
	}
	if o.ShowMsg {
		io.Pf("> t = %g\n", o.Time.T)
	}
	return
}

// Write writes the boundary conditions dictionary and the histories to the output directory
func (o *Main) Write() (err error) {
	err = out.WriteBoundary(o.Sim.DirOut, o.Sim.Key+"-boundary", o.Field.Boundary)
	if err != nil {
		return
	}
	for _, p := range o.Mesh.Patches {
		err = o.History[p.Name()].Write(o.Sim.DirOut, o.Sim.Key+"-"+p.Name())
		if err != nil {
			return
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// record records the current boundary values in the histories
func (o *Main) record() {
	for _, ptf := range o.Field.Boundary {
		o.History[ptf.Patch().Name()].Add(o.Time.T, ptf)
	}
}

// onexit prints final message with simulation and cpu times and writes results
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {

	// show final message
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}

	// skip if previous error is not nil
	if prevErr != nil {
		return prevErr
	}
	return o.Write()
}
