// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"
	"gopkg.in/yaml.v3"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc" yaml:"desc"`       // description of simulation
	DirOut  string `json:"dirout" yaml:"dirout"`   // directory for output; e.g. /tmp/esd
	Verbose bool   `json:"verbose" yaml:"verbose"` // show messages during time loop
}

// TimeControl holds data for the explicit time loop
type TimeControl struct {
	Tf     float64 `json:"tf" yaml:"tf"`         // final time
	Dt     float64 `json:"dt" yaml:"dt"`         // time step size; used if DtFunc is empty
	DtOut  float64 `json:"dtout" yaml:"dtout"`   // time step size for output; 0 => every step
	DtFunc string  `json:"dtfunc" yaml:"dtfunc"` // name of function giving Δt(t)

	// derived
	DtFcn dbf.T `json:"-" yaml:"-"` // Δt(t) function
}

// FaceData holds one boundary face
type FaceData struct {
	Cell  int         `json:"cell" yaml:"cell"`   // owner cell
	Verts [][]float64 `json:"verts" yaml:"verts"` // vertices; counter-clockwise when seen from outside
}

// PatchData holds one boundary patch
type PatchData struct {
	Name  string      `json:"name" yaml:"name"`   // name of patch
	Faces []*FaceData `json:"faces" yaml:"faces"` // faces
}

// FieldData holds the definition of the vector field subject to boundary conditions
type FieldData struct {
	Name     string    `json:"name" yaml:"name"`         // name of field; e.g. "U" or "lm"
	Quantity string    `json:"quantity" yaml:"quantity"` // "velocity" or "displacement"
	Init     []float64 `json:"init" yaml:"init"`         // uniform initial value; default = (0,0,0)
	Sig      []float64 `json:"sig" yaml:"sig"`           // uniform stress in Mandel's basis; default = zero with 6 components
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Data      Data            `json:"data" yaml:"data"`           // global data
	Functions FuncsData       `json:"functions" yaml:"functions"` // functions
	Material  *Material       `json:"material" yaml:"material"`   // solid material
	Time      TimeControl     `json:"time" yaml:"time"`           // time control
	Field     FieldData       `json:"field" yaml:"field"`         // vector field
	Ncells    int             `json:"ncells" yaml:"ncells"`       // number of cells
	Patches   []*PatchData    `json:"patches" yaml:"patches"`     // boundary patches
	Boundary  map[string]Dict `json:"boundary" yaml:"boundary"`   // boundary conditions; patch name => dictionary

	// derived
	Key    string // simulation key; e.g. halfspace.sim => halfspace
	DirOut string // directory to save results
}

// ReadSim reads all simulation data from a .sim (JSON) or .yaml file
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// read file
	b, err := os.ReadFile(os.ExpandEnv(simfilepath))
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}

	// decode
	o = new(Simulation)
	ext := strings.ToLower(filepath.Ext(simfilepath))
	if ext == ".yaml" || ext == ".yml" {
		err = yaml.Unmarshal(b, o)
	} else {
		err = json.Unmarshal(b, o)
	}
	if err != nil {
		return nil, chk.Err("cannot unmarshal simulation file %q:\n%v", simfilepath, err)
	}

	// key and output directory
	o.Key = io.FnKey(filepath.Base(simfilepath))
	o.DirOut = o.Data.DirOut
	if o.DirOut == "" {
		o.DirOut = "/tmp/esd/" + o.Key
	}

	// check and set defaults
	err = o.setDefaults()
	if err != nil {
		return nil, chk.Err("simulation file %q is invalid:\n%v", simfilepath, err)
	}
	return
}

// GetDt returns the time step size @ time t
func (o *Simulation) GetDt(t float64) float64 {
	if o.Time.DtFcn != nil {
		return o.Time.DtFcn.F(t, nil)
	}
	return o.Time.Dt
}

// setDefaults checks data and sets default values
func (o *Simulation) setDefaults() (err error) {

	// time control
	if o.Time.Tf <= 0 {
		return chk.Err("final time must be positive. tf=%g is invalid", o.Time.Tf)
	}
	if o.Time.DtFunc != "" {
		o.Time.DtFcn, err = o.Functions.Get(o.Time.DtFunc)
		if err != nil {
			return
		}
	} else if o.Time.Dt <= 0 {
		return chk.Err("time step size must be positive. dt=%g is invalid", o.Time.Dt)
	}

	// field
	if o.Field.Name == "" {
		o.Field.Name = "U"
	}
	switch o.Field.Quantity {
	case "":
		o.Field.Quantity = "velocity"
	case "velocity", "displacement":
	default:
		return chk.Err("quantity of field must be \"velocity\" or \"displacement\". %q is invalid", o.Field.Quantity)
	}
	if o.Field.Init == nil {
		o.Field.Init = []float64{0, 0, 0}
	}
	if len(o.Field.Init) != 3 {
		return chk.Err("initial value of field must have 3 components. %v is invalid", o.Field.Init)
	}
	if o.Field.Sig == nil {
		o.Field.Sig = make([]float64, 6)
	}
	if len(o.Field.Sig) != 4 && len(o.Field.Sig) != 6 {
		return chk.Err("stress must have 4 or 6 components. %v is invalid", o.Field.Sig)
	}

	// material
	if o.Material == nil {
		return chk.Err("material must be given")
	}

	// mesh
	if o.Ncells < 1 {
		return chk.Err("number of cells must be positive. %d is invalid", o.Ncells)
	}
	if len(o.Patches) == 0 {
		return chk.Err("at least one patch must be given")
	}
	for _, p := range o.Patches {
		if _, ok := o.Boundary[p.Name]; !ok {
			return chk.Err("boundary condition for patch %q is missing", p.Name)
		}
	}
	return
}
