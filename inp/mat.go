// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/synthetik-technologies/explicitSolidDynamics/mdl/solid"
)

// Material holds material data
type Material struct {
	Name  string     `json:"name" yaml:"name"`   // name of material
	Model string     `json:"model" yaml:"model"` // name of model; e.g. "lin-elast", "oned-elast", "acoustic"
	Extra string     `json:"extra" yaml:"extra"` // extra information about this material
	Prms  dbf.Params `json:"prms" yaml:"prms"`   // prms holds all model parameters for this material
}

// GetModel allocates and initialises the solid model of this material
func (o *Material) GetModel() (model solid.Model, err error) {
	model, err = solid.New(o.Model)
	if err != nil {
		return nil, chk.Err("material %q: cannot allocate model:\n%v", o.Name, err)
	}
	err = model.Init(o.Prms)
	if err != nil {
		return nil, chk.Err("material %q: cannot initialise model %q:\n%v", o.Name, o.Model, err)
	}
	return
}

// String prints material
func (o Material) String() string {
	l := "  \"material\" : {\n"
	l += "    \"name\" : \"" + o.Name + "\", \"model\" : \"" + o.Model + "\",\n"
	l += "    \"prms\" : ["
	for i, p := range o.Prms {
		if i > 0 {
			l += ", "
		}
		l += prmString(p)
	}
	return l + "]\n  }"
}
