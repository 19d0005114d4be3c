// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/tsr"
	"github.com/synthetik-technologies/explicitSolidDynamics/fvp"
	"github.com/synthetik-technologies/explicitSolidDynamics/mdl/solid"
)

// Elastic provides the characteristic (wave) data of a solid: impedances from a solid model and
// interior tractions t = σ・n from cell stresses
type Elastic struct {
	Model solid.Model // solid model
	Sig   [][]float64 // [ncells][nsig] stresses in Mandel's basis; nsig = 4 or 6
}

// NewElastic returns a new provider with zero stresses
func NewElastic(model solid.Model, ncells, nsig int) (o *Elastic) {
	if nsig != 4 && nsig != 6 {
		chk.Panic("number of stress components must be 4 or 6. %d is invalid", nsig)
	}
	o = &Elastic{Model: model, Sig: make([][]float64, ncells)}
	for i := range o.Sig {
		o.Sig[i] = make([]float64, nsig)
	}
	return
}

// Impedances returns the normal and shear impedances at each face of p
func (o *Elastic) Impedances(p fvp.Patch) (zp, zs []float64, err error) {
	if o.Model == nil {
		return nil, nil, chk.Err("solid model is not set")
	}
	zpv, zsv := solid.Impedances(o.Model)
	if zpv <= 0 || zsv <= 0 {
		return nil, nil, chk.Err("impedances of solid model must be positive. zp=%g, zs=%g are invalid", zpv, zsv)
	}
	zp = make([]float64, p.Size())
	zs = make([]float64, p.Size())
	for i := range zp {
		zp[i], zs[i] = zpv, zsv
	}
	return
}

// Tractions returns the tractions t = σ・n at the owner cells of each face of p
func (o *Elastic) Tractions(p fvp.Patch) (t [][]float64, err error) {
	nf := p.Nf()
	cells := p.FaceCells()
	t = make([][]float64, len(cells))
	for k, c := range cells {
		if c < 0 || c >= len(o.Sig) {
			return nil, chk.Err("owner cell %d of face %d is out of range; ncells = %d", c, k, len(o.Sig))
		}
		σ := o.Sig[c]
		t[k] = make([]float64, 3)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				t[k][i] += component(σ, i, j) * nf[k][j]
			}
		}
	}
	return
}

// component returns σ[i][j] from Mandel's representation; off-plane shear is zero with 4 components
func component(σ []float64, i, j int) float64 {
	I := tsr.SecToManI[i][j]
	if I >= len(σ) {
		return 0
	}
	if i == j {
		return σ[I]
	}
	return σ[I] / math.Sqrt2
}
