// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Contact solves the acoustic Riemann problem at a symmetric face with prescribed traction.
//
//  The outgoing characteristic w = t - Z・v with Z = zp n⊗n + zs (I - n⊗n)
//  is carried from the interior (⁻) to the contact state (C):
//
//      t_C - Z・v_C = t⁻ - Z・v⁻
//
//  The face is a mirror in the normal direction (n・v_C = 0) and
//  carries the prescribed tangential traction (I - n⊗n)・tP. Thus:
//
//      n・t_C = n・t⁻ - zp n・v⁻
//      v_C    = (I - n⊗n)・[v⁻ + (tP - t⁻) / zs]
//      t_C    = (n・t_C) n + (I - n⊗n)・tP
//
//  Input:
//   n      -- unit outward normal
//   vM     -- interior velocity v⁻
//   tM     -- interior traction t⁻ = σ⁻・n
//   tP     -- prescribed traction
//   zp, zs -- normal and shear impedances
//  Output:
//   vC -- contact velocity
//   tC -- contact traction
func Contact(vC, tC, n, vM, tM, tP []float64, zp, zs float64) (err error) {
	if zp <= 0 || zs <= 0 {
		return chk.Err("impedances must be positive. zp=%g, zs=%g is invalid", zp, zs)
	}
	ndim := len(n)
	if len(vM) != ndim || len(tM) != ndim || len(tP) != ndim || len(vC) != ndim || len(tC) != ndim {
		return chk.Err("all vectors must have the same length as the normal (%d)", ndim)
	}
	tCn := la.VecDot(n, tM) - zp*la.VecDot(n, vM)
	for i := 0; i < ndim; i++ {
		vC[i] = vM[i] + (tP[i]-tM[i])/zs
	}
	vCn := la.VecDot(n, vC)
	tPn := la.VecDot(n, tP)
	for i := 0; i < ndim; i++ {
		vC[i] -= vCn * n[i]
		tC[i] = tP[i] - tPn*n[i] + tCn*n[i]
	}
	return
}

// Outgoing computes the outgoing characteristic w = t - Z・v
func Outgoing(w, n, v, t []float64, zp, zs float64) {
	vn := la.VecDot(n, v)
	for i := 0; i < len(n); i++ {
		w[i] = t[i] - zp*vn*n[i] - zs*(v[i]-vn*n[i])
	}
}
