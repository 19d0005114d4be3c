// Copyright 2016 The explicitSolidDynamics Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fvm

import (
	"sort"

	"github.com/cpmech/gosl/gm"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/utl"
	"github.com/synthetik-technologies/explicitSolidDynamics/fvp"
)

// MatchFaces returns a direct mapper from the faces of src onto the faces of dst by comparing face
// centres. Each face of dst takes the nearest free face of src within tol; closer pairs are matched
// first. Faces of dst without a match are left unmapped (address -1).
func MatchFaces(src, dst *Patch, tol float64) (m *fvp.DirectMapper) {
	m = &fvp.DirectMapper{Addr: utl.IntVals(dst.Size(), -1)}
	if src.Size() == 0 || dst.Size() == 0 {
		return
	}

	// candidate pairs within tol
	bins := faceBins(src.cf, tol)
	type pair struct {
		i, j int     // dst and src faces
		d2   float64 // squared distance
	}
	var pairs []pair
	tol2 := tol * tol
	for i, x := range dst.cf {
		for _, idx := range nearBins(bins, x, tol) {
			for _, e := range bins.All[idx].Entries {
				d := la.Vector(x).NormDiff(e.X)
				if d*d <= tol2 {
					pairs = append(pairs, pair{i, e.ID, d * d})
				}
			}
		}
	}

	// nearest first
	sort.SliceStable(pairs, func(a, b int) bool { return pairs[a].d2 < pairs[b].d2 })
	used := make([]bool, src.Size())
	for _, p := range pairs {
		if m.Addr[p.i] >= 0 || used[p.j] {
			continue
		}
		m.Addr[p.i] = p.j
		used[p.j] = true
	}
	return
}

// faceBins stores face centres in bins no narrower than twice the search radius
func faceBins(cf [][]float64, tol float64) (bins *gm.Bins) {
	pad := utl.Max(tol, 1e-8)
	xmin := make([]float64, 3)
	xmax := make([]float64, 3)
	ndiv := make([]int, 3)
	for k := 0; k < 3; k++ {
		xmin[k], xmax[k] = cf[0][k], cf[0][k]
		for _, x := range cf {
			xmin[k] = utl.Min(xmin[k], x[k])
			xmax[k] = utl.Max(xmax[k], x[k])
		}
		xmin[k] -= pad
		xmax[k] += pad
		ndiv[k] = utl.Imax(1, utl.Imin(MaxBinDivs, int((xmax[k]-xmin[k])/(2*pad))))
	}
	bins = new(gm.Bins)
	bins.Init(xmin, xmax, ndiv)
	for id, x := range cf {
		bins.Append(x, id, nil)
	}
	return
}

// nearBins returns the indices of allocated bins that may hold points within r of x
func nearBins(bins *gm.Bins, x []float64, r float64) (res []int) {
	seen := make(map[int]bool)
	y := make([]float64, 3)
	for a := -1; a <= 1; a++ {
		for b := -1; b <= 1; b++ {
			for c := -1; c <= 1; c++ {
				for k, s := range []int{a, b, c} {
					y[k] = utl.Min(utl.Max(x[k]+float64(s)*r, bins.Xmin[k]), bins.Xmax[k])
				}
				idx := bins.CalcIndex(y)
				if idx < 0 || seen[idx] || bins.All[idx] == nil {
					continue
				}
				seen[idx] = true
				res = append(res, idx)
			}
		}
	}
	return
}

// MaxBinDivs is the maximum number of bins along each direction used when matching faces
var MaxBinDivs = 16
