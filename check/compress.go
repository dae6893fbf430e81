// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/guptaaryanr/ThermoBench-Consist/mdl/surrogate"
)

// CompressResult holds the outcome of C2 on one isotherm
type CompressResult struct {
	Name         string    // check name
	Fluid        string    // fluid name
	T            float64   // isotherm temperature [K]
	P            []float64 // pressure grid [Pa]
	KappaT       []float64 // midpoint compressibilities [1/Pa]; NaN marks failed evaluation
	Tol          float64   // absolute slack tolerance
	Supported    bool      // adapter provides density and all midpoints evaluated
	Passed       bool      // every κ > -tol
	NearSpinodal bool      // some κ in [0, max(10・tol, 1e-9))
}

// Compressibility performs check C2: κ = (∂ρ/∂p)|T / ρ > 0. Same grid and
// derivative machinery as C1, with the midpoint derivative normalised by the
// density at the midpoint (floor-clamped away from zero). Grid conventions
// are those of MonotonicRho.
func Compressibility(m surrogate.Model, T float64, pvals []float64, tol float64) (*CompressResult, error) {
	if len(pvals) < 1 {
		return nil, chk.Err("C2: pressure grid must have at least one point")
	}
	for k := 1; k < len(pvals); k++ {
		if pvals[k] <= pvals[k-1] {
			return nil, chk.Err("C2: pressure grid must be strictly increasing; p[%d]=%g, p[%d]=%g", k-1, pvals[k-1], k, pvals[k])
		}
	}
	o := &CompressResult{
		Name:   NameCompress,
		Fluid:  m.Fluid(),
		T:      T,
		P:      append([]float64{}, pvals...),
		KappaT: []float64{},
		Tol:    tol,
	}
	if !m.Capabilities().Rho {
		return o, nil // unsupported
	}
	o.Supported = true

	for k := 0; k < len(pvals)-1; k++ {
		pmid := 0.5 * (pvals[k] + pvals[k+1])
		dp := pvals[k+1] - pvals[k]
		drdp, err := DrhoDpAtT(m, T, pmid, dp)
		if err != nil {
			o.Supported = false
			o.KappaT = append(o.KappaT, math.NaN())
			continue
		}
		rhoMid, err := m.Rho(T, pmid)
		if err != nil {
			o.Supported = false
			o.KappaT = append(o.KappaT, math.NaN())
			continue
		}
		κ := drdp / math.Max(rhoMid, 1e-30)
		o.KappaT = append(o.KappaT, κ)
	}

	var fracPos, min float64
	classifySlopes(o.KappaT, tol, &fracPos, &min, &o.NearSpinodal)
	o.Passed = o.Supported && allAbove(o.KappaT, -tol) && len(o.KappaT) > 0
	return o, nil
}
