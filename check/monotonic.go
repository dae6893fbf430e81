// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/guptaaryanr/ThermoBench-Consist/mdl/surrogate"
)

// check names as they appear in serialized summaries
const (
	NameMonotonic    = "C1_monotonic"
	NameCompress     = "C2_compressibility"
	NameClapeyron    = "C3_clapeyron"
	NameSpeedOfSound = "C4_speed_of_sound"
)

// MonotonicResult holds the outcome of C1 on one isotherm. Immutable once
// constructed; Passed is only meaningful when Supported is true.
type MonotonicResult struct {
	Name             string    // check name
	Fluid            string    // fluid name
	T                float64   // isotherm temperature [K]
	P                []float64 // pressure grid [Pa]
	DrhoDp           []float64 // midpoint derivatives [(kg/m³)/Pa]; NaN marks failed evaluation
	FractionPositive float64   // fraction of evaluated midpoints with derivative > -tol
	MinDerivative    float64   // minimum evaluated derivative; NaN when none
	Tol              float64   // absolute slack tolerance
	Supported        bool      // adapter provides density and all midpoints evaluated
	Passed           bool      // every midpoint derivative > -tol
	NearSpinodal     bool      // some derivative in [0, max(10・tol, 1e-9))
}

// MonotonicRho performs check C1: ∂ρ/∂p|T > 0 along a single-phase isotherm.
// Derivatives are centered at the midpoints between consecutive grid
// pressures, using the local spacing as the differencing step.
//
// Grid convention: a single pressure yields zero midpoints and the check
// reports FractionPositive=0, MinDerivative=NaN and Passed=false; a verdict
// is never vacuously true. An empty or non-increasing grid is an input error.
func MonotonicRho(m surrogate.Model, T float64, pvals []float64, tol float64) (*MonotonicResult, error) {
	if len(pvals) < 1 {
		return nil, chk.Err("C1: pressure grid must have at least one point")
	}
	for k := 1; k < len(pvals); k++ {
		if pvals[k] <= pvals[k-1] {
			return nil, chk.Err("C1: pressure grid must be strictly increasing; p[%d]=%g, p[%d]=%g", k-1, pvals[k-1], k, pvals[k])
		}
	}
	o := &MonotonicResult{
		Name:             NameMonotonic,
		Fluid:            m.Fluid(),
		T:                T,
		P:                append([]float64{}, pvals...),
		DrhoDp:           []float64{},
		FractionPositive: 0,
		MinDerivative:    math.NaN(),
		Tol:              tol,
	}
	if !m.Capabilities().Rho {
		return o, nil // unsupported
	}
	o.Supported = true

	// derivatives at midpoints between consecutive grid pressures
	for k := 0; k < len(pvals)-1; k++ {
		pmid := 0.5 * (pvals[k] + pvals[k+1])
		dp := pvals[k+1] - pvals[k]
		d, err := DrhoDpAtT(m, T, pmid, dp)
		if err != nil {
			// failed-to-evaluate marker; degrade but keep going
			o.Supported = false
			o.DrhoDp = append(o.DrhoDp, math.NaN())
			continue
		}
		o.DrhoDp = append(o.DrhoDp, d)
	}

	classifySlopes(o.DrhoDp, tol, &o.FractionPositive, &o.MinDerivative, &o.NearSpinodal)
	o.Passed = o.Supported && allAbove(o.DrhoDp, -tol) && len(o.DrhoDp) > 0
	return o, nil
}

// classifySlopes computes the fraction of evaluated slopes above -tol, the
// minimum evaluated slope and the near-spinodal guard flag: any slope in
// [0, max(10・tol, 1e-9)) is barely positive and worth a warning.
func classifySlopes(slopes []float64, tol float64, fracPos, minVal *float64, nearSpinodal *bool) {
	guard := math.Max(10.0*tol, 1e-9)
	npos, neval := 0, 0
	min := math.NaN()
	for _, d := range slopes {
		if math.IsNaN(d) {
			continue
		}
		neval++
		if d > -tol {
			npos++
		}
		if math.IsNaN(min) || d < min {
			min = d
		}
		if d >= 0 && d < guard {
			*nearSpinodal = true
		}
	}
	*minVal = min
	if neval > 0 {
		*fracPos = float64(npos) / float64(neval)
	}
}

// allAbove tells whether every entry is finite and greater than lim
func allAbove(vals []float64, lim float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || !(v > lim) {
			return false
		}
	}
	return true
}
