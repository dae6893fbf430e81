// Copyright 2024 The ThermoBench Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package check

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/guptaaryanr/ThermoBench-Consist/mdl/baseline"
	"github.com/guptaaryanr/ThermoBench-Consist/mdl/surrogate"
)

// ClapeyronResult holds the outcome of C3 over a list of saturation
// temperatures
type ClapeyronResult struct {
	Name      string    // check name
	Fluid     string    // fluid name
	TList     []float64 // temperatures kept after range filtering [K]
	RelErrors []float64 // |lhs-rhs|/|lhs| per temperature; +Inf marks failed evaluation
	TolRel    float64   // relative tolerance on the median error
	Supported bool      // capabilities present and no evaluation failure
	Passed    bool      // median of finite errors < TolRel
	RhsValues []float64 // Δh/(T・Δv) from the surrogate [Pa/K]
	LhsValues []float64 // dP_sat/dT from the baseline [Pa/K]
}

// Clapeyron performs check C3: the Clapeyron slope along the saturation
// line. For each temperature two independent slope estimates are compared:
//   lhs = dP_sat/dT            (baseline, finite difference; ground truth)
//   rhs = Δh / (T・Δv)          with Δv = 1/ρ_vap - 1/ρ_liq  (surrogate)
// Temperatures outside (T_triple, T_crit) are silently dropped; if none
// remain the check is unsupported. Baseline failures are fatal. An adapter
// failure degrades the check: it becomes unsupported for the remaining
// temperatures and an infinite error is recorded for the failing one.
func Clapeyron(m surrogate.Model, src *baseline.Source, Tlist []float64, tolRel float64) (*ClapeyronResult, error) {
	if len(Tlist) < 1 {
		return nil, chk.Err("C3: temperature list must not be empty")
	}
	caps := m.Capabilities()
	supports := caps.PhaseSplit && caps.H && caps.Rho

	o := &ClapeyronResult{
		Name:      NameClapeyron,
		Fluid:     m.Fluid(),
		TList:     []float64{},
		RelErrors: []float64{},
		TolRel:    tolRel,
		RhsValues: []float64{},
		LhsValues: []float64{},
	}

	// keep temperatures within the fluid's valid saturation range
	for _, T := range Tlist {
		if T > src.Ttriple() && T < src.Tcrit() {
			o.TList = append(o.TList, T)
		}
	}
	if len(o.TList) == 0 || !supports {
		return o, nil // unsupported (excluded from score)
	}

	for _, T := range o.TList {

		// ground truth slope
		lhs, err := DpsatDT(src, T, 1e-2)
		if err != nil {
			return nil, err // baseline failure invalidates ground truth
		}
		o.LhsValues = append(o.LhsValues, lhs)

		// surrogate slope
		rhs := math.NaN()
		if supports {
			_, liq, vap, err := m.PhaseSplitAtT(T)
			if err != nil {
				supports = false // degrade gracefully
			} else {
				Δv := 1.0/vap.Rho - 1.0/liq.Rho
				Δh := vap.H - liq.H
				rhs = Δh / (T * Δv)
			}
		}
		o.RhsValues = append(o.RhsValues, rhs)

		rel := math.Inf(1)
		if !math.IsNaN(rhs) && !math.IsInf(rhs, 0) && math.Abs(lhs) > 0 {
			rel = math.Abs(lhs-rhs) / math.Abs(lhs)
		}
		o.RelErrors = append(o.RelErrors, rel)
	}

	o.Supported = supports
	if supports {
		o.Passed = medianFinite(o.RelErrors) < tolRel
	}
	return o, nil
}
